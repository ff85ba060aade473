// Package observability provides hooks for instrumenting layout and frame
// rendering.
//
// The geometry core stays free of any logging or metrics backend. Drivers
// register hooks at startup and call them around the work they own:
//
//	func main() {
//	    observability.SetRenderHooks(&myRenderHooks{})
//	    observability.SetLayoutHooks(&myLayoutHooks{})
//	    // ... run application
//	}
//
// Emitting events:
//
//	observability.Render().OnFrameStart(ctx, w, h, len(panels))
//	frame := c.Render()
//	observability.Render().OnFrameComplete(ctx, w, h, time.Since(start), nil)
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Render Hooks
// =============================================================================

// RenderHooks receives events from the frame loop.
type RenderHooks interface {
	OnFrameStart(ctx context.Context, width, height, panels int)
	OnFrameComplete(ctx context.Context, width, height int, duration time.Duration, err error)
}

// =============================================================================
// Layout Hooks
// =============================================================================

// LayoutHooks receives events when panels are (re)built for a display size.
type LayoutHooks interface {
	// OnLayoutStart records the start of a layout build. source names the
	// layout file, or "demo" for the built-in layout.
	OnLayoutStart(ctx context.Context, source string, width, height int)

	// OnLayoutComplete records the end of a layout build.
	OnLayoutComplete(ctx context.Context, source string, panels int, duration time.Duration, err error)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopRenderHooks is a no-op implementation of RenderHooks.
type NoopRenderHooks struct{}

func (NoopRenderHooks) OnFrameStart(context.Context, int, int, int)                     {}
func (NoopRenderHooks) OnFrameComplete(context.Context, int, int, time.Duration, error) {}

// NoopLayoutHooks is a no-op implementation of LayoutHooks.
type NoopLayoutHooks struct{}

func (NoopLayoutHooks) OnLayoutStart(context.Context, string, int, int)                     {}
func (NoopLayoutHooks) OnLayoutComplete(context.Context, string, int, time.Duration, error) {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	renderHooks RenderHooks = NoopRenderHooks{}
	layoutHooks LayoutHooks = NoopLayoutHooks{}
	hooksMu     sync.RWMutex
)

// SetRenderHooks registers custom render hooks.
// This should be called once at application startup before the frame loop runs.
func SetRenderHooks(h RenderHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		renderHooks = h
	}
}

// SetLayoutHooks registers custom layout hooks.
// This should be called once at application startup before any layout is built.
func SetLayoutHooks(h LayoutHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		layoutHooks = h
	}
}

// Render returns the registered render hooks.
func Render() RenderHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return renderHooks
}

// Layout returns the registered layout hooks.
func Layout() LayoutHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return layoutHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	renderHooks = NoopRenderHooks{}
	layoutHooks = NoopLayoutHooks{}
}
