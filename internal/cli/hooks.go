package cli

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
)

// logHooks reports layout and frame events to the CLI logger at debug level.
type logHooks struct {
	logger *log.Logger
}

func (h logHooks) OnFrameStart(_ context.Context, width, height, panels int) {
	h.logger.Debug("frame start", "width", width, "height", height, "panels", panels)
}

func (h logHooks) OnFrameComplete(_ context.Context, width, height int, d time.Duration, err error) {
	if err != nil {
		h.logger.Error("frame failed", "width", width, "height", height, "err", err)
		return
	}
	h.logger.Debug("frame done", "width", width, "height", height, "took", d)
}

func (h logHooks) OnLayoutStart(_ context.Context, source string, width, height int) {
	h.logger.Debug("layout start", "source", source, "width", width, "height", height)
}

func (h logHooks) OnLayoutComplete(_ context.Context, source string, panels int, d time.Duration, err error) {
	if err != nil {
		h.logger.Error("layout failed", "source", source, "err", err)
		return
	}
	h.logger.Debug("layout built", "source", source, "panels", panels, "took", d)
}
