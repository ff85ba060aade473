// Package term reports the size of the attached display.
package term

import (
	"errors"
	"os"
	"strconv"

	xterm "github.com/charmbracelet/x/term"
)

// ErrUnknownSize is returned when neither the terminal nor the environment
// reports a usable size.
var ErrUnknownSize = errors.New("terminal size unavailable")

// Size returns the size of stdout's terminal in cells. It tries TTY
// detection first, then the COLUMNS and LINES environment variables.
// It matches canvas.SizeFunc.
func Size() (width, height int, err error) {
	return sizeOf(os.Stdout.Fd(), os.Getenv)
}

func sizeOf(fd uintptr, getenv func(string) string) (int, int, error) {
	if w, h, err := xterm.GetSize(fd); err == nil && w > 0 && h > 0 {
		return w, h, nil
	}

	w, wok := positiveInt(getenv("COLUMNS"))
	h, hok := positiveInt(getenv("LINES"))
	if wok && hok {
		return w, h, nil
	}
	return 0, 0, ErrUnknownSize
}

func positiveInt(s string) (int, bool) {
	n, err := strconv.Atoi(s)
	return n, err == nil && n > 0
}
