package ui

import (
	"context"
	"io"
	"os"

	"golang.org/x/term"
)

// Action is what a key press asks the monitor to do.
type Action int

const (
	ActionToggleLoad Action = iota + 1
	ActionMoreCores
	ActionFewerCores
	ActionQuit
)

// ParseKey maps one input byte to an action.
func ParseKey(b byte) (Action, bool) {
	switch b {
	case ' ', 's', 'S', '\r', '\n':
		return ActionToggleLoad, true
	case '+', '=':
		return ActionMoreCores, true
	case '-', '_':
		return ActionFewerCores, true
	case 'q', 'Q', 3: // 3 is Ctrl-C in raw mode
		return ActionQuit, true
	}
	return 0, false
}

// ReadActions forwards the actions read from in until ctx is done or in fails. The
// channel is closed when reading stops.
func ReadActions(ctx context.Context, in io.Reader) <-chan Action {
	actions := make(chan Action)
	go func() {
		defer close(actions)
		buf := make([]byte, 16)
		for {
			n, err := in.Read(buf)
			for _, b := range buf[:n] {
				action, ok := ParseKey(b)
				if !ok {
					continue
				}
				select {
				case actions <- action:
				case <-ctx.Done():
					return
				}
			}
			if err != nil {
				return
			}
		}
	}()
	return actions
}

// Terminal holds the raw mode state of stdin.
type Terminal struct {
	fd    int
	state *term.State
}

// EnterRaw switches f to raw mode when it is a terminal. The returned Terminal restores it.
func EnterRaw(f *os.File) (*Terminal, error) {
	fd := int(f.Fd())
	if !term.IsTerminal(fd) {
		return &Terminal{fd: fd}, nil
	}
	state, err := term.MakeRaw(fd)
	if err != nil {
		return nil, err
	}
	return &Terminal{fd: fd, state: state}, nil
}

// Restore leaves raw mode.
func (t *Terminal) Restore() error {
	if t.state == nil {
		return nil
	}
	return term.Restore(t.fd, t.state)
}

// Width returns the terminal width of f, or fallback.
func Width(f *os.File, fallback int) int {
	w, _, err := term.GetSize(int(f.Fd()))
	if err != nil || w <= 0 {
		return fallback
	}
	return w
}
