package loadgen

import (
	"io"
	"sync/atomic"
)

// Burn spins on the calling goroutine until stop reaches EOF or fails. The parent holds
// the write end of stop; closing it (or dying) ends the loop.
func Burn(stop io.Reader) {
	var running atomic.Bool
	running.Store(true)

	go func() {
		_, _ = io.Copy(io.Discard, stop)
		running.Store(false)
	}()

	for running.Load() {
	}
}
