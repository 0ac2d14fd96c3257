//go:build unix

package sys

import (
	"os"
	"os/signal"

	"golang.org/x/sys/unix"
)

// NotifyResize relays window size changes to the returned channel until
// stop is called. Notifications that arrive while one is already pending are
// coalesced, since the receiver re-queries the size anyway.
func NotifyResize() (ch <-chan struct{}, stop func()) {
	sigCh := make(chan os.Signal, 1)
	resizeCh := make(chan struct{}, 1)
	done := make(chan struct{})
	signal.Notify(sigCh, unix.SIGWINCH)
	go func() {
		for {
			select {
			case <-sigCh:
				select {
				case resizeCh <- struct{}{}:
				default:
				}
			case <-done:
				return
			}
		}
	}()
	return resizeCh, func() {
		signal.Stop(sigCh)
		close(done)
	}
}
