package main

import (
	"io"
	"os"
)

// restoreOnSignal closes tty and calls exit when a signal arrives on sigCh.
// The returned stop function ends the watch without closing anything.
func restoreOnSignal(sigCh <-chan os.Signal, tty io.Closer, exit func(os.Signal)) (stop func()) {
	done := make(chan struct{})
	go func() {
		select {
		case sig := <-sigCh:
			_ = tty.Close()
			exit(sig)
		case <-done:
		}
	}()
	return func() { close(done) }
}
