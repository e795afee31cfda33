// Package signalx ties process signals to a [context.Context], so an interactive prompt can be abandoned with Ctrl+C.
package signalx

import (
	"context"
	"os"
	"os/signal"
	"sync"
)

// InterruptExitCode is the exit code used when a second signal forces the process to stop.
const InterruptExitCode = 130

// exit is swapped out in tests.
var exit = os.Exit

// InterruptCtx returns a context that's cancelled when any of the signals are received.
// A second signal calls [os.Exit] with [InterruptExitCode], in case a handler ignores cancellation.
// The returned stop function releases the signal subscription and cancels the context.
func InterruptCtx(parent context.Context, signals ...os.Signal) (context.Context, context.CancelFunc) {
	if len(signals) == 0 {
		signals = []os.Signal{os.Interrupt}
	}
	ctx, cancel := context.WithCancel(parent)
	sigs := make(chan os.Signal, 2)
	signal.Notify(sigs, signals...)
	stopped := make(chan struct{})
	go func() {
		select {
		case <-sigs:
			cancel()
		case <-stopped:
			return
		}
		select {
		case <-sigs:
			exit(InterruptExitCode)
		case <-stopped:
		}
	}()
	var once sync.Once
	return ctx, func() {
		once.Do(func() {
			signal.Stop(sigs)
			close(stopped)
			cancel()
		})
	}
}
