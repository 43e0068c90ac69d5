// Package signal provides centralized signal handling for graceful shutdown.
package signal

import (
	"context"
	"os"
	"os/signal"
	"sync"
	"syscall"
)

var (
	// mu protects the held state
	mu sync.Mutex
	// held indicates whether cancellation is currently deferred
	held bool
	// holdCount tracks nested Hold calls
	holdCount int
	// pendingCancel holds a cancel func to run once released
	pendingCancel context.CancelFunc
)

// WithCancel returns a context that is cancelled when SIGINT or SIGTERM is
// received. The returned cancel function must be called to release resources.
func WithCancel(parent context.Context) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(parent)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		select {
		case <-sigChan:
			mu.Lock()
			if held {
				pendingCancel = cancel
				mu.Unlock()
				return
			}
			mu.Unlock()
			cancel()
		case <-ctx.Done():
		}
		signal.Stop(sigChan)
		close(sigChan)
	}()

	return ctx, cancel
}

// Hold defers signal-based cancellation. The TUI holds signals while a
// launcher invocation is draining output, so a Ctrl-C aimed at the child does
// not tear down the UI mid-capture. Hold/Release calls can be nested.
func Hold() {
	mu.Lock()
	defer mu.Unlock()
	holdCount++
	held = true
}

// Release re-enables signal-based cancellation. A signal received while held
// takes effect now.
func Release() {
	mu.Lock()
	defer mu.Unlock()
	if holdCount > 0 {
		holdCount--
	}
	if holdCount == 0 {
		held = false
		if pendingCancel != nil {
			pendingCancel()
			pendingCancel = nil
		}
	}
}
