// Package bootstrap manages process lifecycle: signal handling and ordered
// shutdown of the pieces a binary wires together.
package bootstrap

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"
)

type hook struct {
	name string
	fn   func(ctx context.Context) error
}

// App runs a long-lived process until it finishes or the OS asks it to
// stop, then runs registered shutdown hooks in reverse registration order.
type App struct {
	logger *slog.Logger

	mu    sync.Mutex
	hooks []hook
}

// New creates an App. logger may be nil.
func New(logger *slog.Logger) *App {
	if logger == nil {
		logger = slog.Default()
	}
	return &App{logger: logger}
}

// OnShutdown registers a named hook to run during graceful shutdown. Hooks
// run in LIFO order. Safe to call from any goroutine, including from
// inside the run function.
func (a *App) OnShutdown(name string, fn func(ctx context.Context) error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.hooks = append(a.hooks, hook{name: name, fn: fn})
}

// Run executes run under a context canceled by SIGINT or SIGTERM. When the
// signal arrives, Run waits for shutdown hooks to complete and returns
// their joined errors. An error from run itself is returned as-is.
func (a *App) Run(ctx context.Context, run func(ctx context.Context) error) error {
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	errCh := make(chan error, 1)
	go func() {
		errCh <- run(ctx)
	}()

	select {
	case <-ctx.Done():
		a.logger.Info("shutting down")
		return a.shutdown(context.Background())
	case err := <-errCh:
		if err != nil {
			return err
		}
		// run finished on its own; still honor hooks when the context
		// was canceled in the meantime.
		if ctx.Err() != nil {
			a.logger.Info("shutting down")
			return a.shutdown(context.Background())
		}
		return nil
	}
}

func (a *App) shutdown(ctx context.Context) error {
	a.mu.Lock()
	hooks := make([]hook, len(a.hooks))
	copy(hooks, a.hooks)
	a.mu.Unlock()

	var errs []error
	for i := len(hooks) - 1; i >= 0; i-- {
		if err := hooks[i].fn(ctx); err != nil {
			a.logger.Error("shutdown hook failed", "hook", hooks[i].name, "error", err)
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
