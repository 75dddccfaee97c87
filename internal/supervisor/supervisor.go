package supervisor

import (
	"context"
	"fmt"
	"runtime/debug"
	"sync"
	"time"

	"github.com/andyrewlee/snapscroll/internal/logging"
)

type options struct {
	maxRestarts int
	backoff     time.Duration
	maxBackoff  time.Duration
}

// Option configures a supervised worker.
type Option func(*options)

// WithMaxRestarts limits restarts (0 = unlimited).
func WithMaxRestarts(n int) Option {
	return func(o *options) { o.maxRestarts = n }
}

// WithBackoff sets the initial and maximum delay between restarts.
func WithBackoff(initial, limit time.Duration) Option {
	return func(o *options) {
		o.backoff = initial
		o.maxBackoff = limit
	}
}

// Supervisor owns a set of workers bound to one context.
type Supervisor struct {
	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	mu      sync.Mutex
	onError func(name string, err error)
}

// New creates a supervisor bound to parent.
func New(parent context.Context) *Supervisor {
	ctx, cancel := context.WithCancel(parent)
	return &Supervisor{ctx: ctx, cancel: cancel}
}

// OnError registers a handler for worker failures. Cancellation is not a failure.
func (s *Supervisor) OnError(handler func(name string, err error)) {
	if s == nil {
		return
	}
	s.mu.Lock()
	s.onError = handler
	s.mu.Unlock()
}

// Stop cancels every worker and waits for them to return.
func (s *Supervisor) Stop() {
	if s == nil {
		return
	}
	s.cancel()
	s.wg.Wait()
}

// Start runs fn until it returns nil or the supervisor stops. A failing or
// panicking fn is restarted after a doubling backoff.
func (s *Supervisor) Start(name string, fn func(context.Context) error, opts ...Option) {
	if s == nil || fn == nil {
		return
	}
	cfg := options{backoff: 200 * time.Millisecond, maxBackoff: 3 * time.Second}
	for _, opt := range opts {
		opt(&cfg)
	}
	cfg.maxBackoff = max(cfg.maxBackoff, cfg.backoff)

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		delay := cfg.backoff
		for restarts := 0; ; restarts++ {
			err := runSafe(s.ctx, name, fn)
			if s.ctx.Err() != nil || err == nil {
				return
			}
			s.report(name, err)
			if cfg.maxRestarts > 0 && restarts >= cfg.maxRestarts {
				logging.Error("supervisor: %s exceeded max restarts (%d)", name, cfg.maxRestarts)
				return
			}
			logging.Warn("supervisor: restarting %s in %s", name, delay)
			select {
			case <-s.ctx.Done():
				return
			case <-time.After(delay):
			}
			delay = min(delay*2, cfg.maxBackoff)
		}
	}()
}

func (s *Supervisor) report(name string, err error) {
	s.mu.Lock()
	handler := s.onError
	s.mu.Unlock()
	if handler != nil {
		handler(name, err)
	}
}

func runSafe(ctx context.Context, name string, fn func(context.Context) error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic in %s: %v", name, r)
			logging.Error("%v\n%s", err, debug.Stack())
		}
	}()
	return fn(ctx)
}
