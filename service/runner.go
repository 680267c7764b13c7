/*
Package service drives solvers tick by tick.

A Runner owns exactly one solver and serializes its ticks: one tick is
ever in flight, the stop condition is checked only between ticks, and a
configurable delay paces the run. Observers read progress through the
mutex-guarded snapshot; the renderer receives every StepResult as it
happens.
*/
package service

import (
	"context"
	"errors"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/beka-birhanu/mazepilot/service/i"
	"github.com/beka-birhanu/mazepilot/solver"
)

const defaultTickDelay = 150 * time.Millisecond

var ErrMissingSolver = errors.New("solver is required")

// Runner executes a solver until it reports done, fails fatally, or the
// run is stopped. Safe for one Run call; Snapshot may be read concurrently.
type Runner struct {
	id       uuid.UUID
	solver   i.Solver
	renderer i.Renderer
	delay    time.Duration
	logger   *log.Logger

	stop chan struct{}
	once sync.Once

	mu   sync.RWMutex
	snap i.RunSnapshot
}

// Config holds the dependencies for a Runner.
type Config struct {
	Solver   i.Solver
	Renderer i.Renderer    // optional
	Delay    time.Duration // delay between ticks; default 150ms
	Logger   *log.Logger   // optional
}

// NewRunner creates a runner with a fresh run ID.
func NewRunner(c *Config) (*Runner, error) {
	if c == nil || c.Solver == nil {
		return nil, ErrMissingSolver
	}
	delay := c.Delay
	if delay <= 0 {
		delay = defaultTickDelay
	}
	id := uuid.New()
	return &Runner{
		id:       id,
		solver:   c.Solver,
		renderer: c.Renderer,
		delay:    delay,
		logger:   c.Logger,
		stop:     make(chan struct{}),
		snap:     i.RunSnapshot{ID: id, Solver: c.Solver.Name()},
	}, nil
}

// ID returns the run identifier.
func (r *Runner) ID() uuid.UUID { return r.id }

// Stop requests a cooperative stop. The current tick finishes; no new
// tick starts. Safe to call more than once and from other goroutines.
func (r *Runner) Stop() {
	r.once.Do(func() { close(r.stop) })
}

// Snapshot implements i.RunReader.
func (r *Runner) Snapshot() i.RunSnapshot {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.snap
}

// Run ticks the solver until done. Only a fatal solver error (planning
// failure) is returned; a stop or context cancellation returns nil after
// the in-flight tick completes.
func (r *Runner) Run(ctx context.Context) error {
	r.logf("run %s started with %s solver", r.id, r.solver.Name())

	for {
		select {
		case <-ctx.Done():
			r.logf("run %s canceled: %v", r.id, ctx.Err())
			return nil
		case <-r.stop:
			r.logf("run %s stopped", r.id)
			return nil
		default:
		}

		res, err := r.solver.Next(ctx)
		r.observe(res)
		if r.renderer != nil {
			// The failing tick gets a frame too, so the viewer shows why
			// the run ended.
			r.renderer.Frame(res)
		}
		if err != nil {
			r.logf("run %s failed: %v", r.id, err)
			return err
		}

		if res.Done {
			r.logf("run %s done after %d ticks", r.id, r.ticks())
			return nil
		}

		select {
		case <-ctx.Done():
			return nil
		case <-r.stop:
			return nil
		case <-time.After(r.delay):
		}
	}
}

func (r *Runner) observe(res solver.StepResult) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.snap.Ticks++
	r.snap.Position = res.NewPosition
	r.snap.VisitedCount += len(res.VisitedAdded)
	r.snap.Done = res.Done
	r.snap.LastMessage = res.Message
}

func (r *Runner) ticks() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.snap.Ticks
}

func (r *Runner) logf(format string, args ...any) {
	if r.logger != nil {
		r.logger.Printf(format, args...)
	}
}
