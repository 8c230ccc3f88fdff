// Package autosave batches rapid state changes into a single delayed save.
package autosave

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/mcoot/vierbure/internal/dependencies/clock"
)

// SaveFunc persists one value. It must not retain the value after returning.
type SaveFunc[T any] func(ctx context.Context, value T)

// Config holds debounce timing
type Config struct {
	// Delay is the quiet period after the last Schedule before saving
	Delay time.Duration
	// Timeout bounds each timer-triggered save
	Timeout time.Duration
}

// DefaultConfig returns a 500ms quiet period and a 5s save timeout
func DefaultConfig() Config {
	return Config{
		Delay:   500 * time.Millisecond,
		Timeout: 5 * time.Second,
	}
}

// Debouncer saves the most recently scheduled value once no new value has
// arrived for Config.Delay. Saves never overlap and never go backwards: a
// value is only handed to SaveFunc if nothing newer was scheduled before it.
type Debouncer[T any] struct {
	clock  clock.Clock
	cfg    Config
	save   SaveFunc[T]
	logger *slog.Logger

	// saveMu serializes saves so they land in schedule order
	saveMu sync.Mutex

	mu         sync.Mutex
	pending    T
	hasPending bool
	timer      clock.Timer
	generation uint64
	stopped    bool
}

// New creates a Debouncer
func New[T any](clk clock.Clock, cfg Config, save SaveFunc[T], logger *slog.Logger) *Debouncer[T] {
	if cfg.Delay <= 0 {
		cfg.Delay = DefaultConfig().Delay
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultConfig().Timeout
	}
	return &Debouncer[T]{
		clock:  clk,
		cfg:    cfg,
		save:   save,
		logger: logger,
	}
}

// Schedule replaces the pending value and restarts the quiet period
func (d *Debouncer[T]) Schedule(value T) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.stopped {
		return
	}

	d.pending = value
	d.hasPending = true
	if d.timer != nil {
		d.timer.Stop()
	}
	d.generation++
	gen := d.generation
	d.timer = d.clock.AfterFunc(d.cfg.Delay, func() { d.fire(gen) })
}

// Pending returns true if a value is waiting to be saved
func (d *Debouncer[T]) Pending() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.hasPending
}

// Flush saves the pending value immediately, if there is one
func (d *Debouncer[T]) Flush(ctx context.Context) {
	d.saveMu.Lock()
	defer d.saveMu.Unlock()

	value, ok := d.take(0)
	if !ok {
		return
	}
	d.logger.Debug("flushing pending save")
	d.save(ctx, value)
}

// Stop cancels any pending save and ignores later Schedule calls
func (d *Debouncer[T]) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.stopped = true
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	var zero T
	d.pending = zero
	d.hasPending = false
}

func (d *Debouncer[T]) fire(gen uint64) {
	d.saveMu.Lock()
	defer d.saveMu.Unlock()

	value, ok := d.take(gen)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), d.cfg.Timeout)
	defer cancel()
	d.save(ctx, value)
}

// take removes the pending value. A non-zero gen must match the latest
// Schedule call, so a superseded timer takes nothing.
func (d *Debouncer[T]) take(gen uint64) (T, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()

	var zero T
	if !d.hasPending || (gen != 0 && gen != d.generation) {
		return zero, false
	}
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	value := d.pending
	d.pending = zero
	d.hasPending = false
	return value, true
}
