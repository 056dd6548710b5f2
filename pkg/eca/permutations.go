package eca

import (
	"context"
	"fmt"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"
)

var tracer = otel.Tracer("eca.permutations")

// Permutations returns every binary row of width w, 2^w rows in total, in
// lexicographic order over (bit 0, ..., bit w-1). Width 0 yields one empty
// row and negative widths yield nil.
func Permutations(w int) [][]uint8 {
	if w < 0 {
		return nil
	}
	total := 1 << w
	rows := make([][]uint8, total)
	for n := range rows {
		row := make([]uint8, w)
		for j := range row {
			row[j] = uint8(n>>(w-1-j)) & 1
		}
		rows[n] = row
	}
	return rows
}

// Option configures SimulateAll.
type Option func(*options)

type options struct {
	threads int
	observe func(*Automaton) error
}

// WithThreads sets the number of workers. Values below 1 select
// runtime.NumCPU().
func WithThreads(n int) Option {
	return func(o *options) { o.threads = n }
}

// WithObserver registers fn to be called by a worker on each automaton right
// after it is simulated. fn runs concurrently on several workers. A non-nil
// return fails the worker, which stops processing its chunk.
func WithObserver(fn func(*Automaton) error) Option {
	return func(o *options) { o.observe = fn }
}

// SimulateAll simulates rule for generations steps on every binary row of
// the given width and returns the finished automata in unspecified order.
//
// The 2^width inputs are split into contiguous chunks of max(1, 2^width/T)
// rows, where T is the worker count, and each chunk runs on its own
// goroutine. Every history is kept, so memory grows as 2^width * width *
// generations. ctx only carries trace context; a started run always
// completes.
//
// If any worker returns an error or panics, SimulateAll waits for the rest
// and returns a *WorkerError with no results.
func SimulateAll(ctx context.Context, rule Rule, width, generations int, opts ...Option) ([]*Automaton, error) {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.threads < 1 {
		o.threads = runtime.NumCPU()
	}
	if width < 0 {
		return nil, fmt.Errorf("eca: negative width %d", width)
	}

	inputs := Permutations(width)
	chunkSize := max(1, len(inputs)/o.threads)
	chunks := (len(inputs) + chunkSize - 1) / chunkSize

	ctx, span := tracer.Start(ctx, "eca.SimulateAll",
		trace.WithAttributes(
			attribute.Int("rule", rule.Number()),
			attribute.Int("width", width),
			attribute.Int("generations", generations),
			attribute.Int("threads", o.threads),
			attribute.Int("chunks", chunks),
		),
	)
	defer span.End()
	start := time.Now()

	var (
		mu       sync.Mutex
		failures atomic.Int64
		g        errgroup.Group
	)
	results := make([]*Automaton, 0, len(inputs))
	for id, lo := 0, 0; lo < len(inputs); id, lo = id+1, lo+chunkSize {
		chunk := inputs[lo:min(lo+chunkSize, len(inputs))]
		g.Go(func() (err error) {
			defer func() {
				if r := recover(); r != nil {
					err = fmt.Errorf("worker %d panicked: %v", id, r)
				}
				if err != nil {
					failures.Add(1)
				}
			}()
			for _, input := range chunk {
				a := New(rule, input)
				a.Simulate(generations)
				if o.observe != nil {
					if err := o.observe(a); err != nil {
						return fmt.Errorf("worker %d: %w", id, err)
					}
				}
				mu.Lock()
				results = append(results, a)
				mu.Unlock()
			}
			return nil
		})
	}

	first := g.Wait()
	recordRun(ctx, rule, len(results), time.Since(start), first)
	if first != nil {
		werr := &WorkerError{Failures: int(failures.Load()), First: first}
		span.RecordError(werr)
		span.SetStatus(codes.Error, "worker failure")
		return nil, werr
	}
	span.SetAttributes(attribute.Int("automata", len(results)))
	return results, nil
}
