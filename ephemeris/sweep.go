package ephemeris

import (
	"context"
	"errors"
	"fmt"
	"math"
	"math/big"
	"runtime"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/echoflaresat/sunvec/earth"
)

// MaxSamples bounds a single Range.
const MaxSamples = 1_000_000

// chunkSize is the number of instants handed to one goroutine.
const chunkSize = 512

var (
	ErrInvalidStep    = errors.New("step must be positive")
	ErrInvalidRange   = errors.New("end before start")
	ErrTooManySamples = errors.New("too many samples")
)

// Source yields the sample for an instant. *Cache and ModelSource implement it.
type Source interface {
	Get(t time.Time) Sample
}

// ModelSource computes every sample directly from Model.
type ModelSource struct {
	Model earth.Model
}

func (s ModelSource) Get(t time.Time) Sample {
	return Compute(s.Model, t)
}

// SweepOptions tunes Sweep. The zero value uses GOMAXPROCS workers and no logging.
type SweepOptions struct {
	Workers int
	Logger  *zap.Logger
}

// Sweep computes samples for times concurrently. The result is in input
// order. Sweep stops early and returns ctx.Err() when ctx is cancelled.
func Sweep(ctx context.Context, src Source, times []time.Time, opts SweepOptions) ([]Sample, error) {
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}

	start := time.Now()
	out := make([]Sample, len(times))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for lo := 0; lo < len(times); lo += chunkSize {
		if gctx.Err() != nil {
			break
		}
		lo := lo // per-iteration copy (Go <1.22 loop semantics)
		hi := min(lo+chunkSize, len(times))
		g.Go(func() error {
			for i := lo; i < hi; i++ {
				if err := gctx.Err(); err != nil {
					return err
				}
				out[i] = src.Get(times[i])
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	// The loop may have stopped before scheduling every chunk.
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	log.Debug("sweep complete",
		zap.Int("samples", len(times)),
		zap.Int("workers", workers),
		zap.Duration("elapsed", time.Since(start)),
	)
	return out, nil
}

// Range returns start, start+step, ... up to and including end.
func Range(start, end time.Time, step time.Duration) ([]time.Time, error) {
	if step <= 0 {
		return nil, fmt.Errorf("%w: %s", ErrInvalidStep, step)
	}
	if end.Before(start) {
		return nil, fmt.Errorf("%w: %s < %s", ErrInvalidRange, end.Format(time.RFC3339), start.Format(time.RFC3339))
	}

	n, ok := countSteps(start, end, step)
	if !ok || n > MaxSamples {
		return nil, fmt.Errorf("%w: %s to %s every %s exceeds %d", ErrTooManySamples,
			start.Format(time.RFC3339), end.Format(time.RFC3339), step, MaxSamples)
	}

	// Accumulate instead of start.Add(i*step): i*step overflows past ~292 years.
	times := make([]time.Time, 0, n)
	for i, t := int64(0), start; i < n; i, t = i+1, t.Add(step) {
		times = append(times, t)
	}
	return times, nil
}

// countSteps returns the number of instants in the inclusive range. ok is
// false when the count does not fit in an int64.
func countSteps(start, end time.Time, step time.Duration) (int64, bool) {
	// time.Time.Sub saturates beyond ~292 years.
	if span := end.Sub(start); start.Add(span).Equal(end) {
		return int64(span/step) + 1, true
	}

	ns := new(big.Int).Mul(big.NewInt(end.Unix()-start.Unix()), big.NewInt(int64(time.Second)))
	ns.Add(ns, big.NewInt(int64(end.Nanosecond()-start.Nanosecond())))
	ns.Quo(ns, big.NewInt(int64(step)))
	if !ns.IsInt64() || ns.Int64() == math.MaxInt64 {
		return 0, false
	}
	return ns.Int64() + 1, true
}
