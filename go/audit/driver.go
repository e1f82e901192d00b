/*
Copyright 2026 The Roundcheck Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package audit

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/roundcheck/roundcheck/go/decimal"
)

// ctxCheckInterval is how many candidates a depth processes between
// context checks. Comparisons are pure and fast, so checking on every
// iteration would cost more than it protects.
const ctxCheckInterval = 8192

// Options configures a run.
type Options struct {
	// MaxDepth is the largest fractional-digit count to audit; every
	// depth in [0, MaxDepth] is covered.
	MaxDepth int

	// Negative switches the candidate set to the negations of the
	// positive candidates.
	Negative bool

	// Mode is the reference rounder's tie-breaking policy.
	Mode decimal.RoundingMode

	// Workers bounds how many depths are audited concurrently.
	// Values below 2 select the serial reference behavior.
	Workers int

	// Observe, when non-nil, is invoked for every discrepancy found.
	// Calls are serialized; nothing is retained after the call.
	Observe func(Discrepancy)
}

// Discrepancy describes one disagreement between the two rounders.
type Discrepancy struct {
	Candidate Candidate
	Depth     int
	Reference string
	Display   string
}

// DepthTally counts the comparisons performed at one depth and how many
// of them mismatched.
type DepthTally struct {
	Depth      int
	Mismatches int64
	Total      int64
}

// Report is the aggregated outcome of a run.
type Report struct {
	Tallies []DepthTally
}

// Mismatches returns the run-wide discrepancy count.
func (r *Report) Mismatches() int64 {
	var n int64
	for _, t := range r.Tallies {
		n += t.Mismatches
	}
	return n
}

// Total returns the run-wide comparison count.
func (r *Report) Total() int64 {
	var n int64
	for _, t := range r.Tallies {
		n += t.Total
	}
	return n
}

// Ratio returns the mismatch fraction in [0, 1].
func (r *Report) Ratio() float64 {
	total := r.Total()
	if total == 0 {
		return 0
	}
	return float64(r.Mismatches()) / float64(total)
}

// Run audits every depth in [0, MaxDepth] and returns the per-depth
// tallies. Depths are independent, so with Workers > 1 each depth runs
// in its own goroutine and the local tallies are combined afterwards;
// no state is shared beyond the serialized Observe callback. The first
// rounder error aborts the whole run.
func Run(ctx context.Context, opts Options) (*Report, error) {
	if opts.MaxDepth < 0 {
		return nil, fmt.Errorf("audit: negative max depth %d", opts.MaxDepth)
	}

	var obsMu sync.Mutex
	observe := func(d Discrepancy) {
		if opts.Observe == nil {
			return
		}
		obsMu.Lock()
		defer obsMu.Unlock()
		opts.Observe(d)
	}

	report := &Report{Tallies: make([]DepthTally, opts.MaxDepth+1)}

	if opts.Workers < 2 {
		for depth := 0; depth <= opts.MaxDepth; depth++ {
			tally, err := runDepth(ctx, depth, opts, observe)
			if err != nil {
				return nil, err
			}
			report.Tallies[depth] = tally
		}
		return report, nil
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.Workers)
	for depth := 0; depth <= opts.MaxDepth; depth++ {
		g.Go(func() error {
			tally, err := runDepth(ctx, depth, opts, observe)
			if err != nil {
				return err
			}
			report.Tallies[depth] = tally
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return report, nil
}

// runDepth walks one depth's candidate sequence and returns its local
// tally.
func runDepth(ctx context.Context, depth int, opts Options, observe func(Discrepancy)) (DepthTally, error) {
	tally := DepthTally{Depth: depth}
	gen := NewGenerator(depth, opts.Negative)
	for {
		if tally.Total%ctxCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return tally, err
			}
		}
		c, ok := gen.Next()
		if !ok {
			return tally, nil
		}
		verdict, err := Compare(c.Value, depth, opts.Mode)
		if err != nil {
			return tally, err
		}
		tally.Total++
		if !verdict.Match {
			tally.Mismatches++
			observe(Discrepancy{
				Candidate: c,
				Depth:     depth,
				Reference: verdict.Reference,
				Display:   verdict.Display,
			})
		}
	}
}
