// SPDX-License-Identifier: MIT

// Package batch classifies many conic sections concurrently and moves them
// in and out of YAML.
//
// Sections share no state, so the runner fans items over a bounded pool and
// writes each report into the slot of its input; output order always equals
// input order.
package batch

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/conic/conic"
	"github.com/katalvlaran/conic/internal/logging"
)

// Item is one named coefficient set.
type Item struct {
	Name string  `yaml:"name,omitempty"`
	A    float64 `yaml:"a"`
	B    float64 `yaml:"b"`
	C    float64 `yaml:"c"`
	D    float64 `yaml:"d"`
	E    float64 `yaml:"e"`
	F    float64 `yaml:"f"`
}

// Section builds the conic for the item.
func (it Item) Section(opts ...conic.Option) conic.Section {
	return conic.New(it.A, it.B, it.C, it.D, it.E, it.F, opts...)
}

// Result pairs an item name with its report.
type Result struct {
	Name   string
	Report conic.Report
}

// Classify analyzes every item and returns the results in input order.
//
// Implementation:
//   - Stage 1: resolve options; an empty batch returns (nil, nil).
//   - Stage 2: run up to Options.workers analyses at a time. Each worker
//     validates its item, analyzes it and stores the result at its index.
//   - Stage 3: wait; the first failure or a cancelled ctx aborts the batch.
//
// Errors:
//   - ErrInvalidItem (wrapping conic.ErrNonFinite) for NaN/±Inf coefficients.
//   - ctx.Err() when ctx is cancelled before every item is done.
func Classify(ctx context.Context, items []Item, opts ...Option) ([]Result, error) {
	o := gatherOptions(opts...)
	if len(items) == 0 {
		return nil, nil
	}
	log := o.log.WithName("batch")
	log.V(logging.DEBUG).Info("Starting batch", "items", len(items), "workers", o.workers)

	results := make([]Result, len(items))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.workers)
	for i := range items {
		if gctx.Err() != nil {
			break
		}
		i := i
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			it := items[i]
			s := it.Section(o.conic...)
			if err := s.Validate(); err != nil {
				return itemError(i, it.Name, err)
			}
			rep := s.Analyze()
			results[i] = Result{Name: it.Name, Report: rep}
			log.V(logging.TRACE).Info("Classified item",
				"index", i, "name", it.Name, "class", rep.Classification.String())

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, batchErrorf(opClassify, err)
	}
	if err := ctx.Err(); err != nil {
		return nil, batchErrorf(opClassify, err)
	}
	log.V(logging.DEBUG).Info("Finished batch", "items", len(results))

	return results, nil
}

// Tally counts results per classification name.
func Tally(results []Result) map[string]int {
	out := make(map[string]int)
	for _, r := range results {
		out[fmt.Sprint(r.Report.Classification)]++
	}

	return out
}
