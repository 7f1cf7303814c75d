// SPDX-License-Identifier: MIT

// Package batch: functional configuration of the runner.
package batch

import (
	"runtime"

	"github.com/go-logr/logr"

	"github.com/katalvlaran/conic/conic"
)

const panicWorkersInvalid = "batch: WithWorkers: n must be >= 1"

// Option mutates internal options.
type Option func(*Options)

// Options is the effective runner configuration.
type Options struct {
	workers int
	log     logr.Logger
	conic   []conic.Option
}

// WithWorkers bounds the number of items classified at once. Panics when n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic(panicWorkersInvalid)
	}

	return func(o *Options) { o.workers = n }
}

// WithLogger sets the logger for per-item debug lines. Default: logr.Discard().
func WithLogger(log logr.Logger) Option {
	return func(o *Options) { o.log = log }
}

// WithConicOptions forwards classifier options (tolerance, boundary policy)
// to every section of the batch.
func WithConicOptions(opts ...conic.Option) Option {
	return func(o *Options) { o.conic = append(o.conic, opts...) }
}

// gatherOptions applies setters over the defaults: one worker per CPU and a
// discarding logger.
func gatherOptions(user ...Option) Options {
	o := Options{
		workers: runtime.GOMAXPROCS(0),
		log:     logr.Discard(),
	}
	for _, set := range user {
		set(&o)
	}

	return o
}
