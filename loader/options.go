// SPDX-License-Identifier: MIT

package loader

import (
	"io"
	"log/slog"
)

// Report summarizes one load.
type Report struct {
	Nodes   int // nodes added or overwritten
	Edges   int // directed edges inserted
	Skipped int // rows that contributed nothing
	Partial int // two-way rows where only from→to could be inserted
}

// Add returns the field-wise sum of r and o.
func (r Report) Add(o Report) Report {
	return Report{
		Nodes:   r.Nodes + o.Nodes,
		Edges:   r.Edges + o.Edges,
		Skipped: r.Skipped + o.Skipped,
		Partial: r.Partial + o.Partial,
	}
}

// Option configures a load.
type Option func(*options)

type options struct {
	directed bool
	logger   *slog.Logger
}

func newOptions(opts ...Option) options {
	o := options{logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// WithDirected makes every CSV edge row one-way. YAML edges become one-way
// regardless of their oneway field.
func WithDirected() Option {
	return func(o *options) { o.directed = true }
}

// WithLogger sets the logger used to report skipped rows. Nil is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}
