package matcher

import (
	"log/slog"

	"github.com/skishore/inkstone/internal/logger"
	"github.com/skishore/inkstone/internal/stroke"
)

type Options struct {
	precision stroke.Simplifier
	recall    stroke.Simplifier
	logger    *slog.Logger
}

type Option func(o *Options)

func optionNew(option ...Option) *Options {
	opts := &Options{
		precision: stroke.Precision,
		recall:    stroke.Recall,
	}
	for _, o := range option {
		o(opts)
	}
	if opts.logger == nil {
		opts.logger = logger.Logger()
	}

	return opts
}

// WithPrecision sets the simplifier run once over each canonical median.
func WithPrecision(s stroke.Simplifier) Option {
	return func(o *Options) {
		o.precision = s
	}
}

// WithRecall sets the simplifier run over every input stroke.
func WithRecall(s stroke.Simplifier) Option {
	return func(o *Options) {
		o.recall = s
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		o.logger = l
	}
}
