package teach

import (
	"log/slog"

	"github.com/skishore/inkstone/internal/logger"
	"github.com/skishore/inkstone/internal/models"
)

const (
	DefaultMaxAttempts = 3
	DefaultMaxMistakes = 4
)

var DefaultMessages = map[models.Warning]string{
	models.WarningShouldHook:     "Should hook.",
	models.WarningStrokeBackward: "Stroke backward.",
}

type Options struct {
	maxAttempts int
	maxMistakes int
	messages    map[models.Warning]string
	logger      *slog.Logger
}

type Option func(o *Options)

func optionNew(option ...Option) *Options {
	opts := &Options{
		maxAttempts: DefaultMaxAttempts,
		maxMistakes: DefaultMaxMistakes,
		messages:    DefaultMessages,
	}
	for _, o := range option {
		o(opts)
	}
	if opts.logger == nil {
		opts.logger = logger.Logger()
	}

	return opts
}

// WithMaxAttempts sets how many unmatched strokes in a row are allowed
// before the session counts a mistake and hints the next stroke.
func WithMaxAttempts(n int) Option {
	return func(o *Options) {
		if n > 0 {
			o.maxAttempts = n
		}
	}
}

// WithMaxMistakes sets the mistake count at which the grade bottoms out.
func WithMaxMistakes(n int) Option {
	return func(o *Options) {
		if n > 0 {
			o.maxMistakes = n
		}
	}
}

// WithMessages overrides the feedback text for match warnings, keyed by the
// warning's string form ("should_hook", "stroke_backward").
func WithMessages(messages map[string]string) Option {
	return func(o *Options) {
		merged := make(map[models.Warning]string, len(DefaultMessages))
		for w, text := range DefaultMessages {
			merged[w] = text
		}
		for _, w := range []models.Warning{models.WarningShouldHook, models.WarningStrokeBackward} {
			if text, ok := messages[w.String()]; ok {
				merged[w] = text
			}
		}
		o.messages = merged
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		o.logger = l
	}
}
