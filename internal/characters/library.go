package characters

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/patrickmn/go-cache"
	"golang.org/x/text/unicode/norm"

	"github.com/skishore/inkstone/internal/logger"
	"github.com/skishore/inkstone/internal/matcher"
)

// Library indexes loaded records by character and keeps recently built
// matchers around, since building one simplifies every median.
type Library struct {
	records  map[string]*Record
	order    []string
	matchers *cache.Cache
	options  []matcher.Option
	logger   *slog.Logger
}

func NewLibrary(records []*Record, ttl time.Duration, options ...matcher.Option) *Library {
	if ttl <= 0 {
		ttl = cache.NoExpiration
	}
	l := &Library{
		records:  make(map[string]*Record, len(records)),
		matchers: cache.New(ttl, 2*ttl),
		options:  options,
		logger:   logger.Logger(),
	}
	for _, r := range records {
		if _, ok := l.records[r.Character]; !ok {
			l.order = append(l.order, r.Character)
		}
		l.records[r.Character] = r
	}
	return l
}

// Characters lists the characters in load order.
func (l *Library) Characters() []string {
	return append([]string(nil), l.order...)
}

func (l *Library) Lookup(character string) (*Record, error) {
	r, ok := l.records[norm.NFC.String(character)]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, character)
	}
	return r, nil
}

func (l *Library) Matcher(character string) (*matcher.Matcher, error) {
	r, err := l.Lookup(character)
	if err != nil {
		return nil, err
	}
	if m, ok := l.matchers.Get(r.Character); ok {
		return m.(*matcher.Matcher), nil
	}

	m, err := matcher.New(r.Strokes(), r.Components, l.options...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", r.Character, err)
	}
	l.matchers.Set(r.Character, m, cache.DefaultExpiration)
	l.logger.Info("built matcher", "character", r.Character, "candidates", len(m.Candidates()))
	return m, nil
}
