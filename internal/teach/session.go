// Package teach runs one attempt at writing a character: it feeds each input
// stroke to the matcher, tracks which strokes remain, and turns match
// results into learner feedback and a grade.
package teach

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"

	"github.com/google/uuid"

	"github.com/skishore/inkstone/internal/matcher"
	"github.com/skishore/inkstone/internal/models"
	"github.com/skishore/inkstone/internal/recognizer"
	"github.com/skishore/inkstone/internal/stroke"
)

var ErrDone = errors.New("character already complete")

type Kind int

const (
	// KindIgnored means the event had no effect.
	KindIgnored Kind = iota
	// KindTap is input too short to be a stroke.
	KindTap
	// KindMistake is a stroke that matched nothing.
	KindMistake
	// KindRepeat is a stroke that matched strokes already drawn.
	KindRepeat
	// KindAccepted is a stroke that completed one or more missing strokes.
	KindAccepted
	// KindComplete is an accepted stroke that finished the character.
	KindComplete
	// KindHint flashes the next missing stroke on request.
	KindHint
	// KindReveal shows every stroke on request.
	KindReveal
)

func (k Kind) String() string {
	switch k {
	case KindTap:
		return "tap"
	case KindMistake:
		return "mistake"
	case KindRepeat:
		return "repeat"
	case KindAccepted:
		return "accepted"
	case KindComplete:
		return "complete"
	case KindHint:
		return "hint"
	case KindReveal:
		return "reveal"
	default:
		return "ignored"
	}
}

func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

type Grade int

const (
	GradeGood Grade = iota
	GradeFair
	GradePoor
)

func (g Grade) String() string {
	switch g {
	case GradeGood:
		return "good"
	case GradeFair:
		return "fair"
	default:
		return "poor"
	}
}

func (g Grade) MarshalText() ([]byte, error) {
	return []byte(g.String()), nil
}

type Feedback struct {
	Kind   Kind               `json:"kind"`
	Result models.MatchResult `json:"result"`
	// Hint lists strokes the UI should flash.
	Hint     []int  `json:"hint,omitempty"`
	Message  string `json:"message,omitempty"`
	Mistakes int    `json:"mistakes"`
	Grade    *Grade `json:"grade,omitempty"`
}

// Session is one attempt at one character. It owns the missing-stroke set and
// must not be shared between goroutines.
type Session struct {
	ID uuid.UUID

	matcher     *matcher.Matcher
	strokeCount int
	missing     []int
	attempts    int
	mistakes    int

	maxAttempts int
	maxMistakes int
	messages    map[models.Warning]string
	logger      *slog.Logger
}

func NewSession(m *matcher.Matcher, strokeCount int, opts ...Option) *Session {
	o := optionNew(opts...)
	missing := make([]int, strokeCount)
	for i := range missing {
		missing[i] = i
	}
	id := uuid.New()
	return &Session{
		ID:          id,
		matcher:     m,
		strokeCount: strokeCount,
		missing:     missing,
		maxAttempts: o.maxAttempts,
		maxMistakes: o.maxMistakes,
		messages:    o.messages,
		logger:      o.logger.With("session", id.String()),
	}
}

func (s *Session) Missing() []int {
	return slices.Clone(s.missing)
}

func (s *Session) Mistakes() int {
	return s.mistakes
}

func (s *Session) Done() bool {
	return len(s.missing) == 0
}

// Grade maps the mistake count onto good, fair or poor.
func (s *Session) Grade() Grade {
	return Grade(min(2*s.mistakes/s.maxMistakes, 2))
}

func (s *Session) OnStroke(input models.Polyline) (Feedback, error) {
	if s.Done() {
		return Feedback{}, ErrDone
	}
	if stroke.IsTap(input, recognizer.MinDistance) {
		return s.feedback(KindTap), nil
	}
	result, err := s.matcher.Match(input, s.missing)
	if err != nil {
		return Feedback{}, fmt.Errorf("session %s: %w", s.ID, err)
	}

	if !result.Matched() {
		s.attempts++
		fb := s.feedback(KindMistake)
		if s.attempts >= s.maxAttempts {
			s.mistakes++
			fb.Mistakes = s.mistakes
			fb.Hint = []int{s.missing[0]}
		}
		s.logger.Debug("stroke unmatched", "attempts", s.attempts, "mistakes", s.mistakes)
		return fb, nil
	}

	missing := slices.DeleteFunc(slices.Clone(s.missing), func(i int) bool {
		return slices.Contains(result.Indices, i)
	})
	if len(missing) == len(s.missing) {
		s.mistakes++
		fb := s.feedback(KindRepeat)
		fb.Result = result
		fb.Hint = slices.Clone(result.Indices)
		s.logger.Debug("stroke repeated", "strokes", result.Indices)
		return fb, nil
	}

	s.missing = missing
	var message string
	if result.Warning != models.WarningNone {
		s.mistakes++
		message = s.messages[result.Warning]
	}

	index := slices.Min(result.Indices)
	var hint []int
	switch {
	case s.Done():
	case s.missing[0] < index:
		s.mistakes += 2 * (index - s.missing[0])
		hint = []int{s.missing[0]}
	default:
		s.attempts = 0
	}

	kind := KindAccepted
	if s.Done() {
		kind = KindComplete
	}
	fb := s.feedback(kind)
	fb.Result = result
	fb.Message = message
	fb.Hint = hint
	if s.Done() {
		grade := s.Grade()
		fb.Grade = &grade
	}
	s.logger.Debug("stroke accepted", "strokes", result.Indices,
		"missing", s.missing, "mistakes", s.mistakes)
	return fb, nil
}

// OnClick asks for a hint: it costs two mistakes and flashes the next stroke.
func (s *Session) OnClick() (Feedback, error) {
	if s.Done() {
		return Feedback{}, ErrDone
	}
	s.mistakes += 2
	fb := s.feedback(KindHint)
	fb.Hint = []int{s.missing[0]}
	return fb, nil
}

// OnDouble reveals the whole character, but only once a mistake was made.
func (s *Session) OnDouble() Feedback {
	if s.mistakes == 0 {
		return s.feedback(KindIgnored)
	}
	fb := s.feedback(KindReveal)
	fb.Hint = make([]int, s.strokeCount)
	for i := range fb.Hint {
		fb.Hint[i] = i
	}
	return fb
}

func (s *Session) feedback(kind Kind) Feedback {
	return Feedback{Kind: kind, Result: models.NoMatch(), Mistakes: s.mistakes}
}
