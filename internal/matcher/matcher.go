// Package matcher decides which stroke of a character, or which fused group
// of strokes, a learner's input stroke corresponds to.
package matcher

import (
	"fmt"
	"log/slog"
	"slices"

	"github.com/skishore/inkstone/internal/models"
	"github.com/skishore/inkstone/internal/recognizer"
	"github.com/skishore/inkstone/internal/shortcuts"
	"github.com/skishore/inkstone/internal/stroke"
)

// Matcher holds the candidate list for one character. It is immutable after
// New and safe for concurrent use.
type Matcher struct {
	candidates []models.Candidate
	recall     stroke.Simplifier
	logger     *slog.Logger
}

func New(strokes []models.CanonicalStroke, components models.ComponentMap, opts ...Option) (*Matcher, error) {
	o := optionNew(opts...)
	if len(components) != len(strokes) {
		return nil, fmt.Errorf("%w: %d component entries for %d strokes",
			models.ErrMismatchedComponents, len(components), len(strokes))
	}

	medians := make([]models.Polyline, len(strokes))
	for i, s := range strokes {
		medians[i] = o.precision.Simplify(s.Median)
	}
	extra, err := shortcuts.Generate(components, medians)
	if err != nil {
		return nil, err
	}

	candidates := make([]models.Candidate, 0, len(medians)+len(extra))
	for i, median := range medians {
		candidates = append(candidates, models.Candidate{Indices: []int{i}, Median: median})
	}
	candidates = append(candidates, extra...)

	o.logger.Debug("matcher built", "strokes", len(strokes), "shortcuts", len(extra))

	return &Matcher{
		candidates: candidates,
		recall:     o.recall,
		logger:     o.logger,
	}, nil
}

// Candidates returns a deep copy of the candidate list.
func (m *Matcher) Candidates() []models.Candidate {
	candidates := make([]models.Candidate, len(m.candidates))
	for i, c := range m.candidates {
		candidates[i] = models.Candidate{
			Indices: slices.Clone(c.Indices),
			Median:  slices.Clone(c.Median),
		}
	}
	return candidates
}

// Match returns the best-scoring viable candidate for stroke. missing lists,
// in ascending order, the strokes the learner has not drawn yet. A result
// with no indices means nothing matched.
func (m *Matcher) Match(input models.Polyline, missing []int) (models.MatchResult, error) {
	if len(missing) == 0 {
		return models.MatchResult{}, ErrNoMissingStrokes
	}
	if !ascending(missing) {
		return models.MatchResult{}, fmt.Errorf("%w: %v", ErrBadMissing, missing)
	}
	if len(input) < 2 {
		return models.MatchResult{}, fmt.Errorf("%w: got %d", ErrInvalidStroke, len(input))
	}
	source := m.recall.Simplify(input)

	best := models.NoMatch()
	for i, candidate := range m.candidates {
		if !Viable(candidate.Indices, missing) {
			continue
		}
		offset := slices.Min(candidate.Indices) - missing[0]
		result := recognizer.Recognize(source, candidate.Median, offset)
		m.logger.Debug("candidate", "index", i, "strokes", candidate.Indices,
			"offset", offset, "score", result.Score)
		if !result.Score.Greater(best.Score) {
			continue
		}
		best = models.MatchResult{
			Indices:          slices.Clone(candidate.Indices),
			Score:            result.Score,
			Penalties:        result.Penalties,
			SourceSegment:    result.Source,
			SimplifiedMedian: slices.Clone(candidate.Median),
			TargetSegment:    result.Target,
			Warning:          result.Warning,
		}
	}

	if best.Matched() {
		m.logger.Debug("matched", "strokes", best.Indices, "score", best.Score, "warning", best.Warning)
	} else {
		m.logger.Debug("no match", "missing", missing)
	}
	return best, nil
}

// ascending reports whether missing holds non-negative, strictly increasing
// stroke indices, so that missing[0] is the next stroke to draw.
func ascending(missing []int) bool {
	for i, index := range missing {
		if index < 0 || (i > 0 && index <= missing[i-1]) {
			return false
		}
	}
	return true
}

// Viable reports whether a candidate may be matched now: single strokes
// always can, and a shortcut only when its strokes are all done or all
// still missing.
func Viable(indices, missing []int) bool {
	if len(indices) == 1 {
		return true
	}
	remaining := 0
	for _, index := range indices {
		if slices.Contains(missing, index) {
			remaining++
		}
	}
	return remaining == 0 || remaining == len(indices)
}
