package models

import (
	"encoding/json"
	"errors"
)

var ErrMismatchedComponents = errors.New("mismatched components and medians")

type Point struct {
	X, Y float64
}

func (p Point) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]float64{p.X, p.Y})
}

func (p *Point) UnmarshalJSON(data []byte) error {
	var pair [2]float64
	if err := json.Unmarshal(data, &pair); err != nil {
		return err
	}
	p.X, p.Y = pair[0], pair[1]
	return nil
}

type Polyline []Point

// Segment is a two-point line, used for the endpoints of a matched stroke.
type Segment [2]Point

type CanonicalStroke struct {
	Path   string   `json:"path"`
	Median Polyline `json:"median"`
}

// ComponentMap holds, for each stroke of a character, the components that
// stroke belongs to and its local index within each of them.
type ComponentMap []map[string]int

type Candidate struct {
	Indices []int    `json:"indices"`
	Median  Polyline `json:"median"`
}

type Warning int

const (
	WarningNone Warning = iota
	WarningShouldHook
	WarningStrokeBackward
)

func (w Warning) String() string {
	switch w {
	case WarningShouldHook:
		return "should_hook"
	case WarningStrokeBackward:
		return "stroke_backward"
	default:
		return ""
	}
}

func (w Warning) MarshalJSON() ([]byte, error) {
	if w == WarningNone {
		return []byte("null"), nil
	}
	return json.Marshal(w.String())
}

type MatchResult struct {
	Indices          []int    `json:"indices"`
	Score            Score    `json:"score"`
	Penalties        int      `json:"penalties"`
	SourceSegment    Segment  `json:"source_segment"`
	SimplifiedMedian Polyline `json:"simplified_median"`
	TargetSegment    Segment  `json:"target_segment"`
	Warning          Warning  `json:"warning"`
}

// NoMatch is the result returned when no candidate aligns with the input.
func NoMatch() MatchResult {
	return MatchResult{Indices: []int{}, Score: Unreachable}
}

func (r MatchResult) Matched() bool {
	return len(r.Indices) > 0
}
