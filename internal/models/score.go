package models

import (
	"encoding/json"
	"fmt"
)

// Score is an alignment score that may be unreachable. The zero value is
// Unreachable, and every reachable score compares greater than it.
type Score struct {
	value     float64
	reachable bool
}

var Unreachable = Score{}

func Reachable(v float64) Score {
	return Score{value: v, reachable: true}
}

func (s Score) IsReachable() bool {
	return s.reachable
}

// Value returns the score and whether it is reachable.
func (s Score) Value() (float64, bool) {
	return s.value, s.reachable
}

// Add shifts a reachable score by d. Unreachable stays unreachable.
func (s Score) Add(d float64) Score {
	if !s.reachable {
		return s
	}
	return Reachable(s.value + d)
}

// Plus sums two scores; the sum is unreachable if either side is.
func (s Score) Plus(o Score) Score {
	if !s.reachable || !o.reachable {
		return Unreachable
	}
	return Reachable(s.value + o.value)
}

// Greater reports whether s is strictly better than o.
func (s Score) Greater(o Score) bool {
	if !s.reachable {
		return false
	}
	if !o.reachable {
		return true
	}
	return s.value > o.value
}

func (s Score) String() string {
	if !s.reachable {
		return "unreachable"
	}
	return fmt.Sprintf("%.3f", s.value)
}

func (s Score) MarshalJSON() ([]byte, error) {
	if !s.reachable {
		return []byte("null"), nil
	}
	return json.Marshal(s.value)
}
