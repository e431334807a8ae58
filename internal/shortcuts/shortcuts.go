// Package shortcuts builds extra match targets for radicals that learners
// routinely write as one continuous stroke even though the canonical data
// splits them into several.
package shortcuts

import (
	"fmt"

	"golang.org/x/text/unicode/norm"

	"github.com/skishore/inkstone/internal/models"
	"github.com/skishore/inkstone/internal/stroke"
)

type RuleID int

const (
	RuleWoman RuleID = iota
	RuleHookDescender
	RuleThread
	RulePath
	RulePathTail
)

func (id RuleID) String() string {
	switch id {
	case RuleWoman:
		return "woman"
	case RuleHookDescender:
		return "hook-descender"
	case RuleThread:
		return "thread"
	case RulePath:
		return "path"
	case RulePathTail:
		return "path-tail"
	default:
		return fmt.Sprintf("rule(%d)", int(id))
	}
}

// Signature names one stroke by its component label and its index within
// that component.
type Signature struct {
	Label string
	Index int
}

// Rule matches when the component map, starting at some stroke, agrees with
// any one of its alternative signature sequences. All alternatives of a rule
// have the same length.
type Rule struct {
	ID         RuleID
	Signatures [][]Signature
}

func (r Rule) Len() int {
	return len(r.Signatures[0])
}

var Rules = []Rule{
	{
		ID:         RuleWoman,
		Signatures: [][]Signature{{{"女", 1}, {"女", 2}}},
	},
	{
		ID: RuleHookDescender,
		Signatures: [][]Signature{
			{{"了", 0}, {"了", 1}},
			{{"孑", 0}, {"孑", 1}},
		},
	},
	{
		ID: RuleThread,
		Signatures: [][]Signature{
			{{"纟", 0}, {"纟", 1}},
			{{"幺", 0}, {"幺", 1}},
		},
	},
	{
		ID:         RulePath,
		Signatures: [][]Signature{{{"廴", 0}}, {{"辶", 1}}},
	},
	{
		ID: RulePathTail,
		Signatures: [][]Signature{
			{{"廴", 0}, {"廴", 1}},
			{{"辶", 1}, {"辶", 2}},
		},
	},
}

// Generate returns one candidate per polyline produced by each rule matching
// at each stroke, in stroke order then rule order.
func Generate(components models.ComponentMap, medians []models.Polyline) ([]models.Candidate, error) {
	if len(components) != len(medians) {
		return nil, fmt.Errorf("%w: %d component entries for %d medians",
			models.ErrMismatchedComponents, len(components), len(medians))
	}
	components = normalize(components)

	var result []models.Candidate
	for i := range components {
		for _, rule := range Rules {
			if !rule.matches(components[i:]) {
				continue
			}
			n := rule.Len()
			boxes := make([]stroke.Rect, n)
			for k := range boxes {
				boxes[k] = stroke.Bounds(medians[i+k])
			}
			indices := make([]int, n)
			for k := range indices {
				indices[k] = i + k
			}
			for _, median := range combine(rule.ID, boxes) {
				result = append(result, models.Candidate{Indices: indices, Median: median})
			}
		}
	}
	return result, nil
}

func (r Rule) matches(components models.ComponentMap) bool {
	for _, signature := range r.Signatures {
		if signatureMatches(components, signature) {
			return true
		}
	}
	return false
}

func signatureMatches(components models.ComponentMap, signature []Signature) bool {
	if len(components) < len(signature) {
		return false
	}
	for k, s := range signature {
		index, ok := components[k][norm.NFC.String(s.Label)]
		if !ok || index != s.Index {
			return false
		}
	}
	return true
}

func normalize(components models.ComponentMap) models.ComponentMap {
	result := make(models.ComponentMap, len(components))
	for i, entry := range components {
		result[i] = make(map[string]int, len(entry))
		for label, index := range entry {
			result[i][norm.NFC.String(label)] = index
		}
	}
	return result
}
