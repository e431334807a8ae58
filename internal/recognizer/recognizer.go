// Package recognizer scores how well a simplified input stroke lines up with
// a simplified target median, segment by segment.
package recognizer

import (
	"math"

	"github.com/skishore/inkstone/internal/models"
	"github.com/skishore/inkstone/internal/stroke"
)

const (
	AngleThreshold       = math.Pi / 5
	DistanceThreshold    = 0.3
	LengthThreshold      = 1.5
	MaxMissedSegments    = 1
	MaxOutOfOrder        = 2
	MinDistance          = 1.0 / 16
	MissedSegmentPenalty = 1
	OutOfOrderPenalty    = 2
	ReversePenalty       = 2
)

// hookShapes are the two segment directions of the short terminal hooks a
// learner may leave off.
var hookShapes = [][]models.Point{
	{{X: 1, Y: 3}, {X: -3, Y: -1}},
	{{X: 3, Y: 3}, {X: 0, Y: -1}},
}

type Result struct {
	Score     models.Score
	Penalties int
	// Source is the first and last point of the input as aligned.
	Source models.Segment
	// Target is the first point of the target and the last one matched.
	Target models.Segment
	// Matched is the prefix of the target that the input covered.
	Matched models.Polyline
	Warning models.Warning
}

// Recognize aligns source against target. offset is how many strokes the
// target's first stroke is past the next stroke the learner should draw.
func Recognize(source, target models.Polyline, offset int) Result {
	if abs(offset) > MaxOutOfOrder {
		return Result{Score: models.Unreachable}
	}
	result := align(source, target)
	if !result.Score.IsReachable() {
		alternative := align(stroke.Reverse(source), target)
		if alternative.Score.IsReachable() && alternative.Warning == models.WarningNone {
			result = alternative
			result.Penalties++
			result.Score = result.Score.Add(-ReversePenalty)
			result.Warning = models.WarningStrokeBackward
		}
	}
	result.Score = result.Score.Add(-float64(abs(offset) * OutOfOrderPenalty))
	return result
}

// align fills memo[i][j], the best score for matching target[0..i] with
// source[0..j], allowing up to MaxMissedSegments source vertices to be
// absorbed into a single target segment.
func align(source, target models.Polyline) Result {
	if len(source) < 2 || len(target) < 2 {
		return Result{Score: models.Unreachable}
	}
	memo := make([][]models.Score, len(target))
	memo[0] = make([]models.Score, len(source))
	memo[0][0] = models.Reachable(0)
	for i := 1; i < len(target); i++ {
		row := make([]models.Score, len(source))
		for j := 1; j < len(source); j++ {
			best := models.Unreachable
			for k := max(j-MaxMissedSegments-1, 0); k < j; k++ {
				if !memo[i-1][k].IsReachable() {
					continue
				}
				pairing := scorePairing(
					models.Segment{source[k], source[j]},
					models.Segment{target[i-1], target[i]},
					i == 1,
				)
				penalty := float64((j - k - 1) * MissedSegmentPenalty)
				score := pairing.Plus(memo[i-1][k]).Add(-penalty)
				if score.Greater(best) {
					best = score
				}
			}
			row[j] = best
		}
		memo[i] = row
	}

	result := Result{Score: models.Unreachable}
	last := len(target) - 1
	first := last
	if hasHook(target) {
		first--
	}
	for i := first; i <= last; i++ {
		penalty := float64((last - i) * MissedSegmentPenalty)
		score := memo[i][len(source)-1].Add(-penalty)
		if !score.Greater(result.Score) {
			continue
		}
		result.Score = score
		result.Source = models.Segment{source[0], source[len(source)-1]}
		result.Target = models.Segment{target[0], target[i]}
		result.Matched = append(models.Polyline(nil), target[:i+1]...)
		result.Warning = models.WarningNone
		if i < last {
			result.Warning = models.WarningShouldHook
		}
	}
	return result
}

func scorePairing(source, target models.Segment, initial bool) models.Score {
	angle := stroke.AngleDiff(stroke.Angle(source[:]), stroke.Angle(target[:]))
	distance := stroke.Distance(midpoint(source), midpoint(target))
	length := math.Abs(math.Log(minimumLength(source) / minimumLength(target)))

	limit := AngleThreshold
	if !initial {
		limit *= 2
	}
	if angle > limit || distance > DistanceThreshold || length > LengthThreshold {
		return models.Unreachable
	}
	return models.Reachable(-(angle + distance + length))
}

func hasHook(median models.Polyline) bool {
	if len(median) < 3 {
		return false
	}
	if len(median) > 3 {
		return true
	}
	for _, shape := range hookShapes {
		if matchesShape(median, shape) {
			return true
		}
	}
	return false
}

// matchesShape checks each segment of median against the direction of the
// corresponding shape vector.
func matchesShape(median models.Polyline, shape []models.Point) bool {
	if len(median) != len(shape)+1 {
		return false
	}
	for i, direction := range shape {
		angle := stroke.AngleDiff(
			stroke.Angle(median[i:i+2]),
			stroke.Angle(models.Polyline{{}, direction}),
		)
		if angle >= AngleThreshold {
			return false
		}
	}
	return true
}

func midpoint(segment models.Segment) models.Point {
	return stroke.Bounds(segment[:]).Midpoint()
}

func minimumLength(segment models.Segment) float64 {
	return stroke.Distance(segment[0], segment[1]) + MinDistance
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
