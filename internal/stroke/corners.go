package stroke

import (
	"math"
	"slices"
)

// Simplifier reduces a dense polyline to its dominant vertices. The first and
// last points are kept exactly and the output is never longer than the input.
type Simplifier interface {
	Simplify(points Polyline) Polyline
}

// SimplifierFunc adapts a plain function to the Simplifier interface.
type SimplifierFunc func(points Polyline) Polyline

func (f SimplifierFunc) Simplify(points Polyline) Polyline {
	return f(points)
}

// Identity returns its input unchanged (as a copy).
var Identity = SimplifierFunc(func(points Polyline) Polyline {
	return append(Polyline(nil), points...)
})

// Shortstraw is a ShortStraw corner finder: resample, measure the "straw"
// chord around each point, and keep local minima of the straw length.
type Shortstraw struct {
	// Divisor sets the resampling interval as bounding-box diagonal / Divisor.
	Divisor float64
	// MedianFactor scales the median straw to get the corner threshold.
	MedianFactor float64
	// LineThreshold is the minimum chord/path ratio for the run between two
	// corners to count as a line; below it a halfway corner is inserted.
	LineThreshold float64
	// CollinearThreshold is the chord/path ratio above which a middle corner
	// is dropped.
	CollinearThreshold float64
}

// Recall tolerates spurious corners; used for freehand input.
var Recall = Shortstraw{
	Divisor:            40,
	MedianFactor:       0.95,
	LineThreshold:      0.95,
	CollinearThreshold: 0.95,
}

// Precision suppresses spurious corners; used for canonical medians.
var Precision = Shortstraw{
	Divisor:            40,
	MedianFactor:       0.9,
	LineThreshold:      0.9,
	CollinearThreshold: 0.9,
}

const strawWindow = 3

func (s Shortstraw) Simplify(points Polyline) Polyline {
	if len(points) < 3 {
		return append(Polyline(nil), points...)
	}
	first, last := points[0], points[len(points)-1]

	diagonal := Bounds(points).Diagonal()
	if diagonal == 0 {
		return Polyline{first, last}
	}
	resampled := Resample(points, diagonal/s.Divisor)
	corners := s.corners(resampled)

	result := make(Polyline, 0, len(corners))
	for _, c := range corners {
		result = append(result, resampled[c])
	}
	if len(result) < 2 {
		return Polyline{first, last}
	}
	result[0] = first
	result[len(result)-1] = last
	if len(result) > len(points) {
		return append(Polyline(nil), points...)
	}
	return result
}

func (s Shortstraw) corners(points Polyline) []int {
	n := len(points)
	if n <= 2*strawWindow {
		return []int{0, n - 1}
	}

	straws := make([]float64, n)
	for i := range straws {
		straws[i] = math.Inf(1)
	}
	valid := make([]float64, 0, n-2*strawWindow)
	for i := strawWindow; i < n-strawWindow; i++ {
		straws[i] = Distance(points[i-strawWindow], points[i+strawWindow])
		valid = append(valid, straws[i])
	}
	threshold := median(valid) * s.MedianFactor

	corners := []int{0}
	for i := strawWindow; i < n-strawWindow; i++ {
		if straws[i] >= threshold {
			continue
		}
		best := i
		for ; i < n-strawWindow && straws[i] < threshold; i++ {
			if straws[i] < straws[best] {
				best = i
			}
		}
		corners = append(corners, best)
	}
	corners = append(corners, n-1)

	return s.postProcess(points, corners, straws)
}

func (s Shortstraw) postProcess(points Polyline, corners []int, straws []float64) []int {
	for inserted := true; inserted; {
		inserted = false
		for i := 1; i < len(corners); i++ {
			a, b := corners[i-1], corners[i]
			if isLine(points, a, b, s.LineThreshold) {
				continue
			}
			c := halfwayCorner(straws, a, b)
			if c > a && c < b {
				corners = slices.Insert(corners, i, c)
				inserted = true
				break
			}
		}
	}

	for i := 1; i < len(corners)-1; i++ {
		if isLine(points, corners[i-1], corners[i+1], s.CollinearThreshold) {
			corners = slices.Delete(corners, i, i+1)
			i--
		}
	}
	return corners
}

func isLine(points Polyline, a, b int, threshold float64) bool {
	path := PathLength(points[a : b+1])
	if path == 0 {
		return true
	}
	return Distance(points[a], points[b])/path > threshold
}

// halfwayCorner picks the smallest straw in the middle half of (a, b). It
// returns a when no candidate has a finite straw.
func halfwayCorner(straws []float64, a, b int) int {
	quarter := max((b-a)/4, 1)
	best, bestValue := a, math.Inf(1)
	for i := a + quarter; i <= b-quarter; i++ {
		if straws[i] < bestValue {
			best, bestValue = i, straws[i]
		}
	}
	return best
}

func median(values []float64) float64 {
	sorted := slices.Clone(values)
	slices.Sort(sorted)
	mid := len(sorted) / 2
	if len(sorted)%2 == 0 {
		return (sorted[mid-1] + sorted[mid]) / 2
	}
	return sorted[mid]
}
