package shortcuts

import (
	"errors"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skishore/inkstone/internal/models"
)

func TestRuleSignaturesHaveConsistentLengths(t *testing.T) {
	for _, rule := range Rules {
		require.NotEmpty(t, rule.Signatures, rule.ID.String())
		for _, signature := range rule.Signatures {
			assert.Len(t, signature, rule.Len(), rule.ID.String())
		}
	}
}

func TestGenerateMismatchedLengths(t *testing.T) {
	_, err := Generate(models.ComponentMap{{"一": 0}}, nil)
	assert.True(t, errors.Is(err, models.ErrMismatchedComponents))
}

func TestGenerateNoShortcuts(t *testing.T) {
	components := models.ComponentMap{{"十": 0}, {"十": 1}}
	medians := []models.Polyline{{{X: 0, Y: 0.5}, {X: 1, Y: 0.5}}, {{X: 0.5, Y: 0}, {X: 0.5, Y: 1}}}
	candidates, err := Generate(components, medians)
	assert.Nil(t, err)
	assert.Empty(t, candidates)
}

func TestGenerateHookDescender(t *testing.T) {
	// 了: a horizontal hook followed by a vertical descender with a hook.
	components := models.ComponentMap{{"了": 0}, {"了": 1}}
	medians := []models.Polyline{
		{{X: 0.2, Y: 0.1}, {X: 0.8, Y: 0.1}, {X: 0.5, Y: 0.3}},
		{{X: 0.5, Y: 0.3}, {X: 0.5, Y: 0.9}, {X: 0.4, Y: 0.8}},
	}
	candidates, err := Generate(components, medians)
	require.Nil(t, err)
	require.Len(t, candidates, 2)

	full := models.Polyline{
		{X: 0.2, Y: 0.1}, {X: 0.8, Y: 0.1}, {X: 0.5, Y: 0.3}, {X: 0.5, Y: 0.9}, {X: 0.4, Y: 0.9 + 0.4 - 0.5},
	}
	assert.Equal(t, []int{0, 1}, candidates[0].Indices)
	assertPolylineNear(t, full, candidates[0].Median)
	assert.Equal(t, []int{0, 1}, candidates[1].Indices)
	assertPolylineNear(t, models.Polyline{full[0], full[1], full[3], full[4]}, candidates[1].Median)
}

func TestGenerateAlternativeSignature(t *testing.T) {
	// 孑 uses the same rule as 了 via its second signature.
	components := models.ComponentMap{{"孑": 0, "子": 0}, {"孑": 1, "子": 1}, {"孑": 2}}
	medians := []models.Polyline{
		{{X: 0.2, Y: 0.1}, {X: 0.8, Y: 0.1}},
		{{X: 0.5, Y: 0.3}, {X: 0.5, Y: 0.9}},
		{{X: 0.1, Y: 0.5}, {X: 0.9, Y: 0.4}},
	}
	candidates, err := Generate(components, medians)
	require.Nil(t, err)
	require.Len(t, candidates, 2)
	for _, c := range candidates {
		assert.Equal(t, []int{0, 1}, c.Indices)
	}
}

func TestGenerateWoman(t *testing.T) {
	components := models.ComponentMap{{"女": 0}, {"女": 1}, {"女": 2}}
	medians := []models.Polyline{
		{{X: 0.5, Y: 0.1}, {X: 0.3, Y: 0.6}, {X: 0.8, Y: 0.9}},
		{{X: 0.7, Y: 0.3}, {X: 0.2, Y: 0.9}},
		{{X: 0.1, Y: 0.5}, {X: 0.6, Y: 0.5}},
	}
	candidates, err := Generate(components, medians)
	require.Nil(t, err)
	require.Len(t, candidates, 1)
	assert.Equal(t, []int{1, 2}, candidates[0].Indices)
	assertPolylineNear(t, models.Polyline{{X: 0.1, Y: 0.5}, {X: 0.7, Y: 0.5}, {X: 0.2, Y: 0.9}}, candidates[0].Median)

	// When the third stroke sticks out past the second there is no shortcut.
	medians[2] = models.Polyline{{X: 0.1, Y: 0.5}, {X: 0.9, Y: 0.5}}
	candidates, err = Generate(components, medians)
	require.Nil(t, err)
	assert.Empty(t, candidates)
}

func TestGeneratePathRadical(t *testing.T) {
	// 辶 strokes 1 and 2 match both the single-stroke and the two-stroke rule.
	components := models.ComponentMap{
		{"辶": 0},
		{"辶": 1},
		{"辶": 2},
	}
	medians := []models.Polyline{
		{{X: 0.1, Y: 0.1}, {X: 0.2, Y: 0.2}},
		{{X: 0.1, Y: 0.3}, {X: 0.3, Y: 0.3}, {X: 0.1, Y: 0.5}, {X: 0.3, Y: 0.5}, {X: 0.1, Y: 0.7}},
		{{X: 0.1, Y: 0.7}, {X: 0.9, Y: 0.9}},
	}
	candidates, err := Generate(components, medians)
	require.Nil(t, err)
	require.Len(t, candidates, 6)

	for _, c := range candidates[:3] {
		assert.Equal(t, []int{1}, c.Indices)
	}
	for _, c := range candidates[3:] {
		assert.Equal(t, []int{1, 2}, c.Indices)
	}
	assert.Len(t, candidates[0].Median, 5)
	assert.Len(t, candidates[1].Median, 4)
	assert.Len(t, candidates[2].Median, 3)
	assert.Len(t, candidates[3].Median, 6)
	assert.Equal(t, models.Point{X: 0.9, Y: 0.9}, candidates[3].Median[5])
	assert.InDelta(t, 0.3, candidates[0].Median[3].X, 1e-9)
	assert.InDelta(t, 0.5, candidates[0].Median[3].Y, 1e-9)
}

func TestGenerateThread(t *testing.T) {
	medians := []models.Polyline{
		{{X: 0.5, Y: 0.1}, {X: 0.3, Y: 0.4}},
		{{X: 0.6, Y: 0.4}, {X: 0.2, Y: 0.8}},
	}
	want := models.Polyline{
		{X: 0.5, Y: 0.1}, {X: 0.3, Y: 0.4}, {X: 0.6, Y: 0.4}, {X: 0.2, Y: 0.8}, {X: 0.6, Y: 0.7},
	}
	for _, label := range []string{"纟", "幺"} {
		components := models.ComponentMap{{label: 0}, {label: 1}}
		candidates, err := Generate(components, medians)
		require.Nil(t, err)
		require.Len(t, candidates, 1, label)
		assert.Equal(t, []int{0, 1}, candidates[0].Indices)
		assertPolylineNear(t, want, candidates[0].Median)
	}
}

func TestGenerateExtendedPath(t *testing.T) {
	// 廴 matches the path rules at its first stroke rather than its second.
	components := models.ComponentMap{{"廴": 0}, {"廴": 1}}
	medians := []models.Polyline{
		{{X: 0.1, Y: 0.2}, {X: 0.4, Y: 0.2}, {X: 0.1, Y: 0.5}, {X: 0.4, Y: 0.5}, {X: 0.1, Y: 0.8}},
		{{X: 0.1, Y: 0.8}, {X: 0.9, Y: 0.9}},
	}
	candidates, err := Generate(components, medians)
	require.Nil(t, err)
	require.Len(t, candidates, 6)

	for _, c := range candidates[:3] {
		assert.Equal(t, []int{0}, c.Indices)
	}
	for _, c := range candidates[3:] {
		assert.Equal(t, []int{0, 1}, c.Indices)
	}
	full := models.Polyline{
		{X: 0.1, Y: 0.2}, {X: 0.4, Y: 0.2}, {X: 0.1, Y: 0.5}, {X: 0.4, Y: 0.5}, {X: 0.1, Y: 0.8},
	}
	assertPolylineNear(t, full, candidates[0].Median)
	assertPolylineNear(t, models.Polyline{full[0], full[1], full[2], full[4]}, candidates[1].Median)
	assertPolylineNear(t, models.Polyline{full[0], full[1], full[4]}, candidates[2].Median)
	tail := models.Point{X: 0.9, Y: 0.9}
	assertPolylineNear(t, append(slices.Clone(full), tail), candidates[3].Median)
	assertPolylineNear(t, models.Polyline{full[0], full[1], full[2], full[4], tail}, candidates[4].Median)
	assertPolylineNear(t, models.Polyline{full[0], full[1], full[4], tail}, candidates[5].Median)
}

func TestGenerateTruncatedSuffix(t *testing.T) {
	// A two-stroke signature cannot match starting at the last stroke.
	components := models.ComponentMap{{"x": 0}, {"纟": 0}}
	medians := []models.Polyline{{{X: 0, Y: 0}, {X: 1, Y: 1}}, {{X: 0, Y: 0}, {X: 1, Y: 1}}}
	candidates, err := Generate(components, medians)
	require.Nil(t, err)
	assert.Empty(t, candidates)
}

func TestGenerateNormalizesLabels(t *testing.T) {
	// U+F981 is a compatibility ideograph whose canonical form is 女.
	components := models.ComponentMap{{"\uf981": 1}, {"\uf981": 2}}
	medians := []models.Polyline{
		{{X: 0.7, Y: 0.3}, {X: 0.2, Y: 0.9}},
		{{X: 0.1, Y: 0.5}, {X: 0.6, Y: 0.5}},
	}
	candidates, err := Generate(components, medians)
	require.Nil(t, err)
	assert.Len(t, candidates, 1)
}

func assertPolylineNear(t *testing.T, want, got models.Polyline) {
	t.Helper()
	require.Len(t, got, len(want))
	for i := range want {
		assert.InDelta(t, want[i].X, got[i].X, 1e-9)
		assert.InDelta(t, want[i].Y, got[i].Y, 1e-9)
	}
}
