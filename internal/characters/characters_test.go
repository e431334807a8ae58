package characters

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skishore/inkstone/internal/matcher"
	"github.com/skishore/inkstone/internal/models"
	"github.com/skishore/inkstone/internal/stroke"
)

const dataset = `{"character":"十","strokes":["M 100 400 L 920 400","M 510 800 L 510 -20"],"medians":[[[102.4,388],[921.6,388]],[[512,797.6],[512,-21.6]]]}

{"character":"了","strokes":["M a","M b"],"medians":[[[204.8,797.6],[819.2,797.6],[512,593.6]],[[512,593.6],[512,-21.6],[409.6,80.8]]],"components":[{"了":0},{"了":"1"}]}
`

func TestParse(t *testing.T) {
	records, err := Parse(strings.NewReader(dataset))
	require.Nil(t, err)
	require.Len(t, records, 2)

	shi := records[0]
	assert.Equal(t, "十", shi.Character)
	require.Len(t, shi.Medians, 2)
	assertPoint(t, models.Point{X: 0.1, Y: 0.5}, shi.Medians[0][0])
	assertPoint(t, models.Point{X: 0.9, Y: 0.5}, shi.Medians[0][1])
	assertPoint(t, models.Point{X: 0.5, Y: 0.1}, shi.Medians[1][0])
	assertPoint(t, models.Point{X: 0.5, Y: 0.9}, shi.Medians[1][1])
	assert.Equal(t, models.ComponentMap{{"十": 0}, {"十": 1}}, shi.Components)

	strokes := shi.Strokes()
	require.Len(t, strokes, 2)
	assert.Equal(t, "M 100 400 L 920 400", strokes[0].Path)
	assert.Equal(t, shi.Medians[1], strokes[1].Median)

	liao := records[1]
	assert.Equal(t, models.ComponentMap{{"了": 0}, {"了": 1}}, liao.Components)
}

func TestParseBadData(t *testing.T) {
	tests := []string{
		`{"character":"十","strokes":["M"],"medians":[]}`,
		`{"character":"十","strokes":["M"],"medians":[[[0,0]]]}`,
		`{"character":"","strokes":[],"medians":[]}`,
		`{"character":"十","strokes":["M"],"medians":[[[0,0],[1,1]]],"components":[{"十":"x"}]}`,
		`not json`,
	}
	for _, line := range tests {
		_, err := Parse(strings.NewReader(line))
		assert.True(t, errors.Is(err, ErrBadData), line)
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "graphics.txt")
	require.Nil(t, os.WriteFile(path, []byte(dataset), 0644))
	records, err := Load(path)
	require.Nil(t, err)
	assert.Len(t, records, 2)

	_, err = Load(filepath.Join(t.TempDir(), "missing.txt"))
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestLibrary(t *testing.T) {
	records, err := Parse(strings.NewReader(dataset))
	require.Nil(t, err)
	lib := NewLibrary(records, time.Minute,
		matcher.WithPrecision(stroke.Identity), matcher.WithRecall(stroke.Identity))

	assert.Equal(t, []string{"十", "了"}, lib.Characters())

	_, err = lib.Lookup("口")
	assert.True(t, errors.Is(err, ErrNotFound))
	_, err = lib.Matcher("口")
	assert.True(t, errors.Is(err, ErrNotFound))

	m, err := lib.Matcher("了")
	require.Nil(t, err)
	again, err := lib.Matcher("了")
	require.Nil(t, err)
	assert.Same(t, m, again)
	// Two singletons plus the two fused hook-descender shortcuts.
	assert.Len(t, m.Candidates(), 4)

	r, err := lib.Matcher("十")
	require.Nil(t, err)
	result, err := r.Match(models.Polyline{{X: 0.1, Y: 0.5}, {X: 0.9, Y: 0.5}}, []int{0, 1})
	require.Nil(t, err)
	assert.Equal(t, []int{0}, result.Indices)
}

func TestLibraryMismatchedComponents(t *testing.T) {
	records := []*Record{{
		Character:  "二",
		Paths:      []string{"M", "M"},
		Medians:    []models.Polyline{{{X: 0, Y: 0}, {X: 1, Y: 0}}, {{X: 0, Y: 1}, {X: 1, Y: 1}}},
		Components: models.ComponentMap{{"二": 0}},
	}}
	_, err := NewLibrary(records, 0).Matcher("二")
	assert.True(t, errors.Is(err, models.ErrMismatchedComponents))
}

func assertPoint(t *testing.T, want, got models.Point) {
	t.Helper()
	assert.InDelta(t, want.X, got.X, 1e-9)
	assert.InDelta(t, want.Y, got.Y, 1e-9)
}
