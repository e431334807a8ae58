// Package characters loads canonical stroke data in the make-me-a-hanzi
// graphics.txt layout: one JSON object per line with the character, its SVG
// stroke paths, its raw stroke medians, and optionally the component map
// derived from its decomposition.
package characters

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cast"
	"golang.org/x/text/unicode/norm"

	"github.com/skishore/inkstone/internal/models"
)

var (
	ErrNotFound = errors.New("character not found")
	ErrBadData  = errors.New("bad character data")
)

const (
	// Raw medians live in a 1024 unit box with y pointing up and the
	// baseline at y=900.
	rawSize     = 1024
	rawBaseline = 900

	maxLineSize = 4 << 20
)

type Record struct {
	Character  string
	Paths      []string
	Medians    []models.Polyline
	Components models.ComponentMap
}

type rawRecord struct {
	Character  string                   `json:"character"`
	Strokes    []string                 `json:"strokes"`
	Medians    [][][2]float64           `json:"medians"`
	Components []map[string]interface{} `json:"components"`
}

func (r *Record) Strokes() []models.CanonicalStroke {
	strokes := make([]models.CanonicalStroke, len(r.Medians))
	for i, median := range r.Medians {
		strokes[i] = models.CanonicalStroke{Path: r.Paths[i], Median: median}
	}
	return strokes
}

// Normalize maps a raw median into the unit square with y pointing down,
// the space input strokes are captured in.
func Normalize(raw [][2]float64) models.Polyline {
	median := make(models.Polyline, len(raw))
	for i, p := range raw {
		median[i] = models.Point{X: p[0] / rawSize, Y: (rawBaseline - p[1]) / rawSize}
	}
	return median
}

func Load(path string) ([]*Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return Parse(f)
}

func Parse(r io.Reader) ([]*Record, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	var records []*Record
	line := 0
	for scanner.Scan() {
		line++
		data := scanner.Bytes()
		if len(data) == 0 {
			continue
		}
		var raw rawRecord
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("line %d: %w: %v", line, ErrBadData, err)
		}
		record, err := raw.record()
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		records = append(records, record)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return records, nil
}

func (raw *rawRecord) record() (*Record, error) {
	character := norm.NFC.String(raw.Character)
	if character == "" {
		return nil, fmt.Errorf("%w: missing character", ErrBadData)
	}
	if len(raw.Strokes) != len(raw.Medians) {
		return nil, fmt.Errorf("%w: %s has %d strokes but %d medians",
			ErrBadData, character, len(raw.Strokes), len(raw.Medians))
	}

	medians := make([]models.Polyline, len(raw.Medians))
	for i, median := range raw.Medians {
		if len(median) < 2 {
			return nil, fmt.Errorf("%w: %s median %d has %d points",
				ErrBadData, character, i, len(median))
		}
		medians[i] = Normalize(median)
	}

	components, err := raw.componentMap(character)
	if err != nil {
		return nil, err
	}

	return &Record{
		Character:  character,
		Paths:      raw.Strokes,
		Medians:    medians,
		Components: components,
	}, nil
}

// componentMap coerces the loosely typed component indices. A record without
// component data treats the character as its own only component.
func (raw *rawRecord) componentMap(character string) (models.ComponentMap, error) {
	if raw.Components == nil {
		components := make(models.ComponentMap, len(raw.Medians))
		for i := range components {
			components[i] = map[string]int{character: i}
		}
		return components, nil
	}

	components := make(models.ComponentMap, len(raw.Components))
	for i, entry := range raw.Components {
		components[i] = make(map[string]int, len(entry))
		for label, value := range entry {
			index, err := cast.ToIntE(value)
			if err != nil {
				return nil, fmt.Errorf("%w: %s component %q of stroke %d: %v",
					ErrBadData, character, label, i, err)
			}
			components[i][norm.NFC.String(label)] = index
		}
	}
	return components, nil
}
