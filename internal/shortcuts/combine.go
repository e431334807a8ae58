package shortcuts

import (
	"github.com/skishore/inkstone/internal/models"
	"github.com/skishore/inkstone/internal/stroke"
)

// combine turns the bounding boxes of the strokes a rule matched into the
// fused medians that rule proposes.
func combine(id RuleID, boxes []stroke.Rect) []models.Polyline {
	switch id {
	case RuleWoman:
		return combineWoman(boxes)
	case RuleHookDescender:
		return combineHookDescender(boxes)
	case RuleThread:
		return combineThread(boxes)
	case RulePath:
		return pathRadical(boxes[0])
	case RulePathTail:
		return combinePathTail(boxes)
	default:
		return nil
	}
}

func combineWoman(boxes []stroke.Rect) []models.Polyline {
	if boxes[0].R < boxes[1].R {
		return nil
	}
	return []models.Polyline{{
		boxes[1].BL(),
		{X: boxes[0].R, Y: boxes[1].T},
		boxes[0].BL(),
	}}
}

func combineHookDescender(boxes []stroke.Rect) []models.Polyline {
	full := models.Polyline{
		boxes[0].TL(),
		boxes[0].TR(),
		boxes[1].TR(),
		boxes[1].BR(),
		{X: boxes[1].L, Y: boxes[1].B + boxes[1].L - boxes[1].R},
	}
	return []models.Polyline{full, without(full, 2, 3)}
}

func combineThread(boxes []stroke.Rect) []models.Polyline {
	return []models.Polyline{{
		boxes[0].TR(),
		boxes[0].BL(),
		boxes[1].TR(),
		boxes[1].BL(),
		{X: boxes[1].R, Y: 0.25*boxes[1].T + 0.75*boxes[1].B},
	}}
}

// pathRadical draws the zig-zag of 廴 and the body of 辶, plus two variants
// with fewer folds.
func pathRadical(box stroke.Rect) []models.Polyline {
	mid := 0.5*box.T + 0.5*box.B
	full := models.Polyline{
		box.TL(),
		box.TR(),
		{X: box.L, Y: mid},
		{X: box.R, Y: mid},
		box.BL(),
	}
	return []models.Polyline{
		full,
		without(full, 3, 4),
		without(full, 2, 4),
	}
}

func combinePathTail(boxes []stroke.Rect) []models.Polyline {
	options := pathRadical(boxes[0])
	for i, option := range options {
		options[i] = append(option, boxes[1].BR())
	}
	return options
}

// without returns a copy of line with points [from, to) removed.
func without(line models.Polyline, from, to int) models.Polyline {
	result := make(models.Polyline, 0, len(line)-(to-from))
	result = append(result, line[:from]...)
	return append(result, line[to:]...)
}
