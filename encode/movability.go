package encode

import (
	spxinput "github.com/sphinxkit/spxinput"
	"github.com/sphinxkit/spxinput/i18n"
)

// Movability encodes per-axis movement permissions as atom fields. Uniform
// permissions collapse to a single movable flag; mixed permissions spell out
// every axis, including the false ones, so the engine cannot fall back to
// its movable-by-default behavior for a suppressed axis.
func Movability(axes [3]bool) map[string]any {
	switch {
	case axes[0] && axes[1] && axes[2]:
		return map[string]any{"movable": true}
	case !axes[0] && !axes[1] && !axes[2]:
		return map[string]any{"movable": false}
	default:
		return map[string]any{
			"movableX": axes[0],
			"movableY": axes[1],
			"movableZ": axes[2],
		}
	}
}

// MovabilityVec adapts a slice-shaped constraint vector, surfacing wrong
// arity as an invalid_type issue.
func MovabilityVec(axes []bool) ([3]bool, error) {
	if len(axes) != 3 {
		return [3]bool{}, spxinput.Issues{{
			Path:    "movable",
			Code:    spxinput.CodeInvalidType,
			Message: i18n.T(spxinput.CodeInvalidType, nil),
			Hint:    "expected 3 axis flags",
			Params:  map[string]any{"got": len(axes)},
		}}
	}
	return [3]bool{axes[0], axes[1], axes[2]}, nil
}
