// Package structure holds the immutable atomic-structure snapshot consumed by
// the encoder: cell matrix, cartesian positions in angstrom, element labels,
// magnetic moments, and per-axis fixed flags, all aligned by atom index.
package structure

import (
	spxinput "github.com/sphinxkit/spxinput"
	"github.com/sphinxkit/spxinput/i18n"
)

// Structure is a validated snapshot. All per-atom sequences have one entry
// per atom; nothing is mutated after New returns.
type Structure struct {
	cell      [3][3]float64
	positions [][3]float64
	elements  []string
	moments   []float64
	fixed     [][3]bool
}

// New validates and copies the model arrays. moments and fixed may be nil,
// meaning zero moment and no fixed axes; when given, their length must match
// the atom count. Mismatched lengths yield a value_error issue.
func New(cell [3][3]float64, positions [][3]float64, elements []string, moments []float64, fixed [][3]bool) (*Structure, error) {
	n := len(positions)
	if moments == nil {
		moments = make([]float64, n)
	}
	if fixed == nil {
		fixed = make([][3]bool, n)
	}
	var iss spxinput.Issues
	if len(elements) != n {
		iss = spxinput.AppendIssues(iss, lengthIssue("elements", len(elements), n))
	}
	if len(moments) != n {
		iss = spxinput.AppendIssues(iss, lengthIssue("magmoms", len(moments), n))
	}
	if len(fixed) != n {
		iss = spxinput.AppendIssues(iss, lengthIssue("fixed", len(fixed), n))
	}
	if len(iss) > 0 {
		return nil, iss
	}
	st := &Structure{
		cell:      cell,
		positions: make([][3]float64, n),
		elements:  make([]string, n),
		moments:   make([]float64, n),
		fixed:     make([][3]bool, n),
	}
	copy(st.positions, positions)
	copy(st.elements, elements)
	copy(st.moments, moments)
	copy(st.fixed, fixed)
	return st, nil
}

func lengthIssue(field string, got, want int) spxinput.Issue {
	return spxinput.Issue{
		Path:    field,
		Code:    spxinput.CodeValueError,
		Message: i18n.T(spxinput.CodeValueError, nil),
		Hint:    "length must match atom count",
		Params:  map[string]any{"got": got, "want": want},
	}
}

// Len returns the atom count.
func (s *Structure) Len() int { return len(s.positions) }

// Cell returns the 3x3 cell matrix in angstrom.
func (s *Structure) Cell() [3][3]float64 { return s.cell }

// Positions returns a copy of the cartesian positions in angstrom.
func (s *Structure) Positions() [][3]float64 {
	out := make([][3]float64, len(s.positions))
	copy(out, s.positions)
	return out
}

// Elements returns a copy of the per-atom element labels.
func (s *Structure) Elements() []string {
	out := make([]string, len(s.elements))
	copy(out, s.elements)
	return out
}

// MagneticMoments returns a copy of the per-atom initial moments.
func (s *Structure) MagneticMoments() []float64 {
	out := make([]float64, len(s.moments))
	copy(out, s.moments)
	return out
}

// FixedAxes returns a copy of the per-atom fixed-axis flags. A true entry
// pins the atom along that cartesian axis.
func (s *Structure) FixedAxes() [][3]bool {
	out := make([][3]bool, len(s.fixed))
	copy(out, s.fixed)
	return out
}
