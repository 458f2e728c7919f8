// Package encode translates an atomic-structure snapshot into the SPHInX
// structure group and its companion initial-guess spin declarations.
package encode

import (
	"sort"

	spxinput "github.com/sphinxkit/spxinput"
	"github.com/sphinxkit/spxinput/catalog"
	"github.com/sphinxkit/spxinput/codec"
	"github.com/sphinxkit/spxinput/i18n"
)

// BohrRadiusAngstrom is one Bohr radius in angstrom (CODATA 2022). The model
// carries angstrom; the engine wants atomic units.
const BohrRadiusAngstrom = 0.529177210544

// StructureProvider exposes the model arrays the encoder consumes. All
// per-atom sequences are aligned by atom index and must share one length.
type StructureProvider interface {
	Cell() [3][3]float64
	Positions() [][3]float64
	Elements() []string
	MagneticMoments() []float64
	FixedAxes() [][3]bool
}

// Options controls the encoding.
type Options struct {
	// UseSymmetry lets the engine detect and exploit structural symmetry.
	// When false, the structure group carries an explicit identity symmetry
	// operator to suppress detection.
	UseSymmetry bool
}

// Structure encodes the snapshot into the structure group plus one atomicSpin
// declaration per distinct magnetic moment, sorted ascending by moment.
//
// Atoms are grouped into one species per distinct element (sorted element
// order, matching order.Forward's class order); within a species the native
// row order is kept. A fixed axis in the model means the atom is not movable
// along it.
func Structure(p StructureProvider, opt Options) (*spxinput.Node, []*spxinput.Node, error) {
	cell := p.Cell()
	positions := p.Positions()
	elements := p.Elements()
	moments := p.MagneticMoments()
	fixed := p.FixedAxes()

	if err := checkAligned(len(positions), len(elements), len(moments), len(fixed)); err != nil {
		return nil, nil, err
	}

	var cellBohr [][]float64
	for i := range cell {
		row := make([]float64, 3)
		for j := range cell[i] {
			row[j] = cell[i][j] / BohrRadiusAngstrom
		}
		cellBohr = append(cellBohr, row)
	}

	species, err := speciesList(positions, elements, moments, fixed)
	if err != nil {
		return nil, nil, err
	}

	values := map[string]any{
		"cell":    cellBohr,
		"species": species,
	}
	if !opt.UseSymmetry {
		identity := [][]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}
		operator, err := catalog.Operator.Build(map[string]any{"S": identity})
		if err != nil {
			return nil, nil, err
		}
		symmetry, err := catalog.Symmetry.Build(map[string]any{"operator": operator})
		if err != nil {
			return nil, nil, err
		}
		values["symmetry"] = symmetry
	}
	group, err := catalog.Structure.Build(values)
	if err != nil {
		return nil, nil, err
	}

	spins, err := spinDeclarations(moments)
	if err != nil {
		return nil, nil, err
	}
	return group, spins, nil
}

func checkAligned(n, elements, moments, fixed int) error {
	var iss spxinput.Issues
	for _, f := range []struct {
		name string
		got  int
	}{
		{"elements", elements},
		{"magmoms", moments},
		{"fixed", fixed},
	} {
		if f.got != n {
			iss = spxinput.AppendIssues(iss, spxinput.Issue{
				Path:    f.name,
				Code:    spxinput.CodeValueError,
				Message: i18n.T(spxinput.CodeValueError, nil),
				Hint:    "length must match atom count",
				Params:  map[string]any{"got": f.got, "want": n},
			})
		}
	}
	if len(iss) > 0 {
		return iss
	}
	return nil
}

// speciesList builds one species node per distinct element, exhaustively and
// disjointly over the atoms.
func speciesList(positions [][3]float64, elements []string, moments []float64, fixed [][3]bool) ([]*spxinput.Node, error) {
	distinct := distinctSorted(elements)
	species := make([]*spxinput.Node, 0, len(distinct))
	for _, elm := range distinct {
		var atoms []*spxinput.Node
		for i, e := range elements {
			if e != elm {
				continue
			}
			atom, err := atomNode(positions[i], moments[i], fixed[i])
			if err != nil {
				return nil, err
			}
			atoms = append(atoms, atom)
		}
		sp, err := catalog.Species.Build(map[string]any{"element": elm, "atom": atoms})
		if err != nil {
			return nil, err
		}
		species = append(species, sp)
	}
	return species, nil
}

func atomNode(pos [3]float64, moment float64, fixedAxes [3]bool) (*spxinput.Node, error) {
	values := map[string]any{
		"coords": []float64{
			pos[0] / BohrRadiusAngstrom,
			pos[1] / BohrRadiusAngstrom,
			pos[2] / BohrRadiusAngstrom,
		},
		"label": codec.FormatSpin(moment),
	}
	movable := [3]bool{!fixedAxes[0], !fixedAxes[1], !fixedAxes[2]}
	for k, v := range Movability(movable) {
		values[k] = v
	}
	return catalog.Atom.Build(values)
}

// spinDeclarations emits one atomicSpin node per distinct moment value,
// ascending, so every label used on an atom has its numeric value declared.
func spinDeclarations(moments []float64) ([]*spxinput.Node, error) {
	seen := map[float64]bool{}
	distinct := make([]float64, 0, len(moments))
	for _, m := range moments {
		if !seen[m] {
			seen[m] = true
			distinct = append(distinct, m)
		}
	}
	sort.Float64s(distinct)
	out := make([]*spxinput.Node, 0, len(distinct))
	for _, m := range distinct {
		n, err := catalog.AtomicSpin.Build(map[string]any{
			"label": codec.FormatSpin(m),
			"spin":  m,
		})
		if err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, nil
}

func distinctSorted(elements []string) []string {
	seen := map[string]bool{}
	out := make([]string, 0, len(elements))
	for _, e := range elements {
		if !seen[e] {
			seen[e] = true
			out = append(out, e)
		}
	}
	sort.Strings(out)
	return out
}
