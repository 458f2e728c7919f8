package structure_test

import (
	"testing"

	spxinput "github.com/sphinxkit/spxinput"
	"github.com/sphinxkit/spxinput/structure"
)

var identityCell = [3][3]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}

func TestNew_CopiesInput(t *testing.T) {
	positions := [][3]float64{{0, 0, 0}, {0.5, 0.5, 0.5}}
	elements := []string{"Fe", "O"}
	st, err := structure.New(identityCell, positions, elements, nil, nil)
	if err != nil {
		t.Fatalf("new err: %v", err)
	}
	elements[0] = "XX"
	positions[0][0] = 99
	if st.Elements()[0] != "Fe" || st.Positions()[0][0] != 0 {
		t.Fatalf("snapshot must not alias caller slices")
	}
	if st.Len() != 2 {
		t.Fatalf("len = %d, want 2", st.Len())
	}
	// nil moments and fixed default to zero values per atom
	if m := st.MagneticMoments(); len(m) != 2 || m[0] != 0 {
		t.Fatalf("default moments = %v", m)
	}
	if f := st.FixedAxes(); len(f) != 2 || f[1] != [3]bool{} {
		t.Fatalf("default fixed = %v", f)
	}
}

func TestNew_MismatchedLengths(t *testing.T) {
	_, err := structure.New(identityCell,
		[][3]float64{{0, 0, 0}, {1, 1, 1}},
		[]string{"Fe"},
		[]float64{1, 0, 2},
		nil,
	)
	iss, ok := spxinput.AsIssues(err)
	if !ok || len(iss) != 2 {
		t.Fatalf("expected two issues, got %v", err)
	}
	for _, it := range iss {
		if it.Code != spxinput.CodeValueError {
			t.Fatalf("expected value_error, got %+v", it)
		}
	}
	if iss[0].Path != "elements" || iss[1].Path != "magmoms" {
		t.Fatalf("unexpected paths: %+v", iss)
	}
}
