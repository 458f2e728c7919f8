package spxinput_test

import (
	"testing"

	json "github.com/goccy/go-json"

	spxinput "github.com/sphinxkit/spxinput"
)

func TestNode_KeyOrderIsInsertionOrder(t *testing.T) {
	n := spxinput.NewNode().
		Set("cell", [][]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}).
		Set("movable", true).
		Set("species", []*spxinput.Node{})

	want := []string{"cell", "movable", "species"}
	got := n.Keys()
	if len(got) != len(want) {
		t.Fatalf("keys = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("keys = %v, want %v", got, want)
		}
	}

	// replacing a value keeps the original position
	n.Set("movable", false)
	if ks := n.Keys(); ks[1] != "movable" {
		t.Fatalf("replace moved the key: %v", ks)
	}
	if v, _ := n.Get("movable"); v != false {
		t.Fatalf("replace did not update the value: %v", v)
	}
}

func TestNode_Equal(t *testing.T) {
	mk := func() *spxinput.Node {
		inner := spxinput.NewNode().Set("coords", []float64{0, 0, 0}).Set("label", "spin_1")
		return spxinput.NewNode().
			Set("element", "Fe").
			Set("atom", []*spxinput.Node{inner})
	}
	a, b := mk(), mk()
	if !a.Equal(b) {
		t.Fatalf("structurally identical nodes must be equal")
	}

	// same keys, different order
	c := spxinput.NewNode().Set("atom", []*spxinput.Node{}).Set("element", "Fe")
	d := spxinput.NewNode().Set("element", "Fe").Set("atom", []*spxinput.Node{})
	if c.Equal(d) {
		t.Fatalf("key order must be significant")
	}

	// different nested value
	e := mk()
	e.Set("element", "O")
	if a.Equal(e) {
		t.Fatalf("different values must not compare equal")
	}
}

func TestNode_MarshalJSONPreservesOrder(t *testing.T) {
	n := spxinput.NewNode().
		Set("zeta", 1).
		Set("alpha", "x").
		Set("inner", spxinput.NewNode().Set("b", true).Set("a", false))
	b, err := json.Marshal(n)
	if err != nil {
		t.Fatalf("marshal err: %v", err)
	}
	want := `{"zeta":1,"alpha":"x","inner":{"b":true,"a":false}}`
	if string(b) != want {
		t.Fatalf("got %s, want %s", b, want)
	}
}
