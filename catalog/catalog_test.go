package catalog_test

import (
	"testing"

	spxinput "github.com/sphinxkit/spxinput"
	"github.com/sphinxkit/spxinput/catalog"
	"github.com/sphinxkit/spxinput/dsl"
)

func TestStructureShape_FieldOrder(t *testing.T) {
	want := []string{"cell", "movable", "movableX", "movableY", "movableZ", "species", "symmetry"}
	if len(catalog.Structure.Fields) != len(want) {
		t.Fatalf("field count = %d, want %d", len(catalog.Structure.Fields), len(want))
	}
	for i, f := range catalog.Structure.Fields {
		if f.Name != want[i] {
			t.Fatalf("field %d = %q, want %q", i, f.Name, want[i])
		}
	}
	cell, _ := catalog.Structure.Field("cell")
	if !cell.Required || cell.Kind != dsl.KindMatrix {
		t.Fatalf("cell must be a required matrix: %+v", cell)
	}
}

func TestRegistry_CrossReferences(t *testing.T) {
	// scfDiag embeds the shared CCG shape by name
	f, ok := catalog.ScfDiag.Field("CCG")
	if !ok || f.Ref != "CCG" {
		t.Fatalf("scfDiag must reference CCG by name: %+v", f)
	}
	shared, ok := catalog.Lookup("CCG")
	if !ok {
		t.Fatalf("CCG shape must be registered")
	}
	if shared.Name != catalog.CCG.Name || len(shared.Fields) != len(catalog.CCG.Fields) {
		t.Fatalf("lookup must return the registered shape")
	}

	// both the species list and the symmetry group resolve through the registry
	sp, _ := catalog.Structure.Field("species")
	if sp.Ref != "species" || sp.Kind != dsl.KindGroupList {
		t.Fatalf("species field misdeclared: %+v", sp)
	}
	sym, _ := catalog.Structure.Field("symmetry")
	if sym.Ref != "symmetry" || sym.Kind != dsl.KindGroup {
		t.Fatalf("symmetry field misdeclared: %+v", sym)
	}
}

func TestScfDiag_DefaultsResolvedAtBuild(t *testing.T) {
	n, meta, err := catalog.ScfDiag.BuildWithMeta(map[string]any{"maxSteps": 30})
	if err != nil {
		t.Fatalf("build err: %v", err)
	}
	if v, _ := n.Get("dEnergy"); v != 1e-8 {
		t.Fatalf("dEnergy default = %v, want 1e-8", v)
	}
	if v, _ := n.Get("printSteps"); v != 10 {
		t.Fatalf("printSteps default = %v, want 10", v)
	}
	if !meta.DefaultApplied["scfDiag.dEnergy"] || !meta.DefaultApplied["scfDiag.printSteps"] {
		t.Fatalf("defaults not recorded: %+v", meta.DefaultApplied)
	}
}

func TestMain_ScfDiagSequence(t *testing.T) {
	n, err := catalog.Main.Build(map[string]any{
		"scfDiag": []map[string]any{
			{"maxSteps": 10, "rhoMixing": 0.5},
			{"maxSteps": 50},
		},
	})
	if err != nil {
		t.Fatalf("build err: %v", err)
	}
	v, ok := n.Get("scfDiag")
	if !ok {
		t.Fatalf("scfDiag missing")
	}
	list := v.([]*spxinput.Node)
	if len(list) != 2 {
		t.Fatalf("scfDiag sequence length = %d, want 2", len(list))
	}
	if ms, _ := list[0].Get("maxSteps"); ms != 10 {
		t.Fatalf("first scfDiag maxSteps = %v, want 10", ms)
	}
}

func TestSphinx_AssemblesFullDocument(t *testing.T) {
	basis, err := catalog.Basis.Build(map[string]any{
		"eCut":    340.0,
		"kPoints": map[string]any{"relative": true, "dK": 0.1},
	})
	if err != nil {
		t.Fatalf("basis err: %v", err)
	}
	doc, err := catalog.Sphinx.Build(map[string]any{
		"basis": basis,
		"main": map[string]any{
			"scfDiag": []map[string]any{{"maxSteps": 100}},
		},
	})
	if err != nil {
		t.Fatalf("sphinx err: %v", err)
	}
	want := []string{"basis", "main"}
	got := doc.Keys()
	if len(got) != len(want) || got[0] != want[0] || got[1] != want[1] {
		t.Fatalf("keys = %v, want %v", got, want)
	}
}
