package dsl_test

import (
	"strings"
	"testing"

	g "github.com/sphinxkit/spxinput/dsl"
)

func TestGroupBuilder_DuplicateField(t *testing.T) {
	_, err := g.Group("basis").
		Field("eCut", g.KindFloat).Required().
		Field("eCut", g.KindFloat).Optional().
		Build()
	if err == nil || !strings.Contains(err.Error(), "twice") {
		t.Fatalf("expected duplicate-field error, got %v", err)
	}
}

func TestGroupBuilder_DefaultKindMismatch(t *testing.T) {
	_, err := g.Group("scfDiag").
		Field("maxSteps", g.KindInt).Default("many").
		Build()
	if err == nil {
		t.Fatalf("expected default-kind error")
	}
}

func TestGroupBuilder_DefaultOnGroupField(t *testing.T) {
	_, err := g.Group("structure").
		Field("symmetry", g.KindGroup).Default(map[string]any{}).
		Build()
	if err == nil {
		t.Fatalf("defaults on group fields must be rejected")
	}
}

func TestRegistry_DuplicateName(t *testing.T) {
	reg := g.NewRegistry()
	spec := mustSpec(t, g.Group("atom").Field("coords", g.KindVector).Required())
	if _, err := reg.Register(spec); err != nil {
		t.Fatalf("first register err: %v", err)
	}
	if _, err := reg.Register(spec); err == nil {
		t.Fatalf("expected duplicate-name error")
	}
	if _, ok := reg.Lookup("atom"); !ok {
		t.Fatalf("lookup must find the registered shape")
	}
	if _, ok := reg.Lookup("nope"); ok {
		t.Fatalf("lookup must miss unknown names")
	}
}

func TestBuild_UnresolvedRefRejectsMaps(t *testing.T) {
	// a group field without a registry reference accepts prebuilt nodes only
	spec := mustSpec(t, g.Group("sphinx").
		Field("pawPot", g.KindGroup).Optional())
	_, err := spec.Build(map[string]any{"pawPot": map[string]any{"species": nil}})
	if err == nil {
		t.Fatalf("map value without a shape reference must be rejected")
	}
}
