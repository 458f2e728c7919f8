package dsl

import "fmt"

// Kind enumerates the value shapes a field may carry.
type Kind int

const (
	KindBool Kind = iota
	KindInt
	KindFloat
	KindString
	KindVector    // []float64
	KindIntVector // []int
	KindMatrix    // [][]float64
	KindGroup     // *spxinput.Node or map[string]any via a registry reference
	KindGroupList // ordered sequence of groups
)

func (k Kind) String() string {
	switch k {
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindString:
		return "string"
	case KindVector:
		return "vector"
	case KindIntVector:
		return "int vector"
	case KindMatrix:
		return "matrix"
	case KindGroup:
		return "group"
	case KindGroupList:
		return "group list"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// FieldSpec is one declared field of a group shape.
type FieldSpec struct {
	Name     string
	Kind     Kind
	Required bool
	// Ref names the registered group shape for KindGroup/KindGroupList fields
	// built from plain maps. Empty means only prebuilt nodes are accepted.
	Ref string
	// Default applies when the field is absent from the supplied values.
	Default    any
	HasDefault bool
}

// GroupSpec is an immutable group shape: named fields in declaration order.
type GroupSpec struct {
	Name   string
	Fields []FieldSpec

	reg *Registry
}

// Field returns the spec of the named field.
func (g GroupSpec) Field(name string) (FieldSpec, bool) {
	for _, f := range g.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return FieldSpec{}, false
}

type groupBuilder struct {
	name   string
	fields []FieldSpec
	err    error
}

type fieldStep struct {
	b *groupBuilder
}

// Group creates a new group-shape builder.
func Group(name string) *groupBuilder {
	return &groupBuilder{name: name}
}

// Field appends a field declaration; position in the shape is the call order.
func (b *groupBuilder) Field(name string, kind Kind) *fieldStep {
	for _, f := range b.fields {
		if f.Name == name && b.err == nil {
			b.err = fmt.Errorf("dsl: group %q declares field %q twice", b.name, name)
		}
	}
	b.fields = append(b.fields, FieldSpec{Name: name, Kind: kind})
	return &fieldStep{b: b}
}

func (f *fieldStep) last() *FieldSpec { return &f.b.fields[len(f.b.fields)-1] }

// Required marks the field as required and returns the builder.
func (f *fieldStep) Required() *groupBuilder {
	f.last().Required = true
	return f.b
}

// Optional marks the field as optional (the default) and returns the builder.
func (f *fieldStep) Optional() *groupBuilder {
	f.last().Required = false
	return f.b
}

// Ref names the registered shape used to build this field from a plain map.
func (f *fieldStep) Ref(group string) *fieldStep {
	f.last().Ref = group
	return f
}

// Default sets the value applied when the field is absent. The value must
// match the field's declared kind; Build reports a mismatch.
func (f *fieldStep) Default(v any) *groupBuilder {
	fs := f.last()
	fs.Default = v
	fs.HasDefault = true
	return f.b
}

func (f *fieldStep) Field(name string, kind Kind) *fieldStep { return f.b.Field(name, kind) }
func (f *fieldStep) Build() (GroupSpec, error)               { return f.b.Build() }
func (f *fieldStep) MustBuild() GroupSpec                    { return f.b.MustBuild() }

// Build freezes the declaration into an immutable GroupSpec.
func (b *groupBuilder) Build() (GroupSpec, error) {
	if b.err != nil {
		return GroupSpec{}, b.err
	}
	for _, f := range b.fields {
		if f.HasDefault {
			if f.Kind == KindGroup || f.Kind == KindGroupList {
				return GroupSpec{}, fmt.Errorf("dsl: group %q field %q: defaults are not supported on group fields", b.name, f.Name)
			}
			if _, ok := checkScalar(f.Kind, f.Default); !ok {
				return GroupSpec{}, fmt.Errorf("dsl: group %q field %q: default %v does not match kind %s", b.name, f.Name, f.Default, f.Kind)
			}
		}
	}
	fields := make([]FieldSpec, len(b.fields))
	copy(fields, b.fields)
	return GroupSpec{Name: b.name, Fields: fields}, nil
}

// MustBuild is Build that panics on declaration errors. Shape declarations
// are static program data, so a bad one is a programming error.
func (b *groupBuilder) MustBuild() GroupSpec {
	g, err := b.Build()
	if err != nil {
		panic(err)
	}
	return g
}
