package dsl

import "fmt"

// Registry is a flat namespace of group shapes. Cross-references between
// shapes (a group embedding another group's shape) are expressed as Ref
// fields naming an entry here, so a shared sub-shape is declared exactly once.
type Registry struct {
	groups map[string]GroupSpec
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{groups: map[string]GroupSpec{}}
}

// Register binds the spec to this registry under its name. Re-registering a
// name is an error.
func (r *Registry) Register(spec GroupSpec) (GroupSpec, error) {
	if _, ok := r.groups[spec.Name]; ok {
		return GroupSpec{}, fmt.Errorf("dsl: group %q already registered", spec.Name)
	}
	spec.reg = r
	r.groups[spec.Name] = spec
	return spec, nil
}

// MustRegister is Register that panics on duplicates; registries are static
// program data.
func (r *Registry) MustRegister(spec GroupSpec) GroupSpec {
	s, err := r.Register(spec)
	if err != nil {
		panic(err)
	}
	return s
}

// Lookup returns the registered shape by name.
func (r *Registry) Lookup(name string) (GroupSpec, bool) {
	g, ok := r.groups[name]
	return g, ok
}
