// Package dsl declares group shapes as flat field specifications and builds
// ordered document nodes from them.
//
// A GroupSpec lists its fields in declaration order; Build walks that order,
// applies declared defaults, drops absent optionals, and rejects unknown keys
// and type mismatches. Nested group shapes are expressed as named references
// into a Registry, so shared shapes are declared once and embedded by name.
package dsl
