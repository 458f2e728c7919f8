package dsl

import (
	"fmt"
	"sort"

	spxinput "github.com/sphinxkit/spxinput"
	"github.com/sphinxkit/spxinput/i18n"
)

// BuildMeta records build metadata: the dotted paths of fields whose value
// came from a declared default rather than the caller.
type BuildMeta struct {
	DefaultApplied map[string]bool
}

// Build constructs an ordered document node from the supplied values.
//
// Fields are visited in declaration order. A required field with no value is
// an issue; an optional one is omitted; a declared default fills the gap. A
// nil value counts as absent. Values are type-checked against the declared
// kind with no coercion, and keys not declared by the shape are rejected. On
// any issue the build fails atomically: no partial node is returned.
//
// Build is pure: identical inputs yield deep-equal nodes with identical key
// order.
func (g GroupSpec) Build(values map[string]any) (*spxinput.Node, error) {
	n, _, err := g.BuildWithMeta(values)
	return n, err
}

// BuildWithMeta is Build plus metadata about applied defaults.
func (g GroupSpec) BuildWithMeta(values map[string]any) (*spxinput.Node, BuildMeta, error) {
	meta := BuildMeta{DefaultApplied: map[string]bool{}}
	n, iss := g.build(g.Name, values, &meta)
	if len(iss) > 0 {
		return nil, BuildMeta{}, iss
	}
	return n, meta, nil
}

func (g GroupSpec) build(path string, values map[string]any, meta *BuildMeta) (*spxinput.Node, spxinput.Issues) {
	var iss spxinput.Issues
	node := spxinput.NewNode()
	for _, f := range g.Fields {
		fpath := spxinput.JoinPath(path, f.Name)
		v, ok := values[f.Name]
		if !ok || v == nil {
			if f.HasDefault {
				dv, _ := checkScalar(f.Kind, f.Default)
				node.Set(f.Name, dv)
				meta.DefaultApplied[fpath] = true
				continue
			}
			if f.Required {
				iss = spxinput.AppendIssues(iss, spxinput.Issue{
					Path:    fpath,
					Code:    spxinput.CodeRequired,
					Message: i18n.T(spxinput.CodeRequired, nil),
					Hint:    "required field missing",
				})
			}
			continue
		}
		built, i2 := g.checkValue(fpath, f, v, meta)
		if len(i2) > 0 {
			iss = spxinput.AppendIssues(iss, i2...)
			continue
		}
		node.Set(f.Name, built)
	}
	iss = spxinput.AppendIssues(iss, g.collectUnknown(path, values)...)
	if len(iss) > 0 {
		return nil, iss
	}
	return node, nil
}

// collectUnknown rejects keys the shape does not declare, in key-sorted order
// for deterministic reporting.
func (g GroupSpec) collectUnknown(path string, values map[string]any) spxinput.Issues {
	var uks []string
	for k := range values {
		if _, ok := g.Field(k); !ok {
			uks = append(uks, k)
		}
	}
	sort.Strings(uks)
	var iss spxinput.Issues
	for _, k := range uks {
		iss = spxinput.AppendIssues(iss, spxinput.Issue{
			Path:    spxinput.JoinPath(path, k),
			Code:    spxinput.CodeUnknownKey,
			Message: i18n.T(spxinput.CodeUnknownKey, nil),
			Params:  map[string]any{"key": k},
		})
	}
	return iss
}

func (g GroupSpec) checkValue(path string, f FieldSpec, v any, meta *BuildMeta) (any, spxinput.Issues) {
	switch f.Kind {
	case KindGroup:
		return g.checkGroup(path, f, v, meta)
	case KindGroupList:
		return g.checkGroupList(path, f, v, meta)
	default:
		out, ok := checkScalar(f.Kind, v)
		if !ok {
			return nil, spxinput.Issues{typeIssue(path, f.Kind, v)}
		}
		return out, nil
	}
}

func (g GroupSpec) checkGroup(path string, f FieldSpec, v any, meta *BuildMeta) (any, spxinput.Issues) {
	switch gv := v.(type) {
	case *spxinput.Node:
		return gv, nil
	case map[string]any:
		child, ok := g.resolveRef(f)
		if !ok {
			return nil, spxinput.Issues{typeIssue(path, f.Kind, v)}
		}
		return child.build(path, gv, meta)
	default:
		return nil, spxinput.Issues{typeIssue(path, f.Kind, v)}
	}
}

func (g GroupSpec) checkGroupList(path string, f FieldSpec, v any, meta *BuildMeta) (any, spxinput.Issues) {
	var elems []any
	switch lv := v.(type) {
	case []*spxinput.Node:
		out := make([]*spxinput.Node, len(lv))
		copy(out, lv)
		return out, nil
	case []map[string]any:
		elems = make([]any, len(lv))
		for i, m := range lv {
			elems[i] = m
		}
	case []any:
		elems = lv
	default:
		return nil, spxinput.Issues{typeIssue(path, f.Kind, v)}
	}
	var iss spxinput.Issues
	out := make([]*spxinput.Node, 0, len(elems))
	for i, e := range elems {
		epath := fmt.Sprintf("%s[%d]", path, i)
		built, i2 := g.checkGroup(epath, f, e, meta)
		if len(i2) > 0 {
			iss = spxinput.AppendIssues(iss, i2...)
			continue
		}
		out = append(out, built.(*spxinput.Node))
	}
	if len(iss) > 0 {
		return nil, iss
	}
	return out, nil
}

func (g GroupSpec) resolveRef(f FieldSpec) (GroupSpec, bool) {
	if f.Ref == "" || g.reg == nil {
		return GroupSpec{}, false
	}
	return g.reg.Lookup(f.Ref)
}

// checkScalar validates a non-group value against the declared kind and
// returns a self-contained copy for slice-shaped kinds.
func checkScalar(kind Kind, v any) (any, bool) {
	switch kind {
	case KindBool:
		b, ok := v.(bool)
		return b, ok
	case KindInt:
		i, ok := v.(int)
		return i, ok
	case KindFloat:
		f, ok := v.(float64)
		return f, ok
	case KindString:
		s, ok := v.(string)
		return s, ok
	case KindVector:
		vec, ok := v.([]float64)
		if !ok {
			return nil, false
		}
		out := make([]float64, len(vec))
		copy(out, vec)
		return out, true
	case KindIntVector:
		vec, ok := v.([]int)
		if !ok {
			return nil, false
		}
		out := make([]int, len(vec))
		copy(out, vec)
		return out, true
	case KindMatrix:
		m, ok := v.([][]float64)
		if !ok {
			return nil, false
		}
		out := make([][]float64, len(m))
		for i, row := range m {
			r := make([]float64, len(row))
			copy(r, row)
			out[i] = r
		}
		return out, true
	default:
		return nil, false
	}
}

func typeIssue(path string, kind Kind, got any) spxinput.Issue {
	return spxinput.Issue{
		Path:    path,
		Code:    spxinput.CodeInvalidType,
		Message: i18n.T(spxinput.CodeInvalidType, nil),
		Hint:    "expected " + kind.String(),
		Params:  map[string]any{"expected": kind.String(), "got": fmt.Sprintf("%T", got)},
	}
}
