package spxinput

import (
	"bytes"
	"reflect"

	json "github.com/goccy/go-json"
)

// Node is one hierarchical group of the SPHInX input document: a mapping from
// field name to value whose key order is significant. Values are scalars
// (bool, int, float64, string), vectors ([]float64, []int), matrices
// ([][]float64), nested *Node groups, or ordered []*Node group sequences.
//
// Nodes are built once and never mutated afterwards; Set exists for builders,
// consumers only read.
type Node struct {
	keys   []string
	values map[string]any
}

// NewNode returns an empty node.
func NewNode() *Node {
	return &Node{values: map[string]any{}}
}

// Set inserts or replaces a key. First insertion fixes the key's position.
func (n *Node) Set(key string, v any) *Node {
	if _, ok := n.values[key]; !ok {
		n.keys = append(n.keys, key)
	}
	n.values[key] = v
	return n
}

// Get returns the value stored under key.
func (n *Node) Get(key string) (any, bool) {
	v, ok := n.values[key]
	return v, ok
}

// Has reports whether key is present.
func (n *Node) Has(key string) bool {
	_, ok := n.values[key]
	return ok
}

// Keys returns the key order as a fresh slice.
func (n *Node) Keys() []string {
	out := make([]string, len(n.keys))
	copy(out, n.keys)
	return out
}

// Len returns the number of keys.
func (n *Node) Len() int { return len(n.keys) }

// Equal reports deep, order-sensitive equality of two nodes.
func (n *Node) Equal(o *Node) bool {
	if n == nil || o == nil {
		return n == o
	}
	if len(n.keys) != len(o.keys) {
		return false
	}
	for i, k := range n.keys {
		if o.keys[i] != k {
			return false
		}
		if !valueEqual(n.values[k], o.values[k]) {
			return false
		}
	}
	return true
}

func valueEqual(a, b any) bool {
	switch av := a.(type) {
	case *Node:
		bv, ok := b.(*Node)
		return ok && av.Equal(bv)
	case []*Node:
		bv, ok := b.([]*Node)
		if !ok || len(av) != len(bv) {
			return false
		}
		for i := range av {
			if !av[i].Equal(bv[i]) {
				return false
			}
		}
		return true
	case bool, int, float64, string:
		return a == b
	default:
		return reflect.DeepEqual(a, b)
	}
}

// MarshalJSON renders the node as a JSON object preserving key order. This is
// an interchange/debug view; the SPHInX text rendering lives outside this
// module.
func (n *Node) MarshalJSON() ([]byte, error) {
	b := &bytes.Buffer{}
	b.WriteByte('{')
	for i, k := range n.keys {
		if i > 0 {
			b.WriteByte(',')
		}
		kb, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		b.Write(kb)
		b.WriteByte(':')
		vb, err := json.Marshal(n.values[k])
		if err != nil {
			return nil, err
		}
		b.Write(vb)
	}
	b.WriteByte('}')
	return b.Bytes(), nil
}
