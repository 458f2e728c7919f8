// Package order computes the bijection between a structure's native atom
// order and the element-grouped order the SPHInX input format requires.
package order

import "sort"

// Forward returns the grouped atom order: entry g is the native index of the
// atom at grouped position g. Atoms are ranked by their element label among
// the sorted distinct labels, with relative order inside one element class
// preserved.
//
// The sort key is rank + i/n. The fractional ramp is strictly below 1 and
// increases with the native index, so it breaks ties stably without mixing
// classes. For atom counts near the float64 mantissa limit the ramp steps
// can collide; the documented behavior is kept rather than switching to an
// exact integer key, since consumers may depend on the resulting order.
func Forward(elements []string) []int {
	n := len(elements)
	perm := make([]int, n)
	if n == 0 {
		return perm
	}
	rank := classRanks(elements)
	keys := make([]float64, n)
	for i, e := range elements {
		keys[i] = float64(rank[e]) + float64(i)/float64(n)
	}
	for i := range perm {
		perm[i] = i
	}
	sort.Slice(perm, func(a, b int) bool { return keys[perm[a]] < keys[perm[b]] })
	return perm
}

// Inverse is the element-wise inverse of Forward: entry i is the grouped
// position of native atom i.
func Inverse(elements []string) []int {
	return InverseOf(Forward(elements))
}

// InverseOf inverts a permutation, so per-atom results computed in one
// indexing convention can be reordered into the other.
func InverseOf(perm []int) []int {
	inv := make([]int, len(perm))
	for i, p := range perm {
		inv[p] = i
	}
	return inv
}

// classRanks assigns each distinct label its rank in sorted label order.
func classRanks(elements []string) map[string]int {
	distinct := make([]string, 0, len(elements))
	seen := map[string]bool{}
	for _, e := range elements {
		if !seen[e] {
			seen[e] = true
			distinct = append(distinct, e)
		}
	}
	sort.Strings(distinct)
	rank := make(map[string]int, len(distinct))
	for i, e := range distinct {
		rank[e] = i
	}
	return rank
}
