// Package ldpc implements a sparse-graph binary LDPC code: the edge-list
// Tanner graph representation, alist serialization, configuration-model
// random construction, a Gauss-Jordan systematic encoder builder, and a
// flooded belief-propagation decoder supporting Sum-Product and Min-Sum
// check-node rules.
package ldpc

import "sort"

// Code is a binary LDPC code given by its parity-check matrix H, stored as
// a bipartite Tanner graph edge list rather than a dense matrix. Edge i
// connects check Chk[i] to variable Var[i]; a given (check, variable) pair
// appears at most once.
type Code struct {
	M, N int // number of checks (rows) and variables (columns)

	// Chk and Var are parallel edge arrays of equal length (NEdges).
	Chk, Var []int

	// ParityGenerator holds the systematic generator's parity block once
	// CreateEncoder has succeeded: a dense (N-M) x M GF(2) matrix, row j
	// giving the XOR mask applied to info bit j across the M parity
	// positions. It is nil until a successful CreateEncoder call, and is
	// left nil (or partially filled state is discarded) on failure.
	ParityGenerator [][]byte
}

// NEdges returns the number of edges in the Tanner graph.
func (c *Code) NEdges() int {
	return len(c.Chk)
}

// K returns the number of information bits, N-M.
func (c *Code) K() int {
	return c.N - c.M
}

// Ready reports whether CreateEncoder has produced a usable generator.
func (c *Code) Ready() bool {
	return c.ParityGenerator != nil
}

// SortEdges stably sorts the edge arrays lexicographically by (Chk, Var).
// It does not change the multiset of edges represented, only their order,
// providing a canonical form so that two constructions of "the same" code
// can be compared for equality.
func (c *Code) SortEdges() {
	idx := make([]int, len(c.Chk))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		ia, ib := idx[a], idx[b]
		if c.Chk[ia] != c.Chk[ib] {
			return c.Chk[ia] < c.Chk[ib]
		}
		return c.Var[ia] < c.Var[ib]
	})

	chk := make([]int, len(c.Chk))
	v := make([]int, len(c.Var))
	for i, j := range idx {
		chk[i] = c.Chk[j]
		v[i] = c.Var[j]
	}
	c.Chk, c.Var = chk, v
}

// Equal reports whether two codes have identical dimensions and identical
// edge arrays in their current order. Callers typically SortEdges both
// codes first so the comparison is order-independent.
func (c *Code) Equal(other *Code) bool {
	if c.M != other.M || c.N != other.N || len(c.Chk) != len(other.Chk) {
		return false
	}
	for i := range c.Chk {
		if c.Chk[i] != other.Chk[i] || c.Var[i] != other.Var[i] {
			return false
		}
	}
	return true
}

// CheckDegrees returns the per-check edge counts (row weights).
func (c *Code) CheckDegrees() []int {
	d := make([]int, c.M)
	for _, ci := range c.Chk {
		d[ci]++
	}
	return d
}

// VarDegrees returns the per-variable edge counts (column weights).
func (c *Code) VarDegrees() []int {
	d := make([]int, c.N)
	for _, vi := range c.Var {
		d[vi]++
	}
	return d
}

// checkEdges returns, for every check, the indices into Chk/Var of its
// incident edges. Building this once per Decode call lets the check-node
// update process edges grouped by check, which Min-Sum's two-minima
// tracking benefits from (spec allows but does not require this; it is a
// straightforward optimization over the flat edge list).
func (c *Code) checkEdges() [][]int {
	byCheck := make([][]int, c.M)
	for e, ci := range c.Chk {
		byCheck[ci] = append(byCheck[ci], e)
	}
	return byCheck
}
