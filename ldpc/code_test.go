package ldpc

import (
	"strconv"
	"testing"
)

func hammingCode() *Code {
	// The fixed [7,4] Hamming H matrix: row0={0,3,4,5}, row1={1,3,4,6},
	// row2={2,4,5,6}, already in row-echelon form (full rank 3).
	return &Code{
		M:   3,
		N:   7,
		Chk: []int{0, 0, 0, 0, 1, 1, 1, 1, 2, 2, 2, 2},
		Var: []int{0, 3, 4, 5, 1, 3, 4, 6, 2, 4, 5, 6},
	}
}

func TestSortEdgesCanonical(t *testing.T) {
	a := hammingCode()
	b := &Code{
		M:   a.M,
		N:   a.N,
		Chk: []int{2, 0, 1, 2, 0, 1, 2, 0, 1, 2, 0, 1},
		Var: []int{6, 5, 6, 5, 4, 4, 4, 3, 3, 2, 0, 1},
	}

	a.SortEdges()
	b.SortEdges()

	if !a.Equal(b) {
		t.Fatalf("expected same edge multiset to sort to the same canonical form")
	}
}

func TestDegrees(t *testing.T) {
	c := hammingCode()

	wantCheck := []int{4, 4, 4}
	wantVar := []int{1, 1, 1, 2, 3, 2, 2}

	if got := c.CheckDegrees(); !equalInts(got, wantCheck) {
		t.Fatalf("expected check degrees %v but found %v", wantCheck, got)
	}
	if got := c.VarDegrees(); !equalInts(got, wantVar) {
		t.Fatalf("expected var degrees %v but found %v", wantVar, got)
	}
}

func TestKAndReady(t *testing.T) {
	c := hammingCode()
	if k := c.K(); k != 4 {
		t.Fatalf("expected K=4 but found %v", k)
	}
	if c.Ready() {
		t.Fatalf("expected a fresh code to not be ready")
	}
}

func TestCheckEdgesGrouping(t *testing.T) {
	c := hammingCode()
	byCheck := c.checkEdges()

	if len(byCheck) != c.M {
		t.Fatalf("expected %v check groups but found %v", c.M, len(byCheck))
	}
	for i, edges := range byCheck {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			for _, e := range edges {
				if c.Chk[e] != i {
					t.Fatalf("edge %v grouped under check %v but has Chk=%v", e, i, c.Chk[e])
				}
			}
			if len(edges) != c.CheckDegrees()[i] {
				t.Fatalf("expected %v edges for check %v but found %v", c.CheckDegrees()[i], i, len(edges))
			}
		})
	}
}

func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
