package ldpc

import (
	"strconv"
	"testing"
)

func TestRandomDegreesPreserved(t *testing.T) {
	tests := []struct {
		m, n int
		dc   []int
		dv   []int
	}{
		{3, 6, []int{4, 4, 4}, []int{2, 2, 2, 2, 2, 2}},
		{4, 8, []int{4, 4, 4, 4}, []int{2, 2, 2, 2, 2, 2, 2, 2}},
	}

	for i, test := range tests {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			c, err := Random(test.m, test.n, test.dc, test.dv)
			if err != nil {
				t.Fatalf("expected no error but found %v", err)
			}
			if !equalInts(c.CheckDegrees(), test.dc) {
				t.Fatalf("expected check degrees %v but found %v", test.dc, c.CheckDegrees())
			}
			if !equalInts(c.VarDegrees(), test.dv) {
				t.Fatalf("expected var degrees %v but found %v", test.dv, c.VarDegrees())
			}
			if c.NEdges() != len(c.Chk) || c.NEdges() != len(c.Var) {
				t.Fatalf("expected Chk and Var to stay parallel")
			}
		})
	}
}

func TestRandomIsSimple(t *testing.T) {
	c, err := Random(5, 10, []int{4, 4, 4, 4, 4}, []int{2, 2, 2, 2, 2, 2, 2, 2, 2, 2})
	if err != nil {
		t.Fatalf("expected no error but found %v", err)
	}
	if !isSimple(c.Chk, c.Var) {
		t.Fatalf("expected no repeated edges")
	}
}

func TestRandomBadDegreeSequencePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected a panic for mismatched degree sums")
		}
	}()
	_, _ = Random(2, 3, []int{1, 1}, []int{1, 1, 1})
}
