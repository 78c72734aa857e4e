package ldpc

import (
	"math/rand"

	"github.com/sirupsen/logrus"
)

// maxConstructAttempts bounds the configuration-model rejection loop.
const maxConstructAttempts = 10000

// Random builds an [n,k] LDPC code by the configuration model: it repeats
// check index i dc[i] times and variable index j dv[j] times to form two
// stub sequences, shuffles each independently, and pairs them elementwise
// to form edges. A simple-graph rejection re-shuffles on any repeated
// (check, variable) pair, up to maxConstructAttempts tries.
//
// len(dc) must equal m, len(dv) must equal n, and sum(dc) must equal
// sum(dv) (both equal the edge count); Random panics otherwise, since
// that is a programmer error rather than a runtime construction failure.
func Random(m, n int, dc, dv []int) (*Code, error) {
	if len(dc) != m {
		panic("len(dc) must equal m")
	}
	if len(dv) != n {
		panic("len(dv) must equal n")
	}

	nEdges := 0
	for _, d := range dc {
		nEdges += d
	}
	sumDv := 0
	for _, d := range dv {
		sumDv += d
	}
	if nEdges != sumDv {
		panic("sum(dc) must equal sum(dv)")
	}

	chkStubs := make([]int, 0, nEdges)
	for i, d := range dc {
		for x := 0; x < d; x++ {
			chkStubs = append(chkStubs, i)
		}
	}
	varStubs := make([]int, 0, nEdges)
	for j, d := range dv {
		for x := 0; x < d; x++ {
			varStubs = append(varStubs, j)
		}
	}

	chk := make([]int, nEdges)
	vr := make([]int, nEdges)
	for attempt := 0; attempt < maxConstructAttempts; attempt++ {
		rand.Shuffle(len(chkStubs), func(a, b int) {
			chkStubs[a], chkStubs[b] = chkStubs[b], chkStubs[a]
		})
		rand.Shuffle(len(varStubs), func(a, b int) {
			varStubs[a], varStubs[b] = varStubs[b], varStubs[a]
		})
		copy(chk, chkStubs)
		copy(vr, varStubs)

		if isSimple(chk, vr) {
			logrus.Debugf("configuration-model construction converged after %v attempt(s)", attempt+1)
			return &Code{M: m, N: n, Chk: chk, Var: vr}, nil
		}
	}

	return nil, newError(KindConstructionError, "no simple graph found in %v attempts for m=%v n=%v", maxConstructAttempts, m, n)
}

// isSimple reports whether the paired stub sequences contain no repeated
// (check, variable) edge. A self-loop guard (row[i]==col[i]) is not
// needed here: checks and variables are disjoint vertex sets in a
// bipartite Tanner graph, so that condition can never hold.
func isSimple(chk, vr []int) bool {
	seen := make(map[[2]int]struct{}, len(chk))
	for i := range chk {
		key := [2]int{chk[i], vr[i]}
		if _, dup := seen[key]; dup {
			return false
		}
		seen[key] = struct{}{}
	}
	return true
}
