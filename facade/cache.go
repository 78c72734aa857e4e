package facade

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/wavelab/ldpc/ldpc"
)

const defaultCacheDir = "codes"

type paths struct {
	alist  string
	marker string
}

// cachePaths computes the on-disk cache locations: codes/ldpc_<n>_<k>
// for the alist, codes/ldpc_<n>_<k>_g as the generator-ready presence
// marker.
func cachePaths(dir string, n, k int) paths {
	if dir == "" {
		dir = defaultCacheDir
	}
	base := filepath.Join(dir, fmt.Sprintf("ldpc_%v_%v", n, k))
	return paths{alist: base, marker: base + "_g"}
}

// loadOrConstruct prefers an existing cached alist over random
// generation. A cache hit whose dimensions don't match the requested
// (n,k) is treated as stale and ignored.
func loadOrConstruct(k, n int, opts InitOptions) (*ldpc.Code, error) {
	p := cachePaths(opts.CacheDir, n, k)

	if _, err := os.Stat(p.alist); err == nil {
		code, err := ldpc.ReadAlist(p.alist, ldpc.VariableWidth)
		if err != nil {
			return nil, err
		}
		if code.N == n && code.M == n-k {
			return code, nil
		}
	}

	if opts.DisableRandomConstruction {
		return nil, newFacadeError(KindUnsupportedCode, "no cached code for k=%v n=%v and random construction is disabled", k, n)
	}

	code, err := constructRegular(k, n)
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(filepath.Dir(p.alist), 0o755); err != nil {
		return nil, newFacadeError(KindUnsupportedCode, "could not create cache directory: %v", err)
	}
	if err := code.WriteAlist(p.alist, ldpc.VariableWidth); err != nil {
		return nil, err
	}

	return code, nil
}

// constructRegular builds a random configuration-model code for the
// [n,k] shape, following the degree heuristic in the reference
// implementation's enc_dec::init: n==4k selects d_v=3,d_c=4; n==2k
// selects d_v=3,d_c=6; 4n==5k selects d_v=4,d_c=20. Any other rate falls
// back to a variable degree of 3, with check degrees spread as evenly
// as possible so the edge counts still balance exactly.
func constructRegular(k, n int) (*ldpc.Code, error) {
	m := n - k
	dv := 3

	switch {
	case n == 4*k:
		dv = 3
	case n == 2*k:
		dv = 3
	case 4*n == 5*k:
		dv = 4
	}

	dvSeq := make([]int, n)
	for i := range dvSeq {
		dvSeq[i] = dv
	}
	dcSeq := spreadEvenly(dv*n, m)

	return ldpc.Random(m, n, dcSeq, dvSeq)
}

// spreadEvenly distributes total stubs across count nodes as evenly as
// possible, the remainder going to the first nodes.
func spreadEvenly(total, count int) []int {
	seq := make([]int, count)
	base, rem := total/count, total%count
	for i := range seq {
		seq[i] = base
		if i < rem {
			seq[i]++
		}
	}
	return seq
}

func writeMarker(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return newFacadeError(KindUnsupportedCode, "could not write generator-ready marker: %v", err)
	}
	return f.Close()
}
