package facade

import (
	"math"
	"os"
	"testing"
)

// tempCacheDir returns a fresh cache directory under the test's temp dir so
// concurrent test runs never collide on codes/ldpc_<n>_<k>.
func tempCacheDir(t *testing.T) string {
	t.Helper()
	dir, err := os.MkdirTemp("", "ldpc-codes-")
	if err != nil {
		t.Fatalf("could not create temp cache dir: %v", err)
	}
	t.Cleanup(func() { os.RemoveAll(dir) })
	return dir
}

func TestInitBuildsAndCachesACode(t *testing.T) {
	var f LDPCCoder
	opts := InitOptions{CacheDir: tempCacheDir(t)}

	if err := f.Init(10, 20, opts); err != nil {
		t.Fatalf("expected Init to succeed for a 2:1 rate, got %v", err)
	}
	if !f.code.Ready() {
		t.Fatalf("expected Init to leave the code with a built encoder")
	}

	// A second Init against the same cache directory must hit the cached
	// alist rather than constructing again.
	var f2 LDPCCoder
	if err := f2.Init(10, 20, opts); err != nil {
		t.Fatalf("expected cached Init to succeed, got %v", err)
	}
	if f2.code.M != f.code.M || f2.code.N != f.code.N {
		t.Fatalf("expected cached code to match dimensions, got M=%v N=%v", f2.code.M, f2.code.N)
	}
}

func TestInitRejectsDegenerateShapes(t *testing.T) {
	cases := []struct {
		k, n int
	}{
		{0, 10},
		{10, 10},
		{10, 5},
	}

	for _, c := range cases {
		var f LDPCCoder
		err := f.Init(c.k, c.n, InitOptions{CacheDir: tempCacheDir(t)})
		if err == nil {
			t.Fatalf("expected Init(k=%v, n=%v) to fail", c.k, c.n)
		}
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	var f LDPCCoder
	if err := f.Init(10, 20, InitOptions{CacheDir: tempCacheDir(t)}); err != nil {
		t.Fatalf("Init failed: %v", err)
	}

	info := make([]byte, 10)
	for i := range info {
		info[i] = byte(i % 2)
	}

	cw, err := f.Encode(info)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	for i, b := range info {
		if cw[i] != b {
			t.Fatalf("expected systematic prefix bit %v to equal %v, found %v", i, b, cw[i])
		}
	}

	llr := make([]float32, len(cw))
	for i, b := range cw {
		if b == 0 {
			llr[i] = 6.0
		} else {
			llr[i] = -6.0
		}
	}

	cwEst, infoEst, ok := f.Decode(llr)
	if !ok {
		t.Fatalf("expected a clean high-confidence decode to succeed")
	}
	for i := range cw {
		if cwEst[i] != cw[i] {
			t.Fatalf("expected decoded codeword bit %v to equal %v, found %v", i, cw[i], cwEst[i])
		}
	}
	for i := range info {
		if infoEst[i] != info[i] {
			t.Fatalf("expected decoded info bit %v to equal %v, found %v", i, info[i], infoEst[i])
		}
	}
}

func TestLLRQuantizerRoundTrip(t *testing.T) {
	var f LDPCCoder
	const tolerance = 25.0 / 32768.0

	for _, x := range []float32{-25, -1, 0, 1, 25} {
		q := f.LLR2Int(x)
		back := f.Int2LLR(q)
		if diff := math.Abs(float64(x - back)); diff > tolerance {
			t.Fatalf("quantizer round-trip for %v: got %v back, diff %v exceeds tolerance %v", x, back, diff, tolerance)
		}
	}
}
