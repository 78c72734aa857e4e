package benchmarking

import (
	"context"
	"runtime"
	"testing"

	"github.com/wavelab/ldpc/ldpc"
)

// smallCode builds a small m=45, n=90, d_v=3, d_c=6 regular code, large
// enough to be a meaningful block-error-rate sanity check and small
// enough to construct and decode quickly.
func smallCode() *ldpc.Code {
	dc := make([]int, 45)
	for i := range dc {
		dc[i] = 6
	}
	dv := make([]int, 90)
	for i := range dv {
		dv[i] = 3
	}
	c, err := ldpc.Random(45, 90, dc, dv)
	if err != nil {
		panic(err)
	}
	return c
}

func TestSweepHighSNRLowBlockErrorRate(t *testing.T) {
	code := smallCode()
	cfg := ldpc.DefaultDecoderConfig()

	stats := Sweep(context.Background(), code, cfg, AWGN(5.0), 100, runtime.NumCPU(), nil, false)

	if stats.BlockErrorRate.Count != 100 {
		t.Fatalf("expected 100 trials recorded but found %v", stats.BlockErrorRate.Count)
	}
	// At Es/N0=5 over 100 trials, expect no more than roughly half the
	// trials to fail outright as an order-of-magnitude smoke test.
	if stats.BlockErrorRate.Mean > 0.5 {
		t.Fatalf("expected a block-error rate well under 0.5 at high SNR, found %v", stats.BlockErrorRate.Mean)
	}
}

func TestEsNoSweepProducesOnePointPerInput(t *testing.T) {
	code := smallCode()
	cfg := ldpc.DefaultDecoderConfig()

	esNoPoints := []float64{1, 2, 5}
	points := EsNoSweep(context.Background(), code, cfg, esNoPoints, 10, 1, false)

	if len(points) != len(esNoPoints) {
		t.Fatalf("expected %v points but found %v", len(esNoPoints), len(points))
	}
	for i, p := range points {
		if p.EsNo != esNoPoints[i] {
			t.Fatalf("expected point %v to carry EsNo %v but found %v", i, esNoPoints[i], p.EsNo)
		}
	}
}

func TestBSCChannelFlipsBits(t *testing.T) {
	channel := BSC(1.0, 3.0) // p=1 flips every bit deterministically
	cw := make([]byte, 8)
	llr := channel(cw)
	for i, v := range llr {
		if v >= 0 {
			t.Fatalf("expected bit %v to be flipped to a negative LLR but found %v", i, v)
		}
	}
}
