package ldpc

import (
	"strconv"
	"testing"
)

// llrForZeroCodeword returns a confident LLR vector for the all-zero
// codeword, which trivially satisfies any H: a codeword of all zeros
// always has zero syndrome regardless of the parity-check matrix.
func llrForZeroCodeword(n int, magnitude float32) []float32 {
	llr := make([]float32, n)
	for i := range llr {
		llr[i] = magnitude
	}
	return llr
}

func hardDecisions(llr []float32) []byte {
	cw := make([]byte, len(llr))
	for i, v := range llr {
		if v < 0 {
			cw[i] = 1
		}
	}
	return cw
}

func TestDecodeNoErrorConverges(t *testing.T) {
	rules := []struct {
		rule Rule
	}{
		{SumProduct},
		{MinSum},
	}

	for i, test := range rules {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			c := hammingCode()
			cfg := DefaultDecoderConfig()
			cfg.Rule = test.rule

			llrIn := llrForZeroCodeword(c.N, 6.0)
			llrOut, ok := c.Decode(llrIn, cfg)

			if !ok {
				t.Fatalf("expected decode of a clean codeword to succeed")
			}
			for i, v := range hardDecisions(llrOut) {
				if v != 0 {
					t.Fatalf("expected bit %v to remain 0 but decoded %v", i, v)
				}
			}
		})
	}
}

func TestDecodeCorrectsWeakSingleError(t *testing.T) {
	rules := []struct {
		rule Rule
	}{
		{SumProduct},
		{MinSum},
	}

	for i, test := range rules {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			c := hammingCode()
			cfg := DefaultDecoderConfig()
			cfg.Rule = test.rule
			cfg.MaxIter = 50

			llrIn := llrForZeroCodeword(c.N, 6.0)
			// A weakly-confident wrong-sign observation on variable 4
			// (degree 3: present in all three checks), the mildest
			// possible corruption that still flips the hard decision
			// before decoding.
			llrIn[4] = -0.1

			llrOut, ok := c.Decode(llrIn, cfg)
			if !ok {
				t.Fatalf("expected decode to correct a single weak error")
			}
			for i, v := range hardDecisions(llrOut) {
				if v != 0 {
					t.Fatalf("expected all-zero codeword recovered, but bit %v decoded %v", i, v)
				}
			}
		})
	}
}

func TestDecodeNeverErrors(t *testing.T) {
	c := hammingCode()
	cfg := DefaultDecoderConfig()
	cfg.MaxIter = 1

	// Contradictory, low-confidence noise with no structure at all; the
	// decoder must still return cleanly rather than failing outright.
	llrIn := []float32{0.2, -0.2, 0.2, -0.2, 0.2, -0.2, 0.2}
	llrOut, _ := c.Decode(llrIn, cfg)
	if len(llrOut) != c.N {
		t.Fatalf("expected an LLR vector of length %v but found %v", c.N, len(llrOut))
	}
}

func TestDecodeClipsExtremeInput(t *testing.T) {
	c := hammingCode()
	cfg := DefaultDecoderConfig()

	llrIn := llrForZeroCodeword(c.N, 1e6)
	llrOut, ok := c.Decode(llrIn, cfg)
	if !ok {
		t.Fatalf("expected decode to succeed even with saturated input LLRs")
	}
	for _, v := range llrOut {
		if v != v { // NaN check: never produce NaN from an out-of-range atanh argument.
			t.Fatalf("expected no NaN in posterior LLRs, found %v", llrOut)
		}
	}
}
