// Package benchmarking provides the AWGN channel simulator and trial
// statistics accumulator used to sweep a code's block/bit error rate
// across a range of signal-to-noise points. None of this lives inside
// the ldpc package itself; it is harness tooling built on top of it.
package benchmarking

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

// Channel maps a transmitted codeword to a received LLR vector.
type Channel func(cw []byte) (llr []float32)

// AWGN returns a Channel implementing an additive white Gaussian noise
// model: llr[i] = (cw[i]==0 ? +1 : -1) + N(0, sqrt(1/(2*esNo))). The
// noise sampler is gonum's distuv.Normal rather than a hand-rolled
// Box-Muller.
func AWGN(esNo float64) Channel {
	noise := distuv.Normal{Mu: 0, Sigma: math.Sqrt(1 / (2 * esNo))}
	return func(cw []byte) []float32 {
		llr := make([]float32, len(cw))
		for i, b := range cw {
			mean := 1.0
			if b != 0 {
				mean = -1.0
			}
			llr[i] = float32(mean + noise.Rand())
		}
		return llr
	}
}

// BSC returns a Channel modeling a binary symmetric channel at the given
// crossover probability: each transmitted bit is flipped independently
// with probability p before being handed to the decoder as a saturated
// LLR of magnitude llrMagnitude.
func BSC(p float64, llrMagnitude float32) Channel {
	noise := distuv.Uniform{Min: 0, Max: 1}
	return func(cw []byte) []float32 {
		llr := make([]float32, len(cw))
		for i, b := range cw {
			bit := b
			if noise.Rand() < p {
				bit ^= 1
			}
			if bit == 0 {
				llr[i] = llrMagnitude
			} else {
				llr[i] = -llrMagnitude
			}
		}
		return llr
	}
}
