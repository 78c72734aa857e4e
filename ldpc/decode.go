package ldpc

import "math"

// Decode runs flooded belief propagation over c's Tanner graph, using
// either Sum-Product (tanh/atanh all-but-one factoring) or Min-Sum
// (extrinsic two-minima with offset correction), with magnitude
// clipping, an iteration cap, and early termination on a satisfied
// syndrome. It never fails: it always returns a posterior LLR vector and
// a flag that is true iff the hard decisions (sign of the posterior)
// satisfy every parity check.
//
// All message buffers are allocated once at the top of the call and
// reused for every iteration; none of the inner loops below allocate.
func (c *Code) Decode(llrIn []float32, cfg DecoderConfig) (llrOut []float32, ok bool) {
	if len(llrIn) != c.N {
		panic("llrIn length must equal N")
	}

	nEdges := c.NEdges()
	varToChk := make([]float32, nEdges)
	chkToVar := make([]float32, nEdges)
	varAccum := make([]float32, c.N)

	for e := range varToChk {
		varToChk[e] = llrIn[c.Var[e]]
	}

	// Min-Sum auxiliaries: per-check sign parity and the two smallest
	// incoming magnitudes, reinitialized every iteration.
	var signParity []int
	var firstMin, secondMin []float32
	// Sum-Product auxiliaries: per-check product, and the per-edge
	// tanh(./2) used both to form the product and to divide it back out.
	var checkProd []float32
	var tanhHalf []float32

	var byCheck [][]int

	switch cfg.Rule {
	case MinSum:
		signParity = make([]int, c.M)
		firstMin = make([]float32, c.M)
		secondMin = make([]float32, c.M)
		byCheck = c.checkEdges()
	case SumProduct:
		checkProd = make([]float32, c.M)
		tanhHalf = make([]float32, nEdges)
	}

	for iter := 0; iter < cfg.MaxIter; iter++ {
		var terminated bool

		switch cfg.Rule {
		case SumProduct:
			for e := range varToChk {
				varToChk[e] = clipSigned(varToChk[e], cfg.MinLLR, cfg.MaxLLR)
				tanhHalf[e] = float32(math.Tanh(float64(varToChk[e]) / 2))
			}
			for ci := range checkProd {
				checkProd[ci] = 1
			}
			for e := range varToChk {
				checkProd[c.Chk[e]] *= tanhHalf[e]
			}
			terminated = true
			for _, p := range checkProd {
				if p <= 0 {
					terminated = false
					break
				}
			}
			for e := range chkToVar {
				p := checkProd[c.Chk[e]]
				chkToVar[e] = 2 * float32(math.Atanh(float64(p/tanhHalf[e])))
			}

		case MinSum:
			for ci := range signParity {
				signParity[ci] = 0
				firstMin[ci] = cfg.MaxLLR
				secondMin[ci] = cfg.MaxLLR
			}
			for ci, edges := range byCheck {
				for _, e := range edges {
					mag := abs32(varToChk[e])
					signParity[ci] ^= signBit(varToChk[e])
					switch {
					case mag < firstMin[ci]:
						secondMin[ci] = firstMin[ci]
						firstMin[ci] = mag
					case mag < secondMin[ci]:
						secondMin[ci] = mag
					}
				}
			}
			for ci, edges := range byCheck {
				for _, e := range edges {
					mag := abs32(varToChk[e])
					t := firstMin[ci]
					if mag == firstMin[ci] {
						t = secondMin[ci]
					}
					t -= cfg.MinSumOffset
					if t < 0 {
						t = 0
					}
					extrinsicSign := signParity[ci] ^ signBit(varToChk[e])
					if extrinsicSign == 1 {
						t = -t
					}
					chkToVar[e] = t
				}
			}
			terminated = true
			for _, s := range signParity {
				if s != 0 {
					terminated = false
					break
				}
			}
		}

		if iter > 0 && terminated {
			break
		}

		for v := range varAccum {
			varAccum[v] = llrIn[v] / cfg.BitNodeScale
		}
		for e := range chkToVar {
			varAccum[c.Var[e]] += chkToVar[e]
		}
		for e := range varToChk {
			varToChk[e] = cfg.BitNodeScale * (varAccum[c.Var[e]] - chkToVar[e])
		}
	}

	llrOut = make([]float32, c.N)
	copy(llrOut, varAccum)

	return llrOut, c.syndromeSatisfied(llrOut)
}

// syndromeSatisfied recomputes the real syndrome from the hard decisions
// implied by llr (sign convention: positive means bit 0), rather than
// trusting the in-loop early-termination test, which only coincides with
// the true syndrome when no check has exactly one unreliable neighbor. A
// variable whose posterior LLR landed exactly on zero is treated as
// undecided and fails the check.
func (c *Code) syndromeSatisfied(llr []float32) bool {
	syndrome := make([]int, c.M)
	for e := range c.Chk {
		v := llr[c.Var[e]]
		if v == 0 {
			return false
		}
		if v < 0 {
			syndrome[c.Chk[e]] ^= 1
		}
	}
	for _, s := range syndrome {
		if s != 0 {
			return false
		}
	}
	return true
}

func signBit(x float32) int {
	if x < 0 {
		return 1
	}
	return 0
}

func abs32(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}

func clipSigned(x, min, max float32) float32 {
	mag := abs32(x)
	switch {
	case mag < min:
		mag = min
	case mag > max:
		mag = max
	}
	if x < 0 {
		return -mag
	}
	return mag
}
