package ldpc

import (
	"github.com/wavelab/ldpc/ldpc/internal/gf2"

	mat "github.com/nathanhack/sparsemat"
	"github.com/sirupsen/logrus"
)

// CreateEncoder derives a systematic generator for c's parity-check
// matrix H: materialize a dense H, run column-pivoted Gauss-Jordan
// elimination over GF(2), extract the parity block, then rotate the
// column permutation so information bits precede parity bits and
// relabel the stored edge list accordingly.
//
// On success, ParityGenerator is populated and the edge list is mutated
// so the systematic convention ("first K bits are information, last M
// are parity") holds against the stored graph from then on. On rank
// deficiency, ParityGenerator is left nil and a *CodeError with
// KindEncoderNotReady is returned; the edge list is left untouched.
func (c *Code) CreateEncoder() error {
	k := c.K()
	if k <= 0 {
		return newError(KindEncoderNotReady, "N-M must be positive, found N=%v M=%v", c.N, c.M)
	}

	H := c.denseH()
	reduced, perm, rank := gf2.Eliminate(H)
	if rank < c.M {
		logrus.Debugf("create_encoder: H rank %v below required %v; encoder not ready", rank, c.M)
		return newError(KindEncoderNotReady, "H is rank-deficient: rank %v of required %v", rank, c.M)
	}

	// step 4: parity_generator[j][i] = H[i][perm[m+j]]
	parityGen := make([][]byte, k)
	for j := 0; j < k; j++ {
		parityGen[j] = make([]byte, c.M)
		col := perm[c.M+j]
		for i := 0; i < c.M; i++ {
			parityGen[j][i] = byte(reduced.Row(i).At(col))
		}
	}

	// step 5: rotate perm so information columns precede parity columns
	newPerm := make([]int, c.N)
	copy(newPerm, perm[c.M:])
	copy(newPerm[k:], perm[:c.M])

	// step 6: invperm[perm[j]] = j, relabel every Var[e]
	invPerm := make([]int, c.N)
	for logical, original := range newPerm {
		invPerm[original] = logical
	}
	newVar := make([]int, len(c.Var))
	for e, v := range c.Var {
		newVar[e] = invPerm[v]
	}

	c.Var = newVar
	c.ParityGenerator = parityGen
	return nil
}

// denseH materializes the edge list as a dense-over-sparse GF(2) matrix
// for the Gauss-Jordan elimination step. This is the only place the
// core reaches for a matrix representation; the Code's own storage
// remains the flat edge list.
func (c *Code) denseH() mat.SparseMat {
	H := mat.DOKMat(c.M, c.N)
	for e := range c.Chk {
		H.Set(c.Chk[e], c.Var[e], 1)
	}
	return H
}

// Encode copies k = N-M information bits into the first k codeword
// positions and XORs the stored ParityGenerator to produce the
// remaining M parity positions.
func (c *Code) Encode(info []byte) ([]byte, error) {
	if !c.Ready() {
		return nil, newError(KindEncoderNotReady, "CreateEncoder has not succeeded")
	}
	k := c.K()
	if len(info) != k {
		panic("info length must equal K()")
	}

	cw := make([]byte, c.N)
	copy(cw, info)
	for i := 0; i < c.M; i++ {
		var p byte
		for j := 0; j < k; j++ {
			p ^= info[j] & c.ParityGenerator[j][i]
		}
		cw[k+i] = p
	}
	return cw, nil
}
