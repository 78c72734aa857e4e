// Package gf2 performs Gauss-Jordan elimination over GF(2) on a dense
// parity-check matrix, used only when deriving a systematic encoder.
// It is deliberately single-threaded: elimination runs once per code
// build, not per decode, so a worker-pool row fan-out would add
// complexity without a measurable benefit.
package gf2

import (
	"strings"

	mat "github.com/nathanhack/sparsemat"
	"github.com/sirupsen/logrus"
)

// Eliminate reduces H to row-echelon form with column pivoting: for row
// i, it searches the submatrix H[i.., perm[i..]] for any 1, swaps it
// into position (i,i) by a logical column permutation and a physical row
// swap, then XORs row i into every other row that has a 1 in the pivot
// column. At debug log level it logs the matrix after every pivot, with
// columns in logical (perm) order.
//
// It returns the reduced matrix, the column permutation applied (perm[k]
// is the original column now in logical position k), and the rank
// reached before a pivot could not be found. rank == rows means full row
// rank; rank < rows means H's first rank rows are independent and the
// rest could not be reduced further (the caller should treat this as a
// failed encoder build).
//
// Eliminate does not physically permute H's columns: SwapColumns is
// unreliable on a CSR-backed sparse matrix, so the permutation is
// tracked logically instead and columns are always addressed through
// perm.
func Eliminate(H mat.SparseMat) (result mat.SparseMat, perm []int, rank int) {
	rows, cols := H.Dims()
	result = mat.CSRMatCopy(H)

	perm = make([]int, cols)
	for c := range perm {
		perm[c] = c
	}

	for i := 0; i < rows; i++ {
		pivotCol, pivotRow := findPivot(result, perm, i, rows, cols)
		if pivotCol == -1 {
			logrus.Debugf("gf2: rank-deficient submatrix at row %v of %v", i, rows)
			return result, perm, i
		}

		perm[i], perm[pivotCol] = perm[pivotCol], perm[i]
		if pivotRow != i {
			result.SwapRows(i, pivotRow)
		}

		eliminateOtherRows(result, i, perm[i])

		if logrus.IsLevelEnabled(logrus.DebugLevel) {
			var sb strings.Builder
			for r := 0; r < rows; r++ {
				for c := 0; c < cols; c++ {
					sb.WriteByte(byte('0' + result.Row(r).At(perm[c])))
				}
				sb.WriteByte('\n')
			}
			logrus.Debugf("gf2: matrix after pivot on row %v:\n%v", i, sb.String())
		}
	}

	return result, perm, rows
}

// findPivot scans logical columns [fromRow, cols) left to right; for each,
// it looks for a physical row >= fromRow holding a 1. It returns the
// logical column index and the physical row of the first 1 found, or
// (-1, -1) if the submatrix is entirely zero.
func findPivot(H mat.SparseMat, perm []int, fromRow, rows, cols int) (logicalCol, physicalRow int) {
	for c := fromRow; c < cols; c++ {
		for _, r := range H.Column(perm[c]).NonzeroArray() {
			if r >= fromRow {
				return c, r
			}
		}
	}
	return -1, -1
}

// eliminateOtherRows XORs row pivotRow into every other row that has a 1
// in physical column pivotCol.
func eliminateOtherRows(H mat.SparseMat, pivotRow, pivotCol int) {
	pivot := H.Row(pivotRow)
	for _, r := range H.Column(pivotCol).NonzeroArray() {
		if r == pivotRow {
			continue
		}
		row := H.Row(r)
		row.Add(row, pivot)
		H.SetRow(r, row)
	}
}
