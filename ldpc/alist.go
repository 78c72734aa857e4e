package ldpc

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// AlistDialect selects between the two alist body layouts: every
// variable/check line carries exactly its own degree worth of entries
// (VariableWidth), or every line is padded out to the column/row maximum
// with zero entries (ZeroPadded).
type AlistDialect int

const (
	VariableWidth AlistDialect = iota
	ZeroPadded
)

// WriteAlist serializes c to filename in the alist text format, using the
// requested dialect. Indices are written 1-based on disk.
func (c *Code) WriteAlist(filename string, dialect AlistDialect) error {
	f, err := os.Create(filename)
	if err != nil {
		return &CodeError{Kind: KindIoError, Err: err}
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	if err := c.writeAlist(w, dialect); err != nil {
		return err
	}
	if err := w.Flush(); err != nil {
		return &CodeError{Kind: KindIoError, Err: err}
	}
	return nil
}

func (c *Code) writeAlist(w io.Writer, dialect AlistDialect) error {
	colWeights := c.VarDegrees()
	rowWeights := c.CheckDegrees()

	maxCol, maxRow := 0, 0
	for _, wv := range colWeights {
		if wv > maxCol {
			maxCol = wv
		}
	}
	for _, wc := range rowWeights {
		if wc > maxRow {
			maxRow = wc
		}
	}

	byVar := make([][]int, c.N)
	for e := range c.Var {
		byVar[c.Var[e]] = append(byVar[c.Var[e]], c.Chk[e]+1)
	}
	byChk := make([][]int, c.M)
	for e := range c.Chk {
		byChk[c.Chk[e]] = append(byChk[c.Chk[e]], c.Var[e]+1)
	}

	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%v %v\n", c.N, c.M)
	fmt.Fprintf(bw, "%v %v\n", maxCol, maxRow)
	writeInts(bw, colWeights)
	writeInts(bw, rowWeights)

	for j := 0; j < c.N; j++ {
		line := byVar[j]
		if dialect == ZeroPadded {
			line = padTo(line, maxCol)
		}
		writeInts(bw, line)
	}
	for i := 0; i < c.M; i++ {
		line := byChk[i]
		if dialect == ZeroPadded {
			line = padTo(line, maxRow)
		}
		writeInts(bw, line)
	}

	if err := bw.Flush(); err != nil {
		return &CodeError{Kind: KindIoError, Err: err}
	}
	return nil
}

func writeInts(w *bufio.Writer, vals []int) {
	for i, v := range vals {
		if i > 0 {
			w.WriteByte(' ')
		}
		fmt.Fprintf(w, "%v", v)
	}
	w.WriteByte('\n')
}

func padTo(vals []int, width int) []int {
	out := make([]int, width)
	copy(out, vals)
	return out
}

// ReadAlist parses filename in the alist text format. dialect only
// affects how many fields are expected per line when the file is
// zero-padded: a zero entry is always treated as a sentinel and skipped.
func ReadAlist(filename string, dialect AlistDialect) (*Code, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, &CodeError{Kind: KindIoError, Err: err}
	}
	defer f.Close()

	return readAlist(bufio.NewReader(f), dialect)
}

func readAlist(r io.Reader, dialect AlistDialect) (*Code, error) {
	sc := newFieldScanner(r)

	n, ok := sc.nextInt()
	if !ok {
		return nil, newError(KindFormatError, "missing n")
	}
	m, ok := sc.nextInt()
	if !ok {
		return nil, newError(KindFormatError, "missing m")
	}
	maxColWeight, ok := sc.nextInt()
	if !ok {
		return nil, newError(KindFormatError, "missing maxColWeight")
	}
	maxRowWeight, ok := sc.nextInt()
	if !ok {
		return nil, newError(KindFormatError, "missing maxRowWeight")
	}

	colWeights := make([]int, n)
	for j := 0; j < n; j++ {
		v, ok := sc.nextInt()
		if !ok {
			return nil, newError(KindFormatError, "missing column weight for variable %v", j)
		}
		colWeights[j] = v
	}
	rowWeights := make([]int, m)
	for i := 0; i < m; i++ {
		v, ok := sc.nextInt()
		if !ok {
			return nil, newError(KindFormatError, "missing row weight for check %v", i)
		}
		rowWeights[i] = v
	}

	code := &Code{M: m, N: n}

	for j := 0; j < n; j++ {
		count := colWeights[j]
		if dialect == ZeroPadded {
			count = maxColWeight
		}
		for x := 0; x < count; x++ {
			v, ok := sc.nextInt()
			if !ok {
				return nil, newError(KindFormatError, "missing entry in variable %v's check list", j)
			}
			if v == 0 {
				continue // zero-padded sentinel
			}
			if v < 1 || v > m {
				logrus.Warnf("alist: variable %v references out-of-range check %v (m=%v), skipping entry", j, v, m)
				continue
			}
			code.Chk = append(code.Chk, v-1)
			code.Var = append(code.Var, j)
		}
	}

	for i := 0; i < m; i++ {
		count := rowWeights[i]
		if dialect == ZeroPadded {
			count = maxRowWeight
		}
		for x := 0; x < count; x++ {
			v, ok := sc.nextInt()
			if !ok {
				return nil, newError(KindFormatError, "missing entry in check %v's variable list", i)
			}
			if v != 0 && (v < 1 || v > n) {
				logrus.Warnf("alist: check %v references out-of-range variable %v (n=%v), skipping entry", i, v, n)
			}
			// the check-row body is redundant with the variable-column body
			// already captured above; the edge list is the source of truth.
		}
	}

	return code, nil
}

// fieldScanner walks whitespace-delimited integer fields of an alist file.
type fieldScanner struct {
	sc *bufio.Scanner
}

func newFieldScanner(r io.Reader) *fieldScanner {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)
	return &fieldScanner{sc: sc}
}

func (f *fieldScanner) nextInt() (int, bool) {
	if !f.sc.Scan() {
		return 0, false
	}
	var v int
	if _, err := fmt.Sscanf(f.sc.Text(), "%d", &v); err != nil {
		return 0, false
	}
	return v, true
}
