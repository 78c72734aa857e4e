package ldpc

import (
	"os"
	"path/filepath"
	"strconv"
	"testing"
)

func TestAlistRoundTrip(t *testing.T) {
	tests := []struct {
		dialect AlistDialect
	}{
		{VariableWidth},
		{ZeroPadded},
	}

	for i, test := range tests {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			original := hammingCode()
			original.SortEdges()

			dir := t.TempDir()
			path := filepath.Join(dir, "code.alist")

			if err := original.WriteAlist(path, test.dialect); err != nil {
				t.Fatalf("expected no error writing alist but found %v", err)
			}

			roundTripped, err := ReadAlist(path, test.dialect)
			if err != nil {
				t.Fatalf("expected no error reading alist but found %v", err)
			}
			roundTripped.SortEdges()

			if !original.Equal(roundTripped) {
				t.Fatalf("expected round-tripped code to equal original:\nwant Chk=%v Var=%v\ngot  Chk=%v Var=%v",
					original.Chk, original.Var, roundTripped.Chk, roundTripped.Var)
			}
		})
	}
}

func TestReadAlistMissingFile(t *testing.T) {
	_, err := ReadAlist(filepath.Join(t.TempDir(), "does-not-exist.alist"), VariableWidth)
	if err == nil {
		t.Fatalf("expected an error for a missing file")
	}
	var codeErr *CodeError
	if ce, ok := err.(*CodeError); !ok {
		t.Fatalf("expected a *CodeError but found %T", err)
	} else {
		codeErr = ce
	}
	if codeErr.Kind != KindIoError {
		t.Fatalf("expected KindIoError but found %v", codeErr.Kind)
	}
}

func TestReadAlistTruncatedFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "truncated.alist")
	if err := os.WriteFile(path, []byte("7 3\n"), 0o644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}

	_, err := ReadAlist(path, VariableWidth)
	if err == nil {
		t.Fatalf("expected an error for a truncated file")
	}
	ce, ok := err.(*CodeError)
	if !ok {
		t.Fatalf("expected a *CodeError but found %T", err)
	}
	if ce.Kind != KindFormatError {
		t.Fatalf("expected KindFormatError but found %v", ce.Kind)
	}
}

func TestReadAlistOutOfRangeEntrySkipped(t *testing.T) {
	// 2 variables, 1 check; variable 0 claims a bogus check index 9.
	const fixture = "2 1\n1 1\n1 1\n1\n9\n1\n2\n"
	dir := t.TempDir()
	path := filepath.Join(dir, "badrange.alist")
	if err := os.WriteFile(path, []byte(fixture), 0o644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}

	c, err := ReadAlist(path, VariableWidth)
	if err != nil {
		t.Fatalf("expected no error but found %v", err)
	}
	if c.NEdges() != 1 {
		t.Fatalf("expected the out-of-range entry to be skipped, leaving 1 edge, found %v", c.NEdges())
	}
}
