package ldpc

import "fmt"

// Kind identifies the category of a CodeError: IoError, FormatError,
// ConstructionError, and EncoderNotReady. The facade package extends
// this set with its own UnsupportedCode kind.
type Kind int

const (
	KindIoError Kind = iota
	KindFormatError
	KindConstructionError
	KindEncoderNotReady
)

func (k Kind) String() string {
	switch k {
	case KindIoError:
		return "IoError"
	case KindFormatError:
		return "FormatError"
	case KindConstructionError:
		return "ConstructionError"
	case KindEncoderNotReady:
		return "EncoderNotReady"
	default:
		return "UnknownError"
	}
}

// CodeError wraps an underlying error with a Kind callers can
// discriminate on via errors.As.
type CodeError struct {
	Kind Kind
	Err  error
}

func (e *CodeError) Error() string {
	if e.Err == nil {
		return e.Kind.String()
	}
	return fmt.Sprintf("%v: %v", e.Kind, e.Err)
}

func (e *CodeError) Unwrap() error {
	return e.Err
}

func newError(kind Kind, format string, args ...interface{}) *CodeError {
	return &CodeError{Kind: kind, Err: fmt.Errorf(format, args...)}
}
