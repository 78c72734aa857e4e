package ldpc

// Rule selects the check-node update used by the belief-propagation
// decoder: the exact Sum-Product rule (tanh/atanh) or the Min-Sum
// approximation with an offset correction.
type Rule int

const (
	SumProduct Rule = iota
	MinSum
)

// DecoderConfig is the configuration record for Decode: named,
// enumerated fields rather than positional booleans.
type DecoderConfig struct {
	Rule Rule

	// MinSumOffset is the subtractive correction applied to the Min-Sum
	// extrinsic magnitude, e.g. 0.3. Ignored when Rule is SumProduct.
	MinSumOffset float32

	// MinLLR and MaxLLR bound the magnitude of every variable-to-check
	// message under Sum-Product, preserving sign, so atanh never sees a
	// zero divisor and no message diverges to +/-Inf. Min-Sum does not
	// clip its messages; it uses MaxLLR only as the starting value of
	// the two per-check minima.
	MinLLR float32
	MaxLLR float32

	// BitNodeScale is an external scale applied to the priors at
	// variable-node update time and un-applied at message output;
	// defaults to 1.0 (no scaling).
	BitNodeScale float32

	MaxIter int
}

// DefaultDecoderConfig returns a reasonable default configuration:
// Sum-Product, a 0.3 Min-Sum offset (unused unless Rule is switched),
// clip bounds of [25/32768, 17.0], and no external scaling.
func DefaultDecoderConfig() DecoderConfig {
	return DecoderConfig{
		Rule:         SumProduct,
		MinSumOffset: 0.3,
		MinLLR:       25.0 / 32768.0,
		MaxLLR:       17.0,
		BitNodeScale: 1.0,
		MaxIter:      20,
	}
}
