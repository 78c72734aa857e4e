// Package facade is a thin, explicit-ownership wrapper around one
// *ldpc.Code that exposes init/encode/decode/llr2int to an outside test
// harness, and persists generated codes to an on-disk cache indexed by
// (n,k) for reproducibility across runs.
//
// LDPCCoder owns its *ldpc.Code as a field rather than a package-level
// global; nothing here is package-level mutable state.
package facade

import (
	"math"

	"github.com/wavelab/ldpc/ldpc"
)

// Coder is the init/encode/decode/quantize capability set, modeled here
// as an interface rather than a class hierarchy: dispatch happens only
// at this boundary, never inside the core's inner loops.
type Coder interface {
	Init(k, n int, opts InitOptions) error
	LLR2Int(x float32) int32
	Int2LLR(i int32) float32
	Encode(info []byte) (cw []byte, err error)
	Decode(llr []float32) (cwEst []byte, infoEst []byte, ok bool)
}

// InitOptions configures Init, replacing the reference's positional
// booleans with named fields.
type InitOptions struct {
	// OptimizeAvgLatency selects a higher MaxIter (50 rather than 20),
	// trading average decode latency for a lower residual failure rate.
	OptimizeAvgLatency bool

	// Rule, MinSumOffset, MinLLR, MaxLLR, BitNodeScale override the
	// corresponding ldpc.DecoderConfig fields when nonzero/explicitly
	// set; see DecoderOverrides.
	Decoder DecoderOverrides

	// CacheDir overrides the default "codes" cache directory.
	CacheDir string

	// DisableRandomConstruction, when true, makes Init fail with
	// KindUnsupportedCode instead of generating a fresh random code
	// when no cached alist exists for (n,k).
	DisableRandomConstruction bool
}

// DecoderOverrides lets a caller tune the decoder away from
// ldpc.DefaultDecoderConfig() without constructing a full
// ldpc.DecoderConfig themselves. A zero value means "use the default."
type DecoderOverrides struct {
	Rule         ldpc.Rule
	MinSumOffset float32
	MinLLR       float32
	MaxLLR       float32
	BitNodeScale float32
}

func (d DecoderOverrides) apply(cfg ldpc.DecoderConfig) ldpc.DecoderConfig {
	if d.MinSumOffset != 0 {
		cfg.MinSumOffset = d.MinSumOffset
	}
	if d.MinLLR != 0 {
		cfg.MinLLR = d.MinLLR
	}
	if d.MaxLLR != 0 {
		cfg.MaxLLR = d.MaxLLR
	}
	if d.BitNodeScale != 0 {
		cfg.BitNodeScale = d.BitNodeScale
	}
	cfg.Rule = d.Rule
	return cfg
}

// LDPCCoder is the concrete Coder backed by an *ldpc.Code. The zero
// value is not ready for use; call Init first.
type LDPCCoder struct {
	code *ldpc.Code
	cfg  ldpc.DecoderConfig
	k, n int
}

var _ Coder = (*LDPCCoder)(nil)

// Init sets up the [n,k] code: it loads a cached alist for (n,k) if one
// exists, or builds a fresh random one and writes it to the cache, using
// a fixed degree heuristic keyed on the n:k ratio (n==4k -> d_v=3,d_c=4;
// n==2k -> d_v=3,d_c=6; 4n==5k -> d_v=4,d_c=20). Any other ratio with
// 0 < k < n falls back to d_v=3 with check degrees spread as evenly as
// the edge count allows (see constructRegular).
func (f *LDPCCoder) Init(k, n int, opts InitOptions) error {
	if k <= 0 || n <= k {
		return newFacadeError(KindUnsupportedCode, "k and n must satisfy 0 < k < n, found k=%v n=%v", k, n)
	}

	code, err := loadOrConstruct(k, n, opts)
	if err != nil {
		return err
	}

	if !code.Ready() {
		if err := code.CreateEncoder(); err != nil {
			return newFacadeError(KindUnsupportedCode, "could not build an encoder for k=%v n=%v: %v", k, n, err)
		}
		if err := writeMarker(cachePaths(opts.CacheDir, n, k).marker); err != nil {
			return err
		}
	}

	cfg := opts.Decoder.apply(ldpc.DefaultDecoderConfig())
	cfg.MaxIter = 20
	if opts.OptimizeAvgLatency {
		cfg.MaxIter = 50
	}

	f.code = code
	f.cfg = cfg
	f.k, f.n = k, n
	return nil
}

// llrScale is the fixed-point scale used to quantize a float LLR to a
// 16-bit integer range: round(x*(32768/25.0)); the inverse multiplies
// by 25.0/32768.
const llrScale = 32768.0 / 25.0

// LLR2Int quantizes a float LLR to its fixed-point integer representation.
func (f *LDPCCoder) LLR2Int(x float32) int32 {
	return int32(math.Round(float64(x) * llrScale))
}

// Int2LLR is LLR2Int's inverse.
func (f *LDPCCoder) Int2LLR(i int32) float32 {
	return float32(i) * (25.0 / 32768.0)
}

// Encode forwards to the underlying code's systematic encoder.
func (f *LDPCCoder) Encode(info []byte) ([]byte, error) {
	return f.code.Encode(info)
}

// Decode forwards to the underlying code's belief-propagation decoder
// and derives hard decisions (cwEst) and the systematic information
// prefix (infoEst) from the posterior LLRs.
func (f *LDPCCoder) Decode(llr []float32) (cwEst []byte, infoEst []byte, ok bool) {
	llrOut, ok := f.code.Decode(llr, f.cfg)

	cwEst = make([]byte, len(llrOut))
	for i, v := range llrOut {
		if v < 0 {
			cwEst[i] = 1
		}
	}
	infoEst = cwEst[:f.k]
	return cwEst, infoEst, ok
}
