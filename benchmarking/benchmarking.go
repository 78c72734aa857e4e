package benchmarking

import (
	"context"
	"fmt"
	"math"
	"sync"

	"github.com/wavelab/ldpc/ldpc"

	"github.com/cheggaaa/pb/v3"
	"github.com/nathanhack/avgstd"
	"github.com/nathanhack/threadpool"
)

// Stats accumulates block- and bit-error rate across a sweep of trials:
// the two error channels meaningful for a single fixed all-zero
// transmission.
type Stats struct {
	BlockErrorRate avgstd.AvgStd
	BitErrorRate   avgstd.AvgStd
}

func (s Stats) String() string {
	return fmt.Sprintf("{Block:%0.04f(+/-%0.04f), Bit:%0.04f(+/-%0.04f)}",
		s.BlockErrorRate.Mean, math.Sqrt(s.BlockErrorRate.SampledVariance()),
		s.BitErrorRate.Mean, math.Sqrt(s.BitErrorRate.SampledVariance()))
}

// Checkpoint is called with the running totals after every trial.
type Checkpoint func(updated Stats)

// Sweep runs trials independent AWGN/BSC trials of the all-zero
// codeword through code, decoding with cfg, and accumulates block- and
// bit-error rate statistics. A threadpool fans trials out across
// threads, a mutex-guarded Stats collects results, and an optional
// progress bar tracks completion.
//
// The all-zero codeword is used throughout because it is a codeword of
// every code regardless of H, letting the sweep run without first
// building an encoder.
func Sweep(ctx context.Context, code *ldpc.Code, cfg ldpc.DecoderConfig, channel Channel, trials, threads int, checkpoint Checkpoint, showProgress bool) Stats {
	var stats Stats
	var mux sync.Mutex

	var bar *pb.ProgressBar
	if showProgress {
		bar = pb.StartNew(trials)
	}

	cw := make([]byte, code.N)
	pool := threadpool.NewFixedSize(ctx, threads, trials)

	trial := func() {
		if showProgress {
			bar.Increment()
		}

		llrIn := channel(cw)
		llrOut, ok := code.Decode(llrIn, cfg)

		bitErrors := 0
		for i, v := range llrOut {
			if (v < 0) != (cw[i] != 0) {
				bitErrors++
			}
		}

		blockError := 0.0
		if !ok || bitErrors > 0 {
			blockError = 1.0
		}

		mux.Lock()
		stats.BlockErrorRate.Update(blockError)
		stats.BitErrorRate.Update(float64(bitErrors) / float64(len(cw)))
		if checkpoint != nil {
			checkpoint(stats)
		}
		mux.Unlock()
	}

	for i := 0; i < trials; i++ {
		pool.Add(trial)
	}
	pool.Wait()

	if showProgress {
		bar.Finish()
	}
	return stats
}

// Point is one Es/N0 sample of a sweep.
type Point struct {
	EsNo  float64
	Stats Stats
}

// EsNoSweep runs Sweep once per entry of esNoPoints under the AWGN
// channel, producing one error-rate statistic per requested point.
func EsNoSweep(ctx context.Context, code *ldpc.Code, cfg ldpc.DecoderConfig, esNoPoints []float64, trialsPerPoint, threads int, showProgress bool) []Point {
	points := make([]Point, len(esNoPoints))
	for i, esNo := range esNoPoints {
		points[i] = Point{EsNo: esNo, Stats: Sweep(ctx, code, cfg, AWGN(esNo), trialsPerPoint, threads, nil, showProgress)}
	}
	return points
}
