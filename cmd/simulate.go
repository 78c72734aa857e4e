package cmd

import (
	"context"
	"fmt"
	"runtime"

	"github.com/wavelab/ldpc/benchmarking"
	"github.com/wavelab/ldpc/cmd/internal/tools"
	"github.com/wavelab/ldpc/ldpc"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	simChecks   uint
	simVars     uint
	simCheckDeg uint
	simVarDeg   uint
	simEsNos    []float64
	simTrials   uint
	simThreads  uint
	simMinSum   bool
	simVerbose  bool
)

// simulateCmd sweeps Es/N0 points over a freshly-constructed code and
// accumulates block/bit error statistics via the benchmarking
// package.
var simulateCmd = &cobra.Command{
	Use:   "simulate RESULTS_JSON",
	Short: "Sweep Es/N0 over a freshly constructed LDPC code and record error-rate statistics",
	Long: `simulate constructs a regular [m,n] LDPC code by the configuration model
without building an encoder, then transmits the all-zero codeword through
a simulated AWGN channel at each requested Es/N0 and decodes it, recording
block- and bit-error rate statistics to RESULTS_JSON for later charting.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if simVerbose {
			logrus.SetLevel(logrus.DebugLevel)
		} else {
			logrus.SetLevel(logrus.InfoLevel)
		}

		m, n := int(simChecks), int(simVars)
		dc := make([]int, m)
		for i := range dc {
			dc[i] = int(simCheckDeg)
		}
		dv := make([]int, n)
		for i := range dv {
			dv[i] = int(simVarDeg)
		}

		code, err := ldpc.Random(m, n, dc, dv)
		if err != nil {
			fmt.Println("unable to construct LDPC code:", err)
			return
		}

		cfg := ldpc.DefaultDecoderConfig()
		if simMinSum {
			cfg.Rule = ldpc.MinSum
		}

		threads := int(simThreads)
		if threads == 0 {
			threads = runtime.NumCPU()
		}

		points := benchmarking.EsNoSweep(context.Background(), code, cfg, simEsNos, int(simTrials), threads, true)

		info := fmt.Sprintf("m=%v n=%v check-degree=%v var-degree=%v", m, n, simCheckDeg, simVarDeg)
		if err := tools.SaveResults(args[0], tools.FromPoints(info, points)); err != nil {
			fmt.Println("unable to save results:", err)
			return
		}
		fmt.Printf("wrote %v Es/N0 point(s) to %v\n", len(points), args[0])
	},
}

func init() {
	rootCmd.AddCommand(simulateCmd)

	simulateCmd.Flags().UintVarP(&simChecks, "checks", "m", 45, "number of parity checks (rows of H)")
	simulateCmd.Flags().UintVarP(&simVars, "vars", "n", 90, "number of variables (columns of H)")
	simulateCmd.Flags().UintVarP(&simCheckDeg, "check-degree", "r", 6, "uniform row weight")
	simulateCmd.Flags().UintVarP(&simVarDeg, "var-degree", "c", 3, "uniform column weight")
	simulateCmd.Flags().Float64SliceVarP(&simEsNos, "esno", "e", []float64{1, 2, 3, 4, 5, 6}, "Es/N0 points to sweep")
	simulateCmd.Flags().UintVarP(&simTrials, "trials", "t", 1000, "number of trials per Es/N0 point")
	simulateCmd.Flags().UintVar(&simThreads, "threads", 0, "number of threads to use (0 means use the number of cpus)")
	simulateCmd.Flags().BoolVar(&simMinSum, "min-sum", false, "use the Min-Sum rule instead of Sum-Product")
	simulateCmd.Flags().BoolVarP(&simVerbose, "verbose", "v", false, "enable verbose info")
}
