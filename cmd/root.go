// Package cmd is the Cobra-based CLI exposing LDPC code construction, the
// encode/decode codec smoke test, and the Es/N0 sweep + chart/csv export
// tools.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// rootCmd is the CLI entry point every subcommand attaches to in its own
// init(), one command per file.
var rootCmd = &cobra.Command{
	Use:   "ldpc",
	Short: "ldpc constructs, encodes, decodes, and benchmarks binary LDPC codes",
	Long: `ldpc is a library and test harness for binary Low-Density Parity-Check
codes: sparse-graph construction, alist serialization, a systematic
Gauss-Jordan encoder, and a Sum-Product / Min-Sum belief-propagation
decoder, wrapped in a CLI for constructing codes, running encode/decode
smoke tests, and sweeping Es/N0 for block/bit error-rate statistics.`,
}

// Execute runs the root command and exits with code 1 when it returns an
// error (such as an unknown command, a bad flag or a wrong argument
// count); otherwise it returns normally, including after Cobra has
// printed help output.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
