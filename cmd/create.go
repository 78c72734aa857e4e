package cmd

import (
	"fmt"

	"github.com/wavelab/ldpc/ldpc"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	constructChecks     uint
	constructVars       uint
	constructCheckDeg   uint
	constructVarDeg     uint
	constructZeroPadded bool
	constructVerbose    bool
)

// createCmd represents the create command
var createCmd = &cobra.Command{
	Use:     "create",
	Aliases: []string{"c"},
	Short:   "used to create a new LDPC code",
	Long:    `create builds a regular LDPC code by the configuration model and saves it as an alist file. The codec command loads such a file from its --cache-dir when it is named ldpc_<n>_<k>.`,
}

// createConstructCmd represents the construct command
var createConstructCmd = &cobra.Command{
	Use:     "construct OUTPUT_ALIST",
	Aliases: []string{"random", "r"},
	Short:   "Construct a regular LDPC code by the configuration model",
	Long: `Construct builds an [m,n] regular LDPC code whose check-degree sequence is
uniformly --check-degree and whose variable-degree sequence is uniformly
--var-degree, by configuration-model stub matching with simple-graph
rejection. checks*check-degree must equal vars*var-degree.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if constructVerbose {
			logrus.SetLevel(logrus.DebugLevel)
		} else {
			logrus.SetLevel(logrus.InfoLevel)
		}

		m, n := int(constructChecks), int(constructVars)
		dc := make([]int, m)
		for i := range dc {
			dc[i] = int(constructCheckDeg)
		}
		dv := make([]int, n)
		for i := range dv {
			dv[i] = int(constructVarDeg)
		}

		code, err := ldpc.Random(m, n, dc, dv)
		if err != nil {
			fmt.Println("unable to construct LDPC code:", err)
			return
		}

		if err := code.CreateEncoder(); err != nil {
			fmt.Println("constructed an [m,n] graph but could not derive a systematic encoder:", err)
			fmt.Println("writing the graph anyway; re-run codec commands against it will fail until a code with full row rank is found")
		}

		dialect := ldpc.VariableWidth
		if constructZeroPadded {
			dialect = ldpc.ZeroPadded
		}
		if err := code.WriteAlist(args[0], dialect); err != nil {
			fmt.Println("unable to write alist:", err)
			return
		}
		fmt.Printf("wrote %v-check %v-variable LDPC code to %v\n", code.M, code.N, args[0])
	},
}

func init() {
	rootCmd.AddCommand(createCmd)
	createCmd.AddCommand(createConstructCmd)

	createConstructCmd.Flags().UintVarP(&constructChecks, "checks", "m", 45, "number of parity checks (rows of H)")
	createConstructCmd.Flags().UintVarP(&constructVars, "vars", "n", 90, "number of variables (columns of H)")
	createConstructCmd.Flags().UintVarP(&constructCheckDeg, "check-degree", "r", 6, "uniform row weight (checks*check-degree must equal vars*var-degree)")
	createConstructCmd.Flags().UintVarP(&constructVarDeg, "var-degree", "c", 3, "uniform column weight")
	createConstructCmd.Flags().BoolVarP(&constructZeroPadded, "zero-padded", "z", false, "write the zero-padded alist dialect instead of variable-width")
	createConstructCmd.Flags().BoolVarP(&constructVerbose, "verbose", "v", false, "enable verbose info, including intermediate Gauss-Jordan matrices")
}
