package cmd

import (
	"github.com/wavelab/ldpc/cmd/internal/tools/chart"
	"github.com/wavelab/ldpc/cmd/internal/tools/csv"

	"github.com/spf13/cobra"
)

// toolsCmd represents the tools command
var toolsCmd = &cobra.Command{
	Use:     "tools",
	Aliases: []string{"t"},
	Short:   "Tools for running and reporting on LDPC Es/N0 sweeps",
	Long:    `Tools for running and reporting on LDPC Es/N0 sweeps`,
}

// toolsChartCmd represents the chart command
var toolsChartCmd = &cobra.Command{
	Use:     "chart RESULTS_JSON [RESULTS_JSON] ...",
	Aliases: []string{"ch"},
	Short:   "Render one or more sweep results to an HTML bar chart",
	Long:    `Render one or more sweep results to an HTML bar chart of block error rate vs Es/N0`,
	Run:     chart.ChartRun,
}

// toolsCSVCmd represents the csv command
var toolsCSVCmd = &cobra.Command{
	Use:     "csv RESULTS_JSON [RESULTS_JSON] ...",
	Aliases: []string{"c"},
	Short:   "Export sweep results to a CSV file",
	Long:    `Export sweep results to a CSV file`,
	Run:     csv.CSVRun,
}

func init() {
	rootCmd.AddCommand(toolsCmd)

	toolsCmd.AddCommand(toolsChartCmd)
	toolsChartCmd.Flags().StringVarP(&chart.OutputFile, "output", "o", "results.html", "filename of the rendered chart")

	toolsCmd.AddCommand(toolsCSVCmd)
	toolsCSVCmd.Flags().StringVarP(&csv.OutputFile, "output", "o", "results.csv", "filename of the combined csv")
	toolsCSVCmd.Flags().BoolVarP(&csv.BitErrorRate, "bit-error", "b", false, "export BitErrorRate instead of BlockErrorRate")
}
