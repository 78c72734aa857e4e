package chart

import (
	"fmt"
	"os"
	"sort"

	"github.com/wavelab/ldpc/cmd/internal/tools"

	"github.com/spf13/cobra"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

var OutputFile string

// ChartRun renders one or more RESULTS_JSON sweeps (as written by
// `ldpc simulate`) to an HTML bar chart of block-error rate vs
// Es/N0, one series per results file.
var ChartRun = func(cmd *cobra.Command, args []string) {
	if len(args) < 1 {
		fmt.Println("requires at least one RESULTS_JSON")
		return
	}

	stats := make([]*tools.SimulationStats, len(args))
	var err error
	esNos := make(map[float64]bool)
	for i, resultFile := range args {
		stats[i], err = tools.LoadResults(resultFile)
		if err != nil {
			fmt.Println(err)
			return
		}
		for esNo := range stats[i].Stats {
			esNos[esNo] = true
		}
	}

	xvalues, xnames := xAxisAndValues(esNos)

	f, err := os.Create(OutputFile)
	if err != nil {
		fmt.Println(err)
		return
	}
	defer f.Close()

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    "LDPC Sweep Results",
			Subtitle: "Block Error Rate",
			Left:     "20%",
		}),
		charts.WithLegendOpts(opts.Legend{
			Show:   true,
			Orient: "vertical",
			Right:  "0",
			Top:    "top",
			Type:   "scroll",
		}),
		charts.WithXAxisOpts(opts.XAxis{
			Name:      "Es/N0",
			SplitLine: &opts.SplitLine{Show: true},
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Name:      "Block Error Rate",
			SplitLine: &opts.SplitLine{Show: true},
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: true}),
	)

	bar.SetXAxis(xnames)
	for i, s := range stats {
		bar.AddSeries(args[i], series(s, xvalues))
	}

	bar.Render(f)
}

func xAxisAndValues(esNos map[float64]bool) ([]float64, []string) {
	nums := make([]float64, 0, len(esNos))
	for k := range esNos {
		nums = append(nums, k)
	}
	sort.Float64s(nums)

	strs := make([]string, len(nums))
	for i, n := range nums {
		strs[i] = fmt.Sprint(n)
	}
	return nums, strs
}

func series(stat *tools.SimulationStats, values []float64) []opts.BarData {
	results := make([]opts.BarData, len(values))
	null := opts.BarData{Value: nil}
	for i, v := range values {
		s, has := stat.Stats[v]
		if !has {
			results[i] = null
			continue
		}
		results[i] = opts.BarData{Value: s.BlockErrorRate.Mean}
	}
	return results
}
