package csv

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/wavelab/ldpc/cmd/internal/tools"

	"github.com/spf13/cobra"
)

var OutputFile string
var BitErrorRate bool

// CSVRun exports one or more RESULTS_JSON sweeps into a single CSV, one
// row per results file and one column per Es/N0 point.
var CSVRun = func(cmd *cobra.Command, args []string) {
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

	f, err := os.Create(OutputFile)
	if err != nil {
		fmt.Println(err)
		return
	}
	defer f.Close()
	w := csv.NewWriter(f)
	defer w.Flush()

	esNoList := make([]float64, 0, len(esNos))
	for esNo := range esNos {
		esNoList = append(esNoList, esNo)
	}
	sort.Float64s(esNoList)

	header := []string{"Results File"}
	for _, esNo := range esNoList {
		header = append(header, fmt.Sprintf("%v", esNo))
	}
	if err := w.Write(header); err != nil {
		fmt.Println(err)
		return
	}

	for i, s := range stats {
		record := make([]string, len(header))
		record[0] = strings.TrimSuffix(args[i], filepath.Ext(args[i]))

		for j, esNo := range esNoList {
			v, has := s.Stats[esNo]
			if !has {
				continue
			}
			if BitErrorRate {
				record[j+1] = fmt.Sprintf("%v", v.BitErrorRate.Mean)
			} else {
				record[j+1] = fmt.Sprintf("%v", v.BlockErrorRate.Mean)
			}
		}

		if err := w.Write(record); err != nil {
			fmt.Println(err)
			return
		}
	}
}
