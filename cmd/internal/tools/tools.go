// Package tools holds the JSON result format shared by the simulate,
// chart, and csv CLI subcommands: a sweep's block/bit-error statistics
// keyed by Es/N0, persisted to disk between runs so a chart or csv export
// can be generated without re-running the (possibly long) simulation.
package tools

import (
	"encoding/json"
	"fmt"
	"io/ioutil"
	"strconv"

	"github.com/wavelab/ldpc/benchmarking"
)

// SimulationStats is one sweep's worth of results: which code it ran
// against, and the accumulated Stats at each Es/N0 point. The map key
// is a float64 in memory but marshaled through a string-keyed shadow
// type, since JSON object keys must be strings.
type SimulationStats struct {
	CodeInfo string
	Stats    map[float64]benchmarking.Stats
}

type simulationStats struct {
	CodeInfo string
	Stats    map[string]benchmarking.Stats
}

func (s *SimulationStats) MarshalJSON() ([]byte, error) {
	ss := simulationStats{CodeInfo: s.CodeInfo, Stats: map[string]benchmarking.Stats{}}
	for f, stat := range s.Stats {
		ss.Stats[fmt.Sprintf("%v", f)] = stat
	}
	return json.Marshal(ss)
}

func (s *SimulationStats) UnmarshalJSON(bs []byte) error {
	var ss simulationStats
	if err := json.Unmarshal(bs, &ss); err != nil {
		return err
	}

	s.CodeInfo = ss.CodeInfo
	s.Stats = map[float64]benchmarking.Stats{}
	for fs, stat := range ss.Stats {
		f, err := strconv.ParseFloat(fs, 64)
		if err != nil {
			return err
		}
		s.Stats[f] = stat
	}
	return nil
}

// FromPoints builds a SimulationStats from a benchmarking.EsNoSweep result.
func FromPoints(codeInfo string, points []benchmarking.Point) *SimulationStats {
	s := &SimulationStats{CodeInfo: codeInfo, Stats: map[float64]benchmarking.Stats{}}
	for _, p := range points {
		s.Stats[p.EsNo] = p.Stats
	}
	return s
}

// LoadResults reads a SimulationStats previously written by SaveResults.
func LoadResults(filepath string) (*SimulationStats, error) {
	bs, err := ioutil.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("error while reading file %v: %v", filepath, err)
	}

	var stat SimulationStats
	if err := json.Unmarshal(bs, &stat); err != nil {
		return nil, fmt.Errorf("error while unmarshalling file %v: %v", filepath, err)
	}
	return &stat, nil
}

// SaveResults writes data as indented JSON to filepath.
func SaveResults(filepath string, data *SimulationStats) error {
	bs, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("error serializing results: %v", err)
	}
	if err := ioutil.WriteFile(filepath, bs, 0644); err != nil {
		return fmt.Errorf("error while saving results to %v: %v", filepath, err)
	}
	return nil
}
