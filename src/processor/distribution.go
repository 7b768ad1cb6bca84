// distribution.go
package processor

import (
	"sort"

	"ChurnIntelligence/src/datasource/file"

	"github.com/go-gota/gota/dataframe"
)

// RiskCount is one slice of the risk proportion chart.
type RiskCount struct {
	Level string `json:"level"`
	Count int    `json:"count"`
}

// RiskDistribution counts rows per risk level. Known labels come first
// in High/Medium/Low order, anything unexpected follows sorted by
// label. The counts sum to the table's row count.
func RiskDistribution(df dataframe.DataFrame) []RiskCount {
	if df.Nrow() == 0 {
		return nil
	}

	counts := make(map[string]int)
	for _, level := range df.Col(file.ColRiskLevel).Records() {
		counts[level]++
	}

	out := make([]RiskCount, 0, len(counts))
	for _, level := range riskLevels {
		if c, ok := counts[level]; ok {
			out = append(out, RiskCount{Level: level, Count: c})
			delete(counts, level)
		}
	}

	extra := make([]string, 0, len(counts))
	for level := range counts {
		extra = append(extra, level)
	}
	sort.Strings(extra)
	for _, level := range extra {
		out = append(out, RiskCount{Level: level, Count: counts[level]})
	}

	return out
}

// clvHistogramBins is the fixed bin count of the CLV distribution.
const clvHistogramBins = 30

// Histogram is an equal-width binning of a numeric column over its
// observed min/max.
type Histogram struct {
	Min      float64 `json:"min"`
	Max      float64 `json:"max"`
	BinWidth float64 `json:"bin_width"`
	Counts   []int   `json:"counts"`
}

// CLVHistogram bins clv_proxy into 30 equal-width bins. When every
// value is identical the histogram collapses to a single bin.
func CLVHistogram(df dataframe.DataFrame) (Histogram, error) {
	if df.Nrow() == 0 {
		return Histogram{}, ErrEmptyDataset
	}

	vals := df.Col(file.ColCLVProxy).Float()
	min, max := vals[0], vals[0]
	for _, v := range vals[1:] {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}

	if min == max {
		return Histogram{Min: min, Max: max, Counts: []int{len(vals)}}, nil
	}

	width := (max - min) / clvHistogramBins
	counts := make([]int, clvHistogramBins)
	for _, v := range vals {
		i := int((v - min) / width)
		if i >= clvHistogramBins {
			i = clvHistogramBins - 1
		}
		counts[i]++
	}

	return Histogram{Min: min, Max: max, BinWidth: width, Counts: counts}, nil
}
