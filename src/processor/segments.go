// segments.go
package processor

import (
	"sort"

	"ChurnIntelligence/src/datasource/file"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

// SegmentStat summarises one customer segment: how many customers it
// holds, their mean lifetime value proxy and their observed churn rate
// (a fraction, not a percentage).
type SegmentStat struct {
	Segment   string  `json:"segment"`
	Customers int     `json:"customers"`
	AvgCLV    float64 `json:"avg_clv"`
	ChurnRate float64 `json:"churn_rate"`
}

// SegmentSummary groups the table by segment. Output is ordered by
// segment label so repeated runs produce identical results.
func SegmentSummary(df dataframe.DataFrame) []SegmentStat {
	if df.Nrow() == 0 {
		return nil
	}

	seen := make(map[string]struct{})
	var labels []string
	for _, seg := range df.Col(file.ColSegment).Records() {
		if _, ok := seen[seg]; !ok {
			seen[seg] = struct{}{}
			labels = append(labels, seg)
		}
	}
	sort.Strings(labels)

	stats := make([]SegmentStat, 0, len(labels))
	for _, seg := range labels {
		sub := df.Filter(
			dataframe.F{Colname: file.ColSegment, Comparator: series.Eq, Comparando: seg},
		)
		stats = append(stats, SegmentStat{
			Segment:   seg,
			Customers: sub.Nrow(),
			AvgCLV:    sub.Col(file.ColCLVProxy).Mean(),
			ChurnRate: sub.Col(file.ColActualChurn).Mean(),
		})
	}

	return stats
}
