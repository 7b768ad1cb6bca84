// overview.go
package processor

import (
	"ChurnIntelligence/src/datasource/file"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

// HeadlineStats are the four stat tiles of the executive overview.
// Percentages and the CLV mean carry 2-decimal precision.
type HeadlineStats struct {
	TotalCustomers int     `json:"total_customers"`
	ChurnRatePct   float64 `json:"churn_rate_pct"`
	HighRiskPct    float64 `json:"high_risk_pct"`
	AvgCLV         float64 `json:"avg_clv"`
}

// Headline reduces the full table to the overview metrics.
func Headline(df dataframe.DataFrame) (HeadlineStats, error) {
	n := df.Nrow()
	if n == 0 {
		return HeadlineStats{}, ErrEmptyDataset
	}

	distinct := make(map[string]struct{}, n)
	for _, id := range df.Col(file.ColCustomerID).Records() {
		distinct[id] = struct{}{}
	}

	highRisk := df.Filter(
		dataframe.F{Colname: file.ColRiskLevel, Comparator: series.Eq, Comparando: RiskHigh},
	).Nrow()

	return HeadlineStats{
		TotalCustomers: len(distinct),
		ChurnRatePct:   round2(df.Col(file.ColActualChurn).Mean() * 100),
		HighRiskPct:    round2(float64(highRisk) / float64(n) * 100),
		AvgCLV:         round2(df.Col(file.ColCLVProxy).Mean()),
	}, nil
}
