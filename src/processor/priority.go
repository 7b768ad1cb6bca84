// priority.go
package processor

import (
	"ChurnIntelligence/src/datasource/file"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

// PriorityCustomers selects the rows the retention team should act on
// first: High Risk customers whose lifetime value proxy is strictly
// above the median over the FULL table. The median threshold is taken
// before any filtering; a median of the high-risk remainder would be a
// different, wrong cutoff. Output sorted by churn probability
// descending.
func PriorityCustomers(df dataframe.DataFrame) dataframe.DataFrame {
	if df.Nrow() == 0 {
		return df
	}

	median := df.Col(file.ColCLVProxy).Median()

	out := df.Filter(
		dataframe.F{Colname: file.ColRiskLevel, Comparator: series.Eq, Comparando: RiskHigh},
	).Filter(
		dataframe.F{Colname: file.ColCLVProxy, Comparator: series.Greater, Comparando: median},
	)

	return sortByChurnProbability(out)
}
