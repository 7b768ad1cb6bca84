// risk.go
package processor

import (
	"ChurnIntelligence/src/datasource/file"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

// Risk level labels as produced by the upstream scoring pipeline,
// plus the selector sentinel "All". Matching is exact and
// case-sensitive.
const (
	RiskAll    = "All"
	RiskHigh   = "High Risk"
	RiskMedium = "Medium Risk"
	RiskLow    = "Low Risk"
)

var riskLevels = []string{RiskHigh, RiskMedium, RiskLow}

// RiskSelections are the selector options in display order.
var RiskSelections = []string{RiskAll, RiskHigh, RiskMedium, RiskLow}

// ValidRiskSelection reports whether level is one of the selector
// labels.
func ValidRiskSelection(level string) bool {
	for _, l := range RiskSelections {
		if level == l {
			return true
		}
	}
	return false
}

// FilterByRisk returns the rows matching level, sorted by churn
// probability descending. "All" returns the whole table. The selector
// is a closed enumeration under the dashboard's control, so an unknown
// value is coerced to "All" rather than rejected.
func FilterByRisk(df dataframe.DataFrame, level string) dataframe.DataFrame {
	if df.Nrow() == 0 {
		return df
	}

	out := df
	if level != RiskAll && ValidRiskSelection(level) {
		out = df.Filter(
			dataframe.F{Colname: file.ColRiskLevel, Comparator: series.Eq, Comparando: level},
		)
	}
	return sortByChurnProbability(out)
}
