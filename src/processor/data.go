// data.go
package processor

import (
	"errors"
	"math"

	"ChurnIntelligence/src/datasource/file"

	"github.com/go-gota/gota/dataframe"
)

// ErrEmptyDataset marks a table with zero rows. Aggregates refuse to
// divide by zero and report this instead of producing NaN.
var ErrEmptyDataset = errors.New("empty dataset")

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// sortByChurnProbability orders rows by predicted churn descending.
// Arrange sorts stably, so rows with equal probability keep their
// original relative order.
func sortByChurnProbability(df dataframe.DataFrame) dataframe.DataFrame {
	return df.Arrange(dataframe.RevSort(file.ColChurnProbability))
}
