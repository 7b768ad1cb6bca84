// processor_test.go
package processor

import (
	"testing"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

var testTypes = map[string]series.Type{
	"customer_id":       series.String,
	"segment":           series.String,
	"clv_proxy":         series.Float,
	"churn_probability": series.Float,
	"risk_level":        series.String,
	"actual_churn":      series.Float,
}

var header = []string{"customer_id", "segment", "clv_proxy", "churn_probability", "risk_level", "actual_churn"}

// Four customers across two segments, two of them churned high-risk.
var scenario = [][]string{
	header,
	{"A", "S1", "100", "0.9", "High Risk", "1"},
	{"B", "S1", "50", "0.2", "Low Risk", "0"},
	{"C", "S2", "200", "0.8", "High Risk", "1"},
	{"D", "S2", "30", "0.1", "Low Risk", "0"},
}

func loadTable(t *testing.T, records [][]string) dataframe.DataFrame {
	t.Helper()
	df := dataframe.LoadRecords(records, dataframe.WithTypes(testTypes))
	if df.Error() != nil {
		t.Fatalf("load records: %v", df.Error())
	}
	return df
}

func emptyTable() dataframe.DataFrame {
	ss := make([]series.Series, len(header))
	for i, name := range header {
		ss[i] = series.New([]string{}, testTypes[name], name)
	}
	return dataframe.New(ss...)
}

func customerOrder(df dataframe.DataFrame) []string {
	return df.Col("customer_id").Records()
}
