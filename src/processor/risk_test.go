package processor

import (
	"reflect"
	"testing"
)

func TestFilterByRiskAll(t *testing.T) {
	df := loadTable(t, scenario)

	out := FilterByRisk(df, RiskAll)
	if out.Nrow() != df.Nrow() {
		t.Fatalf("All returned %d rows, want %d", out.Nrow(), df.Nrow())
	}
	// Same rows, reordered by descending churn probability.
	want := []string{"A", "C", "B", "D"}
	if got := customerOrder(out); !reflect.DeepEqual(got, want) {
		t.Errorf("order = %v, want %v", got, want)
	}
}

func TestFilterByRiskHigh(t *testing.T) {
	df := loadTable(t, scenario)

	out := FilterByRisk(df, RiskHigh)
	want := []string{"A", "C"}
	if got := customerOrder(out); !reflect.DeepEqual(got, want) {
		t.Errorf("order = %v, want %v", got, want)
	}

	for _, level := range out.Col("risk_level").Records() {
		if level != RiskHigh {
			t.Errorf("row with risk_level %q leaked through the filter", level)
		}
	}
}

func TestFilterByRiskMatchesDistributionCount(t *testing.T) {
	df := loadTable(t, scenario)
	dist := RiskDistribution(df)

	for _, rc := range dist {
		if !ValidRiskSelection(rc.Level) {
			continue
		}
		out := FilterByRisk(df, rc.Level)
		if out.Nrow() != rc.Count {
			t.Errorf("filter %q returned %d rows, distribution says %d", rc.Level, out.Nrow(), rc.Count)
		}
	}
}

func TestFilterByRiskInvalidSelectionCoercedToAll(t *testing.T) {
	df := loadTable(t, scenario)

	out := FilterByRisk(df, "Very Risky")
	if out.Nrow() != df.Nrow() {
		t.Errorf("invalid selection returned %d rows, want full table (%d)", out.Nrow(), df.Nrow())
	}
	// Lowercase variants of real labels do not match either.
	out = FilterByRisk(df, "high risk")
	if out.Nrow() != df.Nrow() {
		t.Errorf("matching is case-sensitive; %d rows, want %d", out.Nrow(), df.Nrow())
	}
}

func TestFilterByRiskStableOnTies(t *testing.T) {
	records := [][]string{
		header,
		{"A", "S1", "100", "0.5", "High Risk", "1"},
		{"B", "S1", "50", "0.5", "High Risk", "0"},
		{"C", "S2", "200", "0.5", "High Risk", "1"},
		{"D", "S2", "30", "0.9", "High Risk", "0"},
	}
	df := loadTable(t, records)

	out := FilterByRisk(df, RiskHigh)
	// D sorts first; the three tied rows keep their original order.
	want := []string{"D", "A", "B", "C"}
	if got := customerOrder(out); !reflect.DeepEqual(got, want) {
		t.Errorf("order = %v, want %v", got, want)
	}
}

func TestFilterByRiskEmpty(t *testing.T) {
	out := FilterByRisk(emptyTable(), RiskHigh)
	if out.Nrow() != 0 {
		t.Errorf("empty table should stay empty, got %d rows", out.Nrow())
	}
}
