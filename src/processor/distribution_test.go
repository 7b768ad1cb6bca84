package processor

import (
	"errors"
	"testing"
)

func TestRiskDistributionSumsToRowCount(t *testing.T) {
	df := loadTable(t, scenario)

	dist := RiskDistribution(df)
	total := 0
	for _, rc := range dist {
		total += rc.Count
	}
	if total != df.Nrow() {
		t.Errorf("counts sum to %d, want %d", total, df.Nrow())
	}
}

func TestRiskDistributionOrderAndCounts(t *testing.T) {
	df := loadTable(t, scenario)

	dist := RiskDistribution(df)
	if len(dist) != 2 {
		t.Fatalf("got %d levels, want 2", len(dist))
	}
	if dist[0].Level != RiskHigh || dist[0].Count != 2 {
		t.Errorf("dist[0] = %+v, want {High Risk 2}", dist[0])
	}
	if dist[1].Level != RiskLow || dist[1].Count != 2 {
		t.Errorf("dist[1] = %+v, want {Low Risk 2}", dist[1])
	}
}

func TestRiskDistributionUnexpectedLabelLast(t *testing.T) {
	records := append([][]string{}, scenario...)
	records = append(records, []string{"E", "S1", "10", "0.5", "Unscored", "0"})
	df := loadTable(t, records)

	dist := RiskDistribution(df)
	if last := dist[len(dist)-1]; last.Level != "Unscored" || last.Count != 1 {
		t.Errorf("unexpected label should sort last, got %+v", last)
	}
}

func TestRiskDistributionEmpty(t *testing.T) {
	if dist := RiskDistribution(emptyTable()); dist != nil {
		t.Errorf("want nil for empty table, got %v", dist)
	}
}

func TestCLVHistogram(t *testing.T) {
	df := loadTable(t, scenario)

	h, err := CLVHistogram(df)
	if err != nil {
		t.Fatalf("CLVHistogram: %v", err)
	}
	if h.Min != 30 || h.Max != 200 {
		t.Errorf("range = [%v, %v], want [30, 200]", h.Min, h.Max)
	}
	if len(h.Counts) != clvHistogramBins {
		t.Fatalf("got %d bins, want %d", len(h.Counts), clvHistogramBins)
	}

	total := 0
	for _, c := range h.Counts {
		total += c
	}
	if total != df.Nrow() {
		t.Errorf("binned %d values, want %d", total, df.Nrow())
	}

	// Max value lands in the last bin, not out of range.
	if h.Counts[clvHistogramBins-1] != 1 {
		t.Errorf("last bin = %d, want 1 (the 200 row)", h.Counts[clvHistogramBins-1])
	}
}

func TestCLVHistogramDegenerate(t *testing.T) {
	records := [][]string{
		header,
		{"A", "S1", "100", "0.9", "High Risk", "1"},
		{"B", "S1", "100", "0.2", "Low Risk", "0"},
	}
	df := loadTable(t, records)

	h, err := CLVHistogram(df)
	if err != nil {
		t.Fatal(err)
	}
	if len(h.Counts) != 1 || h.Counts[0] != 2 {
		t.Errorf("identical values should collapse to one bin, got %v", h.Counts)
	}
}

func TestCLVHistogramEmpty(t *testing.T) {
	if _, err := CLVHistogram(emptyTable()); !errors.Is(err, ErrEmptyDataset) {
		t.Errorf("want ErrEmptyDataset, got %v", err)
	}
}
