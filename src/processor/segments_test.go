package processor

import "testing"

func TestSegmentSummaryScenario(t *testing.T) {
	df := loadTable(t, scenario)

	stats := SegmentSummary(df)
	if len(stats) != 2 {
		t.Fatalf("got %d segments, want 2", len(stats))
	}

	s1 := stats[0]
	if s1.Segment != "S1" {
		t.Fatalf("stats[0].Segment = %q, want S1 (label order)", s1.Segment)
	}
	if s1.Customers != 2 {
		t.Errorf("S1 customers = %d, want 2", s1.Customers)
	}
	if s1.AvgCLV != 75.0 {
		t.Errorf("S1 avg CLV = %v, want 75.0", s1.AvgCLV)
	}
	if s1.ChurnRate != 0.5 {
		t.Errorf("S1 churn rate = %v, want 0.5", s1.ChurnRate)
	}

	s2 := stats[1]
	if s2.Segment != "S2" || s2.Customers != 2 {
		t.Errorf("stats[1] = %+v, want S2 with 2 customers", s2)
	}
	if s2.AvgCLV != 115.0 {
		t.Errorf("S2 avg CLV = %v, want 115.0", s2.AvgCLV)
	}
}

func TestSegmentSummaryCoversAllRows(t *testing.T) {
	df := loadTable(t, scenario)

	stats := SegmentSummary(df)
	total := 0
	seen := make(map[string]bool)
	for _, s := range stats {
		total += s.Customers
		if seen[s.Segment] {
			t.Errorf("segment %q duplicated", s.Segment)
		}
		seen[s.Segment] = true
	}
	if total != df.Nrow() {
		t.Errorf("customer counts sum to %d, want %d", total, df.Nrow())
	}
}

func TestSegmentSummaryEmpty(t *testing.T) {
	if stats := SegmentSummary(emptyTable()); stats != nil {
		t.Errorf("want nil for empty table, got %v", stats)
	}
}
