// report.go
package datapush

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"ChurnIntelligence/src/datasource/file"
	"ChurnIntelligence/src/processor"

	"github.com/go-gota/gota/dataframe"
	"github.com/xuri/excelize/v2"
)

const (
	segmentSheet  = "Segment Summary"
	prioritySheet = "Priority Customers"
)

// ReportExporter writes the retention snapshot: one sheet with the
// segment summary, one with the priority customer table.
type ReportExporter struct {
	OutputDir string
}

// Export computes both views from the table and saves a timestamped
// xlsx file, returning its path.
func (re *ReportExporter) Export(df dataframe.DataFrame) (string, error) {
	if err := os.MkdirAll(re.OutputDir, 0755); err != nil {
		return "", fmt.Errorf("create report directory: %w", err)
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", segmentSheet); err != nil {
		return "", fmt.Errorf("rename sheet: %w", err)
	}
	if _, err := f.NewSheet(prioritySheet); err != nil {
		return "", fmt.Errorf("add sheet: %w", err)
	}

	writeSegmentSheet(f, processor.SegmentSummary(df))

	priority := processor.PriorityCustomers(df).Select([]string{
		file.ColCustomerID,
		file.ColSegment,
		file.ColCLVProxy,
		file.ColChurnProbability,
	})
	writeFrameSheet(f, prioritySheet, priority)

	path := filepath.Join(re.OutputDir,
		fmt.Sprintf("churn_report_%s.xlsx", time.Now().Format("20060102_150405")))
	if err := f.SaveAs(path); err != nil {
		return "", fmt.Errorf("save report: %w", err)
	}

	return path, nil
}

func writeSegmentSheet(f *excelize.File, stats []processor.SegmentStat) {
	headers := []string{"segment", "customers", "avg_clv", "churn_rate"}
	for i, name := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(segmentSheet, cell, name)
	}

	for rowIdx, s := range stats {
		values := []interface{}{s.Segment, s.Customers, s.AvgCLV, s.ChurnRate}
		for colIdx, v := range values {
			cell, _ := excelize.CoordinatesToCellName(colIdx+1, rowIdx+2)
			f.SetCellValue(segmentSheet, cell, v)
		}
	}
}

// writeFrameSheet dumps a DataFrame to a sheet, header row first.
func writeFrameSheet(f *excelize.File, sheetName string, df dataframe.DataFrame) {
	colNames := df.Names()
	for i, name := range colNames {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheetName, cell, name)
	}

	for rowIdx := 0; rowIdx < df.Nrow(); rowIdx++ {
		for colIdx, colName := range colNames {
			cell, _ := excelize.CoordinatesToCellName(colIdx+1, rowIdx+2)
			f.SetCellValue(sheetName, cell, df.Col(colName).Val(rowIdx))
		}
	}
}
