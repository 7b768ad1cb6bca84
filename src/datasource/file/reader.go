// reader.go
package file

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"github.com/tealeg/xlsx"
)

// Column names of the customer dataset. churn_probability and
// risk_level are precomputed upstream and never re-derived here.
const (
	ColCustomerID       = "customer_id"
	ColSegment          = "segment"
	ColCLVProxy         = "clv_proxy"
	ColChurnProbability = "churn_probability"
	ColRiskLevel        = "risk_level"
	ColActualChurn      = "actual_churn"
)

var requiredColumns = []string{
	ColCustomerID,
	ColSegment,
	ColCLVProxy,
	ColChurnProbability,
	ColRiskLevel,
	ColActualChurn,
}

var columnTypes = map[string]series.Type{
	ColCustomerID:       series.String,
	ColSegment:          series.String,
	ColCLVProxy:         series.Float,
	ColChurnProbability: series.Float,
	ColRiskLevel:        series.String,
	ColActualChurn:      series.Float,
}

// ReadDataset reads the backing file into a DataFrame. CSV is the
// default format; files ending in .xlsx are read through tealeg/xlsx
// using the given sheet name. Extra columns are kept as strings and
// ignored downstream.
func ReadDataset(path, sheetName string) (dataframe.DataFrame, error) {
	var (
		records [][]string
		err     error
	)

	if strings.EqualFold(filepath.Ext(path), ".xlsx") {
		records, err = readXLSX(path, sheetName)
	} else {
		records, err = readCSV(path)
	}
	if err != nil {
		return dataframe.DataFrame{}, err
	}

	return frameFromRecords(records)
}

func readCSV(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dataset %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.TrimLeadingSpace = true
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv %s: %w", path, err)
	}
	return records, nil
}

func readXLSX(path, sheetName string) ([][]string, error) {
	xlFile, err := xlsx.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open xlsx %s: %w", path, err)
	}

	sheet, ok := xlFile.Sheet[sheetName]
	if !ok || sheet == nil {
		return nil, fmt.Errorf("xlsx %s: sheet %q not found", path, sheetName)
	}
	if len(sheet.Rows) == 0 {
		return nil, fmt.Errorf("xlsx %s: sheet %q is empty", path, sheetName)
	}

	var header []string
	for _, cell := range sheet.Rows[0].Cells {
		header = append(header, cell.Value)
	}

	records := [][]string{header}
	for _, row := range sheet.Rows[1:] {
		rec := make([]string, len(header))
		for i, cell := range row.Cells {
			if i < len(header) {
				rec[i] = cell.Value
			}
		}
		records = append(records, rec)
	}
	return records, nil
}

// frameFromRecords validates the header row and builds a typed
// DataFrame. A header-only file yields a valid zero-row table so the
// empty-dataset case stays distinct from a malformed file.
func frameFromRecords(records [][]string) (dataframe.DataFrame, error) {
	if len(records) == 0 {
		return dataframe.DataFrame{}, fmt.Errorf("dataset has no header row")
	}

	header := make([]string, len(records[0]))
	for i, name := range records[0] {
		header[i] = strings.TrimSpace(name)
	}
	records[0] = header

	if missing := missingColumns(header); len(missing) > 0 {
		return dataframe.DataFrame{}, fmt.Errorf("dataset missing required columns: %s",
			strings.Join(missing, ", "))
	}

	if len(records) == 1 {
		return emptyFrame(header), nil
	}

	df := dataframe.LoadRecords(records, dataframe.WithTypes(columnTypes))
	if df.Error() != nil {
		return dataframe.DataFrame{}, fmt.Errorf("load dataset records: %w", df.Error())
	}
	return df, nil
}

func missingColumns(header []string) []string {
	present := make(map[string]bool, len(header))
	for _, name := range header {
		present[name] = true
	}

	var missing []string
	for _, name := range requiredColumns {
		if !present[name] {
			missing = append(missing, name)
		}
	}
	return missing
}

// emptyFrame builds a zero-row table carrying the header's columns.
func emptyFrame(header []string) dataframe.DataFrame {
	ss := make([]series.Series, len(header))
	for i, name := range header {
		typ, ok := columnTypes[name]
		if !ok {
			typ = series.String
		}
		ss[i] = series.New([]string{}, typ, name)
	}
	return dataframe.New(ss...)
}
