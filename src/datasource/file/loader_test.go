package file

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestDatasetLoaderMemoizes(t *testing.T) {
	path := writeTempCSV(t, sampleCSV)
	loader := NewDatasetLoader(path, "")

	df1, err := loader.Load()
	if err != nil {
		t.Fatalf("first Load: %v", err)
	}
	if df1.Nrow() != 4 {
		t.Fatalf("Nrow = %d, want 4", df1.Nrow())
	}

	// Removing the file must not affect later loads: the table is
	// cached for the process lifetime.
	if err := os.Remove(path); err != nil {
		t.Fatal(err)
	}

	df2, err := loader.Load()
	if err != nil {
		t.Fatalf("second Load: %v", err)
	}
	if df2.Nrow() != df1.Nrow() {
		t.Errorf("second Load returned a different table: %d rows vs %d", df2.Nrow(), df1.Nrow())
	}
}

func TestDatasetLoaderMissingFile(t *testing.T) {
	loader := NewDatasetLoader(filepath.Join(t.TempDir(), "nope.csv"), "")

	_, err := loader.Load()
	if err == nil {
		t.Fatal("expected error")
	}
	if !errors.Is(err, ErrDataUnavailable) {
		t.Errorf("error should wrap ErrDataUnavailable, got: %v", err)
	}

	// The failure is memoized too.
	if _, err2 := loader.Load(); !errors.Is(err2, ErrDataUnavailable) {
		t.Errorf("second Load should return the cached failure, got: %v", err2)
	}
}

func TestDatasetLoaderSchemaMismatch(t *testing.T) {
	path := writeTempCSV(t, "customer_id,segment\nA,S1\n")
	loader := NewDatasetLoader(path, "")

	if _, err := loader.Load(); !errors.Is(err, ErrDataUnavailable) {
		t.Errorf("schema mismatch should wrap ErrDataUnavailable, got: %v", err)
	}
}
