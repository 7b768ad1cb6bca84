// loader.go
package file

import (
	"errors"
	"fmt"
	"sync"

	"github.com/go-gota/gota/dataframe"
)

// ErrDataUnavailable marks a backing file that is missing, unreadable
// or schema-mismatched. It is fatal at startup; there is no retry
// because the file is static.
var ErrDataUnavailable = errors.New("dataset unavailable")

// DatasetLoader reads the backing file once per process lifetime and
// hands out the same in-memory table afterwards. The cache is never
// invalidated; operators restart the service to pick up new data.
type DatasetLoader struct {
	path      string
	sheetName string

	once sync.Once
	df   dataframe.DataFrame
	err  error
}

func NewDatasetLoader(path, sheetName string) *DatasetLoader {
	return &DatasetLoader{
		path:      path,
		sheetName: sheetName,
	}
}

// Load returns the memoized table. The first call performs the only
// file read of the session; later calls return the cached result,
// including a cached failure.
func (l *DatasetLoader) Load() (dataframe.DataFrame, error) {
	l.once.Do(func() {
		df, err := ReadDataset(l.path, l.sheetName)
		if err != nil {
			l.err = fmt.Errorf("%w: %v", ErrDataUnavailable, err)
			return
		}
		l.df = df
	})
	return l.df, l.err
}

// Path returns the backing file path, for logging and the watcher.
func (l *DatasetLoader) Path() string {
	return l.path
}
