// monitor.go
package file

import (
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// FileMonitor watches the backing dataset file. The in-memory table is
// never reloaded, so the handler is expected to do no more than warn
// that a restart is needed to pick up the change.
type FileMonitor struct {
	watchPath string
	watcher   *fsnotify.Watcher
	lastMod   time.Time
	mu        sync.Mutex
}

func NewFileMonitor(path string) (*FileMonitor, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	// Watch the directory; editors and pipelines often replace the
	// file instead of writing it in place.
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		watcher.Close()
		return nil, err
	}

	return &FileMonitor{
		watchPath: path,
		watcher:   watcher,
	}, nil
}

// Watch blocks, invoking handler once per observed change of the
// backing file. It returns when the watcher closes.
func (m *FileMonitor) Watch(handler func(string)) error {
	for {
		select {
		case event, ok := <-m.watcher.Events:
			if !ok {
				return nil
			}
			if event.Name != m.watchPath {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}

			info, err := os.Stat(event.Name)
			if err != nil {
				continue
			}

			m.mu.Lock()
			if info.ModTime().After(m.lastMod) {
				m.lastMod = info.ModTime()
				go handler(event.Name)
			}
			m.mu.Unlock()
		case err, ok := <-m.watcher.Errors:
			if !ok {
				return nil
			}
			return err
		}
	}
}

func (m *FileMonitor) Close() error {
	return m.watcher.Close()
}
