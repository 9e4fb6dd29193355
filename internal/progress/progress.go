// Package progress reads the case progress that the game engine publishes to
// a small JSON file, e.g. {"solved": 1, "total": 3}. The landing screen only
// displays it.
package progress

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// ErrClosed is returned by Next after Close.
var ErrClosed = errors.New("progress watcher closed")

// Progress is a solved/total pair.
type Progress struct {
	Solved int `json:"solved"`
	Total  int `json:"total"`
}

// Label renders the pair as "solved/total".
func (p Progress) Label() string {
	return fmt.Sprintf("%d/%d", p.Solved, p.Total)
}

// Load reads and decodes the progress file.
func Load(path string) (Progress, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Progress{}, err
	}
	var p Progress
	if err := json.Unmarshal(data, &p); err != nil {
		return Progress{}, fmt.Errorf("decode %s: %w", path, err)
	}
	if p.Solved < 0 || p.Total < 0 {
		return Progress{}, fmt.Errorf("decode %s: negative count", path)
	}
	return p, nil
}

// Watcher reports the progress file's contents each time it changes.
type Watcher struct {
	path    string
	watcher *fsnotify.Watcher
}

// NewWatcher watches the directory containing path. Watching the directory
// rather than the file survives editors and engines that replace the file.
func NewWatcher(path string) (*Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := w.Add(filepath.Dir(path)); err != nil {
		w.Close()
		return nil, fmt.Errorf("watch %s: %w", path, err)
	}
	return &Watcher{path: filepath.Clean(path), watcher: w}, nil
}

// Path returns the watched file.
func (w *Watcher) Path() string {
	return w.path
}

// Next blocks until the file is written or created and decodes it. Events
// for other files in the directory and undecodable contents are skipped.
func (w *Watcher) Next() (Progress, error) {
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return Progress{}, ErrClosed
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			p, err := Load(w.path)
			if err != nil {
				// Partial write; wait for the next event.
				continue
			}
			return p, nil
		case _, ok := <-w.watcher.Errors:
			if !ok {
				return Progress{}, ErrClosed
			}
		}
	}
}

// Close stops watching.
func (w *Watcher) Close() error {
	return w.watcher.Close()
}
