// Package recent remembers which gate files were edited most recently so
// the path prompt can offer them as numbered shortcuts.
package recent

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"time"
)

// DefaultMax is the default number of files remembered.
const DefaultMax = 10

// FileName is the file name of the list inside the user directory.
const FileName = "recent.json"

// File is one remembered gate file.
type File struct {
	// Path is the absolute path to the gate file.
	Path string `json:"path"`
	// LastUsed is when the file was last opened.
	LastUsed time.Time `json:"last_used"`
}

// List is the recently used gate files, newest first.
type List struct {
	Files []File `json:"files"`

	path string
	max  int
}

// DefaultPath returns ~/.gatekeep/recent.json.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".gatekeep", FileName), nil
}

// Load reads the list stored at path. A missing or corrupt file yields an
// empty list, and entries whose files no longer exist are dropped.
func Load(path string, max int) (*List, error) {
	l := &List{path: path, max: max}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return l, nil
		}
		return nil, err
	}

	if err := json.Unmarshal(data, l); err != nil {
		// Corrupted list, start fresh
		l.Files = nil
		return l, nil
	}

	valid := make([]File, 0, len(l.Files))
	for _, f := range l.Files {
		if _, err := os.Stat(f.Path); err == nil {
			valid = append(valid, f)
		}
	}
	l.Files = valid
	l.sortAndTrim()

	return l, nil
}

// Save writes the list back to where it was loaded from.
func (l *List) Save() error {
	if err := os.MkdirAll(filepath.Dir(l.path), 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(l, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(l.path, data, 0644)
}

// Add records path as used now, moving it to the front.
func (l *List) Add(path string) {
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}
	now := time.Now()

	for i := range l.Files {
		if l.Files[i].Path == path {
			l.Files[i].LastUsed = now
			l.sortAndTrim()
			return
		}
	}

	l.Files = append(l.Files, File{Path: path, LastUsed: now})
	l.sortAndTrim()
}

// Paths returns the remembered paths, newest first.
func (l *List) Paths() []string {
	paths := make([]string, len(l.Files))
	for i, f := range l.Files {
		paths[i] = f.Path
	}
	return paths
}

// sortAndTrim sorts files by last used (newest first) and trims to max.
func (l *List) sortAndTrim() {
	sort.SliceStable(l.Files, func(i, j int) bool {
		return l.Files[i].LastUsed.After(l.Files[j].LastUsed)
	})
	if l.max >= 0 && len(l.Files) > l.max {
		l.Files = l.Files[:l.max]
	}
}
