package gates

import (
	"os"

	gkerrors "github.com/wexinc/gatekeep/internal/errors"
	"github.com/wexinc/gatekeep/internal/logging"
)

// File binds a Store to the gate file it was read from.
type File struct {
	path   string
	format *Format
	store  *Store
}

// NewFile creates a File for path. It does not read the file; call Load.
// A nil format means DefaultFormat.
func NewFile(path string, format *Format) *File {
	if format == nil {
		format = DefaultFormat()
	}
	return &File{
		path:   path,
		format: format,
		store:  NewStore(),
	}
}

// Open creates a File for path and loads it.
func Open(path string, format *Format) (*File, error) {
	f := NewFile(path, format)
	if err := f.Load(); err != nil {
		return nil, err
	}
	return f, nil
}

// Path returns the file path.
func (f *File) Path() string {
	return f.path
}

// Format returns the header layout used for reading and writing.
func (f *File) Format() *Format {
	return f.format
}

// Store returns the in-memory store. Mutations are persisted by Save.
func (f *File) Store() *Store {
	return f.store
}

// SetStore replaces the in-memory store, e.g. with one built from another
// format. Call Save to write it.
func (f *File) SetStore(st *Store) {
	f.store = st
}

// Load reads and parses the file, replacing the in-memory store.
func (f *File) Load() error {
	data, err := os.ReadFile(f.path)
	if err != nil {
		logging.Error("failed to read gate file", "file", f.path, "error", err)
		return gkerrors.FileRead(f.path, err)
	}

	f.store = f.format.Parse(string(data))
	logging.Info("loaded gate file", "file", f.path, "sections", f.store.Len())
	return nil
}

// Save serializes the store and overwrites the file. On failure the
// in-memory store is untouched so the caller can retry.
func (f *File) Save() error {
	data := f.format.Serialize(f.store)
	if err := os.WriteFile(f.path, []byte(data), 0644); err != nil {
		logging.Error("failed to write gate file", "file", f.path, "error", err)
		return gkerrors.FileWrite(f.path, err)
	}

	logging.Debug("saved gate file", "file", f.path, "bytes", len(data))
	return nil
}
