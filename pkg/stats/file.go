package stats

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// defaultFileMode is used when the stats file does not exist yet
const defaultFileMode os.FileMode = 0644

// FileStore keeps the record in a pretty-printed JSON file
type FileStore struct {
	path     string
	defaults Record
}

// NewFileStore returns a store for the file at path
func NewFileStore(path string, defaults Record) *FileStore {
	return &FileStore{
		path:     path,
		defaults: defaults,
	}
}

// Path returns the file path
func (f *FileStore) Path() string {
	return f.path
}

// Defaults returns the record used when nothing has been saved
func (f *FileStore) Defaults() Record {
	return f.defaults
}

// Load reads the record
// A missing file is not an error. Keys missing from the file keep their default value
// and unknown keys are ignored.
func (f *FileStore) Load() (Record, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if os.IsNotExist(err) {
			return f.defaults, nil
		}

		return f.defaults, fmt.Errorf("could not read %s: %w", f.path, err)
	}

	record := f.defaults
	if err := json.Unmarshal(data, &record); err != nil {
		return f.defaults, fmt.Errorf("could not parse %s: %w", f.path, err)
	}

	return record, nil
}

// Save overwrites the file with the record
// The record is written to a temp file in the same directory and renamed into place.
// An existing file keeps its permissions.
func (f *FileStore) Save(record Record) error {
	data, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return err
	}

	mode := defaultFileMode
	if info, err := os.Stat(f.path); err == nil {
		mode = info.Mode().Perm()
	}

	tmp, err := os.CreateTemp(filepath.Dir(f.path), ".stats-*.json")
	if err != nil {
		return err
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	// CreateTemp makes the file owner-only
	if err := tmp.Chmod(mode); err != nil {
		_ = tmp.Close()
		return err
	}

	if _, err := tmp.Write(append(data, '\n')); err != nil {
		_ = tmp.Close()
		return err
	}

	if err := tmp.Close(); err != nil {
		return err
	}

	return os.Rename(tmp.Name(), f.path)
}

// Close is a no-op, the file is only open while loading or saving
func (f *FileStore) Close() error {
	return nil
}
