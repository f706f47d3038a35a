// Package snapshot reads and writes the binary snapshot files that carry a
// run's full output between the extraction step and later post-processing.
package snapshot

import (
	"encoding/gob"
	"os"
	"path/filepath"
)

// Write serializes object to a binary snapshot at path, creating parent
// directories as needed
func Write(path string, object interface{}) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()
	return gob.NewEncoder(file).Encode(object)
}

// Load deserializes the binary snapshot at path into object, which must be a
// pointer to the expected type
func Load(path string, object interface{}) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()
	return gob.NewDecoder(file).Decode(object)
}
