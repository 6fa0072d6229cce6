// Package dataset provides the bundled city statistics sample and loading
// of caller-supplied dataset files. The core pipeline only ever sees the
// ready string inside a Snapshot; all file I/O stops here.
package dataset

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/google/uuid"
)

//go:embed cities.csv
var cities string

// Snapshot is one loaded dataset: the raw CSV text plus an identifier that
// tags log entries and responses produced from it.
type Snapshot struct {
	ID     uuid.UUID
	Source string // "embedded" or the file path
	Text   string
}

// Embedded returns a snapshot of the bundled sample dataset.
func Embedded() Snapshot {
	return Snapshot{ID: uuid.New(), Source: "embedded", Text: cities}
}

// FromFile loads a dataset snapshot from path.
func FromFile(path string) (Snapshot, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Snapshot{}, fmt.Errorf("dataset: reading %s: %w", path, err)
	}
	return Snapshot{ID: uuid.New(), Source: path, Text: string(raw)}, nil
}

// Load returns the dataset at path, falling back to the embedded sample
// when path is empty.
func Load(path string) (Snapshot, error) {
	if path == "" {
		return Embedded(), nil
	}
	return FromFile(path)
}
