// Package share encodes splits to standalone files that can be sent to
// another user and imported back.
package share

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/claude/vincera/internal/models"
)

// Extension is the app-specific type identifier for shared split files.
const Extension = ".vincera"

// Encode serializes a split for sharing.
func Encode(split models.Split) ([]byte, error) {
	data, err := json.Marshal(split)
	if err != nil {
		return nil, fmt.Errorf("encoding split: %w", err)
	}
	return data, nil
}

// ExportFile writes the split to dir/<name>.vincera and returns the path.
func ExportFile(split models.Split, dir string) (string, error) {
	data, err := Encode(split)
	if err != nil {
		return "", err
	}
	path := filepath.Join(dir, split.Name+Extension)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("writing split file: %w", err)
	}
	return path, nil
}

// Import decodes a shared split and assigns fresh ids throughout, so the
// imported copy is independent of the exported original. Names, descriptions
// and day contents are preserved exactly.
func Import(data []byte) (models.Split, error) {
	var split models.Split
	if err := json.Unmarshal(data, &split); err != nil {
		return models.Split{}, fmt.Errorf("decoding split: %w", err)
	}
	return split.Clone(), nil
}

// ImportFile reads and imports a shared split file.
func ImportFile(path string) (models.Split, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return models.Split{}, fmt.Errorf("reading split file: %w", err)
	}
	return Import(data)
}
