package classifier

import (
	"encoding/gob"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
)

// SaveArtifact encodes the pipeline to a temporary file beside path and
// renames it into place, so a concurrent reader never observes a partial
// artifact.
func SaveArtifact(path string, p *Pipeline) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create artifact directory: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp artifact: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err := gob.NewEncoder(tmp).Encode(p); err != nil {
		tmp.Close()
		return fmt.Errorf("encode artifact: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp artifact: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("replace artifact: %w", err)
	}
	return nil
}

// LoadArtifact reads a pipeline saved by SaveArtifact.
func LoadArtifact(path string) (*Pipeline, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open artifact: %w", err)
	}
	defer f.Close()

	var p Pipeline
	if err := gob.NewDecoder(f).Decode(&p); err != nil {
		return nil, fmt.Errorf("decode artifact: %w", err)
	}
	if p.Vectorizer == nil || p.Model == nil {
		return nil, errors.New("artifact incomplete")
	}
	return &p, nil
}

// RemoveLegacyArtifact deletes a model file left behind by the old flat
// layout, where the artifact lived next to the binary instead of under the
// model directory. Absence is not an error.
func RemoveLegacyArtifact(path string) {
	if path == "" {
		return
	}
	err := os.Remove(path)
	switch {
	case err == nil:
		slog.Info("Removed legacy model artifact", "path", path)
	case !errors.Is(err, fs.ErrNotExist):
		slog.Warn("Could not remove legacy model artifact", "path", path, "error", err)
	}
}
