package workspace

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// Save writes the workspace config as indented JSON. With an empty path the
// config goes to the workspace's own directory under ConfigFile. Parent
// directories are created as needed and the file is overwritten
// unconditionally; there is no lock, the last writer wins.
// Returns the path written.
func (w *Workspace) Save(path string) (string, error) {
	if path == "" {
		path = filepath.Join(w.Path, w.ConfigFile)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", fmt.Errorf("failed to create workspace directory: %w", err)
	}

	content, err := json.MarshalIndent(w, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal workspace config: %w", err)
	}

	if err := atomicWrite(path, content); err != nil {
		return "", fmt.Errorf("failed to write workspace config: %w", err)
	}
	return path, nil
}

// Load reads a workspace config file and reconstructs the full folder tree,
// preserving the folder order of the source document. File listings are
// taken verbatim from the config, not recomputed from disk.
func Load(path string) (*Workspace, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("workspace config at %s: %w", path, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to read workspace config: %w", err)
	}

	var w Workspace
	if err := json.Unmarshal(data, &w); err != nil {
		return nil, fmt.Errorf("workspace config at %s: %w: %v", path, ErrInvalidConfig, err)
	}

	w.normalize()
	return &w, nil
}

// atomicWrite writes content to a file atomically using a temp file and
// rename. This keeps readers of the config file from ever seeing a partial
// write.
func atomicWrite(path string, content []byte) error {
	dir := filepath.Dir(path)
	tmpFile, err := os.CreateTemp(dir, "wa-*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmpFile.Name()

	if _, err := tmpFile.Write(content); err != nil {
		_ = tmpFile.Close()
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to write to temp file: %w", err)
	}

	if err := tmpFile.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to rename temp file: %w", err)
	}

	return nil
}
