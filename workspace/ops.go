package workspace

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/wa-agent/wa/pathutil"
)

// Create makes a new workspace under root and writes its config file. The
// workspaces root is created if missing. An existing workspace directory is
// an error unless force is set.
func Create(name, root string, force bool) (*Workspace, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create workspaces root: %w", err)
	}

	w := New(name, root)
	if _, err := os.Stat(w.Path); err == nil && !force {
		return nil, fmt.Errorf("workspace %q: %w", w.Name, ErrExists)
	}

	if _, err := w.Save(""); err != nil {
		return nil, err
	}
	return w, nil
}

// Read loads the named workspace from its config file under root.
func Read(name, root string) (*Workspace, error) {
	if _, err := os.Stat(root); err != nil {
		return nil, fmt.Errorf("workspaces root at %s: %w", root, ErrNotFound)
	}

	path := filepath.Join(root, pathutil.Sanitize(name))
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("workspace %q: %w", name, ErrNotFound)
	}

	return Load(filepath.Join(path, DefaultConfigFile))
}

// Delete removes the named workspace directory and everything inside it,
// returning the removed path. A workspace that still has top-level folders
// is only deleted with force, guarding against accidental data loss.
func Delete(name, root string, force bool) (string, error) {
	w, err := Read(name, root)
	if err != nil {
		return "", err
	}

	if !force && w.Folders.Len() > 0 {
		return "", fmt.Errorf("workspace %q still has folders, use force to delete: %w", w.Name, ErrHasFolders)
	}

	if err := os.RemoveAll(w.Path); err != nil {
		return "", fmt.Errorf("failed to delete workspace %q: %w", w.Name, err)
	}
	return w.Path, nil
}

// List returns the names of the immediate subdirectories under root. A
// missing root is created and yields an empty list; a root that exists but
// is not a directory is an error. Workspace configs are not loaded or
// validated here.
func List(root string) ([]string, error) {
	info, err := os.Stat(root)
	switch {
	case errors.Is(err, os.ErrNotExist):
		if err := os.MkdirAll(root, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create workspaces root: %w", err)
		}
		return nil, nil
	case err != nil:
		return nil, fmt.Errorf("failed to stat workspaces root: %w", err)
	case !info.IsDir():
		return nil, fmt.Errorf("workspaces root at %s is not a directory: %w", root, ErrNotFound)
	}

	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, fmt.Errorf("failed to list workspaces root: %w", err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			names = append(names, entry.Name())
		}
	}
	return names, nil
}

// CreateFolder creates (or merges) the folder chain inside the named
// workspace and returns the deepest folder of the chain. A workspace that
// does not exist yet is created first rather than treated as an error.
func CreateFolder(chain []string, wsName, root string, appendTimestamp, force bool) (*Folder, error) {
	w, err := Read(wsName, root)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			return nil, err
		}
		w, err = Create(wsName, root, false)
		if err != nil {
			return nil, err
		}
	}
	return w.CreateFolder(chain, appendTimestamp, force)
}

// ReadFolder walks the chain inside the named workspace and returns the
// folder it ends at. With includeFiles the folder's file listing is
// refreshed from disk before returning.
func ReadFolder(chain []string, wsName, root string, includeFiles bool) (*Folder, error) {
	w, err := Read(wsName, root)
	if err != nil {
		return nil, err
	}

	folder, err := w.Folder(chain)
	if err != nil {
		return nil, err
	}

	if includeFiles {
		if err := folder.ListFiles(); err != nil {
			return nil, err
		}
	}
	return folder, nil
}
