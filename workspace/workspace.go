// Package workspace implements the workspace folder-tree model: a recursive
// folder structure per workspace, a non-destructive merge of new folder
// chains into an existing tree, and JSON sidecar persistence.
//
// A workspace is a named directory under a workspaces root. Its folder tree
// is recorded in a workspace.json config file co-located with the
// directory; the directory structure on disk mirrors the tree and is
// populated incrementally as folders are created. All operations take the
// workspaces root explicitly, the package never derives it from ambient
// state.
package workspace

import (
	"fmt"
	"path/filepath"

	"github.com/wa-agent/wa/pathutil"
)

// Version tags saved workspace configs with the release that wrote them. It
// is provenance only and plays no part in merge or load logic.
const Version = "0.2.0"

// DefaultConfigFile is the config file name recording a workspace's tree.
const DefaultConfigFile = "workspace.json"

// Workspace is the root of one on-disk workspace: its own directory under
// the workspaces root plus the folder tree recorded in its config file.
type Workspace struct {
	Name           string     `json:"name"`
	Version        string     `json:"version"`
	Path           string     `json:"path"`
	WorkspacesPath string     `json:"workspaces_path"`
	ConfigFile     string     `json:"config_file"`
	Folders        *FolderSet `json:"folders"`
	Files          []string   `json:"files,omitempty"`
}

// New returns a workspace rooted under workspacesPath. The name is
// sanitized and the workspace path is derived from it. The workspace
// directory itself is created by Create or the first Save, not here.
func New(name, workspacesPath string) *Workspace {
	w := &Workspace{
		Name:           pathutil.Sanitize(name),
		Version:        Version,
		WorkspacesPath: workspacesPath,
		ConfigFile:     DefaultConfigFile,
		Folders:        NewFolderSet(),
	}
	w.Path = filepath.Join(workspacesPath, w.Name)
	return w
}

// CreateFolder merges the folder chain into the workspace tree, creating
// any missing directories on disk, saves the config, and returns the
// deepest folder of the requested chain so callers creating ["a","b","c"]
// get a direct handle to "c".
//
// When the chain's top-level name already exists the new branch is merged
// into it, preserving every sibling already present. Creating the same
// chain twice is a no-op beyond the save.
func (w *Workspace) CreateFolder(chain []string, appendTimestamp, force bool) (*Folder, error) {
	if len(chain) == 0 {
		return nil, fmt.Errorf("create folder in workspace %q: %w", w.Name, ErrEmptyPath)
	}

	if appendTimestamp {
		stamped := make([]string, len(chain))
		copy(stamped, chain)
		stamped[len(stamped)-1] = pathutil.AppendTimestamp(stamped[len(stamped)-1])
		chain = stamped
	}

	incoming := folderFromChain(chain)

	if existing, ok := w.Folders.Get(incoming.Name); ok {
		incoming.Path = existing.Path
		if err := mergeFolders(existing, incoming, force); err != nil {
			return nil, err
		}
	} else {
		incoming.Path = filepath.Join(w.Path, incoming.Name)
		if err := incoming.Initialize(force); err != nil {
			return nil, err
		}
		w.Folders.Set(incoming)
	}

	if _, err := w.Save(""); err != nil {
		return nil, err
	}
	return incoming.deepest(), nil
}

// Folder walks the chain from the workspace root and returns the named
// folder. The returned error names the first missing segment.
func (w *Workspace) Folder(chain []string) (*Folder, error) {
	if len(chain) == 0 {
		return nil, fmt.Errorf("read folder in workspace %q: %w", w.Name, ErrEmptyPath)
	}

	current, ok := w.Folders.Get(chain[0])
	if !ok {
		return nil, fmt.Errorf("folder %q not found in workspace %q: %w", chain[0], w.Name, ErrNotFound)
	}
	for _, name := range chain[1:] {
		next, ok := current.Folders.Get(name)
		if !ok {
			return nil, fmt.Errorf("folder %q not found under %q in workspace %q: %w", name, current.Name, w.Name, ErrNotFound)
		}
		current = next
	}
	return current, nil
}

// normalize repairs zero values after JSON decoding so loaded workspaces
// behave like constructed ones.
func (w *Workspace) normalize() {
	if w.ConfigFile == "" {
		w.ConfigFile = DefaultConfigFile
	}
	if w.Folders == nil {
		w.Folders = NewFolderSet()
	}
	for _, name := range w.Folders.Names() {
		folder, _ := w.Folders.Get(name)
		folder.normalize()
	}
}
