package workspace

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/wa-agent/wa/pathutil"
)

// Folder is one directory in a workspace's logical tree. Name is sanitized
// on construction and doubles as the key under the parent. Path stays empty
// until the folder is attached beneath a parent or a workspace root; once
// assigned it is always the parent's path joined with Name.
type Folder struct {
	Name    string     `json:"name"`
	Path    string     `json:"path"`
	Folders *FolderSet `json:"folders"`
	Files   []string   `json:"files,omitempty"`
}

// NewFolder returns an unattached folder with no children.
func NewFolder(name string) *Folder {
	return &Folder{
		Name:    pathutil.Sanitize(name),
		Folders: NewFolderSet(),
	}
}

// NewFolderWithChildren returns an unattached folder holding the given
// children, keyed by their names in the order given.
func NewFolderWithChildren(name string, children []*Folder) *Folder {
	folder := NewFolder(name)
	for _, child := range children {
		folder.Folders.Set(child)
	}
	return folder
}

// folderFromChain builds a single-branch subtree from a root-to-leaf chain
// of names, working leaf-to-root so each name wraps the previously built
// folder. The chain must be non-empty.
func folderFromChain(chain []string) *Folder {
	folder := NewFolder(chain[len(chain)-1])
	for i := len(chain) - 2; i >= 0; i-- {
		folder = NewFolderWithChildren(chain[i], []*Folder{folder})
	}
	return folder
}

// Initialize creates the folder's directory on disk, then assigns each
// child's path beneath it and initializes the child, materializing the
// whole subtree top-down in one call. Without force an existing directory
// is an error; with force it is tolerated.
func (f *Folder) Initialize(force bool) error {
	if err := os.Mkdir(f.Path, 0o755); err != nil {
		if !os.IsExist(err) {
			return fmt.Errorf("failed to create folder %q: %w", f.Name, err)
		}
		if !force {
			return fmt.Errorf("folder %q at %s: %w", f.Name, f.Path, ErrExists)
		}
	}

	for _, name := range f.Folders.Names() {
		child, _ := f.Folders.Get(name)
		child.Path = filepath.Join(f.Path, name)
		if err := child.Initialize(force); err != nil {
			return err
		}
	}
	return nil
}

// ListFiles refreshes Files with the plain file names currently inside the
// folder's directory. The listing is a live view of the disk, it is never
// authoritative and is not recomputed on load.
func (f *Folder) ListFiles() error {
	entries, err := os.ReadDir(f.Path)
	if err != nil {
		return fmt.Errorf("failed to list files for folder %q: %w", f.Name, err)
	}

	files := make([]string, 0, len(entries))
	for _, entry := range entries {
		if !entry.IsDir() {
			files = append(files, entry.Name())
		}
	}
	f.Files = files
	return nil
}

// deepest follows the single-child chain down from f and returns the last
// folder without children. Chains built by folderFromChain have at most one
// child per level, so this is the leaf the caller asked for.
func (f *Folder) deepest() *Folder {
	if first := f.Folders.First(); first != nil {
		return first.deepest()
	}
	return f
}

// normalize repairs zero values after JSON decoding: folders decoded from a
// config without a "folders" key get an empty set instead of nil.
func (f *Folder) normalize() {
	if f.Folders == nil {
		f.Folders = NewFolderSet()
	}
	for _, name := range f.Folders.Names() {
		child, _ := f.Folders.Get(name)
		child.normalize()
	}
}
