package workspace

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// FolderSet is an insertion-ordered mapping from folder name to folder. Its
// JSON form is a plain object whose keys appear in insertion order, so a
// saved workspace config round-trips with folders in the order they were
// created. Every key equals the Name of the folder stored under it.
type FolderSet struct {
	names   []string
	folders map[string]*Folder
}

// NewFolderSet returns an empty FolderSet.
func NewFolderSet() *FolderSet {
	return &FolderSet{folders: make(map[string]*Folder)}
}

// Get returns the folder stored under name.
func (fs *FolderSet) Get(name string) (*Folder, bool) {
	folder, ok := fs.folders[name]
	return folder, ok
}

// Set stores folder under its own name. A new name is appended to the
// iteration order; setting an existing name replaces the folder in place.
func (fs *FolderSet) Set(folder *Folder) {
	if fs.folders == nil {
		fs.folders = make(map[string]*Folder)
	}
	if _, ok := fs.folders[folder.Name]; !ok {
		fs.names = append(fs.names, folder.Name)
	}
	fs.folders[folder.Name] = folder
}

// Len returns the number of folders in the set.
func (fs *FolderSet) Len() int {
	return len(fs.names)
}

// Names returns the folder names in insertion order.
func (fs *FolderSet) Names() []string {
	names := make([]string, len(fs.names))
	copy(names, fs.names)
	return names
}

// First returns the first folder in insertion order, or nil when the set is
// empty.
func (fs *FolderSet) First() *Folder {
	if len(fs.names) == 0 {
		return nil
	}
	return fs.folders[fs.names[0]]
}

// MarshalJSON writes the set as a JSON object with keys in insertion order.
func (fs *FolderSet) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, name := range fs.names {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(name)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		val, err := json.Marshal(fs.folders[name])
		if err != nil {
			return nil, err
		}
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON reads a JSON object into the set, preserving the key order
// of the source document. Keys win over any divergent name field inside a
// folder object, keeping the key == folder.Name invariant on load.
func (fs *FolderSet) UnmarshalJSON(data []byte) error {
	fs.names = nil
	fs.folders = make(map[string]*Folder)

	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("folders: expected JSON object, got %v", tok)
	}

	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		name, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("folders: expected string key, got %v", keyTok)
		}

		var folder Folder
		if err := dec.Decode(&folder); err != nil {
			return err
		}
		folder.Name = name

		fs.names = append(fs.names, name)
		fs.folders[name] = &folder
	}

	// closing brace
	if _, err := dec.Token(); err != nil {
		return err
	}
	return nil
}
