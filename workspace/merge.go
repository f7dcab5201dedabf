package workspace

import "path/filepath"

// mergeFolders recursively merges the tree under incoming into existing.
//
// Folders already present keep their identity and on-disk path: the
// existing node is kept and mutated, and the incoming counterpart only gets
// the existing path copied onto it before recursion so returned handles
// still point at the right directory. Branches absent from existing are
// assigned a path beneath it, materialized on disk, and inserted. A merge
// therefore adds new leaves and branches but never replaces a subtree, and
// merging the same chain twice changes nothing.
func mergeFolders(existing, incoming *Folder, force bool) error {
	for _, name := range incoming.Folders.Names() {
		incomingChild, _ := incoming.Folders.Get(name)

		if existingChild, ok := existing.Folders.Get(name); ok {
			incomingChild.Path = existingChild.Path
			if err := mergeFolders(existingChild, incomingChild, force); err != nil {
				return err
			}
			continue
		}

		incomingChild.Path = filepath.Join(existing.Path, name)
		if err := incomingChild.Initialize(force); err != nil {
			return err
		}
		existing.Folders.Set(incomingChild)
	}
	return nil
}
