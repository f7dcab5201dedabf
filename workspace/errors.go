package workspace

import "errors"

// Sentinel errors returned by the workspace layer. Callers match them with
// errors.Is; wrapped messages name the specific workspace or folder segment
// involved. The core never prints or swallows errors, mapping them to user
// output is the CLI and MCP layers' job.
var (
	// ErrExists is returned when creating a workspace or folder that is
	// already present on disk without force.
	ErrExists = errors.New("already exists")

	// ErrNotFound is returned when the workspaces root, a workspace, its
	// config file, or a requested folder segment is absent.
	ErrNotFound = errors.New("not found")

	// ErrHasFolders is returned when deleting a workspace that still has
	// top-level folders without force.
	ErrHasFolders = errors.New("workspace has folders")

	// ErrEmptyPath is returned when a folder operation receives no path
	// segments.
	ErrEmptyPath = errors.New("empty folder path")

	// ErrInvalidConfig is returned when a workspace config file cannot be
	// parsed.
	ErrInvalidConfig = errors.New("invalid workspace config")
)
