// Package ui provides terminal output components for wa.
package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/wa-agent/wa/workspace"
)

const tableWidth = 60

var (
	warningColor = color.New(color.FgYellow)
	successColor = color.New(color.FgGreen)
	dimColor     = color.New(color.Faint)
	folderColor  = color.New(color.FgCyan)
)

// RenderWorkspaceList renders the names of all workspaces under the root.
func RenderWorkspaceList(w io.Writer, names []string) {
	if len(names) == 0 {
		fmt.Fprintln(w, "No workspaces found.")
		return
	}

	fmt.Fprintf(w, "\nWorkspaces (%d)\n", len(names))
	fmt.Fprintln(w, strings.Repeat("─", tableWidth))
	for _, name := range names {
		fmt.Fprintf(w, "  %s\n", name)
	}
	fmt.Fprintln(w)
}

// RenderWorkspace renders a workspace summary followed by its folder tree.
func RenderWorkspace(w io.Writer, ws *workspace.Workspace) {
	fmt.Fprintf(w, "\nWorkspace: %s\n", ws.Name)
	fmt.Fprintf(w, "  %s %s\n", dimColor.Sprint("path:"), ws.Path)
	fmt.Fprintf(w, "  %s %s\n", dimColor.Sprint("version:"), ws.Version)

	if ws.Folders.Len() == 0 {
		fmt.Fprintln(w, "\nNo folders yet.")
		return
	}

	fmt.Fprintln(w)
	names := ws.Folders.Names()
	for i, name := range names {
		folder, _ := ws.Folders.Get(name)
		renderFolderBranch(w, folder, "", i == len(names)-1)
	}
	fmt.Fprintln(w)
}

// RenderFolder renders a single folder and its subtree.
func RenderFolder(w io.Writer, folder *workspace.Folder) {
	fmt.Fprintln(w)
	renderFolderBranch(w, folder, "", true)
	fmt.Fprintln(w)
}

// renderFolderBranch draws one folder line and recurses into its children
// with the usual box-drawing connectors.
func renderFolderBranch(w io.Writer, folder *workspace.Folder, prefix string, last bool) {
	connector := "├── "
	childPrefix := prefix + "│   "
	if last {
		connector = "└── "
		childPrefix = prefix + "    "
	}

	fmt.Fprintf(w, "%s%s%s\n", prefix, connector, folderColor.Sprint(folder.Name))

	for _, file := range folder.Files {
		fmt.Fprintf(w, "%s%s\n", childPrefix, dimColor.Sprint(file))
	}

	names := folder.Folders.Names()
	for i, name := range names {
		child, _ := folder.Folders.Get(name)
		renderFolderBranch(w, child, childPrefix, i == len(names)-1)
	}
}

// RenderCreated renders a success message for a created workspace or folder.
func RenderCreated(w io.Writer, kind, name, path string) {
	successColor.Fprintf(w, "✓ Created %s: %s\n", kind, name)
	fmt.Fprintf(w, "  %s\n", dimColor.Sprint(path))
}

// RenderDeleted renders a success message for a deleted workspace.
func RenderDeleted(w io.Writer, name, path string) {
	successColor.Fprintf(w, "✓ Deleted workspace: %s\n", name)
	fmt.Fprintf(w, "  %s\n", dimColor.Sprint(path))
}

// RenderWarning renders a warning line.
func RenderWarning(w io.Writer, format string, args ...interface{}) {
	warningColor.Fprintf(w, "⚠ "+format+"\n", args...)
}
