// Package mcpserver exposes workspace management over the Model Context
// Protocol, mirroring the CLI operations as MCP tools and resources.
package mcpserver

import (
	"github.com/localrivet/gomcp/server"
)

// New builds an MCP server exposing the workspace and folder tools plus the
// workspace resources, all backed by the given workspaces root.
func New(root string) server.Server {
	srv := server.NewServer("workspace-agent")

	srv.Tool("workspace", "List all workspaces, or create, read, or delete a named workspace", workspaceHandler(root))
	srv.Tool("folder", "Create or read a folder path inside a workspace", folderHandler(root))

	srv.Resource("workspace://", "Names of all workspaces", listResource(root))
	srv.Resource("workspace://{workspace}", "Folder tree of one workspace", readResource(root))

	return srv
}

// Serve runs the MCP server on stdio until the client disconnects.
func Serve(root string) error {
	return New(root).AsStdio().Run()
}
