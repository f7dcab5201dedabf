package mcpserver

import (
	"errors"
	"fmt"

	"github.com/localrivet/gomcp/server"
	"github.com/wa-agent/wa/pathutil"
	"github.com/wa-agent/wa/workspace"
)

// toolSuccess wraps a successful tool result.
type toolSuccess struct {
	Success bool        `json:"success"`
	Result  interface{} `json:"result"`
}

// toolError is the structured payload returned for domain failures. Tools
// report these as results rather than protocol errors so callers can branch
// on the stable code.
type toolError struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Code    string `json:"code"`
}

func success(result interface{}) toolSuccess {
	return toolSuccess{Success: true, Result: result}
}

func failure(err error) toolError {
	return toolError{Success: false, Error: err.Error(), Code: errorCode(err)}
}

// errorCode maps workspace errors to stable codes.
func errorCode(err error) string {
	switch {
	case errors.Is(err, workspace.ErrExists):
		return "FILE_EXISTS"
	case errors.Is(err, workspace.ErrNotFound):
		return "FILE_NOT_FOUND"
	case errors.Is(err, workspace.ErrHasFolders):
		return "HAS_FOLDERS"
	case errors.Is(err, workspace.ErrEmptyPath):
		return "EMPTY_PATH"
	case errors.Is(err, workspace.ErrInvalidConfig):
		return "INVALID_CONFIG"
	default:
		return "OPERATION_FAILED"
	}
}

// workspaceArgs are the arguments of the workspace tool.
type workspaceArgs struct {
	WorkspaceName string `json:"workspace_name,omitempty"`
	Method        string `json:"method,omitempty"`
	Force         bool   `json:"force,omitempty"`
}

// workspaceHandler returns the workspace tool handler. An empty
// workspace_name lists all workspaces; otherwise method selects create,
// read (the default), or delete.
func workspaceHandler(root string) func(*server.Context, workspaceArgs) (interface{}, error) {
	return func(ctx *server.Context, args workspaceArgs) (interface{}, error) {
		if args.WorkspaceName == "" {
			names, err := workspace.List(root)
			if err != nil {
				return failure(err), nil
			}
			return success(names), nil
		}

		switch args.Method {
		case "create":
			ws, err := workspace.Create(args.WorkspaceName, root, args.Force)
			if err != nil {
				return failure(err), nil
			}
			return success(ws), nil

		case "read", "":
			ws, err := workspace.Read(args.WorkspaceName, root)
			if err != nil {
				return failure(err), nil
			}
			return success(ws), nil

		case "delete":
			path, err := workspace.Delete(args.WorkspaceName, root, args.Force)
			if err != nil {
				return failure(err), nil
			}
			return success(path), nil

		default:
			return toolError{
				Success: false,
				Error:   fmt.Sprintf("unknown method: %s", args.Method),
				Code:    "UNKNOWN_METHOD",
			}, nil
		}
	}
}

// folderArgs are the arguments of the folder tool. Path is a slash-separated
// chain of folder names relative to the workspace root, e.g. "data/raw".
type folderArgs struct {
	WorkspaceName   string `json:"workspace_name"`
	Path            string `json:"path"`
	Method          string `json:"method,omitempty"`
	AppendTimestamp bool   `json:"append_timestamp,omitempty"`
	IncludeFiles    bool   `json:"include_files,omitempty"`
	Force           bool   `json:"force,omitempty"`
}

// folderHandler returns the folder tool handler. Method selects create or
// read (the default). Creating a folder in a workspace that does not exist
// yet creates the workspace as well.
func folderHandler(root string) func(*server.Context, folderArgs) (interface{}, error) {
	return func(ctx *server.Context, args folderArgs) (interface{}, error) {
		chain := pathutil.SplitChain(args.Path)

		switch args.Method {
		case "create":
			folder, err := workspace.CreateFolder(chain, args.WorkspaceName, root, args.AppendTimestamp, args.Force)
			if err != nil {
				return failure(err), nil
			}
			return success(folder), nil

		case "read", "":
			folder, err := workspace.ReadFolder(chain, args.WorkspaceName, root, args.IncludeFiles)
			if err != nil {
				return failure(err), nil
			}
			return success(folder), nil

		default:
			return toolError{
				Success: false,
				Error:   fmt.Sprintf("unknown method: %s", args.Method),
				Code:    "UNKNOWN_METHOD",
			}, nil
		}
	}
}

// listResource serves the workspace:// resource with all workspace names.
func listResource(root string) func(*server.Context, struct{}) (interface{}, error) {
	return func(ctx *server.Context, _ struct{}) (interface{}, error) {
		return workspace.List(root)
	}
}

// readResourceArgs carry the template parameter of workspace://{workspace}.
type readResourceArgs struct {
	Workspace string `json:"workspace"`
}

// readResource serves the workspace://{workspace} resource with the full
// tree of one workspace.
func readResource(root string) func(*server.Context, readResourceArgs) (interface{}, error) {
	return func(ctx *server.Context, args readResourceArgs) (interface{}, error) {
		return workspace.Read(args.Workspace, root)
	}
}
