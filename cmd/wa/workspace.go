package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/wa-agent/wa/ui"
	"github.com/wa-agent/wa/workspace"
)

var (
	workspaceCreateForce bool
	workspaceDeleteForce bool
)

var workspaceCmd = &cobra.Command{
	Use:   "workspace",
	Short: "Manage workspaces",
	Long: `Create, read, list, and delete workspace directories under the
workspaces root.`,
}

var workspaceCreateCmd = &cobra.Command{
	Use:   "create <name>",
	Short: "Create a new workspace",
	Args:  cobra.ExactArgs(1),
	RunE:  runWorkspaceCreate,
}

var workspaceReadCmd = &cobra.Command{
	Use:   "read <name>",
	Short: "Show a workspace and its folder tree",
	Args:  cobra.ExactArgs(1),
	RunE:  runWorkspaceRead,
}

var workspaceListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all workspaces",
	Args:  cobra.NoArgs,
	RunE:  runWorkspaceList,
}

var workspaceDeleteCmd = &cobra.Command{
	Use:   "delete <name>",
	Short: "Delete a workspace and everything inside it",
	Args:  cobra.ExactArgs(1),
	RunE:  runWorkspaceDelete,
}

func init() {
	workspaceCreateCmd.Flags().BoolVar(&workspaceCreateForce, "force", false, "Overwrite an existing workspace")
	workspaceDeleteCmd.Flags().BoolVar(&workspaceDeleteForce, "force", false, "Delete even when the workspace has folders, without confirmation")

	workspaceCmd.AddCommand(workspaceCreateCmd)
	workspaceCmd.AddCommand(workspaceReadCmd)
	workspaceCmd.AddCommand(workspaceListCmd)
	workspaceCmd.AddCommand(workspaceDeleteCmd)
}

func runWorkspaceCreate(cmd *cobra.Command, args []string) error {
	ws, err := workspace.Create(args[0], workspacesRoot(), workspaceCreateForce)
	if err != nil {
		return err
	}

	ui.RenderCreated(os.Stdout, "workspace", ws.Name, ws.Path)
	return nil
}

func runWorkspaceRead(cmd *cobra.Command, args []string) error {
	ws, err := workspace.Read(args[0], workspacesRoot())
	if err != nil {
		return err
	}

	ui.RenderWorkspace(os.Stdout, ws)
	return nil
}

func runWorkspaceList(cmd *cobra.Command, args []string) error {
	names, err := workspace.List(workspacesRoot())
	if err != nil {
		return err
	}

	ui.RenderWorkspaceList(os.Stdout, names)
	return nil
}

func runWorkspaceDelete(cmd *cobra.Command, args []string) error {
	name := args[0]
	root := workspacesRoot()

	if !workspaceDeleteForce {
		prompt := fmt.Sprintf("Delete workspace %q?", name)
		if !ui.ConfirmPrompt(prompt, false) {
			ui.RenderWarning(os.Stdout, "cancelled, workspace %q not deleted", name)
			return nil
		}
	}

	path, err := workspace.Delete(name, root, workspaceDeleteForce)
	if err != nil {
		return err
	}

	ui.RenderDeleted(os.Stdout, name, path)
	return nil
}
