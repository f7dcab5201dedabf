package main

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/wa-agent/wa/pathutil"
	"github.com/wa-agent/wa/ui"
	"github.com/wa-agent/wa/workspace"
)

var (
	folderCreateTimestamp bool
	folderCreateForce     bool
	folderReadFiles       bool
)

var folderCmd = &cobra.Command{
	Use:   "folder",
	Short: "Manage folders inside a workspace",
	Long: `Create and read folder paths inside a workspace. Paths are given
as slash-separated chains relative to the workspace root, e.g. data/raw.

Creating a path that partially exists merges the new part into the existing
tree without touching sibling folders.`,
}

var folderCreateCmd = &cobra.Command{
	Use:   "create <workspace> <path>",
	Short: "Create a folder path inside a workspace",
	Long: `Create a folder path inside a workspace, creating the workspace
itself first when it does not exist yet.`,
	Args: cobra.ExactArgs(2),
	RunE: runFolderCreate,
}

var folderReadCmd = &cobra.Command{
	Use:   "read <workspace> <path>",
	Short: "Show a folder and its subtree",
	Args:  cobra.ExactArgs(2),
	RunE:  runFolderRead,
}

func init() {
	folderCreateCmd.Flags().BoolVar(&folderCreateTimestamp, "timestamp", false, "Append a timestamp to the last path segment")
	folderCreateCmd.Flags().BoolVar(&folderCreateForce, "force", false, "Tolerate directories that already exist on disk")
	folderReadCmd.Flags().BoolVar(&folderReadFiles, "include-files", false, "Include the folder's current file listing")

	folderCmd.AddCommand(folderCreateCmd)
	folderCmd.AddCommand(folderReadCmd)
}

func runFolderCreate(cmd *cobra.Command, args []string) error {
	chain := pathutil.SplitChain(args[1])

	folder, err := workspace.CreateFolder(chain, args[0], workspacesRoot(), folderCreateTimestamp, folderCreateForce)
	if err != nil {
		return err
	}

	ui.RenderCreated(os.Stdout, "folder", folder.Name, folder.Path)
	return nil
}

func runFolderRead(cmd *cobra.Command, args []string) error {
	chain := pathutil.SplitChain(args[1])

	folder, err := workspace.ReadFolder(chain, args[0], workspacesRoot(), folderReadFiles)
	if err != nil {
		return err
	}

	ui.RenderFolder(os.Stdout, folder)
	return nil
}
