// Package main provides the entry point for the wa CLI.
package main

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

// Version is set at build time
var Version = "dev"

var rootFlag string

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "wa",
	Short: "Manage workspace folder trees",
	Long: `wa manages named workspace directories, each described by a
workspace.json config recording its folder tree.

Folders merge into an existing tree without touching siblings, so the same
workspace can grow incrementally across many invocations.`,
	Version: Version,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&rootFlag, "root", "", "Workspaces root directory (default $HOME/.wa/workspaces)")

	rootCmd.AddCommand(workspaceCmd)
	rootCmd.AddCommand(folderCmd)
	rootCmd.AddCommand(serveCmd)
}

// workspacesRoot resolves the storage root for this invocation. The core
// packages take the root explicitly on every call; this is the only place a
// default is chosen.
func workspacesRoot() string {
	if rootFlag != "" {
		return rootFlag
	}
	homeDir, _ := os.UserHomeDir()
	return filepath.Join(homeDir, ".wa", "workspaces")
}
