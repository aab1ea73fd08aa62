package cmd

import (
	logger "github.com/agevault/agevault/internal/logging"
	"github.com/spf13/cobra"
)

var (
	verbose bool
	debug   bool
	Logger  logger.Logger

	KeysCmd = &cobra.Command{
		Use:   "keys",
		Short: "Manage age keys stored in the local vault",
		Long:  `Provides generation, listing, renaming, removal, export, and import of age keys kept in the encrypted vault.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			Logger = logger.Logger{
				Verbose: verbose,
				Debug:   debug,
			}
			Logger.Debugf("Initializing keys command with verbose=%t, debug=%t", verbose, debug)
		},
	}
)

func init() {
	KeysCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	KeysCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "enable debug output")

	KeysCmd.AddCommand(generateCmd)
	KeysCmd.AddCommand(addCmd)
	KeysCmd.AddCommand(listCmd)
	KeysCmd.AddCommand(removeCmd)
	KeysCmd.AddCommand(renameCmd)
	KeysCmd.AddCommand(exportCmd)
	KeysCmd.AddCommand(importCmd)
}

// Helper functions for testing

// GetKeysCmd returns the KeysCmd for testing.
func GetKeysCmd() *cobra.Command {
	return KeysCmd
}

// ResetGlobalState resets all global variables to their default values for testing.
func ResetGlobalState() {
	verbose = false
	debug = false
	resetGenerateCommandState()
	resetAddCommandState()
	resetExportCommandState()
	resetImportCommandState()
}

// SetLogger sets the logger for testing.
func SetLogger(l logger.Logger) {
	Logger = l
}
