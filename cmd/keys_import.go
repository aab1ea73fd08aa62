package cmd

import (
	"errors"
	"fmt"

	"github.com/agevault/agevault/internal/audit"
	verrors "github.com/agevault/agevault/internal/errors"
	"github.com/agevault/agevault/internal/ui"
	"github.com/agevault/agevault/internal/utils"
	"github.com/agevault/agevault/internal/vault"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var importReplace bool

func init() {
	importCmd.Flags().BoolVar(&importReplace, "replace", false, "replace the vault contents instead of merging")
}

// resetImportCommandState resets the import command's global state for testing.
func resetImportCommandState() {
	importReplace = false
}

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Imports keys from a passphrase-protected export file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting keys import command")

		passphrase, err := utils.ReadPassphrase("Enter export passphrase: ")
		if err != nil {
			return Logger.ErrorfAndReturn("Failed to read passphrase: %v", err)
		}

		spinner, cleanup := startSpinner("Opening export file...", verbose)
		defer cleanup()

		incoming, err := vault.ImportFromFile(args[0], string(passphrase))
		if err != nil {
			switch {
			case errors.Is(err, verrors.ErrMalformedContainer):
				finalMessage := color.RedString("✗") + " " + ui.Path.Sprint(args[0]) + " is not an agevault export file"
				spinner.FinalMSG = finalMessage
				return nil
			case errors.Is(err, verrors.ErrAuthenticationFailed):
				finalMessage := color.RedString("✗") + " Could not decrypt the export file\n" +
					color.CyanString("→") + " The passphrase is wrong or the file is corrupted"
				spinner.FinalMSG = finalMessage
				return nil
			}
			return Logger.ErrorfAndReturn("Failed to open export file: %v", err)
		}
		Logger.Infof("Export file contains %d key(s)", len(incoming))

		store, vaultPassphrase, err := openVaultStore()
		if err != nil {
			return Logger.ErrorfAndReturn("Failed to open vault: %v", err)
		}

		mode := "merge"
		added, skipped := 0, 0
		if importReplace {
			mode = "replace"
			store.Replace(incoming)
			added = len(incoming)
		} else {
			added, skipped = store.Merge(incoming)
		}

		if err := saveVaultStore(store, vaultPassphrase); err != nil {
			return Logger.ErrorfAndReturn("Failed to save vault: %v", err)
		}

		audit.Log(audit.Entry{
			Operation: "import",
			InputPath: args[0],
			Mode:      mode,
			KeysCount: added,
		})

		finalMessage := color.GreenString("✓") + fmt.Sprintf(" Imported %d key(s) from ", added) + ui.Path.Sprint(args[0])
		if skipped > 0 {
			finalMessage += "\n" + color.YellowString("!") + fmt.Sprintf(" Skipped %d key(s) already in the vault", skipped)
		}
		spinner.FinalMSG = finalMessage
		return nil
	},
}
