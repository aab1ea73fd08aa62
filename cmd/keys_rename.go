package cmd

import (
	"errors"

	"github.com/agevault/agevault/internal/audit"
	verrors "github.com/agevault/agevault/internal/errors"
	"github.com/agevault/agevault/internal/ui"
	"github.com/agevault/agevault/internal/utils"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var renameCmd = &cobra.Command{
	Use:   "rename <id|name> <new-name>",
	Short: "Renames a key in the vault",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting keys rename command")
		spinner, cleanup := startSpinner("Renaming key...", verbose)
		defer cleanup()

		store, passphrase, err := openVaultStore()
		if err != nil {
			return Logger.ErrorfAndReturn("Failed to open vault: %v", err)
		}

		newName := utils.SanitizeKeyName(args[1])
		renamed, err := store.Rename(args[0], newName)
		if err != nil {
			if errors.Is(err, verrors.ErrKeyNotFound) {
				finalMessage := color.RedString("✗") + " No key named " + ui.Highlight.Sprint(args[0]) + " in the vault\n" +
					color.CyanString("→") + " Run " + ui.Code.Sprint("agevault keys list") + " to see what is stored"
				spinner.FinalMSG = finalMessage
				return nil
			}
			return Logger.ErrorfAndReturn("Failed to rename key: %v", err)
		}

		if err := saveVaultStore(store, passphrase); err != nil {
			return Logger.ErrorfAndReturn("Failed to save vault: %v", err)
		}

		audit.Log(audit.Entry{
			Operation: "rename",
			KeyID:     renamed.ID,
			KeyName:   args[0],
			NewName:   renamed.Name,
		})

		finalMessage := color.GreenString("✓") + " Renamed key to " + ui.Highlight.Sprint(renamed.Name)
		spinner.FinalMSG = finalMessage
		return nil
	},
}
