package cmd

import (
	"errors"

	"github.com/agevault/agevault/internal/audit"
	verrors "github.com/agevault/agevault/internal/errors"
	"github.com/agevault/agevault/internal/ui"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var removeCmd = &cobra.Command{
	Use:   "remove <id|name>",
	Short: "Removes a key from the vault",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting keys remove command")
		spinner, cleanup := startSpinner("Removing key...", verbose)
		defer cleanup()

		store, passphrase, err := openVaultStore()
		if err != nil {
			return Logger.ErrorfAndReturn("Failed to open vault: %v", err)
		}

		removed, err := store.Remove(args[0])
		if err != nil {
			if errors.Is(err, verrors.ErrKeyNotFound) {
				finalMessage := color.RedString("✗") + " No key named " + ui.Highlight.Sprint(args[0]) + " in the vault\n" +
					color.CyanString("→") + " Run " + ui.Code.Sprint("agevault keys list") + " to see what is stored"
				spinner.FinalMSG = finalMessage
				return nil
			}
			return Logger.ErrorfAndReturn("Failed to remove key: %v", err)
		}

		if err := saveVaultStore(store, passphrase); err != nil {
			return Logger.ErrorfAndReturn("Failed to save vault: %v", err)
		}

		audit.Log(audit.Entry{
			Operation: "remove",
			KeyID:     removed.ID,
			KeyName:   removed.Name,
		})

		finalMessage := color.GreenString("✓") + " Removed key " + ui.Highlight.Sprint(removed.Name)
		if !removed.RecipientOnly() {
			finalMessage += "\n" + color.YellowString("!") + " The private key is gone; anything encrypted only to it is now unreadable"
		}
		spinner.FinalMSG = finalMessage
		return nil
	},
}
