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

var exportOutput string

func init() {
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "agevault-export.bin", "path to write the export file to")
}

// resetExportCommandState resets the export command's global state for testing.
func resetExportCommandState() {
	exportOutput = "agevault-export.bin"
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Exports all keys to a passphrase-protected file for transfer",
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting keys export command")

		store, _, err := openVaultStore()
		if err != nil {
			return Logger.ErrorfAndReturn("Failed to open vault: %v", err)
		}

		if store.Len() == 0 {
			fmt.Println(color.YellowString("!") + " The vault is empty; nothing to export")
			return nil
		}

		// Prompt before the spinner starts so the hidden input isn't fighting it.
		passphrase, err := utils.ReadPassphrase("Enter export passphrase: ")
		if err != nil {
			return Logger.ErrorfAndReturn("Failed to read passphrase: %v", err)
		}
		confirm, err := utils.ReadPassphrase("Confirm export passphrase: ")
		if err != nil {
			return Logger.ErrorfAndReturn("Failed to read passphrase: %v", err)
		}
		if string(passphrase) != string(confirm) {
			fmt.Println(color.RedString("✗") + " Passphrases do not match")
			return nil
		}

		spinner, cleanup := startSpinner("Sealing export file...", verbose)
		defer cleanup()

		if err := vault.ExportToFile(exportOutput, string(passphrase), store.Records()); err != nil {
			if errors.Is(err, verrors.ErrPassphraseTooShort) {
				finalMessage := color.RedString("✗") + " Export passphrase must be at least 4 characters"
				spinner.FinalMSG = finalMessage
				return nil
			}
			return Logger.ErrorfAndReturn("Failed to write export file: %v", err)
		}

		audit.Log(audit.Entry{
			Operation:  "export",
			OutputPath: exportOutput,
			KeysCount:  store.Len(),
		})

		finalMessage := color.GreenString("✓") + fmt.Sprintf(" Exported %d key(s) to ", store.Len()) + ui.Path.Sprint(exportOutput) + "\n" +
			color.CyanString("→") + " Import on another machine with " + ui.Code.Sprint("agevault keys import "+exportOutput)
		spinner.FinalMSG = finalMessage
		return nil
	},
}
