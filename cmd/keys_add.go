package cmd

import (
	"strings"

	"github.com/agevault/agevault/internal/audit"
	"github.com/agevault/agevault/internal/ui"
	"github.com/agevault/agevault/internal/utils"
	"github.com/agevault/agevault/internal/vault"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	addName      string
	addPublicKey string
	addSSHKey    string
	addComment   string
)

func init() {
	addCmd.Flags().StringVarP(&addName, "name", "n", "", "name for the stored key (required)")
	addCmd.Flags().StringVarP(&addPublicKey, "public-key", "p", "", "age recipient public key (age1...)")
	addCmd.Flags().StringVar(&addSSHKey, "ssh", "", "SSH public key to convert into an age recipient")
	addCmd.Flags().StringVarP(&addComment, "comment", "c", "", "comment to attach to the key")

	if err := addCmd.MarkFlagRequired("name"); err != nil {
		// Flag registration happens at init; a failure here is a programming error.
		panic(err)
	}
}

// resetAddCommandState resets the add command's global state for testing.
func resetAddCommandState() {
	addName = ""
	addPublicKey = ""
	addSSHKey = ""
	addComment = ""
}

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Stores someone else's public key as a recipient-only entry",
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting keys add command")
		spinner, cleanup := startSpinner("Adding recipient key...", verbose)
		defer cleanup()

		if addPublicKey == "" && addSSHKey == "" {
			finalMessage := color.RedString("✗") + " No key material given\n" +
				color.CyanString("→") + " Pass either " + ui.Flag.Sprint("--public-key") + " or " + ui.Flag.Sprint("--ssh")
			spinner.FinalMSG = finalMessage
			return nil
		}
		if addPublicKey != "" && addSSHKey != "" {
			finalMessage := color.RedString("✗") + " " + ui.Flag.Sprint("--public-key") + " and " + ui.Flag.Sprint("--ssh") + " are mutually exclusive"
			spinner.FinalMSG = finalMessage
			return nil
		}

		publicKey := strings.TrimSpace(addPublicKey)
		if addSSHKey != "" {
			backend, err := newBackend()
			if err != nil {
				return Logger.ErrorfAndReturn("Failed to find age tooling: %v", err)
			}

			Logger.Debugf("Converting SSH public key to age recipient")
			publicKey, err = backend.DerivePublicFromSSH(addSSHKey)
			if err != nil {
				return Logger.ErrorfAndReturn("Failed to convert SSH key: %v", err)
			}
			Logger.Infof("Converted SSH key to recipient: %s", publicKey)
		}

		store, passphrase, err := openVaultStore()
		if err != nil {
			return Logger.ErrorfAndReturn("Failed to open vault: %v", err)
		}

		name := utils.SanitizeKeyName(addName)

		var comment *string
		if addComment != "" {
			comment = &addComment
		}

		record := vault.NewKeyRecord(name, publicKey, nil, comment)
		if err := store.Add(record); err != nil {
			return Logger.ErrorfAndReturn("Failed to add key to vault: %v", err)
		}

		if err := saveVaultStore(store, passphrase); err != nil {
			return Logger.ErrorfAndReturn("Failed to save vault: %v", err)
		}

		audit.Log(audit.Entry{
			Operation: "add",
			KeyID:     record.ID,
			KeyName:   record.Name,
		})

		finalMessage := color.GreenString("✓") + " Added recipient key " + ui.Highlight.Sprint(record.Name) + "\n" +
			"    public key: " + color.YellowString(record.PublicKey)
		spinner.FinalMSG = finalMessage
		return nil
	},
}
