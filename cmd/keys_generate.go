package cmd

import (
	"github.com/agevault/agevault/internal/audit"
	"github.com/agevault/agevault/internal/ui"
	"github.com/agevault/agevault/internal/utils"
	"github.com/agevault/agevault/internal/vault"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	generateName    string
	generateComment string
)

func init() {
	generateCmd.Flags().StringVarP(&generateName, "name", "n", "", "name for the new key (defaults to the hostname)")
	generateCmd.Flags().StringVarP(&generateComment, "comment", "c", "", "comment to attach to the new key")
}

// resetGenerateCommandState resets the generate command's global state for testing.
func resetGenerateCommandState() {
	generateName = ""
	generateComment = ""
}

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generates a new age key pair and stores it in the vault",
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting keys generate command")
		spinner, cleanup := startSpinner("Generating age key pair...", verbose)
		defer cleanup()

		backend, err := newBackend()
		if err != nil {
			finalMessage := color.RedString("✗") + " The " + ui.Code.Sprint("age") + " tooling could not be found\n" +
				color.CyanString("→") + " Install age and age-keygen, or set their paths in " + ui.Path.Sprint("config.toml")
			spinner.FinalMSG = finalMessage
			Logger.Errorf("Backend unavailable: %v", err)
			return nil
		}

		Logger.Debugf("Opening local vault")
		store, passphrase, err := openVaultStore()
		if err != nil {
			return Logger.ErrorfAndReturn("Failed to open vault: %v", err)
		}

		name := generateName
		if name == "" {
			name, err = utils.GenerateKeyName(store.Names())
			if err != nil {
				return Logger.ErrorfAndReturn("Failed to generate default key name: %v", err)
			}
			Logger.Debugf("Generated default key name: %s", name)
		} else {
			name = utils.SanitizeKeyName(name)
		}

		Logger.Debugf("Running key generation backend")
		pair, err := backend.GenerateKeyPair(generateComment)
		if err != nil {
			return Logger.ErrorfAndReturn("Failed to generate key pair: %v", err)
		}
		Logger.Infof("Generated key pair with public key: %s", pair.PublicKey)

		record := vault.NewKeyRecord(name, pair.PublicKey, &pair.PrivateKey, pair.Comment)
		if err := store.Add(record); err != nil {
			return Logger.ErrorfAndReturn("Failed to add key to vault: %v", err)
		}

		if err := saveVaultStore(store, passphrase); err != nil {
			return Logger.ErrorfAndReturn("Failed to save vault: %v", err)
		}
		Logger.Infof("Vault saved with %d keys", store.Len())

		audit.Log(audit.Entry{
			Operation: "generate",
			KeyID:     record.ID,
			KeyName:   record.Name,
		})

		finalMessage := color.GreenString("✓") + " Generated key " + ui.Highlight.Sprint(record.Name) + "\n" +
			"    public key: " + color.YellowString(record.PublicKey) + "\n" +
			color.CyanString("→") + " Share the public key freely; the private half stays in the vault"
		spinner.FinalMSG = finalMessage
		return nil
	},
}
