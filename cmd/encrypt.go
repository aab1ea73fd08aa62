package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/agevault/agevault/internal/audit"
	"github.com/agevault/agevault/internal/configs"
	verrors "github.com/agevault/agevault/internal/errors"
	logger "github.com/agevault/agevault/internal/logging"
	"github.com/agevault/agevault/internal/ui"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	encryptRecipients []string
	encryptOutput     string
	encryptArmor      bool
	encryptVerbose    bool
	encryptDebug      bool
)

func init() {
	EncryptCmd.Flags().StringArrayVarP(&encryptRecipients, "recipient", "r", nil, "recipient: a stored key name/id, an age1... key, or an SSH public key (repeatable)")
	EncryptCmd.Flags().StringVarP(&encryptOutput, "output", "o", "", "output path (defaults to <input>.age)")
	EncryptCmd.Flags().BoolVarP(&encryptArmor, "armor", "a", false, "write ASCII-armored output")
	EncryptCmd.Flags().BoolVarP(&encryptVerbose, "verbose", "v", false, "enable verbose output")
	EncryptCmd.Flags().BoolVarP(&encryptDebug, "debug", "d", false, "enable debug output")

	if err := EncryptCmd.MarkFlagRequired("recipient"); err != nil {
		panic(err)
	}
}

// EncryptCmd encrypts a file for one or more recipients.
var EncryptCmd = &cobra.Command{
	Use:   "encrypt <file>",
	Short: "Encrypts a file for one or more recipients",
	Long: `Encrypts a file with age for the given recipients. Each --recipient may be
a key name or id stored in the vault, a raw age public key, or an SSH public key.`,
	Args: cobra.ExactArgs(1),
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		Logger = logger.Logger{
			Verbose: encryptVerbose,
			Debug:   encryptDebug,
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting encrypt command")
		spinner, cleanup := startSpinnerWithFlags("Encrypting file...", encryptVerbose, encryptDebug)
		defer cleanup()

		inputPath := args[0]
		if _, err := os.Stat(inputPath); err != nil {
			finalMessage := color.RedString("✗") + " Cannot read " + ui.Path.Sprint(inputPath)
			spinner.FinalMSG = finalMessage
			return nil
		}

		outputPath := encryptOutput
		if outputPath == "" {
			outputPath = inputPath + ".age"
		}

		backend, err := newBackend()
		if err != nil {
			return Logger.ErrorfAndReturn("Failed to find age tooling: %v", err)
		}

		store, _, err := openVaultStore()
		if err != nil {
			return Logger.ErrorfAndReturn("Failed to open vault: %v", err)
		}

		// Resolve each recipient: raw key material passes through untouched,
		// anything else is looked up in the vault.
		resolved := make([]string, 0, len(encryptRecipients))
		for _, recipient := range encryptRecipients {
			trimmed := strings.TrimSpace(recipient)
			if strings.HasPrefix(trimmed, "age1") || strings.HasPrefix(trimmed, "ssh-") {
				resolved = append(resolved, trimmed)
				continue
			}

			record, err := store.Find(trimmed)
			if err != nil {
				if errors.Is(err, verrors.ErrKeyNotFound) {
					finalMessage := color.RedString("✗") + " No key named " + ui.Highlight.Sprint(trimmed) + " in the vault\n" +
						color.CyanString("→") + " Run " + ui.Code.Sprint("agevault keys list") + " to see what is stored"
					spinner.FinalMSG = finalMessage
					return nil
				}
				return Logger.ErrorfAndReturn("Failed to resolve recipient: %v", err)
			}
			Logger.Debugf("Resolved recipient %s to %s", trimmed, record.PublicKey)
			resolved = append(resolved, record.PublicKey)
		}

		armor := encryptArmor
		if !cmd.Flags().Changed("armor") {
			config, err := configs.LoadUserConfig()
			if err == nil {
				armor = config.Defaults.Armor
			}
		}

		Logger.Debugf("Encrypting %s to %s for %d recipient(s)", inputPath, outputPath, len(resolved))
		if err := backend.EncryptFile(inputPath, outputPath, resolved, armor); err != nil {
			return Logger.ErrorfAndReturn("Encryption failed: %v", err)
		}

		audit.Log(audit.Entry{
			Operation:  "encrypt",
			Recipients: encryptRecipients,
			InputPath:  inputPath,
			OutputPath: outputPath,
		})

		finalMessage := color.GreenString("✓") + fmt.Sprintf(" Encrypted for %d recipient(s)\n", len(resolved)) +
			"    created: " + ui.Path.Sprint(outputPath)
		spinner.FinalMSG = finalMessage
		return nil
	},
}
