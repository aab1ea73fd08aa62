package cmd

import (
	"errors"
	"os"
	"strings"

	"github.com/agevault/agevault/internal/audit"
	verrors "github.com/agevault/agevault/internal/errors"
	logger "github.com/agevault/agevault/internal/logging"
	"github.com/agevault/agevault/internal/ui"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	decryptIdentity string
	decryptOutput   string
	decryptVerbose  bool
	decryptDebug    bool
)

func init() {
	DecryptCmd.Flags().StringVarP(&decryptIdentity, "identity", "i", "", "identity: a stored key name/id or a raw age secret key (required)")
	DecryptCmd.Flags().StringVarP(&decryptOutput, "output", "o", "", "output path (defaults to the input without its .age suffix)")
	DecryptCmd.Flags().BoolVarP(&decryptVerbose, "verbose", "v", false, "enable verbose output")
	DecryptCmd.Flags().BoolVarP(&decryptDebug, "debug", "d", false, "enable debug output")

	if err := DecryptCmd.MarkFlagRequired("identity"); err != nil {
		panic(err)
	}
}

// DecryptCmd decrypts a file with a stored or raw identity.
var DecryptCmd = &cobra.Command{
	Use:   "decrypt <file>",
	Short: "Decrypts a file with a key from the vault",
	Long: `Decrypts an age-encrypted file. The --identity may be a key name or id
stored in the vault, or a raw age secret key.`,
	Args: cobra.ExactArgs(1),
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		Logger = logger.Logger{
			Verbose: decryptVerbose,
			Debug:   decryptDebug,
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting decrypt command")
		spinner, cleanup := startSpinnerWithFlags("Decrypting file...", decryptVerbose, decryptDebug)
		defer cleanup()

		inputPath := args[0]
		if _, err := os.Stat(inputPath); err != nil {
			finalMessage := color.RedString("✗") + " Cannot read " + ui.Path.Sprint(inputPath)
			spinner.FinalMSG = finalMessage
			return nil
		}

		outputPath := decryptOutput
		if outputPath == "" {
			outputPath = strings.TrimSuffix(inputPath, ".age")
			if outputPath == inputPath {
				outputPath = inputPath + ".out"
			}
		}

		backend, err := newBackend()
		if err != nil {
			return Logger.ErrorfAndReturn("Failed to find age tooling: %v", err)
		}

		identity := strings.TrimSpace(decryptIdentity)
		keyName := ""
		if !strings.HasPrefix(identity, "AGE-SECRET-KEY-") {
			store, _, err := openVaultStore()
			if err != nil {
				return Logger.ErrorfAndReturn("Failed to open vault: %v", err)
			}

			record, err := store.Find(identity)
			if err != nil {
				if errors.Is(err, verrors.ErrKeyNotFound) {
					finalMessage := color.RedString("✗") + " No key named " + ui.Highlight.Sprint(identity) + " in the vault\n" +
						color.CyanString("→") + " Run " + ui.Code.Sprint("agevault keys list") + " to see what is stored"
					spinner.FinalMSG = finalMessage
					return nil
				}
				return Logger.ErrorfAndReturn("Failed to resolve identity: %v", err)
			}

			if record.RecipientOnly() {
				finalMessage := color.RedString("✗") + " Key " + ui.Highlight.Sprint(record.Name) + " has no private half\n" +
					color.CyanString("→") + " Recipient-only keys can encrypt but never decrypt"
				spinner.FinalMSG = finalMessage
				return nil
			}

			keyName = record.Name
			identity = *record.PrivateKey
		}

		Logger.Debugf("Decrypting %s to %s", inputPath, outputPath)
		if err := backend.DecryptFile(inputPath, outputPath, identity); err != nil {
			if errors.Is(err, verrors.ErrInvalidIdentity) {
				finalMessage := color.RedString("✗") + " The identity is not in a recognized format"
				spinner.FinalMSG = finalMessage
				return nil
			}
			return Logger.ErrorfAndReturn("Decryption failed: %v", err)
		}

		audit.Log(audit.Entry{
			Operation:  "decrypt",
			KeyName:    keyName,
			InputPath:  inputPath,
			OutputPath: outputPath,
		})

		finalMessage := color.GreenString("✓") + " Decrypted " + ui.Path.Sprint(inputPath) + "\n" +
			"    created: " + ui.Path.Sprint(outputPath)
		spinner.FinalMSG = finalMessage
		return nil
	},
}
