package main

import (
	"fmt"
	"os"

	"github.com/agevault/agevault/cmd"

	figure "github.com/common-nighthawk/go-figure"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "agevault",
	Short: "Agevault - A CLI for managing age keys and encrypting files.",
	Long: `Agevault is a command-line tool for managing age key pairs and
encrypting files for one or more recipients.

Keys are stored in an encrypted vault in your user config directory,
sealed under a machine-local passphrase. Key sets can be exported to a
portable passphrase-protected file and imported on another machine.

Features:
  - Generate and store age key pairs without touching plaintext key files
  - Add recipient public keys (age or SSH) for encrypting to others
  - Encrypt and decrypt files using the age tool
  - Export and import key sets between machines

Usage:
  agevault <command> [flags]

Available Commands:
  keys       Manage the key vault
  encrypt    Encrypt a file for one or more recipients
  decrypt    Decrypt a file with one of your identities

Run 'agevault help <command>' for more details on a specific command.
`,
	Run: func(cmd *cobra.Command, args []string) {
		banner := figure.NewColorFigure("agevault", "alligator2", "green", true)
		banner.Print()
		fmt.Println("Run 'agevault --help' to see available commands.")
	},
}

func main() {
	rootCmd.AddCommand(cmd.KeysCmd)
	rootCmd.AddCommand(cmd.EncryptCmd)
	rootCmd.AddCommand(cmd.DecryptCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
