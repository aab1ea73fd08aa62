package cmd

import (
	"fmt"
	"time"

	"github.com/agevault/agevault/internal/ui"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Lists all keys stored in the vault",
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting keys list command")
		spinner, cleanup := startSpinner("Opening vault...", verbose)
		defer cleanup()

		store, _, err := openVaultStore()
		if err != nil {
			return Logger.ErrorfAndReturn("Failed to open vault: %v", err)
		}

		records := store.Records()
		if len(records) == 0 {
			finalMessage := color.YellowString("!") + " The vault is empty\n" +
				color.CyanString("→") + " Run " + ui.Code.Sprint("agevault keys generate") + " to create your first key"
			spinner.FinalMSG = finalMessage
			return nil
		}

		finalMessage := color.GreenString("✓") + fmt.Sprintf(" %d key(s) in the vault:\n", len(records))
		for _, r := range records {
			created := time.Unix(r.CreatedAt, 0).Format("2006-01-02")
			kind := ""
			if r.RecipientOnly() {
				kind = ui.Muted.Sprint(" (recipient-only)")
			}

			finalMessage += "  " + ui.Highlight.Sprint(r.Name) + kind + "\n" +
				"    id:      " + ui.Muted.Sprint(r.ID) + "\n" +
				"    public:  " + color.YellowString(r.PublicKey) + "\n" +
				"    created: " + created + "\n"
			if r.Comment != nil && *r.Comment != "" {
				finalMessage += "    comment: " + *r.Comment + "\n"
			}
		}

		spinner.FinalMSG = finalMessage
		return nil
	},
}
