package cmd

import (
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/agevault/agevault/internal/age"
	"github.com/agevault/agevault/internal/configs"
	"github.com/agevault/agevault/internal/ui"
	"github.com/agevault/agevault/internal/vault"

	"github.com/briandowns/spinner"
)

// startSpinner creates and starts a spinner with the given message when not in verbose or debug mode.
// Returns the spinner and a function that should be deferred to clean up.
// Uses the global debug flag from the keys command.
//
// IMPORTANT: spinner.FinalMSG values do NOT need trailing newlines. The cleanup function
// automatically calls ui.EnsureNewline() on the final message before printing it.
// This ensures consistent output formatting across all commands.
func startSpinner(message string, verbose bool) (*spinner.Spinner, func()) {
	Logger.Debugf("Starting spinner with message: %s", message)
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
	s.Suffix = " " + message

	err := s.Color("cyan")
	if err != nil {
		// If we can't set spinner color, just continue without it.
		Logger.Warnf("Failed to set spinner color: %v", err)
	}

	if !verbose && !debug {
		Logger.Debugf("Starting spinner in non-verbose mode")
		s.Start()
		// Ensure log output is discarded unless in verbose mode.
		log.SetOutput(io.Discard)
	} else {
		Logger.Infof("Running in verbose or debug mode: %s", message)
	}

	cleanup := func() {
		// Restore log output first.
		if !verbose && !debug {
			Logger.Debugf("Restoring log output")
			log.SetOutput(os.Stdout)
		}

		// Ensure final message ends with a newline.
		finalMsg := ""
		if s.FinalMSG != "" {
			finalMsg = ui.EnsureNewline(s.FinalMSG)
			// Clear FinalMSG so s.Stop() doesn't print it.
			s.FinalMSG = ""
		}

		// Stop the spinner first to clear the spinner line.
		if !verbose && !debug {
			Logger.Debugf("Stopping spinner")
			s.Stop()
		}

		// Print final message to stdout (for tests to capture).
		if finalMsg != "" {
			fmt.Print(finalMsg)
		}
	}

	return s, cleanup
}

// startSpinnerWithFlags creates and starts a spinner with explicit verbose and debug flags.
// This is useful for commands that have their own flag variables (encrypt, decrypt).
func startSpinnerWithFlags(message string, verbose, debugFlag bool) (*spinner.Spinner, func()) {
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
	s.Suffix = " " + message

	// Ignore color errors - continue without colored spinner if it fails.
	_ = s.Color("cyan")

	if !verbose && !debugFlag {
		s.Start()
		log.SetOutput(io.Discard)
	}

	cleanup := func() {
		if !verbose && !debugFlag {
			log.SetOutput(os.Stdout)
		}

		finalMsg := ""
		if s.FinalMSG != "" {
			finalMsg = ui.EnsureNewline(s.FinalMSG)
			s.FinalMSG = ""
		}

		if !verbose && !debugFlag {
			s.Stop()
		}

		if finalMsg != "" {
			fmt.Print(finalMsg)
		}
	}

	return s, cleanup
}

// openVaultStore unlocks the local vault with the machine passphrase and
// loads it into a store. A missing vault file yields an empty store so
// first-run commands work without a separate init step.
func openVaultStore() (*vault.Store, string, error) {
	settings := configs.UserAgevaultSettings

	passphrase, err := vault.GetOrCreatePassphrase(settings.PassphrasePath)
	if err != nil {
		return nil, "", fmt.Errorf("failed to get vault passphrase: %w", err)
	}

	if !vault.Exists(settings.VaultPath) {
		return vault.NewStore(nil), passphrase, nil
	}

	records, err := vault.Load(settings.VaultPath, passphrase)
	if err != nil {
		return nil, "", fmt.Errorf("failed to open vault: %w", err)
	}

	return vault.NewStore(records), passphrase, nil
}

// saveVaultStore seals the store back into the local vault file.
func saveVaultStore(store *vault.Store, passphrase string) error {
	if err := vault.Save(configs.UserAgevaultSettings.VaultPath, passphrase, store.Records()); err != nil {
		return fmt.Errorf("failed to save vault: %w", err)
	}
	return nil
}

// newBackend builds the age CLI backend, honoring executable path
// overrides from the user config.
func newBackend() (age.Backend, error) {
	config, err := configs.LoadUserConfig()
	if err != nil {
		return nil, err
	}

	backend, err := age.NewCLIBackend(config.Defaults.AgePath, config.Defaults.KeygenPath)
	if err != nil {
		return nil, err
	}
	return backend, nil
}
