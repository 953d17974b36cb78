package cmd

import (
	"fmt"
	"os"

	"github.com/blang/semver"
	"github.com/creativeprojects/go-selfupdate"
	"github.com/spf13/cobra"
)

const repositorySlug = "talentwire/talentctl"

// updateCmd represents the update command
var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Update talentctl to the latest release",
	// Updating needs no configuration or API client.
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
	RunE: func(cmd *cobra.Command, args []string) error {
		current, err := semver.ParseTolerant(appVersion)
		if err != nil {
			return fmt.Errorf("cannot update a non-release build (version %q)", appVersion)
		}

		latest, found, err := selfupdate.DetectLatest(cmd.Context(), selfupdate.ParseSlug(repositorySlug))
		if err != nil {
			return fmt.Errorf("failed to check for updates: %w", err)
		}
		if !found || latest.LessOrEqual(current.String()) {
			fmt.Printf("talentctl %s is up to date.\n", appVersion)
			return nil
		}

		exe, err := os.Executable()
		if err != nil {
			return fmt.Errorf("could not locate executable: %w", err)
		}

		fmt.Printf("Updating %s -> %s...\n", appVersion, latest.Version())
		if err := selfupdate.UpdateTo(cmd.Context(), latest.AssetURL, latest.AssetName, exe); err != nil {
			return fmt.Errorf("update failed: %w", err)
		}

		fmt.Printf("✓ Updated to %s\n", latest.Version())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(updateCmd)
}
