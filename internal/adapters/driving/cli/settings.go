package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Show the resolved registry settings",
	Long: `Show the registry settings in effect after layering environment variables
(CLINICAL_TRIALS_REGISTRY_*) over the config file and built-in defaults.`,
	Args: cobra.NoArgs,
	RunE: runSettingsShow,
}

func init() {
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	if err := ensureServices(nil); err != nil {
		return err
	}

	settings, err := settingsService.RegistrySettings()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	header(cmd, "Registry settings")
	field(cmd, "Primary URL", settings.PrimaryURL)
	field(cmd, "Secondary URL", settings.SecondaryURL)
	field(cmd, "Deep link base", settings.DeepLinkBase)
	field(cmd, "User agent", settings.UserAgent)
	field(cmd, "Timeout", settings.Timeout.String())
	return nil
}
