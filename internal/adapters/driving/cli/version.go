package cli

import (
	"runtime"

	"github.com/spf13/cobra"
)

// versionInfo is the machine-readable form of the version command.
type versionInfo struct {
	Version   string `json:"version"`
	GoVersion string `json:"goVersion"`
	Platform  string `json:"platform"`
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		format, err := cmd.Flags().GetString("format")
		if err != nil {
			return err
		}

		if format == "json" {
			return outputJSON(cmd, versionInfo{
				Version:   version,
				GoVersion: runtime.Version(),
				Platform:  runtime.GOOS + "/" + runtime.GOARCH,
			})
		}
		cmd.Printf("clinical-trials version %s\n", version)
		return nil
	},
}

func init() {
	versionCmd.Flags().String("format", "", "output format (json)")
	rootCmd.AddCommand(versionCmd)
}
