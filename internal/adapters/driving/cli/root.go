// Package cli provides the cobra command tree for the clinical-trials binary.
package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/custodia-labs/clinical-trials-mcp/internal/adapters/driven/config/env"
	"github.com/custodia-labs/clinical-trials-mcp/internal/adapters/driven/config/file"
	"github.com/custodia-labs/clinical-trials-mcp/internal/adapters/driven/metrics"
	"github.com/custodia-labs/clinical-trials-mcp/internal/connectors/ctgov"
	"github.com/custodia-labs/clinical-trials-mcp/internal/connectors/ictrp"
	"github.com/custodia-labs/clinical-trials-mcp/internal/core/ports/driven"
	"github.com/custodia-labs/clinical-trials-mcp/internal/core/ports/driving"
	"github.com/custodia-labs/clinical-trials-mcp/internal/core/services"
	"github.com/custodia-labs/clinical-trials-mcp/internal/logger"
	"github.com/custodia-labs/clinical-trials-mcp/internal/normalisers/trials"
)

// version is set at build time.
var version = "dev"

// Services used by the commands. They are built lazily on first use and may
// be replaced in tests.
var (
	trialService    driving.TrialService
	settingsService driving.SettingsService
	registries      []driven.Registry
)

var rootCmd = &cobra.Command{
	Use:   "clinical-trials",
	Short: "Search clinical trial registries",
	Long: `Search the WHO International Clinical Trials Registry Platform (ICTRP)
and ClinicalTrials.gov, from the terminal or as an MCP server.

City searches (a free-text query together with a country) go to
ClinicalTrials.gov first. Everything else goes to ICTRP first, falling
back to ClinicalTrials.gov when ICTRP fails.`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(viper.GetBool("verbose"))
	},
}

func init() {
	rootCmd.SetOut(os.Stdout)
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "enable debug logging to stderr")
	rootCmd.PersistentFlags().String("config", "", "config file (default ~/.clinical-trials/config.toml)")

	for _, name := range []string{"verbose", "config"} {
		if err := viper.BindPFlag(name, rootCmd.PersistentFlags().Lookup(name)); err != nil {
			logger.Warn("binding %s flag: %v", name, err)
		}
	}
}

// SetVersion sets the version reported by the version command.
func SetVersion(v string) {
	if v != "" {
		version = v
	}
}

// Execute runs the root command.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

// ensureServices wires the service graph unless it already exists.
// recorder observes registry attempts; nil means no recording.
func ensureServices(recorder driven.RetrievalRecorder) error {
	if trialService != nil {
		return nil
	}
	if recorder == nil {
		recorder = metrics.NopRecorder{}
	}

	fileStore, err := file.NewConfigStore(viper.GetString("config"))
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	settings := services.NewSettingsService(env.NewStore(fileStore))

	rs, err := settings.RegistrySettings()
	if err != nil {
		return fmt.Errorf("resolving registry settings: %w", err)
	}
	logger.Debug("config: %s", fileStore.Path())
	logger.Debug("primary: %s, secondary: %s", rs.PrimaryURL, rs.SecondaryURL)

	primary := ictrp.NewClient(ictrp.Config{
		BaseURL:   rs.PrimaryURL,
		UserAgent: rs.UserAgent,
		Timeout:   rs.Timeout,
	})
	secondary := ctgov.NewClient(ctgov.Config{
		BaseURL:   rs.SecondaryURL,
		UserAgent: rs.UserAgent,
		Timeout:   rs.Timeout,
	})

	retriever, err := services.NewRetriever(services.RetrieverConfig{
		Primary:   primary,
		Secondary: secondary,
		Recorder:  recorder,
	})
	if err != nil {
		return err
	}

	trialService = services.NewTrialService(retriever, trials.New(rs.DeepLinkBase))
	settingsService = settings
	registries = []driven.Registry{primary, secondary}
	return nil
}

// commandContext returns the command's context tagged with a request ID.
func commandContext(cmd *cobra.Command) context.Context {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	return logger.WithRequestID(ctx, logger.NewRequestID())
}

// isTerminal reports whether stdout is an interactive terminal.
var isTerminal = func() bool {
	return termCheck(os.Stdout)
}
