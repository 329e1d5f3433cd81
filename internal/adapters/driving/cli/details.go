package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/clinical-trials-mcp/internal/core/domain"
	"github.com/custodia-labs/clinical-trials-mcp/internal/render"
)

var detailsJSON bool

var detailsCmd = &cobra.Command{
	Use:   "details [trialId]",
	Short: "Show one clinical trial",
	Long: `Look up a single trial by its registry ID, such as an NCT number or a
WHO primary registry identifier.`,
	Args: cobra.ExactArgs(1),
	RunE: runDetails,
}

func init() {
	detailsCmd.Flags().BoolVar(&detailsJSON, "json", false, "output the trial as JSON")
	rootCmd.AddCommand(detailsCmd)
}

func runDetails(cmd *cobra.Command, args []string) error {
	if err := ensureServices(nil); err != nil {
		return err
	}

	id := args[0]
	trial, err := trialService.GetDetails(commandContext(cmd), id)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		cmd.Println(render.NotFound(id))
		return nil
	case err != nil:
		cmd.Println(render.DetailsError(err))
		return nil
	}

	if detailsJSON {
		return outputJSON(cmd, trial.JSONView())
	}
	cmd.Print(render.Trial(*trial))
	return nil
}
