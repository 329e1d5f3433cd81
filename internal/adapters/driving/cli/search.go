package cli

import (
	"github.com/spf13/cobra"

	"github.com/custodia-labs/clinical-trials-mcp/internal/core/domain"
	"github.com/custodia-labs/clinical-trials-mcp/internal/render"
)

var (
	searchCriteria domain.SearchCriteria
	searchJSON     bool
	searchTable    bool
)

var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "Search clinical trials",
	Long: `Search clinical trials by keyword, condition, country, sponsor, phase,
recruitment status or registration date range.

Examples:
  # Recruiting breast cancer trials
  clinical-trials search --condition "breast cancer" --status Recruiting

  # City search (query is read as a city when a country is given)
  clinical-trials search --query London --country "United Kingdom" --condition Leukemia`,
	Args: cobra.NoArgs,
	RunE: runSearch,
}

func init() {
	f := searchCmd.Flags()
	f.StringVar(&searchCriteria.Query, "query", "", "free-text query (read as a city when --country is set)")
	f.StringVar(&searchCriteria.Condition, "condition", "", "medical condition or disease")
	f.StringVar(&searchCriteria.Country, "country", "", "country where the trial is conducted")
	f.StringVar(&searchCriteria.Sponsor, "sponsor", "", "sponsoring organisation")
	f.StringVar(&searchCriteria.Phase, "phase", "", "trial phase (e.g. \"Phase 3\")")
	f.StringVar(&searchCriteria.RecruitmentStatus, "status", "", "recruitment status (e.g. Recruiting)")
	f.StringVar(&searchCriteria.DateFrom, "from", "", "registered on or after (YYYY-MM-DD)")
	f.StringVar(&searchCriteria.DateTo, "to", "", "registered on or before (YYYY-MM-DD)")
	f.IntVarP(&searchCriteria.MaxResults, "max", "n", domain.DefaultMaxResults, "maximum number of results (at most 50)")
	f.BoolVar(&searchJSON, "json", false, "output results as JSON")
	f.BoolVar(&searchTable, "table", false, "output a one-line-per-trial summary table")
	searchCmd.MarkFlagsMutuallyExclusive("json", "table")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, _ []string) error {
	if err := ensureServices(nil); err != nil {
		return err
	}

	criteria := searchCriteria
	results, err := trialService.Search(commandContext(cmd), criteria)
	if err != nil {
		cmd.Println(render.SearchError(err, criteria))
		return nil
	}

	if searchJSON {
		return outputJSON(cmd, trialViews(results))
	}

	if len(results) == 0 {
		cmd.Println(render.NoResults(criteria))
		return nil
	}
	if searchTable {
		return outputTrialTable(cmd, results)
	}
	cmd.Println(render.SearchResults(results))
	return nil
}
