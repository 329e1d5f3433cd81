package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/custodia-labs/clinical-trials-mcp/internal/core/domain"
)

// pingParams is the minimal query used to check reachability.
var pingParams = domain.RegistryParams{Query: "test", Max: 2}

var pingCmd = &cobra.Command{
	Use:   "ping",
	Short: "Check connectivity to both registries",
	Long: `Send a minimal search to ICTRP and ClinicalTrials.gov and report how many
trials each returned. The fallback chain is not used; each registry is
queried directly.`,
	Args: cobra.NoArgs,
	RunE: runPing,
}

func init() {
	rootCmd.AddCommand(pingCmd)
}

// pingResult is one registry's answer to the probe.
type pingResult struct {
	count   int
	elapsed time.Duration
	err     error
}

func runPing(cmd *cobra.Command, _ []string) error {
	if err := ensureServices(nil); err != nil {
		return err
	}

	ctx := commandContext(cmd)
	results := make([]pingResult, len(registries))

	// Probes are independent; one failing must not cancel the other.
	var g errgroup.Group
	for i, reg := range registries {
		g.Go(func() error {
			start := time.Now()
			raw, err := reg.Search(ctx, pingParams)
			results[i] = pingResult{
				count:   raw.Len(),
				elapsed: time.Since(start).Round(time.Millisecond),
				err:     err,
			}
			return nil
		})
	}
	_ = g.Wait()

	header(cmd, "Registry connectivity")
	var failed int
	for i, reg := range registries {
		r := results[i]
		if r.err != nil {
			failed++
			field(cmd, reg.Name(), fmt.Sprintf("error (%v): %v", r.elapsed, r.err))
			continue
		}
		field(cmd, reg.Name(), fmt.Sprintf("ok (%v), %d trials", r.elapsed, r.count))
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d registries unreachable", failed, len(registries))
	}
	return nil
}
