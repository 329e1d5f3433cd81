package cli

import (
	"bytes"
	"context"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/custodia-labs/clinical-trials-mcp/internal/core/domain"
	"github.com/custodia-labs/clinical-trials-mcp/internal/core/ports/driven"
	"github.com/custodia-labs/clinical-trials-mcp/internal/core/ports/driving"
)

// mockTrialService is a mock implementation of driving.TrialService.
type mockTrialService struct {
	trials []domain.Trial
	trial  *domain.Trial
	err    error

	gotCriteria domain.SearchCriteria
	gotID       string
}

func (m *mockTrialService) Search(_ context.Context, criteria domain.SearchCriteria) ([]domain.Trial, error) {
	m.gotCriteria = criteria
	return m.trials, m.err
}

func (m *mockTrialService) GetDetails(_ context.Context, id string) (*domain.Trial, error) {
	m.gotID = id
	return m.trial, m.err
}

// mockSettingsService is a mock implementation of driving.SettingsService.
type mockSettingsService struct {
	settings domain.RegistrySettings
	err      error
}

func (m *mockSettingsService) RegistrySettings() (domain.RegistrySettings, error) {
	return m.settings, m.err
}

// setServices installs test services and returns a function restoring the originals.
func setServices(trials driving.TrialService, settings driving.SettingsService, regs ...driven.Registry) func() {
	origTrials, origSettings, origRegistries := trialService, settingsService, registries
	trialService = trials
	settingsService = settings
	registries = regs
	return func() {
		trialService, settingsService, registries = origTrials, origSettings, origRegistries
	}
}

// execute runs the root command with args and returns everything it printed.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	resetFlags(rootCmd)

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
	})

	err := rootCmd.Execute()
	return buf.String(), err
}

// resetFlags restores every flag in the tree to its default so state from an
// earlier Execute does not leak into the next one.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, sub := range cmd.Commands() {
		resetFlags(sub)
	}
}

func sampleTrial(id string) domain.Trial {
	link := "https://trialsearch.who.int/Trial2.aspx?TrialID=" + id
	return domain.Trial{
		ID:                id,
		Title:             "Aspirin in Heart Failure",
		PrimarySponsor:    "Acme Research",
		RecruitmentStatus: "Recruiting",
		StudyType:         "Interventional",
		Countries:         []string{"Kenya"},
		Contacts:          []string{"Doe, Jane"},
		Conditions:        []string{"Heart Failure"},
		Phases:            []string{"Phase 2"},
		Interventions:     []string{"Aspirin"},
		StartDate:         "2024-01-01",
		CompletionDate:    "Unknown",
		RegistrationDate:  "2023-11-15",
		URL:               &link,
	}
}
