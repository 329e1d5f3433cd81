package mcp

import (
	"context"

	"github.com/custodia-labs/clinical-trials-mcp/internal/core/domain"
	"github.com/custodia-labs/clinical-trials-mcp/internal/logger"
)

// mockTrialService is a mock implementation of driving.TrialService.
type mockTrialService struct {
	trials []domain.Trial
	trial  *domain.Trial
	err    error

	gotCriteria  domain.SearchCriteria
	gotID        string
	gotRequestID string
}

func (m *mockTrialService) Search(ctx context.Context, criteria domain.SearchCriteria) ([]domain.Trial, error) {
	m.gotCriteria = criteria
	m.gotRequestID = logger.RequestID(ctx)
	return m.trials, m.err
}

func (m *mockTrialService) GetDetails(ctx context.Context, id string) (*domain.Trial, error) {
	m.gotID = id
	m.gotRequestID = logger.RequestID(ctx)
	return m.trial, m.err
}

func sampleTrial(id string) domain.Trial {
	link := "https://trialsearch.who.int/Trial2.aspx?TrialID=" + id
	target := 120
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
		EnrollmentTarget:  &target,
		StartDate:         "2024-01-01",
		CompletionDate:    "Unknown",
		RegistrationDate:  "2023-11-15",
		URL:               &link,
	}
}
