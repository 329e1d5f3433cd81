package trials

import (
	"net/url"
	"strconv"

	"github.com/custodia-labs/clinical-trials-mcp/internal/core/domain"
	"github.com/custodia-labs/clinical-trials-mcp/internal/core/ports/driven"
)

// Ensure Normaliser implements the interface.
var _ driven.TrialNormaliser = (*Normaliser)(nil)

// Normaliser maps raw registry trials onto domain.Trial.
// It holds only the deep-link base and is safe for concurrent use.
type Normaliser struct {
	deepLinkBase string
}

// New creates a normaliser. An empty deepLinkBase uses domain.DefaultDeepLinkBase.
func New(deepLinkBase string) *Normaliser {
	if deepLinkBase == "" {
		deepLinkBase = domain.DefaultDeepLinkBase
	}
	return &Normaliser{deepLinkBase: deepLinkBase}
}

// Normalise maps every raw trial in order. Absent or empty input yields an
// empty, non-nil slice.
func (n *Normaliser) Normalise(raw *domain.RawResult) []domain.Trial {
	if raw == nil || !raw.Present {
		return []domain.Trial{}
	}

	out := make([]domain.Trial, 0, len(raw.Trials))
	for i := range raw.Trials {
		out = append(out, n.normaliseOne(&raw.Trials[i]))
	}
	return out
}

func (n *Normaliser) normaliseOne(rt *domain.RawTrial) domain.Trial {
	publicTitle := value(rt.PublicTitle)
	scientificTitle := value(rt.ScientificTitle)

	t := domain.Trial{
		ID:                orDefault(rt.TrialID, domain.UnknownValue),
		Title:             firstNonEmpty(publicTitle, scientificTitle, domain.NoTitle),
		ScientificTitle:   scientificTitle,
		PublicTitle:       publicTitle,
		PrimarySponsor:    orDefault(rt.PrimarySponsor, domain.NotSpecified),
		RecruitmentStatus: orDefault(rt.RecruitmentStatus, domain.UnknownValue),
		StudyType:         orDefault(rt.StudyType, domain.NotSpecified),
		Countries:         reconcile(rt.Countries),
		Contacts:          reconcileContacts(rt.Contacts),
		Conditions:        reconcile(rt.Conditions),
		Phases:            reconcile(rt.Phases),
		Interventions:     reconcile(rt.Interventions),
		EnrollmentTarget:  parseLeadingInt(value(rt.EnrollmentTarget)),
		StartDate:         orDefault(rt.StartDate, domain.NotSpecified),
		CompletionDate:    orDefault(rt.CompletionDate, domain.NotSpecified),
		RegistrationDate:  orDefault(rt.RegisterDate, domain.NotSpecified),
	}

	if id := value(rt.TrialID); id != "" {
		link := n.deepLinkBase + "?TrialID=" + url.QueryEscape(id)
		t.URL = &link
	}

	return t
}

func value(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// orDefault treats missing and blank the same way.
func orDefault(s *string, def string) string {
	if v := value(s); v != "" {
		return v
	}
	return def
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// parseLeadingInt reads an optional sign and the digits that follow it,
// so "120 participants" yields 120. No digits yields nil.
func parseLeadingInt(s string) *int {
	end := 0
	if end < len(s) && (s[end] == '-' || s[end] == '+') {
		end++
	}
	digits := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digits {
		return nil
	}

	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return nil
	}
	return &n
}
