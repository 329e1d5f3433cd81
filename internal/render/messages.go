package render

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/custodia-labs/clinical-trials-mcp/internal/core/domain"
)

// blockSeparator sits between rendered trials in a result list.
const blockSeparator = "\n---\n"

const (
	notFoundSuggestion = "\n\nThe ICTRP API may not support the specific search parameters you provided. \n" +
		"Try these suggestions:\n" +
		"1. Search by condition only, without specifying location\n" +
		"2. Try a broader search with fewer parameters\n" +
		"3. Use ClinicalTrials.gov directly at https://clinicaltrials.gov/"

	networkSuggestion = "\n\nThere may be network connectivity issues or the ICTRP API may be " +
		"temporarily unavailable. Please try again later."

	citySuggestion = "\n\nFor city-based searches like \"%s\" in \"%s\", try:\n" +
		"1. Searching for the condition and country only, without mentioning the city\n" +
		"2. Using more general location terms\n" +
		"3. Checking the spelling of the city name"
)

// SearchResults renders a non-empty result list.
func SearchResults(trials []domain.Trial) string {
	blocks := make([]string, 0, len(trials))
	for _, t := range trials {
		blocks = append(blocks, Trial(t))
	}
	return fmt.Sprintf("Found %d clinical trials matching your search criteria.\n\n%s",
		len(trials), strings.Join(blocks, blockSeparator))
}

// echoedCriteria is the subset of criteria repeated back when nothing matched.
type echoedCriteria struct {
	Query             string `json:"query,omitempty"`
	Condition         string `json:"condition,omitempty"`
	Country           string `json:"country,omitempty"`
	Sponsor           string `json:"sponsor,omitempty"`
	Phase             string `json:"phase,omitempty"`
	RecruitmentStatus string `json:"recruitmentStatus,omitempty"`
}

// NoResults renders the empty-result message, echoing the criteria as JSON.
func NoResults(c domain.SearchCriteria) string {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	_ = enc.Encode(echoedCriteria{
		Query:             c.Query,
		Condition:         c.Condition,
		Country:           c.Country,
		Sponsor:           c.Sponsor,
		Phase:             c.Phase,
		RecruitmentStatus: c.RecruitmentStatus,
	})
	return "No clinical trials found matching your search criteria. The search parameters were: " +
		strings.TrimSuffix(buf.String(), "\n")
}

// SearchError renders a failed search with suggestions for the caller.
func SearchError(err error, c domain.SearchCriteria) string {
	msg := errorMessage(err)
	text := "Error searching for clinical trials: " + msg

	switch {
	case strings.Contains(msg, "404"):
		text += notFoundSuggestion
	case strings.Contains(msg, "timeout"), strings.Contains(msg, "network"):
		text += networkSuggestion
	}

	if c.IsCitySearch() {
		text += fmt.Sprintf(citySuggestion, c.Query, c.Country)
	}
	return text
}

// NotFound renders the detail lookup miss.
func NotFound(id string) string {
	return "No clinical trial found with ID: " + id
}

// DetailsError renders a failed detail lookup.
func DetailsError(err error) string {
	return "Error retrieving clinical trial details: " + errorMessage(err)
}

func errorMessage(err error) string {
	if err == nil || err.Error() == "" {
		return "Unknown error"
	}
	return err.Error()
}
