package ctgov

import (
	"strings"

	"github.com/tidwall/gjson"

	"github.com/custodia-labs/clinical-trials-mcp/internal/core/domain"
)

// Paths below Study.ProtocolSection.
const (
	pathNCTId          = "IdentificationModule.NCTId"
	pathOfficialTitle  = "IdentificationModule.OfficialTitle"
	pathBriefTitle     = "IdentificationModule.BriefTitle"
	pathLeadSponsor    = "SponsorCollaboratorsModule.LeadSponsor.Name"
	pathOverallStatus  = "StatusModule.OverallStatus"
	pathFirstSubmit    = "StatusModule.StudyFirstSubmitDate"
	pathStartDate      = "StatusModule.StartDate"
	pathCompletionDate = "StatusModule.CompletionDate"
	pathPhases         = "DesignModule.PhaseList.Phase"
	pathStudyType      = "DesignModule.StudyType"
	pathConditions     = "ConditionsModule.ConditionList.Condition"
	pathLocations      = "ContactsLocationsModule.LocationList.Location"
)

// convert maps a full-studies response onto the raw domain structure.
func convert(body []byte) (*domain.RawResult, error) {
	if !gjson.ValidBytes(body) {
		return nil, &domain.RegistryParseError{
			Registry: domain.RegistryCTGov,
			Err:      errInvalidJSON,
		}
	}

	studies := gjson.GetBytes(body, "FullStudiesResponse.FullStudies").Array()
	result := &domain.RawResult{
		Registry: domain.RegistryCTGov,
		Present:  true,
		Trials:   make([]domain.RawTrial, 0, len(studies)),
	}

	for _, study := range studies {
		result.Trials = append(result.Trials, convertStudy(study.Get("Study.ProtocolSection")))
	}
	return result, nil
}

func convertStudy(ps gjson.Result) domain.RawTrial {
	trial := domain.RawTrial{
		TrialID:           scalar(ps, pathNCTId),
		ScientificTitle:   scalar(ps, pathOfficialTitle),
		PublicTitle:       scalar(ps, pathBriefTitle),
		PrimarySponsor:    scalar(ps, pathLeadSponsor),
		RecruitmentStatus: scalar(ps, pathOverallStatus),
		StudyType:         scalar(ps, pathStudyType),
		RegisterDate:      scalar(ps, pathFirstSubmit),
		StartDate:         scalar(ps, pathStartDate),
		CompletionDate:    scalar(ps, pathCompletionDate),
		Conditions:        domain.WrappedList(stringList(ps.Get(pathConditions))...),
		Countries:         domain.WrappedList(countries(ps.Get(pathLocations))...),
	}

	if phases := stringList(ps.Get(pathPhases)); len(phases) > 0 {
		trial.Phases = domain.DirectList(strings.Join(phases, ", "))
	}

	return trial
}

// scalar returns the string at path, or nil when the path is missing.
func scalar(r gjson.Result, path string) *string {
	v := r.Get(path)
	if !v.Exists() || v.Type == gjson.Null {
		return nil
	}
	return domain.StringPtr(v.String())
}

// stringList flattens an array (or a lone value) into non-empty strings.
func stringList(r gjson.Result) []string {
	if !r.Exists() {
		return nil
	}
	var out []string
	for _, v := range r.Array() {
		if s := strings.TrimSpace(v.String()); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// countries collects location countries, de-duplicated in first-seen order.
// A single Location object counts as one location.
func countries(locations gjson.Result) []string {
	if !locations.Exists() {
		return nil
	}
	seen := make(map[string]struct{})
	var out []string
	for _, loc := range locations.Array() {
		c := strings.TrimSpace(loc.Get("Country").String())
		if c == "" {
			continue
		}
		if _, ok := seen[c]; ok {
			continue
		}
		seen[c] = struct{}{}
		out = append(out, c)
	}
	return out
}
