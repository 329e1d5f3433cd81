package ctgov

import (
	"strings"

	"github.com/custodia-labs/clinical-trials-mcp/internal/core/domain"
)

// areaUnsafe holds characters that would break an AREA[...]:value operand.
const areaUnsafe = "[]:"

// buildExpr builds the search expression as a conjunction of, in order:
// the trial id, the condition, the country, the city and the status.
func buildExpr(p domain.RegistryParams) string {
	var terms []string

	if p.TrialID != "" {
		terms = append(terms, "AREA[NCTId]:"+p.TrialID)
	}
	if p.Condition != "" {
		terms = append(terms, p.Condition)
	}
	if p.Country != "" {
		terms = append(terms, "COUNTRY:"+p.Country)
		if p.Query != "" {
			terms = append(terms, cityTerm(p.Query))
		}
	}
	if p.RecruitmentStatus != "" {
		terms = append(terms, "AREA[RecruitmentsStatus]:"+p.RecruitmentStatus)
	}

	return strings.Join(terms, " AND ")
}

// cityTerm reads the free-text query as a city name. Values the AREA
// operator cannot carry are sent as plain text instead.
func cityTerm(city string) string {
	if strings.ContainsAny(city, areaUnsafe) {
		return city
	}
	return "AREA[City]:" + city
}
