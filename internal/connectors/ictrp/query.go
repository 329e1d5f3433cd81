package ictrp

import (
	"net/url"
	"strconv"

	"github.com/custodia-labs/clinical-trials-mcp/internal/core/domain"
)

// Query keys understood by the ICTRP search endpoint.
const (
	keySearch      = "search"
	keyCondition   = "condition"
	keyCountry     = "country"
	keySponsor     = "sponsor"
	keyPhase       = "phase"
	keyRecruitment = "recruitment"
	keyDateFrom    = "dateFrom"
	keyDateTo      = "dateTo"
	keyMax         = "max"
	keyTrialID     = "trialid"
)

// buildQuery maps registry parameters onto ICTRP query keys.
func buildQuery(p domain.RegistryParams) url.Values {
	q := url.Values{}
	add := func(key, value string) {
		if value != "" {
			q.Add(key, value)
		}
	}

	add(keySearch, p.Query)
	add(keyCondition, p.Condition)
	add(keyCountry, p.Country)
	add(keySponsor, p.Sponsor)
	add(keyPhase, p.Phase)
	add(keyRecruitment, p.RecruitmentStatus)
	add(keyDateFrom, p.DateFrom)
	add(keyDateTo, p.DateTo)
	if p.Max > 0 {
		add(keyMax, strconv.Itoa(p.Max))
	}
	add(keyTrialID, p.TrialID)

	return q
}
