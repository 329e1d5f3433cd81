package domain

// Result cap limits.
const (
	DefaultMaxResults = 10
	MaxResultsCap     = 50
)

// SearchCriteria is what a caller asks the search operation for.
// Every field is optional.
type SearchCriteria struct {
	Query             string `json:"query,omitempty"`
	Condition         string `json:"condition,omitempty"`
	Country           string `json:"country,omitempty"`
	Sponsor           string `json:"sponsor,omitempty"`
	Phase             string `json:"phase,omitempty"`
	RecruitmentStatus string `json:"recruitmentStatus,omitempty"`
	DateFrom          string `json:"dateFrom,omitempty"`
	DateTo            string `json:"dateTo,omitempty"`
	MaxResults        int    `json:"maxResults,omitempty"`
}

// IsCitySearch reports whether the query should be read as a city name.
func (c SearchCriteria) IsCitySearch() bool {
	return c.Query != "" && c.Country != ""
}

// EffectiveMax returns the result cap to send upstream.
// Zero or negative means the default; anything above the cap is clamped.
func (c SearchCriteria) EffectiveMax() int {
	switch {
	case c.MaxResults <= 0:
		return DefaultMaxResults
	case c.MaxResults > MaxResultsCap:
		return MaxResultsCap
	default:
		return c.MaxResults
	}
}

// Params converts the criteria into registry parameters.
func (c SearchCriteria) Params() RegistryParams {
	return RegistryParams{
		Query:             c.Query,
		Condition:         c.Condition,
		Country:           c.Country,
		Sponsor:           c.Sponsor,
		Phase:             c.Phase,
		RecruitmentStatus: c.RecruitmentStatus,
		DateFrom:          c.DateFrom,
		DateTo:            c.DateTo,
		Max:               c.EffectiveMax(),
	}
}

// RegistryParams is the parameter set handed to a registry adapter.
// Adapters map these to their own query keys. It is a value type so each
// fallback step narrows its own copy.
type RegistryParams struct {
	Query             string
	Condition         string
	Country           string
	Sponsor           string
	Phase             string
	RecruitmentStatus string
	DateFrom          string
	DateTo            string
	TrialID           string

	// Max is the result cap. Zero means the adapter default.
	Max int
}

// IDParams returns parameters for an exact ID lookup.
func IDParams(trialID string) RegistryParams {
	return RegistryParams{TrialID: trialID}
}

// IsCitySearch reports whether both a free-text query and a country are set.
func (p RegistryParams) IsCitySearch() bool {
	return p.Query != "" && p.Country != ""
}

// WithoutCountry returns a copy with the country removed.
func (p RegistryParams) WithoutCountry() RegistryParams {
	p.Country = ""
	return p
}

// WithoutQuery returns a copy with the free-text query removed.
func (p RegistryParams) WithoutQuery() RegistryParams {
	p.Query = ""
	return p
}
