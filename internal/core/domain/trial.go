package domain

// Sentinel values used when a registry omits a field.
const (
	NotSpecified = "Not specified"
	UnknownValue = "Unknown"
	NoTitle      = "No title available"
	NotAvailable = "Not available"
)

// Trial is the canonical clinical trial record.
// It is the source-independent representation after normalisation and is
// never modified once built.
type Trial struct {
	// ID is the registry identifier, "Unknown" when the registry has none.
	ID string `json:"id"`

	// Title is the preferred display title.
	Title string `json:"title"`

	// ScientificTitle is the official title as registered. May be empty.
	ScientificTitle string `json:"scientificTitle"`

	// PublicTitle is the brief or lay title as registered. May be empty.
	PublicTitle string `json:"publicTitle"`

	// PrimarySponsor is the sponsoring organisation.
	PrimarySponsor string `json:"primarySponsor"`

	// RecruitmentStatus is the recruitment state. Status returns the same value.
	RecruitmentStatus string `json:"recruitmentStatus"`

	// StudyType is interventional, observational, etc.
	StudyType string `json:"studyType"`

	// Countries lists the countries the trial runs in. Never empty.
	Countries []string `json:"countries"`

	// Contacts lists "lastName, firstName" entries. Never empty.
	Contacts []string `json:"contacts"`

	// Conditions lists the conditions studied. Never empty.
	Conditions []string `json:"conditions"`

	// Phases lists the trial phases. Never empty.
	Phases []string `json:"phases"`

	// Interventions lists the interventions under study. Never empty.
	Interventions []string `json:"interventions"`

	// EnrollmentTarget is nil when the registry gave no integer value.
	EnrollmentTarget *int `json:"enrollmentTarget,omitempty"`

	// Dates are kept in the registry's own format.
	StartDate        string `json:"startDate"`
	CompletionDate   string `json:"completionDate"`
	RegistrationDate string `json:"registrationDate"`

	// URL is the registry deep link, nil when the registry gave no ID.
	URL *string `json:"url,omitempty"`
}

// Status returns the recruitment status.
// Older callers read status under this name.
func (t Trial) Status() string {
	return t.RecruitmentStatus
}

// trialJSON adds the legacy "status" key next to "recruitmentStatus".
type trialJSON struct {
	Trial
	Status string `json:"status"`
}

// JSONView returns a value that encodes with both "status" and
// "recruitmentStatus" keys.
func (t Trial) JSONView() any {
	return trialJSON{Trial: t, Status: t.RecruitmentStatus}
}
