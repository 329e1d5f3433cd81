package domain

// RawResult is a registry's output before normalisation.
// It models the trials.trial node: Present is false when the node was
// absent, otherwise Trials holds one entry per trial object in order.
type RawResult struct {
	// Registry names the adapter that produced the result.
	Registry string

	// Present reports whether the trials.trial node existed at all.
	Present bool

	// Trials holds the raw trial objects.
	Trials []RawTrial
}

// Len returns the number of raw trials.
func (r *RawResult) Len() int {
	if r == nil {
		return 0
	}
	return len(r.Trials)
}

// RawTrial is one trial as a registry described it.
// A nil scalar means the field was missing; an empty string means it was
// present but blank. Both fall back to defaults during normalisation.
type RawTrial struct {
	TrialID           *string
	PublicTitle       *string
	ScientificTitle   *string
	PrimarySponsor    *string
	RecruitmentStatus *string
	StudyType         *string
	RegisterDate      *string
	StartDate         *string
	CompletionDate    *string
	EnrollmentTarget  *string

	Countries     RawList
	Conditions    RawList
	Interventions RawList
	Phases        RawList
	Contacts      RawContacts
}

// RawList is a list-valued field whose registry shape varies.
//
// Registries either wrap values under a singular-named key
// (<countries><country>A</country></countries>) or put the value on the
// field itself (<countries>A</countries>). A wrapped scalar has already
// been turned into a one-element Wrapped slice by the adapter.
type RawList struct {
	// HasWrapper reports whether the singular-named wrapper key existed.
	HasWrapper bool

	// Wrapped holds values found under the wrapper key.
	Wrapped []string

	// Direct holds the field's own value when no wrapper exists.
	Direct []string
}

// WrappedList builds a RawList from values found under a wrapper key.
func WrappedList(values ...string) RawList {
	return RawList{HasWrapper: true, Wrapped: values}
}

// DirectList builds a RawList from values found on the field itself.
func DirectList(values ...string) RawList {
	return RawList{Direct: values}
}

// RawContact is a registry contact entry.
type RawContact struct {
	LastName  string
	FirstName string
}

// RawContacts is the contacts field. Contacts only appear wrapped.
type RawContacts struct {
	HasWrapper bool
	Wrapped    []RawContact
}

// StringPtr returns a pointer to s.
func StringPtr(s string) *string {
	return &s
}
