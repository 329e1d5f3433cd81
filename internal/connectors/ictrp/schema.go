package ictrp

import (
	"bytes"
	"encoding/xml"
	"strings"

	"golang.org/x/net/html/charset"

	"github.com/custodia-labs/clinical-trials-mcp/internal/core/domain"
)

// trialsDocument is the <trials> root.
type trialsDocument struct {
	XMLName xml.Name
	Trials  []trialElement `xml:"trial"`
}

// trialElement is one <trial>. Pointer scalars are nil when the element is missing.
type trialElement struct {
	TrialID           *string `xml:"trialID"`
	PublicTitle       *string `xml:"publicTitle"`
	ScientificTitle   *string `xml:"scientificTitle"`
	PrimarySponsor    *string `xml:"primarySponsor"`
	RecruitmentStatus *string `xml:"recruitmentStatus"`
	StudyType         *string `xml:"studyType"`
	RegisterDate      *string `xml:"registerDate"`
	StartDate         *string `xml:"startDate"`
	CompletionDate    *string `xml:"completionDate"`
	EnrollmentTarget  *string `xml:"enrollmentTarget"`

	Countries     []listElement   `xml:"countries"`
	Conditions    []listElement   `xml:"conditions"`
	Interventions []listElement   `xml:"interventions"`
	Phases        []string        `xml:"phase"`
	Contacts      []contactsBlock `xml:"contacts"`
}

// listElement captures both list shapes: wrapped children or direct text.
type listElement struct {
	Children []childElement `xml:",any"`
	Text     string         `xml:",chardata"`
}

type childElement struct {
	XMLName xml.Name
	Value   string `xml:",chardata"`
}

type contactsBlock struct {
	Contacts []contactElement `xml:"contact"`
}

type contactElement struct {
	LastName  string `xml:"lastName"`
	FirstName string `xml:"firstName"`
}

// decode parses an ICTRP body into the raw domain structure.
// Bodies declaring a non-UTF-8 encoding are transcoded while reading.
func decode(body []byte) (*domain.RawResult, error) {
	var doc trialsDocument
	d := xml.NewDecoder(bytes.NewReader(body))
	d.CharsetReader = charset.NewReaderLabel
	if err := d.Decode(&doc); err != nil {
		return nil, &domain.RegistryParseError{Registry: domain.RegistryICTRP, Err: err}
	}

	result := &domain.RawResult{Registry: domain.RegistryICTRP}
	if doc.XMLName.Local != "trials" || len(doc.Trials) == 0 {
		return result, nil
	}

	result.Present = true
	result.Trials = make([]domain.RawTrial, 0, len(doc.Trials))
	for i := range doc.Trials {
		result.Trials = append(result.Trials, doc.Trials[i].toRaw())
	}
	return result, nil
}

func (t *trialElement) toRaw() domain.RawTrial {
	return domain.RawTrial{
		TrialID:           trimmed(t.TrialID),
		PublicTitle:       trimmed(t.PublicTitle),
		ScientificTitle:   trimmed(t.ScientificTitle),
		PrimarySponsor:    trimmed(t.PrimarySponsor),
		RecruitmentStatus: trimmed(t.RecruitmentStatus),
		StudyType:         trimmed(t.StudyType),
		RegisterDate:      trimmed(t.RegisterDate),
		StartDate:         trimmed(t.StartDate),
		CompletionDate:    trimmed(t.CompletionDate),
		EnrollmentTarget:  trimmed(t.EnrollmentTarget),
		Countries:         toRawList(t.Countries, "country"),
		Conditions:        toRawList(t.Conditions, "condition"),
		Interventions:     toRawList(t.Interventions, "intervention"),
		Phases:            domain.DirectList(nonEmpty(t.Phases)...),
		Contacts:          toRawContacts(t.Contacts),
	}
}

// toRawList splits list elements into wrapped and direct values.
// child is the singular wrapper key, e.g. "country" under "countries".
func toRawList(elems []listElement, child string) domain.RawList {
	var list domain.RawList
	for _, e := range elems {
		wrapped := false
		for _, c := range e.Children {
			if c.XMLName.Local != child {
				continue
			}
			wrapped = true
			if v := strings.TrimSpace(c.Value); v != "" {
				list.Wrapped = append(list.Wrapped, v)
			}
		}
		if wrapped {
			list.HasWrapper = true
			continue
		}
		if len(e.Children) == 0 {
			if v := strings.TrimSpace(e.Text); v != "" {
				list.Direct = append(list.Direct, v)
			}
		}
	}
	return list
}

func toRawContacts(blocks []contactsBlock) domain.RawContacts {
	var contacts domain.RawContacts
	for _, b := range blocks {
		for _, c := range b.Contacts {
			contacts.HasWrapper = true
			contacts.Wrapped = append(contacts.Wrapped, domain.RawContact{
				LastName:  strings.TrimSpace(c.LastName),
				FirstName: strings.TrimSpace(c.FirstName),
			})
		}
	}
	return contacts
}

func trimmed(s *string) *string {
	if s == nil {
		return nil
	}
	return domain.StringPtr(strings.TrimSpace(*s))
}

func nonEmpty(values []string) []string {
	var out []string
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}
