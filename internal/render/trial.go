package render

import (
	"strconv"
	"strings"

	"github.com/custodia-labs/clinical-trials-mcp/internal/core/domain"
)

// listSeparator joins list fields on one line.
const listSeparator = ", "

// Trial renders one trial as a labelled block.
// The block starts and ends with a newline.
func Trial(t domain.Trial) string {
	enrollment := domain.NotSpecified
	if t.EnrollmentTarget != nil {
		enrollment = strconv.Itoa(*t.EnrollmentTarget)
	}
	link := domain.NotAvailable
	if t.URL != nil {
		link = *t.URL
	}

	var sb strings.Builder
	sb.WriteString("\n")
	line(&sb, "Trial ID", t.ID)
	line(&sb, "Title", t.Title)
	line(&sb, "Status", t.Status())
	line(&sb, "Registration Date", t.RegistrationDate)
	line(&sb, "Study Type", t.StudyType)
	line(&sb, "Phase", strings.Join(t.Phases, listSeparator))
	line(&sb, "Countries", strings.Join(t.Countries, listSeparator))
	line(&sb, "Conditions", strings.Join(t.Conditions, listSeparator))
	line(&sb, "Interventions", strings.Join(t.Interventions, listSeparator))
	line(&sb, "Primary Sponsor", t.PrimarySponsor)
	line(&sb, "Start Date", t.StartDate)
	line(&sb, "Completion Date", t.CompletionDate)
	line(&sb, "Enrollment Target", enrollment)
	line(&sb, "URL", link)
	return sb.String()
}

func line(sb *strings.Builder, label, value string) {
	sb.WriteString(label)
	sb.WriteString(": ")
	sb.WriteString(value)
	sb.WriteString("\n")
}
