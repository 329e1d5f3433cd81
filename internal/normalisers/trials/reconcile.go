package trials

import "github.com/custodia-labs/clinical-trials-mcp/internal/core/domain"

// reconcile picks the values of a list field.
// Wrapped values win, then direct values, then the "Not specified" default.
func reconcile(list domain.RawList) []string {
	switch {
	case list.HasWrapper && len(list.Wrapped) > 0:
		return clone(list.Wrapped)
	case len(list.Direct) > 0:
		return clone(list.Direct)
	default:
		return []string{domain.NotSpecified}
	}
}

// reconcileContacts formats contacts as "lastName, firstName".
func reconcileContacts(contacts domain.RawContacts) []string {
	if !contacts.HasWrapper || len(contacts.Wrapped) == 0 {
		return []string{domain.NotSpecified}
	}
	out := make([]string, 0, len(contacts.Wrapped))
	for _, c := range contacts.Wrapped {
		out = append(out, c.LastName+", "+c.FirstName)
	}
	return out
}

func clone(values []string) []string {
	out := make([]string, len(values))
	copy(out, values)
	return out
}
