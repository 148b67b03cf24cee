package models

import "sort"

// Provider is a bookable healthcare provider. Role is one of the backend's
// provider kinds (Doctor, Nurse, Lab); read-only from the client's side.
type Provider struct {
	ID             string `json:"_id"`
	Name           string `json:"name"`
	Role           string `json:"role"`
	Specialization string `json:"specialization"`
}

// FilterByRole returns the providers whose role equals the selected
// provider-type string exactly.
func FilterByRole(list []Provider, role string) []Provider {
	out := make([]Provider, 0, len(list))
	for _, p := range list {
		if p.Role == role {
			out = append(out, p)
		}
	}
	return out
}

// FilterBySpecialization narrows a provider list to one specialization.
// An empty spec selects everything.
func FilterBySpecialization(list []Provider, spec string) []Provider {
	if spec == "" {
		return list
	}
	out := make([]Provider, 0, len(list))
	for _, p := range list {
		if p.Specialization == spec {
			out = append(out, p)
		}
	}
	return out
}

// Specializations returns the distinct non-empty specializations available
// for a role, sorted. The result is a set: duplicates in the input collapse
// regardless of their order.
func Specializations(list []Provider, role string) []string {
	seen := make(map[string]struct{})
	for _, p := range list {
		if p.Role != role || p.Specialization == "" {
			continue
		}
		seen[p.Specialization] = struct{}{}
	}

	out := make([]string, 0, len(seen))
	for s := range seen {
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}
