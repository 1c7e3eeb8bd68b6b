package domain

import "strings"

// FilterSpec selects which fetched assignments are in scope for a run.
// Matching ignores case.
type FilterSpec struct {
	// Predicate must appear in the display name. Empty matches everything.
	Predicate string

	// Blacklist phrases exclude any display name containing one of them.
	// Blank phrases are ignored, so [""] means no blacklist.
	Blacklist []string
}

// Matches reports whether a display name is in scope.
func (f FilterSpec) Matches(name string) bool {
	return f.fold().matches(name)
}

// Apply returns the in-scope records in their original order.
// The input slice is not modified.
func (f FilterSpec) Apply(records []RemoteAssignment) []RemoteAssignment {
	m := f.fold()
	kept := make([]RemoteAssignment, 0, len(records))
	for _, r := range records {
		if m.matches(r.Name) {
			kept = append(kept, r)
		}
	}
	return kept
}

// EffectiveBlacklist returns the blacklist without blank phrases.
func (f FilterSpec) EffectiveBlacklist() []string {
	out := make([]string, 0, len(f.Blacklist))
	for _, phrase := range f.Blacklist {
		if phrase != "" {
			out = append(out, phrase)
		}
	}
	return out
}

// folded holds the lower-cased predicate and phrases.
type folded struct {
	predicate string
	phrases   []string
}

func (f FilterSpec) fold() folded {
	phrases := f.EffectiveBlacklist()
	for i, phrase := range phrases {
		phrases[i] = strings.ToLower(phrase)
	}
	return folded{predicate: strings.ToLower(f.Predicate), phrases: phrases}
}

func (m folded) matches(name string) bool {
	name = strings.ToLower(name)
	if !strings.Contains(name, m.predicate) {
		return false
	}
	for _, phrase := range m.phrases {
		if strings.Contains(name, phrase) {
			return false
		}
	}
	return true
}
