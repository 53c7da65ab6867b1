package entities

import "strings"

// PreferenceProfile is a per-request multiset of a user's historical and
// declared event categories, lower-cased. It is derived from registrations
// and interests for one turn and never persisted.
type PreferenceProfile map[string]int

// NewPreferenceProfile returns an empty profile.
func NewPreferenceProfile() PreferenceProfile {
	return make(PreferenceProfile)
}

// Add records one occurrence of a category. Blank values are ignored.
func (p PreferenceProfile) Add(category string) {
	c := strings.ToLower(strings.TrimSpace(category))
	if c == "" {
		return
	}
	p[c]++
}

// Matches reports whether the given category appears in the profile.
func (p PreferenceProfile) Matches(category string) bool {
	c := strings.ToLower(strings.TrimSpace(category))
	if c == "" {
		return false
	}
	return p[c] > 0
}

// Empty reports whether the profile holds no categories.
func (p PreferenceProfile) Empty() bool {
	return len(p) == 0
}
