package glossary

import "strings"

// Relevant returns the entries whose source term occurs in text, in
// store order. Matching is case-sensitive exact substring containment;
// provider requests carry a bounded number of entries, so only terms
// that can actually fire are worth sending.
func (s *Store) Relevant(text string) []Entry {
	var matched []Entry
	for _, e := range s.entries {
		if strings.Contains(text, e.Source) {
			matched = append(matched, e)
		}
	}
	return matched
}
