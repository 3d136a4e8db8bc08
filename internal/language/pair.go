package language

import "strings"

// Pair is an ordered (source, target) language combination. Codes are
// kept upper-cased.
type Pair struct {
	Source string
	Target string
}

// NewPair normalizes both codes and returns the ordered pair.
func NewPair(source, target string) Pair {
	return Pair{Source: Normalize(source), Target: Normalize(target)}
}

func (p Pair) String() string {
	return p.Source + "-" + p.Target
}

// Normalize upper-cases a language code and trims surrounding space.
func Normalize(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// ValidCode reports whether code looks like an ISO-639-1 code after
// normalization: exactly two ASCII letters.
func ValidCode(code string) bool {
	if len(code) != 2 {
		return false
	}
	for _, r := range code {
		if r < 'A' || r > 'Z' {
			return false
		}
	}
	return true
}
