package language

// GlossaryLanguages are the codes the provider accepts in glossaries.
var GlossaryLanguages = []string{"DE", "EN", "ES", "FR", "IT", "JA", "NL", "PL"}

// Matrix is the provider's glossary support table: the set of ordered
// language pairs a glossary may be attached to. It is injected into the
// Validator so tests can run against alternate provider capabilities.
type Matrix map[Pair]struct{}

// NewMatrix builds a full directional mesh over the given codes: every
// ordered combination of two distinct codes is supported.
func NewMatrix(codes ...string) Matrix {
	m := make(Matrix, len(codes)*(len(codes)-1))
	for _, src := range codes {
		for _, tgt := range codes {
			if src != tgt {
				m[NewPair(src, tgt)] = struct{}{}
			}
		}
	}
	return m
}

// DefaultMatrix returns the provider's documented glossary support: each
// glossary language combines with every other one, in both directions.
func DefaultMatrix() Matrix {
	return NewMatrix(GlossaryLanguages...)
}

// Supports reports whether the ordered pair is in the matrix.
func (m Matrix) Supports(p Pair) bool {
	_, ok := m[p]
	return ok
}
