package request

import "codeberg.org/deepling/deepling/internal/glossary"

// DefaultEntryCap is the provider's documented limit on glossary entries
// per request.
const DefaultEntryCap = 10

// Compiler enforces the provider's per-request glossary entry cap. The
// cap is injected so tests can run against alternate provider limits.
type Compiler struct {
	Cap int
}

// NewCompiler returns a Compiler for the given cap. A non-positive cap
// falls back to DefaultEntryCap.
func NewCompiler(entryCap int) Compiler {
	if entryCap <= 0 {
		entryCap = DefaultEntryCap
	}
	return Compiler{Cap: entryCap}
}

// Compile selects at most Cap entries from the relevance-filtered input.
// Selection is the first Cap entries in their existing order; truncation
// is never randomized and never re-sorted by any heuristic. The input is
// not mutated.
func (c Compiler) Compile(entries []glossary.Entry) (selected []glossary.Entry, truncated bool) {
	n := len(entries)
	if n > c.Cap {
		n = c.Cap
		truncated = true
	}
	selected = make([]glossary.Entry, n)
	copy(selected, entries[:n])
	return selected, truncated
}
