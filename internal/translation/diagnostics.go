package translation

// DiagnosticKind classifies a non-fatal condition noticed while
// compiling a request.
type DiagnosticKind int

const (
	// DiagUnsupportedPair: the glossary could not be attached because
	// its language pair is off the provider's support matrix; the
	// request proceeds without a glossary.
	DiagUnsupportedPair DiagnosticKind = iota

	// DiagPairMismatch: the glossary was loaded for a different
	// direction than the requested translation; it is dropped.
	DiagPairMismatch

	// DiagGlossaryTruncated: more relevant entries than the provider
	// cap; only the first cap entries were kept.
	DiagGlossaryTruncated

	// DiagSkippedRows: the glossary source contained rows that were
	// dropped at load time for empty fields.
	DiagSkippedRows

	// DiagDuplicatesDropped: the glossary source contained exact
	// duplicate pairs; only the first occurrence was kept.
	DiagDuplicatesDropped
)

// Diagnostic is an advisory event attached to a successful compilation.
// Diagnostics are returned to the caller, never logged from here.
type Diagnostic struct {
	Kind    DiagnosticKind
	Message string
}

func (d Diagnostic) String() string {
	return d.Message
}
