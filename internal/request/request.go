package request

import "codeberg.org/deepling/deepling/internal/glossary"

// Compiled is the provider-ready request description: the text to
// translate, the language direction, the tone control, and at most the
// provider cap of glossary entries. It is handed to the transport
// collaborator and has no further lifecycle here.
type Compiled struct {
	Text       string
	SourceLang string
	TargetLang string
	Formality  Formality
	Glossary   []glossary.Entry
}
