package translation

import (
	"errors"
	"fmt"

	"codeberg.org/deepling/deepling/internal/glossary"
	"codeberg.org/deepling/deepling/internal/language"
	"codeberg.org/deepling/deepling/internal/request"
)

// Translator compiles translation requests. It is stateless across
// calls and safe for concurrent use.
type Translator struct {
	validator *language.Validator
	compiler  request.Compiler
}

// Options carries the optional parts of a translation call.
type Options struct {
	// Formality is one of informal, formal or auto; empty means auto.
	Formality string
	// Glossary is an optional term store loaded for the same language
	// pair as the request.
	Glossary *glossary.Store
}

// NewTranslator creates a Translator against the given provider
// capabilities: a glossary support matrix and a per-request entry cap.
func NewTranslator(matrix language.Matrix, entryCap int) *Translator {
	return &Translator{
		validator: language.NewValidator(matrix),
		compiler:  request.NewCompiler(entryCap),
	}
}

// NewDefaultTranslator creates a Translator with the provider's
// documented capabilities.
func NewDefaultTranslator() *Translator {
	return NewTranslator(language.DefaultMatrix(), request.DefaultEntryCap)
}

// Compile assembles the provider-ready request for translating text
// from sourceLang into targetLang. Fatal conditions (invalid formality)
// return an error and no request. Recoverable glossary conditions drop
// or shrink the glossary and are reported as diagnostics; they never
// block the translation.
func (t *Translator) Compile(text, targetLang, sourceLang string, opts Options) (*request.Compiled, []Diagnostic, error) {
	formality, err := request.ParseFormality(opts.Formality)
	if err != nil {
		return nil, nil, err
	}

	req := &request.Compiled{
		Text:       text,
		SourceLang: language.Normalize(sourceLang),
		TargetLang: language.Normalize(targetLang),
		Formality:  formality,
	}

	var diags []Diagnostic
	if opts.Glossary != nil {
		diags, err = t.attachGlossary(req, opts.Glossary)
		if err != nil {
			return nil, nil, err
		}
	}
	return req, diags, nil
}

// attachGlossary runs the validator, the relevance filter and the
// compiler, mutating req. It returns the diagnostics collected along
// the way. An unsupported pair or a direction mismatch drops the
// glossary and is reported as a diagnostic; a malformed or equal pair
// is an error.
func (t *Translator) attachGlossary(req *request.Compiled, store *glossary.Store) ([]Diagnostic, error) {
	var diags []Diagnostic
	if store.SkippedRows > 0 {
		diags = append(diags, Diagnostic{
			Kind:    DiagSkippedRows,
			Message: fmt.Sprintf("glossary: %d malformed rows were skipped at load time", store.SkippedRows),
		})
	}
	if store.DuplicatesDropped > 0 {
		diags = append(diags, Diagnostic{
			Kind:    DiagDuplicatesDropped,
			Message: fmt.Sprintf("glossary: %d duplicate entries were dropped at load time", store.DuplicatesDropped),
		})
	}

	if err := t.validator.Validate(store.SourceLang, store.TargetLang); err != nil {
		if !errors.Is(err, language.ErrUnsupportedPair) {
			return nil, err
		}
		// Translation availability must not depend on glossary
		// availability: drop the glossary and report.
		return append(diags, Diagnostic{
			Kind:    DiagUnsupportedPair,
			Message: fmt.Sprintf("glossary dropped: %v", err),
		}), nil
	}
	if store.SourceLang != req.SourceLang || store.TargetLang != req.TargetLang {
		return append(diags, Diagnostic{
			Kind: DiagPairMismatch,
			Message: fmt.Sprintf("glossary dropped: loaded for %s-%s but translating %s-%s",
				store.SourceLang, store.TargetLang, req.SourceLang, req.TargetLang),
		}), nil
	}

	relevant := store.Relevant(req.Text)
	selected, truncated := t.compiler.Compile(relevant)
	if truncated {
		diags = append(diags, Diagnostic{
			Kind: DiagGlossaryTruncated,
			Message: fmt.Sprintf("glossary truncated: the limit of %d entries per request was reached, %d remaining entries are ignored for this call",
				t.compiler.Cap, len(relevant)-len(selected)),
		})
	}
	req.Glossary = selected
	return diags, nil
}
