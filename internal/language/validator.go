package language

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidLanguageCode is returned for codes that are not two
	// ASCII letters after normalization.
	ErrInvalidLanguageCode = errors.New("invalid language code")

	// ErrInvalidLanguagePair is returned when source and target are the
	// same language.
	ErrInvalidLanguagePair = errors.New("source and target language must differ")

	// ErrUnsupportedPair is returned for well-formed pairs the provider
	// does not support glossaries for. Callers treat this as
	// recoverable: the glossary is dropped, the translation proceeds.
	ErrUnsupportedPair = errors.New("language pair not supported for glossaries")
)

// Validator checks requested pairs against an injected support matrix.
type Validator struct {
	matrix Matrix
}

// NewValidator returns a Validator backed by the given support matrix.
func NewValidator(matrix Matrix) *Validator {
	return &Validator{matrix: matrix}
}

// Validate checks that both codes are well formed, distinct, and that
// the ordered pair is on the provider's glossary support matrix.
func (v *Validator) Validate(source, target string) error {
	p := NewPair(source, target)
	if !ValidCode(p.Source) {
		return fmt.Errorf("%w: %q", ErrInvalidLanguageCode, source)
	}
	if !ValidCode(p.Target) {
		return fmt.Errorf("%w: %q", ErrInvalidLanguageCode, target)
	}
	if p.Source == p.Target {
		return fmt.Errorf("%w: got %s twice", ErrInvalidLanguagePair, p.Source)
	}
	if !v.matrix.Supports(p) {
		return fmt.Errorf("%w: %s", ErrUnsupportedPair, p)
	}
	return nil
}
