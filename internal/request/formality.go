package request

import (
	"errors"
	"fmt"
)

// Formality is the tone-control parameter passed to the provider.
type Formality string

const (
	FormalityAuto     Formality = "auto"
	FormalityFormal   Formality = "formal"
	FormalityInformal Formality = "informal"
)

// ErrInvalidFormality is returned for formality values outside the three
// recognized options. It is fatal to the call.
var ErrInvalidFormality = errors.New("invalid formality")

// ParseFormality validates a formality string. The empty string defaults
// to auto.
func ParseFormality(s string) (Formality, error) {
	switch Formality(s) {
	case "":
		return FormalityAuto, nil
	case FormalityAuto, FormalityFormal, FormalityInformal:
		return Formality(s), nil
	default:
		return "", fmt.Errorf("%w: %q (want informal, formal or auto)", ErrInvalidFormality, s)
	}
}
