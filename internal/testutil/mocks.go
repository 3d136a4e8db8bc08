package testutil

import (
	"context"

	"codeberg.org/deepling/deepling/internal/deepl"
	"codeberg.org/deepling/deepling/internal/request"
)

// StubTransport records the compiled requests it receives and returns a
// canned result.
type StubTransport struct {
	Requests     []*request.Compiled
	Result       *deepl.Result
	Err          error
	Detected     []string
	DetectedLang string
}

// Translate implements the processor's Transport interface.
func (s *StubTransport) Translate(_ context.Context, req *request.Compiled) (*deepl.Result, error) {
	s.Requests = append(s.Requests, req)
	if s.Err != nil {
		return nil, s.Err
	}
	if s.Result != nil {
		return s.Result, nil
	}
	return &deepl.Result{Text: "stubbed", DetectedLang: req.SourceLang}, nil
}

// Detect implements the processor's Transport interface.
func (s *StubTransport) Detect(_ context.Context, text string) (string, error) {
	s.Detected = append(s.Detected, text)
	if s.Err != nil {
		return "", s.Err
	}
	if s.DetectedLang != "" {
		return s.DetectedLang, nil
	}
	return "EN", nil
}
