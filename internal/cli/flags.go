package cli

import "codeberg.org/deepling/deepling/internal/request"

// Flags holds all command-line flag values
type Flags struct {
	// General flags
	CfgFile    string
	SourceLang string
	TargetLang string
	Formality  string
	BatchFile  string
	LogLevel   string
	DryRun     bool
	Detect     bool

	// Glossary flags
	GlossaryFile     string
	GlossarySep      string
	GlossaryEncoding string
	GlossaryCap      int

	// Provider flags
	Endpoint string

	// Cache flags
	CacheFile string
	NoCache   bool
}

// NewFlags creates a new Flags instance with default values
func NewFlags() *Flags {
	return &Flags{
		SourceLang:       "auto",
		TargetLang:       "EN",
		Formality:        "auto",
		LogLevel:         "info",
		GlossarySep:      ";",
		GlossaryEncoding: "utf-8",
		GlossaryCap:      request.DefaultEntryCap,
	}
}
