package cli

import (
	"strconv"
	"testing"

	"github.com/spf13/pflag"

	"codeberg.org/deepling/deepling/internal/request"
)

func TestNewFlags_Defaults(t *testing.T) {
	flags := NewFlags()

	if flags.SourceLang != "auto" {
		t.Errorf("SourceLang = %q, want auto", flags.SourceLang)
	}
	if flags.Formality != "auto" {
		t.Errorf("Formality = %q, want auto", flags.Formality)
	}
	if flags.GlossarySep != ";" {
		t.Errorf("GlossarySep = %q, want ;", flags.GlossarySep)
	}
	if flags.GlossaryEncoding != "utf-8" {
		t.Errorf("GlossaryEncoding = %q, want utf-8", flags.GlossaryEncoding)
	}
	if flags.GlossaryCap != request.DefaultEntryCap {
		t.Errorf("GlossaryCap = %d, want %d", flags.GlossaryCap, request.DefaultEntryCap)
	}
}

func TestCreateRootCommand(t *testing.T) {
	flags := NewFlags()
	cmd := CreateRootCommand(flags)

	if cmd.Use != "deepling [text]" {
		t.Errorf("Use = %q", cmd.Use)
	}
	for _, name := range []string{"target", "source", "formality", "glossary",
		"glossary-sep", "glossary-encoding", "glossary-cap", "batch", "dry-run",
		"detect", "cache", "no-cache", "endpoint", "log-level"} {
		if cmd.Flags().Lookup(name) == nil {
			t.Errorf("Flag --%s not registered", name)
		}
	}
	if cmd.PersistentFlags().Lookup("config") == nil {
		t.Error("Persistent flag --config not registered")
	}
}

func TestFlagDefaults(t *testing.T) {
	cmd := CreateRootCommand(NewFlags())

	var capFlag *pflag.Flag = cmd.Flags().Lookup("glossary-cap")
	if capFlag == nil {
		t.Fatal("Flag --glossary-cap not registered")
	}
	if want := strconv.Itoa(request.DefaultEntryCap); capFlag.DefValue != want {
		t.Errorf("--glossary-cap default = %q, want %q", capFlag.DefValue, want)
	}

	var srcFlag *pflag.Flag = cmd.Flags().Lookup("source")
	if srcFlag == nil || srcFlag.DefValue != "auto" {
		t.Errorf("--source default = %v, want auto", srcFlag)
	}
	if srcFlag.Shorthand != "s" {
		t.Errorf("--source shorthand = %q, want s", srcFlag.Shorthand)
	}
}

func TestRootCommand_FlagParsing(t *testing.T) {
	flags := NewFlags()
	cmd := CreateRootCommand(flags)

	err := cmd.ParseFlags([]string{
		"--target", "FR",
		"--source", "EN",
		"--formality", "formal",
		"--glossary", "terms.csv",
		"--glossary-cap", "5",
	})
	if err != nil {
		t.Fatalf("ParseFlags failed: %v", err)
	}

	if flags.TargetLang != "FR" || flags.SourceLang != "EN" {
		t.Errorf("Parsed languages = %s-%s, want EN-FR", flags.SourceLang, flags.TargetLang)
	}
	if flags.Formality != "formal" {
		t.Errorf("Formality = %q, want formal", flags.Formality)
	}
	if flags.GlossaryFile != "terms.csv" || flags.GlossaryCap != 5 {
		t.Errorf("Glossary flags = %q / %d", flags.GlossaryFile, flags.GlossaryCap)
	}
}
