package request

import (
	"errors"
	"fmt"
	"reflect"
	"testing"

	"codeberg.org/deepling/deepling/internal/glossary"
)

func makeEntries(n int) []glossary.Entry {
	entries := make([]glossary.Entry, n)
	for i := range entries {
		entries[i] = glossary.Entry{
			Source: fmt.Sprintf("term-%02d", i),
			Target: fmt.Sprintf("terme-%02d", i),
		}
	}
	return entries
}

func TestCompile_UnderCap(t *testing.T) {
	c := NewCompiler(10)
	entries := makeEntries(3)

	selected, truncated := c.Compile(entries)

	if truncated {
		t.Error("Expected truncated = false")
	}
	if !reflect.DeepEqual(selected, entries) {
		t.Errorf("Compile() = %v, want %v", selected, entries)
	}
}

func TestCompile_AtCap(t *testing.T) {
	c := NewCompiler(10)
	entries := makeEntries(10)

	selected, truncated := c.Compile(entries)

	if truncated {
		t.Error("Expected truncated = false at exactly the cap")
	}
	if len(selected) != 10 {
		t.Errorf("Expected 10 entries, got %d", len(selected))
	}
}

func TestCompile_OverCap(t *testing.T) {
	c := NewCompiler(10)
	entries := makeEntries(12)

	selected, truncated := c.Compile(entries)

	if !truncated {
		t.Error("Expected truncated = true")
	}
	// Exactly the first cap entries, in their existing order.
	if !reflect.DeepEqual(selected, entries[:10]) {
		t.Errorf("Compile() = %v, want first 10 of input", selected)
	}
}

func TestCompile_Idempotent(t *testing.T) {
	c := NewCompiler(5)
	entries := makeEntries(8)

	first, _ := c.Compile(entries)
	second, _ := c.Compile(entries)

	if !reflect.DeepEqual(first, second) {
		t.Error("Compiling the same input twice gave different results")
	}
}

func TestCompile_DoesNotMutateInput(t *testing.T) {
	c := NewCompiler(2)
	entries := makeEntries(4)
	backup := makeEntries(4)

	selected, _ := c.Compile(entries)
	selected[0].Source = "mutated"

	if !reflect.DeepEqual(entries, backup) {
		t.Error("Compile() mutated its input")
	}
}

func TestCompile_Empty(t *testing.T) {
	c := NewCompiler(10)

	selected, truncated := c.Compile(nil)

	if truncated {
		t.Error("Expected truncated = false for empty input")
	}
	if len(selected) != 0 {
		t.Errorf("Expected no entries, got %v", selected)
	}
}

func TestNewCompiler_DefaultCap(t *testing.T) {
	if c := NewCompiler(0); c.Cap != DefaultEntryCap {
		t.Errorf("Expected fallback to DefaultEntryCap, got %d", c.Cap)
	}
	if c := NewCompiler(3); c.Cap != 3 {
		t.Errorf("Expected cap 3, got %d", c.Cap)
	}
}

func TestParseFormality(t *testing.T) {
	tests := []struct {
		in      string
		want    Formality
		wantErr bool
	}{
		{"", FormalityAuto, false},
		{"auto", FormalityAuto, false},
		{"formal", FormalityFormal, false},
		{"informal", FormalityInformal, false},
		{"loud", "", true},
		{"Formal", "", true},
	}

	for _, tt := range tests {
		got, err := ParseFormality(tt.in)
		if tt.wantErr {
			if !errors.Is(err, ErrInvalidFormality) {
				t.Errorf("ParseFormality(%q) error = %v, want ErrInvalidFormality", tt.in, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseFormality(%q) failed: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseFormality(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
