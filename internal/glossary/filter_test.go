package glossary

import (
	"reflect"
	"strings"
	"testing"
)

func loadStore(t *testing.T, csv string) *Store {
	t.Helper()
	store, err := Load(strings.NewReader(csv), ';', "", "EN", "FR")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	return store
}

func TestRelevant(t *testing.T) {
	store := loadStore(t, "EN;FR\n"+
		"Hello !;Bonjour !\n"+
		"A beautiful text;Un magnifique texte\n")

	got := store.Relevant("Hello ! Today is great.")

	want := []Entry{{Source: "Hello !", Target: "Bonjour !"}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Relevant() = %v, want %v", got, want)
	}
}

func TestRelevant_PreservesStoreOrder(t *testing.T) {
	store := loadStore(t, "EN;FR\n"+
		"world;monde\n"+
		"Hello;Bonjour\n"+
		"o w;x\n")

	got := store.Relevant("Hello world")

	// Matches keep insertion order, never re-sorted by length or
	// position in the text.
	want := []Entry{
		{Source: "world", Target: "monde"},
		{Source: "Hello", Target: "Bonjour"},
		{Source: "o w", Target: "x"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Relevant() = %v, want %v", got, want)
	}
}

func TestRelevant_CaseSensitive(t *testing.T) {
	store := loadStore(t, "EN;FR\nhello;salut\n")

	if got := store.Relevant("Hello there"); got != nil {
		t.Errorf("Expected no match for different case, got %v", got)
	}
}

func TestRelevant_NoMatches(t *testing.T) {
	store := loadStore(t, "EN;FR\nHello;Bonjour\n")

	if got := store.Relevant("Nothing relevant here"); len(got) != 0 {
		t.Errorf("Expected empty result, got %v", got)
	}
}

func TestRelevant_DoesNotMutateStore(t *testing.T) {
	store := loadStore(t, "EN;FR\nHello;Bonjour\nWorld;Monde\n")

	before := store.Entries()
	store.Relevant("Hello World")
	after := store.Entries()

	if !reflect.DeepEqual(before, after) {
		t.Error("Relevant() mutated the store")
	}
}
