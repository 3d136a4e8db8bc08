package glossary

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/text/encoding/htmlindex"
)

var (
	// ErrInvalidLanguagePair is returned when the glossary is loaded for
	// identical source and target languages, or for a malformed code.
	ErrInvalidLanguagePair = errors.New("invalid glossary language pair")

	// ErrMalformedGlossary is returned when the tabular source cannot be
	// read or its header does not name the two expected language codes.
	ErrMalformedGlossary = errors.New("malformed glossary source")
)

// Store holds the parsed, deduplicated glossary entries for one language
// pair. It is read-only after Load returns, so concurrent use needs no
// locking.
type Store struct {
	SourceLang string
	TargetLang string

	// SkippedRows counts data rows dropped because a field was empty
	// after normalization, or the row was too short.
	SkippedRows int
	// DuplicatesDropped counts rows dropped because the exact
	// (source, target) pair was already present.
	DuplicatesDropped int

	entries []Entry
}

// Load parses a glossary from a two-column tabular source. The header row
// must name the source and target language codes (in either column
// order); each following row is one entry. Fields are trimmed and any
// embedded double quotes are removed. Rows left with an empty field are
// skipped and counted, exact duplicates are dropped keeping the
// first-seen entry.
func Load(r io.Reader, separator rune, encodingName, sourceLang, targetLang string) (*Store, error) {
	sourceLang = strings.ToUpper(strings.TrimSpace(sourceLang))
	targetLang = strings.ToUpper(strings.TrimSpace(targetLang))
	if sourceLang == targetLang {
		return nil, fmt.Errorf("%w: source and target are both %q", ErrInvalidLanguagePair, sourceLang)
	}

	decoded, err := decodeReader(r, encodingName)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedGlossary, err)
	}

	cr := csv.NewReader(decoded)
	cr.Comma = separator
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("%w: cannot read header: %v", ErrMalformedGlossary, err)
	}
	srcCol, tgtCol, err := matchHeader(header, sourceLang, targetLang)
	if err != nil {
		return nil, err
	}

	store := &Store{SourceLang: sourceLang, TargetLang: targetLang}
	seen := make(map[Entry]struct{})
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedGlossary, err)
		}
		if len(row) <= srcCol || len(row) <= tgtCol {
			store.SkippedRows++
			continue
		}
		entry := Entry{
			Source: normalizeTerm(row[srcCol]),
			Target: normalizeTerm(row[tgtCol]),
		}
		if entry.Source == "" || entry.Target == "" {
			store.SkippedRows++
			continue
		}
		if _, dup := seen[entry]; dup {
			store.DuplicatesDropped++
			continue
		}
		seen[entry] = struct{}{}
		store.entries = append(store.entries, entry)
	}

	return store, nil
}

// LoadFile opens path and loads it with Load.
func LoadFile(path string, separator rune, encodingName, sourceLang, targetLang string) (*Store, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedGlossary, err)
	}
	defer f.Close()

	return Load(f, separator, encodingName, sourceLang, targetLang)
}

// Entries returns a copy of the stored entries in insertion order.
func (s *Store) Entries() []Entry {
	out := make([]Entry, len(s.entries))
	copy(out, s.entries)
	return out
}

// Len returns the number of stored entries.
func (s *Store) Len() int {
	return len(s.entries)
}

// matchHeader maps the two language codes onto header columns,
// case-insensitively and in either order.
func matchHeader(header []string, sourceLang, targetLang string) (srcCol, tgtCol int, err error) {
	srcCol, tgtCol = -1, -1
	for i, name := range header {
		switch strings.ToUpper(strings.TrimSpace(name)) {
		case sourceLang:
			if srcCol == -1 {
				srcCol = i
			}
		case targetLang:
			if tgtCol == -1 {
				tgtCol = i
			}
		}
	}
	if srcCol == -1 || tgtCol == -1 {
		return 0, 0, fmt.Errorf("%w: header %v does not name both %s and %s",
			ErrMalformedGlossary, header, sourceLang, targetLang)
	}
	return srcCol, tgtCol, nil
}

// normalizeTerm strips embedded double quotes, then surrounding whitespace.
func normalizeTerm(s string) string {
	return strings.TrimSpace(strings.ReplaceAll(s, `"`, ""))
}

// decodeReader wraps r so the glossary bytes are decoded from the named
// text encoding. An empty name means UTF-8.
func decodeReader(r io.Reader, encodingName string) (io.Reader, error) {
	if encodingName == "" {
		return r, nil
	}
	enc, err := htmlindex.Get(encodingName)
	if err != nil {
		return nil, fmt.Errorf("unknown encoding %q: %v", encodingName, err)
	}
	return enc.NewDecoder().Reader(r), nil
}
