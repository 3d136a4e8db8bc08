package deepl

import (
	"regexp"
	"strings"
	"time"

	"codeberg.org/deepling/deepling/internal/glossary"
)

// sentenceBoundary matches a sentence-ending character followed by
// spaces; the fallback splitter cuts right after the punctuation.
var sentenceBoundary = regexp.MustCompile(`[.!:?] +`)

// splitSentences is the local fallback used when the split endpoint is
// unavailable.
func splitSentences(text string) []string {
	var out []string
	start := 0
	for _, loc := range sentenceBoundary.FindAllStringIndex(text, -1) {
		out = append(out, text[start:loc[0]+1])
		start = loc[1]
	}
	if start < len(text) {
		out = append(out, text[start:])
	}
	return out
}

type jobSentence struct {
	Text   string `json:"text"`
	ID     int    `json:"id"`
	Prefix string `json:"prefix"`
}

type job struct {
	Kind               string        `json:"kind"`
	PreferredNumBeams  int           `json:"preferred_num_beams"`
	RawEnContextAfter  []string      `json:"raw_en_context_after"`
	RawEnContextBefore []string      `json:"raw_en_context_before"`
	Sentences          []jobSentence `json:"sentences"`
}

// buildJobs builds one job per sentence. Each job carries up to five
// preceding sentences and the next one as context.
func buildJobs(sentences []string) []job {
	jobs := make([]job, 0, len(sentences))
	before := []string{}
	for i, sentence := range sentences {
		if i > 0 {
			before = append(before, sentences[i-1])
			if len(before) > 5 {
				before = before[1:]
			}
		}
		after := []string{}
		if i+1 < len(sentences) {
			after = append(after, sentences[i+1])
		}
		contextBefore := make([]string, len(before))
		copy(contextBefore, before)
		jobs = append(jobs, job{
			Kind:               "default",
			PreferredNumBeams:  4,
			RawEnContextAfter:  after,
			RawEnContextBefore: contextBefore,
			Sentences:          []jobSentence{{Text: sentence, ID: 0, Prefix: ""}},
		})
	}
	return jobs
}

// requestTimestamp aligns the millisecond timestamp on the count of 'i'
// runes in the sentences, as the web client does.
func requestTimestamp(sentences []string, now time.Time) int64 {
	iCount := int64(1)
	for _, s := range sentences {
		iCount += int64(strings.Count(s, "i"))
	}
	ts := now.UnixMilli()/100*100 + 1000
	return ts + (iCount - ts%iCount)
}

// formatTermbase serializes glossary entries into the tab-separated
// dictionary the endpoint expects, one entry per line.
func formatTermbase(entries []glossary.Entry) string {
	var b strings.Builder
	for i, e := range entries {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(e.Source)
		b.WriteByte('\t')
		b.WriteString(e.Target)
	}
	return b.String()
}
