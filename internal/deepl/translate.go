package deepl

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"codeberg.org/deepling/deepling/internal/request"
)

// autoSource is the wire value for letting the endpoint detect the
// source language.
const autoSource = "AUTO"

// Result is a completed translation.
type Result struct {
	Text         string
	DetectedLang string
}

type langPreference struct {
	Weight  map[string]any `json:"weight"`
	Default string         `json:"default"`
}

type handleJobsLang struct {
	Preference         *langPreference `json:"preference,omitempty"`
	SourceLangComputed string          `json:"source_lang_computed,omitempty"`
	SourceLangUser     string          `json:"source_lang_user_selected,omitempty"`
	TargetLang         string          `json:"target_lang"`
	UserPreferredLangs []string        `json:"user_preferred_langs,omitempty"`
}

type termbaseParams struct {
	Dictionary string `json:"dictionary"`
}

type commonJobParams struct {
	BrowserType int            `json:"browserType"`
	Formality   string         `json:"formality,omitempty"`
	Mode        string         `json:"mode"`
	Termbase    termbaseParams `json:"termbase"`
}

type handleJobsParams struct {
	Jobs            []job           `json:"jobs"`
	Lang            handleJobsLang  `json:"lang"`
	Priority        int             `json:"priority"`
	CommonJobParams commonJobParams `json:"commonJobParams"`
	Timestamp       int64           `json:"timestamp"`
}

type handleJobsResult struct {
	SourceLang   string `json:"source_lang"`
	Translations []struct {
		Beams []struct {
			Sentences []struct {
				Text string `json:"text"`
			} `json:"sentences"`
		} `json:"beams"`
	} `json:"translations"`
}

type splitResult struct {
	SplittedTexts [][]string `json:"splitted_texts"`
	Lang          string     `json:"lang"`
}

// Translate sends a compiled request to the endpoint and returns the
// translated text together with the source language the endpoint
// reported.
func (c *Client) Translate(ctx context.Context, req *request.Compiled) (*Result, error) {
	sentences, computedLang, err := c.splitIntoSentences(ctx, req.Text, req.SourceLang, req.TargetLang)
	if err != nil {
		// The endpoint splitter is an optimization; fall back to the
		// local one.
		sentences = splitSentences(req.Text)
		computedLang = ""
	}
	if len(sentences) == 0 {
		return &Result{Text: "", DetectedLang: req.SourceLang}, nil
	}

	lang := handleJobsLang{
		Preference: &langPreference{Weight: map[string]any{}, Default: "default"},
		TargetLang: req.TargetLang,
	}
	if req.SourceLang == autoSource {
		lang.SourceLangComputed = computedLang
		lang.UserPreferredLangs = []string{req.TargetLang}
		if computedLang != "" {
			lang.UserPreferredLangs = append(lang.UserPreferredLangs, computedLang)
		}
	} else {
		lang.SourceLangComputed = req.SourceLang
		lang.SourceLangUser = req.SourceLang
	}

	formality := ""
	if req.Formality != request.FormalityAuto {
		formality = string(req.Formality)
	}

	params := handleJobsParams{
		Jobs:     buildJobs(sentences),
		Lang:     lang,
		Priority: 1,
		CommonJobParams: commonJobParams{
			BrowserType: 1,
			Formality:   formality,
			Mode:        "translate",
			Termbase:    termbaseParams{Dictionary: formatTermbase(req.Glossary)},
		},
		Timestamp: requestTimestamp(sentences, time.Now()),
	}

	raw, err := c.call(ctx, "LMT_handle_jobs", params)
	if err != nil {
		return nil, err
	}

	var result handleJobsResult
	if err := json.Unmarshal(raw, &result); err != nil {
		return nil, fmt.Errorf("deepl: cannot decode translation result: %w", err)
	}

	var parts []string
	for _, tr := range result.Translations {
		if len(tr.Beams) == 0 || len(tr.Beams[0].Sentences) == 0 {
			continue
		}
		if text := tr.Beams[0].Sentences[0].Text; text != "" {
			parts = append(parts, text)
		}
	}

	detected := result.SourceLang
	if detected == "" {
		detected = req.SourceLang
	}
	return &Result{Text: strings.Join(parts, " "), DetectedLang: detected}, nil
}

// Detect asks the endpoint for the source language of text by running a
// probe translation.
func (c *Client) Detect(ctx context.Context, text string) (string, error) {
	sentences, computedLang, err := c.splitIntoSentences(ctx, text, autoSource, "EN")
	if err != nil {
		sentences = splitSentences(text)
		computedLang = ""
	}
	if len(sentences) == 0 {
		return "", fmt.Errorf("deepl: nothing to detect in empty text")
	}

	lang := handleJobsLang{
		Preference:         &langPreference{Weight: map[string]any{}, Default: "default"},
		TargetLang:         "FR",
		UserPreferredLangs: []string{"FR"},
	}
	if computedLang != "" {
		lang.SourceLangComputed = computedLang
		lang.UserPreferredLangs = append(lang.UserPreferredLangs, computedLang)
	} else {
		lang.SourceLangUser = autoSource
	}

	params := handleJobsParams{
		Jobs:      buildJobs(sentences),
		Lang:      lang,
		Priority:  1,
		Timestamp: requestTimestamp(sentences, time.Now()),
		CommonJobParams: commonJobParams{
			BrowserType: 1,
			Mode:        "translate",
		},
	}

	raw, err := c.call(ctx, "LMT_handle_jobs", params)
	if err != nil {
		return "", err
	}
	var result handleJobsResult
	if err := json.Unmarshal(raw, &result); err != nil {
		return "", fmt.Errorf("deepl: cannot decode detection result: %w", err)
	}
	return result.SourceLang, nil
}

// splitIntoSentences asks the endpoint to split text, returning the
// sentences and the language it computed for them.
func (c *Client) splitIntoSentences(ctx context.Context, text, sourceLang, targetLang string) ([]string, string, error) {
	params := map[string]any{
		"texts": []string{strings.TrimSpace(text)},
		"lang": map[string]any{
			"lang_user_selected":   sourceLang,
			"user_preferred_langs": []string{targetLang},
		},
	}
	raw, err := c.call(ctx, "LMT_split_into_sentences", params)
	if err != nil {
		return nil, "", err
	}
	var result splitResult
	if err := json.Unmarshal(raw, &result); err != nil {
		return nil, "", fmt.Errorf("deepl: cannot decode split result: %w", err)
	}
	if len(result.SplittedTexts) == 0 {
		return nil, "", fmt.Errorf("deepl: split returned no sentences")
	}
	return result.SplittedTexts[0], result.Lang, nil
}
