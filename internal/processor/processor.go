package processor

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"codeberg.org/deepling/deepling/internal"
	"codeberg.org/deepling/deepling/internal/cache"
	"codeberg.org/deepling/deepling/internal/cli"
	"codeberg.org/deepling/deepling/internal/deepl"
	"codeberg.org/deepling/deepling/internal/glossary"
	"codeberg.org/deepling/deepling/internal/language"
	"codeberg.org/deepling/deepling/internal/request"
	"codeberg.org/deepling/deepling/internal/translation"
)

// Transport sends a compiled request to the provider. internal/deepl is
// the production implementation; tests substitute a stub.
type Transport interface {
	Translate(ctx context.Context, req *request.Compiled) (*deepl.Result, error)
	Detect(ctx context.Context, text string) (string, error)
}

// Processor handles the main translation logic
type Processor struct {
	flags      *cli.Flags
	translator *translation.Translator
	transport  Transport
	store      *glossary.Store
	cache      *cache.Cache
}

// New creates a Processor from the parsed flags: it loads the glossary
// (if any), opens the cache, and wires the provider client.
func New(flags *cli.Flags) (*Processor, error) {
	p := &Processor{
		flags:      flags,
		translator: translation.NewTranslator(language.DefaultMatrix(), flags.GlossaryCap),
	}

	if flags.GlossaryFile != "" {
		sep := ';'
		if flags.GlossarySep != "" {
			sep = []rune(flags.GlossarySep)[0]
		}
		store, err := glossary.LoadFile(flags.GlossaryFile, sep, flags.GlossaryEncoding,
			flags.SourceLang, flags.TargetLang)
		if err != nil {
			return nil, fmt.Errorf("failed to load glossary: %w", err)
		}
		p.store = store
		slog.Info("glossary loaded",
			"file", flags.GlossaryFile,
			"entries", store.Len(),
			"pair", store.SourceLang+"-"+store.TargetLang)
	}

	if !flags.NoCache && !flags.DryRun {
		path := flags.CacheFile
		if path == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return nil, fmt.Errorf("failed to locate cache directory: %w", err)
			}
			path = filepath.Join(home, ".deepling.cache.db")
		}
		c, err := cache.Open(path)
		if err != nil {
			return nil, err
		}
		p.cache = c
	}

	// Detection always needs the provider, even on a dry run.
	if !flags.DryRun || flags.Detect {
		var opts []deepl.Option
		if endpoint := cli.GetEndpoint(); endpoint != "" {
			opts = append(opts, deepl.WithEndpoint(endpoint))
		}
		p.transport = deepl.NewClient(opts...)
	}

	return p, nil
}

// Close releases the cache handle.
func (p *Processor) Close() error {
	if p.cache != nil {
		return p.cache.Close()
	}
	return nil
}

// Run compiles and translates every text in order, printing results to
// stdout and diagnostics to the log.
func (p *Processor) Run(ctx context.Context, texts []string) error {
	for _, text := range texts {
		if err := p.processText(ctx, text); err != nil {
			return err
		}
	}
	return nil
}

func (p *Processor) processText(ctx context.Context, text string) error {
	if p.flags.Detect {
		lang, err := p.transport.Detect(ctx, text)
		if err != nil {
			return fmt.Errorf("language detection failed: %w", err)
		}
		fmt.Println(lang)
		return nil
	}

	req, diags, err := p.translator.Compile(text, p.flags.TargetLang, p.flags.SourceLang, translation.Options{
		Formality: p.flags.Formality,
		Glossary:  p.store,
	})
	if err != nil {
		return err
	}
	for _, d := range diags {
		slog.Warn(d.Message, "text", internal.Ellipsize(text, 40))
	}

	if p.flags.DryRun {
		printRequest(req)
		return nil
	}

	formality := string(req.Formality)
	if p.cache != nil {
		cached, ok, err := p.cache.Get(ctx, req.Text, req.SourceLang, req.TargetLang, formality)
		if err != nil {
			return err
		}
		if ok {
			slog.Debug("cache hit", "text", internal.Ellipsize(text, 40))
			fmt.Println(cached)
			return nil
		}
	}

	result, err := p.transport.Translate(ctx, req)
	if err != nil {
		return fmt.Errorf("translation failed: %w", err)
	}
	slog.Debug("translated",
		"detected", result.DetectedLang,
		"glossary_entries", len(req.Glossary))

	if p.cache != nil {
		if err := p.cache.Put(ctx, req.Text, req.SourceLang, req.TargetLang, formality, result.Text); err != nil {
			return err
		}
	}

	fmt.Println(result.Text)
	return nil
}

// printRequest writes a human-readable request description for dry runs.
func printRequest(req *request.Compiled) {
	fmt.Printf("%s -> %s (formality: %s)\n", req.SourceLang, req.TargetLang, req.Formality)
	fmt.Printf("text: %s\n", req.Text)
	if len(req.Glossary) == 0 {
		fmt.Println("glossary: none")
		return
	}
	fmt.Printf("glossary (%d entries):\n", len(req.Glossary))
	for _, e := range req.Glossary {
		fmt.Printf("  %s\t%s\n", e.Source, e.Target)
	}
}
