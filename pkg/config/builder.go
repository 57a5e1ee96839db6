package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// ValidationError is returned for every domain-rule violation: sports count,
// duplicates, empty entries, invalid enum values, and an incomplete LLM
// block. The message always states what was wrong, including the offending
// count or value where there is one.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string {
	return "config: " + e.Msg
}

// Builder accumulates configuration fields with fluent setters. Setters
// validate eagerly and latch the first error; once an error is latched the
// document no longer changes and Err, Validate, and Save report it. A builder
// is single-owner state and not safe for concurrent use.
type Builder struct {
	doc Document
	err error
}

// New returns a fresh builder: empty sports, retry enabled, template mode.
func New() *Builder {
	return &Builder{doc: DefaultDocument()}
}

// FromDocument wraps an existing document verbatim. No validation is
// performed until Validate or Save.
func FromDocument(doc Document) *Builder {
	return &Builder{doc: doc}
}

// Err returns the first validation error recorded by a setter, if any.
func (b *Builder) Err() error {
	return b.err
}

// Document returns a snapshot of the current document without validating it.
// Useful for diffing against a base before the document is finalized.
func (b *Builder) Document() Document {
	return b.doc
}

func (b *Builder) fail(format string, args ...any) *Builder {
	b.err = &ValidationError{Msg: fmt.Sprintf(format, args...)}

	return b
}

// WithSports validates and stores the sports list. Entries are normalized
// (trimmed, lowercased) and kept in input order. The list must hold 3-5
// unique, non-empty entries after normalization; violations are reported
// immediately rather than at Validate time.
func (b *Builder) WithSports(sports []string) *Builder {
	if b.err != nil {
		return b
	}

	if len(sports) < MinSports {
		return b.fail("must specify at least %d sports (got %d)", MinSports, len(sports))
	}
	if len(sports) > MaxSports {
		return b.fail("cannot specify more than %d sports (got %d)", MaxSports, len(sports))
	}

	normalized := make([]string, len(sports))
	seen := make(map[string]struct{}, len(sports))

	for i, s := range sports {
		n := strings.ToLower(strings.TrimSpace(s))
		if _, dup := seen[n]; dup {
			return b.fail("sports list contains duplicates")
		}
		seen[n] = struct{}{}
		normalized[i] = n
	}

	for _, n := range normalized {
		if n == "" {
			return b.fail("sports list contains empty values")
		}
	}

	b.doc.Sports = normalized

	return b
}

// WithRetry sets the retry flag. The flag is consumed by downstream
// execution, not by this package, so any value is accepted.
func (b *Builder) WithRetry(enabled bool) *Builder {
	if b.err != nil {
		return b
	}

	b.doc.RetryEnabled = enabled

	return b
}

// WithGenerationMode sets the generation mode. Switching to LLM mode injects
// the default provider/model block if none exists yet; an existing block,
// including one customized via WithLLMProvider or WithLLMModel, is left
// untouched. Completeness of the block is checked at Validate time, not here.
func (b *Builder) WithGenerationMode(mode string) *Builder {
	if b.err != nil {
		return b
	}

	if mode != ModeTemplate && mode != ModeLLM {
		return b.fail("invalid generation mode: %s (must be one of: %s, %s)", mode, ModeTemplate, ModeLLM)
	}

	b.doc.GenerationMode = mode

	if mode == ModeLLM && b.doc.LLM == nil {
		b.doc.LLM = defaultLLM()
	}

	return b
}

// WithLLMProvider sets the LLM provider and forces the generation mode to
// LLM. The block is materialized with defaults first if absent, then only
// the provider field is overwritten.
func (b *Builder) WithLLMProvider(provider string) *Builder {
	if b.err != nil {
		return b
	}

	if provider != ProviderTogether && provider != ProviderHuggingFace {
		return b.fail("invalid LLM provider: %s (must be one of: %s, %s)", provider, ProviderTogether, ProviderHuggingFace)
	}

	if b.doc.LLM == nil {
		b.doc.LLM = defaultLLM()
	}
	b.doc.LLM.Provider = provider
	b.doc.GenerationMode = ModeLLM

	return b
}

// WithLLMModel sets the LLM model and forces the generation mode to LLM.
// Model identifiers are provider-specific free text, so no enum check.
func (b *Builder) WithLLMModel(model string) *Builder {
	if b.err != nil {
		return b
	}

	if b.doc.LLM == nil {
		b.doc.LLM = defaultLLM()
	}
	b.doc.LLM.Model = model
	b.doc.GenerationMode = ModeLLM

	return b
}

// Validate checks that the document is complete and self-consistent and
// returns it. Sports must be set; in LLM mode the llm block must exist with
// both provider and model populated.
func (b *Builder) Validate() (Document, error) {
	if b.err != nil {
		return Document{}, b.err
	}

	if len(b.doc.Sports) == 0 {
		return Document{}, &ValidationError{Msg: "sports list is required"}
	}

	if b.doc.GenerationMode == ModeLLM {
		switch {
		case b.doc.LLM == nil:
			return Document{}, &ValidationError{Msg: "LLM configuration required for LLM mode"}
		case b.doc.LLM.Provider == "":
			return Document{}, &ValidationError{Msg: "LLM provider is required for LLM mode"}
		case b.doc.LLM.Model == "":
			return Document{}, &ValidationError{Msg: "LLM model is required for LLM mode"}
		}
	}

	return b.doc, nil
}

// Save validates the document, serializes it as 2-space-indented JSON, and
// writes it to path. Parent directories are the caller's responsibility.
// Returns the path written.
func (b *Builder) Save(path string) (string, error) {
	doc, err := b.Validate()
	if err != nil {
		return "", err
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", fmt.Errorf("config: marshal: %w", err)
	}
	data = append(data, '\n')

	if err := os.WriteFile(path, data, 0o644); err != nil { //nolint:gosec // config file, not secret
		return "", fmt.Errorf("config: write %s: %w", path, err)
	}

	return path, nil
}
