// Package config builds, validates, and persists the JSON configuration
// document that describes a sports poetry generation run. The central type is
// Builder, a fluent accumulator that validates sports eagerly and the LLM
// block lazily, at Validate/Save time.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// Generation modes.
const (
	ModeTemplate = "template"
	ModeLLM      = "llm"
)

// LLM providers.
const (
	ProviderTogether    = "together"
	ProviderHuggingFace = "huggingface"
)

// Sports list bounds.
const (
	MinSports = 3
	MaxSports = 5
)

// Defaults injected when a builder first touches the LLM block.
const (
	DefaultProvider = ProviderTogether
	DefaultModel    = "meta-llama/Llama-3.3-70B-Instruct-Turbo-Free"
)

// Document is the persisted configuration. It marshals to the JSON wire
// format: top-level object with sports, retry_enabled, generation_mode, and
// an llm object that is present only when LLM settings have been applied.
type Document struct {
	Sports         []string   `json:"sports"`
	RetryEnabled   bool       `json:"retry_enabled"`
	GenerationMode string     `json:"generation_mode"`
	LLM            *LLMConfig `json:"llm,omitempty"`
}

// LLMConfig identifies the provider and model a downstream generator should
// call. This package never calls either; it only records the identifiers.
type LLMConfig struct {
	Provider string `json:"provider"`
	Model    string `json:"model"`
}

// DefaultDocument returns the shipped defaults: no sports yet, retry on,
// template mode. This is also the content of the default template file
// written by `sportpoet init`.
func DefaultDocument() Document {
	return Document{
		Sports:         []string{},
		RetryEnabled:   true,
		GenerationMode: ModeTemplate,
	}
}

func defaultLLM() *LLMConfig {
	return &LLMConfig{Provider: DefaultProvider, Model: DefaultModel}
}

// Load reads a JSON document from path and wraps it in a builder. The loaded
// document is taken verbatim; validation is deferred to Validate/Save.
func Load(path string) (*Builder, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is caller-provided configuration, not user input
	if err != nil {
		return nil, fmt.Errorf("config: load %s: %w", path, err)
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}

	return FromDocument(doc), nil
}

// ErrDefaultMissing signals that the shipped default template is absent. The
// template is part of the installation, so a missing file means the
// installation is corrupted rather than a recoverable not-found.
var ErrDefaultMissing = errors.New("config: default template missing, installation corrupted")

// LoadDefault loads the shipped default template. Unlike Load, a missing file
// yields ErrDefaultMissing instead of a generic file error.
func LoadDefault(path string) (*Builder, error) {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrDefaultMissing, path)
	}

	return Load(path)
}
