// Package credentials looks up the API key for an LLM provider. The
// environment is checked first, then a local key-value text file. Lookup is
// an optional precondition check before entering LLM mode; the core config
// builder never requires a key and never calls a provider.
package credentials

import (
	"errors"
	"fmt"
	"os"
	"regexp"

	"github.com/joho/godotenv"
)

// envVars maps a provider to the environment variable its key lives in.
var envVars = map[string]string{
	"together":    "TOGETHER_API_KEY",
	"huggingface": "HUGGINGFACE_API_TOKEN",
}

// EnvVar returns the environment variable name consulted for the given
// provider, or an error for an unknown provider.
func EnvVar(provider string) (string, error) {
	name, ok := envVars[provider]
	if !ok {
		return "", fmt.Errorf("credentials: unknown provider %q", provider)
	}

	return name, nil
}

// Lookup returns the API key for provider and whether one was found. The
// environment variable is consulted first; if unset, keyFile is scanned for
// a "NAME: value" or "NAME=value" line. A missing keyFile is not an error —
// absent is a normal answer.
func Lookup(provider, keyFile string) (string, bool, error) {
	name, err := EnvVar(provider)
	if err != nil {
		return "", false, err
	}

	if v := os.Getenv(name); v != "" {
		return v, true, nil
	}

	data, err := os.ReadFile(keyFile) //nolint:gosec // path is caller-provided configuration, not user input
	if errors.Is(err, os.ErrNotExist) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("credentials: read key file %s: %w", keyFile, err)
	}

	pattern := regexp.MustCompile(regexp.QuoteMeta(name) + `[:=]\s*(\S+)`)
	if m := pattern.FindSubmatch(data); m != nil {
		return string(m[1]), true, nil
	}

	return "", false, nil
}

// LoadDotEnv loads environment variables from the given .env file. A missing
// file is ignored so projects without one work unchanged.
func LoadDotEnv(path string) error {
	err := godotenv.Load(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("credentials: load env file %s: %w", path, err)
	}

	return nil
}
