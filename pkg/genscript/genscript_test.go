package genscript

import (
	"go/parser"
	"go/token"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// parseScript asserts the generated script is syntactically valid Go.
func parseScript(t *testing.T, src string) {
	t.Helper()

	fset := token.NewFileSet()
	_, err := parser.ParseFile(fset, "generate_config.go", src, 0)
	require.NoError(t, err, "generated script must parse:\n%s", src)
}

func templateParams() Params {
	return Params{
		Sports:    []string{"basketball", "soccer", "tennis"},
		Mode:      "template",
		Provider:  "together",
		Model:     "meta-llama/Llama-3.3-70B-Instruct-Turbo-Free",
		Retry:     true,
		Timestamp: "20251115_120000",
	}
}

func TestGenerate_TemplateMode(t *testing.T) {
	script, err := Generate(templateParams())
	require.NoError(t, err)

	parseScript(t, script)

	assert.Contains(t, script, "package main")
	assert.Contains(t, script, "config.LoadDefault(")
	assert.Contains(t, script, `builder.WithSports([]string{"basketball", "soccer", "tennis"})`)
	assert.Contains(t, script, "time.Now().Format(")

	// Template mode carries no trace of LLM calls.
	assert.NotContains(t, script, "WithGenerationMode")
	assert.NotContains(t, script, "WithLLMProvider")
	assert.NotContains(t, script, "WithLLMModel")

	// Retry enabled is the builder default; no call appears.
	assert.NotContains(t, script, "WithRetry")
}

func TestGenerate_LLMMode(t *testing.T) {
	p := templateParams()
	p.Sports = []string{"hockey", "swimming", "volleyball"}
	p.Mode = "llm"
	p.Model = "X"

	script, err := Generate(p)
	require.NoError(t, err)

	parseScript(t, script)

	assert.Contains(t, script, `builder.WithGenerationMode("llm")`)
	assert.Contains(t, script, `builder.WithLLMProvider("together")`)
	assert.Contains(t, script, `builder.WithLLMModel("X")`)

	// Exactly one of each call.
	assert.Equal(t, 1, strings.Count(script, "WithLLMProvider"))
	assert.Equal(t, 1, strings.Count(script, "WithLLMModel"))
}

func TestGenerate_RetryDisabled(t *testing.T) {
	p := templateParams()
	p.Retry = false

	script, err := Generate(p)
	require.NoError(t, err)

	parseScript(t, script)
	assert.Contains(t, script, "builder.WithRetry(false)")
}

func TestGenerate_DocumentationTimestampInHeaderOnly(t *testing.T) {
	script, err := Generate(templateParams())
	require.NoError(t, err)

	assert.Contains(t, script, "// Reproduction script for the config generated at 20251115_120000.")

	// The stamp used for the output path is computed at run time, not
	// baked in.
	assert.NotContains(t, script, `"20251115_120000"`)
}

func TestGenerate_Deterministic(t *testing.T) {
	a, err := Generate(templateParams())
	require.NoError(t, err)

	b, err := Generate(templateParams())
	require.NoError(t, err)

	assert.Equal(t, a, b)
}

func TestGenerate_QuotesAwkwardValues(t *testing.T) {
	p := templateParams()
	p.Mode = "llm"
	p.Model = `model "with" quotes`
	p.Timestamp = "multi\nline stamp"

	script, err := Generate(p)
	require.NoError(t, err)

	parseScript(t, script)
	assert.Contains(t, script, "multi line stamp")
}
