// Package genscript renders the reproduction script that accompanies every
// generated config: a standalone Go program that rebuilds an equivalent
// document from the shipped default template with the same parameters baked
// in as literals, stamped with a fresh timestamp at run time. Generation is
// pure text templating; no file I/O happens here.
package genscript

import (
	"fmt"
	"strconv"
	"strings"
	"text/template"
)

// Params are the resolved configuration values baked into the script.
// Timestamp is the human-readable creation stamp of the source config; it
// appears only in the header comment and is never reused by the script,
// which computes its own timestamp when run.
type Params struct {
	Sports    []string
	Mode      string
	Provider  string
	Model     string
	Retry     bool
	Timestamp string
}

const scriptTemplate = `// Reproduction script for the config generated at {{.Timestamp}}.
// Running it rebuilds an equivalent configuration with a fresh timestamp
// under output/configs/.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/sportpoet/sportpoet/pkg/config"
	"github.com/sportpoet/sportpoet/pkg/poetdir"
)

func main() {
	dir := poetdir.New(".")

	builder, err := config.LoadDefault(dir.DefaultTemplatePath())
	if err != nil {
		fatal(err)
	}

	builder.WithSports({{.SportsLiteral}})
{{- if .LLM}}
	builder.WithGenerationMode({{printf "%q" .Mode}})
	builder.WithLLMProvider({{printf "%q" .Provider}})
	builder.WithLLMModel({{printf "%q" .Model}})
{{- end}}
{{- if not .Retry}}
	builder.WithRetry(false)
{{- end}}

	if err := poetdir.EnsureStructure(dir); err != nil {
		fatal(err)
	}

	stamp := time.Now().Format("20060102_150405")

	path, err := builder.Save(dir.ConfigPath(stamp))
	if err != nil {
		fatal(err)
	}

	fmt.Println("config written to", path)
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "error: %v\n", err)
	os.Exit(1)
}
`

var tmpl = template.Must(template.New("script").Parse(scriptTemplate))

// Generate renders the reproduction script for the given parameters. The
// output is deterministic for identical inputs and is valid Go source;
// LLM-related calls appear only for LLM mode, and a retry call only when
// retry is disabled.
func Generate(p Params) (string, error) {
	data := struct {
		Params
		SportsLiteral string
		LLM           bool
	}{
		Params:        p,
		SportsLiteral: sportsLiteral(p.Sports),
		LLM:           p.Mode == "llm",
	}
	// Keep the header comment on one line whatever the caller passed.
	data.Timestamp = strings.Join(strings.Fields(p.Timestamp), " ")

	var b strings.Builder
	if err := tmpl.Execute(&b, data); err != nil {
		return "", fmt.Errorf("genscript: render: %w", err)
	}

	return b.String(), nil
}

// sportsLiteral renders the sports list as a Go slice literal whose value
// round-trips exactly to the input, order included.
func sportsLiteral(sports []string) string {
	quoted := make([]string, len(sports))
	for i, s := range sports {
		quoted[i] = strconv.Quote(s)
	}

	return "[]string{" + strings.Join(quoted, ", ") + "}"
}
