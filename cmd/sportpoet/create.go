package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/sportpoet/sportpoet/cmd/sportpoet/internal/styles"
	"github.com/sportpoet/sportpoet/pkg/categories"
	"github.com/sportpoet/sportpoet/pkg/config"
	"github.com/sportpoet/sportpoet/pkg/credentials"
	"github.com/sportpoet/sportpoet/pkg/genscript"
	"github.com/sportpoet/sportpoet/pkg/poetdir"
)

const stampLayout = "20060102_150405"

func runCreate(args []string) error {
	fs := flag.NewFlagSet("create", flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: sportpoet create -sports a,b,c [flags]\n\nBuild a config from flags and write it with its reproduction script.\n\nFlags:\n")
		fs.PrintDefaults()
	}
	dirFlag := fs.String("dir", ".", "project directory")
	envFile := fs.String("env", ".env", "path to .env file (ignored if missing)")
	sportsFlag := fs.String("sports", "", "comma-separated sports (3-5)")
	categoryFlag := fs.String("category", "", "expand a sport category instead of -sports (see 'interactive' for the list)")
	mode := fs.String("mode", "", "generation mode: template or llm")
	provider := fs.String("provider", "", "LLM provider: together or huggingface")
	model := fs.String("model", "", "LLM model identifier")
	noRetry := fs.Bool("no-retry", false, "disable retry of failed generations")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if err := credentials.LoadDotEnv(*envFile); err != nil {
		return err
	}

	dir := poetdir.New(*dirFlag)

	builder, err := config.LoadDefault(dir.DefaultTemplatePath())
	if err != nil {
		return err
	}
	base := builder.Document()

	sports := splitSports(*sportsFlag)
	if *categoryFlag != "" {
		if len(sports) > 0 {
			return errors.New("-sports and -category are mutually exclusive")
		}
		sports = categories.Expand(*categoryFlag)
		if len(sports) == 0 {
			return fmt.Errorf("unknown sport category %q", *categoryFlag)
		}
	}

	builder.WithSports(sports)
	if *mode != "" {
		builder.WithGenerationMode(*mode)
	}
	if *provider != "" {
		builder.WithLLMProvider(*provider)
	}
	if *model != "" {
		builder.WithLLMModel(*model)
	}
	if *noRetry {
		builder.WithRetry(false)
	}

	if err := builder.Err(); err != nil {
		return err
	}

	warnMissingKey(dir, builder.Document())

	return emit(dir, builder, base)
}

// splitSports splits a comma-separated flag value. Entries are passed to the
// builder untrimmed; it owns normalization, so a stray empty entry produces
// the builder's own validation error rather than being silently dropped.
func splitSports(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}

	return strings.Split(s, ",")
}

// warnMissingKey prints a styled warning when the config enters LLM mode and
// no API key can be found. Missing keys never block config creation; the
// builder never calls the provider.
func warnMissingKey(dir poetdir.Dir, doc config.Document) {
	if doc.GenerationMode != config.ModeLLM || doc.LLM == nil {
		return
	}

	_, found, err := credentials.Lookup(doc.LLM.Provider, dir.LocalKeysPath())
	if err != nil || found {
		return
	}

	envVar, _ := credentials.EnvVar(doc.LLM.Provider)
	fmt.Println(styles.WarningStyle.Render("! no API key found for " + doc.LLM.Provider))
	fmt.Println(styles.DimStyle.Render("  set " + envVar + " or add it to " + dir.LocalKeysPath()))
}

// emit validates and persists the config, writes the companion reproduction
// script, and prints what changed relative to the default template.
func emit(dir poetdir.Dir, builder *config.Builder, base config.Document) error {
	doc, err := builder.Validate()
	if err != nil {
		return err
	}

	if err := poetdir.EnsureStructure(dir); err != nil {
		return err
	}

	stamp := time.Now().Format(stampLayout)

	configPath, err := builder.Save(dir.ConfigPath(stamp))
	if err != nil {
		return err
	}

	params := genscript.Params{
		Sports:    doc.Sports,
		Mode:      doc.GenerationMode,
		Provider:  config.DefaultProvider,
		Model:     config.DefaultModel,
		Retry:     doc.RetryEnabled,
		Timestamp: stamp,
	}
	if doc.LLM != nil {
		params.Provider = doc.LLM.Provider
		params.Model = doc.LLM.Model
	}

	script, err := genscript.Generate(params)
	if err != nil {
		return err
	}

	scriptPath := dir.ScriptPath(stamp)
	if err := os.WriteFile(scriptPath, []byte(script), 0o644); err != nil { //nolint:gosec // generated source, not secret
		return fmt.Errorf("write reproduction script: %w", err)
	}

	fmt.Println(styles.SuccessStyle.Render("✓ config written"), styles.DimStyle.Render(configPath))
	fmt.Println(styles.SuccessStyle.Render("✓ script written"), styles.DimStyle.Render(scriptPath))
	fmt.Print(changeReport(base, doc))

	return nil
}
