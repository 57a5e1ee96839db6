package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/sportpoet/sportpoet/cmd/sportpoet/internal/styles"
	"github.com/sportpoet/sportpoet/pkg/categories"
	"github.com/sportpoet/sportpoet/pkg/config"
	"github.com/sportpoet/sportpoet/pkg/credentials"
	"github.com/sportpoet/sportpoet/pkg/poetdir"
)

// manualEntry is the sports-source option that skips category expansion.
const manualEntry = "type sports manually"

type wizardAnswers struct {
	Sports   []string
	Mode     string
	Provider string
}

func runInteractive(args []string) error {
	fs := flag.NewFlagSet("interactive", flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: sportpoet interactive [flags]\n\nBuild a config through guided prompts.\n\nFlags:\n")
		fs.PrintDefaults()
	}
	dirFlag := fs.String("dir", ".", "project directory")
	envFile := fs.String("env", ".env", "path to .env file (ignored if missing)")
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

	fmt.Println(styles.TitleStyle.Render("Sports Poetry Configuration Builder"))

	ans, err := runWizard(dir)
	if err != nil {
		return err
	}

	builder.WithSports(ans.Sports)
	if ans.Mode == config.ModeLLM {
		builder.WithGenerationMode(config.ModeLLM)
		builder.WithLLMProvider(ans.Provider)
	}

	if err := builder.Err(); err != nil {
		return err
	}

	return emit(dir, builder, base)
}

func runWizard(dir poetdir.Dir) (wizardAnswers, error) {
	var ans wizardAnswers

	if err := wizardSports(&ans); err != nil {
		return ans, err
	}

	if err := wizardMode(&ans); err != nil {
		return ans, err
	}

	if ans.Mode == config.ModeLLM {
		if err := wizardProvider(dir, &ans); err != nil {
			return ans, err
		}
	}

	return ans, nil
}

// wizardSports asks for the sports list, either typed comma-separated or
// picked from a category of the embedded catalog. Both paths validate with
// the builder's own rules so errors read the same as everywhere else.
func wizardSports(ans *wizardAnswers) error {
	source := manualEntry
	options := []huh.Option[string]{huh.NewOption(manualEntry, manualEntry)}
	for _, name := range categories.List() {
		options = append(options, huh.NewOption("category: "+name, name))
	}

	if err := huh.NewForm(huh.NewGroup(
		huh.NewSelect[string]().
			Title("How do you want to pick sports?").
			Options(options...).
			Value(&source),
	)).Run(); err != nil {
		return err
	}

	if source == manualEntry {
		var raw string
		if err := huh.NewForm(huh.NewGroup(
			huh.NewInput().
				Title("Enter 3-5 sports (comma-separated)").
				Placeholder("basketball, soccer, tennis").
				Validate(func(s string) error {
					return config.New().WithSports(splitSports(s)).Err()
				}).
				Value(&raw),
		)).Run(); err != nil {
			return err
		}

		ans.Sports = splitSports(raw)

		return nil
	}

	var picked []string
	if err := huh.NewForm(huh.NewGroup(
		huh.NewMultiSelect[string]().
			Title("Pick 3-5 sports").
			Options(huh.NewOptions(categories.Expand(source)...)...).
			Validate(func(sel []string) error {
				return config.New().WithSports(sel).Err()
			}).
			Value(&picked),
	)).Run(); err != nil {
		return err
	}

	ans.Sports = picked

	return nil
}

func wizardMode(ans *wizardAnswers) error {
	ans.Mode = config.ModeTemplate

	return huh.NewForm(huh.NewGroup(
		huh.NewSelect[string]().
			Title("Generation mode").
			Options(
				huh.NewOption("template (fast, deterministic)", config.ModeTemplate),
				huh.NewOption("llm (creative, requires API key)", config.ModeLLM),
			).
			Value(&ans.Mode),
	)).Run()
}

// wizardProvider asks for the LLM provider and, when no API key can be
// found for it, offers to fall back to template mode instead of producing a
// config the downstream generator cannot run.
func wizardProvider(dir poetdir.Dir, ans *wizardAnswers) error {
	ans.Provider = config.ProviderTogether

	if err := huh.NewForm(huh.NewGroup(
		huh.NewSelect[string]().
			Title("LLM provider").
			Options(
				huh.NewOption("together (recommended)", config.ProviderTogether),
				huh.NewOption("huggingface", config.ProviderHuggingFace),
			).
			Value(&ans.Provider),
	)).Run(); err != nil {
		return err
	}

	_, found, err := credentials.Lookup(ans.Provider, dir.LocalKeysPath())
	if err != nil {
		return err
	}
	if found {
		return nil
	}

	envVar, _ := credentials.EnvVar(ans.Provider)
	fmt.Println(styles.WarningStyle.Render("! no API key found for " + ans.Provider))
	fmt.Println(styles.DimStyle.Render("  set " + envVar + " or add it to " + dir.LocalKeysPath()))

	fallback := true
	if err := huh.NewForm(huh.NewGroup(
		huh.NewConfirm().
			Title("Switch to template mode instead?").
			Value(&fallback),
	)).Run(); err != nil {
		return err
	}

	if fallback {
		ans.Mode = config.ModeTemplate
	}

	return nil
}
