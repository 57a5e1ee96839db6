package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/sportpoet/sportpoet/cmd/sportpoet/internal/styles"
	"github.com/sportpoet/sportpoet/pkg/config"
	"github.com/sportpoet/sportpoet/pkg/poetdir"
)

func runInit(args []string) error {
	fs := flag.NewFlagSet("init", flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: sportpoet init [flags]\n\nWrite the default config template and output directory layout.\n\nFlags:\n")
		fs.PrintDefaults()
	}
	dirFlag := fs.String("dir", ".", "project directory")
	force := fs.Bool("force", false, "overwrite an existing default template")
	if err := fs.Parse(args); err != nil {
		return err
	}

	dir := poetdir.New(*dirFlag)

	if err := poetdir.EnsureStructure(dir); err != nil {
		return err
	}

	tmplPath := dir.DefaultTemplatePath()
	if !*force {
		if _, err := os.Stat(tmplPath); err == nil {
			return fmt.Errorf("default template already exists at %s (use -force to overwrite)", tmplPath)
		}
	}

	data, err := json.MarshalIndent(config.DefaultDocument(), "", "  ")
	if err != nil {
		return fmt.Errorf("marshal default template: %w", err)
	}
	data = append(data, '\n')

	if err := os.WriteFile(tmplPath, data, 0o644); err != nil { //nolint:gosec // config template, not secret
		return fmt.Errorf("write default template: %w", err)
	}

	fmt.Println(styles.SuccessStyle.Render("✓ initialized"), styles.DimStyle.Render(tmplPath))

	return nil
}
