package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/pmezard/go-difflib/difflib"
	"github.com/sportpoet/sportpoet/cmd/sportpoet/internal/styles"
	"github.com/sportpoet/sportpoet/pkg/config"
)

// changeReport renders what the new document changed relative to the shipped
// default: a per-field old/new listing followed by a unified diff of the
// pretty-printed JSON.
func changeReport(base, doc config.Document) string {
	changed, changes := config.Diff(base, doc)
	if len(changed) == 0 {
		return styles.DimStyle.Render("no changes from default") + "\n"
	}

	var b strings.Builder
	b.WriteString(styles.TitleStyle.Render("Changed from default:") + "\n")

	for _, key := range changed {
		c := changes[key]
		line := fmt.Sprintf("  %s: %s → %s", key, compactJSON(c.Old), compactJSON(c.New))
		b.WriteString(styles.AccentStyle.Render(line) + "\n")
	}

	if diff, err := unifiedJSONDiff(base, doc); err == nil && diff != "" {
		b.WriteString(styles.DimStyle.Render(diff))
	}

	return b.String()
}

// compactJSON renders a diff value on one line; nil shows as "absent" so a
// freshly injected llm block reads naturally.
func compactJSON(v any) string {
	if v == nil {
		return "absent"
	}

	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprintf("%v", v)
	}

	return string(data)
}

// unifiedJSONDiff diffs the pretty-printed JSON of both documents.
func unifiedJSONDiff(base, doc config.Document) (string, error) {
	baseJSON, err := json.MarshalIndent(base, "", "  ")
	if err != nil {
		return "", err
	}
	docJSON, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", err
	}

	return difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(string(baseJSON) + "\n"),
		B:        difflib.SplitLines(string(docJSON) + "\n"),
		FromFile: "config.default.json",
		ToFile:   "config.json",
		Context:  3,
	})
}
