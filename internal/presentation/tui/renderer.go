package tui

import (
	"fmt"
	"strings"

	"github.com/aretw0/decaytable"
	"github.com/aretw0/decaytable/pkg/domain"
	"github.com/charmbracelet/glamour"
)

// NewRenderer returns a function that renders markdown using glamour.
// An empty style detects a light or dark terminal; "notty" and "ascii"
// select the plain styles.
func NewRenderer(style string) (func(string) (string, error), error) {
	opt := glamour.WithAutoStyle()
	if style != "" {
		opt = glamour.WithStandardStyle(style)
	}
	r, err := glamour.NewTermRenderer(opt, glamour.WithWordWrap(0))
	if err != nil {
		return nil, fmt.Errorf("failed to create markdown renderer: %w", err)
	}
	return func(markdown string) (string, error) {
		return r.Render(markdown)
	}, nil
}

// ModesMarkdown lays out the decay modes of mother as a markdown table.
func ModesMarkdown(mother string, rows []decaytable.ModeRow) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "## %s decay modes\n\n", code(mother))
	sb.WriteString("| BF | Daughters | Model | Parameters |\n")
	sb.WriteString("|---:|---|---|---|\n")
	for _, r := range rows {
		names := make([]string, len(r.Daughters))
		for i, d := range r.Daughters {
			names[i] = code(d)
		}
		fmt.Fprintf(&sb, "| %g | %s | %s | %s |\n",
			r.BF, strings.Join(names, " "), r.Model, cell(domain.FormatParams(r.ModelParams)))
	}
	return sb.String()
}

// code keeps particle names such as D*+ from being read as emphasis.
func code(s string) string {
	return "`" + cell(s) + "`"
}

func cell(s string) string {
	return strings.ReplaceAll(s, "|", "\\|")
}
