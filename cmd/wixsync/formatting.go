package wixsync

import (
	"os"
	"strings"
	"text/template"

	"github.com/charmbracelet/glamour"
	"github.com/mattn/go-isatty"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

// styledOutput reports whether help output may carry escape codes
func styledOutput() bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// formatBold returns the string formatted as bold using pterm
func formatBold(s string) string {
	if !styledOutput() {
		return s
	}
	return pterm.Bold.Sprint(s)
}

// formatBoldUpper returns the string in uppercase and bold
func formatBoldUpper(s string) string {
	return formatBold(strings.ToUpper(s))
}

// helpWidth is the wrap column of rendered help text
const helpWidth = 80

// formatMarkdown renders help text on terminals and leaves it as written
// everywhere else
func formatMarkdown(s string) string {
	if !styledOutput() {
		return s
	}
	return renderMarkdown(s)
}

// renderMarkdown renders s with glamour, falling back to s on error
func renderMarkdown(s string) string {
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(helpWidth),
	)
	if err != nil {
		return s
	}
	rendered, err := renderer.Render(s)
	if err != nil {
		return s
	}
	return rendered
}

// initTemplateFormatting adds custom formatting functions to Cobra templates
func initTemplateFormatting() {
	cobra.AddTemplateFuncs(template.FuncMap{
		"bold":      formatBold,
		"upper":     strings.ToUpper,
		"boldUpper": formatBoldUpper,
		"markdown":  formatMarkdown,
	})
}
