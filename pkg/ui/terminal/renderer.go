// Package terminal provides rich terminal output with colors and styling
package terminal

import (
	"fmt"
	"io"
	"strings"

	"github.com/arthur-debert/wixsync/pkg/errors"
	"github.com/arthur-debert/wixsync/pkg/types"
	"github.com/arthur-debert/wixsync/pkg/ui/format"
	"github.com/arthur-debert/wixsync/pkg/ui/report"
	"github.com/arthur-debert/wixsync/pkg/ui/styles"
	"github.com/charmbracelet/lipgloss"
)

// Renderer provides rich terminal output using lipgloss styles
type Renderer struct {
	output io.Writer
}

// New creates a new terminal renderer
func New(w io.Writer) (*Renderer, error) {
	return &Renderer{output: w}, nil
}

// RenderResult renders any result type with rich terminal formatting
func (r *Renderer) RenderResult(result interface{}) error {
	switch v := result.(type) {
	case *types.UpdateResult:
		return r.renderReport(report.FromUpdate(v))
	case *types.GenConfigResult:
		if _, err := io.WriteString(r.output, v.ConfigContent); err != nil {
			return err
		}
		for _, path := range v.FilesWritten {
			line := styles.Render("Success", format.StatusIcon("updated")) + " Wrote " + styles.Render("FilePath", path)
			if _, err := fmt.Fprintln(r.output, line); err != nil {
				return err
			}
		}
		return nil
	default:
		// For unknown types, just print them
		_, err := fmt.Fprintf(r.output, "%+v\n", result)
		return err
	}
}

func (r *Renderer) renderReport(rep report.Report) error {
	icon := format.StatusIcon(string(rep.Status))
	var header string
	switch rep.Status {
	case report.StatusDryRun:
		header = styles.Render("DryRunBanner", icon+" "+rep.Title)
	case report.StatusUnchanged:
		header = styles.Render("Header", icon+" "+rep.Title)
	default:
		header = styles.Render("Header", styles.Render("Success", icon)+" "+rep.Title)
	}

	rows := make([]string, 0, len(rep.Fields))
	for _, f := range rep.Fields {
		value := f.Value
		if f.Style != "" {
			value = styles.Render(f.Style, value)
		} else {
			value = styles.Render("Value", value)
		}
		row := lipgloss.JoinHorizontal(lipgloss.Top, styles.Render("Label", f.Label), value)
		rows = append(rows, styles.Render("Indent", row))
	}

	out := lipgloss.JoinVertical(lipgloss.Left, header, strings.Join(rows, "\n"))
	_, err := fmt.Fprintln(r.output, out)
	return err
}

// RenderError renders an error with appropriate formatting
func (r *Renderer) RenderError(err error) error {
	line := styles.Render("Error", format.StatusIcon("error")+" Error:") + " " + err.Error()
	if path, ok := errors.GetErrorDetails(err)["path"]; ok {
		line += "\n" + styles.Render("Indent", styles.Render("Muted", fmt.Sprintf("path: %v", path)))
	}
	_, err2 := fmt.Fprintln(r.output, line)
	return err2
}

// RenderMessage renders a simple message
func (r *Renderer) RenderMessage(msg string) error {
	_, err := fmt.Fprintln(r.output, styles.Render("Value", msg))
	return err
}
