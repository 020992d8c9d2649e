// Package text provides plain text output without any styling
package text

import (
	"fmt"
	"io"
	"strings"

	"github.com/arthur-debert/wixsync/pkg/errors"
	"github.com/arthur-debert/wixsync/pkg/types"
	"github.com/arthur-debert/wixsync/pkg/ui/report"
)

// Renderer provides plain text output without colors or styling
type Renderer struct {
	output io.Writer
}

// New creates a new text renderer
func New(output io.Writer) (*Renderer, error) {
	return &Renderer{output: output}, nil
}

// RenderResult renders any result type as plain text
func (r *Renderer) RenderResult(result interface{}) error {
	switch v := result.(type) {
	case *types.UpdateResult:
		return r.renderReport(report.FromUpdate(v))
	case *types.GenConfigResult:
		if _, err := io.WriteString(r.output, ensureNewline(v.ConfigContent)); err != nil {
			return err
		}
		for _, path := range v.FilesWritten {
			if _, err := fmt.Fprintf(r.output, "Wrote %s\n", path); err != nil {
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
	var b strings.Builder
	b.WriteString(rep.Title)
	b.WriteString("\n\n")
	for _, f := range rep.Fields {
		fmt.Fprintf(&b, "  %-14s%s\n", f.Label+":", f.Value)
	}
	_, err := io.WriteString(r.output, b.String())
	return err
}

// RenderError renders an error as plain text
func (r *Renderer) RenderError(err error) error {
	_, err2 := fmt.Fprintf(r.output, "Error: %v\n", err)
	if err2 != nil {
		return err2
	}
	if path, ok := errors.GetErrorDetails(err)["path"]; ok {
		_, err2 = fmt.Fprintf(r.output, "  path: %v\n", path)
	}
	return err2
}

// RenderMessage renders a simple message
func (r *Renderer) RenderMessage(msg string) error {
	_, err := fmt.Fprintln(r.output, msg)
	return err
}

func ensureNewline(s string) string {
	if s == "" || strings.HasSuffix(s, "\n") {
		return s
	}
	return s + "\n"
}
