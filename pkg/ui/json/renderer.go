// Package json provides machine-readable JSON output
package json

import (
	"encoding/json"
	"io"

	"github.com/arthur-debert/wixsync/pkg/errors"
)

// Renderer provides JSON output for machine consumption
type Renderer struct {
	output  io.Writer
	encoder *json.Encoder
}

// New creates a new JSON renderer
func New(output io.Writer) (*Renderer, error) {
	encoder := json.NewEncoder(output)
	encoder.SetIndent("", "  ")
	return &Renderer{
		output:  output,
		encoder: encoder,
	}, nil
}

// RenderResult renders any result type as JSON
func (r *Renderer) RenderResult(result interface{}) error {
	return r.encoder.Encode(result)
}

// errorObject is the JSON shape of a failed run
type errorObject struct {
	Error    string                 `json:"error"`
	Code     errors.ErrorCode       `json:"code"`
	ExitCode int                    `json:"exitCode"`
	Details  map[string]interface{} `json:"details,omitempty"`
}

// RenderError renders an error as JSON, code and details included
func (r *Renderer) RenderError(err error) error {
	return r.encoder.Encode(errorObject{
		Error:    err.Error(),
		Code:     errors.GetErrorCode(err),
		ExitCode: errors.ExitCode(err),
		Details:  errors.GetErrorDetails(err),
	})
}

// RenderMessage renders a simple message as JSON
func (r *Renderer) RenderMessage(msg string) error {
	messageObj := map[string]string{
		"message": msg,
	}
	return r.encoder.Encode(messageObj)
}
