// Package rendering draws an assembled page tree: an HTML renderer usable
// on its own, and a PDF printer that rasterizes the HTML in headless Chrome.
package rendering

import "fmt"

// RenderError represents a failure to turn a page tree into markup.
type RenderError struct {
	Message string
	Cause   error
}

func (e *RenderError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("render error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("render error: %s", e.Message)
}

func (e *RenderError) Unwrap() error {
	return e.Cause
}

// PrintError represents a failure in the headless-browser PDF step. This is
// the external collaborator's fault surface; the layout engine itself never
// errors.
type PrintError struct {
	Message string
	Cause   error
}

func (e *PrintError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("print error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("print error: %s", e.Message)
}

func (e *PrintError) Unwrap() error {
	return e.Cause
}
