// Package mutation defines the uniform outcome contract shared by every
// mutation handler: validate, then report a tagged success or failure with
// field-level detail, leaving presentation (inline errors, redirect, toast)
// to the caller.
package mutation

import (
	"encoding/json"

	"github.com/Twix-Akshat/Todo-Demo/internal/validation"
)

// Result is the discriminated outcome of a mutation.
type Result struct {
	OK          bool              `json:"success"`
	FieldErrors map[string]string `json:"errors,omitempty"`
}

// Success reports a completed mutation.
func Success() Result {
	return Result{OK: true}
}

// Invalid reports validation failures keyed by form field.
func Invalid(errs validation.Errors) Result {
	return Result{FieldErrors: errs}
}

// Failed reports a storage or other non-field failure as a single generic
// message under the "general" key. Internal error detail never leaves the
// server.
func Failed(message string) Result {
	return Result{FieldErrors: map[string]string{"general": message}}
}

// Invalid reports whether the result carries field-level validation errors.
func (r Result) Invalid() bool {
	if r.OK {
		return false
	}
	_, generic := r.FieldErrors["general"]
	return !generic
}

// ErrorsParam encodes the field errors as a JSON query-parameter value so a
// handler can carry them through a redirect back to the submitting form.
func (r Result) ErrorsParam() string {
	if len(r.FieldErrors) == 0 {
		return ""
	}
	data, err := json.Marshal(r.FieldErrors)
	if err != nil {
		return ""
	}
	return string(data)
}
