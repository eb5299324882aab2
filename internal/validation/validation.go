// Package validation turns go-playground/validator failures into the
// aggregated errors[] payload the API promises: every violated field is
// reported at once, each with a human-readable message.
package validation

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

// FieldError is one reported violation.
type FieldError struct {
	Msg   string `json:"msg"`
	Param string `json:"param"`
}

// FieldMessages describes how violations of a single struct field are
// reported: the wire name of the field and a message per validator tag.
type FieldMessages struct {
	Param    string
	Messages map[string]string
}

// Translate converts a binding error into the list of field errors. Fields
// without a configured message fall back to a generic one; a non-validator
// error (malformed multipart body and the like) becomes a single entry.
func Translate(err error, fields map[string]FieldMessages) []FieldError {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []FieldError{{Msg: "invalid request body"}}
	}

	out := make([]FieldError, 0, len(verrs))
	for _, ve := range verrs {
		fm, known := fields[ve.Field()]
		if !known {
			out = append(out, FieldError{Msg: "invalid value", Param: ve.Field()})
			continue
		}
		msg, has := fm.Messages[ve.Tag()]
		if !has {
			msg = "please enter a valid " + fm.Param
		}
		out = append(out, FieldError{Msg: msg, Param: fm.Param})
	}
	return out
}
