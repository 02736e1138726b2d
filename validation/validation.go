package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	v10 "github.com/go-playground/validator/v10"
)

type FieldError struct {
	Field   string `json:"field"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

var validate *v10.Validate

func init() {
	validate = v10.New()
	// report nested fields by their json/yaml tag so messages match the file
	// the operator edited ("server.port" rather than "Server.Port").
	validate.RegisterTagNameFunc(func(sf reflect.StructField) string {
		for _, key := range []string{"json", "yaml"} {
			name := strings.Split(sf.Tag.Get(key), ",")[0]
			if name == "-" {
				return ""
			}
			if name != "" {
				return name
			}
		}
		return strings.ToLower(sf.Name)
	})
}

// Validate runs struct validation using go-playground/validator.
func Validate(v interface{}) error {
	return validate.Struct(v)
}

// FormatValidationErrors converts validator.ValidationErrors into a slice of
// FieldError. Field is the dotted tag path below the root struct and Code
// follows the pattern "INVALID_<RULE>|<param>" when a param is present.
func FormatValidationErrors(err error) []FieldError {
	if err == nil {
		return nil
	}
	var ve v10.ValidationErrors
	if !errors.As(err, &ve) {
		return []FieldError{{Code: "INVALID", Message: err.Error()}}
	}
	out := make([]FieldError, 0, len(ve))
	for _, f := range ve {
		field := f.Namespace()
		if i := strings.Index(field, "."); i >= 0 {
			field = field[i+1:]
		}

		code := "INVALID_" + strings.ToUpper(f.Tag())
		msg := fmt.Sprintf("failed on the '%s' rule", f.Tag())
		if p := f.Param(); p != "" {
			code += "|" + p
			msg = fmt.Sprintf("failed on the '%s=%s' rule", f.Tag(), p)
		}
		out = append(out, FieldError{Field: field, Code: code, Message: msg})
	}
	return out
}

// Error is returned by Check and lists every failing field.
type Error struct {
	Fields []FieldError
}

func (e *Error) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		if f.Field == "" {
			parts = append(parts, f.Message)
			continue
		}
		parts = append(parts, f.Field+": "+f.Message)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Check validates v and returns a *Error when any rule fails.
func Check(v interface{}) error {
	if err := Validate(v); err != nil {
		return &Error{Fields: FormatValidationErrors(err)}
	}
	return nil
}
