// Package validation provides validation utilities for flow documents and
// redirect tables, built on go-playground/validator.
package validation

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Validator interface for custom validation
// PRINCIPLES:
// - ISP: Simple interface with single method
// - DIP: Depend on interface, not concrete types
type Validator interface {
	Validate() error
}

// ValidationError represents a validation error with details
type ValidationError struct {
	Field   string      `json:"field"`
	Value   interface{} `json:"value"`
	Message string      `json:"message"`
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s (got: %v)", e.Field, e.Message, e.Value)
}

// ValidationErrors represents multiple validation errors
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return "no validation errors"
	}
	var msgs []string
	for _, err := range e {
		msgs = append(msgs, err.Error())
	}
	return strings.Join(msgs, "; ")
}

var validate = newValidate()

func newValidate() *validator.Validate {
	v := validator.New()
	// dotted_name: non-empty segments separated by single dots
	_ = v.RegisterValidation("dotted_name", func(fl validator.FieldLevel) bool {
		name := fl.Field().String()
		if name == "" {
			return false
		}
		for _, seg := range strings.Split(name, ".") {
			if seg == "" {
				return false
			}
		}
		return true
	})
	return v
}

// ValidateStruct validates a struct using validator tags, then any custom
// Validate method the type implements.
func ValidateStruct(v interface{}) error {
	if err := validate.Struct(v); err != nil {
		var errs ValidationErrors
		if fieldErrs, ok := err.(validator.ValidationErrors); ok {
			for _, fe := range fieldErrs {
				errs = append(errs, ValidationError{
					Field:   fe.Field(),
					Value:   fe.Value(),
					Message: fmt.Sprintf("failed on tag '%s'", fe.Tag()),
				})
			}
			return errs
		}
		return err
	}
	if custom, ok := v.(Validator); ok {
		return custom.Validate()
	}
	return nil
}
