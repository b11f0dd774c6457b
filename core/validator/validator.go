// Package validator wraps go-playground/validator for request payloads.
package validator

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Rule is a custom validation on string fields, usable as a `validate` tag.
type Rule struct {
	Tag string
	// Message follows the field name when the rule fails.
	Message string
	Valid   func(string) bool
}

// Validator validates structs based on `validate` tags.
type Validator struct {
	v        *validator.Validate
	messages map[string]string
}

// New creates a Validator with the given rules registered.
func New(rules ...Rule) (*Validator, error) {
	v := validator.New(validator.WithRequiredStructEnabled())
	messages := make(map[string]string, len(rules))
	for _, r := range rules {
		if r.Valid == nil {
			return nil, fmt.Errorf("failed to register rule %q: no validation function", r.Tag)
		}
		valid := r.Valid
		if err := v.RegisterValidation(r.Tag, func(fl validator.FieldLevel) bool {
			return valid(fl.Field().String())
		}); err != nil {
			return nil, fmt.Errorf("failed to register rule %q: %w", r.Tag, err)
		}
		messages[r.Tag] = r.Message
	}
	return &Validator{v: v, messages: messages}, nil
}

// Struct validates s and flattens field errors into one readable error.
func (val *Validator) Struct(s any) error {
	err := val.v.Struct(s)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}
	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		msgs = append(msgs, val.describe(fe))
	}
	return errors.New(strings.Join(msgs, "; "))
}

// Var validates a single value against a tag.
func (val *Validator) Var(field any, tag string) error {
	return val.v.Var(field, tag)
}

func (val *Validator) describe(fe validator.FieldError) string {
	field := fe.Field()
	if msg, ok := val.messages[fe.Tag()]; ok && msg != "" {
		return fmt.Sprintf("%s %s", field, msg)
	}
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "min", "max", "gte", "lte":
		return fmt.Sprintf("%s must satisfy %s=%s", field, fe.Tag(), fe.Param())
	default:
		return fmt.Sprintf("%s failed %s validation", field, fe.Tag())
	}
}
