package common

import (
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"
)

// ValidationError carries the per-field messages collected by a Validator.
type ValidationError struct {
	Errors map[string]string
}

func (e ValidationError) Error() string {
	fields := make([]string, 0, len(e.Errors))
	for field := range e.Errors {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, field := range fields {
		parts = append(parts, fmt.Sprintf("%s %s", field, e.Errors[field]))
	}

	return "validation errors: " + strings.Join(parts, "; ")
}

type Validator struct {
	Errors map[string]string
}

func NewValidator() *Validator {
	return &Validator{Errors: make(map[string]string)}
}

func (v *Validator) Valid() bool {
	return len(v.Errors) == 0
}

// AddError keeps the first message recorded for a field.
func (v *Validator) AddError(field, message string) {
	if _, ok := v.Errors[field]; !ok {
		v.Errors[field] = message
	}
}

func (v *Validator) Check(ok bool, field, message string) {
	if !ok {
		v.AddError(field, message)
	}
}

// CheckStringLength counts runes, not bytes.
func (v *Validator) CheckStringLength(s string, min, max int) bool {
	n := utf8.RuneCountInString(s)
	return n >= min && n <= max
}

// NotBlank reports whether s has any non-whitespace content.
func NotBlank(s string) bool {
	return strings.TrimSpace(s) != ""
}

func (v *Validator) ValidationError() error {
	return ValidationError{Errors: v.Errors}
}
