package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidator(t *testing.T) {
	v := NewValidator()
	assert.True(t, v.Valid())

	v.Check(NotBlank("  "), "title", "must be provided")
	v.Check(false, "title", "second message is ignored")
	v.Check(NotBlank("body"), "content", "must be provided")

	assert.False(t, v.Valid())
	assert.Equal(t, map[string]string{"title": "must be provided"}, v.Errors)

	err := v.ValidationError()
	assert.EqualError(t, err, "validation errors: title must be provided")
}

func TestCheckStringLength(t *testing.T) {
	v := NewValidator()

	testCases := []struct {
		s    string
		want bool
	}{
		{s: "", want: false},
		{s: "ab", want: false},
		{s: "abc", want: true},
		{s: "héé", want: true},
		{s: "abcdef", want: false},
	}

	for _, tc := range testCases {
		t.Run(tc.s, func(t *testing.T) {
			assert.Equal(t, tc.want, v.CheckStringLength(tc.s, 3, 5))
		})
	}
}

func TestValidationErrorSortsFields(t *testing.T) {
	err := ValidationError{Errors: map[string]string{
		"title":   "must be provided",
		"content": "must be provided",
	}}

	assert.Equal(t, "validation errors: content must be provided; title must be provided", err.Error())
}
