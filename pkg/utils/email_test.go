package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsHTMLEmail(t *testing.T) {
	valid := []string{
		"ada@example.com",
		"ada@localhost",
		"ada@example",
		"o'brien+news@mail.example.co.uk",
		"a.b-c_d@x-y.example",
	}
	for _, email := range valid {
		assert.True(t, IsHTMLEmail(email), email)
	}

	invalid := []string{
		"",
		"ada",
		`"a b"@example.com`,
		"ada@@example.com",
		"ada@-example.com",
		"ada@example-.com",
		"ada@example..com",
		"ada@exa_mple.com",
		"ada @example.com",
	}
	for _, email := range invalid {
		assert.False(t, IsHTMLEmail(email), email)
	}
}

func TestNewValidatorRegistersHTMLEmail(t *testing.T) {
	v := NewValidator()

	assert.NoError(t, v.Var("ada@localhost", "required,"+HTMLEmailTag))
	assert.Error(t, v.Var(`"a b"@example.com`, "required,"+HTMLEmailTag))
	assert.Error(t, v.Var("", "required,"+HTMLEmailTag))
}
