package utils

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

// HTMLEmailTag is the validator tag for the address rule browsers apply to
// type=email inputs.
const HTMLEmailTag = "html_email"

var htmlEmailPattern = regexp.MustCompile("^[a-zA-Z0-9.!#$%&'*+/=?^_`{|}~-]+@[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?(?:\\.[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?)*$")

// IsHTMLEmail reports whether a browser would accept s in a type=email input.
// Single-label domains such as localhost are valid; quoted local parts are not.
func IsHTMLEmail(s string) bool {
	return htmlEmailPattern.MatchString(s)
}

// NewValidator returns a validator with the html_email tag registered.
func NewValidator() *validator.Validate {
	v := validator.New()
	if err := v.RegisterValidation(HTMLEmailTag, func(fl validator.FieldLevel) bool {
		return IsHTMLEmail(fl.Field().String())
	}); err != nil {
		panic(err)
	}
	return v
}
