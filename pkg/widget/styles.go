package widget

import "strings"

// Style keys the widget looks up.
const (
	StyleSubscribeForm      = "subscribeForm"
	StyleSubscribeFormField = "subscribeFormField"
)

// Styles maps style keys to the scoped class names supplied by the host page.
// Keys are matched case-insensitively.
type Styles map[string]string

// NewStyles copies classes into a Styles with normalized keys.
func NewStyles(classes map[string]string) Styles {
	s := make(Styles, len(classes))
	for k, v := range classes {
		s[strings.ToLower(k)] = v
	}
	return s
}

// DefaultStyles mirrors the class names a CSS-modules build would emit for
// the widget's stylesheet.
func DefaultStyles() Styles {
	return NewStyles(map[string]string{
		StyleSubscribeForm:      "styles-module__subscribeForm",
		StyleSubscribeFormField: "styles-module__subscribeFormField",
	})
}

// Class returns the scoped class for key, or "" when the host supplied none.
func (s Styles) Class(key string) string {
	return s[strings.ToLower(key)]
}
