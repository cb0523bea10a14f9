// Package views holds the host page chrome and the pages and emails that
// surround the subscribe widget.
package views

import (
	"bytes"
	"context"

	"github.com/a-h/templ"
)

//go:generate templ generate

// PageProps describes the host page a widget is mounted in.
type PageProps struct {
	Title      string
	Stylesheet string
}

// RenderString renders c into a string.
func RenderString(ctx context.Context, c templ.Component) (string, error) {
	var buf bytes.Buffer
	if err := c.Render(ctx, &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}
