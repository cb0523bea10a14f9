package widget

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestViewCollectingRendersForm(t *testing.T) {
	html := render(t, View(Collecting, Props{Styles: DefaultStyles()}))

	assert.Contains(t, html, `<div class="margin--lg"><form method="post" action="/subscribe">`)
	assert.Contains(t, html, "<h2>Subscribe to my news-letter</h2>")
	assert.Contains(t, html, `<input required type="text" name="firstName"`)
	assert.Contains(t, html, `<input required type="email" name="email"`)
	assert.Contains(t, html, `placeholder="First Name"`)
	assert.Contains(t, html, `placeholder="Email"`)
	assert.Contains(t, html, `class="button button--success">Subscribe</button>`)
	assert.NotContains(t, html, ThankYouMessage)
}

func TestViewSubmittedRendersMessageOnly(t *testing.T) {
	html := render(t, View(Submitted, Props{Styles: DefaultStyles()}))

	assert.Contains(t, html, "<h2>Subscribe to my news-letter</h2>")
	assert.Contains(t, html, "<p>"+ThankYouMessage+"</p>")
	assert.NotContains(t, html, "<input")
	assert.NotContains(t, html, "<button")
}

func TestViewUsesInjectedStyles(t *testing.T) {
	styles := NewStyles(map[string]string{
		"subscribeform":      "form_a1b2",
		"subscribeFormField": "field_c3d4",
	})

	html := render(t, View(Collecting, Props{Styles: styles}))

	assert.Contains(t, html, "padding--md")
	assert.Contains(t, html, "form_a1b2")
	assert.Contains(t, html, "field_c3d4")
	assert.Contains(t, html, "input-field button text--left margin--sm")
}

func TestViewWithoutStyles(t *testing.T) {
	html := render(t, View(Collecting, Props{}))

	assert.Contains(t, html, `action="/subscribe"`)
	assert.NotContains(t, html, "styles-module__")
}

func TestViewEscapesAction(t *testing.T) {
	html := render(t, View(Collecting, Props{Action: `/x"><script>`}))

	assert.NotContains(t, html, "<script>")
	assert.Contains(t, html, "&#34;&gt;&lt;script&gt;")
}

func TestViewIsPure(t *testing.T) {
	props := Props{Styles: DefaultStyles(), Action: "/join"}
	assert.Equal(t, render(t, View(Collecting, props)), render(t, View(Collecting, props)))
	assert.Equal(t, render(t, View(Submitted, props)), render(t, View(Submitted, props)))
}

func TestViewSanitizesScriptAction(t *testing.T) {
	html := render(t, View(Collecting, Props{Action: "javascript:alert(1)"}))

	assert.NotContains(t, html, "javascript:")
	assert.Contains(t, html, `action="about:invalid#TemplFailedSanitizationURL"`)
}
