package views

import (
	"context"
	"testing"

	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPageWrapsBody(t *testing.T) {
	body := templ.Raw("<main>hi</main>")

	html, err := RenderString(context.Background(), Page(PageProps{Title: "News & Notes", Stylesheet: "/css/site.css"}, body))

	require.NoError(t, err)
	assert.Contains(t, html, "<title>News &amp; Notes</title>")
	assert.Contains(t, html, `<link rel="stylesheet" href="/css/site.css">`)
	assert.Contains(t, html, "<body><main>hi</main></body>")
}

func TestPageWithoutStylesheet(t *testing.T) {
	html, err := RenderString(context.Background(), Page(PageProps{Title: "News"}, templ.NopComponent))

	require.NoError(t, err)
	assert.NotContains(t, html, "<link")
}

func TestConfirmationEmailEscapes(t *testing.T) {
	html, err := RenderString(context.Background(), ConfirmationEmail("<b>Ada</b>", "https://x.test/confirm?token=a&b=c"))

	require.NoError(t, err)
	assert.Contains(t, html, "Hi &lt;b&gt;Ada&lt;/b&gt;,")
	assert.Contains(t, html, `href="https://x.test/confirm?token=a&amp;b=c"`)
}

func TestConfirmedPage(t *testing.T) {
	html, err := RenderString(context.Background(), ConfirmedPage("Ada"))

	require.NoError(t, err)
	assert.Contains(t, html, "Thanks Ada, your subscription is confirmed.")
}

func TestConfirmationEmailRejectsScriptLink(t *testing.T) {
	html, err := RenderString(context.Background(), ConfirmationEmail("Ada", "javascript:alert(1)"))

	require.NoError(t, err)
	assert.NotContains(t, html, "javascript:")
	assert.Contains(t, html, `href="about:invalid#TemplFailedSanitizationURL"`)
}

func TestMessagePagesEscapeInput(t *testing.T) {
	html, err := RenderString(context.Background(), ConfirmedPage("<script>x</script>"))
	require.NoError(t, err)
	assert.Contains(t, html, "Thanks &lt;script&gt;x&lt;/script&gt;,")

	html, err = RenderString(context.Background(), ExpiredPage())
	require.NoError(t, err)
	assert.Contains(t, html, "<h2>Link expired</h2>")
}
