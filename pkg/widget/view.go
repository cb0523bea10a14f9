package widget

import "github.com/a-h/templ"

//go:generate templ generate

const (
	// DefaultAction is where the form posts when no script intercepts it.
	DefaultAction = "/subscribe"

	Heading         = "Subscribe to my news-letter"
	ThankYouMessage = "Thanks for subscribing 🙌. If this email is not already subscribed, " +
		"you would receive a confirmation email, please confirm it there to get going. " +
		"See you on the other side."

	fieldClasses = "input-field button text--left margin--sm"
)

// Props are the host-supplied inputs of the view.
type Props struct {
	Styles Styles
	Action string
}

func (p Props) actionURL() templ.SafeURL {
	if p.Action == "" {
		return templ.URL(DefaultAction)
	}
	return templ.URL(p.Action)
}

// styleClass yields the scoped class for key, switched off when the host
// supplied none.
func (p Props) styleClass(key string) templ.KeyValue[string, bool] {
	class := p.Styles.Class(key)
	return templ.KV(class, class != "")
}
