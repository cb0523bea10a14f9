// Package widget implements the newsletter subscribe form: a two-field form
// that posts to the subscribe endpoint and is replaced by a thank-you message
// once the request settles.
package widget

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// Widget is one mounted instance of the subscribe form. Its state lives as
// long as the value does.
type Widget struct {
	props      Props
	state      SubmissionState
	controller *SubmissionController
	onRender   func(templ.Component)
}

type Option func(*Widget)

// WithStyles injects the host's scoped class names.
func WithStyles(styles Styles) Option {
	return func(w *Widget) {
		w.props.Styles = styles
	}
}

// WithAction sets the form's post target.
func WithAction(action string) Option {
	return func(w *Widget) {
		w.props.Action = action
	}
}

// WithRenderHook registers fn to receive the re-derived view whenever the
// state changes.
func WithRenderHook(fn func(templ.Component)) Option {
	return func(w *Widget) {
		w.onRender = fn
	}
}

// New mounts a widget in the Collecting phase.
func New(subscriber Subscriber, opts ...Option) *Widget {
	w := &Widget{
		props: Props{
			Styles: DefaultStyles(),
			Action: DefaultAction,
		},
	}
	for _, opt := range opts {
		opt(w)
	}
	w.controller = NewSubmissionController(subscriber, &w.state, w.rerender)
	return w
}

func (w *Widget) rerender() {
	if w.onRender != nil {
		w.onRender(w.View())
	}
}

// Phase returns the current lifecycle phase.
func (w *Widget) Phase() Phase {
	return w.state.Phase()
}

// View derives the markup for the current state.
func (w *Widget) View() templ.Component {
	return View(w.state.Phase(), w.props)
}

// Render implements templ.Component.
func (w *Widget) Render(ctx context.Context, out io.Writer) error {
	return w.View().Render(ctx, out)
}

// Submit forwards a submit intent to the controller.
func (w *Widget) Submit(ctx context.Context, values FormValues) (*Submission, error) {
	return w.controller.Submit(ctx, values)
}
