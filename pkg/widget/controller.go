package widget

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/navarrastar/newsletter-widget/pkg/models"
	"github.com/navarrastar/newsletter-widget/pkg/utils"
)

// ErrInvalidForm is returned when a field fails the required/email checks a
// browser enforces before it lets the form submit.
var ErrInvalidForm = errors.New("invalid form")

// Subscriber delivers a subscription request to the backend.
type Subscriber interface {
	Subscribe(ctx context.Context, req models.SubscriptionRequest) error
}

// FormValues are the field values at the moment of submission.
type FormValues struct {
	FirstName string `form:"firstName" validate:"required"`
	Email     string `form:"email" validate:"required,html_email"`
}

var validate = utils.NewValidator()

// Submission is the handle of one in-flight request.
type Submission struct {
	done chan struct{}
	err  error
}

func settledSubmission() *Submission {
	s := &Submission{done: make(chan struct{})}
	close(s.done)
	return s
}

// Done is closed once the request has settled.
func (s *Submission) Done() <-chan struct{} {
	return s.done
}

// Err blocks until the request settles and returns its outcome. The widget
// itself never looks at it.
func (s *Submission) Err() error {
	<-s.done
	return s.err
}

// SubmissionController turns a submit intent into exactly one backend write
// and flips the completion flag when that write settles.
type SubmissionController struct {
	subscriber Subscriber
	state      *SubmissionState
	onSettle   func()
}

// NewSubmissionController creates a controller. onSettle, if set, runs once,
// right after the flag flips.
func NewSubmissionController(subscriber Subscriber, state *SubmissionState, onSettle func()) *SubmissionController {
	return &SubmissionController{
		subscriber: subscriber,
		state:      state,
		onSettle:   onSettle,
	}
}

// Submit validates values and, when they pass, issues the write without
// waiting for it. Success and failure both end in the subscribed state.
// Overlapping calls are not guarded; each issues its own request.
func (c *SubmissionController) Submit(ctx context.Context, values FormValues) (*Submission, error) {
	if c.state.Subscribed() {
		return settledSubmission(), nil
	}

	// type=email inputs strip surrounding whitespace before validating
	values.Email = strings.TrimSpace(values.Email)
	if err := validate.Struct(values); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidForm, err)
	}

	req := models.SubscriptionRequest{
		FirstName: values.FirstName,
		Email:     values.Email,
	}

	sub := &Submission{done: make(chan struct{})}
	ctx = context.WithoutCancel(ctx)
	go func() {
		defer close(sub.done)
		sub.err = c.subscriber.Subscribe(ctx, req)
		if c.state.markSubscribed() && c.onSettle != nil {
			c.onSettle()
		}
	}()

	return sub, nil
}
