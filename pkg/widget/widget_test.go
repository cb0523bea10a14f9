package widget

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/navarrastar/newsletter-widget/pkg/models"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type fakeSubscriber struct {
	mu       sync.Mutex
	requests []models.SubscriptionRequest
	err      error
	release  chan struct{}
}

func (f *fakeSubscriber) Subscribe(_ context.Context, req models.SubscriptionRequest) error {
	f.mu.Lock()
	f.requests = append(f.requests, req)
	f.mu.Unlock()

	if f.release != nil {
		<-f.release
	}
	return f.err
}

func (f *fakeSubscriber) calls() []models.SubscriptionRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]models.SubscriptionRequest(nil), f.requests...)
}

func render(t *testing.T, c templ.Component) string {
	t.Helper()
	var b strings.Builder
	require.NoError(t, c.Render(context.Background(), &b))
	return b.String()
}

func waitDone(t *testing.T, sub *Submission) {
	t.Helper()
	select {
	case <-sub.Done():
	case <-time.After(time.Second):
		t.Fatal("submission did not settle")
	}
}

var ada = FormValues{FirstName: "Ada", Email: "ada@example.com"}

func TestSubmitSuccessShowsThankYou(t *testing.T) {
	subscriber := &fakeSubscriber{}
	w := New(subscriber)

	assert.Equal(t, Collecting, w.Phase())
	assert.Contains(t, render(t, w), `name="firstName"`)

	sub, err := w.Submit(context.Background(), ada)
	require.NoError(t, err)
	waitDone(t, sub)

	assert.Equal(t, Submitted, w.Phase())
	assert.NoError(t, sub.Err())

	html := render(t, w)
	assert.Contains(t, html, ThankYouMessage)
	assert.NotContains(t, html, "<input")
	assert.Equal(t, []models.SubscriptionRequest{{FirstName: "Ada", Email: "ada@example.com"}}, subscriber.calls())
}

func TestSubmitFailureStillShowsThankYou(t *testing.T) {
	subscriber := &fakeSubscriber{err: errors.New("connection refused")}
	w := New(subscriber)

	sub, err := w.Submit(context.Background(), ada)
	require.NoError(t, err)
	waitDone(t, sub)

	assert.Equal(t, Submitted, w.Phase())
	assert.EqualError(t, sub.Err(), "connection refused")
	assert.Contains(t, render(t, w), ThankYouMessage)
}

func TestSubmitBlockedByFieldChecks(t *testing.T) {
	tests := []struct {
		name   string
		values FormValues
	}{
		{"empty first name", FormValues{Email: "ada@example.com"}},
		{"empty email", FormValues{FirstName: "Ada"}},
		{"malformed email", FormValues{FirstName: "Ada", Email: "not-an-email"}},
		{"blank email", FormValues{FirstName: "Ada", Email: "   "}},
		{"quoted local part", FormValues{FirstName: "Ada", Email: `"a b"@example.com`}},
		{"double at", FormValues{FirstName: "Ada", Email: "ada@@example.com"}},
		{"label starts with hyphen", FormValues{FirstName: "Ada", Email: "ada@-example.com"}},
		{"empty label", FormValues{FirstName: "Ada", Email: "ada@example..com"}},
		{"underscore in domain", FormValues{FirstName: "Ada", Email: "ada@exa_mple.com"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			subscriber := &fakeSubscriber{}
			w := New(subscriber)

			sub, err := w.Submit(context.Background(), tt.values)

			require.ErrorIs(t, err, ErrInvalidForm)
			assert.Nil(t, sub)
			assert.Empty(t, subscriber.calls())
			assert.Equal(t, Collecting, w.Phase())
			assert.Contains(t, render(t, w), `name="email"`)
		})
	}
}

func TestSubmitAcceptsBrowserValidEmails(t *testing.T) {
	emails := []string{
		"ada@localhost",
		"ada@example",
		"o'brien+news@mail.example.co.uk",
	}

	for _, email := range emails {
		t.Run(email, func(t *testing.T) {
			subscriber := &fakeSubscriber{}
			w := New(subscriber)

			sub, err := w.Submit(context.Background(), FormValues{FirstName: "Ada", Email: email})
			require.NoError(t, err)
			waitDone(t, sub)

			assert.Equal(t, Submitted, w.Phase())
			require.Len(t, subscriber.calls(), 1)
			assert.Equal(t, email, subscriber.calls()[0].Email)
		})
	}
}

func TestSubmitTrimsEmail(t *testing.T) {
	subscriber := &fakeSubscriber{}
	w := New(subscriber)

	sub, err := w.Submit(context.Background(), FormValues{FirstName: "Ada", Email: " ada@example.com "})
	require.NoError(t, err)
	waitDone(t, sub)

	require.Len(t, subscriber.calls(), 1)
	assert.Equal(t, "ada@example.com", subscriber.calls()[0].Email)
}

func TestSubmitAfterSubscribedIsNoop(t *testing.T) {
	subscriber := &fakeSubscriber{}
	w := New(subscriber)

	sub, err := w.Submit(context.Background(), ada)
	require.NoError(t, err)
	waitDone(t, sub)
	before := render(t, w)

	again, err := w.Submit(context.Background(), FormValues{FirstName: "Grace", Email: "grace@example.com"})
	require.NoError(t, err)
	waitDone(t, again)

	assert.Len(t, subscriber.calls(), 1)
	assert.Equal(t, before, render(t, w))
}

func TestOverlappingSubmitsAreNotGuarded(t *testing.T) {
	subscriber := &fakeSubscriber{release: make(chan struct{})}

	var renders int
	var mu sync.Mutex
	w := New(subscriber, WithRenderHook(func(templ.Component) {
		mu.Lock()
		renders++
		mu.Unlock()
	}))

	first, err := w.Submit(context.Background(), ada)
	require.NoError(t, err)
	second, err := w.Submit(context.Background(), ada)
	require.NoError(t, err)

	assert.Eventually(t, func() bool { return len(subscriber.calls()) == 2 }, time.Second, 5*time.Millisecond)
	assert.Equal(t, Collecting, w.Phase())

	close(subscriber.release)
	waitDone(t, first)
	waitDone(t, second)

	assert.Equal(t, Submitted, w.Phase())
	mu.Lock()
	assert.Equal(t, 1, renders)
	mu.Unlock()
}

func TestRenderHookReceivesResultView(t *testing.T) {
	views := make(chan templ.Component, 1)
	w := New(&fakeSubscriber{}, WithRenderHook(func(c templ.Component) { views <- c }))

	sub, err := w.Submit(context.Background(), ada)
	require.NoError(t, err)
	waitDone(t, sub)

	select {
	case c := <-views:
		assert.Contains(t, render(t, c), ThankYouMessage)
	default:
		t.Fatal("render hook not called")
	}
}

func TestSubmitIgnoresCallerCancellation(t *testing.T) {
	subscriber := &fakeSubscriber{release: make(chan struct{})}
	w := New(subscriber)

	ctx, cancel := context.WithCancel(context.Background())
	sub, err := w.Submit(ctx, ada)
	require.NoError(t, err)
	cancel()
	close(subscriber.release)
	waitDone(t, sub)

	assert.Equal(t, Submitted, w.Phase())
}

func TestSubmissionStateFlipsOnce(t *testing.T) {
	var s SubmissionState
	assert.False(t, s.Subscribed())
	assert.Equal(t, Collecting, s.Phase())

	assert.True(t, s.markSubscribed())
	assert.False(t, s.markSubscribed())
	assert.True(t, s.Subscribed())
	assert.Equal(t, "submitted", s.Phase().String())
}
