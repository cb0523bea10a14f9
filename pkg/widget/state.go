package widget

import "sync/atomic"

// Phase is where the widget is in its lifecycle.
type Phase int

const (
	// Collecting shows the form.
	Collecting Phase = iota
	// Submitted shows the thank-you message. It is terminal.
	Submitted
)

func (p Phase) String() string {
	switch p {
	case Collecting:
		return "collecting"
	case Submitted:
		return "submitted"
	default:
		return "unknown"
	}
}

// SubmissionState holds the completion flag. The flag starts false and can
// only ever move to true, once; there is no reset.
type SubmissionState struct {
	subscribed atomic.Bool
}

// Subscribed reports whether a submission has settled.
func (s *SubmissionState) Subscribed() bool {
	return s.subscribed.Load()
}

// Phase derives the lifecycle phase from the flag.
func (s *SubmissionState) Phase() Phase {
	if s.Subscribed() {
		return Submitted
	}
	return Collecting
}

// markSubscribed sets the flag and reports whether this call flipped it.
func (s *SubmissionState) markSubscribed() bool {
	return s.subscribed.CompareAndSwap(false, true)
}
