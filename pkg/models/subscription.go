package models

import (
	"time"

	"github.com/google/uuid"
)

// SubscriptionRequest is the body the widget posts to the subscribe endpoint.
// Field order matters: it is the order keys appear on the wire. The email
// format is checked by the service after normalization.
type SubscriptionRequest struct {
	FirstName string `json:"firstName" binding:"required"`
	Email     string `json:"email" binding:"required"`
}

// SubscriptionResponse is returned by the subscribe endpoint. The widget
// ignores its contents.
type SubscriptionResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

type SubscriberStatus string

const (
	SubscriberPending   SubscriberStatus = "pending"
	SubscriberConfirmed SubscriberStatus = "confirmed"
)

// Subscriber is a newsletter recipient, keyed by the hash of its normalized email
type Subscriber struct {
	ID          uuid.UUID
	FirstName   string
	Email       string
	EmailHash   string
	Status      SubscriberStatus
	CreatedAt   time.Time
	ConfirmedAt time.Time
}

// NewSubscriber creates a pending subscriber
func NewSubscriber(firstName, email, emailHash string) Subscriber {
	return Subscriber{
		ID:        uuid.New(),
		FirstName: firstName,
		Email:     email,
		EmailHash: emailHash,
		Status:    SubscriberPending,
		CreatedAt: time.Now().UTC().Truncate(time.Second),
	}
}

// Confirm marks the subscriber as confirmed at the given time
func (s *Subscriber) Confirm(at time.Time) {
	s.Status = SubscriberConfirmed
	s.ConfirmedAt = at.UTC().Truncate(time.Second)
}
