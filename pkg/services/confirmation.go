package services

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"

	"github.com/navarrastar/newsletter-widget/pkg/models"
)

var ErrConfirmationExpired = errors.New("confirmation expired")

// PendingConfirmation is a subscriber waiting for its double opt-in link to
// be followed.
type PendingConfirmation struct {
	Token      string
	Subscriber models.Subscriber
	ExpiresAt  time.Time
}

// ConfirmationStore keeps pending confirmations until they are redeemed or
// their timeout passes.
type ConfirmationStore struct {
	pending *cache.Cache
	mu      sync.Mutex
	timeout time.Duration
}

func NewConfirmationStore(timeout time.Duration) *ConfirmationStore {
	return &ConfirmationStore{
		pending: cache.New(timeout, cleanupInterval(timeout)),
		timeout: timeout,
	}
}

func cleanupInterval(timeout time.Duration) time.Duration {
	if timeout < time.Minute {
		return time.Minute
	}
	return timeout
}

// Issue stores sub under a fresh token.
func (s *ConfirmationStore) Issue(sub models.Subscriber) PendingConfirmation {
	pending := PendingConfirmation{
		Token:      uuid.NewString(),
		Subscriber: sub,
		ExpiresAt:  time.Now().Add(s.timeout),
	}
	s.pending.Set(pending.Token, pending, s.timeout)
	return pending
}

// Redeem returns the subscriber stored under token and forgets the token.
// A token can be redeemed once.
func (s *ConfirmationStore) Redeem(token string) (models.Subscriber, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	v, found := s.pending.Get(token)
	if !found {
		return models.Subscriber{}, ErrConfirmationExpired
	}
	s.pending.Delete(token)

	return v.(PendingConfirmation).Subscriber, nil
}

// Revoke drops token without redeeming it.
func (s *ConfirmationStore) Revoke(token string) {
	s.pending.Delete(token)
}

// Len returns the number of unexpired pending confirmations.
func (s *ConfirmationStore) Len() int {
	s.pending.DeleteExpired()
	return s.pending.ItemCount()
}
