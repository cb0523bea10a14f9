package services

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/patrickmn/go-cache"

	"github.com/navarrastar/newsletter-widget/pkg/clients/sendgrid"
	"github.com/navarrastar/newsletter-widget/pkg/config"
	"github.com/navarrastar/newsletter-widget/pkg/metrics"
	"github.com/navarrastar/newsletter-widget/pkg/models"
	"github.com/navarrastar/newsletter-widget/pkg/utils"
)

var ErrInvalidEmail = errors.New("invalid email")

var validate = utils.NewValidator()

// SubscriptionService defines the interface behind the subscribe endpoint
type SubscriptionService interface {
	Subscribe(ctx context.Context, req models.SubscriptionRequest) error
	Confirm(ctx context.Context, token string) (models.Subscriber, error)
	Ping(ctx context.Context) error
}

type subscriptionServiceImpl struct {
	mailer        sendgrid.Client
	confirmations *ConfirmationStore
	subscribers   *cache.Cache
	metrics       *metrics.Metrics
	config        *config.Config
}

// NewSubscriptionService creates a new subscription service
func NewSubscriptionService(
	mailer sendgrid.Client,
	m *metrics.Metrics,
	cfg *config.Config,
) SubscriptionService {
	return &subscriptionServiceImpl{
		mailer:        mailer,
		confirmations: NewConfirmationStore(cfg.ConfirmationTTL),
		subscribers:   cache.New(cache.NoExpiration, 0),
		metrics:       m,
		config:        cfg,
	}
}

// Subscribe starts a double opt-in. Already confirmed addresses are accepted
// without sending anything, so the response never reveals whether an address
// is on the list.
func (s *subscriptionServiceImpl) Subscribe(ctx context.Context, req models.SubscriptionRequest) error {
	email := utils.NormalizeEmail(req.Email)
	if err := validate.Var(email, "required,"+utils.HTMLEmailTag); err != nil {
		s.metrics.RecordSubscription(metrics.OutcomeInvalid)
		return fmt.Errorf("%w: %v", ErrInvalidEmail, err)
	}

	emailHash := utils.HashString(email)
	log := utils.Logger.WithField("email_hash", emailHash)

	if _, found := s.subscribers.Get(emailHash); found {
		log.Info("Skipping confirmation, address already subscribed")
		s.metrics.RecordSubscription(metrics.OutcomeAlreadySubscribed)
		return nil
	}

	sub := models.NewSubscriber(req.FirstName, email, emailHash)
	pending := s.confirmations.Issue(sub)

	if err := s.mailer.SendConfirmation(ctx, sub, s.confirmLink(pending.Token)); err != nil {
		s.confirmations.Revoke(pending.Token)
		s.metrics.RecordSubscription(metrics.OutcomeMailFailed)
		log.WithError(err).Error("Error sending confirmation email")
		return err
	}

	log.Info("Subscription pending confirmation")
	s.metrics.RecordSubscription(metrics.OutcomePending)
	return nil
}

// Confirm redeems a confirmation token and records the subscriber.
func (s *subscriptionServiceImpl) Confirm(_ context.Context, token string) (models.Subscriber, error) {
	sub, err := s.confirmations.Redeem(token)
	if err != nil {
		s.metrics.RecordConfirmation(metrics.OutcomeExpired)
		return models.Subscriber{}, err
	}

	sub.Confirm(time.Now())
	s.subscribers.Set(sub.EmailHash, sub, cache.NoExpiration)

	utils.Logger.WithField("email_hash", sub.EmailHash).Info("Subscription confirmed")
	s.metrics.RecordConfirmation(metrics.OutcomeConfirmed)
	return sub, nil
}

func (s *subscriptionServiceImpl) Ping(_ context.Context) error {
	if _, err := url.ParseRequestURI(s.config.BaseURL); err != nil {
		return fmt.Errorf("base URL is not usable for confirmation links: %w", err)
	}
	return nil
}

func (s *subscriptionServiceImpl) confirmLink(token string) string {
	return s.config.BaseURL + s.config.SubscribeEndpoint + "/confirm?" + url.Values{"token": {token}}.Encode()
}
