package subscribe

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/navarrastar/newsletter-widget/pkg/models"
)

// DefaultEndpoint is the path the widget posts to.
const DefaultEndpoint = "/api/subscribe"

// ErrMalformedResponse is returned when the endpoint answers with a body that
// is not JSON.
var ErrMalformedResponse = errors.New("response body is not JSON")

// Client defines the interface for posting subscriptions to the endpoint
type Client interface {
	Subscribe(ctx context.Context, req models.SubscriptionRequest) error
}

type clientImpl struct {
	baseURL    string
	endpoint   string
	httpClient *http.Client
}

// NewClient creates a client for the endpoint served at baseURL.
// An empty endpoint means DefaultEndpoint.
func NewClient(baseURL, endpoint string) Client {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	return &clientImpl{
		baseURL:    baseURL,
		endpoint:   endpoint,
		httpClient: &http.Client{},
	}
}

// Subscribe posts req as JSON. Any response with a 2xx status and a JSON body
// counts as success; the body's contents are ignored.
func (c *clientImpl) Subscribe(ctx context.Context, req models.SubscriptionRequest) error {
	target, err := url.JoinPath(c.baseURL, c.endpoint)
	if err != nil {
		return fmt.Errorf("error building subscribe URL: %w", err)
	}

	jsonPayload, err := json.Marshal(req)
	if err != nil {
		return fmt.Errorf("error creating payload: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, target, bytes.NewReader(jsonPayload))
	if err != nil {
		return fmt.Errorf("error creating request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("error posting subscription: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("error reading response: %w", err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("error from subscribe endpoint: %s: %s", resp.Status, string(body))
	}

	if !json.Valid(body) {
		return fmt.Errorf("error parsing response: %w", ErrMalformedResponse)
	}

	return nil
}
