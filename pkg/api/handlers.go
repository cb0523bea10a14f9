package api

import (
	"errors"
	"net/http"

	"github.com/a-h/templ"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/navarrastar/newsletter-widget/pkg/metrics"
	"github.com/navarrastar/newsletter-widget/pkg/models"
	"github.com/navarrastar/newsletter-widget/pkg/services"
	"github.com/navarrastar/newsletter-widget/pkg/utils"
	"github.com/navarrastar/newsletter-widget/pkg/views"
	"github.com/navarrastar/newsletter-widget/pkg/widget"
)

const subscribedMessage = "Received, check your inbox to confirm your subscription"

// Handlers contains all HTTP handlers for the API and the widget pages
type Handlers struct {
	subscriptionService services.SubscriptionService
	metrics             *metrics.Metrics
	page                views.PageProps
	widgetOptions       []widget.Option
}

// NewHandlers creates a new Handlers instance
func NewHandlers(
	subscriptionService services.SubscriptionService,
	m *metrics.Metrics,
	page views.PageProps,
	widgetOptions ...widget.Option,
) *Handlers {
	return &Handlers{
		subscriptionService: subscriptionService,
		metrics:             m,
		page:                page,
		widgetOptions:       widgetOptions,
	}
}

// HealthCheck handler for monitoring
func (h *Handlers) HealthCheck(c *gin.Context) {
	if err := h.subscriptionService.Ping(c.Request.Context()); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status": "unavailable",
			"error":  err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
	})
}

// HandleSubscribe is the JSON endpoint the widget posts to
func (h *Handlers) HandleSubscribe(c *gin.Context) {
	var req models.SubscriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			respondError(c, http.StatusBadRequest, ErrCodeValidation, "First name and a valid email are required")
			return
		}
		respondError(c, http.StatusBadRequest, ErrCodeInvalidPayload, "Invalid JSON payload")
		return
	}

	if err := h.subscriptionService.Subscribe(c.Request.Context(), req); err != nil {
		if errors.Is(err, services.ErrInvalidEmail) {
			respondError(c, http.StatusBadRequest, ErrCodeValidation, "Email required / malformed")
			return
		}
		respondError(c, http.StatusBadGateway, ErrCodeExternalServiceFailure, "Could not send confirmation email")
		return
	}

	c.JSON(http.StatusOK, models.SubscriptionResponse{
		Status:  "ok",
		Message: subscribedMessage,
	})
}

// HandleConfirm redeems the token from a confirmation email
func (h *Handlers) HandleConfirm(c *gin.Context) {
	sub, err := h.subscriptionService.Confirm(c.Request.Context(), c.Query("token"))
	if err != nil {
		h.renderPage(c, http.StatusGone, views.ExpiredPage())
		return
	}
	h.renderPage(c, http.StatusOK, views.ConfirmedPage(sub.FirstName))
}

// WidgetPage renders a page with a freshly mounted widget
func (h *Handlers) WidgetPage(c *gin.Context) {
	h.renderPage(c, http.StatusOK, h.newWidget())
}

// HandleFormSubmit serves browsers that post the widget form directly. The
// widget is wired to the subscription service in-process and the page is
// rendered once its submission settles.
func (h *Handlers) HandleFormSubmit(c *gin.Context) {
	w := h.newWidget()

	sub, err := w.Submit(c.Request.Context(), widget.FormValues{
		FirstName: c.PostForm("firstName"),
		Email:     c.PostForm("email"),
	})
	if err != nil {
		h.renderPage(c, http.StatusBadRequest, w)
		return
	}

	<-sub.Done()
	h.metrics.RecordWidgetSubmission(sub.Err())
	if err := sub.Err(); err != nil {
		utils.Logger.WithError(err).Debug("Widget submission failed, showing thank-you anyway")
	}

	h.renderPage(c, http.StatusOK, w)
}

func (h *Handlers) newWidget() *widget.Widget {
	return widget.New(h.subscriptionService, h.widgetOptions...)
}

func (h *Handlers) renderPage(c *gin.Context, status int, body templ.Component) {
	c.Header("Content-Type", "text/html; charset=utf-8")
	c.Status(status)
	if err := views.Page(h.page, body).Render(c.Request.Context(), c.Writer); err != nil {
		utils.Logger.WithError(err).Error("Error rendering page")
	}
}
