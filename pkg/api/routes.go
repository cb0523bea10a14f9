package api

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/navarrastar/newsletter-widget/pkg/config"
	"github.com/navarrastar/newsletter-widget/pkg/middleware"
)

// NewRouter registers every route on a new gin engine
func NewRouter(h *Handlers, cfg *config.Config) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), middleware.RequestLogger(), middleware.CORS(cfg.AllowedOrigins))

	router.GET("/", h.WidgetPage)
	router.POST(cfg.FormAction, h.HandleFormSubmit)

	router.POST(cfg.SubscribeEndpoint, h.HandleSubscribe)
	router.GET(cfg.SubscribeEndpoint+"/confirm", h.HandleConfirm)

	router.GET("/health", h.HealthCheck)
	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(h.metrics.Registry(), promhttp.HandlerOpts{})))

	return router
}
