package cmd

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/navarrastar/newsletter-widget/pkg/api"
	"github.com/navarrastar/newsletter-widget/pkg/clients/sendgrid"
	"github.com/navarrastar/newsletter-widget/pkg/metrics"
	"github.com/navarrastar/newsletter-widget/pkg/services"
	"github.com/navarrastar/newsletter-widget/pkg/utils"
	"github.com/navarrastar/newsletter-widget/pkg/views"
	"github.com/navarrastar/newsletter-widget/pkg/widget"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the widget page and the subscribe endpoint",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe()
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe() error {
	// Initialize API clients
	var mailer sendgrid.Client
	if cfg.SendgridAPIKey != "" {
		mailer = sendgrid.NewClient(cfg.SendgridAPIKey, cfg.FromName, cfg.FromEmail)
	} else {
		utils.Logger.Warn("SENDGRID_API_KEY not set, confirmation links will only be logged")
		mailer = sendgrid.NewLogClient()
	}

	// Initialize services
	m := metrics.New(prometheus.NewRegistry())
	subscriptionService := services.NewSubscriptionService(mailer, m, cfg)

	gin.SetMode(cfg.GinMode)

	// Initialize handlers
	handlers := api.NewHandlers(
		subscriptionService,
		m,
		views.PageProps{Title: cfg.PageTitle, Stylesheet: cfg.Stylesheet},
		widget.WithStyles(widget.NewStyles(cfg.Styles)),
		widget.WithAction(cfg.FormAction),
	)
	router := api.NewRouter(handlers, cfg)

	utils.Logger.Infof("Server starting on port %s", cfg.Port)
	return router.Run(":" + cfg.Port)
}
