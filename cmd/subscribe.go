package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/navarrastar/newsletter-widget/pkg/clients/subscribe"
	"github.com/navarrastar/newsletter-widget/pkg/widget"
)

var (
	subscribeFirstName string
	subscribeEmail     string
	subscribeBaseURL   string
)

var subscribeCmd = &cobra.Command{
	Use:   "subscribe",
	Short: "Submit the widget against a running endpoint and print the rendered result",
	RunE: func(cmd *cobra.Command, args []string) error {
		baseURL := subscribeBaseURL
		if baseURL == "" {
			baseURL = cfg.BaseURL
		}
		client := subscribe.NewClient(baseURL, cfg.SubscribeEndpoint)
		w := widget.New(client, widget.WithStyles(widget.NewStyles(cfg.Styles)), widget.WithAction(cfg.FormAction))
		return runSubscribe(cmd.Context(), w, widget.FormValues{
			FirstName: subscribeFirstName,
			Email:     subscribeEmail,
		}, cmd.OutOrStdout())
	},
}

func init() {
	subscribeCmd.Flags().StringVar(&subscribeFirstName, "first-name", "", "first name to submit")
	subscribeCmd.Flags().StringVar(&subscribeEmail, "email", "", "email to submit")
	subscribeCmd.Flags().StringVar(&subscribeBaseURL, "endpoint", "", "base URL of the subscribe endpoint (defaults to base_url)")
	rootCmd.AddCommand(subscribeCmd)
}

// runSubscribe submits values through w, waits for the request to settle and
// writes the re-rendered widget to out.
func runSubscribe(ctx context.Context, w *widget.Widget, values widget.FormValues, out io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}

	sub, err := w.Submit(ctx, values)
	if err != nil {
		return fmt.Errorf("form not submitted: %w", err)
	}
	<-sub.Done()

	if err := w.Render(ctx, out); err != nil {
		return fmt.Errorf("error rendering widget: %w", err)
	}
	_, err = fmt.Fprintln(out)
	return err
}
