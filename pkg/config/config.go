package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration values
type Config struct {
	Port              string
	GinMode           string
	LogLevel          string
	BaseURL           string
	SubscribeEndpoint string
	FormAction        string
	SendgridAPIKey    string
	FromEmail         string
	FromName          string
	ConfirmationTTL   time.Duration
	PageTitle         string
	Stylesheet        string
	AllowedOrigins    []string
	// Styles maps widget style keys to the scoped class names the host page
	// ships in its stylesheet.
	Styles map[string]string
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("port", "8080")
	v.SetDefault("gin_mode", "release")
	v.SetDefault("log_level", "info")
	v.SetDefault("base_url", "http://localhost:8080")
	v.SetDefault("subscribe_endpoint", "/api/subscribe")
	v.SetDefault("form_action", "/subscribe")
	v.SetDefault("from_email", "newsletter@example.com")
	v.SetDefault("from_name", "Newsletter")
	v.SetDefault("confirmation_ttl", "24h")
	v.SetDefault("page_title", "Newsletter")
	v.SetDefault("stylesheet", "")
	v.SetDefault("allowed_origins", []string{"*"})
	v.SetDefault("styles", map[string]any{
		"subscribeForm":      "styles-module__subscribeForm",
		"subscribeFormField": "styles-module__subscribeFormField",
	})
}

// LoadConfig reads configuration from the environment and, when configFile is
// set, from that file. Environment variables use the upper-cased key names
// (PORT, SENDGRID_API_KEY, ...). List values such as ALLOWED_ORIGINS may be
// separated by commas or spaces.
func LoadConfig(configFile string) (*Config, error) {
	v := viper.New()
	setDefaults(v)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("error reading config file %s: %w", configFile, err)
		}
	}

	ttl := v.GetDuration("confirmation_ttl")
	if ttl <= 0 {
		return nil, fmt.Errorf("confirmation_ttl must be positive, got %q", v.GetString("confirmation_ttl"))
	}

	return &Config{
		Port:              v.GetString("port"),
		GinMode:           v.GetString("gin_mode"),
		LogLevel:          v.GetString("log_level"),
		BaseURL:           strings.TrimRight(v.GetString("base_url"), "/"),
		SubscribeEndpoint: v.GetString("subscribe_endpoint"),
		FormAction:        v.GetString("form_action"),
		SendgridAPIKey:    v.GetString("sendgrid_api_key"),
		FromEmail:         v.GetString("from_email"),
		FromName:          v.GetString("from_name"),
		ConfirmationTTL:   ttl,
		PageTitle:         v.GetString("page_title"),
		Stylesheet:        v.GetString("stylesheet"),
		AllowedOrigins:    splitList(v.GetStringSlice("allowed_origins")),
		Styles:            lowerKeys(v.GetStringMapString("styles")),
	}, nil
}

// splitList flattens comma-separated entries. Env values arrive as one
// string that viper splits only on whitespace.
func splitList(items []string) []string {
	var out []string
	for _, item := range items {
		for _, part := range strings.Split(item, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}

// lowerKeys normalizes map keys, which viper lower-cases only for some
// sources.
func lowerKeys(m map[string]string) map[string]string {
	out := make(map[string]string, len(m))
	for k, val := range m {
		out[strings.ToLower(k)] = val
	}
	return out
}
