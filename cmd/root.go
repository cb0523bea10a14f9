// Package cmd wires the newsletter command line.
package cmd

import (
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/navarrastar/newsletter-widget/pkg/config"
	"github.com/navarrastar/newsletter-widget/pkg/utils"
)

const appName = "newsletter"

var (
	configFile string
	cfg        *config.Config
)

var rootCmd = &cobra.Command{
	Use:           appName,
	Short:         "Newsletter subscribe widget and backend",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := godotenv.Load(); err != nil {
			utils.Logger.Debug("No .env file loaded")
		}

		loaded, err := config.LoadConfig(configFile)
		if err != nil {
			return err
		}
		cfg = loaded

		utils.InitLogger(appName, cfg.LogLevel)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "path to a config file (yaml, json or toml)")
}

// Execute runs the root command
func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		utils.Logger.WithError(err).Error("Command failed")
		return err
	}
	return nil
}
