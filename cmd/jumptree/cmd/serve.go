/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/marcusj6/JumpSearchTree/pkg/api"
	"github.com/marcusj6/JumpSearchTree/pkg/config"
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP control surface",
	Long: `Start the JumpTree HTTP control surface with API-key authentication.

Example:
  jumptree serve --config=./jumptree.yaml --port=8080`,
	RunE: func(cmd *cobra.Command, args []string) error {
		configPath, _ := cmd.Flags().GetString("config")
		apiKey, _ := cmd.Flags().GetString("api-key")
		port, _ := cmd.Flags().GetInt("port")

		cfg := config.DefaultConfig()
		if configPath != "" {
			loaded, err := config.LoadConfig(configPath)
			if err != nil {
				return err
			}
			cfg = loaded
		}
		if apiKey != "" {
			cfg.Security.APIKey = apiKey
		}
		if port != 0 {
			cfg.Port = port
		}
		if cfg.Security.APIKey == "" || cfg.Security.APIKey == "auto" {
			return fmt.Errorf("no API key configured: run \"jumptree init\" or pass --api-key")
		}

		reg := registryFromContext(cmd)

		serverConfig := api.ServerConfig{
			Port:     cfg.Port,
			Bind:     cfg.Bind,
			APIKey:   cfg.Security.APIKey,
			DefaultK: cfg.K,
			DefaultB: cfg.B,
		}

		starter := container.GetServerFactory().CreateServerStarter()
		return starter.StartServer(reg, serverConfig)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().String("config", "", "path to a config file (default: built-in defaults)")
	serveCmd.Flags().String("api-key", "", "API key for authentication (overrides config)")
	serveCmd.Flags().Int("port", 0, "port to listen on (overrides config)")
}
