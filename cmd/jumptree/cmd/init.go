/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/marcusj6/JumpSearchTree/pkg/config"
)

// initCmd represents the init command
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Generate a config file with a fresh API key",
	Long: `Initialize jumptree's configuration for local development.

This command will:
- Generate a config file at --config (or the default platform location)
- Generate a random API key for the HTTP control surface
- Record a workload directory in the config ("jumptree construct" and
  "bench" take the workload file path as their argument instead)

Examples:
  jumptree init
  jumptree init --config=./jumptree.yaml --workload-dir=./workloads --force`,
	RunE: func(cmd *cobra.Command, args []string) error {
		configPath, _ := cmd.Flags().GetString("config")
		if configPath == "" {
			configPath = config.GetDefaultConfigPath()
		}
		workloadDir, _ := cmd.Flags().GetString("workload-dir")
		force, _ := cmd.Flags().GetBool("force")

		if config.ConfigExists(configPath) && !force {
			cmd.Printf("Config already exists at %s. Use --force to overwrite.\n", configPath)
			return nil
		}

		cfg, err := config.BootstrapConfig(configPath, workloadDir)
		if err != nil {
			return err
		}

		cmd.Printf("Wrote config to %s\n", configPath)
		cmd.Printf("API key: %s\n", cfg.Security.APIKey)
		cmd.Printf("Workload directory: %s\n", cfg.WorkloadDir)
		cmd.Printf("\nStart the server with:\n  jumptree serve --config=%s\n", configPath)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
	initCmd.Flags().String("config", "", "path to write the config file (default: platform config dir)")
	initCmd.Flags().String("workload-dir", "./workloads", "workload directory to record in the config file")
	initCmd.Flags().Bool("force", false, "overwrite an existing config file")
}
