/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/marcusj6/JumpSearchTree/pkg/bench"
	"github.com/marcusj6/JumpSearchTree/pkg/di"
	"github.com/marcusj6/JumpSearchTree/pkg/dictionary"
)

type contextKey string

const registryContextKey contextKey = "registry"

var container *di.Container

// SetContainer injects the dependency injection container built by main().
func SetContainer(c *di.Container) {
	container = c
}

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "jumptree",
	Short: "JumpTree - a height-bounded B+-tree with Jump Search access",
	Long: `jumptree drives an in-process JumpTree dictionary: bulk construction,
single-key insert/delete/search, diagnostics, benchmarking, an HTTP control
surface, and an interactive shell.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if container == nil {
			container = di.NewContainer()
		}
		cmd.SetContext(context.WithValue(cmd.Context(), registryContextKey, container.GetRegistry()))
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().String("tree", "default", "name of the tree to operate on")
	rootCmd.PersistentFlags().Int("k", 5, "target tree height bound")
	rootCmd.PersistentFlags().Int("b", 4, "initial branching factor")
}

// registryFromContext returns the active tree registry, every subcommand's
// single way of reaching it (the teacher's put.go read its store the same
// way; get.go and delete.go instead built their own store by hand, which
// this CLI does not repeat).
func registryFromContext(cmd *cobra.Command) *bench.Registry {
	reg, _ := cmd.Context().Value(registryContextKey).(*bench.Registry)
	return reg
}

// treeFromFlags fetches or creates the named tree using the --k/--b flags.
func treeFromFlags(cmd *cobra.Command) (string, dictionary.Dictionary, error) {
	name, err := cmd.Flags().GetString("tree")
	if err != nil {
		return "", nil, err
	}
	k, err := cmd.Flags().GetInt("k")
	if err != nil {
		return "", nil, err
	}
	b, err := cmd.Flags().GetInt("b")
	if err != nil {
		return "", nil, err
	}

	reg := registryFromContext(cmd)
	if reg == nil {
		return "", nil, fmt.Errorf("tree registry not available")
	}
	return name, reg.GetOrCreate(name, k, b), nil
}
