/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/marcusj6/JumpSearchTree/pkg/workload"
)

// constructCmd represents the construct command
var constructCmd = &cobra.Command{
	Use:   "construct <workload-file>",
	Short: "Bulk-load the tree from a workload file via offline rebuild",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		w, err := workload.Load(args[0])
		if err != nil {
			return fmt.Errorf("failed to load workload: %w", err)
		}

		name, tree, err := treeFromFlags(cmd)
		if err != nil {
			return err
		}

		tree.Construct(w.Records)
		cmd.Printf("constructed %q from %d records (height=%d)\n", name, len(w.Records), tree.TreeHeight())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(constructCmd)
}
