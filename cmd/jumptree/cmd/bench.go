/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/marcusj6/JumpSearchTree/pkg/bench"
	"github.com/marcusj6/JumpSearchTree/pkg/workload"
)

// benchCmd represents the bench command
var benchCmd = &cobra.Command{
	Use:   "bench <workload-file>",
	Short: "Run a workload against the tree and print a summary",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		op, err := cmd.Flags().GetString("op")
		if err != nil {
			return err
		}

		w, err := workload.Load(args[0])
		if err != nil {
			return fmt.Errorf("failed to load workload: %w", err)
		}

		name, tree, err := treeFromFlags(cmd)
		if err != nil {
			return err
		}

		harness := bench.NewHarness(nil)
		result := harness.Run(name, tree, w, bench.Op(op))

		cmd.Printf("tree=%s ops=%d rebuilds=%d duration=%s height=%d size=%d avg-node-size=%.2f\n",
			result.TreeName, result.OperationCount, result.RebuildCount, result.TotalDuration,
			result.FinalHeight, result.FinalSize, result.AverageNodeSz)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(benchCmd)
	benchCmd.Flags().String("op", string(bench.OpInsert), "operation to run: insert, delete, or search")
}
