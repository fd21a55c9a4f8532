/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"github.com/spf13/cobra"
)

// heightCmd represents the height command
var heightCmd = &cobra.Command{
	Use:   "height",
	Short: "Report the current height of the tree",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		name, tree, err := treeFromFlags(cmd)
		if err != nil {
			return err
		}
		cmd.Printf("%q height=%d size=%d\n", name, tree.TreeHeight(), tree.Size())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(heightCmd)
}
