/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// printCmd represents the print command
var printCmd = &cobra.Command{
	Use:   "print",
	Short: "Dump the tree's node structure",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, tree, err := treeFromFlags(cmd)
		if err != nil {
			return err
		}
		tree.Print(os.Stdout)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(printCmd)
}
