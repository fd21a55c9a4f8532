/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/marcusj6/JumpSearchTree/pkg/bptree"
)

// searchCmd represents the search command
var searchCmd = &cobra.Command{
	Use:   "search <key>",
	Short: "Look up a key in the tree",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, err := strconv.ParseInt(args[0], 10, 32)
		if err != nil {
			return fmt.Errorf("key must be an integer: %w", err)
		}

		name, tree, err := treeFromFlags(cmd)
		if err != nil {
			return err
		}

		value := tree.Search(int32(key))
		if value == bptree.NotFound {
			cmd.Printf("%d not found in %q\n", key, name)
			return nil
		}
		cmd.Printf("%d=%d\n", key, value)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(searchCmd)
}
