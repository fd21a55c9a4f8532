/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

// deleteCmd represents the delete command
var deleteCmd = &cobra.Command{
	Use:   "delete <key>",
	Short: "Delete a key from the tree",
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

		tree.DeleteKey(int32(key))
		rebuilt := tree.LastOpRebuilt()
		cmd.Printf("deleted %d from %q (height=%d)\n", key, name, tree.TreeHeight())
		if rebuilt {
			cmd.Println("tree was rebuilt to restore its height bound")
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(deleteCmd)
}
