/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

// insertCmd represents the insert command
var insertCmd = &cobra.Command{
	Use:   "insert <key> <value>",
	Short: "Insert a key-value pair into the tree",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, err := strconv.ParseInt(args[0], 10, 32)
		if err != nil {
			return fmt.Errorf("key must be an integer: %w", err)
		}
		value, err := strconv.ParseInt(args[1], 10, 32)
		if err != nil {
			return fmt.Errorf("value must be an integer: %w", err)
		}

		name, tree, err := treeFromFlags(cmd)
		if err != nil {
			return err
		}

		tree.InsertKey(int32(key), int32(value))
		rebuilt := tree.LastOpRebuilt()
		cmd.Printf("inserted %d=%d into %q (height=%d)\n", key, value, name, tree.TreeHeight())
		if rebuilt {
			cmd.Println("tree was rebuilt to restore its height bound")
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(insertCmd)
}
