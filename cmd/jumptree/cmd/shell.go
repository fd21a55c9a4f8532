/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/peterh/liner"
	"github.com/spf13/cobra"

	"github.com/marcusj6/JumpSearchTree/pkg/bench"
	"github.com/marcusj6/JumpSearchTree/pkg/bptree"
	"github.com/marcusj6/JumpSearchTree/pkg/dictionary"
)

// shellCmd represents the shell command
var shellCmd = &cobra.Command{
	Use:   "shell",
	Short: "Interactive REPL over an in-process tree",
	Long: `shell exposes insert/delete/search/height/print line-by-line
against an in-process tree, with history and Ctrl-C handling.

Commands:
  insert <key> <value>
  delete <key>
  search <key>
  height
  print
  use <tree-name>
  exit`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		k, _ := cmd.Flags().GetInt("k")
		b, _ := cmd.Flags().GetInt("b")
		reg := registryFromContext(cmd)
		if reg == nil {
			return fmt.Errorf("tree registry not available")
		}

		treeName := "default"
		tree := reg.GetOrCreate(treeName, k, b)

		line := liner.NewLiner()
		defer line.Close()
		line.SetCtrlCAborts(true)

		historyFile := filepath.Join(os.TempDir(), ".jumptree_history")
		if f, err := os.Open(historyFile); err == nil {
			line.ReadHistory(f)
			f.Close()
		}

		cmd.Println("jumptree shell. Type 'exit' to quit, 'help' for commands.")

		for {
			input, err := line.Prompt(fmt.Sprintf("jumptree[%s]> ", treeName))
			if err != nil {
				break
			}

			input = strings.TrimSpace(input)
			if input == "" {
				continue
			}
			line.AppendHistory(input)

			if input == "exit" {
				break
			}

			if err := runShellCommand(cmd, reg, &treeName, &tree, k, b, input); err != nil {
				cmd.Printf("error: %v\n", err)
			}
		}

		if f, err := os.Create(historyFile); err == nil {
			line.WriteHistory(f)
			f.Close()
		}
		return nil
	},
}

func runShellCommand(cmd *cobra.Command, reg *bench.Registry, treeName *string, tree *dictionary.Dictionary, k, b int, input string) error {
	fields := strings.Fields(input)
	switch fields[0] {
	case "help":
		cmd.Println("insert <key> <value> | delete <key> | search <key> | height | print | use <tree-name> | exit")
	case "use":
		if len(fields) != 2 {
			return fmt.Errorf("usage: use <tree-name>")
		}
		*treeName = fields[1]
		*tree = reg.GetOrCreate(*treeName, k, b)
	case "insert":
		if len(fields) != 3 {
			return fmt.Errorf("usage: insert <key> <value>")
		}
		key, err := strconv.ParseInt(fields[1], 10, 32)
		if err != nil {
			return err
		}
		value, err := strconv.ParseInt(fields[2], 10, 32)
		if err != nil {
			return err
		}
		(*tree).InsertKey(int32(key), int32(value))
		if (*tree).LastOpRebuilt() {
			cmd.Println("tree was rebuilt to restore its height bound")
		}
	case "delete":
		if len(fields) != 2 {
			return fmt.Errorf("usage: delete <key>")
		}
		key, err := strconv.ParseInt(fields[1], 10, 32)
		if err != nil {
			return err
		}
		(*tree).DeleteKey(int32(key))
		if (*tree).LastOpRebuilt() {
			cmd.Println("tree was rebuilt to restore its height bound")
		}
	case "search":
		if len(fields) != 2 {
			return fmt.Errorf("usage: search <key>")
		}
		key, err := strconv.ParseInt(fields[1], 10, 32)
		if err != nil {
			return err
		}
		value := (*tree).Search(int32(key))
		if value == bptree.NotFound {
			cmd.Printf("%d not found\n", key)
		} else {
			cmd.Printf("%d=%d\n", key, value)
		}
	case "height":
		cmd.Printf("height=%d size=%d\n", (*tree).TreeHeight(), (*tree).Size())
	case "print":
		(*tree).Print(os.Stdout)
	default:
		return fmt.Errorf("unknown command %q, type 'help'", fields[0])
	}
	return nil
}

func init() {
	rootCmd.AddCommand(shellCmd)
}
