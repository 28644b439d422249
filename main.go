// retree parses a regular expression given as its single argument and
// prints the syntax tree to standard output.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/k0kubun/pp/v3"
	"github.com/spf13/cobra"

	"github.com/regex-tools/retree/ast"
)

var version = "0.1.0"

var dumpTree bool

var rootCmd = &cobra.Command{
	Use:   "retree <pattern>",
	Short: "Print the syntax tree of a regular expression",
	Long: `retree parses a regular expression and prints its syntax tree.

The syntax covers literal characters, alternation (|), grouping with
parentheses, the postfix operators *, + and ?, and \ to escape the next
character. The tree is drawn with branch connectors, one node per line.`,
	Example:       `  retree 'ab*|c'`,
	Version:       version,
	Args:          cobra.ExactArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		tree, err := ast.Parse(args[0])
		if err != nil {
			return err
		}
		if dumpTree {
			pp.Fprintln(cmd.ErrOrStderr(), tree)
		}
		fmt.Fprintln(cmd.OutOrStdout(), ast.Render(tree))
		return nil
	},
}

func init() {
	rootCmd.Flags().BoolVar(&dumpTree, "dump", false, "also dump the tree as Go values to stderr")
}

// Exit codes: 0 on success, 1 on a parse error, 2 on a usage error.
func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "retree:", err)
		var perr ast.ParseError
		if errors.As(err, &perr) {
			os.Exit(1)
		}
		os.Exit(2)
	}
}
