package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// newPrintCmd creates the print command.
func newPrintCmd() *cobra.Command {
	var noColor bool

	cmd := &cobra.Command{
		Use:   "print [outline]",
		Short: "Pretty-print an outline as an indented tree",
		Long: `Pretty-print an outline as an indented tree.

Reads indented outline text from the given file, or from stdin when no file
(or "-") is given, and writes one line per node: indentation per level, a
"*" marker for internal nodes and "-" for leaves, then the node's name.

Indent width and color defaults come from the config file.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())
			cfg := configFromContext(cmd.Context())

			t, err := loadTree(argOrStdin(args))
			if err != nil {
				return err
			}
			logger.Debug("parsed outline", "nodes", t.Len())

			color := cfg.Color && !noColor
			for _, line := range treeLines(t, cfg.Indent, color) {
				fmt.Fprintln(cmd.OutOrStdout(), line)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&noColor, "no-color", false, "disable styled output")
	return cmd
}
