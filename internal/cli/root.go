package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	arberrors "github.com/matzehuels/arbor/pkg/errors"
	"github.com/matzehuels/arbor/pkg/outline"
	"github.com/matzehuels/arbor/pkg/tree"
)

var (
	version string // semantic version (e.g., "v1.2.3")
	commit  string // git commit SHA
	date    string // build timestamp
)

// SetVersion sets the version information displayed by --version.
// This is typically called by the main package during initialization with
// values injected via ldflags at build time.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// Execute runs the arbor CLI and returns an error if any command fails.
//
// The function sets up the root command with all subcommands (print, stats,
// render, browse), configures logging based on the --verbose flag, loads the
// optional TOML config, and executes the command tree. The logger and config
// are attached to the command context.
func Execute(ctx context.Context) error {
	var (
		verbose    bool
		configPath string
	)

	root := &cobra.Command{
		Use:          "arbor",
		Short:        "Arbor pretty-prints, inspects, and renders outline trees",
		Long:         `Arbor is a CLI for working with N-ary trees described as indented outline text: pretty-print them, inspect their shape, render them as diagrams, or browse them interactively.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			ctx := withLogger(cmd.Context(), newLogger(os.Stderr, level))

			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}
			cmd.SetContext(withConfig(ctx, cfg))
			return nil
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("arbor %s\ncommit: %s\nbuilt: %s\n", version, commit, date))
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVar(&configPath, "config", "", "config file (default ~/.config/arbor/config.toml)")

	root.AddCommand(newPrintCmd())
	root.AddCommand(newStatsCmd())
	root.AddCommand(newRenderCmd())
	root.AddCommand(newBrowseCmd())

	return root.ExecuteContext(ctx)
}

// configKey is the context key for the loaded config.
const configKey ctxKey = 1

func withConfig(ctx context.Context, cfg Config) context.Context {
	return context.WithValue(ctx, configKey, cfg)
}

// configFromContext retrieves the config from ctx, falling back to the
// defaults when none was attached.
func configFromContext(ctx context.Context) Config {
	if cfg, ok := ctx.Value(configKey).(Config); ok {
		return cfg
	}
	return defaultConfig()
}

// loadTree reads outline text from the named file, or from stdin when name
// is empty or "-", and parses it into a tree.
func loadTree(name string) (tree.Tree, error) {
	var r io.Reader
	switch name {
	case "", "-":
		r = os.Stdin
	default:
		f, err := os.Open(name)
		if err != nil {
			if os.IsNotExist(err) {
				return tree.Tree{}, arberrors.New(arberrors.ErrCodeFileNotFound, "outline %s does not exist", name)
			}
			return tree.Tree{}, arberrors.Wrap(arberrors.ErrCodeInvalidInput, err, "open %s", name)
		}
		defer f.Close()
		r = f
	}
	return outline.Parse(r, tree.Factory{})
}

// argOrStdin extracts the single optional file argument.
func argOrStdin(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}
