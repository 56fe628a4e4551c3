package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/arbor/pkg/cache"
	arberrors "github.com/matzehuels/arbor/pkg/errors"
	"github.com/matzehuels/arbor/pkg/render"
)

// newRenderCmd creates the render command.
func newRenderCmd() *cobra.Command {
	var (
		format   string
		output   string
		noCache  bool
		detailed bool
	)

	cmd := &cobra.Command{
		Use:   "render [outline]",
		Short: "Render an outline as a DOT, SVG, or PNG diagram",
		Long: `Render an outline as a DOT, SVG, or PNG diagram.

The tree is converted to Graphviz DOT and, for svg/png, rasterized through
the embedded Graphviz engine. Rendered images are memoized in the local
cache keyed by the DOT text, so re-rendering an unchanged outline is free.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())
			cfg := configFromContext(cmd.Context())
			if format == "" {
				format = cfg.Format
			}
			format = strings.ToLower(format)
			if err := validateFormat(format); err != nil {
				return err
			}

			t, err := loadTree(argOrStdin(args))
			if err != nil {
				return err
			}
			dot := render.ToDOT(t, render.Options{Detailed: detailed})
			logger.Debug("built DOT", "nodes", t.Len(), "bytes", len(dot))

			var data []byte
			if format == "dot" {
				data = []byte(dot)
			} else {
				c := openCache(noCache, logger)
				defer c.Close()

				key := cache.Key(dot, format)
				cached, hit, err := c.Get(cmd.Context(), key)
				if err != nil {
					logger.Debug("cache read failed", "err", err)
				}
				if hit {
					logger.Debug("cache hit", "key", key)
					data = cached
				} else {
					p := newProgress(logger)
					switch format {
					case "svg":
						data, err = render.RenderSVG(dot)
					case "png":
						data, err = render.RenderPNG(dot)
					}
					if err != nil {
						return arberrors.Wrap(arberrors.ErrCodeInternal, err, "render %s", format)
					}
					p.done(fmt.Sprintf("Rendered %d nodes to %s", t.Len(), format))
					if err := c.Set(cmd.Context(), key, data); err != nil {
						logger.Debug("cache write failed", "err", err)
					}
				}
			}

			if output == "" || output == "-" {
				_, err := cmd.OutOrStdout().Write(data)
				return err
			}
			if err := os.WriteFile(output, data, 0644); err != nil {
				return arberrors.Wrap(arberrors.ErrCodeInternal, err, "write %s", output)
			}
			logger.Info("wrote output", "path", output, "bytes", len(data))
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "", "output format: dot, svg, or png (default from config)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the render cache")
	cmd.Flags().BoolVar(&detailed, "detailed", false, "include level and content in node labels")
	return cmd
}

// validateFormat checks the render format flag.
func validateFormat(format string) error {
	switch strings.ToLower(format) {
	case "dot", "svg", "png":
		return nil
	default:
		return arberrors.New(arberrors.ErrCodeInvalidFormat, "unknown format %q, expected dot, svg, or png", format)
	}
}

// openCache returns the render cache: a file cache under the user cache
// directory, or a null cache when disabled or unavailable.
func openCache(disabled bool, logger *charmlog.Logger) cache.Cache {
	if disabled {
		return cache.NewNullCache()
	}
	base, err := os.UserCacheDir()
	if err != nil {
		logger.Debug("no user cache dir, caching disabled", "err", err)
		return cache.NewNullCache()
	}
	c, err := cache.NewFileCache(filepath.Join(base, "arbor", "render"))
	if err != nil {
		logger.Debug("cache unavailable", "err", err)
		return cache.NewNullCache()
	}
	return c
}
