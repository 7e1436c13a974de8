package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/grindlemire/go-gui/internal/document"
)

// maxParallel bounds how many documents are arranged at once.
const maxParallel = 8

func (c *cli) arrangeCommand() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "arrange [file.yaml...]",
		Short: "Arrange layout documents and print their geometry",
		Long: `Arrange layout documents and print their geometry.

Each document is built into its own element tree, attached to a fresh
system with the configured viewport, and laid out once. The output lists
every element's bounding box and clip rectangle as a tree, or the full
snapshots as JSON with --json.

Viewport precedence: --width/--height/--scale, then the document's own
width and height, then the config file.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			results, err := c.arrangeFiles(cmd, args)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if asJSON {
				return writeJSON(out, results)
			}
			writeTrees(out, results, isTerminal(out))
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON snapshots")
	return cmd
}

// arrangeFiles arranges every file concurrently. Results keep argument order.
func (c *cli) arrangeFiles(cmd *cobra.Command, paths []string) ([]*result, error) {
	base, err := c.baseConfig()
	if err != nil {
		return nil, err
	}

	results := make([]*result, len(paths))
	g, ctx := errgroup.WithContext(cmd.Context())
	g.SetLimit(maxParallel)

	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			doc, err := document.Load(path)
			if err != nil {
				return err
			}
			res, err := arrange(doc, c.configFor(cmd, base, doc), c.logger.With("file", path))
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			res.File = path
			results[i] = res
			c.logger.Debug("arranged", "file", path, "elements", res.Stats.Arranged, "elapsed", res.Stats.Elapsed)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func writeJSON(w io.Writer, results []*result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if len(results) == 1 {
		return enc.Encode(results[0])
	}
	return enc.Encode(results)
}

// isTerminal reports whether w is a terminal, which enables colored output.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
