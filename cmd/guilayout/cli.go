package main

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	gui "github.com/grindlemire/go-gui"
	"github.com/grindlemire/go-gui/internal/document"
)

// cli holds state shared by all commands.
type cli struct {
	logger *log.Logger

	verbose    bool
	configPath string
	viewport   viewportFlags
}

// viewportFlags override the config file and the document. Only flags the
// user set take effect.
type viewportFlags struct {
	width  float64
	height float64
	scale  float64
}

func newCLI(w io.Writer) *cli {
	return &cli{
		logger: log.NewWithOptions(w, log.Options{
			ReportTimestamp: true,
			TimeFormat:      "15:04:05.00",
			Level:           log.InfoLevel,
		}),
	}
}

func (c *cli) rootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "guilayout",
		Short:        "guilayout arranges layout documents",
		Long:         `guilayout measures and arranges YAML layout documents with the gui layout engine and reports each element's bounding box, content rectangle and clip rectangle.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if c.verbose {
				c.logger.SetLevel(log.DebugLevel)
			}
		},
	}

	flags := root.PersistentFlags()
	flags.BoolVarP(&c.verbose, "verbose", "v", false, "enable verbose logging")
	flags.StringVarP(&c.configPath, "config", "c", "", "TOML config file")
	flags.Float64Var(&c.viewport.width, "width", 0, "viewport width in logical pixels")
	flags.Float64Var(&c.viewport.height, "height", 0, "viewport height in logical pixels")
	flags.Float64Var(&c.viewport.scale, "scale", 0, "logical to physical scale factor")

	root.AddCommand(c.arrangeCommand())
	root.AddCommand(c.serveCommand())
	return root
}

// baseConfig loads --config, or the defaults when it is unset.
func (c *cli) baseConfig() (gui.Config, error) {
	if c.configPath == "" {
		return gui.DefaultConfig(), nil
	}
	cfg, err := gui.LoadConfig(c.configPath)
	if err != nil {
		return gui.Config{}, err
	}
	c.logger.Debug("loaded config", "path", c.configPath)
	return cfg, nil
}

// configFor layers the document's viewport and then the flags over base.
func (c *cli) configFor(cmd *cobra.Command, base gui.Config, doc *document.Document) gui.Config {
	cfg := doc.Apply(base)
	flags := cmd.Flags()
	if flags.Changed("width") {
		cfg.Viewport.Width = c.viewport.width
	}
	if flags.Changed("height") {
		cfg.Viewport.Height = c.viewport.height
	}
	if flags.Changed("scale") {
		cfg.Viewport.Scale = c.viewport.scale
	}
	return cfg
}

// result is the arranged geometry of one document.
type result struct {
	File     string        `json:"file,omitempty"`
	Viewport gui.Size      `json:"viewport"`
	Stats    gui.PassStats `json:"stats"`
	Root     *gui.Snapshot `json:"root"`
}

// arrange builds doc under a new System and runs one layout pass.
func arrange(doc *document.Document, cfg gui.Config, logger *log.Logger) (*result, error) {
	tree, err := doc.Build()
	if err != nil {
		return nil, err
	}
	sys, err := gui.NewSystem(cfg, gui.WithLogger(logger))
	if err != nil {
		return nil, err
	}
	defer sys.Close()
	if err := sys.Root().AddChild(tree); err != nil {
		return nil, err
	}
	sys.Layout()

	return &result{
		Viewport: sys.Viewport(),
		Stats:    sys.Stats(),
		Root:     tree.Snapshot(),
	}, nil
}
