package main

import (
	"log/slog"
	"os"

	"github.com/dgallion1/mdsite/internal/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// app carries the state shared by every subcommand.
type app struct {
	v       *viper.Viper
	verbose bool
	log     *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{v: config.New()}

	root := &cobra.Command{
		Use:   "mdsite",
		Short: "Build a static site from Markdown",
		Long: `mdsite renders a content tree of Markdown pages through an HTML template
and mirrors static assets into the public directory.

Examples:
  mdsite build                           # render content/ into public/
  mdsite build --renderer commonmark     # use the CommonMark renderer
  mdsite render post.md                  # print the HTML body of one page
  mdsite render post.md --out post.html  # write one templated page
  mdsite title post.md                   # print the page title
  mdsite serve --port 8090               # HTTP API and site preview

Settings come from flags, MDSITE_* environment variables and an optional
mdsite.yaml in the working directory.`,
		SilenceUsage:      true,
		CompletionOptions: cobra.CompletionOptions{DisableDefaultCmd: true},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := slog.LevelInfo
			if a.verbose {
				level = slog.LevelDebug
			}
			a.log = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
		},
	}

	flags := root.PersistentFlags()
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "Enable debug logging")
	flags.String("content", "content", "Directory of page sources")
	flags.String("static", "static", "Directory of static assets copied verbatim")
	flags.String("public", "public", "Output directory")
	flags.String("template", "template.html", "Page template with {{ Title }} and {{ Content }}")
	flags.String("renderer", "core", "Markdown renderer: core or commonmark")
	bindFlags(a.v, flags.Lookup, map[string]string{
		"content_dir":   "content",
		"static_dir":    "static",
		"public_dir":    "public",
		"template_path": "template",
		"renderer":      "renderer",
	})

	root.AddCommand(newBuildCmd(a), newRenderCmd(a), newTitleCmd(a), newServeCmd(a))
	return root
}

// config resolves the effective configuration for a subcommand.
func (a *app) config() (config.Config, error) {
	cfg, err := config.Load(a.v)
	if err != nil {
		return config.Config{}, err
	}
	return cfg, cfg.Validate()
}

func (a *app) logger() *slog.Logger {
	if a.log == nil {
		return slog.New(slog.NewTextHandler(os.Stderr, nil))
	}
	return a.log
}
