package main

import (
	"fmt"
	"os"

	"github.com/dgallion1/mdsite/internal/site"
	"github.com/spf13/cobra"
)

func newRenderCmd(a *app) *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "render <file>",
		Short: "Render one page",
		Long: `Render one page. Without --out the HTML body is printed; with --out the
page is wrapped in the template and written to that path.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.config()
			if err != nil {
				return err
			}
			if out != "" {
				res, err := site.GeneratePage(args[0], cfg.TemplatePath, out, cfg.Renderer)
				if err != nil {
					return err
				}
				a.logger().Info("page written", "path", res.Dest, "title", res.Title, "bytes", res.Bytes)
				return nil
			}

			src, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			pg, err := site.Render(args[0], src, cfg.Renderer)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), pg.Body)
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "", "Write the templated page to this path")
	return cmd
}

func newTitleCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "title <file>",
		Short: "Print the title of a page",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.config()
			if err != nil {
				return err
			}
			src, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			pg, err := site.Render(args[0], src, cfg.Renderer)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), pg.Title)
			return nil
		},
	}
}
