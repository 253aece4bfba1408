package main

import (
	"fmt"
	"os/signal"
	"syscall"

	"github.com/dgallion1/mdsite/internal/site"
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

func newBuildCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "build",
		Short: "Render the content tree into the public directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.config()
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			job := site.NewJob()
			site.NewBuilder(cfg, nil, a.logger()).Run(ctx, job)
			snap := job.Snapshot()

			out := cmd.OutOrStdout()
			p := snap.Progress
			fmt.Fprintf(out, "%s: %d pages (%d written, %d unchanged, %d failed), %d files copied, %s\n",
				snap.Status, p.TotalPages, p.PagesWritten, p.PagesUnchanged, p.PagesFailed,
				p.FilesCopied, humanize.Bytes(uint64(p.BytesWritten)))
			for _, e := range p.Errors {
				fmt.Fprintf(cmd.ErrOrStderr(), "  %s\n", e)
			}

			if snap.Status != site.StatusCompleted {
				return fmt.Errorf("build %s", snap.Status)
			}
			return nil
		},
	}
	cmd.Flags().Bool("clean", true, "Remove the public directory before building")
	cmd.Flags().StringSlice("ignore", nil, "Glob of content paths to skip (repeatable)")
	cmd.Flags().Int("workers", 4, "Pages rendered in parallel")
	bindFlags(a.v, cmd.Flags().Lookup, map[string]string{
		"clean":        "clean",
		"ignore":       "ignore",
		"worker_count": "workers",
	})
	return cmd
}
