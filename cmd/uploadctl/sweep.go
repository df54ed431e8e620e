package main

import (
	"fmt"
	"petfoster-upload/internal/core/service/cleanup"
	"time"

	"github.com/spf13/cobra"
)

func newSweepCmd(a *app) *cobra.Command {
	var olderThan time.Duration

	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Remove uploads with no activity for longer than the abandon threshold",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			abandonAfter := a.cfg.Upload.AbandonAfter
			if olderThan > 0 {
				abandonAfter = olderThan
			}

			service := cleanup.NewCleanupService(a.chunkStore, abandonAfter, a.logger)
			removed, err := service.CleanupAbandonedUploads(cmd.Context(), time.Now())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "removed %d abandoned upload(s) idle for %s or more\n", removed, abandonAfter)
			return nil
		},
	}

	cmd.Flags().DurationVar(&olderThan, "older-than", 0, "override UPLOAD_ABANDON_AFTER")
	return cmd
}
