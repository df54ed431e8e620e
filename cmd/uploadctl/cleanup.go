package main

import (
	"fmt"
	"petfoster-upload/internal/core/domain"
	"petfoster-upload/internal/core/service/upload"

	"github.com/spf13/cobra"
)

func newCleanupCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "cleanup <upload-id>",
		Short: "Delete every stored chunk of an upload",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			uploadID := domain.UploadID(args[0])
			if err := upload.ValidateUploadID(uploadID); err != nil {
				return err
			}
			a.uploadService.CleanupChunks(cmd.Context(), uploadID)
			fmt.Fprintf(cmd.OutOrStdout(), "removed chunks of %s\n", uploadID)
			return nil
		},
	}
}
