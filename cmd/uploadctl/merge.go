package main

import (
	"fmt"
	"petfoster-upload/internal/core/domain"

	"github.com/docker/go-units"
	"github.com/spf13/cobra"
)

func newMergeCmd(a *app) *cobra.Command {
	var (
		total       int
		fileName    string
		contentType string
		size        int64
		checksum    string
		keep        bool
	)

	cmd := &cobra.Command{
		Use:   "merge <upload-id>",
		Short: "Reassemble a complete upload into its final artifact",
		Long: "merge concatenates chunks 0..total-1 into <root>/<upload-id>.<ext>.\n" +
			"Chunks are removed afterwards unless --keep-chunks is set.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			uploadID := domain.UploadID(args[0])
			result, err := a.uploadService.MergeChunks(cmd.Context(), domain.MergeRequest{
				UploadID:         uploadID,
				TotalChunks:      total,
				OriginalFileName: fileName,
				ContentType:      contentType,
				ExpectedSize:     size,
				ExpectedSHA256:   checksum,
			})
			if err != nil {
				return err
			}

			if !keep {
				a.uploadService.CleanupChunks(cmd.Context(), uploadID)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "path:    %s\n", result.Path)
			fmt.Fprintf(out, "size:    %s\n", units.HumanSize(float64(result.SizeBytes)))
			fmt.Fprintf(out, "sha256:  %s\n", result.ChecksumSHA256)
			return nil
		},
	}

	cmd.Flags().IntVar(&total, "total", 0, "number of chunks")
	cmd.Flags().StringVar(&fileName, "name", "", "original file name")
	cmd.Flags().StringVar(&contentType, "type", "", "declared content type")
	cmd.Flags().Int64Var(&size, "size", 0, "expected size in bytes (optional)")
	cmd.Flags().StringVar(&checksum, "sha256", "", "expected sha256, hex or base64 (optional)")
	cmd.Flags().BoolVar(&keep, "keep-chunks", false, "leave chunks on disk after merging")
	_ = cmd.MarkFlagRequired("total")
	_ = cmd.MarkFlagRequired("type")

	return cmd
}
