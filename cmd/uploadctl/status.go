package main

import (
	"fmt"
	"petfoster-upload/internal/core/domain"

	"github.com/spf13/cobra"
)

func newStatusCmd(a *app) *cobra.Command {
	var total int

	cmd := &cobra.Command{
		Use:   "status <upload-id>",
		Short: "List the chunk indices stored for an upload",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			uploadID := domain.UploadID(args[0])
			indices, err := a.uploadService.CheckUploadStatus(cmd.Context(), uploadID)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "upload:  %s\n", uploadID)
			fmt.Fprintf(out, "stored:  %d %v\n", len(indices), indices)
			if total > 0 {
				fmt.Fprintf(out, "missing: %v\n", missing(indices, total))
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&total, "total", 0, "expected chunk count, reports missing indices when set")
	return cmd
}

func missing(stored []int, total int) []int {
	present := make(map[int]struct{}, len(stored))
	for _, i := range stored {
		present[i] = struct{}{}
	}
	out := []int{}
	for i := 0; i < total; i++ {
		if _, ok := present[i]; !ok {
			out = append(out, i)
		}
	}
	return out
}
