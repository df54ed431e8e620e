package main

import (
	"fmt"

	"github.com/docker/go-units"
	"github.com/spf13/cobra"
)

func newNewIDCmd(a *app) *cobra.Command {
	var (
		fileName    string
		size        string
		contentType string
	)

	cmd := &cobra.Command{
		Use:   "new-id",
		Short: "Generate an upload identifier for a file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sizeBytes, err := units.RAMInBytes(size)
			if err != nil {
				return fmt.Errorf("invalid --size %q: %w", size, err)
			}
			uploadID, err := a.uploadService.NewUploadID(fileName, sizeBytes, contentType)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), uploadID)
			return nil
		},
	}

	cmd.Flags().StringVar(&fileName, "name", "", "file name")
	cmd.Flags().StringVar(&size, "size", "", "file size, e.g. 9216 or 12MiB")
	cmd.Flags().StringVar(&contentType, "type", "", "content type")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("size")
	_ = cmd.MarkFlagRequired("type")

	return cmd
}
