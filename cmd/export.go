package cmd

import (
	"context"
	"fmt"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/tastebud-labs/foodadmin/internal/export"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the restaurant collection to CSV or Parquet",
	RunE: func(cmd *cobra.Command, args []string) error {
		sess, err := newSession()
		if err != nil {
			return err
		}
		defer sess.close()

		if format, _ := cmd.Flags().GetString("format"); format != "" {
			sess.cfg.ExportFormat = format
		}
		if path, _ := cmd.Flags().GetString("output"); path != "" {
			sess.cfg.ExportPath = path
		}
		if bucket, _ := cmd.Flags().GetString("s3-bucket"); bucket != "" {
			sess.cfg.S3Bucket = bucket
		}

		restaurants, err := sess.api.RestaurantsWithDetails(context.Background())
		if err != nil {
			return err
		}

		bar := progressbar.Default(int64(len(restaurants)), "exporting")
		if err := export.Run(sess.cfg, restaurants, bar); err != nil {
			return err
		}
		fmt.Printf("Exported %d restaurants to %s\n", len(restaurants), sess.cfg.ExportPath)
		return nil
	},
}

func init() {
	exportCmd.Flags().String("format", "", "Export format, csv or parquet")
	exportCmd.Flags().String("output", "", "Output file path")
	exportCmd.Flags().String("s3-bucket", "", "Upload the file to this S3 bucket")
	rootCmd.AddCommand(exportCmd)
}
