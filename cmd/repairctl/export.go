package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
)

func newExportCmd() *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write every repair request to an xlsx workbook",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			a, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer a.Close()

			if out == "" {
				out = fmt.Sprintf("repair-report-%s.xlsx", time.Now().Format(time.DateOnly))
			}
			f, err := os.Create(out)
			if err != nil {
				return err
			}
			if err := a.Reports.Export(ctx, f); err != nil {
				f.Close()
				return err
			}
			if err := f.Close(); err != nil {
				return err
			}
			cmd.Printf("wrote %s\n", out)
			return nil
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "", "output file (default repair-report-YYYY-MM-DD.xlsx)")
	return cmd
}
