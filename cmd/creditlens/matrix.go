package main

import (
	"fmt"

	"github.com/mero2-web/credit-system-ai/internal/render"
	"github.com/spf13/cobra"
)

func matrixCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "matrix",
		Short: "Show the risk band × decision matrix",
		Long: `Cross-tabulate applications by risk band (DSR < 0.45, 0.45-0.60, > 0.60)
and decision bucket. All nine cells are always present, zero-filled, so the
grid shape never changes with the data.`,
		RunE: runMatrix,
	}

	cmd.Flags().String("format", "table", "output format (table, json)")

	return cmd
}

func runMatrix(cmd *cobra.Command, _ []string) error {
	src, err := openSource()
	if err != nil {
		return err
	}
	defer closeSource(src)

	rep, err := loadReport(cmd.Context(), src)
	if err != nil {
		return err
	}

	format, _ := cmd.Flags().GetString("format")
	switch format {
	case formatJSON:
		return printJSON(rep.Matrix)
	case formatTable:
		fmt.Println("\n" + render.Matrix(rep.Matrix))
	default:
		return fmt.Errorf("invalid output format: %s (valid options: table, json)", format)
	}

	return nil
}
