// Package export writes the ledger as CSV
package export

import (
	"io"

	"fjacquet/sheet-ledger/cmd/common"
	"fjacquet/sheet-ledger/cmd/root"
	"fjacquet/sheet-ledger/internal/fileutils"

	"github.com/spf13/cobra"
)

var outputPath string

// Cmd represents the export command
var Cmd = &cobra.Command{
	Use:   "export",
	Short: "Export the ledger as CSV",
	Long:  `Write every ledger row as CSV to --output, or to standard output.`,
	Args:  cobra.NoArgs,
	RunE:  exportFunc,
}

func init() {
	Cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output CSV file (default: standard output)")
}

func exportFunc(cmd *cobra.Command, args []string) error {
	svc, err := common.Service()
	if err != nil {
		return err
	}

	var w io.Writer = cmd.OutOrStdout()
	if outputPath != "" {
		f, err := fileutils.CreateFile(outputPath)
		if err != nil {
			return err
		}
		defer f.Close()
		w = f
	}

	n, err := svc.Export(cmd.Context(), w)
	if err != nil {
		return err
	}
	if outputPath != "" {
		root.Success(cmd.OutOrStdout(), "Exported %d rows to %s", n, outputPath)
	}
	return nil
}
