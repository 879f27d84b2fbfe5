// Package common contains shared functionality for command handlers
package common

import (
	"fmt"
	"io"

	"fjacquet/sheet-ledger/cmd/root"
	"fjacquet/sheet-ledger/internal/accounting"
	"fjacquet/sheet-ledger/internal/fileutils"

	"github.com/spf13/cobra"
)

// Service returns the accounting service after checking that the configured
// workbook exists.
func Service() (*accounting.Service, error) {
	c, err := root.GetContainer()
	if err != nil {
		return nil, err
	}
	if _, err := fileutils.ValidFile(c.GetConfig().Workbook); err != nil {
		return nil, fmt.Errorf("workbook: %w", err)
	}
	return c.GetService(), nil
}

// RunPass runs one ledger pass and prints its report.
func RunPass(cmd *cobra.Command, pass func(*accounting.Service) (accounting.Report, error)) error {
	svc, err := Service()
	if err != nil {
		return err
	}
	rep, err := pass(svc)
	if err != nil {
		return err
	}
	PrintReport(cmd.OutOrStdout(), rep)
	return nil
}

// PrintReport prints a one-line summary of rep.
func PrintReport(w io.Writer, rep accounting.Report) {
	switch rep.Pass {
	case accounting.PassInsert:
		root.Success(w, "%s: %d of %d statement rows appended, %d already in the ledger (%d without category)",
			rep.Pass, rep.Stats.Changed, rep.Incoming, rep.Dropped, rep.Stats.Skipped)
	default:
		root.Success(w, "%s: %d of %d rows changed, %d skipped",
			rep.Pass, rep.Stats.Changed, rep.Stats.Rows, rep.Stats.Skipped)
	}
}
