// Package insert handles the statement insert command
package insert

import (
	"fmt"

	"fjacquet/sheet-ledger/cmd/common"
	"fjacquet/sheet-ledger/cmd/root"
	"fjacquet/sheet-ledger/internal/accounting"
	internalcommon "fjacquet/sheet-ledger/internal/common"

	"github.com/spf13/cobra"
)

// Cmd represents the insert command
var Cmd = &cobra.Command{
	Use:   "insert [statement]",
	Short: "Insert a bank statement into the ledger",
	Long: `Insert the rows of a bank statement (.xlsx export or .csv) that are not yet in
the ledger, labeled by the category rules. The statement defaults to the
configured transactions file; the account defaults to the statement's file name.`,
	Args: cobra.MaximumNArgs(1),
	RunE: insertFunc,
}

// Options resolves the insert options from the configuration and arguments.
func Options(args []string) (accounting.InsertOptions, error) {
	c, err := root.GetContainer()
	if err != nil {
		return accounting.InsertOptions{}, err
	}
	cfg := c.GetConfig()

	opts := accounting.InsertOptions{
		TransactionsPath: cfg.Transactions,
		Account:          cfg.Account,
		Bank:             cfg.Bank,
	}
	if len(args) > 0 {
		opts.TransactionsPath = args[0]
	}
	if opts.TransactionsPath == "" {
		return opts, fmt.Errorf("no statement given: pass a file or set --transactions")
	}
	if opts.Account == "" {
		opts.Account = internalcommon.AccountFromFilename(opts.TransactionsPath)
	}
	return opts, nil
}

func insertFunc(cmd *cobra.Command, args []string) error {
	opts, err := Options(args)
	if err != nil {
		return err
	}
	root.GetLogger().Info("Insert command called")
	return common.RunPass(cmd, func(svc *accounting.Service) (accounting.Report, error) {
		return svc.Insert(cmd.Context(), opts)
	})
}
