// Package accounts lists the account directory
package accounts

import (
	"fjacquet/sheet-ledger/cmd/common"
	"fjacquet/sheet-ledger/cmd/root"

	"github.com/spf13/cobra"
)

// Cmd represents the accounts command
var Cmd = &cobra.Command{
	Use:   "accounts",
	Short: "List the accounts in the workbook's account directory",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := common.Service()
		if err != nil {
			return err
		}
		accounts, err := svc.Accounts(cmd.Context())
		if err != nil {
			return err
		}
		if len(accounts) == 0 {
			root.Note(cmd.OutOrStdout(), "No accounts found")
			return nil
		}
		for _, a := range accounts {
			root.Fprintln(cmd.OutOrStdout(), a.String())
		}
		return nil
	},
}
