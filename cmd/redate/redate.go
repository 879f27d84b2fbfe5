// Package redate handles the date reformatting command
package redate

import (
	"fjacquet/sheet-ledger/cmd/common"
	"fjacquet/sheet-ledger/internal/accounting"

	"github.com/spf13/cobra"
)

// Cmd represents the redate command
var Cmd = &cobra.Command{
	Use:   "redate",
	Short: "Rewrite ledger dates with the configured delimiter",
	Long: `Rewrite both date columns of every ledger row with --date-delimiter and
recompute the year and month label with --month-style, --language and --capitalize.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return common.RunPass(cmd, func(svc *accounting.Service) (accounting.Report, error) {
			return svc.Redate(cmd.Context())
		})
	},
}
