// Package regroup handles the regroup command
package regroup

import (
	"fjacquet/sheet-ledger/cmd/common"
	"fjacquet/sheet-ledger/internal/accounting"

	"github.com/spf13/cobra"
)

// Cmd represents the regroup command
var Cmd = &cobra.Command{
	Use:   "regroup",
	Short: "Re-apply the category rules to the ledger",
	Long: `Recompute the category of every ledger row that is not pinned. A row is
pinned by a bold category cell or a note. By default the first note also ends
the pass; use --stop-at-note=false to only skip noted rows.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return common.RunPass(cmd, func(svc *accounting.Service) (accounting.Report, error) {
			return svc.Regroup(cmd.Context())
		})
	},
}
