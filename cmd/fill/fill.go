// Package fill handles the gap-fill command
package fill

import (
	"fjacquet/sheet-ledger/cmd/common"
	"fjacquet/sheet-ledger/internal/accounting"

	"github.com/spf13/cobra"
)

// Cmd represents the fill command
var Cmd = &cobra.Command{
	Use:   "fill",
	Short: "Fill empty categories from offsetting neighbor rows",
	Long: `Give every uncategorized ledger row the category of a nearby row whose amount
offsets it, within --fill-window rows and --fill-margin of a perfect match.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return common.RunPass(cmd, func(svc *accounting.Service) (accounting.Report, error) {
			return svc.Fill(cmd.Context())
		})
	},
}
