// Package suggest handles the AI suggestion command
package suggest

import (
	"fjacquet/sheet-ledger/cmd/common"
	"fjacquet/sheet-ledger/internal/accounting"

	"github.com/spf13/cobra"
)

// Cmd represents the suggest command
var Cmd = &cobra.Command{
	Use:   "suggest",
	Short: "Ask Gemini to label rows the rules left uncategorized",
	Long: `Offer every uncategorized ledger row to Gemini, choosing among the labels of
the category rules. Needs --ai (or ai.enabled) and GEMINI_API_KEY.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return common.RunPass(cmd, func(svc *accounting.Service) (accounting.Report, error) {
			return svc.Suggest(cmd.Context())
		})
	},
}
