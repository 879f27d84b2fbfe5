// Package categorize handles transaction categorization commands
package categorize

import (
	"fmt"

	"fjacquet/sheet-ledger/cmd/common"
	"fjacquet/sheet-ledger/cmd/root"
	"fjacquet/sheet-ledger/internal/categorizer"

	"github.com/spf13/cobra"
)

var (
	txType string
	txText string
)

// Cmd represents the categorize command
var Cmd = &cobra.Command{
	Use:   "categorize",
	Short: "Show the label the rules give a transaction",
	Long:  `Match a transaction type and text against the category rules and print the resulting category and class.`,
	Args:  cobra.NoArgs,
	RunE:  categorizeFunc,
}

func init() {
	Cmd.Flags().StringVar(&txType, "type", "", "Transaction type")
	Cmd.Flags().StringVar(&txText, "text", "", "Transaction text")
}

func categorizeFunc(cmd *cobra.Command, args []string) error {
	if txType == "" && txText == "" {
		return fmt.Errorf("give at least one of --type and --text")
	}
	svc, err := common.Service()
	if err != nil {
		return err
	}
	rs, err := svc.Rules(cmd.Context())
	if err != nil {
		return err
	}

	label := categorizer.New(rs, root.GetLogger()).CategorizeFields(txType, txText)
	if label.IsEmpty() {
		root.Note(cmd.OutOrStdout(), "No rule matches")
		return nil
	}
	root.Success(cmd.OutOrStdout(), "Category: %s", label.Category)
	root.Success(cmd.OutOrStdout(), "Class: %s", label.Class)
	return nil
}
