// Package update runs several ledger passes in one go
package update

import (
	"fjacquet/sheet-ledger/cmd/common"
	"fjacquet/sheet-ledger/cmd/insert"
	"fjacquet/sheet-ledger/cmd/root"
	"fjacquet/sheet-ledger/internal/accounting"

	"github.com/spf13/cobra"
)

var (
	doFill    bool
	doRegroup bool
	doRedate  bool
)

// Cmd represents the update command
var Cmd = &cobra.Command{
	Use:   "update [statement]",
	Short: "Insert a statement and run the maintenance passes",
	Long: `Run insert (when a statement is given or configured), then the selected
maintenance passes, in the order fill, regroup, redate. The first failing pass
stops the run; passes already completed stay saved.`,
	Args: cobra.MaximumNArgs(1),
	RunE: updateFunc,
}

func init() {
	Cmd.Flags().BoolVar(&doFill, "fill", true, "Run the fill pass")
	Cmd.Flags().BoolVar(&doRegroup, "regroup", false, "Run the regroup pass")
	Cmd.Flags().BoolVar(&doRedate, "redate", false, "Run the redate pass")
}

func updateFunc(cmd *cobra.Command, args []string) error {
	c, err := root.GetContainer()
	if err != nil {
		return err
	}
	opts := accounting.UpdateOptions{Fill: doFill, Regroup: doRegroup, Redate: doRedate}
	if len(args) > 0 || c.GetConfig().Transactions != "" {
		insertOpts, err := insert.Options(args)
		if err != nil {
			return err
		}
		opts.Insert = true
		opts.InsertOptions = insertOpts
	}

	svc, err := common.Service()
	if err != nil {
		return err
	}
	reports, err := svc.Update(cmd.Context(), opts)
	for _, rep := range reports {
		common.PrintReport(cmd.OutOrStdout(), rep)
	}
	if err != nil {
		return err
	}
	if len(reports) == 0 {
		root.Note(cmd.OutOrStdout(), "Nothing to do")
	}
	return nil
}
