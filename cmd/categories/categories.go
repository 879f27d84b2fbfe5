// Package categories shows the active category rules
package categories

import (
	"fmt"
	"io"
	"strings"

	"fjacquet/sheet-ledger/cmd/common"
	"fjacquet/sheet-ledger/cmd/root"
	"fjacquet/sheet-ledger/internal/categorizer"
	"fjacquet/sheet-ledger/internal/models"

	"github.com/spf13/cobra"
)

var dumpPath string

// Cmd represents the categories command
var Cmd = &cobra.Command{
	Use:   "categories",
	Short: "Show the category rules",
	Long: `Show the type and text rules read from the categories sheet, or from the
rules file when --rules is set. --dump writes them to a YAML rules file.`,
	Args: cobra.NoArgs,
	RunE: categoriesFunc,
}

func init() {
	Cmd.Flags().StringVar(&dumpPath, "dump", "", "Write the rules to this YAML file")
}

func categoriesFunc(cmd *cobra.Command, args []string) error {
	svc, err := common.Service()
	if err != nil {
		return err
	}
	rs, err := svc.Rules(cmd.Context())
	if err != nil {
		return err
	}

	if dumpPath != "" {
		if err := categorizer.SaveRulesToYAML(rs, dumpPath, root.GetLogger()); err != nil {
			return err
		}
		root.Success(cmd.OutOrStdout(), "Wrote %d rules to %s", rs.Len(), dumpPath)
		return nil
	}

	PrintRules(cmd.OutOrStdout(), rs)
	return nil
}

// PrintRules lists the type rules, then the text rules.
func PrintRules(w io.Writer, rs models.Ruleset) {
	for _, r := range rs.FromType {
		fmt.Fprintf(w, "type  %-20s %-20s\n", r.Category(), r.Class())
	}
	for _, r := range rs.FromText {
		fmt.Fprintf(w, "text  %-20s %-20s %s\n", r.Category(), r.Class(), strings.Join(r.Keywords(), ", "))
	}
}
