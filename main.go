// Package main provides the entry point for the sheet-ledger CLI application.
package main

import (
	"os"

	"fjacquet/sheet-ledger/cmd/accounts"
	"fjacquet/sheet-ledger/cmd/categories"
	"fjacquet/sheet-ledger/cmd/categorize"
	"fjacquet/sheet-ledger/cmd/export"
	"fjacquet/sheet-ledger/cmd/fill"
	"fjacquet/sheet-ledger/cmd/insert"
	"fjacquet/sheet-ledger/cmd/redate"
	"fjacquet/sheet-ledger/cmd/regroup"
	"fjacquet/sheet-ledger/cmd/root"
	"fjacquet/sheet-ledger/cmd/suggest"
	"fjacquet/sheet-ledger/cmd/update"
)

func init() {
	root.Init()

	root.Cmd.AddCommand(insert.Cmd)
	root.Cmd.AddCommand(fill.Cmd)
	root.Cmd.AddCommand(regroup.Cmd)
	root.Cmd.AddCommand(redate.Cmd)
	root.Cmd.AddCommand(update.Cmd)
	root.Cmd.AddCommand(suggest.Cmd)
	root.Cmd.AddCommand(accounts.Cmd)
	root.Cmd.AddCommand(categories.Cmd)
	root.Cmd.AddCommand(categorize.Cmd)
	root.Cmd.AddCommand(export.Cmd)
}

func main() {
	if err := root.Cmd.Execute(); err != nil {
		root.PrintError(os.Stderr, err)
		os.Exit(1)
	}
}
