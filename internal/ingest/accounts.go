package ingest

import (
	"errors"
	"strconv"
	"strings"

	"fjacquet/sheet-ledger/internal/models"
	"fjacquet/sheet-ledger/internal/store"
)

// ReadAccounts lists the account directory from row 2: name in B, number in C.
// Reading stops at the first blank name or at a number that is not a whole
// number once spaces and dots are removed.
func ReadAccounts(sheet store.Sheet) ([]models.Account, error) {
	if sheet == nil {
		return nil, errors.New("no accounts sheet given")
	}
	var accounts []models.Account
	for row := range store.Rows(sheet, models.AccountsFirstRow, models.ColAccountName) {
		raw := strings.NewReplacer(" ", "", ".", "").Replace(sheet.Value(models.ColAccountNumber, row))
		number, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			break
		}
		accounts = append(accounts, models.Account{
			Name:   sheet.Value(models.ColAccountName, row),
			Number: number,
		})
	}
	return accounts, nil
}
