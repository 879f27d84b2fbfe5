package models

import "fmt"

// Account is one entry of the account directory sheet.
type Account struct {
	Name   string
	Number uint64
}

func (a Account) String() string {
	return fmt.Sprintf("%s: %d", a.Name, a.Number)
}
