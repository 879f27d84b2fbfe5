package models

// Ledger sheet columns. The layout is shared with existing workbooks and must
// not change.
const (
	ColAccountingDate   = "A"
	ColInterestDate     = "B"
	ColArchiveReference = "C"
	ColCounterAccount   = "D"
	ColType             = "E"
	ColText             = "F"
	ColDebit            = "G"
	ColCredit           = "H"
	ColNet              = "I"
	ColAccount          = "J"
	ColCategory         = "K"
	ColClass            = "L"
	ColYear             = "M"
	ColMonth            = "N"
	ColNote             = "O"
)

// First data row of each sheet kind.
const (
	LedgerFirstRow   = 2
	BankFirstRow     = 4
	AccountsFirstRow = 2
)

// Account directory columns.
const (
	ColAccountName   = "B"
	ColAccountNumber = "C"
)

// Default sheet names.
const (
	DefaultLedgerSheet     = "Kontoutskrift"
	DefaultCategoriesSheet = "Kategorier"
	DefaultAccountsSheet   = "Informasjon"
	DefaultBankSheet       = "Kontoutskrift"
)
