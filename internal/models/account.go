package models

import "github.com/shopspring/decimal"

// Entry types accepted by the account ledger.
const (
	EntryTypeDebit  = "Debit"
	EntryTypeCredit = "Credit"
)

// Account is the ledger's view of an account. It is fetched fresh for every
// processing attempt and never cached.
type Account struct {
	ID            int             `json:"id"`
	AccountNumber string          `json:"accountNumber"`
	Balance       decimal.Decimal `json:"balance"`
}

// Entry is a signed posting against an account's balance.
type Entry struct {
	AccountNumber string          `json:"accountNumber"`
	Value         decimal.Decimal `json:"value"`
	Type          string          `json:"type"`
}
