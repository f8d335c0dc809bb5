package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Invoice is one supplier invoice. The risk engine accepts the invoice table
// for contract parity with the wider analytics suite but does not currently
// derive any sub-score from it.
type Invoice struct {
	InvoiceID   string
	POID        string
	SupplierID  string
	Amount      decimal.Decimal
	InvoiceDate *time.Time
}
