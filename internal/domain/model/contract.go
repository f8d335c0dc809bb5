package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Contract is one supplier contract. Source systems disagree on the name of
// the expiry column, so all three candidates are carried; Expiry resolves
// them in a fixed order of precedence.
type Contract struct {
	ContractID      string
	SupplierID      string
	ContractValue   decimal.Decimal
	EndDate         *time.Time
	ExpiryDate      *time.Time
	ContractEndDate *time.Time
}

// Expiry returns the effective expiry date for this contract, taking the
// first populated column in the order end_date, expiry_date,
// contract_end_date. Returns nil when none is populated.
func (c Contract) Expiry() *time.Time {
	switch {
	case c.EndDate != nil:
		return c.EndDate
	case c.ExpiryDate != nil:
		return c.ExpiryDate
	case c.ContractEndDate != nil:
		return c.ContractEndDate
	default:
		return nil
	}
}
