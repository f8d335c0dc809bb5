package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// PurchaseOrder is one purchase order line. ExpectedDelivery is the promised
// delivery date from the order record; it is optional and only used when
// delivery data is available to score on-time performance against.
type PurchaseOrder struct {
	POID             string
	SupplierID       string
	ItemID           string
	Quantity         decimal.Decimal
	UnitPrice        decimal.Decimal
	OrderDate        time.Time
	ExpectedDelivery *time.Time
	Department       string
	BudgetCode       string
}

// LineSpend returns quantity × unit price for this order line.
func (po PurchaseOrder) LineSpend() decimal.Decimal {
	return po.Quantity.Mul(po.UnitPrice)
}
