package service

import (
	"math"
	"time"

	"github.com/shopspring/decimal"

	"github.com/procurelens/supplier-risk-service/internal/domain/model"
)

// contractScores computes contract concentration and expiry risk per supplier.
// Both maps are nil when no contract data is available.
//
// Contract risk normalizes each supplier's total contract value against the
// largest; expiry risk ramps linearly from 0 a full horizon out to 100 at or
// past expiry, using the earliest expiry among the supplier's contracts. A
// supplier with contracts but no usable expiry column keeps the expiry
// default.
func (s *SupplierRiskScorer) contractScores(contracts []model.Contract, asOf time.Time) (contractRisk, expiryRisk map[string]float64) {
	if len(contracts) == 0 {
		return nil, nil
	}

	valueBySupplier := make(map[string]decimal.Decimal)
	earliestExpiry := make(map[string]time.Time)
	for _, c := range contracts {
		valueBySupplier[c.SupplierID] = valueBySupplier[c.SupplierID].Add(c.ContractValue)

		if expiry := c.Expiry(); expiry != nil {
			current, ok := earliestExpiry[c.SupplierID]
			if !ok || expiry.Before(current) {
				earliestExpiry[c.SupplierID] = *expiry
			}
		}
	}

	maxValue := decimal.Zero
	for _, v := range valueBySupplier {
		if v.GreaterThan(maxValue) {
			maxValue = v
		}
	}

	contractRisk = make(map[string]float64, len(valueBySupplier))
	expiryRisk = make(map[string]float64, len(valueBySupplier))
	for supplierID, value := range valueBySupplier {
		if maxValue.IsPositive() {
			contractRisk[supplierID] = value.Div(maxValue).InexactFloat64() * 100
		} else {
			contractRisk[supplierID] = 0
		}

		expiry, ok := earliestExpiry[supplierID]
		if !ok {
			expiryRisk[supplierID] = DefaultSubScores[DimensionExpiry]
			continue
		}
		daysToExpiry := math.Floor(expiry.Sub(asOf).Hours() / 24)
		expiryRisk[supplierID] = clampScore((ExpiryHorizonDays - daysToExpiry) / ExpiryHorizonDays * 100)
	}

	return contractRisk, expiryRisk
}
