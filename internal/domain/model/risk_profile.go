package model

import (
	"github.com/shopspring/decimal"

	"github.com/procurelens/supplier-risk-service/internal/domain/valueobject"
)

// SupplierRiskProfile is the scored output row for one supplier: the nine
// sub-scores, the weighted total and the derived risk tier. All scores are
// in [0,100].
type SupplierRiskProfile struct {
	SupplierID        string
	SupplierName      string
	Country           string
	TotalSpend        decimal.Decimal
	SpendPercentage   float64
	FinancialRisk     float64
	ConcentrationRisk float64
	GeographicRisk    float64
	PerformanceRisk   float64
	DefectRisk        float64
	ContractRisk      float64
	ExpiryRisk        float64
	ComplianceRisk    float64
	DiversityRisk     float64
	TotalRiskScore    float64
	RiskLevel         valueobject.RiskLevel
}
