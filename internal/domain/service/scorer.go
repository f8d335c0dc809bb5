package service

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/procurelens/supplier-risk-service/internal/domain/model"
	"github.com/procurelens/supplier-risk-service/internal/domain/valueobject"
)

// ScoringInput carries the procurement tables for one assessment run.
// Suppliers and PurchaseOrders are required; Deliveries, Invoices and
// Contracts are optional and may be nil or empty. AsOf pins "today" for
// contract expiry math; the zero value means the current time.
type ScoringInput struct {
	Suppliers      []model.Supplier
	PurchaseOrders []model.PurchaseOrder
	Deliveries     []model.Delivery
	Invoices       []model.Invoice
	Contracts      []model.Contract
	AsOf           time.Time
}

// Scorer defines the interface for supplier risk scoring strategies.
// Both SupplierRiskScorer (rule-based) and HybridScorer (rules + ML)
// implement this.
type Scorer interface {
	Score(input ScoringInput) []model.SupplierRiskProfile
}

// SupplierRiskScorer is a domain service that computes one risk profile per
// supplier from the input tables. The computation is pure: missing optional
// tables degrade individual sub-scores to the defaults in DefaultSubScores
// and never fail the run.
type SupplierRiskScorer struct {
	weights Weights
}

// NewSupplierRiskScorer creates a scorer with the default weight set.
func NewSupplierRiskScorer() *SupplierRiskScorer {
	return &SupplierRiskScorer{weights: DefaultWeights()}
}

// NewSupplierRiskScorerWithWeights creates a scorer with a custom weight set.
// The weights must validate.
func NewSupplierRiskScorerWithWeights(w Weights) (*SupplierRiskScorer, error) {
	if err := w.Validate(); err != nil {
		return nil, err
	}
	return &SupplierRiskScorer{weights: w}, nil
}

// Score produces one SupplierRiskProfile per input supplier, sorted by total
// risk score descending with input order preserved on ties. It returns nil
// when either required table is empty; the caller reports that as a
// "no data" condition rather than an error.
func (s *SupplierRiskScorer) Score(input ScoringInput) []model.SupplierRiskProfile {
	if len(input.Suppliers) == 0 || len(input.PurchaseOrders) == 0 {
		return nil
	}

	asOf := input.AsOf
	if asOf.IsZero() {
		asOf = time.Now().UTC()
	}

	spendBySupplier, grandTotal := aggregateSpend(input.PurchaseOrders)
	countryCounts := countByCountry(input.Suppliers)
	perfRisk, defectRisk := s.deliveryScores(input.PurchaseOrders, input.Deliveries)
	contractRisk, expiryRisk := s.contractScores(input.Contracts, asOf)

	profiles := make([]model.SupplierRiskProfile, 0, len(input.Suppliers))
	for _, sup := range input.Suppliers {
		totalSpend, ok := spendBySupplier[sup.SupplierID]
		if !ok {
			totalSpend = decimal.Zero
		}

		var spendPct float64
		if grandTotal.IsPositive() {
			spendPct = totalSpend.Div(grandTotal).InexactFloat64() * 100
		}

		profiles = append(profiles, model.SupplierRiskProfile{
			SupplierID:      sup.SupplierID,
			SupplierName:    sup.SupplierName,
			Country:         sup.Country,
			TotalSpend:      totalSpend,
			SpendPercentage: spendPct,
			FinancialRisk:   financialRisk(sup.ESGScore),
			GeographicRisk:  geographicRisk(sup.Country, countryCounts),
			PerformanceRisk: subScore(perfRisk, sup.SupplierID, DimensionPerformance),
			DefectRisk:      subScore(defectRisk, sup.SupplierID, DimensionDefect),
			ContractRisk:    subScore(contractRisk, sup.SupplierID, DimensionContract),
			ExpiryRisk:      subScore(expiryRisk, sup.SupplierID, DimensionExpiry),
			ComplianceRisk:  complianceRisk(sup.CertificationStatus),
			DiversityRisk:   diversityRisk(sup.DiversityFlag),
		})
	}

	// Concentration risk normalizes against the largest spender, so the top
	// spender always scores 100.
	var maxSpendPct float64
	for _, p := range profiles {
		if p.SpendPercentage > maxSpendPct {
			maxSpendPct = p.SpendPercentage
		}
	}

	for i := range profiles {
		p := &profiles[i]
		if maxSpendPct > 0 {
			p.ConcentrationRisk = p.SpendPercentage / maxSpendPct * 100
		}
		s.finalize(p)
	}

	sort.SliceStable(profiles, func(i, j int) bool {
		return profiles[i].TotalRiskScore > profiles[j].TotalRiskScore
	})

	return profiles
}

// finalize clamps every sub-score, computes the weighted total and derives
// the risk tier.
func (s *SupplierRiskScorer) finalize(p *model.SupplierRiskProfile) {
	p.FinancialRisk = clampScore(p.FinancialRisk)
	p.ConcentrationRisk = clampScore(p.ConcentrationRisk)
	p.GeographicRisk = clampScore(p.GeographicRisk)
	p.PerformanceRisk = clampScore(p.PerformanceRisk)
	p.DefectRisk = clampScore(p.DefectRisk)
	p.ContractRisk = clampScore(p.ContractRisk)
	p.ExpiryRisk = clampScore(p.ExpiryRisk)
	p.ComplianceRisk = clampScore(p.ComplianceRisk)
	p.DiversityRisk = clampScore(p.DiversityRisk)

	p.TotalRiskScore = s.weights[DimensionFinancial]*p.FinancialRisk +
		s.weights[DimensionConcentration]*p.ConcentrationRisk +
		s.weights[DimensionGeographic]*p.GeographicRisk +
		s.weights[DimensionPerformance]*p.PerformanceRisk +
		s.weights[DimensionDefect]*p.DefectRisk +
		s.weights[DimensionContract]*p.ContractRisk +
		s.weights[DimensionExpiry]*p.ExpiryRisk +
		s.weights[DimensionCompliance]*p.ComplianceRisk +
		s.weights[DimensionDiversity]*p.DiversityRisk

	p.RiskLevel = valueobject.RiskLevelFromScore(p.TotalRiskScore)
}

// aggregateSpend sums quantity × unit price per supplier and returns the
// grand total across all order lines.
func aggregateSpend(orders []model.PurchaseOrder) (map[string]decimal.Decimal, decimal.Decimal) {
	spend := make(map[string]decimal.Decimal, len(orders))
	grand := decimal.Zero
	for _, po := range orders {
		line := po.LineSpend()
		spend[po.SupplierID] = spend[po.SupplierID].Add(line)
		grand = grand.Add(line)
	}
	return spend, grand
}

// countByCountry counts suppliers per country, skipping suppliers with no
// country value.
func countByCountry(suppliers []model.Supplier) map[string]int {
	counts := make(map[string]int)
	for _, sup := range suppliers {
		if sup.Country != "" {
			counts[sup.Country]++
		}
	}
	return counts
}

func financialRisk(esgScore *float64) float64 {
	esg := DefaultESGScore
	if esgScore != nil {
		esg = *esgScore
	}
	return 100 - esg
}

// geographicRisk scores a thin supplier base per region as riskier: a lone
// supplier in a country scores 100, each additional peer divides the risk.
func geographicRisk(country string, countryCounts map[string]int) float64 {
	if len(countryCounts) == 0 || country == "" {
		return DefaultSubScores[DimensionGeographic]
	}
	count := countryCounts[country]
	risk := 100 / float64(count)
	if risk > 100 {
		risk = 100
	}
	return risk
}

func complianceRisk(certificationStatus *string) float64 {
	if certificationStatus == nil {
		return DefaultSubScores[DimensionCompliance]
	}
	switch *certificationStatus {
	case "Yes":
		return CertifiedComplianceRisk
	case "No":
		return UncertifiedComplianceRisk
	default:
		return DefaultSubScores[DimensionCompliance]
	}
}

func diversityRisk(diversityFlag *string) float64 {
	if diversityFlag == nil {
		return NonDiverseSupplierRisk
	}
	switch *diversityFlag {
	case "Yes":
		return DiverseSupplierRisk
	case "No":
		return NonDiverseSupplierRisk
	default:
		return UnrecognizedDiversityRisk
	}
}

// subScore looks a supplier up in a per-dimension score map, falling back to
// the dimension's documented default. A nil map means the dimension's input
// table was absent.
func subScore(scores map[string]float64, supplierID string, dim Dimension) float64 {
	if score, ok := scores[supplierID]; ok {
		return score
	}
	return DefaultSubScores[dim]
}

func clampScore(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
