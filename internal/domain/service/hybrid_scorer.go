package service

import (
	"context"
	"log/slog"
	"sort"

	"github.com/procurelens/supplier-risk-service/internal/domain/model"
	"github.com/procurelens/supplier-risk-service/internal/domain/port"
	"github.com/procurelens/supplier-risk-service/internal/domain/valueobject"
)

// HybridScorer combines rule-based scoring with ML model predictions per
// supplier. If the ML model fails for a supplier, that supplier keeps its
// rules-only score.
type HybridScorer struct {
	rules    *SupplierRiskScorer
	ml       port.MLModelClient
	mlWeight float64
	logger   *slog.Logger
}

// NewHybridScorer creates a HybridScorer with the given ML weight (0.0 to 1.0).
// A weight of 0.0 means rules-only; 1.0 means ML-only.
func NewHybridScorer(rules *SupplierRiskScorer, ml port.MLModelClient, mlWeight float64, logger *slog.Logger) *HybridScorer {
	return &HybridScorer{
		rules:    rules,
		ml:       ml,
		mlWeight: mlWeight,
		logger:   logger,
	}
}

// Score runs rule-based scoring first, then blends each supplier's total
// with an ML prediction: combined = (1 - mlWeight) * rules + mlWeight * ml.
// Risk tiers are re-derived and the descending order restored after blending.
func (h *HybridScorer) Score(input ScoringInput) []model.SupplierRiskProfile {
	profiles := h.rules.Score(input)
	if len(profiles) == 0 || h.mlWeight <= 0 {
		return profiles
	}

	for i := range profiles {
		p := &profiles[i]

		features := map[string]interface{}{
			"supplier_id":        p.SupplierID,
			"country":            p.Country,
			"total_spend":        p.TotalSpend.InexactFloat64(),
			"spend_percentage":   p.SpendPercentage,
			"financial_risk":     p.FinancialRisk,
			"concentration_risk": p.ConcentrationRisk,
			"geographic_risk":    p.GeographicRisk,
			"performance_risk":   p.PerformanceRisk,
			"defect_risk":        p.DefectRisk,
		}

		mlScore, err := h.ml.Predict(context.Background(), features)
		if err != nil {
			h.logger.Warn("ML prediction failed, keeping rules-only score",
				"supplier_id", p.SupplierID, "error", err)
			continue
		}

		p.TotalRiskScore = clampScore(p.TotalRiskScore*(1-h.mlWeight) + mlScore*100*h.mlWeight)
		p.RiskLevel = valueobject.RiskLevelFromScore(p.TotalRiskScore)
	}

	sort.SliceStable(profiles, func(i, j int) bool {
		return profiles[i].TotalRiskScore > profiles[j].TotalRiskScore
	})

	return profiles
}
