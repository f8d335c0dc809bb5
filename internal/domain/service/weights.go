package service

import (
	"fmt"
	"math"
)

// Dimension identifies one independently computed risk dimension.
type Dimension string

const (
	DimensionFinancial     Dimension = "financial_risk"
	DimensionConcentration Dimension = "concentration_risk"
	DimensionGeographic    Dimension = "geographic_risk"
	DimensionPerformance   Dimension = "performance_risk"
	DimensionDefect        Dimension = "defect_risk"
	DimensionContract      Dimension = "contract_risk"
	DimensionExpiry        Dimension = "expiry_risk"
	DimensionCompliance    Dimension = "compliance_risk"
	DimensionDiversity     Dimension = "diversity_risk"
)

// AllDimensions lists every scored dimension in weight-table order.
var AllDimensions = []Dimension{
	DimensionFinancial,
	DimensionConcentration,
	DimensionGeographic,
	DimensionPerformance,
	DimensionDefect,
	DimensionContract,
	DimensionExpiry,
	DimensionCompliance,
	DimensionDiversity,
}

// Weights maps each dimension to its share of the total risk score.
// A valid weight set covers all nine dimensions and sums to 1.0.
type Weights map[Dimension]float64

// DefaultWeights returns the fixed weight distribution used for supplier risk
// scoring.
func DefaultWeights() Weights {
	return Weights{
		DimensionFinancial:     0.20,
		DimensionConcentration: 0.25,
		DimensionGeographic:    0.15,
		DimensionPerformance:   0.20,
		DimensionDefect:        0.10,
		DimensionContract:      0.05,
		DimensionExpiry:        0.02,
		DimensionCompliance:    0.02,
		DimensionDiversity:     0.01,
	}
}

// Sum returns the total of all weights.
func (w Weights) Sum() float64 {
	var total float64
	for _, v := range w {
		total += v
	}
	return total
}

// Validate checks that all nine dimensions are present, no weight is
// negative and the weights sum to 1.0 (±0.001 tolerance).
func (w Weights) Validate() error {
	for _, dim := range AllDimensions {
		v, ok := w[dim]
		if !ok {
			return fmt.Errorf("missing weight for dimension %s", dim)
		}
		if v < 0 {
			return fmt.Errorf("negative weight %f for dimension %s", v, dim)
		}
	}
	if len(w) != len(AllDimensions) {
		return fmt.Errorf("weight set has %d entries, want %d", len(w), len(AllDimensions))
	}
	if sum := w.Sum(); math.Abs(sum-1.0) > 0.001 {
		return fmt.Errorf("weights sum to %.4f, must sum to 1.0", sum)
	}
	return nil
}
