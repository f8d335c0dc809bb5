package service

// Missing-data policy. Every fallback applied when an optional table or
// column is absent lives here so the policy is reviewable in one place
// rather than scattered through the scoring code.

const (
	// DefaultESGScore substitutes a missing esg_score before the financial
	// risk subtraction, so financial risk defaults to 50.
	DefaultESGScore = 50.0

	// DefaultOnTimeRate substitutes a missing on-time delivery rate, so
	// performance risk defaults to 50.
	DefaultOnTimeRate = 0.5

	// ExpiryHorizonDays is the window over which contract expiry risk ramps
	// from 0 (a year or more out) to 100 (expired).
	ExpiryHorizonDays = 365.0
)

// Compliance risk from certification_status.
const (
	CertifiedComplianceRisk   = 20.0 // certification_status == "Yes"
	UncertifiedComplianceRisk = 80.0 // certification_status == "No"
)

// Diversity risk from diversity_flag. An unknown or non-diverse supplier is
// treated as moderately riskier and never scores the minimum.
const (
	DiverseSupplierRisk       = 10.0 // diversity_flag == "Yes"
	NonDiverseSupplierRisk    = 30.0 // diversity_flag == "No" or missing
	UnrecognizedDiversityRisk = 20.0 // any other value
)

// DefaultSubScores maps each dimension to the score used when the inputs it
// depends on are absent. Dimensions that are always computable (financial,
// concentration) have no entry. Defect risk defaults to 0 rather than 50:
// no delivery evidence is treated as no evidence of defects, not unknown
// defect behavior.
var DefaultSubScores = map[Dimension]float64{
	DimensionGeographic:  50,
	DimensionPerformance: 50,
	DimensionDefect:      0,
	DimensionContract:    0,
	DimensionExpiry:      50,
	DimensionCompliance:  50,
	DimensionDiversity:   NonDiverseSupplierRisk,
}
