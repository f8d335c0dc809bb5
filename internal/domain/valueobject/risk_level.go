package valueobject

import "fmt"

// RiskLevel is an immutable value object representing the risk tier of a
// supplier.
type RiskLevel struct {
	value string
}

var (
	RiskLevelLow    = RiskLevel{value: "Low"}
	RiskLevelMedium = RiskLevel{value: "Medium"}
	RiskLevelHigh   = RiskLevel{value: "High"}
)

// RiskLevelFromString reconstructs a RiskLevel from its string representation.
func RiskLevelFromString(s string) (RiskLevel, error) {
	switch s {
	case "Low":
		return RiskLevelLow, nil
	case "Medium":
		return RiskLevelMedium, nil
	case "High":
		return RiskLevelHigh, nil
	default:
		return RiskLevel{}, fmt.Errorf("invalid risk level: %s", s)
	}
}

// RiskLevelFromScore derives the RiskLevel from a total risk score (0-100).
// Bins are half-open: (60,100] is High, (30,60] is Medium and [0,30] is Low,
// so a score of exactly 30 is Low and exactly 60 is Medium.
func RiskLevelFromScore(score float64) RiskLevel {
	switch {
	case score > 60:
		return RiskLevelHigh
	case score > 30:
		return RiskLevelMedium
	default:
		return RiskLevelLow
	}
}

// String returns the string representation.
func (r RiskLevel) String() string {
	return r.value
}

// IsZero returns true if the RiskLevel has not been set.
func (r RiskLevel) IsZero() bool {
	return r.value == ""
}

// Equal checks equality with another RiskLevel.
func (r RiskLevel) Equal(other RiskLevel) bool {
	return r.value == other.value
}
