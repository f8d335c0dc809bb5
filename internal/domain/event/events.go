package event

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/procurelens/supplier-risk-service/pkg/events"
)

const (
	// EventTypeAssessmentCompleted is emitted when a supplier risk assessment finishes.
	EventTypeAssessmentCompleted = "procurement.risk.assessment.completed"

	// EventTypeHighRiskSuppliersDetected is emitted when an assessment places
	// one or more suppliers in the High risk tier.
	EventTypeHighRiskSuppliersDetected = "procurement.risk.high_risk_suppliers.detected"
)

// AssessmentCompleted is published when a supplier risk assessment has been
// completed for a tenant's procurement data.
type AssessmentCompleted struct {
	events.BaseEvent

	AssessmentID    uuid.UUID `json:"assessment_id"`
	TenantID        uuid.UUID `json:"tenant_id"`
	SupplierCount   int       `json:"supplier_count"`
	HighRiskCount   int       `json:"high_risk_count"`
	MediumRiskCount int       `json:"medium_risk_count"`
	LowRiskCount    int       `json:"low_risk_count"`
	Summary         string    `json:"summary"`
	AssessedAt      time.Time `json:"assessed_at"`
}

// NewAssessmentCompleted creates an AssessmentCompleted event with its payload
// pre-serialized for the broker path.
func NewAssessmentCompleted(
	assessmentID, tenantID uuid.UUID,
	supplierCount, highCount, mediumCount, lowCount int,
	summary string,
	assessedAt time.Time,
) AssessmentCompleted {
	e := AssessmentCompleted{
		AssessmentID:    assessmentID,
		TenantID:        tenantID,
		SupplierCount:   supplierCount,
		HighRiskCount:   highCount,
		MediumRiskCount: mediumCount,
		LowRiskCount:    lowCount,
		Summary:         summary,
		AssessedAt:      assessedAt,
	}
	payload, _ := json.Marshal(e)
	e.BaseEvent = events.NewBaseEvent(EventTypeAssessmentCompleted, assessmentID, "RiskAssessment", payload)
	return e
}

// HighRiskSuppliersDetected is published when an assessment identifies
// suppliers in the High tier, so downstream procurement tooling can alert on
// them.
type HighRiskSuppliersDetected struct {
	events.BaseEvent

	AssessmentID uuid.UUID `json:"assessment_id"`
	TenantID     uuid.UUID `json:"tenant_id"`
	SupplierIDs  []string  `json:"supplier_ids"`
	TopRiskScore float64   `json:"top_risk_score"`
	DetectedAt   time.Time `json:"detected_at"`
}

// NewHighRiskSuppliersDetected creates a HighRiskSuppliersDetected event.
func NewHighRiskSuppliersDetected(
	assessmentID, tenantID uuid.UUID,
	supplierIDs []string,
	topRiskScore float64,
	detectedAt time.Time,
) HighRiskSuppliersDetected {
	e := HighRiskSuppliersDetected{
		AssessmentID: assessmentID,
		TenantID:     tenantID,
		SupplierIDs:  supplierIDs,
		TopRiskScore: topRiskScore,
		DetectedAt:   detectedAt,
	}
	payload, _ := json.Marshal(e)
	e.BaseEvent = events.NewBaseEvent(EventTypeHighRiskSuppliersDetected, assessmentID, "RiskAssessment", payload)
	return e
}
