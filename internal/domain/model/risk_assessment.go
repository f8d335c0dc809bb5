package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/procurelens/supplier-risk-service/internal/domain/event"
	"github.com/procurelens/supplier-risk-service/internal/domain/valueobject"
	"github.com/procurelens/supplier-risk-service/pkg/events"
)

// NoDataSummary is the summary returned when a required input table is empty.
// The condition is reportable, not an error.
const NoDataSummary = "No data available"

// InputCounts records how many rows of each input table went into an
// assessment run.
type InputCounts struct {
	Suppliers      int
	PurchaseOrders int
	Deliveries     int
	Invoices       int
	Contracts      int
}

// RiskAssessment is the aggregate root for one supplier risk assessment run:
// the scored profile rows plus run-level metadata and tier counts.
type RiskAssessment struct {
	events.EventCollector

	id          uuid.UUID
	tenantID    uuid.UUID
	inputCounts InputCounts
	profiles    []SupplierRiskProfile
	highCount   int
	mediumCount int
	lowCount    int
	summary     string
	assessedAt  time.Time
	createdAt   time.Time
	version     int
}

// NewRiskAssessment creates an assessment from scored profiles. Profiles are
// expected sorted by total risk score descending, as produced by the scorer.
func NewRiskAssessment(tenantID uuid.UUID, counts InputCounts, profiles []SupplierRiskProfile) (*RiskAssessment, error) {
	if tenantID == uuid.Nil {
		return nil, fmt.Errorf("tenant ID is required")
	}
	if len(profiles) == 0 {
		return nil, fmt.Errorf("at least one supplier risk profile is required")
	}

	now := time.Now().UTC()

	a := &RiskAssessment{
		id:          uuid.New(),
		tenantID:    tenantID,
		inputCounts: counts,
		profiles:    profiles,
		assessedAt:  now,
		createdAt:   now,
		version:     1,
	}

	var highSupplierIDs []string
	for _, p := range profiles {
		switch {
		case p.RiskLevel.Equal(valueobject.RiskLevelHigh):
			a.highCount++
			highSupplierIDs = append(highSupplierIDs, p.SupplierID)
		case p.RiskLevel.Equal(valueobject.RiskLevelMedium):
			a.mediumCount++
		default:
			a.lowCount++
		}
	}

	a.summary = fmt.Sprintf("%d high-risk, %d medium-risk, %d low-risk suppliers identified",
		a.highCount, a.mediumCount, a.lowCount)

	a.Record(event.NewAssessmentCompleted(
		a.id, a.tenantID,
		len(profiles), a.highCount, a.mediumCount, a.lowCount,
		a.summary, a.assessedAt,
	))

	if a.highCount > 0 {
		a.Record(event.NewHighRiskSuppliersDetected(
			a.id, a.tenantID,
			highSupplierIDs, profiles[0].TotalRiskScore, a.assessedAt,
		))
	}

	return a, nil
}

// Reconstruct rebuilds a RiskAssessment from persisted data (no validation,
// no events).
func Reconstruct(
	id, tenantID uuid.UUID,
	counts InputCounts,
	profiles []SupplierRiskProfile,
	highCount, mediumCount, lowCount int,
	summary string,
	assessedAt time.Time,
	version int,
	createdAt time.Time,
) *RiskAssessment {
	return &RiskAssessment{
		id:          id,
		tenantID:    tenantID,
		inputCounts: counts,
		profiles:    profiles,
		highCount:   highCount,
		mediumCount: mediumCount,
		lowCount:    lowCount,
		summary:     summary,
		assessedAt:  assessedAt,
		version:     version,
		createdAt:   createdAt,
	}
}

// --- Accessors ---

func (a *RiskAssessment) ID() uuid.UUID                    { return a.id }
func (a *RiskAssessment) TenantID() uuid.UUID              { return a.tenantID }
func (a *RiskAssessment) Inputs() InputCounts              { return a.inputCounts }
func (a *RiskAssessment) Profiles() []SupplierRiskProfile  { return a.profiles }
func (a *RiskAssessment) HighRiskCount() int               { return a.highCount }
func (a *RiskAssessment) MediumRiskCount() int             { return a.mediumCount }
func (a *RiskAssessment) LowRiskCount() int                { return a.lowCount }
func (a *RiskAssessment) Summary() string                  { return a.summary }
func (a *RiskAssessment) AssessedAt() time.Time            { return a.assessedAt }
func (a *RiskAssessment) CreatedAt() time.Time             { return a.createdAt }
func (a *RiskAssessment) Version() int                     { return a.version }
