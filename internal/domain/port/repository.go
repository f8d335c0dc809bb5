package port

import (
	"context"

	"github.com/google/uuid"

	"github.com/procurelens/supplier-risk-service/internal/domain/model"
	"github.com/procurelens/supplier-risk-service/pkg/events"
)

// AssessmentRepository defines the persistence port for risk assessments.
type AssessmentRepository interface {
	// Save persists an assessment run together with its profile rows.
	Save(ctx context.Context, assessment *model.RiskAssessment) error

	// FindByID retrieves an assessment by its unique identifier.
	FindByID(ctx context.Context, tenantID, id uuid.UUID) (*model.RiskAssessment, error)

	// FindLatest retrieves the most recent assessment for a tenant, or nil
	// when the tenant has none.
	FindLatest(ctx context.Context, tenantID uuid.UUID) (*model.RiskAssessment, error)
}

// EventPublisher defines the port for publishing domain events.
type EventPublisher interface {
	// Publish sends one or more domain events to the messaging infrastructure.
	Publish(ctx context.Context, evts ...events.DomainEvent) error
}

// MLModelClient defines the port for integrating with an external ML model
// for AI-assisted risk scoring (used by the hybrid scorer).
type MLModelClient interface {
	// Predict sends feature data to an ML model and returns a risk score in [0,1].
	Predict(ctx context.Context, features map[string]interface{}) (score float64, err error)
}
