package usecase

import (
	"context"
	"fmt"

	"github.com/procurelens/supplier-risk-service/internal/application/dto"
	"github.com/procurelens/supplier-risk-service/internal/domain/model"
	"github.com/procurelens/supplier-risk-service/internal/domain/port"
	"github.com/procurelens/supplier-risk-service/internal/domain/service"
)

// AssessSupplierRisk is the use case for scoring a tenant's supplier base.
type AssessSupplierRisk struct {
	repo      port.AssessmentRepository
	publisher port.EventPublisher
	scorer    service.Scorer
}

// NewAssessSupplierRisk creates a new AssessSupplierRisk use case.
func NewAssessSupplierRisk(
	repo port.AssessmentRepository,
	publisher port.EventPublisher,
	scorer service.Scorer,
) *AssessSupplierRisk {
	return &AssessSupplierRisk{
		repo:      repo,
		publisher: publisher,
		scorer:    scorer,
	}
}

// Execute runs risk scoring over the supplied tables, persists the result
// and publishes domain events. When a required table is empty it returns an
// empty result with the "no data" summary instead of an error; nothing is
// persisted or published in that case.
func (uc *AssessSupplierRisk) Execute(ctx context.Context, req dto.AssessSupplierRiskRequest) (dto.AssessmentResponse, error) {
	suppliers, orders, deliveries, invoices, contracts := req.ToModel()

	profiles := uc.scorer.Score(service.ScoringInput{
		Suppliers:      suppliers,
		PurchaseOrders: orders,
		Deliveries:     deliveries,
		Invoices:       invoices,
		Contracts:      contracts,
	})

	if len(profiles) == 0 {
		return dto.AssessmentResponse{
			TenantID:  req.TenantID,
			Suppliers: []dto.SupplierRiskRow{},
			Summary:   model.NoDataSummary,
		}, nil
	}

	assessment, err := model.NewRiskAssessment(req.TenantID, model.InputCounts{
		Suppliers:      len(suppliers),
		PurchaseOrders: len(orders),
		Deliveries:     len(deliveries),
		Invoices:       len(invoices),
		Contracts:      len(contracts),
	}, profiles)
	if err != nil {
		return dto.AssessmentResponse{}, fmt.Errorf("failed to create assessment: %w", err)
	}

	if err := uc.repo.Save(ctx, assessment); err != nil {
		return dto.AssessmentResponse{}, fmt.Errorf("failed to save assessment: %w", err)
	}

	if evts := assessment.ClearEvents(); len(evts) > 0 {
		if err := uc.publisher.Publish(ctx, evts...); err != nil {
			return dto.AssessmentResponse{}, fmt.Errorf("failed to publish events: %w", err)
		}
	}

	return dto.FromModel(assessment), nil
}
