package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/procurelens/supplier-risk-service/internal/application/dto"
	"github.com/procurelens/supplier-risk-service/internal/domain/port"
)

// GetAssessment retrieves a stored risk assessment.
type GetAssessment struct {
	repo port.AssessmentRepository
}

// NewGetAssessment creates a new GetAssessment use case.
func NewGetAssessment(repo port.AssessmentRepository) *GetAssessment {
	return &GetAssessment{repo: repo}
}

// Execute looks up an assessment by id, or the tenant's most recent one when
// no id is given.
func (uc *GetAssessment) Execute(ctx context.Context, req dto.GetAssessmentRequest) (dto.AssessmentResponse, error) {
	if req.AssessmentID != uuid.Nil {
		assessment, err := uc.repo.FindByID(ctx, req.TenantID, req.AssessmentID)
		if err != nil {
			return dto.AssessmentResponse{}, fmt.Errorf("failed to find assessment: %w", err)
		}
		if assessment == nil {
			return dto.AssessmentResponse{}, fmt.Errorf("assessment not found: %s", req.AssessmentID)
		}
		return dto.FromModel(assessment), nil
	}

	assessment, err := uc.repo.FindLatest(ctx, req.TenantID)
	if err != nil {
		return dto.AssessmentResponse{}, fmt.Errorf("failed to find latest assessment: %w", err)
	}
	if assessment == nil {
		return dto.AssessmentResponse{}, fmt.Errorf("no assessments found for tenant: %s", req.TenantID)
	}
	return dto.FromModel(assessment), nil
}
