package grpc

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/procurelens/supplier-risk-service/internal/application/usecase"
	"github.com/procurelens/supplier-risk-service/internal/domain/model"
	"github.com/procurelens/supplier-risk-service/internal/domain/service"
	"github.com/procurelens/supplier-risk-service/internal/domain/valueobject"
	"github.com/procurelens/supplier-risk-service/pkg/events"
)

// --- Mock implementations ---

type mockAssessmentRepo struct {
	saveErr        error
	findByIDFunc   func(ctx context.Context, tenantID, id uuid.UUID) (*model.RiskAssessment, error)
	findLatestFunc func(ctx context.Context, tenantID uuid.UUID) (*model.RiskAssessment, error)
}

func (m *mockAssessmentRepo) Save(_ context.Context, _ *model.RiskAssessment) error {
	return m.saveErr
}

func (m *mockAssessmentRepo) FindByID(ctx context.Context, tenantID, id uuid.UUID) (*model.RiskAssessment, error) {
	if m.findByIDFunc != nil {
		return m.findByIDFunc(ctx, tenantID, id)
	}
	return nil, fmt.Errorf("not found")
}

func (m *mockAssessmentRepo) FindLatest(ctx context.Context, tenantID uuid.UUID) (*model.RiskAssessment, error) {
	if m.findLatestFunc != nil {
		return m.findLatestFunc(ctx, tenantID)
	}
	return nil, fmt.Errorf("not found")
}

type mockEventPublisher struct {
	publishErr error
}

func (m *mockEventPublisher) Publish(_ context.Context, _ ...events.DomainEvent) error {
	return m.publishErr
}

// --- Helpers ---

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

func buildHandlerWithRepo(repo *mockAssessmentRepo) *SupplierRiskServiceHandler {
	publisher := &mockEventPublisher{}
	scorer := service.NewSupplierRiskScorer()
	logger := testLogger()

	return NewSupplierRiskServiceHandler(
		usecase.NewAssessSupplierRisk(repo, publisher, scorer),
		usecase.NewGetAssessment(repo),
		logger,
	)
}

func buildTestHandler() *SupplierRiskServiceHandler {
	return buildHandlerWithRepo(&mockAssessmentRepo{})
}

func validRequest() *AssessSupplierRiskRequest {
	return &AssessSupplierRiskRequest{
		TenantID: uuid.New().String(),
		Suppliers: []*SupplierMsg{
			{SupplierID: "S1", SupplierName: "Acme Metals", Country: "US"},
			{SupplierID: "S2", SupplierName: "Globex Parts", Country: "DE"},
		},
		PurchaseOrders: []*PurchaseOrderMsg{
			{POID: "PO-1", SupplierID: "S1", ItemID: "ITEM-1", Quantity: "10", UnitPrice: "100.00", OrderDate: "2026-01-10"},
			{POID: "PO-2", SupplierID: "S2", ItemID: "ITEM-2", Quantity: "5", UnitPrice: "40.00", OrderDate: "2026-01-12"},
		},
	}
}

// --- Tests ---

func TestAssessSupplierRisk(t *testing.T) {
	t.Run("nil request returns InvalidArgument", func(t *testing.T) {
		h := buildTestHandler()
		_, err := h.AssessSupplierRisk(context.Background(), nil)
		requireGRPCCode(t, err, codes.InvalidArgument)
	})

	t.Run("invalid tenant_id returns InvalidArgument", func(t *testing.T) {
		h := buildTestHandler()
		req := validRequest()
		req.TenantID = "bad-uuid"
		_, err := h.AssessSupplierRisk(context.Background(), req)
		requireGRPCCode(t, err, codes.InvalidArgument)
		assert.Contains(t, err.Error(), "invalid tenant_id")
	})

	t.Run("invalid quantity returns InvalidArgument", func(t *testing.T) {
		h := buildTestHandler()
		req := validRequest()
		req.PurchaseOrders[0].Quantity = "not-a-number"
		_, err := h.AssessSupplierRisk(context.Background(), req)
		requireGRPCCode(t, err, codes.InvalidArgument)
		assert.Contains(t, err.Error(), "invalid quantity")
	})

	t.Run("invalid order_date returns InvalidArgument", func(t *testing.T) {
		h := buildTestHandler()
		req := validRequest()
		req.PurchaseOrders[0].OrderDate = "10/01/2026"
		_, err := h.AssessSupplierRisk(context.Background(), req)
		requireGRPCCode(t, err, codes.InvalidArgument)
		assert.Contains(t, err.Error(), "invalid order_date")
	})

	t.Run("happy path returns scored assessment", func(t *testing.T) {
		h := buildTestHandler()
		resp, err := h.AssessSupplierRisk(context.Background(), validRequest())
		require.NoError(t, err)
		require.NotNil(t, resp.Assessment)
		assert.NotEmpty(t, resp.Assessment.ID)
		require.Len(t, resp.Assessment.Suppliers, 2)
		assert.NotEmpty(t, resp.Assessment.Suppliers[0].RiskLevel)
		assert.Contains(t, resp.Assessment.Summary, "suppliers identified")
	})

	t.Run("empty tables return no-data summary", func(t *testing.T) {
		h := buildTestHandler()
		req := &AssessSupplierRiskRequest{TenantID: uuid.New().String()}
		resp, err := h.AssessSupplierRisk(context.Background(), req)
		require.NoError(t, err)
		require.NotNil(t, resp.Assessment)
		assert.Equal(t, model.NoDataSummary, resp.Assessment.Summary)
		assert.Empty(t, resp.Assessment.Suppliers)
	})

	t.Run("save failure returns Internal", func(t *testing.T) {
		repo := &mockAssessmentRepo{saveErr: fmt.Errorf("db error")}
		h := buildHandlerWithRepo(repo)
		_, err := h.AssessSupplierRisk(context.Background(), validRequest())
		requireGRPCCode(t, err, codes.Internal)
	})
}

func TestGetAssessment(t *testing.T) {
	t.Run("nil request returns InvalidArgument", func(t *testing.T) {
		h := buildTestHandler()
		_, err := h.GetAssessment(context.Background(), nil)
		requireGRPCCode(t, err, codes.InvalidArgument)
	})

	t.Run("invalid id returns InvalidArgument", func(t *testing.T) {
		h := buildTestHandler()
		_, err := h.GetAssessment(context.Background(), &GetAssessmentRequest{
			TenantID: uuid.New().String(),
			ID:       "bad-uuid",
		})
		requireGRPCCode(t, err, codes.InvalidArgument)
	})

	t.Run("not found returns Internal", func(t *testing.T) {
		h := buildTestHandler()
		_, err := h.GetAssessment(context.Background(), &GetAssessmentRequest{
			TenantID: uuid.New().String(),
			ID:       uuid.New().String(),
		})
		requireGRPCCode(t, err, codes.Internal)
	})

	t.Run("happy path returns assessment", func(t *testing.T) {
		stored := createTestAssessment()
		repo := &mockAssessmentRepo{
			findByIDFunc: func(_ context.Context, _, _ uuid.UUID) (*model.RiskAssessment, error) {
				return stored, nil
			},
		}
		h := buildHandlerWithRepo(repo)

		resp, err := h.GetAssessment(context.Background(), &GetAssessmentRequest{
			TenantID: stored.TenantID().String(),
			ID:       stored.ID().String(),
		})
		require.NoError(t, err)
		require.NotNil(t, resp.Assessment)
		assert.Equal(t, stored.ID().String(), resp.Assessment.ID)
		require.Len(t, resp.Assessment.Suppliers, 1)
		assert.Equal(t, "High", resp.Assessment.Suppliers[0].RiskLevel)
	})

	t.Run("empty id falls back to latest assessment", func(t *testing.T) {
		stored := createTestAssessment()
		repo := &mockAssessmentRepo{
			findLatestFunc: func(_ context.Context, _ uuid.UUID) (*model.RiskAssessment, error) {
				return stored, nil
			},
		}
		h := buildHandlerWithRepo(repo)

		resp, err := h.GetAssessment(context.Background(), &GetAssessmentRequest{
			TenantID: stored.TenantID().String(),
		})
		require.NoError(t, err)
		require.NotNil(t, resp.Assessment)
		assert.Equal(t, stored.ID().String(), resp.Assessment.ID)
	})
}

func createTestAssessment() *model.RiskAssessment {
	profiles := []model.SupplierRiskProfile{
		{
			SupplierID:      "S1",
			SupplierName:    "Acme Metals",
			Country:         "US",
			TotalSpend:      decimal.NewFromInt(1000),
			SpendPercentage: 100,
			TotalRiskScore:  72.5,
			RiskLevel:       valueobject.RiskLevelHigh,
		},
	}
	return model.Reconstruct(
		uuid.New(), uuid.New(),
		model.InputCounts{Suppliers: 1, PurchaseOrders: 1},
		profiles,
		1, 0, 0,
		"1 high-risk, 0 medium-risk, 0 low-risk suppliers identified",
		time.Date(2026, 2, 1, 9, 0, 0, 0, time.UTC),
		1,
		time.Date(2026, 2, 1, 9, 0, 0, 0, time.UTC),
	)
}

// requireGRPCCode asserts that an error is a gRPC status error with the given code.
func requireGRPCCode(t *testing.T, err error, code codes.Code) {
	t.Helper()
	require.Error(t, err)
	st, ok := status.FromError(err)
	require.True(t, ok, "expected gRPC status error, got %T: %v", err, err)
	assert.Equal(t, code, st.Code(), "expected gRPC code %s, got %s: %s", code, st.Code(), st.Message())
}
