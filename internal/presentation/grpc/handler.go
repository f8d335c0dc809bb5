package grpc

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/procurelens/supplier-risk-service/internal/application/dto"
	"github.com/procurelens/supplier-risk-service/internal/application/usecase"
)

// Compile-time assertion that SupplierRiskServiceHandler implements SupplierRiskServiceServer.
var _ SupplierRiskServiceServer = (*SupplierRiskServiceHandler)(nil)

// SupplierRiskServiceHandler implements the gRPC SupplierRiskServiceServer interface.
type SupplierRiskServiceHandler struct {
	UnimplementedSupplierRiskServiceServer
	assessSupplierRisk *usecase.AssessSupplierRisk
	getAssessment      *usecase.GetAssessment
	logger             *slog.Logger
}

// NewSupplierRiskServiceHandler creates a new gRPC handler.
func NewSupplierRiskServiceHandler(
	assessSupplierRisk *usecase.AssessSupplierRisk,
	getAssessment *usecase.GetAssessment,
	logger *slog.Logger,
) *SupplierRiskServiceHandler {
	return &SupplierRiskServiceHandler{
		assessSupplierRisk: assessSupplierRisk,
		getAssessment:      getAssessment,
		logger:             logger,
	}
}

// Proto-aligned request/response message types. Decimal values travel as
// strings and dates as RFC 3339 or YYYY-MM-DD strings; empty means absent.

// SupplierMsg represents the proto Supplier message.
type SupplierMsg struct {
	SupplierID          string   `json:"supplier_id"`
	SupplierName        string   `json:"supplier_name"`
	Country             string   `json:"country"`
	ESGScore            *float64 `json:"esg_score,omitempty"`
	CertificationStatus string   `json:"certification_status,omitempty"`
	DiversityFlag       string   `json:"diversity_flag,omitempty"`
}

// PurchaseOrderMsg represents the proto PurchaseOrder message.
type PurchaseOrderMsg struct {
	POID         string `json:"po_id"`
	SupplierID   string `json:"supplier_id"`
	ItemID       string `json:"item_id"`
	Quantity     string `json:"quantity"`
	UnitPrice    string `json:"unit_price"`
	OrderDate    string `json:"order_date"`
	DeliveryDate string `json:"delivery_date,omitempty"`
	Department   string `json:"department"`
	BudgetCode   string `json:"budget_code"`
}

// DeliveryMsg represents the proto Delivery message.
type DeliveryMsg struct {
	POID               string `json:"po_id"`
	DeliveryDateActual string `json:"delivery_date_actual,omitempty"`
	DefectFlag         bool   `json:"defect_flag"`
}

// InvoiceMsg represents the proto Invoice message.
type InvoiceMsg struct {
	InvoiceID   string `json:"invoice_id"`
	POID        string `json:"po_id"`
	SupplierID  string `json:"supplier_id"`
	Amount      string `json:"amount"`
	InvoiceDate string `json:"invoice_date,omitempty"`
}

// ContractMsg represents the proto Contract message.
type ContractMsg struct {
	ContractID      string `json:"contract_id"`
	SupplierID      string `json:"supplier_id"`
	ContractValue   string `json:"contract_value"`
	EndDate         string `json:"end_date,omitempty"`
	ExpiryDate      string `json:"expiry_date,omitempty"`
	ContractEndDate string `json:"contract_end_date,omitempty"`
}

// SupplierRiskProfileMsg represents the proto SupplierRiskProfile message.
type SupplierRiskProfileMsg struct {
	SupplierID        string  `json:"supplier_id"`
	SupplierName      string  `json:"supplier_name"`
	Country           string  `json:"country"`
	TotalSpend        string  `json:"total_spend"`
	SpendPercentage   float64 `json:"spend_percentage"`
	FinancialRisk     float64 `json:"financial_risk"`
	ConcentrationRisk float64 `json:"concentration_risk"`
	GeographicRisk    float64 `json:"geographic_risk"`
	PerformanceRisk   float64 `json:"performance_risk"`
	DefectRisk        float64 `json:"defect_risk"`
	ContractRisk      float64 `json:"contract_risk"`
	ExpiryRisk        float64 `json:"expiry_risk"`
	ComplianceRisk    float64 `json:"compliance_risk"`
	DiversityRisk     float64 `json:"diversity_risk"`
	TotalRiskScore    float64 `json:"total_risk_score"`
	RiskLevel         string  `json:"risk_level"`
}

// RiskAssessmentMsg represents the proto RiskAssessment message.
type RiskAssessmentMsg struct {
	ID              string                    `json:"id"`
	TenantID        string                    `json:"tenant_id"`
	Suppliers       []*SupplierRiskProfileMsg `json:"suppliers"`
	HighRiskCount   int32                     `json:"high_risk_count"`
	MediumRiskCount int32                     `json:"medium_risk_count"`
	LowRiskCount    int32                     `json:"low_risk_count"`
	Summary         string                    `json:"summary"`
	AssessedAt      string                    `json:"assessed_at"`
}

// AssessSupplierRiskRequest represents the proto AssessSupplierRiskRequest message.
type AssessSupplierRiskRequest struct {
	TenantID       string              `json:"tenant_id"`
	Suppliers      []*SupplierMsg      `json:"suppliers"`
	PurchaseOrders []*PurchaseOrderMsg `json:"purchase_orders"`
	Deliveries     []*DeliveryMsg      `json:"deliveries"`
	Invoices       []*InvoiceMsg       `json:"invoices"`
	Contracts      []*ContractMsg      `json:"contracts"`
}

// AssessSupplierRiskResponse represents the proto AssessSupplierRiskResponse message.
type AssessSupplierRiskResponse struct {
	Assessment *RiskAssessmentMsg `json:"assessment"`
}

// GetAssessmentRequest represents the proto GetAssessmentRequest message.
type GetAssessmentRequest struct {
	TenantID string `json:"tenant_id"`
	ID       string `json:"id,omitempty"`
}

// GetAssessmentResponse represents the proto GetAssessmentResponse message.
type GetAssessmentResponse struct {
	Assessment *RiskAssessmentMsg `json:"assessment"`
}

// AssessSupplierRisk handles a supplier risk assessment request.
func (h *SupplierRiskServiceHandler) AssessSupplierRisk(ctx context.Context, req *AssessSupplierRiskRequest) (*AssessSupplierRiskResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	tenantID, err := uuid.Parse(req.TenantID)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "invalid tenant_id: %v", err)
	}

	ucReq, err := toUsecaseRequest(tenantID, req)
	if err != nil {
		return nil, err
	}

	h.logger.Info("assessing supplier risk",
		slog.String("tenant_id", tenantID.String()),
		slog.Int("supplier_count", len(req.Suppliers)),
		slog.Int("purchase_order_count", len(req.PurchaseOrders)),
	)

	result, err := h.assessSupplierRisk.Execute(ctx, ucReq)
	if err != nil {
		h.logger.Error("failed to assess supplier risk",
			slog.String("tenant_id", tenantID.String()),
			slog.String("error", err.Error()),
		)
		return nil, status.Error(codes.Internal, "internal error")
	}

	return &AssessSupplierRiskResponse{Assessment: assessmentMsg(result)}, nil
}

// GetAssessment handles a get assessment request. When ID is empty the
// tenant's most recent assessment is returned.
func (h *SupplierRiskServiceHandler) GetAssessment(ctx context.Context, req *GetAssessmentRequest) (*GetAssessmentResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	tenantID, err := uuid.Parse(req.TenantID)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "invalid tenant_id: %v", err)
	}

	var assessmentID uuid.UUID
	if req.ID != "" {
		assessmentID, err = uuid.Parse(req.ID)
		if err != nil {
			return nil, status.Errorf(codes.InvalidArgument, "invalid id: %v", err)
		}
	}

	result, err := h.getAssessment.Execute(ctx, dto.GetAssessmentRequest{
		TenantID:     tenantID,
		AssessmentID: assessmentID,
	})
	if err != nil {
		return nil, status.Error(codes.Internal, "internal error")
	}

	return &GetAssessmentResponse{Assessment: assessmentMsg(result)}, nil
}

// --- Conversions ---

func toUsecaseRequest(tenantID uuid.UUID, req *AssessSupplierRiskRequest) (dto.AssessSupplierRiskRequest, error) {
	out := dto.AssessSupplierRiskRequest{TenantID: tenantID}

	for _, s := range req.Suppliers {
		if s == nil {
			continue
		}
		out.Suppliers = append(out.Suppliers, dto.SupplierInput{
			SupplierID:          s.SupplierID,
			SupplierName:        s.SupplierName,
			Country:             s.Country,
			ESGScore:            s.ESGScore,
			CertificationStatus: optString(s.CertificationStatus),
			DiversityFlag:       optString(s.DiversityFlag),
		})
	}

	for _, po := range req.PurchaseOrders {
		if po == nil {
			continue
		}
		quantity, err := parseDecimal("quantity", po.Quantity)
		if err != nil {
			return dto.AssessSupplierRiskRequest{}, err
		}
		unitPrice, err := parseDecimal("unit_price", po.UnitPrice)
		if err != nil {
			return dto.AssessSupplierRiskRequest{}, err
		}
		orderDate, err := parseDate("order_date", po.OrderDate)
		if err != nil {
			return dto.AssessSupplierRiskRequest{}, err
		}
		deliveryDate, err := parseOptDate("delivery_date", po.DeliveryDate)
		if err != nil {
			return dto.AssessSupplierRiskRequest{}, err
		}
		out.PurchaseOrders = append(out.PurchaseOrders, dto.PurchaseOrderInput{
			POID:         po.POID,
			SupplierID:   po.SupplierID,
			ItemID:       po.ItemID,
			Quantity:     quantity,
			UnitPrice:    unitPrice,
			OrderDate:    orderDate,
			DeliveryDate: deliveryDate,
			Department:   po.Department,
			BudgetCode:   po.BudgetCode,
		})
	}

	for _, d := range req.Deliveries {
		if d == nil {
			continue
		}
		deliveredAt, err := parseOptDate("delivery_date_actual", d.DeliveryDateActual)
		if err != nil {
			return dto.AssessSupplierRiskRequest{}, err
		}
		out.Deliveries = append(out.Deliveries, dto.DeliveryInput{
			POID:               d.POID,
			DeliveryDateActual: deliveredAt,
			DefectFlag:         d.DefectFlag,
		})
	}

	for _, inv := range req.Invoices {
		if inv == nil {
			continue
		}
		amount, err := parseDecimal("amount", inv.Amount)
		if err != nil {
			return dto.AssessSupplierRiskRequest{}, err
		}
		invoiceDate, err := parseOptDate("invoice_date", inv.InvoiceDate)
		if err != nil {
			return dto.AssessSupplierRiskRequest{}, err
		}
		out.Invoices = append(out.Invoices, dto.InvoiceInput{
			InvoiceID:   inv.InvoiceID,
			POID:        inv.POID,
			SupplierID:  inv.SupplierID,
			Amount:      amount,
			InvoiceDate: invoiceDate,
		})
	}

	for _, c := range req.Contracts {
		if c == nil {
			continue
		}
		value, err := parseDecimal("contract_value", c.ContractValue)
		if err != nil {
			return dto.AssessSupplierRiskRequest{}, err
		}
		endDate, err := parseOptDate("end_date", c.EndDate)
		if err != nil {
			return dto.AssessSupplierRiskRequest{}, err
		}
		expiryDate, err := parseOptDate("expiry_date", c.ExpiryDate)
		if err != nil {
			return dto.AssessSupplierRiskRequest{}, err
		}
		contractEndDate, err := parseOptDate("contract_end_date", c.ContractEndDate)
		if err != nil {
			return dto.AssessSupplierRiskRequest{}, err
		}
		out.Contracts = append(out.Contracts, dto.ContractInput{
			ContractID:      c.ContractID,
			SupplierID:      c.SupplierID,
			ContractValue:   value,
			EndDate:         endDate,
			ExpiryDate:      expiryDate,
			ContractEndDate: contractEndDate,
		})
	}

	return out, nil
}

func assessmentMsg(result dto.AssessmentResponse) *RiskAssessmentMsg {
	suppliers := make([]*SupplierRiskProfileMsg, 0, len(result.Suppliers))
	for _, row := range result.Suppliers {
		suppliers = append(suppliers, &SupplierRiskProfileMsg{
			SupplierID:        row.SupplierID,
			SupplierName:      row.SupplierName,
			Country:           row.Country,
			TotalSpend:        row.TotalSpend,
			SpendPercentage:   row.SpendPercentage,
			FinancialRisk:     row.FinancialRisk,
			ConcentrationRisk: row.ConcentrationRisk,
			GeographicRisk:    row.GeographicRisk,
			PerformanceRisk:   row.PerformanceRisk,
			DefectRisk:        row.DefectRisk,
			ContractRisk:      row.ContractRisk,
			ExpiryRisk:        row.ExpiryRisk,
			ComplianceRisk:    row.ComplianceRisk,
			DiversityRisk:     row.DiversityRisk,
			TotalRiskScore:    row.TotalRiskScore,
			RiskLevel:         row.RiskLevel,
		})
	}

	msg := &RiskAssessmentMsg{
		ID:              result.ID.String(),
		TenantID:        result.TenantID.String(),
		Suppliers:       suppliers,
		HighRiskCount:   int32(result.HighRiskCount),
		MediumRiskCount: int32(result.MediumRiskCount),
		LowRiskCount:    int32(result.LowRiskCount),
		Summary:         result.Summary,
	}
	if !result.AssessedAt.IsZero() {
		msg.AssessedAt = result.AssessedAt.Format(time.RFC3339)
	}
	return msg
}

func optString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func parseDecimal(field, value string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Decimal{}, status.Errorf(codes.InvalidArgument, "invalid %s: %v", field, err)
	}
	return d, nil
}

func parseDate(field, value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return time.Time{}, status.Errorf(codes.InvalidArgument, "invalid %s: %v", field, err)
	}
	return t, nil
}

func parseOptDate(field, value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	t, err := parseDate(field, value)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
