package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/procurelens/supplier-risk-service/internal/domain/model"
)

// SupplierInput is one row of the supplier master table as supplied by the
// caller. Optional columns are pointers; nil means the column is absent.
type SupplierInput struct {
	SupplierID          string   `json:"supplier_id"`
	SupplierName        string   `json:"supplier_name"`
	Country             string   `json:"country"`
	ESGScore            *float64 `json:"esg_score,omitempty"`
	CertificationStatus *string  `json:"certification_status,omitempty"`
	DiversityFlag       *string  `json:"diversity_flag,omitempty"`
}

// PurchaseOrderInput is one purchase order line.
type PurchaseOrderInput struct {
	POID         string          `json:"po_id"`
	SupplierID   string          `json:"supplier_id"`
	ItemID       string          `json:"item_id"`
	Quantity     decimal.Decimal `json:"quantity"`
	UnitPrice    decimal.Decimal `json:"unit_price"`
	OrderDate    time.Time       `json:"order_date"`
	DeliveryDate *time.Time      `json:"delivery_date,omitempty"`
	Department   string          `json:"department"`
	BudgetCode   string          `json:"budget_code"`
}

// DeliveryInput is one recorded delivery against a purchase order.
type DeliveryInput struct {
	POID               string     `json:"po_id"`
	DeliveryDateActual *time.Time `json:"delivery_date_actual,omitempty"`
	DefectFlag         bool       `json:"defect_flag"`
}

// InvoiceInput is one supplier invoice. Accepted for contract parity; the
// risk engine does not derive any sub-score from it.
type InvoiceInput struct {
	InvoiceID   string          `json:"invoice_id"`
	POID        string          `json:"po_id"`
	SupplierID  string          `json:"supplier_id"`
	Amount      decimal.Decimal `json:"amount"`
	InvoiceDate *time.Time      `json:"invoice_date,omitempty"`
}

// ContractInput is one supplier contract. The three expiry columns mirror the
// naming variants seen in source systems; the first populated one wins.
type ContractInput struct {
	ContractID      string          `json:"contract_id"`
	SupplierID      string          `json:"supplier_id"`
	ContractValue   decimal.Decimal `json:"contract_value"`
	EndDate         *time.Time      `json:"end_date,omitempty"`
	ExpiryDate      *time.Time      `json:"expiry_date,omitempty"`
	ContractEndDate *time.Time      `json:"contract_end_date,omitempty"`
}

// AssessSupplierRiskRequest is the input DTO for the AssessSupplierRisk use
// case. Suppliers and PurchaseOrders are required; the other tables are
// optional.
type AssessSupplierRiskRequest struct {
	TenantID       uuid.UUID            `json:"tenant_id"`
	Suppliers      []SupplierInput      `json:"suppliers"`
	PurchaseOrders []PurchaseOrderInput `json:"purchase_orders"`
	Deliveries     []DeliveryInput      `json:"deliveries,omitempty"`
	Invoices       []InvoiceInput       `json:"invoices,omitempty"`
	Contracts      []ContractInput      `json:"contracts,omitempty"`
}

// SupplierRiskRow is one scored supplier in the response, sorted position
// preserved from the engine (total risk score descending).
type SupplierRiskRow struct {
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

// AssessmentResponse is the output DTO for an assessment. ID is uuid.Nil and
// Suppliers empty on the "no data" short-circuit.
type AssessmentResponse struct {
	ID              uuid.UUID         `json:"id"`
	TenantID        uuid.UUID         `json:"tenant_id"`
	Suppliers       []SupplierRiskRow `json:"suppliers"`
	HighRiskCount   int               `json:"high_risk_count"`
	MediumRiskCount int               `json:"medium_risk_count"`
	LowRiskCount    int               `json:"low_risk_count"`
	Summary         string            `json:"summary"`
	AssessedAt      time.Time         `json:"assessed_at"`
}

// GetAssessmentRequest is the input DTO for retrieving an assessment.
type GetAssessmentRequest struct {
	TenantID     uuid.UUID `json:"tenant_id"`
	AssessmentID uuid.UUID `json:"assessment_id"`
}

// ToModel converts the request tables to domain tables.
func (r AssessSupplierRiskRequest) ToModel() (
	[]model.Supplier,
	[]model.PurchaseOrder,
	[]model.Delivery,
	[]model.Invoice,
	[]model.Contract,
) {
	suppliers := make([]model.Supplier, 0, len(r.Suppliers))
	for _, s := range r.Suppliers {
		suppliers = append(suppliers, model.Supplier{
			SupplierID:          s.SupplierID,
			SupplierName:        s.SupplierName,
			Country:             s.Country,
			ESGScore:            s.ESGScore,
			CertificationStatus: s.CertificationStatus,
			DiversityFlag:       s.DiversityFlag,
		})
	}

	orders := make([]model.PurchaseOrder, 0, len(r.PurchaseOrders))
	for _, po := range r.PurchaseOrders {
		orders = append(orders, model.PurchaseOrder{
			POID:             po.POID,
			SupplierID:       po.SupplierID,
			ItemID:           po.ItemID,
			Quantity:         po.Quantity,
			UnitPrice:        po.UnitPrice,
			OrderDate:        po.OrderDate,
			ExpectedDelivery: po.DeliveryDate,
			Department:       po.Department,
			BudgetCode:       po.BudgetCode,
		})
	}

	deliveries := make([]model.Delivery, 0, len(r.Deliveries))
	for _, d := range r.Deliveries {
		deliveries = append(deliveries, model.Delivery{
			POID:        d.POID,
			DeliveredAt: d.DeliveryDateActual,
			Defective:   d.DefectFlag,
		})
	}

	invoices := make([]model.Invoice, 0, len(r.Invoices))
	for _, inv := range r.Invoices {
		invoices = append(invoices, model.Invoice{
			InvoiceID:   inv.InvoiceID,
			POID:        inv.POID,
			SupplierID:  inv.SupplierID,
			Amount:      inv.Amount,
			InvoiceDate: inv.InvoiceDate,
		})
	}

	contracts := make([]model.Contract, 0, len(r.Contracts))
	for _, c := range r.Contracts {
		contracts = append(contracts, model.Contract{
			ContractID:      c.ContractID,
			SupplierID:      c.SupplierID,
			ContractValue:   c.ContractValue,
			EndDate:         c.EndDate,
			ExpiryDate:      c.ExpiryDate,
			ContractEndDate: c.ContractEndDate,
		})
	}

	return suppliers, orders, deliveries, invoices, contracts
}

// FromModel maps a persisted assessment to the response DTO.
func FromModel(a *model.RiskAssessment) AssessmentResponse {
	return AssessmentResponse{
		ID:              a.ID(),
		TenantID:        a.TenantID(),
		Suppliers:       rowsFromProfiles(a.Profiles()),
		HighRiskCount:   a.HighRiskCount(),
		MediumRiskCount: a.MediumRiskCount(),
		LowRiskCount:    a.LowRiskCount(),
		Summary:         a.Summary(),
		AssessedAt:      a.AssessedAt(),
	}
}

func rowsFromProfiles(profiles []model.SupplierRiskProfile) []SupplierRiskRow {
	rows := make([]SupplierRiskRow, 0, len(profiles))
	for _, p := range profiles {
		rows = append(rows, SupplierRiskRow{
			SupplierID:        p.SupplierID,
			SupplierName:      p.SupplierName,
			Country:           p.Country,
			TotalSpend:        p.TotalSpend.String(),
			SpendPercentage:   p.SpendPercentage,
			FinancialRisk:     p.FinancialRisk,
			ConcentrationRisk: p.ConcentrationRisk,
			GeographicRisk:    p.GeographicRisk,
			PerformanceRisk:   p.PerformanceRisk,
			DefectRisk:        p.DefectRisk,
			ContractRisk:      p.ContractRisk,
			ExpiryRisk:        p.ExpiryRisk,
			ComplianceRisk:    p.ComplianceRisk,
			DiversityRisk:     p.DiversityRisk,
			TotalRiskScore:    p.TotalRiskScore,
			RiskLevel:         p.RiskLevel.String(),
		})
	}
	return rows
}
