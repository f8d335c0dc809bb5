package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/procurelens/supplier-risk-service/internal/domain/model"
	"github.com/procurelens/supplier-risk-service/internal/domain/valueobject"
	pkgpostgres "github.com/procurelens/supplier-risk-service/pkg/postgres"
)

// AssessmentRepository implements port.AssessmentRepository using PostgreSQL.
type AssessmentRepository struct {
	pool *pgxpool.Pool
}

// NewAssessmentRepository creates a new PostgreSQL-backed assessment repository.
func NewAssessmentRepository(pool *pgxpool.Pool) *AssessmentRepository {
	return &AssessmentRepository{pool: pool}
}

// Save persists an assessment run and its supplier risk profiles.
func (r *AssessmentRepository) Save(ctx context.Context, assessment *model.RiskAssessment) error {
	return pkgpostgres.WithTransaction(ctx, r.pool, func(tx pgx.Tx) error {
		counts := assessment.Inputs()

		query := `
			INSERT INTO supplier_risk_assessments (
				id, tenant_id,
				supplier_count, purchase_order_count, delivery_count, invoice_count, contract_count,
				high_risk_count, medium_risk_count, low_risk_count,
				summary, assessed_at, version, created_at
			) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
			ON CONFLICT (id) DO UPDATE SET
				supplier_count = EXCLUDED.supplier_count,
				purchase_order_count = EXCLUDED.purchase_order_count,
				delivery_count = EXCLUDED.delivery_count,
				invoice_count = EXCLUDED.invoice_count,
				contract_count = EXCLUDED.contract_count,
				high_risk_count = EXCLUDED.high_risk_count,
				medium_risk_count = EXCLUDED.medium_risk_count,
				low_risk_count = EXCLUDED.low_risk_count,
				summary = EXCLUDED.summary,
				assessed_at = EXCLUDED.assessed_at,
				version = EXCLUDED.version
		`

		_, err := tx.Exec(ctx, query,
			assessment.ID(),
			assessment.TenantID(),
			counts.Suppliers,
			counts.PurchaseOrders,
			counts.Deliveries,
			counts.Invoices,
			counts.Contracts,
			assessment.HighRiskCount(),
			assessment.MediumRiskCount(),
			assessment.LowRiskCount(),
			assessment.Summary(),
			assessment.AssessedAt(),
			assessment.Version(),
			assessment.CreatedAt(),
		)
		if err != nil {
			return fmt.Errorf("failed to save assessment: %w", err)
		}

		// Replace profile rows wholesale; position preserves the engine's sort.
		_, err = tx.Exec(ctx, `DELETE FROM supplier_risk_profiles WHERE assessment_id = $1`, assessment.ID())
		if err != nil {
			return fmt.Errorf("failed to delete old risk profiles: %w", err)
		}

		for i, p := range assessment.Profiles() {
			_, err = tx.Exec(ctx, `
				INSERT INTO supplier_risk_profiles (
					assessment_id, tenant_id, position,
					supplier_id, supplier_name, country,
					total_spend, spend_percentage,
					financial_risk, concentration_risk, geographic_risk,
					performance_risk, defect_risk, contract_risk,
					expiry_risk, compliance_risk, diversity_risk,
					total_risk_score, risk_level
				) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)`,
				assessment.ID(), assessment.TenantID(), i,
				p.SupplierID, p.SupplierName, p.Country,
				p.TotalSpend, p.SpendPercentage,
				p.FinancialRisk, p.ConcentrationRisk, p.GeographicRisk,
				p.PerformanceRisk, p.DefectRisk, p.ContractRisk,
				p.ExpiryRisk, p.ComplianceRisk, p.DiversityRisk,
				p.TotalRiskScore, p.RiskLevel.String(),
			)
			if err != nil {
				return fmt.Errorf("failed to save risk profile: %w", err)
			}
		}

		return nil
	})
}

// FindByID retrieves an assessment by its unique identifier.
func (r *AssessmentRepository) FindByID(ctx context.Context, tenantID, id uuid.UUID) (*model.RiskAssessment, error) {
	query := `
		SELECT id, tenant_id,
			supplier_count, purchase_order_count, delivery_count, invoice_count, contract_count,
			high_risk_count, medium_risk_count, low_risk_count,
			summary, assessed_at, version, created_at
		FROM supplier_risk_assessments
		WHERE tenant_id = $1 AND id = $2
	`

	return r.scanAssessment(ctx, r.pool, r.pool.QueryRow(ctx, query, tenantID, id))
}

// FindLatest retrieves the most recent assessment for a tenant.
func (r *AssessmentRepository) FindLatest(ctx context.Context, tenantID uuid.UUID) (*model.RiskAssessment, error) {
	query := `
		SELECT id, tenant_id,
			supplier_count, purchase_order_count, delivery_count, invoice_count, contract_count,
			high_risk_count, medium_risk_count, low_risk_count,
			summary, assessed_at, version, created_at
		FROM supplier_risk_assessments
		WHERE tenant_id = $1
		ORDER BY assessed_at DESC
		LIMIT 1
	`

	return r.scanAssessment(ctx, r.pool, r.pool.QueryRow(ctx, query, tenantID))
}

func (r *AssessmentRepository) scanAssessment(ctx context.Context, q pkgpostgres.Querier, row pgx.Row) (*model.RiskAssessment, error) {
	var (
		id          uuid.UUID
		tenantID    uuid.UUID
		counts      model.InputCounts
		highCount   int
		mediumCount int
		lowCount    int
		summary     string
		assessedAt  time.Time
		version     int
		createdAt   time.Time
	)

	err := row.Scan(
		&id, &tenantID,
		&counts.Suppliers, &counts.PurchaseOrders, &counts.Deliveries, &counts.Invoices, &counts.Contracts,
		&highCount, &mediumCount, &lowCount,
		&summary, &assessedAt, &version, &createdAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to scan assessment: %w", err)
	}

	profiles, err := r.loadProfiles(ctx, q, id)
	if err != nil {
		return nil, err
	}

	return model.Reconstruct(
		id, tenantID, counts, profiles,
		highCount, mediumCount, lowCount,
		summary, assessedAt, version, createdAt,
	), nil
}

func (r *AssessmentRepository) loadProfiles(ctx context.Context, q pkgpostgres.Querier, assessmentID uuid.UUID) ([]model.SupplierRiskProfile, error) {
	rows, err := q.Query(ctx, `
		SELECT supplier_id, supplier_name, country,
			total_spend, spend_percentage,
			financial_risk, concentration_risk, geographic_risk,
			performance_risk, defect_risk, contract_risk,
			expiry_risk, compliance_risk, diversity_risk,
			total_risk_score, risk_level
		FROM supplier_risk_profiles
		WHERE assessment_id = $1
		ORDER BY position`,
		assessmentID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query risk profiles: %w", err)
	}
	defer rows.Close()

	var profiles []model.SupplierRiskProfile
	for rows.Next() {
		var (
			p            model.SupplierRiskProfile
			totalSpend   decimal.Decimal
			riskLevelStr string
		)
		err := rows.Scan(
			&p.SupplierID, &p.SupplierName, &p.Country,
			&totalSpend, &p.SpendPercentage,
			&p.FinancialRisk, &p.ConcentrationRisk, &p.GeographicRisk,
			&p.PerformanceRisk, &p.DefectRisk, &p.ContractRisk,
			&p.ExpiryRisk, &p.ComplianceRisk, &p.DiversityRisk,
			&p.TotalRiskScore, &riskLevelStr,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan risk profile: %w", err)
		}

		p.TotalSpend = totalSpend
		p.RiskLevel, err = valueobject.RiskLevelFromString(riskLevelStr)
		if err != nil {
			return nil, fmt.Errorf("failed to parse risk level: %w", err)
		}

		profiles = append(profiles, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read risk profiles: %w", err)
	}

	return profiles, nil
}
