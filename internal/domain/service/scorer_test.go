package service_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/procurelens/supplier-risk-service/internal/domain/model"
	"github.com/procurelens/supplier-risk-service/internal/domain/service"
	"github.com/procurelens/supplier-risk-service/internal/domain/valueobject"
	"github.com/procurelens/supplier-risk-service/pkg/testutil"
)

func floatPtr(v float64) *float64 { return &v }

func strPtr(s string) *string { return &s }

func timePtr(t time.Time) *time.Time { return &t }

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func supplier(id, name, country string) model.Supplier {
	return model.Supplier{SupplierID: id, SupplierName: name, Country: country}
}

func order(poID, supplierID string, qty, price int64) model.PurchaseOrder {
	return model.PurchaseOrder{
		POID:       poID,
		SupplierID: supplierID,
		ItemID:     "item-1",
		Quantity:   decimal.NewFromInt(qty),
		UnitPrice:  decimal.NewFromInt(price),
		OrderDate:  date(2025, time.March, 1),
	}
}

func profileFor(t *testing.T, profiles []model.SupplierRiskProfile, supplierID string) model.SupplierRiskProfile {
	t.Helper()
	for _, p := range profiles {
		if p.SupplierID == supplierID {
			return p
		}
	}
	t.Fatalf("no profile for supplier %s", supplierID)
	return model.SupplierRiskProfile{}
}

func TestSupplierRiskScorer_EmptyRequiredInputs(t *testing.T) {
	scorer := service.NewSupplierRiskScorer()

	t.Run("no suppliers", func(t *testing.T) {
		profiles := scorer.Score(service.ScoringInput{
			PurchaseOrders: []model.PurchaseOrder{order("po1", "S1", 1, 10)},
		})
		assert.Empty(t, profiles)
	})

	t.Run("no purchase orders", func(t *testing.T) {
		profiles := scorer.Score(service.ScoringInput{
			Suppliers: []model.Supplier{supplier("S1", "Acme", "US")},
		})
		assert.Empty(t, profiles)
	})
}

func TestSupplierRiskScorer_EverySupplierScored(t *testing.T) {
	scorer := service.NewSupplierRiskScorer()

	// S3 has no purchase orders at all; it must still appear with zero spend.
	profiles := scorer.Score(service.ScoringInput{
		Suppliers: []model.Supplier{
			supplier("S1", "Acme", "US"),
			supplier("S2", "Globex", "DE"),
			supplier("S3", "Initech", "JP"),
		},
		PurchaseOrders: []model.PurchaseOrder{
			order("po1", "S1", 10, 100),
			order("po2", "S2", 5, 20),
		},
	})

	require.Len(t, profiles, 3)

	p3 := profileFor(t, profiles, "S3")
	assert.True(t, p3.TotalSpend.IsZero())
	assert.Equal(t, 0.0, p3.SpendPercentage)
	assert.Equal(t, 0.0, p3.ConcentrationRisk)
}

func TestSupplierRiskScorer_SpendPercentagesSumTo100(t *testing.T) {
	scorer := service.NewSupplierRiskScorer()

	profiles := scorer.Score(service.ScoringInput{
		Suppliers: []model.Supplier{
			supplier("S1", "Acme", "US"),
			supplier("S2", "Globex", "US"),
			supplier("S3", "Initech", "DE"),
		},
		PurchaseOrders: []model.PurchaseOrder{
			order("po1", "S1", 3, 7),
			order("po2", "S2", 11, 13),
			order("po3", "S3", 17, 19),
			order("po4", "S1", 23, 29),
		},
	})

	var sum float64
	for _, p := range profiles {
		sum += p.SpendPercentage
	}
	assert.InDelta(t, 100.0, sum, 1e-9)
}

func TestSupplierRiskScorer_ZeroTotalSpend(t *testing.T) {
	scorer := service.NewSupplierRiskScorer()

	// Orders exist but carry no value, so the grand total is zero and no
	// supplier can hold a share of it.
	profiles := scorer.Score(service.ScoringInput{
		Suppliers: []model.Supplier{
			supplier("S1", "Acme", "US"),
			supplier("S2", "Globex", "DE"),
		},
		PurchaseOrders: []model.PurchaseOrder{
			order("po1", "S1", 0, 100),
			order("po2", "S2", 0, 50),
		},
	})

	require.Len(t, profiles, 2)
	for _, p := range profiles {
		assert.True(t, p.TotalSpend.IsZero())
		assert.Equal(t, 0.0, p.SpendPercentage)
		assert.Equal(t, 0.0, p.ConcentrationRisk)
	}
}

func TestSupplierRiskScorer_TopSpenderConcentration(t *testing.T) {
	scorer := service.NewSupplierRiskScorer()

	profiles := scorer.Score(service.ScoringInput{
		Suppliers: []model.Supplier{
			supplier("S1", "Acme", "US"),
			supplier("S2", "Globex", "US"),
		},
		PurchaseOrders: []model.PurchaseOrder{
			order("po1", "S1", 10, 100),
			order("po2", "S2", 1, 10),
		},
	})

	assert.InDelta(t, 100.0, profileFor(t, profiles, "S1").ConcentrationRisk, 1e-9)
	assert.InDelta(t, 1.0, profileFor(t, profiles, "S2").ConcentrationRisk, 1e-9)
}

func TestSupplierRiskScorer_FinancialRisk(t *testing.T) {
	scorer := service.NewSupplierRiskScorer()

	suppliers := []model.Supplier{
		{SupplierID: "S1", SupplierName: "Acme", Country: "US", ESGScore: floatPtr(80)},
		{SupplierID: "S2", SupplierName: "Globex", Country: "US", ESGScore: floatPtr(40)},
		{SupplierID: "S3", SupplierName: "Initech", Country: "US"}, // no esg_score
	}

	profiles := scorer.Score(service.ScoringInput{
		Suppliers:      suppliers,
		PurchaseOrders: []model.PurchaseOrder{order("po1", "S1", 1, 1)},
	})

	assert.Equal(t, 20.0, profileFor(t, profiles, "S1").FinancialRisk)
	assert.Equal(t, 60.0, profileFor(t, profiles, "S2").FinancialRisk)
	// Missing esg_score defaults to 50, so financial risk is 50.
	assert.Equal(t, 50.0, profileFor(t, profiles, "S3").FinancialRisk)
}

func TestSupplierRiskScorer_GeographicRisk(t *testing.T) {
	scorer := service.NewSupplierRiskScorer()

	t.Run("fewer peers means higher risk, lone supplier clamped to 100", func(t *testing.T) {
		profiles := scorer.Score(service.ScoringInput{
			Suppliers: []model.Supplier{
				supplier("S1", "Acme", "US"),
				supplier("S2", "Globex", "US"),
				supplier("S3", "Initech", "JP"),
			},
			PurchaseOrders: []model.PurchaseOrder{order("po1", "S1", 1, 1)},
		})

		assert.Equal(t, 50.0, profileFor(t, profiles, "S1").GeographicRisk)
		assert.Equal(t, 50.0, profileFor(t, profiles, "S2").GeographicRisk)
		assert.Equal(t, 100.0, profileFor(t, profiles, "S3").GeographicRisk)
	})

	t.Run("no country data defaults everyone to 50", func(t *testing.T) {
		profiles := scorer.Score(service.ScoringInput{
			Suppliers: []model.Supplier{
				supplier("S1", "Acme", ""),
				supplier("S2", "Globex", ""),
			},
			PurchaseOrders: []model.PurchaseOrder{order("po1", "S1", 1, 1)},
		})

		assert.Equal(t, 50.0, profileFor(t, profiles, "S1").GeographicRisk)
		assert.Equal(t, 50.0, profileFor(t, profiles, "S2").GeographicRisk)
	})

	t.Run("supplier without country keeps the default while peers are scored", func(t *testing.T) {
		profiles := scorer.Score(service.ScoringInput{
			Suppliers: []model.Supplier{
				supplier("S1", "Acme", "US"),
				supplier("S2", "Globex", ""),
			},
			PurchaseOrders: []model.PurchaseOrder{order("po1", "S1", 1, 1)},
		})

		assert.Equal(t, 100.0, profileFor(t, profiles, "S1").GeographicRisk)
		assert.Equal(t, 50.0, profileFor(t, profiles, "S2").GeographicRisk)
	})
}

func TestSupplierRiskScorer_DeliveryScores(t *testing.T) {
	scorer := service.NewSupplierRiskScorer()

	suppliers := []model.Supplier{
		supplier("S1", "Acme", "US"),
		supplier("S2", "Globex", "US"),
	}
	expected := date(2025, time.April, 1)
	orders := []model.PurchaseOrder{
		{POID: "po1", SupplierID: "S1", Quantity: decimal.NewFromInt(1), UnitPrice: decimal.NewFromInt(10), OrderDate: date(2025, time.March, 1), ExpectedDelivery: timePtr(expected)},
		{POID: "po2", SupplierID: "S1", Quantity: decimal.NewFromInt(1), UnitPrice: decimal.NewFromInt(10), OrderDate: date(2025, time.March, 1), ExpectedDelivery: timePtr(expected)},
		{POID: "po3", SupplierID: "S2", Quantity: decimal.NewFromInt(1), UnitPrice: decimal.NewFromInt(10), OrderDate: date(2025, time.March, 1), ExpectedDelivery: timePtr(expected)},
	}

	t.Run("omitting deliveries defaults performance 50 and defect 0", func(t *testing.T) {
		profiles := scorer.Score(service.ScoringInput{Suppliers: suppliers, PurchaseOrders: orders})

		for _, p := range profiles {
			assert.Equal(t, 50.0, p.PerformanceRisk)
			assert.Equal(t, 0.0, p.DefectRisk)
		}
	})

	t.Run("on-time rate and defect normalization", func(t *testing.T) {
		deliveries := []model.Delivery{
			// S1: one on time, one late, both defective.
			{POID: "po1", DeliveredAt: timePtr(expected)},
			{POID: "po2", DeliveredAt: timePtr(expected.AddDate(0, 0, 5)), Defective: true},
			// S2: on time, one defect.
			{POID: "po3", DeliveredAt: timePtr(expected.AddDate(0, 0, -1)), Defective: true},
		}

		profiles := scorer.Score(service.ScoringInput{
			Suppliers:      suppliers,
			PurchaseOrders: orders,
			Deliveries:     deliveries,
		})

		p1 := profileFor(t, profiles, "S1")
		p2 := profileFor(t, profiles, "S2")

		// S1 on-time rate 1/2 -> performance 50; S2 on-time rate 1 -> 0.
		assert.InDelta(t, 50.0, p1.PerformanceRisk, 1e-9)
		assert.InDelta(t, 0.0, p2.PerformanceRisk, 1e-9)

		// Both have 1 defect; max is 1, so both normalize to 100.
		assert.InDelta(t, 100.0, p1.DefectRisk, 1e-9)
		assert.InDelta(t, 100.0, p2.DefectRisk, 1e-9)
	})

	t.Run("supplier without deliveries keeps the on-time default", func(t *testing.T) {
		deliveries := []model.Delivery{
			{POID: "po1", DeliveredAt: timePtr(expected)},
		}

		profiles := scorer.Score(service.ScoringInput{
			Suppliers:      suppliers,
			PurchaseOrders: orders,
			Deliveries:     deliveries,
		})

		assert.Equal(t, 0.0, profileFor(t, profiles, "S1").PerformanceRisk)
		assert.Equal(t, 50.0, profileFor(t, profiles, "S2").PerformanceRisk)
	})

	t.Run("no defects anywhere scores defect risk 0", func(t *testing.T) {
		deliveries := []model.Delivery{
			{POID: "po1", DeliveredAt: timePtr(expected)},
			{POID: "po3", DeliveredAt: timePtr(expected)},
		}

		profiles := scorer.Score(service.ScoringInput{
			Suppliers:      suppliers,
			PurchaseOrders: orders,
			Deliveries:     deliveries,
		})

		for _, p := range profiles {
			assert.Equal(t, 0.0, p.DefectRisk)
		}
	})
}

func TestSupplierRiskScorer_ContractScores(t *testing.T) {
	scorer := service.NewSupplierRiskScorer()
	asOf := date(2025, time.June, 1)

	suppliers := []model.Supplier{
		supplier("S1", "Acme", "US"),
		supplier("S2", "Globex", "US"),
	}
	orders := []model.PurchaseOrder{order("po1", "S1", 1, 1)}

	t.Run("omitting contracts defaults contract 0 and expiry 50", func(t *testing.T) {
		profiles := scorer.Score(service.ScoringInput{
			Suppliers:      suppliers,
			PurchaseOrders: orders,
			AsOf:           asOf,
		})

		for _, p := range profiles {
			assert.Equal(t, 0.0, p.ContractRisk)
			assert.Equal(t, 50.0, p.ExpiryRisk)
		}
	})

	t.Run("contract value normalization against the largest", func(t *testing.T) {
		contracts := []model.Contract{
			{ContractID: "c1", SupplierID: "S1", ContractValue: decimal.NewFromInt(100000)},
			{ContractID: "c2", SupplierID: "S2", ContractValue: decimal.NewFromInt(25000)},
		}

		profiles := scorer.Score(service.ScoringInput{
			Suppliers:      suppliers,
			PurchaseOrders: orders,
			Contracts:      contracts,
			AsOf:           asOf,
		})

		assert.InDelta(t, 100.0, profileFor(t, profiles, "S1").ContractRisk, 1e-9)
		assert.InDelta(t, 25.0, profileFor(t, profiles, "S2").ContractRisk, 1e-9)
	})

	t.Run("expiry risk ramps over the 365-day horizon", func(t *testing.T) {
		contracts := []model.Contract{
			// Expires tomorrow: (365-1)/365*100.
			{ContractID: "c1", SupplierID: "S1", ContractValue: decimal.NewFromInt(100), EndDate: timePtr(asOf.AddDate(0, 0, 1))},
			// Expires in two years: clamped to 0.
			{ContractID: "c2", SupplierID: "S2", ContractValue: decimal.NewFromInt(100), ExpiryDate: timePtr(asOf.AddDate(2, 0, 0))},
		}

		profiles := scorer.Score(service.ScoringInput{
			Suppliers:      suppliers,
			PurchaseOrders: orders,
			Contracts:      contracts,
			AsOf:           asOf,
		})

		assert.InDelta(t, (365.0-1)/365*100, profileFor(t, profiles, "S1").ExpiryRisk, 1e-9)
		assert.Equal(t, 0.0, profileFor(t, profiles, "S2").ExpiryRisk)
	})

	t.Run("already expired contract clamps to 100", func(t *testing.T) {
		contracts := []model.Contract{
			{ContractID: "c1", SupplierID: "S1", ContractValue: decimal.NewFromInt(100), ContractEndDate: timePtr(asOf.AddDate(-2, 0, 0))},
		}

		profiles := scorer.Score(service.ScoringInput{
			Suppliers:      suppliers,
			PurchaseOrders: orders,
			Contracts:      contracts,
			AsOf:           asOf,
		})

		assert.Equal(t, 100.0, profileFor(t, profiles, "S1").ExpiryRisk)
	})

	t.Run("earliest expiry wins across a supplier's contracts", func(t *testing.T) {
		near := asOf.AddDate(0, 0, 100)
		far := asOf.AddDate(1, 0, 0)
		contracts := []model.Contract{
			{ContractID: "c1", SupplierID: "S1", ContractValue: decimal.NewFromInt(100), EndDate: timePtr(far)},
			{ContractID: "c2", SupplierID: "S1", ContractValue: decimal.NewFromInt(100), EndDate: timePtr(near)},
		}

		profiles := scorer.Score(service.ScoringInput{
			Suppliers:      suppliers,
			PurchaseOrders: orders,
			Contracts:      contracts,
			AsOf:           asOf,
		})

		assert.InDelta(t, (365.0-100)/365*100, profileFor(t, profiles, "S1").ExpiryRisk, 1e-9)
	})

	t.Run("contracts without any expiry column keep the expiry default", func(t *testing.T) {
		contracts := []model.Contract{
			{ContractID: "c1", SupplierID: "S1", ContractValue: decimal.NewFromInt(100)},
		}

		profiles := scorer.Score(service.ScoringInput{
			Suppliers:      suppliers,
			PurchaseOrders: orders,
			Contracts:      contracts,
			AsOf:           asOf,
		})

		assert.Equal(t, 50.0, profileFor(t, profiles, "S1").ExpiryRisk)
	})
}

func TestSupplierRiskScorer_ComplianceRisk(t *testing.T) {
	scorer := service.NewSupplierRiskScorer()

	suppliers := []model.Supplier{
		{SupplierID: "S1", SupplierName: "Acme", Country: "US", CertificationStatus: strPtr("Yes")},
		{SupplierID: "S2", SupplierName: "Globex", Country: "US", CertificationStatus: strPtr("No")},
		{SupplierID: "S3", SupplierName: "Initech", Country: "US"},
		{SupplierID: "S4", SupplierName: "Umbrella", Country: "US", CertificationStatus: strPtr("Pending")},
	}

	profiles := scorer.Score(service.ScoringInput{
		Suppliers:      suppliers,
		PurchaseOrders: []model.PurchaseOrder{order("po1", "S1", 1, 1)},
	})

	assert.Equal(t, 20.0, profileFor(t, profiles, "S1").ComplianceRisk)
	assert.Equal(t, 80.0, profileFor(t, profiles, "S2").ComplianceRisk)
	assert.Equal(t, 50.0, profileFor(t, profiles, "S3").ComplianceRisk)
	assert.Equal(t, 50.0, profileFor(t, profiles, "S4").ComplianceRisk)
}

func TestSupplierRiskScorer_DiversityRisk(t *testing.T) {
	scorer := service.NewSupplierRiskScorer()

	suppliers := []model.Supplier{
		{SupplierID: "S1", SupplierName: "Acme", Country: "US", DiversityFlag: strPtr("Yes")},
		{SupplierID: "S2", SupplierName: "Globex", Country: "US", DiversityFlag: strPtr("No")},
		{SupplierID: "S3", SupplierName: "Initech", Country: "US"},
		{SupplierID: "S4", SupplierName: "Umbrella", Country: "US", DiversityFlag: strPtr("Pending")},
	}

	profiles := scorer.Score(service.ScoringInput{
		Suppliers:      suppliers,
		PurchaseOrders: []model.PurchaseOrder{order("po1", "S1", 1, 1)},
	})

	assert.Equal(t, 10.0, profileFor(t, profiles, "S1").DiversityRisk)
	assert.Equal(t, 30.0, profileFor(t, profiles, "S2").DiversityRisk)
	assert.Equal(t, 30.0, profileFor(t, profiles, "S3").DiversityRisk)
	assert.Equal(t, 20.0, profileFor(t, profiles, "S4").DiversityRisk)
}

func TestSupplierRiskScorer_AllScoresInRange(t *testing.T) {
	scorer := service.NewSupplierRiskScorer()
	asOf := date(2025, time.June, 1)
	expected := date(2025, time.April, 1)

	profiles := scorer.Score(service.ScoringInput{
		Suppliers: []model.Supplier{
			{SupplierID: "S1", SupplierName: "Acme", Country: "US", ESGScore: floatPtr(0), CertificationStatus: strPtr("No")},
			{SupplierID: "S2", SupplierName: "Globex", Country: "SG", ESGScore: floatPtr(100), CertificationStatus: strPtr("Yes"), DiversityFlag: strPtr("Yes")},
		},
		PurchaseOrders: []model.PurchaseOrder{
			{POID: "po1", SupplierID: "S1", Quantity: decimal.NewFromInt(1000), UnitPrice: decimal.NewFromInt(500), OrderDate: asOf, ExpectedDelivery: timePtr(expected)},
			{POID: "po2", SupplierID: "S2", Quantity: decimal.NewFromInt(1), UnitPrice: decimal.NewFromInt(1), OrderDate: asOf, ExpectedDelivery: timePtr(expected)},
		},
		Deliveries: []model.Delivery{
			{POID: "po1", DeliveredAt: timePtr(expected.AddDate(0, 0, 30)), Defective: true},
			{POID: "po2", DeliveredAt: timePtr(expected)},
		},
		Contracts: []model.Contract{
			{ContractID: "c1", SupplierID: "S1", ContractValue: decimal.NewFromInt(1000000), EndDate: timePtr(asOf.AddDate(-1, 0, 0))},
		},
		AsOf: asOf,
	})

	for _, p := range profiles {
		for name, score := range map[string]float64{
			"financial":     p.FinancialRisk,
			"concentration": p.ConcentrationRisk,
			"geographic":    p.GeographicRisk,
			"performance":   p.PerformanceRisk,
			"defect":        p.DefectRisk,
			"contract":      p.ContractRisk,
			"expiry":        p.ExpiryRisk,
			"compliance":    p.ComplianceRisk,
			"diversity":     p.DiversityRisk,
			"total":         p.TotalRiskScore,
		} {
			assert.GreaterOrEqual(t, score, 0.0, "%s for %s", name, p.SupplierID)
			assert.LessOrEqual(t, score, 100.0, "%s for %s", name, p.SupplierID)
		}
	}
}

func TestSupplierRiskScorer_SortedDescendingStableTies(t *testing.T) {
	scorer := service.NewSupplierRiskScorer()

	// Identical suppliers tie exactly; their input order must be preserved.
	profiles := scorer.Score(service.ScoringInput{
		Suppliers: []model.Supplier{
			supplier("tie-a", "Acme", "US"),
			supplier("tie-b", "Globex", "US"),
			supplier("big", "Initech", "US"),
		},
		PurchaseOrders: []model.PurchaseOrder{
			order("po1", "tie-a", 1, 10),
			order("po2", "tie-b", 1, 10),
			order("po3", "big", 100, 10),
		},
	})

	require.Len(t, profiles, 3)
	assert.Equal(t, "big", profiles[0].SupplierID)
	assert.Equal(t, "tie-a", profiles[1].SupplierID)
	assert.Equal(t, "tie-b", profiles[2].SupplierID)

	for i := 1; i < len(profiles); i++ {
		assert.GreaterOrEqual(t, profiles[i-1].TotalRiskScore, profiles[i].TotalRiskScore)
	}
}

func TestSupplierRiskScorer_WorkedExample(t *testing.T) {
	scorer := service.NewSupplierRiskScorer()

	profiles := scorer.Score(service.ScoringInput{
		Suppliers: []model.Supplier{
			{SupplierID: "S1", SupplierName: "Acme", Country: "US", ESGScore: floatPtr(80)},
			{SupplierID: "S2", SupplierName: "Globex", Country: "US", ESGScore: floatPtr(40)},
		},
		PurchaseOrders: []model.PurchaseOrder{
			order("po1", "S1", 10, 100),
			order("po2", "S2", 1, 10),
		},
	})

	require.Len(t, profiles, 2)
	p1 := profileFor(t, profiles, "S1")
	p2 := profileFor(t, profiles, "S2")

	testutil.AssertDecimalEqual(t, decimal.NewFromInt(1000), p1.TotalSpend)
	testutil.AssertDecimalEqual(t, decimal.NewFromInt(10), p2.TotalSpend)

	assert.InDelta(t, 1000.0/1010*100, p1.SpendPercentage, 1e-9)
	assert.InDelta(t, 10.0/1010*100, p2.SpendPercentage, 1e-9)

	assert.InDelta(t, 100.0, p1.ConcentrationRisk, 1e-9)
	assert.InDelta(t, 1.0, p2.ConcentrationRisk, 1e-9)

	assert.Equal(t, 20.0, p1.FinancialRisk)
	assert.Equal(t, 60.0, p2.FinancialRisk)

	// No deliveries or contracts: performance 50, defect 0, contract 0,
	// expiry 50. No certification or diversity columns: compliance 50,
	// diversity 30. Both share the US: geographic 50.
	for _, p := range []model.SupplierRiskProfile{p1, p2} {
		assert.Equal(t, 50.0, p.PerformanceRisk)
		assert.Equal(t, 0.0, p.DefectRisk)
		assert.Equal(t, 0.0, p.ContractRisk)
		assert.Equal(t, 50.0, p.ExpiryRisk)
		assert.Equal(t, 50.0, p.ComplianceRisk)
		assert.Equal(t, 30.0, p.DiversityRisk)
		assert.Equal(t, 50.0, p.GeographicRisk)
	}

	// S1: .20*20 + .25*100 + .15*50 + .20*50 + .10*0 + .05*0 + .02*50 + .02*50 + .01*30 = 48.8
	assert.InDelta(t, 48.8, p1.TotalRiskScore, 1e-9)
	// S2: .20*60 + .25*1 + .15*50 + .20*50 + .10*0 + .05*0 + .02*50 + .02*50 + .01*30 = 32.05
	assert.InDelta(t, 32.05, p2.TotalRiskScore, 1e-9)

	// Concentration outweighs the financial gap, so S1 ranks first.
	assert.Equal(t, "S1", profiles[0].SupplierID)
	assert.True(t, profiles[0].RiskLevel.Equal(valueobject.RiskLevelMedium))
	assert.True(t, profiles[1].RiskLevel.Equal(valueobject.RiskLevelMedium))
}

func TestSupplierRiskScorer_InvoicesIgnored(t *testing.T) {
	scorer := service.NewSupplierRiskScorer()

	input := service.ScoringInput{
		Suppliers:      []model.Supplier{supplier("S1", "Acme", "US")},
		PurchaseOrders: []model.PurchaseOrder{order("po1", "S1", 1, 10)},
	}

	withoutInvoices := scorer.Score(input)

	input.Invoices = []model.Invoice{
		{InvoiceID: "inv1", POID: "po1", SupplierID: "S1", Amount: decimal.NewFromInt(999)},
	}
	withInvoices := scorer.Score(input)

	assert.Equal(t, withoutInvoices, withInvoices)
}

func TestSupplierRiskScorer_CustomWeights(t *testing.T) {
	t.Run("rejects an invalid weight set", func(t *testing.T) {
		w := service.DefaultWeights()
		w[service.DimensionFinancial] = 0.5

		_, err := service.NewSupplierRiskScorerWithWeights(w)
		assert.Error(t, err)
	})

	t.Run("accepts a valid custom weight set", func(t *testing.T) {
		w := service.DefaultWeights()
		w[service.DimensionFinancial] = 0.25
		w[service.DimensionConcentration] = 0.20

		scorer, err := service.NewSupplierRiskScorerWithWeights(w)
		require.NoError(t, err)
		assert.NotNil(t, scorer)
	})
}
