package service

import (
	"github.com/procurelens/supplier-risk-service/internal/domain/model"
)

// deliveryScores computes performance and defect risk per supplier from the
// delivery table joined back to purchase orders. Both maps are nil when no
// delivery data is available, in which case every supplier falls back to the
// dimension defaults.
//
// A delivery is on time when its actual date is not after the expected date
// on the purchase order. Deliveries whose order carries no expected date do
// not enter the on-time rate; their defects still count.
func (s *SupplierRiskScorer) deliveryScores(orders []model.PurchaseOrder, deliveries []model.Delivery) (perfRisk, defectRisk map[string]float64) {
	if len(deliveries) == 0 {
		return nil, nil
	}

	ordersByPO := make(map[string]model.PurchaseOrder, len(orders))
	for _, po := range orders {
		ordersByPO[po.POID] = po
	}

	type deliveryStats struct {
		evaluated int
		onTime    int
		defects   int
	}

	stats := make(map[string]*deliveryStats)
	for _, d := range deliveries {
		po, ok := ordersByPO[d.POID]
		if !ok {
			continue
		}
		st := stats[po.SupplierID]
		if st == nil {
			st = &deliveryStats{}
			stats[po.SupplierID] = st
		}
		if d.DeliveredAt != nil && po.ExpectedDelivery != nil {
			st.evaluated++
			if !d.DeliveredAt.After(*po.ExpectedDelivery) {
				st.onTime++
			}
		}
		if d.Defective {
			st.defects++
		}
	}

	var maxDefects int
	for _, st := range stats {
		if st.defects > maxDefects {
			maxDefects = st.defects
		}
	}

	perfRisk = make(map[string]float64, len(stats))
	defectRisk = make(map[string]float64, len(stats))
	for supplierID, st := range stats {
		onTimeRate := DefaultOnTimeRate
		if st.evaluated > 0 {
			onTimeRate = float64(st.onTime) / float64(st.evaluated)
		}
		perfRisk[supplierID] = (1 - onTimeRate) * 100

		if maxDefects > 0 {
			defectRisk[supplierID] = float64(st.defects) / float64(maxDefects) * 100
		} else {
			defectRisk[supplierID] = 0
		}
	}

	return perfRisk, defectRisk
}
