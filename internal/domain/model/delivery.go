package model

import "time"

// Delivery is one recorded delivery against a purchase order.
type Delivery struct {
	POID        string
	DeliveredAt *time.Time
	Defective   bool
}
