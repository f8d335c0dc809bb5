package testutil

import (
	"github.com/google/uuid"
)

// Fixed UUIDs for deterministic testing
var (
	TestTenantID      = uuid.MustParse("00000000-0000-0000-0000-000000000010")
	TestAssessmentID  = uuid.MustParse("00000000-0000-0000-0000-000000000020")
	TestAssessmentID2 = uuid.MustParse("00000000-0000-0000-0000-000000000021")
)

// Fixed supplier identifiers matching the fixture data used across tests.
const (
	TestSupplierID1 = "SUP-0001"
	TestSupplierID2 = "SUP-0002"
)
