package model

// Supplier is one row of the supplier master table. The caller supplies the
// table as-is; ESGScore, CertificationStatus and DiversityFlag are optional
// columns and nil when the source data does not carry them.
type Supplier struct {
	SupplierID          string
	SupplierName        string
	Country             string
	ESGScore            *float64
	CertificationStatus *string
	DiversityFlag       *string
}
