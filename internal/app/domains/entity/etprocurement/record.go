package etprocurement

import "time"

// Carrier labels assigned by the enrichment rules.
const (
	CarrierUPS        = "UPS"
	CarrierFedEx      = "FedEx"
	CarrierGround     = "Ground"
	CarrierFreight    = "Freight"
	CarrierElectronic = "Electronic"
	CarrierUSPS       = "USPS"
	CarrierDHL        = "DHL"
)

// Supplier diversity classification categories from the source spreadsheet.
const (
	DiversityDVBE = "DVBE" // Disabled Veteran Business Enterprise
	DiversityOSB  = "OSB"  // Other Small Business
	DiversityMB   = "MB"   // Microbusiness
	DiversityNone = "Non-Diverse"
)

// DiversityCategoryNames maps category codes to display names.
var DiversityCategoryNames = map[string]string{
	DiversityDVBE: "Disabled Veteran Business Enterprise",
	DiversityOSB:  "Other Small Business",
	DiversityMB:   "Microbusiness",
	"WBE":         "Women Business Enterprise",
	"MBE":         "Minority Business Enterprise",
	"SBE":         "Small Business Enterprise",
}

// Consolidation opportunity levels.
const (
	ConsolidationLow      = "Low"
	ConsolidationMedium   = "Medium"
	ConsolidationHigh     = "High"
	ConsolidationVeryHigh = "Very High"
)

// Geographic locations used by the enrichment rules.
const (
	LocationCalifornia = "California"
	LocationOutOfState = "Out-of-State"
)

// Record is one procurement line from the cleaned spend export, plus the
// synthetic shipping fields filled in at load time. Records are immutable
// once the dataset is loaded.
type Record struct {
	POID                      string
	SupplierName              string
	SupplierType              string
	SupplierDiversityCategory string
	PODate                    time.Time
	FiscalYear                int
	AccountingPeriod          int
	OrderType                 string
	NIGPCode                  string
	OrderFrequency            string
	TotalAmount               float64
	ITAmount                  float64

	// Synthetic fields, derived when the source export lacks them.
	ShippingCost             float64
	Carrier                  string
	LeadTimeDays             int
	GeographicLocation       string
	ConsolidationOpportunity string
}

// IsDiverse reports whether the record belongs to a diversity category.
func (r *Record) IsDiverse() bool {
	return r.SupplierDiversityCategory != "" && r.SupplierDiversityCategory != DiversityNone
}

// Month returns the record's calendar month key, e.g. "2024-03".
func (r *Record) Month() string {
	return r.PODate.Format("2006-01")
}
