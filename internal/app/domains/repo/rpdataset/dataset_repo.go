package rpdataset

import "github.com/isaiahriv1234/Freight-Project/internal/app/domains/entity/etprocurement"

// DatasetRepository reads the static procurement dataset. There are no
// writers: the dataset is loaded once at startup.
type DatasetRepository interface {
	// All returns every record.
	All() []*etprocurement.Record

	// BySupplier returns the records for one supplier.
	BySupplier(name string) []*etprocurement.Record

	// Suppliers returns the distinct supplier names.
	Suppliers() []string
}
