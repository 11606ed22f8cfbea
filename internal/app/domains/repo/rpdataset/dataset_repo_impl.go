package rpdataset

import (
	"sort"

	"github.com/isaiahriv1234/Freight-Project/internal/app/domains/entity/etprocurement"
)

// MemoryRepository serves the dataset from an in-memory slice.
type MemoryRepository struct {
	records    []*etprocurement.Record
	bySupplier map[string][]*etprocurement.Record
}

// NewMemoryRepository indexes the loaded records.
func NewMemoryRepository(records []*etprocurement.Record) DatasetRepository {
	bySupplier := make(map[string][]*etprocurement.Record)
	for _, rec := range records {
		bySupplier[rec.SupplierName] = append(bySupplier[rec.SupplierName], rec)
	}
	return &MemoryRepository{
		records:    records,
		bySupplier: bySupplier,
	}
}

func (r *MemoryRepository) All() []*etprocurement.Record {
	return r.records
}

func (r *MemoryRepository) BySupplier(name string) []*etprocurement.Record {
	return r.bySupplier[name]
}

func (r *MemoryRepository) Suppliers() []string {
	names := make([]string, 0, len(r.bySupplier))
	for name := range r.bySupplier {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
