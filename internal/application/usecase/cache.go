package usecase

import (
	"github.com/diillson/buildops-audit-go/internal/application/audit"
	"github.com/diillson/buildops-audit-go/internal/application/fetch"
	"github.com/diillson/buildops-audit-go/internal/domain/entity"
)

// RunCache memoizes collections for the lifetime of one process run, so that
// audits sharing a collection fetch it once. Create one per run.
type RunCache struct {
	Customers       fetch.Cache[[]entity.Customer]
	CustomerLookups fetch.Cache[audit.CustomerLookups]
	Properties      fetch.Cache[[]entity.Property]
	Assets          fetch.Cache[[]entity.Asset]
	AssetMakes      fetch.Cache[[]entity.AssetMake]
	Vendors         fetch.Cache[[]entity.Vendor]
}

// NewRunCache creates an empty cache.
func NewRunCache() *RunCache {
	return &RunCache{}
}
