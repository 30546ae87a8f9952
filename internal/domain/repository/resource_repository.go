package repository

import (
	"context"

	"github.com/diillson/buildops-audit-go/internal/domain/entity"
)

// ResourceRepository defines the interface for the BuildOps resource API.
// Paged methods take a zero-based page index.
type ResourceRepository interface {
	GetCustomers(ctx context.Context, pageSize, page int) (entity.Page[entity.Customer], error)
	GetCustomerProperties(ctx context.Context, customerID string) (entity.Page[entity.Property], error)
	GetProperties(ctx context.Context, pageSize, page int) (entity.Page[entity.Property], error)
	GetAssetMakes(ctx context.Context, pageSize, page int) (entity.Page[entity.AssetMake], error)
	GetAssets(ctx context.Context, pageSize, page int) (entity.Page[entity.Asset], error)
	GetVendors(ctx context.Context, pageSize, page int) (entity.Page[entity.Vendor], error)
}
