package usecase

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/diillson/buildops-audit-go/internal/application/audit"
	"github.com/diillson/buildops-audit-go/internal/application/fetch"
	"github.com/diillson/buildops-audit-go/internal/domain/entity"
	"github.com/diillson/buildops-audit-go/internal/domain/repository"
	"github.com/diillson/buildops-audit-go/internal/shared/types"
)

// AuditUseCase runs the data-quality audits against one authorized tenant.
type AuditUseCase struct {
	resources  repository.ResourceRepository
	exportRepo repository.ExportRepository
	mapRepo    repository.MapRepository
	console    types.ConsoleInterface
	logger     *zap.Logger
	config     *types.Config
	cache      *RunCache
}

// NewAuditUseCase creates a new audit use case. A nil cache disables sharing
// between audits of the same run.
func NewAuditUseCase(
	resources repository.ResourceRepository,
	exportRepo repository.ExportRepository,
	mapRepo repository.MapRepository,
	console types.ConsoleInterface,
	logger *zap.Logger,
	config *types.Config,
	cache *RunCache,
) *AuditUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cache == nil {
		cache = NewRunCache()
	}
	return &AuditUseCase{
		resources:  resources,
		exportRepo: exportRepo,
		mapRepo:    mapRepo,
		console:    console,
		logger:     logger,
		config:     config.WithDefaults(),
		cache:      cache,
	}
}

func (uc *AuditUseCase) options(workers int) fetch.Options {
	return fetch.Options{PageSize: uc.config.PageSize, Workers: workers}
}

// fetchAll loads one collection through its cache, showing a spinner while
// the pages are fetched.
func fetchAll[T any](ctx context.Context, uc *AuditUseCase, cache *fetch.Cache[[]T], f fetch.Fetcher[T]) ([]T, error) {
	f.Logger = uc.logger
	return cache.Get(ctx, func(ctx context.Context) ([]T, error) {
		status := uc.console.Status(fmt.Sprintf("Fetching %s...", f.Resource))
		defer status.Stop()
		return f.All(ctx)
	})
}

func (uc *AuditUseCase) customers(ctx context.Context) ([]entity.Customer, error) {
	return fetchAll(ctx, uc, &uc.cache.Customers, fetch.Fetcher[entity.Customer]{
		Resource: "customers",
		Page:     uc.resources.GetCustomers,
		Options:  uc.options(uc.config.CustomerWorkers),
	})
}

func (uc *AuditUseCase) properties(ctx context.Context) ([]entity.Property, error) {
	return fetchAll(ctx, uc, &uc.cache.Properties, fetch.Fetcher[entity.Property]{
		Resource: "properties",
		Page:     uc.resources.GetProperties,
		Options:  uc.options(uc.config.ResourceWorkers),
	})
}

func (uc *AuditUseCase) assets(ctx context.Context) ([]entity.Asset, error) {
	return fetchAll(ctx, uc, &uc.cache.Assets, fetch.Fetcher[entity.Asset]{
		Resource: "assets",
		Page:     uc.resources.GetAssets,
		Options:  uc.options(uc.config.ResourceWorkers),
	})
}

func (uc *AuditUseCase) assetMakes(ctx context.Context) ([]entity.AssetMake, error) {
	return fetchAll(ctx, uc, &uc.cache.AssetMakes, fetch.Fetcher[entity.AssetMake]{
		Resource: "asset makes",
		Page:     uc.resources.GetAssetMakes,
		Options:  uc.options(uc.config.ResourceWorkers),
	})
}

func (uc *AuditUseCase) vendors(ctx context.Context) ([]entity.Vendor, error) {
	return fetchAll(ctx, uc, &uc.cache.Vendors, fetch.Fetcher[entity.Vendor]{
		Resource: "vendors",
		Page:     uc.resources.GetVendors,
		Options:  uc.options(uc.config.ResourceWorkers),
	})
}

// customerLookups fetches every customer, then looks up the properties of
// each one. Failed lookups are logged here and kept in the partition.
func (uc *AuditUseCase) customerLookups(ctx context.Context) (audit.CustomerLookups, error) {
	return uc.cache.CustomerLookups.Get(ctx, func(ctx context.Context) (audit.CustomerLookups, error) {
		customers, err := uc.customers(ctx)
		if err != nil {
			return audit.CustomerLookups{}, err
		}

		uc.logger.Debug("looking up customer properties", zap.Int("customers", len(customers)))
		progress := uc.console.ProgressWithTotal("Looking up customer properties", len(customers))
		lookups := fetch.PerParent(ctx, customers, func(ctx context.Context, c entity.Customer) (entity.Page[entity.Property], error) {
			defer progress.Increment()
			return uc.lookupCustomerProperties(ctx, c)
		}, uc.config.LookupWorkers)
		progress.Stop()

		for _, failed := range lookups.Failed {
			uc.logger.Warn("customer properties lookup failed",
				zap.String("customer_id", failed.Parent.ID),
				zap.String("customer_name", failed.Parent.Name),
				zap.Error(failed.Err),
			)
			uc.console.LogWarning("Error processing customer %s (ID: %s): %v", failed.Parent.Name, failed.Parent.ID, failed.Err)
		}
		return lookups, nil
	})
}

func (uc *AuditUseCase) lookupCustomerProperties(ctx context.Context, c entity.Customer) (entity.Page[entity.Property], error) {
	page, err := uc.resources.GetCustomerProperties(ctx, c.ID)
	if err != nil {
		return page, &types.LookupError{ParentID: c.ID, ParentName: c.Name, Err: err}
	}
	return page, nil
}

// CustomersWithoutProperties reports customers whose property count is zero.
func (uc *AuditUseCase) CustomersWithoutProperties(ctx context.Context) (entity.CustomerReport, error) {
	lookups, err := uc.customerLookups(ctx)
	if err != nil {
		return entity.CustomerReport{}, err
	}
	return audit.CustomersByPropertyPresence(lookups, false), nil
}

// CustomersWithProperties reports customers that have at least one property.
func (uc *AuditUseCase) CustomersWithProperties(ctx context.Context) (entity.CustomerReport, error) {
	lookups, err := uc.customerLookups(ctx)
	if err != nil {
		return entity.CustomerReport{}, err
	}
	return audit.CustomersByPropertyPresence(lookups, true), nil
}

// PropertiesWithManyAddresses reports properties with more than threshold
// addresses. A nil threshold uses the configured one.
func (uc *AuditUseCase) PropertiesWithManyAddresses(ctx context.Context, threshold *int) (entity.PropertyReport, error) {
	limit := uc.config.AddressThreshold()
	if threshold != nil {
		if *threshold < 0 {
			return entity.PropertyReport{}, fmt.Errorf("threshold must not be negative: %d", *threshold)
		}
		limit = *threshold
	}

	properties, err := uc.properties(ctx)
	if err != nil {
		return entity.PropertyReport{}, err
	}
	return audit.PropertiesWithManyAddresses(properties, limit), nil
}

// AssetMakeCounts reports the number of assets per make.
func (uc *AuditUseCase) AssetMakeCounts(ctx context.Context) (entity.AssetMakeReport, error) {
	assets, err := uc.assets(ctx)
	if err != nil {
		return entity.AssetMakeReport{}, err
	}
	return audit.AssetMakeCounts(assets), nil
}

// AssetMakeCatalog lists the tenant's asset makes.
func (uc *AuditUseCase) AssetMakeCatalog(ctx context.Context) (entity.AssetMakeCatalog, error) {
	makes, err := uc.assetMakes(ctx)
	if err != nil {
		return entity.AssetMakeCatalog{}, err
	}
	return audit.AssetMakeNames(makes), nil
}

// VendorDuplicates reports vendor names used by more than one vendor.
func (uc *AuditUseCase) VendorDuplicates(ctx context.Context) (entity.VendorDuplicateReport, error) {
	vendors, err := uc.vendors(ctx)
	if err != nil {
		return entity.VendorDuplicateReport{}, err
	}
	return audit.DuplicateVendorNames(vendors), nil
}

// PropertyMap builds the map of the properties located in state.
func (uc *AuditUseCase) PropertyMap(ctx context.Context, state string) (entity.PropertyMap, error) {
	if strings.TrimSpace(state) == "" {
		return entity.PropertyMap{}, fmt.Errorf("%w: --state is required", types.ErrInvalidState)
	}
	properties, err := uc.properties(ctx)
	if err != nil {
		return entity.PropertyMap{}, err
	}
	return audit.BuildPropertyMap(properties, state), nil
}

// FullAudit runs every audit once. A failed audit is recorded in Errors and
// does not stop the others; customer lookups are shared by both customer audits.
func (uc *AuditUseCase) FullAudit(ctx context.Context, tenantID string) entity.FullAuditReport {
	report := entity.FullAuditReport{TenantID: tenantID, Errors: map[string]string{}}

	record := func(name string, err error) bool {
		if err != nil {
			uc.logger.Error("audit failed", zap.String("audit", name), zap.Error(err))
			report.Errors[name] = err.Error()
			return false
		}
		return true
	}

	if r, err := uc.CustomersWithoutProperties(ctx); record("customers_without_properties", err) {
		report.CustomersWithoutProperties = &r
	}
	if r, err := uc.CustomersWithProperties(ctx); record("customers_with_properties", err) {
		report.CustomersWithProperties = &r
	}
	if r, err := uc.PropertiesWithManyAddresses(ctx, nil); record("properties_many_addresses", err) {
		report.PropertiesManyAddresses = &r
	}
	if r, err := uc.AssetMakeCounts(ctx); record("asset_make_counts", err) {
		report.AssetMakeCounts = &r
	}
	if r, err := uc.VendorDuplicates(ctx); record("vendor_duplicates", err) {
		report.VendorDuplicates = &r
	}

	if len(report.Errors) == 0 {
		report.Errors = nil
	}
	return report
}
