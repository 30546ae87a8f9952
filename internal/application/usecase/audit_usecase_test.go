package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/diillson/buildops-audit-go/internal/application/usecase"
	"github.com/diillson/buildops-audit-go/internal/domain/entity"
	"github.com/diillson/buildops-audit-go/internal/shared/types"
)

func ptr(f float64) *float64 { return &f }

func newFixture() *fakeResources {
	customers := make([]entity.Customer, 0, 25)
	props := map[string]int{}
	for i := 0; i < 25; i++ {
		id := string(rune('a' + i))
		customers = append(customers, entity.Customer{ID: id, Name: "Customer " + id})
		props[id] = i % 3
	}
	return &fakeResources{
		customers:          customers,
		customerProperties: props,
		failingCustomers:   map[string]bool{"b": true},
		properties: []entity.Property{
			{ID: "p1", CompanyName: "One", Addresses: []entity.Address{{State: "TX", Latitude: ptr(30.1), Longitude: ptr(-97.7)}}},
			{ID: "p2", CompanyName: "Two", Addresses: []entity.Address{{State: "CA"}, {State: "ca"}, {State: "NV"}}},
			{ID: "p3", CompanyName: "Three", Addresses: []entity.Address{{State: "tx"}, {State: "TX", Latitude: ptr(29.7), Longitude: ptr(-95.3)}}},
		},
		assets: []entity.Asset{
			{ID: "1", Make: "Carrier"}, {ID: "2", Make: "Trane"}, {ID: "3", Make: "Carrier"}, {ID: "4"},
		},
		assetMakes: []entity.AssetMake{{ID: "m1", Name: "Carrier"}, {ID: "m2", Name: "Trane"}},
		vendors: []entity.Vendor{
			{ID: "v1", Name: "Acme"}, {ID: "v2", Name: "Acme"}, {ID: "v3", Name: "acme"}, {ID: "v4", Name: "Bolt"},
		},
	}
}

func newUseCase(res *fakeResources, cfg *types.Config) (*usecase.AuditUseCase, *fakeConsole, *fakeExport, *fakeMap) {
	console := &fakeConsole{}
	export := &fakeExport{}
	maps := &fakeMap{}
	if cfg == nil {
		cfg = &types.Config{PageSize: 10}
	}
	return usecase.NewAuditUseCase(res, export, maps, console, nil, cfg, usecase.NewRunCache()), console, export, maps
}

func TestCustomersClassificationSharesLookups(t *testing.T) {
	res := newFixture()
	uc, console, _, _ := newUseCase(res, nil)
	ctx := context.Background()

	without, err := uc.CustomersWithoutProperties(ctx)
	require.NoError(t, err)
	with, err := uc.CustomersWithProperties(ctx)
	require.NoError(t, err)

	// i%3 == 0 for 9 of 25 customers; "b" (i=1) failed.
	assert.Equal(t, 9, without.TotalCount)
	assert.Equal(t, 15, with.TotalCount)
	assert.Len(t, without.Customers, without.TotalCount)
	require.Len(t, without.Failed, 1)
	assert.Equal(t, "b", without.Failed[0].ID)
	assert.Equal(t, without.TotalCount+with.TotalCount+len(with.Failed), len(res.customers))

	for _, ref := range with.Customers {
		assert.NotEqual(t, "b", ref.ID)
	}

	assert.Equal(t, 3, res.count("customers"))
	assert.Equal(t, 25, res.count("customer-properties"))
	require.Len(t, console.warnings, 1)
	assert.Contains(t, console.warnings[0], "Customer b (ID: b)")
}

func TestCustomersFetchFailureIsFatal(t *testing.T) {
	res := newFixture()
	res.failing = map[string]error{"customers": errors.New("boom")}
	uc, _, _, _ := newUseCase(res, nil)

	_, err := uc.CustomersWithoutProperties(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "boom")
	assert.Zero(t, res.count("customer-properties"))
}

func TestPropertiesWithManyAddressesThreshold(t *testing.T) {
	uc, _, _, _ := newUseCase(newFixture(), nil)
	ctx := context.Background()

	report, err := uc.PropertiesWithManyAddresses(ctx, nil)
	require.NoError(t, err)
	assert.Equal(t, types.DefaultManyAddressesThreshold, report.Threshold)
	assert.Equal(t, []entity.EntityRef{{ID: "p2", Name: "Two"}}, report.Properties)

	zero := 0
	report, err = uc.PropertiesWithManyAddresses(ctx, &zero)
	require.NoError(t, err)
	assert.Equal(t, 3, report.TotalCount)

	negative := -1
	_, err = uc.PropertiesWithManyAddresses(ctx, &negative)
	assert.Error(t, err)
}

func TestAssetAndVendorReports(t *testing.T) {
	uc, _, _, _ := newUseCase(newFixture(), nil)
	ctx := context.Background()

	makes, err := uc.AssetMakeCounts(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"Carrier": 2, "Trane": 1, "": 1}, makes.AssetMakeCounts)
	assert.Equal(t, 3, makes.TotalCount)
	assert.Equal(t, 4, makes.TotalAssets)

	catalog, err := uc.AssetMakeCatalog(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, catalog.TotalCount)

	vendors, err := uc.VendorDuplicates(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"Acme": 2}, vendors.Vendors)
	assert.Equal(t, 1, vendors.TotalCount)
}

func TestFullAuditRecordsFailures(t *testing.T) {
	res := newFixture()
	res.failing = map[string]error{"vendors": errors.New("vendors down")}
	uc, _, _, _ := newUseCase(res, nil)

	report := uc.FullAudit(context.Background(), "tenant-1")

	assert.Equal(t, "tenant-1", report.TenantID)
	require.NotNil(t, report.CustomersWithoutProperties)
	require.NotNil(t, report.CustomersWithProperties)
	require.NotNil(t, report.PropertiesManyAddresses)
	require.NotNil(t, report.AssetMakeCounts)
	assert.Nil(t, report.VendorDuplicates)
	require.Contains(t, report.Errors, "vendor_duplicates")
	assert.Contains(t, report.Errors["vendor_duplicates"], "vendors down")
	assert.Equal(t, 25, res.count("customer-properties"))
}

func TestRunFullAuditFailsWhenEverythingFails(t *testing.T) {
	res := newFixture()
	boom := errors.New("down")
	res.failing = map[string]error{"customers": boom, "properties": boom, "assets": boom, "vendors": boom}
	uc, console, _, _ := newUseCase(res, nil)

	err := uc.RunFullAudit(context.Background(), "t", &types.CLIArgs{})
	require.Error(t, err)
	assert.Len(t, console.errors, 5)
}

func TestRunPresentsTableAndTotal(t *testing.T) {
	uc, console, _, _ := newUseCase(newFixture(), nil)

	require.NoError(t, uc.RunVendorDuplicates(context.Background(), &types.CLIArgs{}))

	out := console.output()
	assert.Contains(t, out, "Vendor|Occurrences")
	assert.Contains(t, out, "Acme|2")
	assert.Contains(t, out, "Total: 1")
}

func TestRunPresentsPlainLines(t *testing.T) {
	uc, console, _, _ := newUseCase(newFixture(), nil)
	args := &types.CLIArgs{Plain: true}
	ctx := context.Background()

	require.NoError(t, uc.RunPropertiesWithManyAddresses(ctx, args))
	require.NoError(t, uc.RunAssetMakeCounts(ctx, args))

	out := console.output()
	assert.Contains(t, out, "Two (ID: p2)")
	assert.Contains(t, out, "Carrier: 2")
	assert.Contains(t, out, "(unspecified): 1")
	assert.Contains(t, out, "Total assets: 4")
}

func TestRunExportsRequestedFormats(t *testing.T) {
	uc, console, export, _ := newUseCase(newFixture(), nil)
	args := &types.CLIArgs{ReportName: "audit", ReportType: []string{"csv", "JSON", "pdf", "xml"}}

	require.NoError(t, uc.RunAssetMakes(context.Background(), args))

	assert.Equal(t, []string{"csv:audit", "json:audit", "pdf:audit:1"}, export.calls)
	assert.Len(t, console.success, 3)
	require.Len(t, console.warnings, 1)
	assert.Contains(t, console.warnings[0], "xml")
}

func TestRunExportFailureIsReported(t *testing.T) {
	uc, console, export, _ := newUseCase(newFixture(), nil)
	export.fail = true

	err := uc.RunAssetMakes(context.Background(), &types.CLIArgs{ReportName: "audit", ReportType: []string{"json"}})
	require.NoError(t, err)
	require.Len(t, console.errors, 1)
	assert.Contains(t, console.errors[0], "disk full")
}

func TestRunShowMap(t *testing.T) {
	uc, console, _, maps := newUseCase(newFixture(), nil)

	require.NoError(t, uc.RunShowMap(context.Background(), &types.CLIArgs{State: " tx ", Dir: "out"}))

	require.Len(t, maps.written, 1)
	m := maps.written[0]
	assert.Equal(t, "tx", m.State)
	assert.Equal(t, 2, m.Properties)
	require.Len(t, m.Markers, 2)
	assert.Equal(t, [2]float64{30.1, -97.7}, m.Center)
	assert.Equal(t, "out", maps.dir)
	require.Len(t, console.success, 1)
	assert.Contains(t, console.success[0], "out/properties_tx.html")
}

func TestRunShowMapRequiresState(t *testing.T) {
	res := newFixture()
	uc, _, _, maps := newUseCase(res, nil)

	err := uc.RunShowMap(context.Background(), &types.CLIArgs{State: "  "})
	assert.ErrorIs(t, err, types.ErrInvalidState)
	assert.Empty(t, maps.written)
	assert.Zero(t, res.count("properties"))
}

func TestRunShowMapWithoutMatchesWarns(t *testing.T) {
	uc, console, _, maps := newUseCase(newFixture(), nil)

	require.NoError(t, uc.RunShowMap(context.Background(), &types.CLIArgs{State: "WY"}))

	require.Len(t, maps.written, 1)
	assert.Empty(t, maps.written[0].Markers)
	require.Len(t, console.warnings, 1)
}
