package usecase_test

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/diillson/buildops-audit-go/internal/domain/entity"
	"github.com/diillson/buildops-audit-go/internal/shared/types"
)

func page[T any](items []T, pageSize, page int) entity.Page[T] {
	start := page * pageSize
	if start > len(items) {
		start = len(items)
	}
	end := start + pageSize
	if end > len(items) {
		end = len(items)
	}
	return entity.Page[T]{Items: items[start:end], TotalCount: len(items)}
}

// fakeResources serves in-memory collections and counts calls per endpoint.
type fakeResources struct {
	mu    sync.Mutex
	calls map[string]int

	customers          []entity.Customer
	customerProperties map[string]int
	failingCustomers   map[string]bool
	properties         []entity.Property
	assets             []entity.Asset
	assetMakes         []entity.AssetMake
	vendors            []entity.Vendor

	failing map[string]error
}

func (f *fakeResources) record(endpoint string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.calls == nil {
		f.calls = map[string]int{}
	}
	f.calls[endpoint]++
	return f.failing[endpoint]
}

func (f *fakeResources) count(endpoint string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[endpoint]
}

func (f *fakeResources) GetCustomers(ctx context.Context, pageSize, p int) (entity.Page[entity.Customer], error) {
	if err := f.record("customers"); err != nil {
		return entity.Page[entity.Customer]{}, err
	}
	return page(f.customers, pageSize, p), nil
}

func (f *fakeResources) GetCustomerProperties(ctx context.Context, customerID string) (entity.Page[entity.Property], error) {
	f.record("customer-properties")
	if f.failingCustomers[customerID] {
		return entity.Page[entity.Property]{}, &types.TransportError{Resource: "customer properties", Page: -1, StatusCode: 500}
	}
	n := f.customerProperties[customerID]
	items := make([]entity.Property, n)
	for i := range items {
		items[i] = entity.Property{ID: fmt.Sprintf("%s-p%d", customerID, i)}
	}
	return entity.Page[entity.Property]{Items: items, TotalCount: n}, nil
}

func (f *fakeResources) GetProperties(ctx context.Context, pageSize, p int) (entity.Page[entity.Property], error) {
	if err := f.record("properties"); err != nil {
		return entity.Page[entity.Property]{}, err
	}
	return page(f.properties, pageSize, p), nil
}

func (f *fakeResources) GetAssetMakes(ctx context.Context, pageSize, p int) (entity.Page[entity.AssetMake], error) {
	if err := f.record("asset-makes"); err != nil {
		return entity.Page[entity.AssetMake]{}, err
	}
	return page(f.assetMakes, pageSize, p), nil
}

func (f *fakeResources) GetAssets(ctx context.Context, pageSize, p int) (entity.Page[entity.Asset], error) {
	if err := f.record("assets"); err != nil {
		return entity.Page[entity.Asset]{}, err
	}
	return page(f.assets, pageSize, p), nil
}

func (f *fakeResources) GetVendors(ctx context.Context, pageSize, p int) (entity.Page[entity.Vendor], error) {
	if err := f.record("vendors"); err != nil {
		return entity.Page[entity.Vendor]{}, err
	}
	return page(f.vendors, pageSize, p), nil
}

// fakeConsole records every line written.
type fakeConsole struct {
	mu       sync.Mutex
	lines    []string
	warnings []string
	errors   []string
	success  []string
}

func (c *fakeConsole) add(dst *[]string, s string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	*dst = append(*dst, s)
}

func (c *fakeConsole) Print(a ...interface{})                 { c.add(&c.lines, fmt.Sprint(a...)) }
func (c *fakeConsole) Printf(format string, a ...interface{}) { c.add(&c.lines, fmt.Sprintf(format, a...)) }
func (c *fakeConsole) Println(a ...interface{})               { c.add(&c.lines, strings.TrimSuffix(fmt.Sprintln(a...), "\n")) }
func (c *fakeConsole) LogInfo(format string, a ...interface{}) {
	c.add(&c.lines, fmt.Sprintf(format, a...))
}
func (c *fakeConsole) LogWarning(format string, a ...interface{}) {
	c.add(&c.warnings, fmt.Sprintf(format, a...))
}
func (c *fakeConsole) LogError(format string, a ...interface{}) {
	c.add(&c.errors, fmt.Sprintf(format, a...))
}
func (c *fakeConsole) LogSuccess(format string, a ...interface{}) {
	c.add(&c.success, fmt.Sprintf(format, a...))
}
func (c *fakeConsole) Status(string) types.StatusHandle { return noopHandle{} }
func (c *fakeConsole) ProgressWithTotal(string, int) types.ProgressHandle {
	return noopHandle{}
}
func (c *fakeConsole) CreateTable() types.TableInterface { return &fakeTable{} }

func (c *fakeConsole) output() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return strings.Join(c.lines, "\n")
}

type noopHandle struct{}

func (noopHandle) Update(string) {}
func (noopHandle) Increment()    {}
func (noopHandle) Stop()         {}

// fakeTable renders rows as "|"-joined lines.
type fakeTable struct {
	columns []string
	rows    []string
}

func (t *fakeTable) AddColumn(name string, options ...interface{}) {
	t.columns = append(t.columns, name)
}

func (t *fakeTable) AddRow(cells ...interface{}) {
	parts := make([]string, len(cells))
	for i, c := range cells {
		parts[i] = fmt.Sprint(c)
	}
	t.rows = append(t.rows, strings.Join(parts, "|"))
}

func (t *fakeTable) Render() string {
	return strings.Join(append([]string{strings.Join(t.columns, "|")}, t.rows...), "\n")
}

type fakeExport struct {
	mu    sync.Mutex
	calls []string
	fail  bool
}

func (e *fakeExport) add(call string) (string, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.calls = append(e.calls, call)
	if e.fail {
		return "", errors.New("disk full")
	}
	return "/tmp/" + call, nil
}

func (e *fakeExport) ExportToCSV(report entity.Tabular, filename, outputDir string) (string, error) {
	return e.add("csv:" + filename)
}

func (e *fakeExport) ExportToJSON(report interface{}, filename, outputDir string) (string, error) {
	return e.add("json:" + filename)
}

func (e *fakeExport) ExportToPDF(reports []entity.Tabular, filename, outputDir string) (string, error) {
	return e.add(fmt.Sprintf("pdf:%s:%d", filename, len(reports)))
}

type fakeMap struct {
	written []entity.PropertyMap
	dir     string
}

func (m *fakeMap) WritePropertyMap(pm entity.PropertyMap, outputDir string) (string, error) {
	m.written = append(m.written, pm)
	m.dir = outputDir
	return outputDir + "/properties_" + pm.State + ".html", nil
}
