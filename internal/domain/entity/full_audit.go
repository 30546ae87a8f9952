package entity

// FullAuditReport agrega todos os relatórios de auditoria de um tenant.
// Usamos ponteiros para que, se uma sub-auditoria falhar, ela possa ser nula sem quebrar o resto.
type FullAuditReport struct {
	TenantID string `json:"tenant_id"`

	CustomersWithoutProperties *CustomerReport        `json:"customers_without_properties,omitempty"`
	CustomersWithProperties    *CustomerReport        `json:"customers_with_properties,omitempty"`
	PropertiesManyAddresses    *PropertyReport        `json:"properties_many_addresses,omitempty"`
	AssetMakeCounts            *AssetMakeReport       `json:"asset_make_counts,omitempty"`
	VendorDuplicates           *VendorDuplicateReport `json:"vendor_duplicates,omitempty"`

	Errors map[string]string `json:"errors,omitempty"`
}
