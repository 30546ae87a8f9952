package entity

// EntityRef identifies a flagged entity in a report.
type EntityRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// LookupFailure records a parent whose dependent lookup failed.
type LookupFailure struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Error string `json:"error"`
}

// CustomerReport lists customers classified by property presence.
// Failed customers belong to neither classification.
type CustomerReport struct {
	WithProperties bool            `json:"with_properties"`
	Customers      []EntityRef     `json:"customers"`
	TotalCount     int             `json:"totalCount"`
	Failed         []LookupFailure `json:"failed,omitempty"`
}

// PropertyReport lists properties with more addresses than Threshold.
type PropertyReport struct {
	Threshold  int         `json:"threshold"`
	Properties []EntityRef `json:"properties"`
	TotalCount int         `json:"totalCount"`
}

// AssetMakeReport counts assets per manufacturer.
// TotalCount is the number of distinct makes; TotalAssets is the sum of the counts.
type AssetMakeReport struct {
	AssetMakeCounts map[string]int `json:"asset_makes_count"`
	TotalCount      int            `json:"totalCount"`
	TotalAssets     int            `json:"totalAssets"`
}

// AssetMakeCatalog lists the manufacturer names known to the tenant.
type AssetMakeCatalog struct {
	AssetMakes []string `json:"asset_makes"`
	TotalCount int      `json:"totalCount"`
}

// VendorDuplicateReport maps every vendor name seen more than once to its count.
type VendorDuplicateReport struct {
	Vendors    map[string]int `json:"vendors"`
	TotalCount int            `json:"totalCount"`
}

// PropertyMap is the set of properties plotted for one state.
type PropertyMap struct {
	State      string      `json:"state"`
	Markers    []MapMarker `json:"markers"`
	Center     [2]float64  `json:"center"`
	Properties int         `json:"properties"`
}

// MapMarker is one plotted address.
type MapMarker struct {
	PropertyID   string  `json:"property_id"`
	PropertyName string  `json:"property_name"`
	Address      string  `json:"address"`
	Latitude     float64 `json:"latitude"`
	Longitude    float64 `json:"longitude"`
}
