package entity

// Asset is a property asset. Make is empty when the API omits it.
type Asset struct {
	ID   string `json:"id"`
	Make string `json:"make"`
}

// AssetMake is an entry of the tenant's manufacturer catalog.
type AssetMake struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
