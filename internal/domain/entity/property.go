package entity

// Property is a customer property with its nested addresses.
type Property struct {
	ID          string    `json:"id"`
	CompanyName string    `json:"companyName"`
	Addresses   []Address `json:"addresses"`
}

// Address is one property address. Coordinates are nil when the API has none.
type Address struct {
	AddressType  string   `json:"addressType,omitempty"`
	AddressLine1 string   `json:"addressLine1,omitempty"`
	City         string   `json:"city,omitempty"`
	State        string   `json:"state,omitempty"`
	Zip          string   `json:"zipcode,omitempty"`
	Latitude     *float64 `json:"latitude,omitempty"`
	Longitude    *float64 `json:"longitude,omitempty"`
}

// HasCoordinates reports whether the address can be plotted.
func (a Address) HasCoordinates() bool {
	return a.Latitude != nil && a.Longitude != nil
}

// Ref returns the report pair for the property.
func (p Property) Ref() EntityRef {
	return EntityRef{ID: p.ID, Name: p.CompanyName}
}
