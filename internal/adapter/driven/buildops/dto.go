package buildops

import (
	"bytes"
	"strconv"
	"strings"

	"github.com/goccy/go-json"

	"github.com/diillson/buildops-audit-go/internal/domain/entity"
)

type propertyDTO struct {
	ID          string       `json:"id"`
	CompanyName string       `json:"companyName"`
	Addresses   []addressDTO `json:"addresses"`
}

type addressDTO struct {
	AddressType  string    `json:"addressType"`
	AddressLine1 string    `json:"addressLine1"`
	City         string    `json:"city"`
	State        string    `json:"state"`
	Zipcode      string    `json:"zipcode"`
	Latitude     flexFloat `json:"latitude"`
	Longitude    flexFloat `json:"longitude"`
}

// flexFloat accepts a JSON number, a numeric string or null. Anything else
// decodes as absent rather than failing the page.
type flexFloat struct {
	value *float64
}

func (f *flexFloat) UnmarshalJSON(data []byte) error {
	f.value = nil
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil
	}

	var raw string
	if data[0] == '"' {
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil
		}
	} else {
		raw = string(data)
	}

	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return nil
	}
	f.value = &v
	return nil
}

func toPropertyPage(dto entity.Page[propertyDTO]) entity.Page[entity.Property] {
	page := entity.Page[entity.Property]{
		Items:      make([]entity.Property, 0, len(dto.Items)),
		TotalCount: dto.TotalCount,
	}
	for _, p := range dto.Items {
		property := entity.Property{ID: p.ID, CompanyName: p.CompanyName}
		for _, a := range p.Addresses {
			property.Addresses = append(property.Addresses, entity.Address{
				AddressType:  a.AddressType,
				AddressLine1: a.AddressLine1,
				City:         a.City,
				State:        a.State,
				Zip:          a.Zipcode,
				Latitude:     a.Latitude.value,
				Longitude:    a.Longitude.value,
			})
		}
		page.Items = append(page.Items, property)
	}
	return page
}
