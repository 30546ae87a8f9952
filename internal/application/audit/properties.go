package audit

import (
	"strings"

	"github.com/diillson/buildops-audit-go/internal/domain/entity"
)

// DefaultCenter is used when no address of the state has coordinates.
var DefaultCenter = [2]float64{39.8283, -98.5795}

// PropertiesWithManyAddresses returns the properties having more than
// threshold addresses.
func PropertiesWithManyAddresses(properties []entity.Property, threshold int) entity.PropertyReport {
	report := entity.PropertyReport{
		Threshold:  threshold,
		Properties: []entity.EntityRef{},
	}
	for _, p := range properties {
		if len(p.Addresses) > threshold {
			report.Properties = append(report.Properties, p.Ref())
		}
	}
	report.TotalCount = len(report.Properties)
	return report
}

// PropertiesInState returns the properties with at least one address in state.
// The comparison ignores case and surrounding spaces.
func PropertiesInState(properties []entity.Property, state string) []entity.Property {
	var matched []entity.Property
	for _, p := range properties {
		for _, a := range p.Addresses {
			if sameState(a.State, state) {
				matched = append(matched, p)
				break
			}
		}
	}
	return matched
}

// BuildPropertyMap places one marker per address of state that has
// coordinates. The map is centered on the first marker, or on DefaultCenter.
func BuildPropertyMap(properties []entity.Property, state string) entity.PropertyMap {
	state = strings.TrimSpace(state)
	matched := PropertiesInState(properties, state)

	m := entity.PropertyMap{
		State:      state,
		Markers:    []entity.MapMarker{},
		Center:     DefaultCenter,
		Properties: len(matched),
	}
	for _, p := range matched {
		for _, a := range p.Addresses {
			if !sameState(a.State, state) || !a.HasCoordinates() {
				continue
			}
			m.Markers = append(m.Markers, entity.MapMarker{
				PropertyID:   p.ID,
				PropertyName: p.CompanyName,
				Address:      formatAddress(a),
				Latitude:     *a.Latitude,
				Longitude:    *a.Longitude,
			})
		}
	}
	if len(m.Markers) > 0 {
		m.Center = [2]float64{m.Markers[0].Latitude, m.Markers[0].Longitude}
	}
	return m
}

func sameState(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}

func formatAddress(a entity.Address) string {
	parts := make([]string, 0, 4)
	for _, s := range []string{a.AddressLine1, a.City, a.State, a.Zip} {
		if s = strings.TrimSpace(s); s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, ", ")
}
