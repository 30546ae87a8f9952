package audit

import (
	"github.com/diillson/buildops-audit-go/internal/application/fetch"
	"github.com/diillson/buildops-audit-go/internal/domain/entity"
)

// CustomerLookups is the fan-out of one properties lookup per customer.
type CustomerLookups = fetch.Partition[entity.Customer, entity.Page[entity.Property]]

// CustomerOutcome is the lookup result for one customer.
type CustomerOutcome = fetch.Outcome[entity.Customer, entity.Page[entity.Property]]

// CustomersByPropertyPresence classifies customers whose lookup succeeded by
// the total count of their properties. Customers whose lookup failed appear in
// Failed and in neither classification.
func CustomersByPropertyPresence(lookups CustomerLookups, withProperties bool) entity.CustomerReport {
	report := entity.CustomerReport{
		WithProperties: withProperties,
		Customers:      []entity.EntityRef{},
	}

	for _, outcome := range lookups.Succeeded {
		hasProperties := outcome.Value.TotalCount > 0
		if hasProperties == withProperties {
			report.Customers = append(report.Customers, outcome.Parent.Ref())
		}
	}
	for _, outcome := range lookups.Failed {
		report.Failed = append(report.Failed, entity.LookupFailure{
			ID:    outcome.Parent.ID,
			Name:  outcome.Parent.Name,
			Error: outcome.Err.Error(),
		})
	}

	report.TotalCount = len(report.Customers)
	return report
}
