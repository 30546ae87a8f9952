package entity

// Customer is the subset of a BuildOps customer read by the audits.
type Customer struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Ref returns the report pair for the customer.
func (c Customer) Ref() EntityRef {
	return EntityRef{ID: c.ID, Name: c.Name}
}
