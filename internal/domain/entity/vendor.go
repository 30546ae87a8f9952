package entity

// Vendor é o subconjunto de um fornecedor usado pela auditoria de duplicados.
type Vendor struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
