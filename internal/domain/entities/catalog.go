package entities

// Read models consumed from the collaborator ports. An empty ID means
// the collaborator has no such record.

// PartsSupply is an inventory record (peça or insumo).
type PartsSupply struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Price    float64  `json:"price"`
	Quantity int      `json:"quantity"`
	Kind     ItemKind `json:"kind"`
}

// CatalogService is an entry from the shop's service catalog.
type CatalogService struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// Vehicle links a plate to its owning customer.
type Vehicle struct {
	ID         string `json:"id"`
	CustomerID string `json:"customer_id"`
	Plate      string `json:"plate"`
}
