package entities

// Role is an authorization role carried by an authenticated principal.
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleMechanic Role = "mecanico"
	RoleCustomer Role = "cliente"
)

// Actor is the authenticated principal used for authorization decisions.
// It is derived from the bearer token at the HTTP edge and passed
// explicitly into every use-case call; it is never persisted.
type Actor struct {
	ID         string `json:"id"`
	CustomerID string `json:"customer_id,omitempty"`
	Roles      []Role `json:"roles"`
}

func (a Actor) HasRole(role Role) bool {
	for _, r := range a.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// CanManageOrders gates shop-side operations: creating orders, diagnosis,
// ledger edits, budget generation, cancellation and status overrides.
func (a Actor) CanManageOrders() bool {
	return a.HasRole(RoleAdmin) || a.HasRole(RoleMechanic)
}

// OwnsCustomer reports whether the actor acts on behalf of customerID.
func (a Actor) OwnsCustomer(customerID string) bool {
	return customerID != "" && a.CustomerID == customerID
}
