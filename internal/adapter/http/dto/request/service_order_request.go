package request

// CreateServiceOrderRequest opens a new service order for a vehicle.
type CreateServiceOrderRequest struct {
	VehicleID string `json:"vehicle_id" binding:"required"`
}

// AddItemRequest includes a parts supply on the order ledger. Name,
// price and kind are captured server-side from the inventory record.
type AddItemRequest struct {
	PartsSupplyID string `json:"parts_supply_id" binding:"required"`
	Quantity      int    `json:"quantity" binding:"required"`
}

// AddServiceRequest includes a catalog service on the order ledger.
type AddServiceRequest struct {
	ServiceID string `json:"service_id" binding:"required"`
}

// SetStatusRequest is the administrative status override payload.
type SetStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
