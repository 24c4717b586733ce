package response

import (
	"time"

	"os_service_api/internal/domain/entities"
)

type IncludedItemResponse struct {
	ID            string  `json:"id"`
	PartsSupplyID string  `json:"parts_supply_id"`
	Name          string  `json:"name"`
	UnitPrice     float64 `json:"unit_price"`
	Quantity      int     `json:"quantity"`
	Kind          string  `json:"kind"`
	Total         float64 `json:"total"`
}

type IncludedServiceResponse struct {
	ID        string  `json:"id"`
	ServiceID string  `json:"service_id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
}

type HistoryResponse struct {
	CreatedAt          time.Time  `json:"created_at"`
	DiagnosisStartedAt *time.Time `json:"diagnosis_started_at,omitempty"`
	BudgetGeneratedAt  *time.Time `json:"budget_generated_at,omitempty"`
	ExecutionStartedAt *time.Time `json:"execution_started_at,omitempty"`
	FinalizedAt        *time.Time `json:"finalized_at,omitempty"`
	DeliveredAt        *time.Time `json:"delivered_at,omitempty"`
}

type ServiceOrderResponse struct {
	ID            string                    `json:"id"`
	Code          string                    `json:"code"`
	VehicleID     string                    `json:"vehicle_id"`
	Status        string                    `json:"status"`
	Items         []IncludedItemResponse    `json:"items"`
	Services      []IncludedServiceResponse `json:"services"`
	ItemsTotal    float64                   `json:"items_total"`
	ServicesTotal float64                   `json:"services_total"`
	Total         float64                   `json:"total"`
	History       HistoryResponse           `json:"history"`
}

func FromServiceOrder(o entities.ServiceOrder) ServiceOrderResponse {
	resp := ServiceOrderResponse{
		ID:            o.ID,
		Code:          o.Code,
		VehicleID:     o.VehicleID,
		Status:        string(o.Status),
		Items:         make([]IncludedItemResponse, 0, len(o.Items)),
		Services:      make([]IncludedServiceResponse, 0, len(o.Services)),
		ItemsTotal:    o.ItemsTotal(),
		ServicesTotal: o.ServicesTotal(),
		Total:         o.Total(),
		History: HistoryResponse{
			CreatedAt:          o.History.CreatedAt,
			DiagnosisStartedAt: o.History.DiagnosisStartedAt,
			BudgetGeneratedAt:  o.History.BudgetGeneratedAt,
			ExecutionStartedAt: o.History.ExecutionStartedAt,
			FinalizedAt:        o.History.FinalizedAt,
			DeliveredAt:        o.History.DeliveredAt,
		},
	}
	for _, item := range o.Items {
		resp.Items = append(resp.Items, IncludedItemResponse{
			ID:            item.ID,
			PartsSupplyID: item.PartsSupplyID,
			Name:          item.Name,
			UnitPrice:     item.UnitPrice,
			Quantity:      item.Quantity,
			Kind:          string(item.Kind),
			Total:         item.Total(),
		})
	}
	for _, svc := range o.Services {
		resp.Services = append(resp.Services, IncludedServiceResponse{
			ID:        svc.ID,
			ServiceID: svc.ServiceID,
			Name:      svc.Name,
			Price:     svc.Price,
		})
	}
	return resp
}

func FromServiceOrders(orders []entities.ServiceOrder) []ServiceOrderResponse {
	out := make([]ServiceOrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, FromServiceOrder(o))
	}
	return out
}
