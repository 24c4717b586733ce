package entities

import (
	"crypto/rand"
	"time"

	"os_service_api/pkg"

	"github.com/google/uuid"
)

// OSStatus represents the lifecycle of a service order (ordem de serviço).
//
// Domain notes:
//   - The os-service-api is the source of truth for order state.
//   - Transitions only happen through the aggregate methods below; no
//     field update bypasses them.
//   - cancelada, finalizada and entregue are terminal for mutation
//     (finalizada still accepts Deliver).

type OSStatus string

const (
	StatusReceived         OSStatus = "recebida"
	StatusInDiagnosis      OSStatus = "em_diagnostico"
	StatusAwaitingApproval OSStatus = "aguardando_aprovacao"
	StatusInExecution      OSStatus = "em_execucao"
	StatusFinalized        OSStatus = "finalizada"
	StatusDelivered        OSStatus = "entregue"
	StatusCancelled        OSStatus = "cancelada"
)

// Valid reports whether s is one of the known statuses.
func (s OSStatus) Valid() bool {
	switch s {
	case StatusReceived, StatusInDiagnosis, StatusAwaitingApproval,
		StatusInExecution, StatusFinalized, StatusDelivered, StatusCancelled:
		return true
	}
	return false
}

// Terminal reports whether s admits no further mutation.
func (s OSStatus) Terminal() bool {
	switch s {
	case StatusFinalized, StatusDelivered, StatusCancelled:
		return true
	}
	return false
}

// ItemKind distinguishes parts from consumables on the order ledger.
type ItemKind string

const (
	ItemKindPart       ItemKind = "peca"
	ItemKindConsumable ItemKind = "insumo"
)

// IncludedItem is a parts-supply line captured by value when it is added
// to the order. Later catalog or price changes never alter it.
type IncludedItem struct {
	ID            string   `json:"id"`
	PartsSupplyID string   `json:"parts_supply_id"`
	Name          string   `json:"name"`
	UnitPrice     float64  `json:"unit_price"`
	Quantity      int      `json:"quantity"`
	Kind          ItemKind `json:"kind"`
}

// Total is the captured unit price times quantity, computed at read time.
func (i IncludedItem) Total() float64 {
	return i.UnitPrice * float64(i.Quantity)
}

// IncludedService is a catalog-service line captured by value.
type IncludedService struct {
	ID        string  `json:"id"`
	ServiceID string  `json:"service_id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
}

// History records when each lifecycle transition first happened. Every
// timestamp is set exactly once and never overwritten.
type History struct {
	CreatedAt          time.Time  `json:"created_at"`
	DiagnosisStartedAt *time.Time `json:"diagnosis_started_at,omitempty"`
	BudgetGeneratedAt  *time.Time `json:"budget_generated_at,omitempty"`
	ExecutionStartedAt *time.Time `json:"execution_started_at,omitempty"`
	FinalizedAt        *time.Time `json:"finalized_at,omitempty"`
	DeliveredAt        *time.Time `json:"delivered_at,omitempty"`
}

// ServiceOrder is the aggregate root for one repair job, from intake to
// delivery.
type ServiceOrder struct {
	ID        string            `json:"id"`
	Code      string            `json:"code"`
	VehicleID string            `json:"vehicle_id"`
	Status    OSStatus          `json:"status"`
	Items     []IncludedItem    `json:"items"`
	Services  []IncludedService `json:"services"`
	History   History           `json:"history"`
}

// NewServiceOrder builds a freshly received order.
func NewServiceOrder(id, code, vehicleID string, now time.Time) ServiceOrder {
	return ServiceOrder{
		ID:        id,
		Code:      code,
		VehicleID: vehicleID,
		Status:    StatusReceived,
		History:   History{CreatedAt: now},
	}
}

const (
	CodePrefix       = "OS-"
	codeSuffixLength = 8
	codeAlphabet     = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"
)

// GenerateOSCode produces a candidate human-readable order code. The
// caller is responsible for checking it against existing orders; the
// storage layer owns the authoritative uniqueness guarantee.
func GenerateOSCode() string {
	buf := make([]byte, codeSuffixLength)
	if _, err := rand.Read(buf); err != nil {
		// crypto/rand never fails on supported platforms; fall back to
		// a uuid-derived suffix just in case.
		u := uuid.NewString()
		copy(buf, u[:codeSuffixLength])
	}
	for i, b := range buf {
		buf[i] = codeAlphabet[int(b)%len(codeAlphabet)]
	}
	return CodePrefix + string(buf)
}

func (o *ServiceOrder) ensureMutable() error {
	if o.Status.Terminal() {
		return pkg.NewDomainFailuref(pkg.KindDomainRuleBroken,
			"service order %s is %s and can no longer be changed", o.Code, o.Status)
	}
	return nil
}

// StartDiagnosis moves a received order into diagnosis.
func (o *ServiceOrder) StartDiagnosis(now time.Time) error {
	if err := o.ensureMutable(); err != nil {
		return err
	}
	if o.Status != StatusReceived {
		return pkg.NewDomainFailuref(pkg.KindDomainRuleBroken,
			"cannot start diagnosis while order is %s", o.Status)
	}
	o.Status = StatusInDiagnosis
	if o.History.DiagnosisStartedAt == nil {
		ts := now
		o.History.DiagnosisStartedAt = &ts
	}
	return nil
}

// GenerateBudget closes the diagnosis into a budget awaiting customer
// approval. At least one item or service must be present.
func (o *ServiceOrder) GenerateBudget(now time.Time) error {
	if err := o.ensureMutable(); err != nil {
		return err
	}
	if o.Status != StatusInDiagnosis {
		return pkg.NewDomainFailuref(pkg.KindDomainRuleBroken,
			"cannot generate a budget while order is %s", o.Status)
	}
	if len(o.Items) == 0 && len(o.Services) == 0 {
		return pkg.NewDomainFailure(pkg.KindDomainRuleBroken,
			"cannot generate an empty budget; include at least one item or service")
	}
	o.Status = StatusAwaitingApproval
	if o.History.BudgetGeneratedAt == nil {
		ts := now
		o.History.BudgetGeneratedAt = &ts
	}
	return nil
}

// ApproveBudget moves an approved budget into execution. Stock
// availability is checked by the orchestration before calling this.
func (o *ServiceOrder) ApproveBudget(now time.Time) error {
	if err := o.ensureMutable(); err != nil {
		return err
	}
	if o.Status != StatusAwaitingApproval {
		return pkg.NewDomainFailure(pkg.KindDomainRuleBroken,
			"no budget exists to approve; generate one first")
	}
	o.Status = StatusInExecution
	if o.History.ExecutionStartedAt == nil {
		ts := now
		o.History.ExecutionStartedAt = &ts
	}
	return nil
}

// RejectBudget sends the order back to diagnosis for rework.
func (o *ServiceOrder) RejectBudget() error {
	if err := o.ensureMutable(); err != nil {
		return err
	}
	if o.Status != StatusAwaitingApproval {
		return pkg.NewDomainFailure(pkg.KindDomainRuleBroken,
			"no budget exists to reject; generate one first")
	}
	o.Status = StatusInDiagnosis
	return nil
}

// FinalizeExecution marks the repair work as done.
func (o *ServiceOrder) FinalizeExecution(now time.Time) error {
	if err := o.ensureMutable(); err != nil {
		return err
	}
	if o.Status != StatusInExecution {
		return pkg.NewDomainFailuref(pkg.KindDomainRuleBroken,
			"cannot finalize execution while order is %s", o.Status)
	}
	o.Status = StatusFinalized
	if o.History.FinalizedAt == nil {
		ts := now
		o.History.FinalizedAt = &ts
	}
	return nil
}

// Deliver hands the finished vehicle back to the customer.
func (o *ServiceOrder) Deliver(now time.Time) error {
	if o.Status != StatusFinalized {
		return pkg.NewDomainFailuref(pkg.KindDomainRuleBroken,
			"cannot deliver while order is %s", o.Status)
	}
	o.Status = StatusDelivered
	if o.History.DeliveredAt == nil {
		ts := now
		o.History.DeliveredAt = &ts
	}
	return nil
}

// Cancel terminates the order from any non-terminal status. Cancellation
// is a terminal status, never a physical removal.
func (o *ServiceOrder) Cancel() error {
	if err := o.ensureMutable(); err != nil {
		return err
	}
	o.Status = StatusCancelled
	return nil
}

// SetStatus is the administrative override: it bypasses the transition
// guards but still respects terminality and status validity.
func (o *ServiceOrder) SetStatus(target OSStatus) error {
	if !target.Valid() {
		return pkg.NewDomainFailuref(pkg.KindInvalidInput, "unknown status %q", target)
	}
	if err := o.ensureMutable(); err != nil {
		return err
	}
	o.Status = target
	return nil
}

// AddItem appends a parts-supply line. All captured fields are copied by
// value at insertion time.
func (o *ServiceOrder) AddItem(partsSupplyID, name string, unitPrice float64, quantity int, kind ItemKind) (IncludedItem, error) {
	if err := o.ensureMutable(); err != nil {
		return IncludedItem{}, err
	}
	if quantity <= 0 {
		return IncludedItem{}, pkg.NewDomainFailure(pkg.KindInvalidInput,
			"item quantity must be greater than zero")
	}
	item := IncludedItem{
		ID:            uuid.NewString(),
		PartsSupplyID: partsSupplyID,
		Name:          name,
		UnitPrice:     unitPrice,
		Quantity:      quantity,
		Kind:          kind,
	}
	o.Items = append(o.Items, item)
	return item, nil
}

// AddService appends a catalog-service line captured by value.
func (o *ServiceOrder) AddService(serviceID, name string, price float64) (IncludedService, error) {
	if err := o.ensureMutable(); err != nil {
		return IncludedService{}, err
	}
	svc := IncludedService{
		ID:        uuid.NewString(),
		ServiceID: serviceID,
		Name:      name,
		Price:     price,
	}
	o.Services = append(o.Services, svc)
	return svc, nil
}

// RemoveItem removes the ledger line with the given id.
func (o *ServiceOrder) RemoveItem(includedItemID string) error {
	if err := o.ensureMutable(); err != nil {
		return err
	}
	for i, item := range o.Items {
		if item.ID == includedItemID {
			o.Items = append(o.Items[:i], o.Items[i+1:]...)
			return nil
		}
	}
	return pkg.NewDomainFailuref(pkg.KindResourceNotFound,
		"item %s is not part of this order", includedItemID)
}

// RemoveService removes the service line with the given id.
func (o *ServiceOrder) RemoveService(includedServiceID string) error {
	if err := o.ensureMutable(); err != nil {
		return err
	}
	for i, svc := range o.Services {
		if svc.ID == includedServiceID {
			o.Services = append(o.Services[:i], o.Services[i+1:]...)
			return nil
		}
	}
	return pkg.NewDomainFailuref(pkg.KindResourceNotFound,
		"service %s is not part of this order", includedServiceID)
}

// ItemsTotal sums the item lines at read time; totals are never cached.
func (o *ServiceOrder) ItemsTotal() float64 {
	total := 0.0
	for _, item := range o.Items {
		total += item.Total()
	}
	return total
}

// ServicesTotal sums the service lines at read time.
func (o *ServiceOrder) ServicesTotal() float64 {
	total := 0.0
	for _, svc := range o.Services {
		total += svc.Price
	}
	return total
}

// Total is the full budget value of the order.
func (o *ServiceOrder) Total() float64 {
	return o.ItemsTotal() + o.ServicesTotal()
}
