package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"os_service_api/internal/domain/entities"
	"os_service_api/internal/usecase/interfaces"
	"os_service_api/pkg"

	"github.com/google/uuid"
)

const maxCodeAttempts = 5

// IServiceOrderUseCase exposes the service-order lifecycle operations.
//
// Every call takes the acting principal explicitly; authorization is
// decided here (and in the aggregate guards), never from ambient state.
// Each operation loads the aggregate fresh, applies the business rule,
// persists and returns the updated order.

type IServiceOrderUseCase interface {
	Create(ctx context.Context, actor entities.Actor, vehicleID string) (entities.ServiceOrder, error)
	GetByID(ctx context.Context, actor entities.Actor, id string) (entities.ServiceOrder, error)
	GetByCode(ctx context.Context, actor entities.Actor, code string) (entities.ServiceOrder, error)
	List(ctx context.Context, actor entities.Actor) ([]entities.ServiceOrder, error)

	AddItem(ctx context.Context, actor entities.Actor, orderID, partsSupplyID string, quantity int) (entities.ServiceOrder, error)
	RemoveItem(ctx context.Context, actor entities.Actor, orderID, includedItemID string) (entities.ServiceOrder, error)
	AddService(ctx context.Context, actor entities.Actor, orderID, serviceID string) (entities.ServiceOrder, error)
	RemoveService(ctx context.Context, actor entities.Actor, orderID, includedServiceID string) (entities.ServiceOrder, error)

	StartDiagnosis(ctx context.Context, actor entities.Actor, orderID string) (entities.ServiceOrder, error)
	GenerateBudget(ctx context.Context, actor entities.Actor, orderID string) (entities.ServiceOrder, error)
	ApproveBudget(ctx context.Context, actor entities.Actor, orderID string) (entities.ServiceOrder, error)
	RejectBudget(ctx context.Context, actor entities.Actor, orderID string) (entities.ServiceOrder, error)
	FinalizeExecution(ctx context.Context, actor entities.Actor, orderID string) (entities.ServiceOrder, error)
	Deliver(ctx context.Context, actor entities.Actor, orderID string) (entities.ServiceOrder, error)
	Cancel(ctx context.Context, actor entities.Actor, orderID string) (entities.ServiceOrder, error)
	SetStatus(ctx context.Context, actor entities.Actor, orderID string, status entities.OSStatus) (entities.ServiceOrder, error)
}

type ServiceOrderUseCase struct {
	repo     interfaces.IServiceOrderRepository
	parts    interfaces.IPartsSupplyService
	catalog  interfaces.IServiceCatalog
	vehicles interfaces.IVehicleService
	gateway  interfaces.IPaymentGateway
}

var _ IServiceOrderUseCase = (*ServiceOrderUseCase)(nil)

func NewServiceOrderUseCase(
	repo interfaces.IServiceOrderRepository,
	parts interfaces.IPartsSupplyService,
	catalog interfaces.IServiceCatalog,
	vehicles interfaces.IVehicleService,
	gateway interfaces.IPaymentGateway,
) *ServiceOrderUseCase {
	return &ServiceOrderUseCase{repo: repo, parts: parts, catalog: catalog, vehicles: vehicles, gateway: gateway}
}

func (u *ServiceOrderUseCase) Create(ctx context.Context, actor entities.Actor, vehicleID string) (entities.ServiceOrder, error) {
	if !actor.CanManageOrders() {
		return entities.ServiceOrder{}, pkg.NewDomainFailure(pkg.KindNotAllowed, "actor is not allowed to create service orders")
	}
	vehicleID = strings.TrimSpace(vehicleID)
	if vehicleID == "" {
		return entities.ServiceOrder{}, pkg.NewDomainFailure(pkg.KindInvalidInput, "vehicle_id is required")
	}

	exists, err := u.vehicles.Exists(ctx, vehicleID)
	if err != nil {
		log.Printf("[os][usecase] vehicle lookup failed vehicle_id=%s err=%v", vehicleID, err)
		return entities.ServiceOrder{}, pkg.WrapUnexpected(err)
	}
	if !exists {
		return entities.ServiceOrder{}, pkg.NewDomainFailuref(pkg.KindReferenceNotFound, "vehicle %s not found", vehicleID)
	}

	code, err := u.generateUniqueCode(ctx)
	if err != nil {
		return entities.ServiceOrder{}, err
	}

	order := entities.NewServiceOrder(uuid.NewString(), code, vehicleID, time.Now().UTC())
	created, err := u.repo.Create(ctx, order)
	if err != nil {
		log.Printf("[os][usecase] create failed vehicle_id=%s code=%s err=%v", vehicleID, code, err)
		return entities.ServiceOrder{}, pkg.WrapUnexpected(err)
	}
	log.Printf("[os][usecase] create success os_id=%s code=%s vehicle_id=%s", created.ID, created.Code, created.VehicleID)
	return created, nil
}

// generateUniqueCode retries on collision. The loop is advisory only;
// concurrent creations are settled by the repository's conditional write.
func (u *ServiceOrderUseCase) generateUniqueCode(ctx context.Context) (string, error) {
	for attempt := 0; attempt < maxCodeAttempts; attempt++ {
		code := entities.GenerateOSCode()
		existing, err := u.repo.GetByCode(ctx, code)
		if err != nil {
			return "", pkg.WrapUnexpected(err)
		}
		if existing.ID == "" {
			return code, nil
		}
		log.Printf("[os][usecase] code collision code=%s attempt=%d", code, attempt+1)
	}
	return "", pkg.NewDomainFailure(pkg.KindConflict, "could not generate a unique order code")
}

func (u *ServiceOrderUseCase) GetByID(ctx context.Context, actor entities.Actor, id string) (entities.ServiceOrder, error) {
	order, err := u.loadOrder(ctx, id)
	if err != nil {
		return entities.ServiceOrder{}, err
	}
	if err := u.authorizeOrderAccess(ctx, actor, order); err != nil {
		return entities.ServiceOrder{}, err
	}
	return order, nil
}

func (u *ServiceOrderUseCase) GetByCode(ctx context.Context, actor entities.Actor, code string) (entities.ServiceOrder, error) {
	if !actor.CanManageOrders() {
		return entities.ServiceOrder{}, pkg.NewDomainFailure(pkg.KindNotAllowed, "actor is not allowed to look up orders by code")
	}
	code = strings.TrimSpace(code)
	if code == "" {
		return entities.ServiceOrder{}, pkg.NewDomainFailure(pkg.KindInvalidInput, "code is required")
	}
	order, err := u.repo.GetByCode(ctx, code)
	if err != nil {
		return entities.ServiceOrder{}, pkg.WrapUnexpected(err)
	}
	if order.ID == "" {
		return entities.ServiceOrder{}, pkg.NewDomainFailuref(pkg.KindResourceNotFound, "service order with code %s not found", code)
	}
	return order, nil
}

func (u *ServiceOrderUseCase) List(ctx context.Context, actor entities.Actor) ([]entities.ServiceOrder, error) {
	if !actor.CanManageOrders() {
		return nil, pkg.NewDomainFailure(pkg.KindNotAllowed, "actor is not allowed to list service orders")
	}
	orders, err := u.repo.List(ctx)
	if err != nil {
		return nil, pkg.WrapUnexpected(err)
	}
	return orders, nil
}

func (u *ServiceOrderUseCase) AddItem(ctx context.Context, actor entities.Actor, orderID, partsSupplyID string, quantity int) (entities.ServiceOrder, error) {
	if !actor.CanManageOrders() {
		return entities.ServiceOrder{}, pkg.NewDomainFailure(pkg.KindNotAllowed, "actor is not allowed to edit the order ledger")
	}
	partsSupplyID = strings.TrimSpace(partsSupplyID)
	if partsSupplyID == "" {
		return entities.ServiceOrder{}, pkg.NewDomainFailure(pkg.KindInvalidInput, "parts_supply_id is required")
	}

	order, err := u.loadOrder(ctx, orderID)
	if err != nil {
		return entities.ServiceOrder{}, err
	}

	supply, err := u.parts.GetByID(ctx, partsSupplyID)
	if err != nil {
		log.Printf("[os][usecase] parts supply lookup failed os_id=%s parts_supply_id=%s err=%v", order.ID, partsSupplyID, err)
		return entities.ServiceOrder{}, pkg.WrapUnexpected(err)
	}
	if supply.ID == "" {
		return entities.ServiceOrder{}, pkg.NewDomainFailuref(pkg.KindReferenceNotFound, "parts supply %s not found", partsSupplyID)
	}

	if _, err := order.AddItem(supply.ID, supply.Name, supply.Price, quantity, supply.Kind); err != nil {
		return entities.ServiceOrder{}, err
	}
	return u.persist(ctx, order)
}

func (u *ServiceOrderUseCase) RemoveItem(ctx context.Context, actor entities.Actor, orderID, includedItemID string) (entities.ServiceOrder, error) {
	if !actor.CanManageOrders() {
		return entities.ServiceOrder{}, pkg.NewDomainFailure(pkg.KindNotAllowed, "actor is not allowed to edit the order ledger")
	}
	order, err := u.loadOrder(ctx, orderID)
	if err != nil {
		return entities.ServiceOrder{}, err
	}
	if err := order.RemoveItem(strings.TrimSpace(includedItemID)); err != nil {
		return entities.ServiceOrder{}, err
	}
	return u.persist(ctx, order)
}

func (u *ServiceOrderUseCase) AddService(ctx context.Context, actor entities.Actor, orderID, serviceID string) (entities.ServiceOrder, error) {
	if !actor.CanManageOrders() {
		return entities.ServiceOrder{}, pkg.NewDomainFailure(pkg.KindNotAllowed, "actor is not allowed to edit the order ledger")
	}
	serviceID = strings.TrimSpace(serviceID)
	if serviceID == "" {
		return entities.ServiceOrder{}, pkg.NewDomainFailure(pkg.KindInvalidInput, "service_id is required")
	}

	order, err := u.loadOrder(ctx, orderID)
	if err != nil {
		return entities.ServiceOrder{}, err
	}

	svc, err := u.catalog.GetByID(ctx, serviceID)
	if err != nil {
		log.Printf("[os][usecase] catalog lookup failed os_id=%s service_id=%s err=%v", order.ID, serviceID, err)
		return entities.ServiceOrder{}, pkg.WrapUnexpected(err)
	}
	if svc.ID == "" {
		return entities.ServiceOrder{}, pkg.NewDomainFailuref(pkg.KindReferenceNotFound, "service %s not found", serviceID)
	}

	if _, err := order.AddService(svc.ID, svc.Name, svc.Price); err != nil {
		return entities.ServiceOrder{}, err
	}
	return u.persist(ctx, order)
}

func (u *ServiceOrderUseCase) RemoveService(ctx context.Context, actor entities.Actor, orderID, includedServiceID string) (entities.ServiceOrder, error) {
	if !actor.CanManageOrders() {
		return entities.ServiceOrder{}, pkg.NewDomainFailure(pkg.KindNotAllowed, "actor is not allowed to edit the order ledger")
	}
	order, err := u.loadOrder(ctx, orderID)
	if err != nil {
		return entities.ServiceOrder{}, err
	}
	if err := order.RemoveService(strings.TrimSpace(includedServiceID)); err != nil {
		return entities.ServiceOrder{}, err
	}
	return u.persist(ctx, order)
}

func (u *ServiceOrderUseCase) StartDiagnosis(ctx context.Context, actor entities.Actor, orderID string) (entities.ServiceOrder, error) {
	if !actor.CanManageOrders() {
		return entities.ServiceOrder{}, pkg.NewDomainFailure(pkg.KindNotAllowed, "actor is not allowed to start a diagnosis")
	}
	order, err := u.loadOrder(ctx, orderID)
	if err != nil {
		return entities.ServiceOrder{}, err
	}
	if err := order.StartDiagnosis(time.Now().UTC()); err != nil {
		return entities.ServiceOrder{}, err
	}
	return u.persist(ctx, order)
}

func (u *ServiceOrderUseCase) GenerateBudget(ctx context.Context, actor entities.Actor, orderID string) (entities.ServiceOrder, error) {
	if !actor.CanManageOrders() {
		return entities.ServiceOrder{}, pkg.NewDomainFailure(pkg.KindNotAllowed, "actor is not allowed to generate a budget")
	}
	order, err := u.loadOrder(ctx, orderID)
	if err != nil {
		return entities.ServiceOrder{}, err
	}
	if err := order.GenerateBudget(time.Now().UTC()); err != nil {
		return entities.ServiceOrder{}, err
	}
	return u.persist(ctx, order)
}

// ApproveBudget runs the approval orchestration:
//
//  1. load the order
//  2. check stock availability for every included item; the first
//     unavailable item aborts with nothing mutated
//  3. transition the aggregate to execution
//  4. debit stock item by item (records the last failure, skips items
//     that vanished from inventory)
//  5. persist the approved order
//
// The stock debits and the order write are independent external calls;
// a failure in step 4 or 5 leaves the approval partially applied. That
// gap is reported as an unexpected error and is not compensated.
func (u *ServiceOrderUseCase) ApproveBudget(ctx context.Context, actor entities.Actor, orderID string) (entities.ServiceOrder, error) {
	order, err := u.loadOrder(ctx, orderID)
	if err != nil {
		return entities.ServiceOrder{}, err
	}
	log.Printf("[os][usecase] approve-budget start os_id=%s items=%d", order.ID, len(order.Items))

	for _, item := range order.Items {
		available, err := u.parts.CheckAvailability(ctx, item.PartsSupplyID, item.Quantity)
		if err != nil {
			log.Printf("[os][usecase] availability check failed os_id=%s parts_supply_id=%s err=%v", order.ID, item.PartsSupplyID, err)
			return entities.ServiceOrder{}, pkg.WrapUnexpected(err)
		}
		if !available {
			return entities.ServiceOrder{}, pkg.NewDomainFailuref(pkg.KindDomainRuleBroken,
				"insufficient stock for %s (need %d)", item.Name, item.Quantity)
		}
	}

	if err := order.ApproveBudget(time.Now().UTC()); err != nil {
		return entities.ServiceOrder{}, err
	}

	var lastErr error
	for _, item := range order.Items {
		supply, err := u.parts.GetByID(ctx, item.PartsSupplyID)
		if err != nil {
			log.Printf("[os][usecase] stock refetch failed os_id=%s parts_supply_id=%s err=%v", order.ID, item.PartsSupplyID, err)
			lastErr = err
			continue
		}
		if supply.ID == "" {
			// Item vanished from inventory between check and debit; skip.
			log.Printf("[os][usecase] stock debit skipped (gone) os_id=%s parts_supply_id=%s", order.ID, item.PartsSupplyID)
			continue
		}
		if err := u.parts.SetQuantity(ctx, supply.ID, supply.Quantity-item.Quantity); err != nil {
			log.Printf("[os][usecase] stock debit failed os_id=%s parts_supply_id=%s err=%v", order.ID, item.PartsSupplyID, err)
			lastErr = err
		}
	}

	updated, err := u.repo.Update(ctx, order)
	if err != nil {
		log.Printf("[os][usecase] approve-budget persist failed os_id=%s err=%v", order.ID, err)
		lastErr = err
	}
	if lastErr != nil {
		return entities.ServiceOrder{}, pkg.WrapUnexpected(lastErr)
	}
	log.Printf("[os][usecase] approve-budget success os_id=%s status=%s", updated.ID, updated.Status)
	return updated, nil
}

func (u *ServiceOrderUseCase) RejectBudget(ctx context.Context, actor entities.Actor, orderID string) (entities.ServiceOrder, error) {
	order, err := u.loadOrder(ctx, orderID)
	if err != nil {
		return entities.ServiceOrder{}, err
	}
	if err := u.authorizeOrderAccess(ctx, actor, order); err != nil {
		return entities.ServiceOrder{}, err
	}
	if err := order.RejectBudget(); err != nil {
		return entities.ServiceOrder{}, err
	}
	return u.persist(ctx, order)
}

func (u *ServiceOrderUseCase) FinalizeExecution(ctx context.Context, actor entities.Actor, orderID string) (entities.ServiceOrder, error) {
	order, err := u.loadOrder(ctx, orderID)
	if err != nil {
		return entities.ServiceOrder{}, err
	}
	if err := order.FinalizeExecution(time.Now().UTC()); err != nil {
		return entities.ServiceOrder{}, err
	}
	return u.persist(ctx, order)
}

func (u *ServiceOrderUseCase) Deliver(ctx context.Context, actor entities.Actor, orderID string) (entities.ServiceOrder, error) {
	order, err := u.loadOrder(ctx, orderID)
	if err != nil {
		return entities.ServiceOrder{}, err
	}
	if err := order.Deliver(time.Now().UTC()); err != nil {
		return entities.ServiceOrder{}, err
	}
	updated, err := u.persist(ctx, order)
	if err != nil {
		return entities.ServiceOrder{}, err
	}
	u.registerDeliveryPayment(ctx, updated)
	return updated, nil
}

// registerDeliveryPayment posts the order total to the payment gateway.
// Best effort only: a gateway failure never undoes a delivery.
func (u *ServiceOrderUseCase) registerDeliveryPayment(ctx context.Context, order entities.ServiceOrder) {
	if u.gateway == nil {
		return
	}
	payload, err := json.Marshal(map[string]any{
		"external_reference": order.ID,
		"description":        fmt.Sprintf("Service order %s", order.Code),
		"transaction_amount": order.Total(),
	})
	if err != nil {
		log.Printf("[os][usecase] delivery payment payload failed os_id=%s err=%v", order.ID, err)
		return
	}
	paymentID, status, _, err := u.gateway.CreatePayment(ctx, payload)
	if err != nil {
		log.Printf("[os][usecase] delivery payment failed os_id=%s err=%v", order.ID, err)
		return
	}
	log.Printf("[os][usecase] delivery payment registered os_id=%s payment_id=%s status=%s", order.ID, paymentID, status)
}

func (u *ServiceOrderUseCase) Cancel(ctx context.Context, actor entities.Actor, orderID string) (entities.ServiceOrder, error) {
	if !actor.CanManageOrders() {
		return entities.ServiceOrder{}, pkg.NewDomainFailure(pkg.KindNotAllowed, "actor is not allowed to cancel service orders")
	}
	order, err := u.loadOrder(ctx, orderID)
	if err != nil {
		return entities.ServiceOrder{}, err
	}
	if err := order.Cancel(); err != nil {
		return entities.ServiceOrder{}, err
	}
	return u.persist(ctx, order)
}

func (u *ServiceOrderUseCase) SetStatus(ctx context.Context, actor entities.Actor, orderID string, status entities.OSStatus) (entities.ServiceOrder, error) {
	if !actor.CanManageOrders() {
		return entities.ServiceOrder{}, pkg.NewDomainFailure(pkg.KindNotAllowed, "actor is not allowed to override order status")
	}
	order, err := u.loadOrder(ctx, orderID)
	if err != nil {
		return entities.ServiceOrder{}, err
	}
	if err := order.SetStatus(status); err != nil {
		return entities.ServiceOrder{}, err
	}
	log.Printf("[os][usecase] status override os_id=%s status=%s actor=%s", order.ID, status, actor.ID)
	return u.persist(ctx, order)
}

func (u *ServiceOrderUseCase) loadOrder(ctx context.Context, id string) (entities.ServiceOrder, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.ServiceOrder{}, pkg.NewDomainFailure(pkg.KindInvalidInput, "order id is required")
	}
	order, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.ServiceOrder{}, pkg.WrapUnexpected(err)
	}
	if order.ID == "" {
		return entities.ServiceOrder{}, pkg.NewDomainFailuref(pkg.KindResourceNotFound, "service order %s not found", id)
	}
	return order, nil
}

func (u *ServiceOrderUseCase) persist(ctx context.Context, order entities.ServiceOrder) (entities.ServiceOrder, error) {
	updated, err := u.repo.Update(ctx, order)
	if err != nil {
		log.Printf("[os][usecase] persist failed os_id=%s err=%v", order.ID, err)
		return entities.ServiceOrder{}, pkg.WrapUnexpected(err)
	}
	return updated, nil
}

// authorizeOrderAccess allows shop staff always, and customers only when
// they own the vehicle referenced by the order.
func (u *ServiceOrderUseCase) authorizeOrderAccess(ctx context.Context, actor entities.Actor, order entities.ServiceOrder) error {
	if actor.CanManageOrders() {
		return nil
	}
	if actor.CustomerID != "" {
		vehicle, err := u.vehicles.GetByID(ctx, order.VehicleID)
		if err != nil {
			return pkg.WrapUnexpected(err)
		}
		if vehicle.ID != "" && actor.OwnsCustomer(vehicle.CustomerID) {
			return nil
		}
	}
	return pkg.NewDomainFailure(pkg.KindNotAllowed, "actor is not allowed to access this service order")
}
