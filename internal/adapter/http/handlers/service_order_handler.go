package handlers

import (
	"context"
	"log"
	"net/http"

	request "os_service_api/internal/adapter/http/dto/request"
	response "os_service_api/internal/adapter/http/dto/response"
	"os_service_api/internal/adapter/http/middleware"
	"os_service_api/internal/domain/entities"
	"os_service_api/internal/usecase"
	"os_service_api/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidOrderPayload = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request payload", http.StatusBadRequest)
	errMissingActor        = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Missing or invalid credentials", http.StatusUnauthorized)
)

// ServiceOrderHandler handles HTTP requests for service orders.

type ServiceOrderHandler struct {
	usecase usecase.IServiceOrderUseCase
}

func NewServiceOrderHandler(uc usecase.IServiceOrderUseCase) *ServiceOrderHandler {
	return &ServiceOrderHandler{usecase: uc}
}

func (h *ServiceOrderHandler) actor(c *gin.Context) (entities.Actor, bool) {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		c.JSON(errMissingActor.HTTPStatus, errMissingActor.ToHTTPError())
	}
	return actor, ok
}

// Create opens a new service order for an existing vehicle.
func (h *ServiceOrderHandler) Create(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}

	var payload request.CreateServiceOrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOrderPayload.HTTPStatus, errInvalidOrderPayload.ToHTTPError())
		return
	}

	order, err := h.usecase.Create(c.Request.Context(), actor, payload.VehicleID)
	if err != nil {
		log.Printf("[os][handler] create failed vehicle_id=%s err=%v", payload.VehicleID, err)
		appErr := pkg.FromError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromServiceOrder(order))
}

// GetByID returns one order; customers only see orders for their own
// vehicles.
func (h *ServiceOrderHandler) GetByID(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}

	order, err := h.usecase.GetByID(c.Request.Context(), actor, c.Param("id"))
	if err != nil {
		appErr := pkg.FromError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromServiceOrder(order))
}

// GetByCode resolves an order by its human-readable code.
func (h *ServiceOrderHandler) GetByCode(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}

	order, err := h.usecase.GetByCode(c.Request.Context(), actor, c.Param("code"))
	if err != nil {
		appErr := pkg.FromError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromServiceOrder(order))
}

// List returns all service orders (shop staff only).
func (h *ServiceOrderHandler) List(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}

	orders, err := h.usecase.List(c.Request.Context(), actor)
	if err != nil {
		appErr := pkg.FromError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromServiceOrders(orders))
}

// AddItem includes a parts supply on the order ledger.
func (h *ServiceOrderHandler) AddItem(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}

	var payload request.AddItemRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOrderPayload.HTTPStatus, errInvalidOrderPayload.ToHTTPError())
		return
	}

	order, err := h.usecase.AddItem(c.Request.Context(), actor, c.Param("id"), payload.PartsSupplyID, payload.Quantity)
	if err != nil {
		appErr := pkg.FromError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromServiceOrder(order))
}

// RemoveItem drops a ledger line by its id.
func (h *ServiceOrderHandler) RemoveItem(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}

	order, err := h.usecase.RemoveItem(c.Request.Context(), actor, c.Param("id"), c.Param("item_id"))
	if err != nil {
		appErr := pkg.FromError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromServiceOrder(order))
}

// AddService includes a catalog service on the order ledger.
func (h *ServiceOrderHandler) AddService(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}

	var payload request.AddServiceRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOrderPayload.HTTPStatus, errInvalidOrderPayload.ToHTTPError())
		return
	}

	order, err := h.usecase.AddService(c.Request.Context(), actor, c.Param("id"), payload.ServiceID)
	if err != nil {
		appErr := pkg.FromError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromServiceOrder(order))
}

// RemoveService drops a service line by its id.
func (h *ServiceOrderHandler) RemoveService(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}

	order, err := h.usecase.RemoveService(c.Request.Context(), actor, c.Param("id"), c.Param("service_id"))
	if err != nil {
		appErr := pkg.FromError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromServiceOrder(order))
}

func (h *ServiceOrderHandler) StartDiagnosis(c *gin.Context) {
	h.patchOrder(c, h.usecase.StartDiagnosis)
}

func (h *ServiceOrderHandler) GenerateBudget(c *gin.Context) {
	h.patchOrder(c, h.usecase.GenerateBudget)
}

func (h *ServiceOrderHandler) ApproveBudget(c *gin.Context) {
	h.patchOrder(c, h.usecase.ApproveBudget)
}

func (h *ServiceOrderHandler) RejectBudget(c *gin.Context) {
	h.patchOrder(c, h.usecase.RejectBudget)
}

func (h *ServiceOrderHandler) FinalizeExecution(c *gin.Context) {
	h.patchOrder(c, h.usecase.FinalizeExecution)
}

func (h *ServiceOrderHandler) Deliver(c *gin.Context) {
	h.patchOrder(c, h.usecase.Deliver)
}

func (h *ServiceOrderHandler) Cancel(c *gin.Context) {
	h.patchOrder(c, h.usecase.Cancel)
}

// SetStatus is the administrative status override.
func (h *ServiceOrderHandler) SetStatus(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}

	var payload request.SetStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOrderPayload.HTTPStatus, errInvalidOrderPayload.ToHTTPError())
		return
	}

	order, err := h.usecase.SetStatus(c.Request.Context(), actor, c.Param("id"), entities.OSStatus(payload.Status))
	if err != nil {
		appErr := pkg.FromError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromServiceOrder(order))
}

func (h *ServiceOrderHandler) patchOrder(
	c *gin.Context,
	transition func(ctx context.Context, actor entities.Actor, orderID string) (entities.ServiceOrder, error),
) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}

	order, err := transition(c.Request.Context(), actor, c.Param("id"))
	if err != nil {
		log.Printf("[os][handler] transition failed os_id=%s err=%v", c.Param("id"), err)
		appErr := pkg.FromError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromServiceOrder(order))
}
