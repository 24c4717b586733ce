package routes

import (
	"os_service_api/internal/adapter/http/handlers"
	"os_service_api/internal/adapter/http/middleware"

	"github.com/gin-gonic/gin"
)

const (
	PathServiceOrders = "/service-orders"
)

func addServiceOrderRoutes(rg *gin.RouterGroup, orderHandler *handlers.ServiceOrderHandler) {
	orders := rg.Group(PathServiceOrders, middleware.Authenticated())
	{
		orders.POST("", orderHandler.Create)
		orders.GET("", orderHandler.List)
		orders.GET("/:id", orderHandler.GetByID)
		orders.GET("/code/:code", orderHandler.GetByCode)

		// Ledger
		orders.POST("/:id/items", orderHandler.AddItem)
		orders.DELETE("/:id/items/:item_id", orderHandler.RemoveItem)
		orders.POST("/:id/services", orderHandler.AddService)
		orders.DELETE("/:id/services/:service_id", orderHandler.RemoveService)

		// Lifecycle
		orders.PATCH("/:id/diagnosis", orderHandler.StartDiagnosis)
		orders.PATCH("/:id/budget", orderHandler.GenerateBudget)
		orders.PATCH("/:id/budget/approve", orderHandler.ApproveBudget)
		orders.PATCH("/:id/budget/reject", orderHandler.RejectBudget)
		orders.PATCH("/:id/execution/finish", orderHandler.FinalizeExecution)
		orders.PATCH("/:id/delivery", orderHandler.Deliver)
		orders.PATCH("/:id/cancel", orderHandler.Cancel)
		orders.PATCH("/:id/status", orderHandler.SetStatus)
	}
}
