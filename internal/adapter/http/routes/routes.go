package routes

import (
	"log"
	"os"
	"strconv"

	_ "os_service_api/docs" // This will be auto-generated
	"os_service_api/internal/adapter/http/handlers"
	repository2 "os_service_api/internal/adapter/persistence/repository"
	"os_service_api/internal/infrastructure/database"
	"os_service_api/internal/infrastructure/payments"
	"os_service_api/internal/usecase"
	"os_service_api/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()

	orderRepo := repository2.NewServiceOrderDynamoRepository(ddb)
	partsSupplies := repository2.NewPartsSupplyDynamoRepository(ddb)
	catalog := repository2.NewServiceCatalogDynamoRepository(ddb)
	vehicles := repository2.NewVehicleDynamoRepository(ddb)

	var gateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"))
	if err != nil {
		log.Printf("Mercado Pago gateway not configured: %v", err)
	} else {
		gateway = mpGateway
	}

	orderUseCase := usecase.NewServiceOrderUseCase(orderRepo, partsSupplies, catalog, vehicles, gateway)
	orderHandler := handlers.NewServiceOrderHandler(orderUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addServiceOrderRoutes(v1, orderHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
