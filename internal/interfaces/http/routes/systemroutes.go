package routes

import (
	"github.com/gin-gonic/gin"

	receipthandlers "turnero/internal/interfaces/http/handlers/receipt"
	systemhandlers "turnero/internal/interfaces/http/handlers/system"
)

type SystemRouteConfig struct {
	SystemHandler  *systemhandlers.SystemHandler
	ReceiptHandler *receipthandlers.ReceiptHandler
}

func SetupSystemRoutes(engine *gin.Engine, config *SystemRouteConfig) {
	engine.GET("/health", config.SystemHandler.HealthCheck)
	engine.GET("/metrics", config.SystemHandler.Metrics)
	engine.GET("/receipts/:filename", config.ReceiptHandler.Download)
}
