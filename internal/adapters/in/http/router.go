package http

import (
	"log/slog"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// NewRouter builds the echo instance serving the REST routes, the WebSocket
// endpoint, the health probe and the Swagger UI. doc is the API description
// requests are validated against.
func NewRouter(s *Server, doc *openapi3.T, logger *slog.Logger) (*echo.Echo, error) {
	validator, err := requestValidator(doc)
	if err != nil {
		return nil, err
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = s.HandleError

	e.Use(requestLogger(logger.With("component", "http")))
	e.Use(middleware.Recover())
	e.Use(validator)

	e.GET("/health", s.Health)
	e.GET("/ws", s.Subscribe)
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	orders := e.Group("/orders")
	orders.GET("", s.GetOrders)
	orders.POST("", s.CreateOrder)
	orders.GET("/:id", s.GetOrder)
	orders.PUT("/:id", s.UpdateOrder)
	orders.DELETE("/:id", s.DeleteOrder)
	orders.PATCH("/:id/status", s.UpdateOrderStatus)
	orders.PATCH("/:id/assign", s.AssignOrder)
	orders.GET("/rider/:id", s.GetOrdersByRider)
	orders.GET("/customer/:id", s.GetOrdersByCustomer)

	riders := e.Group("/riders")
	riders.GET("", s.GetRiders)
	riders.POST("", s.CreateRider)
	riders.GET("/available", s.GetAvailableRiders)
	riders.GET("/:id", s.GetRider)
	riders.PUT("/:id", s.UpdateRider)
	riders.PATCH("/:id/status", s.UpdateRiderStatus)

	batches := e.Group("/batches")
	batches.GET("", s.GetBatches)
	batches.POST("", s.CreateBatch)
	batches.GET("/:id", s.GetBatch)
	batches.PUT("/:id", s.UpdateBatch)
	batches.DELETE("/:id", s.DeleteBatch)
	batches.GET("/rider/:id", s.GetBatchesByRider)

	return e, nil
}
