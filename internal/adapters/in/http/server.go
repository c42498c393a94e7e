package http

import (
	"log/slog"
	"net/http"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/application/usecases/queries"

	"github.com/labstack/echo/v4"
)

// Handlers groups the use cases exposed over HTTP.
type Handlers struct {
	// Command handlers
	CreateOrder       commands.CreateOrderCommandHandler
	UpdateOrderStatus commands.UpdateOrderStatusCommandHandler
	AssignOrder       commands.AssignOrderCommandHandler
	UpdateOrder       commands.UpdateOrderCommandHandler
	DeleteOrder       commands.DeleteOrderCommandHandler
	CreateRider       commands.CreateRiderCommandHandler
	UpdateRiderStatus commands.UpdateRiderStatusCommandHandler
	UpdateRider       commands.UpdateRiderCommandHandler
	CreateBatch       commands.CreateBatchCommandHandler
	UpdateBatch       commands.UpdateBatchCommandHandler
	DeleteBatch       commands.DeleteBatchCommandHandler

	// Query handlers
	GetOrder   queries.GetOrderQueryHandler
	GetOrders  queries.GetOrdersQueryHandler
	GetRider   queries.GetRiderQueryHandler
	GetRiders  queries.GetRidersQueryHandler
	GetBatch   queries.GetBatchQueryHandler
	GetBatches queries.GetBatchesQueryHandler
}

// SubscriptionEndpoint upgrades a request to a realtime event stream.
type SubscriptionEndpoint interface {
	ServeWS(c echo.Context) error
}

// Server handles the REST requests and hands /ws over to the subscription endpoint.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	handlers Handlers
	ws       SubscriptionEndpoint
	logger   *slog.Logger
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(handlers Handlers, ws SubscriptionEndpoint, logger *slog.Logger) *Server {
	return &Server{
		handlers: handlers,
		ws:       ws,
		logger:   logger.With("component", "http_server"),
	}
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Healthy")
}

// Subscribe handles GET /ws.
func (s *Server) Subscribe(ctx echo.Context) error {
	return s.ws.ServeWS(ctx)
}
