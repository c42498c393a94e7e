package http

import (
	"net/http"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/application/usecases/queries"

	"github.com/labstack/echo/v4"
)

// GetOrders handles GET /orders.
func (s *Server) GetOrders(ctx echo.Context) error {
	return s.listOrders(ctx, queries.NewGetOrdersQuery())
}

// GetOrdersByRider handles GET /orders/rider/:id.
func (s *Server) GetOrdersByRider(ctx echo.Context) error {
	riderID, err := pathParam(ctx, "id")
	if err != nil {
		return err
	}
	query, err := queries.NewGetOrdersByRiderQuery(riderID)
	if err != nil {
		return err
	}
	return s.listOrders(ctx, query)
}

// GetOrdersByCustomer handles GET /orders/customer/:id.
func (s *Server) GetOrdersByCustomer(ctx echo.Context) error {
	customerID, err := pathParam(ctx, "id")
	if err != nil {
		return err
	}
	query, err := queries.NewGetOrdersByCustomerQuery(customerID)
	if err != nil {
		return err
	}
	return s.listOrders(ctx, query)
}

func (s *Server) listOrders(ctx echo.Context, query queries.GetOrdersQuery) error {
	orders, err := s.handlers.GetOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, orders)
}

// GetOrder handles GET /orders/:id.
func (s *Server) GetOrder(ctx echo.Context) error {
	orderID, err := pathParam(ctx, "id")
	if err != nil {
		return err
	}
	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return err
	}

	o, err := s.handlers.GetOrder.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, o)
}

// CreateOrder handles POST /orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req CreateOrderRequest
	if err := bindBody(ctx, &req); err != nil {
		return err
	}

	cmd, err := commands.NewCreateOrderCommand(req.CustomerID, orderItems(req.Items), req.DeliveryAddress, req.Notes)
	if err != nil {
		return err
	}

	o, err := s.handlers.CreateOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, o.Snapshot())
}

// UpdateOrderStatus handles PATCH /orders/:id/status.
func (s *Server) UpdateOrderStatus(ctx echo.Context) error {
	orderID, err := pathParam(ctx, "id")
	if err != nil {
		return err
	}
	var req StatusRequest
	if err := bindBody(ctx, &req); err != nil {
		return err
	}

	cmd, err := commands.NewUpdateOrderStatusCommand(orderID, req.Status)
	if err != nil {
		return err
	}

	o, err := s.handlers.UpdateOrderStatus.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, o.Snapshot())
}

// AssignOrder handles PATCH /orders/:id/assign.
func (s *Server) AssignOrder(ctx echo.Context) error {
	orderID, err := pathParam(ctx, "id")
	if err != nil {
		return err
	}
	var req AssignOrderRequest
	if err := bindBody(ctx, &req); err != nil {
		return err
	}

	cmd, err := commands.NewAssignOrderCommand(orderID, req.RiderID)
	if err != nil {
		return err
	}

	o, err := s.handlers.AssignOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, o.Snapshot())
}

// UpdateOrder handles PUT /orders/:id.
func (s *Server) UpdateOrder(ctx echo.Context) error {
	orderID, err := pathParam(ctx, "id")
	if err != nil {
		return err
	}
	var req UpdateOrderRequest
	if err := bindBody(ctx, &req); err != nil {
		return err
	}

	cmd, err := commands.NewUpdateOrderCommand(orderID, req.toChanges())
	if err != nil {
		return err
	}

	o, err := s.handlers.UpdateOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, o.Snapshot())
}

// DeleteOrder handles DELETE /orders/:id.
func (s *Server) DeleteOrder(ctx echo.Context) error {
	orderID, err := pathParam(ctx, "id")
	if err != nil {
		return err
	}
	cmd, err := commands.NewDeleteOrderCommand(orderID)
	if err != nil {
		return err
	}

	if err := s.handlers.DeleteOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}
	return ctx.NoContent(http.StatusNoContent)
}
