package http

import (
	"net/http"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/application/usecases/queries"

	"github.com/labstack/echo/v4"
)

// GetRiders handles GET /riders.
func (s *Server) GetRiders(ctx echo.Context) error {
	return s.listRiders(ctx, queries.NewGetRidersQuery(false))
}

// GetAvailableRiders handles GET /riders/available.
func (s *Server) GetAvailableRiders(ctx echo.Context) error {
	return s.listRiders(ctx, queries.NewGetRidersQuery(true))
}

func (s *Server) listRiders(ctx echo.Context, query queries.GetRidersQuery) error {
	riders, err := s.handlers.GetRiders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, riders)
}

// GetRider handles GET /riders/:id.
func (s *Server) GetRider(ctx echo.Context) error {
	riderID, err := pathParam(ctx, "id")
	if err != nil {
		return err
	}
	query, err := queries.NewGetRiderQuery(riderID)
	if err != nil {
		return err
	}

	r, err := s.handlers.GetRider.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, r)
}

// CreateRider handles POST /riders.
func (s *Server) CreateRider(ctx echo.Context) error {
	var req CreateRiderRequest
	if err := bindBody(ctx, &req); err != nil {
		return err
	}

	cmd, err := commands.NewCreateRiderCommand(commands.NewRiderInput{
		ID:       req.ID,
		Name:     req.Name,
		Phone:    req.Phone,
		Status:   req.Status,
		Location: req.Location.toPosition(),
	})
	if err != nil {
		return err
	}

	r, err := s.handlers.CreateRider.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, r.Snapshot())
}

// UpdateRiderStatus handles PATCH /riders/:id/status.
func (s *Server) UpdateRiderStatus(ctx echo.Context) error {
	riderID, err := pathParam(ctx, "id")
	if err != nil {
		return err
	}
	var req StatusRequest
	if err := bindBody(ctx, &req); err != nil {
		return err
	}

	cmd, err := commands.NewUpdateRiderStatusCommand(riderID, req.Status)
	if err != nil {
		return err
	}

	r, err := s.handlers.UpdateRiderStatus.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, r.Snapshot())
}

// UpdateRider handles PUT /riders/:id.
func (s *Server) UpdateRider(ctx echo.Context) error {
	riderID, err := pathParam(ctx, "id")
	if err != nil {
		return err
	}
	var req UpdateRiderRequest
	if err := bindBody(ctx, &req); err != nil {
		return err
	}

	cmd, err := commands.NewUpdateRiderCommand(riderID, commands.RiderChanges{
		Name:     req.Name,
		Phone:    req.Phone,
		Location: req.Location.toPosition(),
	})
	if err != nil {
		return err
	}

	r, err := s.handlers.UpdateRider.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, r.Snapshot())
}
