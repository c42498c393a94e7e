package http

import (
	"net/http"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/application/usecases/queries"

	"github.com/labstack/echo/v4"
)

// GetBatches handles GET /batches.
func (s *Server) GetBatches(ctx echo.Context) error {
	return s.listBatches(ctx, queries.NewGetBatchesQuery())
}

// GetBatchesByRider handles GET /batches/rider/:id.
func (s *Server) GetBatchesByRider(ctx echo.Context) error {
	riderID, err := pathParam(ctx, "id")
	if err != nil {
		return err
	}
	query, err := queries.NewGetBatchesByRiderQuery(riderID)
	if err != nil {
		return err
	}
	return s.listBatches(ctx, query)
}

func (s *Server) listBatches(ctx echo.Context, query queries.GetBatchesQuery) error {
	batches, err := s.handlers.GetBatches.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, batches)
}

// GetBatch handles GET /batches/:id.
func (s *Server) GetBatch(ctx echo.Context) error {
	batchID, err := pathParam(ctx, "id")
	if err != nil {
		return err
	}
	query, err := queries.NewGetBatchQuery(batchID)
	if err != nil {
		return err
	}

	b, err := s.handlers.GetBatch.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, b)
}

// CreateBatch handles POST /batches.
func (s *Server) CreateBatch(ctx echo.Context) error {
	var req CreateBatchRequest
	if err := bindBody(ctx, &req); err != nil {
		return err
	}

	cmd, err := commands.NewCreateBatchCommand(req.OrderIDs, req.RiderID)
	if err != nil {
		return err
	}

	b, err := s.handlers.CreateBatch.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, b.Snapshot())
}

// UpdateBatch handles PUT /batches/:id.
func (s *Server) UpdateBatch(ctx echo.Context) error {
	batchID, err := pathParam(ctx, "id")
	if err != nil {
		return err
	}
	var req UpdateBatchRequest
	if err := bindBody(ctx, &req); err != nil {
		return err
	}

	cmd, err := commands.NewUpdateBatchCommand(batchID, commands.BatchChanges{
		OrderIDs: req.OrderIDs,
		RiderID:  req.RiderID,
		Status:   req.Status,
	})
	if err != nil {
		return err
	}

	b, err := s.handlers.UpdateBatch.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, b.Snapshot())
}

// DeleteBatch handles DELETE /batches/:id.
func (s *Server) DeleteBatch(ctx echo.Context) error {
	batchID, err := pathParam(ctx, "id")
	if err != nil {
		return err
	}
	cmd, err := commands.NewDeleteBatchCommand(batchID)
	if err != nil {
		return err
	}

	if err := s.handlers.DeleteBatch.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}
	return ctx.NoContent(http.StatusNoContent)
}
