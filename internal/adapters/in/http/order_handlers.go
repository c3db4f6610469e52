package http

import (
	"net/http"

	"packing/internal/core/application/usecases/commands"
	"packing/internal/core/application/usecases/queries"

	"github.com/labstack/echo/v4"
)

// ListOrders handles GET /api/v1/orders?q=&status=&due_from=&due_to=&sort=&limit=.
// status is in_progress, complete or none; sort is a comma-separated list of
// created_at, due_date, order_no and customer_name, "-" marking descending.
func (s *Server) ListOrders(c echo.Context) error {
	limit, err := queryInt(c, "limit", 0)
	if err != nil {
		return err
	}
	dueFrom, err := queryDate(c, "due_from")
	if err != nil {
		return err
	}
	dueTo, err := queryDate(c, "due_to")
	if err != nil {
		return err
	}

	query, err := queries.NewListOrdersQuery(queries.OrderFilter{
		Search:     c.QueryParam("q"),
		PackStatus: c.QueryParam("status"),
		DueFrom:    dueFrom,
		DueTo:      dueTo,
		Sort:       c.QueryParam("sort"),
		Limit:      limit,
	})
	if err != nil {
		return err
	}

	views, err := s.h.ListOrders.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toOrderResponses(views))
}

// SyncOrder handles POST /api/v1/orders/sync. The order is imported when it
// is not stored yet; no pack is started.
func (s *Server) SyncOrder(c echo.Context) error {
	var req syncOrderRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	cmd, err := commands.NewSyncOrderCommand(req.OrderNo)
	if err != nil {
		return err
	}

	synced, err := s.h.SyncOrder.Handle(c.Request().Context(), cmd)
	if err = record("sync_order", err); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, syncOrderResponse{
		OrderID:    synced.OrderID.String(),
		OrderNo:    synced.OrderNo,
		Imported:   synced.Imported,
		TotalLines: synced.TotalLines,
		TotalQty:   synced.TotalQty,
	})
}

// GetOrder handles GET /api/v1/orders/:order_no.
func (s *Server) GetOrder(c echo.Context) error {
	query, err := queries.NewGetOrderQuery(c.Param("order_no"))
	if err != nil {
		return err
	}

	view, err := s.h.GetOrder.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toOrderResponse(view))
}

// GetOrderLines handles GET /api/v1/orders/:order_no/lines.
func (s *Server) GetOrderLines(c echo.Context) error {
	query, err := queries.NewGetOrderLinesQuery(c.Param("order_no"))
	if err != nil {
		return err
	}

	lines, err := s.h.OrderLines.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toOrderLineResponses(lines))
}

// PreviewOrder handles GET /api/v1/orders/oes/:order_no. It reads the
// order-entry system and stores nothing.
func (s *Server) PreviewOrder(c echo.Context) error {
	query, err := queries.NewPreviewOrderQuery(c.Param("order_no"))
	if err != nil {
		return err
	}

	preview, err := s.h.PreviewOrder.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toOrderPreviewResponse(preview))
}
