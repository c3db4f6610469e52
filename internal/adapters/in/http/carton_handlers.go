package http

import (
	"net/http"

	"packing/internal/core/application/usecases/commands"
	"packing/internal/core/application/usecases/queries"
	"packing/internal/core/domain/model/carton"
	"packing/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

func (r cartonTypeRequest) details() (carton.Details, error) {
	dims, err := kernel.NewDimensions(r.Length, r.Width, r.Height)
	if err != nil {
		return carton.Details{}, err
	}

	active := true
	if r.Active != nil {
		active = *r.Active
	}

	return carton.Details{
		Name:         r.Name,
		Dimensions:   dims,
		MaxWeightLb:  r.MaxWeightLb,
		Style:        r.Style,
		Vendor:       r.Vendor,
		MinimumStock: r.MinimumStock,
		Active:       active,
	}, nil
}

// ListCartonTypes handles GET /api/v1/cartons?all=true. Only active cartons
// are listed unless all is set.
func (s *Server) ListCartonTypes(c echo.Context) error {
	all, err := queryBool(c, "all", false)
	if err != nil {
		return err
	}

	views, err := s.h.ListCartonTypes.Handle(c.Request().Context(), queries.NewListCartonTypesQuery(!all))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toCartonTypeResponses(views))
}

// GetLowStockCartons handles GET /api/v1/cartons/low-stock.
func (s *Server) GetLowStockCartons(c echo.Context) error {
	views, err := s.h.LowStockCartons.Handle(c.Request().Context(), queries.NewGetLowStockCartonsQuery())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toCartonTypeResponses(views))
}

// CreateCartonType handles POST /api/v1/cartons.
func (s *Server) CreateCartonType(c echo.Context) error {
	var req createCartonTypeRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	details, err := req.details()
	if err != nil {
		return err
	}

	id, err := s.h.CreateCartonType.Handle(c.Request().Context(),
		commands.NewCreateCartonTypeCommand(details, req.QuantityOnHand))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, idResponse{ID: id.String()})
}

// UpdateCartonType handles PUT /api/v1/cartons/:id.
func (s *Server) UpdateCartonType(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	var req cartonTypeRequest
	if err = bindAndValidate(c, &req); err != nil {
		return err
	}

	details, err := req.details()
	if err != nil {
		return err
	}
	cmd, err := commands.NewUpdateCartonTypeCommand(id, details)
	if err != nil {
		return err
	}

	if err = s.h.UpdateCartonType.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// AdjustCartonInventory handles POST /api/v1/cartons/:id/adjust with a
// signed delta.
func (s *Server) AdjustCartonInventory(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	var req adjustInventoryRequest
	if err = bindAndValidate(c, &req); err != nil {
		return err
	}

	cmd, err := commands.NewAdjustCartonInventoryCommand(id, req.Delta)
	if err != nil {
		return err
	}

	onHand, err := s.h.AdjustCartonInventory.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, adjustInventoryResponse{ID: id.String(), QuantityOnHand: onHand})
}
