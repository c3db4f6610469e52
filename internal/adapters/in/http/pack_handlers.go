package http

import (
	"bytes"
	"net/http"

	"packing/internal/adapters/out/report"
	"packing/internal/core/application/usecases/commands"
	"packing/internal/core/application/usecases/queries"
	"packing/internal/core/domain/model/kernel"
	"packing/internal/core/domain/model/pack"
	"packing/internal/metrics"

	"github.com/labstack/echo/v4"
)

// record counts the outcome of a pack mutation and passes err through.
func record(operation string, err error) error {
	metrics.RecordPackOperation(operation, operationResult(err))
	return err
}

// respondSnapshot answers with the current snapshot of packID.
func (s *Server) respondSnapshot(c echo.Context, status int, packID kernel.UUID) error {
	query, err := queries.NewGetPackSnapshotQuery(packID)
	if err != nil {
		return err
	}

	snapshot, err := s.h.PackSnapshot.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return c.JSON(status, toSnapshotResponse(snapshot))
}

// StartPack handles POST /api/v1/packs/start.
func (s *Server) StartPack(c echo.Context) error {
	var req startPackRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	cmd, err := commands.NewStartPackCommand(req.OrderNo, Principal(c))
	if err != nil {
		return err
	}

	packID, err := s.h.StartPack.Handle(c.Request().Context(), cmd)
	if err = record("start", err); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, startPackResponse{
		PackID:  packID.String(),
		OrderNo: cmd.OrderNo(),
		Status:  pack.InProgress.String(),
	})
}

// GetPackSnapshot handles GET /api/v1/packs/:id.
func (s *Server) GetPackSnapshot(c echo.Context) error {
	packID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}
	return s.respondSnapshot(c, http.StatusOK, packID)
}

// AssignOne handles POST /api/v1/packs/:id/assign.
func (s *Server) AssignOne(c echo.Context) error {
	packID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	var req assignOneRequest
	if err = bindAndValidate(c, &req); err != nil {
		return err
	}
	lineID, err := parseUUID("order_line_id", req.OrderLineID)
	if err != nil {
		return err
	}
	boxID, err := parseUUID("box_id", req.BoxID)
	if err != nil {
		return err
	}

	cmd, err := commands.NewAssignOneCommand(packID, lineID, boxID)
	if err != nil {
		return err
	}
	if err = record("assign", s.h.AssignOne.Handle(c.Request().Context(), cmd)); err != nil {
		return err
	}

	return s.respondSnapshot(c, http.StatusOK, packID)
}

// SetItemQty handles PUT /api/v1/packs/:id/boxes/:box/items/:line.
func (s *Server) SetItemQty(c echo.Context) error {
	packID, boxID, lineID, err := itemPath(c)
	if err != nil {
		return err
	}

	var req setItemQtyRequest
	if err = bindAndValidate(c, &req); err != nil {
		return err
	}

	cmd, err := commands.NewSetItemQtyCommand(packID, boxID, lineID, *req.Qty)
	if err != nil {
		return err
	}
	if err = record("set_qty", s.h.SetItemQty.Handle(c.Request().Context(), cmd)); err != nil {
		return err
	}

	return s.respondSnapshot(c, http.StatusOK, packID)
}

// RemoveItem handles DELETE /api/v1/packs/:id/boxes/:box/items/:line?qty=N.
// qty defaults to 1.
func (s *Server) RemoveItem(c echo.Context) error {
	packID, boxID, lineID, err := itemPath(c)
	if err != nil {
		return err
	}

	qty, err := queryInt(c, "qty", 1)
	if err != nil {
		return err
	}

	cmd, err := commands.NewRemoveItemCommand(packID, boxID, lineID, qty)
	if err != nil {
		return err
	}
	if err = record("remove", s.h.RemoveItem.Handle(c.Request().Context(), cmd)); err != nil {
		return err
	}

	return s.respondSnapshot(c, http.StatusOK, packID)
}

// CreateBox handles POST /api/v1/packs/:id/boxes.
func (s *Server) CreateBox(c echo.Context) error {
	packID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	var req createBoxRequest
	if err = bindAndValidate(c, &req); err != nil {
		return err
	}

	var cartonTypeID *kernel.UUID
	if req.CartonTypeID != nil {
		id, parseErr := parseUUID("carton_type_id", *req.CartonTypeID)
		if parseErr != nil {
			return parseErr
		}
		cartonTypeID = &id
	}

	spec, err := pack.NewBoxSpec(cartonTypeID, req.Length, req.Width, req.Height)
	if err != nil {
		return err
	}
	cmd, err := commands.NewCreateBoxCommand(packID, spec, req.MaxWeightLb)
	if err != nil {
		return err
	}

	created, err := s.h.CreateBox.Handle(c.Request().Context(), cmd)
	if err = record("create_box", err); err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, createdBoxResponse{
		ID:     created.BoxID.String(),
		PackID: packID.String(),
		BoxNo:  created.BoxNo,
	})
}

// SetBoxWeight handles PUT /api/v1/packs/:id/boxes/:box/weight.
func (s *Server) SetBoxWeight(c echo.Context) error {
	packID, boxID, err := boxPath(c)
	if err != nil {
		return err
	}

	var req setBoxWeightRequest
	if err = bindAndValidate(c, &req); err != nil {
		return err
	}

	cmd, err := commands.NewSetBoxWeightCommand(packID, boxID, req.Weight)
	if err != nil {
		return err
	}
	if err = record("set_weight", s.h.SetBoxWeight.Handle(c.Request().Context(), cmd)); err != nil {
		return err
	}

	return s.respondSnapshot(c, http.StatusOK, packID)
}

// DeleteBox handles DELETE /api/v1/packs/:id/boxes/:box.
func (s *Server) DeleteBox(c echo.Context) error {
	packID, boxID, err := boxPath(c)
	if err != nil {
		return err
	}

	cmd, err := commands.NewBoxCommand(packID, boxID)
	if err != nil {
		return err
	}
	if err = record("delete_box", s.h.DeleteBox.Handle(c.Request().Context(), cmd)); err != nil {
		return err
	}

	return s.respondSnapshot(c, http.StatusOK, packID)
}

// DuplicateBox handles POST /api/v1/packs/:id/boxes/:box/duplicate.
func (s *Server) DuplicateBox(c echo.Context) error {
	packID, boxID, err := boxPath(c)
	if err != nil {
		return err
	}

	cmd, err := commands.NewBoxCommand(packID, boxID)
	if err != nil {
		return err
	}

	created, err := s.h.DuplicateBox.Handle(c.Request().Context(), cmd)
	if err = record("duplicate_box", err); err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, createdBoxResponse{
		ID:     created.BoxID.String(),
		PackID: packID.String(),
		BoxNo:  created.BoxNo,
	})
}

// CompletePack handles POST /api/v1/packs/:id/complete.
func (s *Server) CompletePack(c echo.Context) error {
	packID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	cmd, err := commands.NewCompletePackCommand(packID, Principal(c))
	if err != nil {
		return err
	}
	if err = record("complete", s.h.CompletePack.Handle(c.Request().Context(), cmd)); err != nil {
		return err
	}

	return s.respondSnapshot(c, http.StatusOK, packID)
}

// GetPackingSlip handles GET /api/v1/packs/:id/slip.
func (s *Server) GetPackingSlip(c echo.Context) error {
	slip, err := s.packingSlip(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toSlipResponse(slip))
}

// DownloadPackingSlip handles GET /api/v1/packs/:id/slip.xlsx.
func (s *Server) DownloadPackingSlip(c echo.Context) error {
	slip, err := s.packingSlip(c)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err = s.h.SlipWriter.Write(&buf, slip); err != nil {
		return err
	}

	c.Response().Header().Set(echo.HeaderContentDisposition,
		`attachment; filename="packing-slip-`+slip.Header.OrderNo+`.xlsx"`)
	return c.Blob(http.StatusOK, report.ContentTypeXLSX, buf.Bytes())
}

func (s *Server) packingSlip(c echo.Context) (queries.PackingSlip, error) {
	packID, err := pathUUID(c, "id")
	if err != nil {
		return queries.PackingSlip{}, err
	}

	query, err := queries.NewGetPackingSlipQuery(packID)
	if err != nil {
		return queries.PackingSlip{}, err
	}
	return s.h.PackingSlip.Handle(c.Request().Context(), query)
}

func boxPath(c echo.Context) (kernel.UUID, kernel.UUID, error) {
	packID, err := pathUUID(c, "id")
	if err != nil {
		return kernel.UUID{}, kernel.UUID{}, err
	}
	boxID, err := pathUUID(c, "box")
	if err != nil {
		return kernel.UUID{}, kernel.UUID{}, err
	}
	return packID, boxID, nil
}

func itemPath(c echo.Context) (kernel.UUID, kernel.UUID, kernel.UUID, error) {
	packID, boxID, err := boxPath(c)
	if err != nil {
		return kernel.UUID{}, kernel.UUID{}, kernel.UUID{}, err
	}
	lineID, err := pathUUID(c, "line")
	if err != nil {
		return kernel.UUID{}, kernel.UUID{}, kernel.UUID{}, err
	}
	return packID, boxID, lineID, nil
}
