// Package report renders packing slips for printing and download.
package report

import (
	"fmt"
	"io"
	"strconv"

	"packing/internal/core/application/usecases/queries"

	"github.com/xuri/excelize/v2"
)

// ContentTypeXLSX is the media type of the workbooks written by PackingSlipWriter.
const ContentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

const slipSheet = "Packing Slip"

var (
	boxColumns  = []any{"Box", "Label", "Carton", "Dimensions", "Weight (lb)"}
	itemColumns = []any{"Boxes", "Product", "Length", "Height", "Finish", "Ordered", "Shipped", "Tag"}
)

// PackingSlipWriter renders a packing slip as a single-sheet XLSX workbook:
// order header, one row per box, then the grouped item rows.
type PackingSlipWriter struct{}

func NewPackingSlipWriter() PackingSlipWriter {
	return PackingSlipWriter{}
}

func (PackingSlipWriter) Write(w io.Writer, slip queries.PackingSlip) (err error) {
	f := excelize.NewFile()
	defer func() {
		if closeErr := f.Close(); err == nil {
			err = closeErr
		}
	}()

	if err := f.SetSheetName("Sheet1", slipSheet); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("create header style: %w", err)
	}

	s := sheetWriter{f: f, bold: bold}

	h := slip.Header
	s.row(true, "Packing Slip")
	s.row(false, "Order", h.OrderNo)
	s.row(false, "Customer", h.CustomerName)
	s.row(false, "Ship To", h.ShipTo)
	s.row(false, "Due Date", deref(h.DueDate))
	s.row(false, "Lead Time", h.LeadTimePlan)
	s.row(false, "Status", h.Status)
	if h.CompletedAt != nil {
		s.row(false, "Completed", h.CompletedAt.Format("2006-01-02 15:04"))
	}
	s.skip()

	s.row(true, boxColumns...)
	for _, b := range slip.Boxes {
		s.row(false,
			intOrBlank(b.BoxNo),
			b.Label,
			deref(b.CartonTypeName),
			dimensions(b.LengthIn, b.WidthIn, b.HeightIn),
			intOrBlank(b.WeightLbs),
		)
	}
	s.skip()

	s.row(true, itemColumns...)
	for _, it := range slip.Items {
		s.row(false,
			it.BoxDisplay,
			it.ProductCode,
			it.LengthIn,
			it.HeightIn,
			it.Finish,
			it.QtyOrdered,
			it.QtyShipped,
			it.ProductTag,
		)
	}

	if s.err != nil {
		return s.err
	}

	if err := f.SetColWidth(slipSheet, "A", "B", 18); err != nil {
		return fmt.Errorf("set column width: %w", err)
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("write packing slip: %w", err)
	}
	return nil
}

// sheetWriter appends rows and keeps the first error.
type sheetWriter struct {
	f    *excelize.File
	bold int
	next int
	err  error
}

func (s *sheetWriter) row(header bool, values ...any) {
	if s.err != nil {
		return
	}

	s.next++
	start, err := excelize.CoordinatesToCellName(1, s.next)
	if err != nil {
		s.err = err
		return
	}

	if err := s.f.SetSheetRow(slipSheet, start, &values); err != nil {
		s.err = fmt.Errorf("write row %d: %w", s.next, err)
		return
	}

	if header {
		end, err := excelize.CoordinatesToCellName(len(values), s.next)
		if err != nil {
			s.err = err
			return
		}
		if err := s.f.SetCellStyle(slipSheet, start, end, s.bold); err != nil {
			s.err = fmt.Errorf("style row %d: %w", s.next, err)
		}
	}
}

func (s *sheetWriter) skip() {
	s.next++
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func intOrBlank(v *int) string {
	if v == nil {
		return ""
	}
	return strconv.Itoa(*v)
}

func dimensions(l, w, h *int) string {
	if l == nil || w == nil || h == nil {
		return ""
	}
	return fmt.Sprintf("%dx%dx%d", *l, *w, *h)
}
