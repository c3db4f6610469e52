package http

import (
	"time"

	"packing/internal/core/application/usecases/queries"
	"packing/internal/core/domain/model/kernel"
)

type startPackResponse struct {
	PackID  string `json:"pack_id"`
	OrderNo string `json:"order_no"`
	Status  string `json:"status"`
}

type createdBoxResponse struct {
	ID     string `json:"id"`
	PackID string `json:"pack_id"`
	BoxNo  int    `json:"box_no"`
}

type adjustInventoryResponse struct {
	ID             string `json:"id"`
	QuantityOnHand int    `json:"quantity_on_hand"`
}

type idResponse struct {
	ID string `json:"id"`
}

type packHeaderResponse struct {
	PackID       string  `json:"pack_id"`
	OrderID      string  `json:"order_id"`
	OrderNo      string  `json:"order_no"`
	CustomerName string  `json:"customer_name"`
	ShipTo       string  `json:"ship_to"`
	DueDate      *string `json:"due_date"`
	LeadTimePlan string  `json:"lead_time_plan"`
	Status       string  `json:"status"`
}

type lineResponse struct {
	ID          string `json:"id"`
	ProductCode string `json:"product_code"`
	LengthIn    int    `json:"length_in"`
	HeightIn    int    `json:"height_in"`
	Finish      string `json:"finish"`
	QtyOrdered  int    `json:"qty_ordered"`
	PackedQty   int    `json:"packed_qty"`
	Remaining   int    `json:"remaining"`
}

type boxItemResponse struct {
	ID          string `json:"id"`
	OrderLineID string `json:"order_line_id"`
	ProductCode string `json:"product_code"`
	Qty         int    `json:"qty"`
}

type boxResponse struct {
	ID             string            `json:"id"`
	BoxNo          *int              `json:"box_no"`
	Label          string            `json:"label"`
	CartonTypeID   *string           `json:"carton_type_id"`
	CartonTypeName *string           `json:"carton_type_name"`
	LengthIn       *int              `json:"length_in"`
	WidthIn        *int              `json:"width_in"`
	HeightIn       *int              `json:"height_in"`
	WeightLbs      *int              `json:"weight_lbs"`
	WeightEntered  *float64          `json:"weight_entered"`
	MaxWeightLb    int               `json:"max_weight_lb"`
	Items          []boxItemResponse `json:"items"`
}

type snapshotResponse struct {
	Header packHeaderResponse `json:"header"`
	Lines  []lineResponse     `json:"lines"`
	Boxes  []boxResponse      `json:"boxes"`
}

func toSnapshotResponse(s queries.PackSnapshot) snapshotResponse {
	resp := snapshotResponse{
		Header: packHeaderResponse{
			PackID:       s.Header.PackID.String(),
			OrderID:      s.Header.OrderID.String(),
			OrderNo:      s.Header.OrderNo,
			CustomerName: s.Header.CustomerName,
			ShipTo:       s.Header.ShipTo,
			DueDate:      s.Header.DueDate,
			LeadTimePlan: s.Header.LeadTimePlan,
			Status:       s.Header.Status,
		},
		Lines: make([]lineResponse, 0, len(s.Lines)),
		Boxes: make([]boxResponse, 0, len(s.Boxes)),
	}

	for _, l := range s.Lines {
		resp.Lines = append(resp.Lines, lineResponse{
			ID:          l.LineID.String(),
			ProductCode: l.ProductCode,
			LengthIn:    l.LengthIn,
			HeightIn:    l.HeightIn,
			Finish:      l.Finish,
			QtyOrdered:  l.QtyOrdered,
			PackedQty:   l.PackedQty,
			Remaining:   l.Remaining,
		})
	}

	for _, b := range s.Boxes {
		box := boxResponse{
			ID:             b.BoxID.String(),
			BoxNo:          b.BoxNo,
			Label:          b.Label,
			CartonTypeID:   optionalID(b.CartonTypeID),
			CartonTypeName: b.CartonTypeName,
			LengthIn:       b.LengthIn,
			WidthIn:        b.WidthIn,
			HeightIn:       b.HeightIn,
			WeightLbs:      b.WeightLbs,
			WeightEntered:  b.WeightEntered,
			MaxWeightLb:    b.MaxWeightLb,
			Items:          make([]boxItemResponse, 0, len(b.Items)),
		}
		for _, it := range b.Items {
			box.Items = append(box.Items, boxItemResponse{
				ID:          it.ItemID.String(),
				OrderLineID: it.LineID.String(),
				ProductCode: it.ProductCode,
				Qty:         it.Qty,
			})
		}
		resp.Boxes = append(resp.Boxes, box)
	}

	return resp
}

type slipHeaderResponse struct {
	PackID       string     `json:"pack_id"`
	OrderNo      string     `json:"order_no"`
	CustomerName string     `json:"customer_name"`
	ShipTo       string     `json:"ship_to"`
	DueDate      *string    `json:"due_date"`
	LeadTimePlan string     `json:"lead_time_plan"`
	Status       string     `json:"status"`
	CompletedAt  *time.Time `json:"completed_at"`
}

type slipBoxResponse struct {
	BoxNo          *int    `json:"box_no"`
	Label          string  `json:"label"`
	CartonTypeName *string `json:"carton_type_name"`
	LengthIn       *int    `json:"length_in"`
	WidthIn        *int    `json:"width_in"`
	HeightIn       *int    `json:"height_in"`
	WeightLbs      *int    `json:"weight_lbs"`
}

type slipItemResponse struct {
	Boxes       string `json:"boxes"`
	ProductCode string `json:"product_code"`
	LengthIn    int    `json:"length_in"`
	HeightIn    int    `json:"height_in"`
	Finish      string `json:"finish"`
	QtyOrdered  int    `json:"qty_ordered"`
	QtyShipped  int    `json:"qty_shipped"`
	ProductTag  string `json:"product_tag"`
}

type slipResponse struct {
	Header slipHeaderResponse `json:"header"`
	Boxes  []slipBoxResponse  `json:"boxes"`
	Items  []slipItemResponse `json:"items"`
}

func toSlipResponse(s queries.PackingSlip) slipResponse {
	resp := slipResponse{
		Header: slipHeaderResponse{
			PackID:       s.Header.PackID.String(),
			OrderNo:      s.Header.OrderNo,
			CustomerName: s.Header.CustomerName,
			ShipTo:       s.Header.ShipTo,
			DueDate:      s.Header.DueDate,
			LeadTimePlan: s.Header.LeadTimePlan,
			Status:       s.Header.Status,
			CompletedAt:  s.Header.CompletedAt,
		},
		Boxes: make([]slipBoxResponse, 0, len(s.Boxes)),
		Items: make([]slipItemResponse, 0, len(s.Items)),
	}

	for _, b := range s.Boxes {
		resp.Boxes = append(resp.Boxes, slipBoxResponse(b))
	}
	for _, it := range s.Items {
		resp.Items = append(resp.Items, slipItemResponse{
			Boxes:       it.BoxDisplay,
			ProductCode: it.ProductCode,
			LengthIn:    it.LengthIn,
			HeightIn:    it.HeightIn,
			Finish:      it.Finish,
			QtyOrdered:  it.QtyOrdered,
			QtyShipped:  it.QtyShipped,
			ProductTag:  it.ProductTag,
		})
	}

	return resp
}

type cartonTypeResponse struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	LengthIn       int       `json:"length_in"`
	WidthIn        int       `json:"width_in"`
	HeightIn       int       `json:"height_in"`
	MaxWeightLb    int       `json:"max_weight_lb"`
	Style          string    `json:"style"`
	Vendor         string    `json:"vendor"`
	QuantityOnHand int       `json:"quantity_on_hand"`
	MinimumStock   int       `json:"minimum_stock"`
	Shortfall      int       `json:"shortfall"`
	Active         bool      `json:"active"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func toCartonTypeResponses(views []queries.CartonTypeView) []cartonTypeResponse {
	resp := make([]cartonTypeResponse, 0, len(views))
	for _, v := range views {
		resp = append(resp, cartonTypeResponse{
			ID:             v.ID.String(),
			Name:           v.Name,
			LengthIn:       v.LengthIn,
			WidthIn:        v.WidthIn,
			HeightIn:       v.HeightIn,
			MaxWeightLb:    v.MaxWeightLb,
			Style:          v.Style,
			Vendor:         v.Vendor,
			QuantityOnHand: v.QuantityOnHand,
			MinimumStock:   v.MinimumStock,
			Shortfall:      v.Shortfall(),
			Active:         v.Active,
			UpdatedAt:      v.UpdatedAt,
		})
	}
	return resp
}

func optionalID(id *kernel.UUID) *string {
	if id == nil {
		return nil
	}
	s := id.String()
	return &s
}

type orderResponse struct {
	ID           string    `json:"id"`
	OrderNo      string    `json:"order_no"`
	CustomerName string    `json:"customer_name"`
	ShipTo       string    `json:"ship_to"`
	DueDate      *string   `json:"due_date"`
	LeadTimePlan string    `json:"lead_time_plan"`
	Source       string    `json:"source"`
	CreatedAt    time.Time `json:"created_at"`
	TotalLines   int       `json:"total_lines"`
	TotalQty     int       `json:"total_qty"`
	PackStatus   *string   `json:"pack_status"`
}

type orderLineResponse struct {
	ID          string  `json:"id"`
	ProductCode string  `json:"product_code"`
	LengthIn    int     `json:"length_in"`
	HeightIn    int     `json:"height_in"`
	Finish      string  `json:"finish"`
	QtyOrdered  int     `json:"qty_ordered"`
	BuildNote   *string `json:"build_note"`
	ProductTag  *string `json:"product_tag"`
}

type syncOrderResponse struct {
	OrderID    string `json:"order_id"`
	OrderNo    string `json:"order_no"`
	Imported   bool   `json:"imported"`
	TotalLines int    `json:"total_lines"`
	TotalQty   int    `json:"total_qty"`
}

type orderPreviewLineResponse struct {
	ProductCode string  `json:"product_code"`
	LengthIn    int     `json:"length_in"`
	HeightIn    int     `json:"height_in"`
	Finish      string  `json:"finish"`
	QtyOrdered  int     `json:"qty_ordered"`
	BuildNote   *string `json:"build_note"`
	ProductTag  *string `json:"product_tag"`
}

type orderPreviewResponse struct {
	OrderNo      string                     `json:"order_no"`
	CustomerName string                     `json:"customer_name"`
	ShipTo       string                     `json:"ship_to"`
	DueDate      *string                    `json:"due_date"`
	LeadTimePlan string                     `json:"lead_time_plan"`
	TotalLines   int                        `json:"total_lines"`
	TotalQty     int                        `json:"total_qty"`
	Lines        []orderPreviewLineResponse `json:"lines"`
}

func toOrderResponse(v queries.OrderView) orderResponse {
	return orderResponse{
		ID:           v.ID.String(),
		OrderNo:      v.OrderNo,
		CustomerName: v.CustomerName,
		ShipTo:       v.ShipTo,
		DueDate:      v.DueDate,
		LeadTimePlan: v.LeadTimePlan,
		Source:       v.Source,
		CreatedAt:    v.CreatedAt,
		TotalLines:   v.TotalLines,
		TotalQty:     v.TotalQty,
		PackStatus:   v.PackStatus,
	}
}

func toOrderResponses(views []queries.OrderView) []orderResponse {
	out := make([]orderResponse, 0, len(views))
	for _, v := range views {
		out = append(out, toOrderResponse(v))
	}
	return out
}

func toOrderLineResponses(lines []queries.OrderLineView) []orderLineResponse {
	out := make([]orderLineResponse, 0, len(lines))
	for _, l := range lines {
		out = append(out, orderLineResponse{
			ID:          l.LineID.String(),
			ProductCode: l.ProductCode,
			LengthIn:    l.LengthIn,
			HeightIn:    l.HeightIn,
			Finish:      l.Finish,
			QtyOrdered:  l.QtyOrdered,
			BuildNote:   l.BuildNote,
			ProductTag:  l.ProductTag,
		})
	}
	return out
}

func toOrderPreviewResponse(p queries.OrderPreview) orderPreviewResponse {
	out := orderPreviewResponse{
		OrderNo:      p.OrderNo,
		CustomerName: p.CustomerName,
		ShipTo:       p.ShipTo,
		DueDate:      p.DueDate,
		LeadTimePlan: p.LeadTimePlan,
		TotalLines:   p.TotalLines,
		TotalQty:     p.TotalQty,
		Lines:        make([]orderPreviewLineResponse, 0, len(p.Lines)),
	}
	for _, l := range p.Lines {
		out.Lines = append(out.Lines, orderPreviewLineResponse(l))
	}
	return out
}
