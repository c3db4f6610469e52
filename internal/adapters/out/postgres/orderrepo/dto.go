// Package orderrepo persists order aggregates mirrored from the order-entry system.
// Orders and their lines are written once at import and read by every pack operation.
package orderrepo

import (
	"time"

	"packing/internal/core/domain/model/kernel"
	"packing/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO is the orders row. Lines cascade on delete.
type OrderDTO struct {
	ID           uuid.UUID      `gorm:"type:uuid;primaryKey"`
	Number       string         `gorm:"type:varchar(64);not null;uniqueIndex"`
	CustomerName string         `gorm:"type:varchar(255);not null;default:''"`
	ShipTo       string         `gorm:"type:varchar(512);not null;default:''"`
	DueDate      *time.Time     `gorm:"type:date"`
	LeadTimePlan string         `gorm:"type:varchar(64);not null;default:''"`
	Source       string         `gorm:"type:varchar(32);not null;default:''"`
	CreatedAt    time.Time      `gorm:"not null"`
	Lines        []OrderLineDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

func (OrderDTO) TableName() string {
	return "orders"
}

// OrderLineDTO is the order_lines row.
type OrderLineDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID     uuid.UUID `gorm:"type:uuid;not null;index"`
	ProductCode string    `gorm:"type:varchar(64);not null"`
	LengthIn    int       `gorm:"type:int;not null"`
	HeightIn    int       `gorm:"type:int;not null"`
	Finish      string    `gorm:"type:varchar(128);not null;default:''"`
	QtyOrdered  int       `gorm:"type:int;not null;check:qty_ordered >= 0"`
	BuildNote   *string   `gorm:"type:text"`
	ProductTag  *string   `gorm:"type:varchar(128)"`
}

func (OrderLineDTO) TableName() string {
	return "order_lines"
}

func fromDomain(o *order.Order) OrderDTO {
	orderID := o.ID().Bytes()
	lines := make([]OrderLineDTO, 0, len(o.Lines()))

	for _, l := range o.Lines() {
		lines = append(lines, OrderLineDTO{
			ID:          l.ID().Bytes(),
			OrderID:     orderID,
			ProductCode: l.ProductCode(),
			LengthIn:    l.LengthIn(),
			HeightIn:    l.HeightIn(),
			Finish:      l.Finish(),
			QtyOrdered:  l.QtyOrdered(),
			BuildNote:   l.BuildNote(),
			ProductTag:  l.ProductTag(),
		})
	}

	return OrderDTO{
		ID:           orderID,
		Number:       o.Number(),
		CustomerName: o.CustomerName(),
		ShipTo:       o.ShipTo(),
		DueDate:      o.DueDate(),
		LeadTimePlan: o.LeadTimePlan(),
		Source:       o.Source(),
		Lines:        lines,
	}
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	lines := make([]*order.Line, 0, len(dto.Lines))
	for _, lineDto := range dto.Lines {
		l, lineErr := lineToDomain(id, lineDto)
		if lineErr != nil {
			return nil, lineErr
		}
		lines = append(lines, l)
	}

	return order.RestoreOrder(id, order.Header{
		Number:       dto.Number,
		CustomerName: dto.CustomerName,
		ShipTo:       dto.ShipTo,
		DueDate:      dto.DueDate,
		LeadTimePlan: dto.LeadTimePlan,
		Source:       dto.Source,
	}, lines)
}

func lineToDomain(orderID kernel.UUID, dto OrderLineDTO) (*order.Line, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return order.NewLine(id, orderID, order.LineDetails{
		ProductCode: dto.ProductCode,
		LengthIn:    dto.LengthIn,
		HeightIn:    dto.HeightIn,
		Finish:      dto.Finish,
		QtyOrdered:  dto.QtyOrdered,
		BuildNote:   dto.BuildNote,
		ProductTag:  dto.ProductTag,
	})
}
