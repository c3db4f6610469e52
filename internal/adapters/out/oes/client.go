// Package oes reads orders from the order-entry system's SQL Server database.
// The packing service never writes to it.
package oes

import (
	"context"
	"fmt"
	"net"
	"net/url"
	"strconv"
	"strings"
	"time"

	"packing/internal/core/domain/model/kernel"
	"packing/internal/core/domain/model/order"
	"packing/internal/core/ports"
	"packing/internal/pkg/errs"

	"gorm.io/driver/sqlserver"
	"gorm.io/gorm"
)

const headerSQL = `
	SELECT
		CAST(so.[SalesOrderID] AS NVARCHAR(50)) AS order_no,
		sot.[Name]                              AS lead_time_plan,
		so.[DueDate]                            AS due_date,
		so.[ClientName]                         AS customer_name,
		so.[ShippingName]                       AS ship_name
	FROM [dbo].[SalesOrders] so
	LEFT JOIN [dbo].[SalesOrderTypes] sot
		ON so.[SalesOrderTypeID] = sot.[SalesOrderTypeID]
	WHERE CAST(so.[SalesOrderID] AS NVARCHAR(50)) = ?`

// Detail rows whose display name starts with ".." are notes, not products.
const linesSQL = `
	SELECT
		sod.[Quantity]      AS qty_ordered,
		sod.[DisplayName]   AS product_code,
		sod.[Width]         AS length_in,
		sod.[Height]        AS height_in,
		fn.[DisplayName]    AS finish,
		sod.[buildNotes]    AS build_note,
		sod.[productTag]    AS product_tag
	FROM [dbo].[SalesOrderDetails] sod
	LEFT JOIN [dbo].[Finishes] fn
		ON sod.[ColorID] = fn.[FinishID]
	WHERE sod.[DisplayName] NOT LIKE '..%'
		AND CAST(sod.[SalesOrderID] AS NVARCHAR(50)) = ?
	ORDER BY sod.[DetailID]`

// DSN builds a go-mssqldb connection string. Credentials are URL-escaped.
func DSN(user, password, host string, port int, database string) string {
	u := url.URL{
		Scheme:   "sqlserver",
		User:     url.UserPassword(user, password),
		Host:     net.JoinHostPort(host, strconv.Itoa(port)),
		RawQuery: url.Values{"database": {database}}.Encode(),
	}
	return u.String()
}

// Open connects to the order-entry database.
func Open(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlserver.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("connect to order-entry database: %w", err)
	}
	return db, nil
}

// Client implements ports.OrderProvider.
type Client struct {
	db *gorm.DB
}

var _ ports.OrderProvider = (*Client)(nil)

func NewClient(db *gorm.DB) *Client {
	return &Client{db: db}
}

type headerRow struct {
	OrderNo      string
	LeadTimePlan *string
	DueDate      *time.Time
	CustomerName *string
	ShipName     *string
}

type lineRow struct {
	QtyOrdered  *float64
	ProductCode *string
	LengthIn    *float64
	HeightIn    *float64
	Finish      *string
	BuildNote   *string
	ProductTag  *string
}

// FetchOrder reads the header and product lines of an order.
func (c *Client) FetchOrder(ctx context.Context, orderNo string) (ports.ExternalOrder, error) {
	orderNo = strings.TrimSpace(orderNo)
	if orderNo == "" {
		return ports.ExternalOrder{}, errs.NewValueIsRequiredError("order_no")
	}

	db := c.db.WithContext(ctx)

	var headers []headerRow
	if err := db.Raw(headerSQL, orderNo).Scan(&headers).Error; err != nil {
		return ports.ExternalOrder{}, fmt.Errorf("read order-entry header %s: %w", orderNo, err)
	}
	if len(headers) == 0 {
		return ports.ExternalOrder{}, errs.NewObjectNotFoundError("order_no", orderNo)
	}

	var lines []lineRow
	if err := db.Raw(linesSQL, orderNo).Scan(&lines).Error; err != nil {
		return ports.ExternalOrder{}, fmt.Errorf("read order-entry lines %s: %w", orderNo, err)
	}

	return toExternalOrder(orderNo, headers[0], lines), nil
}

func toExternalOrder(orderNo string, h headerRow, rows []lineRow) ports.ExternalOrder {
	number := strings.TrimSpace(h.OrderNo)
	if number == "" {
		number = orderNo
	}

	out := ports.ExternalOrder{
		Header: order.Header{
			Number:       number,
			CustomerName: trimmed(h.CustomerName),
			ShipTo:       trimmed(h.ShipName),
			DueDate:      dateOnly(h.DueDate),
			LeadTimePlan: trimmed(h.LeadTimePlan),
			Source:       order.SourceOES,
		},
		Lines: make([]order.LineDetails, 0, len(rows)),
	}

	for _, r := range rows {
		code := trimmed(r.ProductCode)
		if code == "" || strings.HasPrefix(code, "..") {
			continue
		}

		out.Lines = append(out.Lines, order.LineDetails{
			ProductCode: code,
			LengthIn:    inches(r.LengthIn),
			HeightIn:    inches(r.HeightIn),
			Finish:      trimmed(r.Finish),
			QtyOrdered:  quantity(r.QtyOrdered),
			BuildNote:   optional(r.BuildNote),
			ProductTag:  optional(r.ProductTag),
		})
	}

	return out
}

func trimmed(s *string) string {
	if s == nil {
		return ""
	}
	return strings.TrimSpace(*s)
}

func optional(s *string) *string {
	v := trimmed(s)
	if v == "" {
		return nil
	}
	return &v
}

func inches(v *float64) int {
	if v == nil {
		return 0
	}
	return kernel.RoundInches(*v)
}

// quantity truncates toward zero like the order-entry screens do.
func quantity(v *float64) int {
	if v == nil {
		return 0
	}
	return int(*v)
}

// dateOnly drops the time of day so that due dates compare as calendar dates.
func dateOnly(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	d := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	return &d
}
