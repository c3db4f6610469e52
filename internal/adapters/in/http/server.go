// Package http exposes the packing use cases as a JSON API over echo.
package http

import (
	"context"
	"io"
	"net/http"

	"packing/internal/core/application/usecases/commands"
	"packing/internal/core/application/usecases/queries"
	"packing/internal/core/domain/model/kernel"
	"packing/internal/metrics"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type (
	StartPackHandler interface {
		Handle(ctx context.Context, cmd commands.StartPackCommand) (kernel.UUID, error)
	}
	AssignOneHandler interface {
		Handle(ctx context.Context, cmd commands.AssignOneCommand) error
	}
	SetItemQtyHandler interface {
		Handle(ctx context.Context, cmd commands.SetItemQtyCommand) error
	}
	RemoveItemHandler interface {
		Handle(ctx context.Context, cmd commands.RemoveItemCommand) error
	}
	CreateBoxHandler interface {
		Handle(ctx context.Context, cmd commands.CreateBoxCommand) (commands.CreatedBox, error)
	}
	SetBoxWeightHandler interface {
		Handle(ctx context.Context, cmd commands.SetBoxWeightCommand) error
	}
	DeleteBoxHandler interface {
		Handle(ctx context.Context, cmd commands.BoxCommand) error
	}
	DuplicateBoxHandler interface {
		Handle(ctx context.Context, cmd commands.BoxCommand) (commands.CreatedBox, error)
	}
	CompletePackHandler interface {
		Handle(ctx context.Context, cmd commands.CompletePackCommand) error
	}
	SyncOrderHandler interface {
		Handle(ctx context.Context, cmd commands.SyncOrderCommand) (commands.SyncedOrder, error)
	}

	CreateCartonTypeHandler interface {
		Handle(ctx context.Context, cmd commands.CreateCartonTypeCommand) (kernel.UUID, error)
	}
	UpdateCartonTypeHandler interface {
		Handle(ctx context.Context, cmd commands.UpdateCartonTypeCommand) error
	}
	AdjustCartonInventoryHandler interface {
		Handle(ctx context.Context, cmd commands.AdjustCartonInventoryCommand) (int, error)
	}

	PackSnapshotHandler interface {
		Handle(ctx context.Context, query queries.GetPackSnapshotQuery) (queries.PackSnapshot, error)
	}
	PackingSlipHandler interface {
		Handle(ctx context.Context, query queries.GetPackingSlipQuery) (queries.PackingSlip, error)
	}
	ListCartonTypesHandler interface {
		Handle(ctx context.Context, query queries.ListCartonTypesQuery) ([]queries.CartonTypeView, error)
	}
	LowStockCartonsHandler interface {
		Handle(ctx context.Context, query queries.GetLowStockCartonsQuery) ([]queries.CartonTypeView, error)
	}
	ListOrdersHandler interface {
		Handle(ctx context.Context, query queries.ListOrdersQuery) ([]queries.OrderView, error)
	}
	GetOrderHandler interface {
		Handle(ctx context.Context, query queries.GetOrderQuery) (queries.OrderView, error)
	}
	OrderLinesHandler interface {
		Handle(ctx context.Context, query queries.GetOrderLinesQuery) ([]queries.OrderLineView, error)
	}
	PreviewOrderHandler interface {
		Handle(ctx context.Context, query queries.PreviewOrderQuery) (queries.OrderPreview, error)
	}

	// SlipWriter renders a packing slip document, e.g. report.PackingSlipWriter.
	SlipWriter interface {
		Write(w io.Writer, slip queries.PackingSlip) error
	}
)

// Handlers groups the use cases the API dispatches to.
type Handlers struct {
	StartPack    StartPackHandler
	AssignOne    AssignOneHandler
	SetItemQty   SetItemQtyHandler
	RemoveItem   RemoveItemHandler
	CreateBox    CreateBoxHandler
	SetBoxWeight SetBoxWeightHandler
	DeleteBox    DeleteBoxHandler
	DuplicateBox DuplicateBoxHandler
	CompletePack CompletePackHandler
	SyncOrder    SyncOrderHandler

	CreateCartonType      CreateCartonTypeHandler
	UpdateCartonType      UpdateCartonTypeHandler
	AdjustCartonInventory AdjustCartonInventoryHandler

	PackSnapshot    PackSnapshotHandler
	PackingSlip     PackingSlipHandler
	ListCartonTypes ListCartonTypesHandler
	LowStockCartons LowStockCartonsHandler
	ListOrders      ListOrdersHandler
	GetOrder        GetOrderHandler
	OrderLines      OrderLinesHandler
	PreviewOrder    PreviewOrderHandler

	SlipWriter SlipWriter
}

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	h Handlers
}

func NewServer(handlers Handlers) *Server {
	return &Server{h: handlers}
}

// NewEcho builds an echo instance with the API error handler, validator and
// the shared middleware chain installed. auth may be nil.
func NewEcho(auth echo.MiddlewareFunc) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = ErrorHandler
	e.Validator = NewRequestValidator()

	e.Use(RequestLogger(), metrics.EchoMiddleware())
	if auth != nil {
		e.Use(auth)
	}
	return e
}

// Register mounts every route on e.
func (s *Server) Register(e *echo.Echo) {
	e.GET("/health", s.Health)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	api := e.Group("/api/v1")

	packs := api.Group("/packs")
	packs.POST("/start", s.StartPack)
	packs.GET("/:id", s.GetPackSnapshot)
	packs.POST("/:id/assign", s.AssignOne)
	packs.PUT("/:id/boxes/:box/items/:line", s.SetItemQty)
	packs.DELETE("/:id/boxes/:box/items/:line", s.RemoveItem)
	packs.POST("/:id/boxes", s.CreateBox)
	packs.PUT("/:id/boxes/:box/weight", s.SetBoxWeight)
	packs.DELETE("/:id/boxes/:box", s.DeleteBox)
	packs.POST("/:id/boxes/:box/duplicate", s.DuplicateBox)
	packs.POST("/:id/complete", s.CompletePack)
	packs.GET("/:id/slip", s.GetPackingSlip)
	packs.GET("/:id/slip.xlsx", s.DownloadPackingSlip)

	orders := api.Group("/orders")
	orders.GET("", s.ListOrders)
	orders.POST("/sync", s.SyncOrder)
	orders.GET("/oes/:order_no", s.PreviewOrder)
	orders.GET("/:order_no", s.GetOrder)
	orders.GET("/:order_no/lines", s.GetOrderLines)

	cartons := api.Group("/cartons")
	cartons.GET("", s.ListCartonTypes)
	cartons.POST("", s.CreateCartonType)
	cartons.GET("/low-stock", s.GetLowStockCartons)
	cartons.PUT("/:id", s.UpdateCartonType)
	cartons.POST("/:id/adjust", s.AdjustCartonInventory)
}

// Health handles GET /health.
func (s *Server) Health(c echo.Context) error {
	return c.String(http.StatusOK, "Healthy")
}
