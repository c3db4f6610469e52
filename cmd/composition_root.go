package cmd

import (
	"packing/internal/adapters/in/http"
	"packing/internal/adapters/out/postgres"
	"packing/internal/adapters/out/report"
	"packing/internal/core/application/usecases/commands"
	"packing/internal/core/application/usecases/queries"
	"packing/internal/core/ports"
	"packing/internal/jobs"
	"packing/internal/metrics"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	orders     ports.OrderProvider
}

// NewCompositionRoot wires handlers over gormDB. orders may be nil when no
// order-entry system is configured.
func NewCompositionRoot(config Config, gormDB *gorm.DB, orders ports.OrderProvider) CompositionRoot {
	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
		orders:     orders,
	}
}

func (c *CompositionRoot) packUoWFactory() commands.PackUoWFactory {
	return FuncPackUoWFactory(func() commands.PackUoW {
		return c.uowFactory.CreateGorm()
	})
}

func (c *CompositionRoot) cartonUoWFactory() commands.CartonUoWFactory {
	return FuncCartonUoWFactory(func() commands.CartonUoW {
		return c.uowFactory.CreateGorm()
	})
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.CreateGorm()
	})
}

func (c *CompositionRoot) CreateStartPackCommandHandler() commands.StartPackCommandHandler {
	return commands.NewStartPackCommandHandler(c.packUoWFactory(), c.orders)
}

func (c *CompositionRoot) CreateAssignOneCommandHandler() commands.AssignOneCommandHandler {
	return commands.NewAssignOneCommandHandler(c.packUoWFactory())
}

func (c *CompositionRoot) CreateSetItemQtyCommandHandler() commands.SetItemQtyCommandHandler {
	return commands.NewSetItemQtyCommandHandler(c.packUoWFactory())
}

func (c *CompositionRoot) CreateRemoveItemCommandHandler() commands.RemoveItemCommandHandler {
	return commands.NewRemoveItemCommandHandler(c.packUoWFactory())
}

func (c *CompositionRoot) CreateCreateBoxCommandHandler() commands.CreateBoxCommandHandler {
	return commands.NewCreateBoxCommandHandler(c.packUoWFactory(), metrics.NewRecorder())
}

func (c *CompositionRoot) CreateSetBoxWeightCommandHandler() commands.SetBoxWeightCommandHandler {
	return commands.NewSetBoxWeightCommandHandler(c.packUoWFactory())
}

func (c *CompositionRoot) CreateDeleteBoxCommandHandler() commands.DeleteBoxCommandHandler {
	return commands.NewDeleteBoxCommandHandler(c.packUoWFactory())
}

func (c *CompositionRoot) CreateDuplicateBoxCommandHandler() commands.DuplicateBoxCommandHandler {
	return commands.NewDuplicateBoxCommandHandler(c.packUoWFactory())
}

func (c *CompositionRoot) CreateCompletePackCommandHandler() commands.CompletePackCommandHandler {
	return commands.NewCompletePackCommandHandler(c.packUoWFactory())
}

func (c *CompositionRoot) CreateSyncOrderCommandHandler() commands.SyncOrderCommandHandler {
	return commands.NewSyncOrderCommandHandler(c.orderUoWFactory(), c.orders)
}

func (c *CompositionRoot) CreateCreateCartonTypeCommandHandler() commands.CreateCartonTypeCommandHandler {
	return commands.NewCreateCartonTypeCommandHandler(c.cartonUoWFactory())
}

func (c *CompositionRoot) CreateUpdateCartonTypeCommandHandler() commands.UpdateCartonTypeCommandHandler {
	return commands.NewUpdateCartonTypeCommandHandler(c.cartonUoWFactory())
}

func (c *CompositionRoot) CreateAdjustCartonInventoryCommandHandler() commands.AdjustCartonInventoryCommandHandler {
	return commands.NewAdjustCartonInventoryCommandHandler(c.cartonUoWFactory())
}

func (c *CompositionRoot) CreateGetPackSnapshotQueryHandler() queries.GetPackSnapshotQueryHandler {
	return queries.NewGetPackSnapshotQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetPackingSlipQueryHandler() queries.GetPackingSlipQueryHandler {
	return queries.NewGetPackingSlipQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListCartonTypesQueryHandler() queries.ListCartonTypesQueryHandler {
	return queries.NewListCartonTypesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetLowStockCartonsQueryHandler() queries.GetLowStockCartonsQueryHandler {
	return queries.NewGetLowStockCartonsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListStalePacksQueryHandler() queries.ListStalePacksQueryHandler {
	return queries.NewListStalePacksQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListOrdersQueryHandler() queries.ListOrdersQueryHandler {
	return queries.NewListOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderLinesQueryHandler() queries.GetOrderLinesQueryHandler {
	return queries.NewGetOrderLinesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreatePreviewOrderQueryHandler() queries.PreviewOrderQueryHandler {
	return queries.NewPreviewOrderQueryHandler(c.orders)
}

func (c *CompositionRoot) CreateHTTPServer() *http.Server {
	return http.NewServer(http.Handlers{
		StartPack:             c.CreateStartPackCommandHandler(),
		AssignOne:             c.CreateAssignOneCommandHandler(),
		SetItemQty:            c.CreateSetItemQtyCommandHandler(),
		RemoveItem:            c.CreateRemoveItemCommandHandler(),
		CreateBox:             c.CreateCreateBoxCommandHandler(),
		SetBoxWeight:          c.CreateSetBoxWeightCommandHandler(),
		DeleteBox:             c.CreateDeleteBoxCommandHandler(),
		DuplicateBox:          c.CreateDuplicateBoxCommandHandler(),
		CompletePack:          c.CreateCompletePackCommandHandler(),
		SyncOrder:             c.CreateSyncOrderCommandHandler(),
		CreateCartonType:      c.CreateCreateCartonTypeCommandHandler(),
		UpdateCartonType:      c.CreateUpdateCartonTypeCommandHandler(),
		AdjustCartonInventory: c.CreateAdjustCartonInventoryCommandHandler(),
		PackSnapshot:          c.CreateGetPackSnapshotQueryHandler(),
		PackingSlip:           c.CreateGetPackingSlipQueryHandler(),
		ListCartonTypes:       c.CreateListCartonTypesQueryHandler(),
		LowStockCartons:       c.CreateGetLowStockCartonsQueryHandler(),
		ListOrders:            c.CreateListOrdersQueryHandler(),
		GetOrder:              c.CreateGetOrderQueryHandler(),
		OrderLines:            c.CreateGetOrderLinesQueryHandler(),
		PreviewOrder:          c.CreatePreviewOrderQueryHandler(),
		SlipWriter:            report.NewPackingSlipWriter(),
	})
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(jobs.Config{
		LowStockSchedule:  c.config.LowStockCron,
		StalePackSchedule: c.config.StalePackCron,
		StalePackAfter:    c.config.StalePackAfter,
	}, c.CreateGetLowStockCartonsQueryHandler(), c.CreateListStalePacksQueryHandler())
}

type FuncPackUoWFactory func() commands.PackUoW

func (f FuncPackUoWFactory) Create() commands.PackUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncCartonUoWFactory func() commands.CartonUoW

func (f FuncCartonUoWFactory) Create() commands.CartonUoW {
	return f()
}
