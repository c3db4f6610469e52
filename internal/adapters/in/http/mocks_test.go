package http

import (
	"context"
	"io"

	"packing/internal/core/application/usecases/commands"
	"packing/internal/core/application/usecases/queries"
	"packing/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/mock"
)

type MockStartPack struct{ mock.Mock }

func (m *MockStartPack) Handle(ctx context.Context, cmd commands.StartPackCommand) (kernel.UUID, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(kernel.UUID), args.Error(1)
}

type MockAssignOne struct{ mock.Mock }

func (m *MockAssignOne) Handle(ctx context.Context, cmd commands.AssignOneCommand) error {
	return m.Called(ctx, cmd).Error(0)
}

type MockSetItemQty struct{ mock.Mock }

func (m *MockSetItemQty) Handle(ctx context.Context, cmd commands.SetItemQtyCommand) error {
	return m.Called(ctx, cmd).Error(0)
}

type MockRemoveItem struct{ mock.Mock }

func (m *MockRemoveItem) Handle(ctx context.Context, cmd commands.RemoveItemCommand) error {
	return m.Called(ctx, cmd).Error(0)
}

type MockCreateBox struct{ mock.Mock }

func (m *MockCreateBox) Handle(ctx context.Context, cmd commands.CreateBoxCommand) (commands.CreatedBox, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(commands.CreatedBox), args.Error(1)
}

type MockSetBoxWeight struct{ mock.Mock }

func (m *MockSetBoxWeight) Handle(ctx context.Context, cmd commands.SetBoxWeightCommand) error {
	return m.Called(ctx, cmd).Error(0)
}

type MockDeleteBox struct{ mock.Mock }

func (m *MockDeleteBox) Handle(ctx context.Context, cmd commands.BoxCommand) error {
	return m.Called(ctx, cmd).Error(0)
}

type MockDuplicateBox struct{ mock.Mock }

func (m *MockDuplicateBox) Handle(ctx context.Context, cmd commands.BoxCommand) (commands.CreatedBox, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(commands.CreatedBox), args.Error(1)
}

type MockCompletePack struct{ mock.Mock }

func (m *MockCompletePack) Handle(ctx context.Context, cmd commands.CompletePackCommand) error {
	return m.Called(ctx, cmd).Error(0)
}

type MockCreateCartonType struct{ mock.Mock }

func (m *MockCreateCartonType) Handle(ctx context.Context, cmd commands.CreateCartonTypeCommand) (kernel.UUID, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(kernel.UUID), args.Error(1)
}

type MockUpdateCartonType struct{ mock.Mock }

func (m *MockUpdateCartonType) Handle(ctx context.Context, cmd commands.UpdateCartonTypeCommand) error {
	return m.Called(ctx, cmd).Error(0)
}

type MockAdjustCartonInventory struct{ mock.Mock }

func (m *MockAdjustCartonInventory) Handle(ctx context.Context, cmd commands.AdjustCartonInventoryCommand) (int, error) {
	args := m.Called(ctx, cmd)
	return args.Int(0), args.Error(1)
}

type MockPackSnapshot struct{ mock.Mock }

func (m *MockPackSnapshot) Handle(ctx context.Context, query queries.GetPackSnapshotQuery) (queries.PackSnapshot, error) {
	args := m.Called(ctx, query)
	return args.Get(0).(queries.PackSnapshot), args.Error(1)
}

type MockPackingSlip struct{ mock.Mock }

func (m *MockPackingSlip) Handle(ctx context.Context, query queries.GetPackingSlipQuery) (queries.PackingSlip, error) {
	args := m.Called(ctx, query)
	return args.Get(0).(queries.PackingSlip), args.Error(1)
}

type MockListCartonTypes struct{ mock.Mock }

func (m *MockListCartonTypes) Handle(ctx context.Context, query queries.ListCartonTypesQuery) ([]queries.CartonTypeView, error) {
	args := m.Called(ctx, query)
	return args.Get(0).([]queries.CartonTypeView), args.Error(1)
}

type MockLowStockCartons struct{ mock.Mock }

func (m *MockLowStockCartons) Handle(ctx context.Context, query queries.GetLowStockCartonsQuery) ([]queries.CartonTypeView, error) {
	args := m.Called(ctx, query)
	return args.Get(0).([]queries.CartonTypeView), args.Error(1)
}

type MockSlipWriter struct{ mock.Mock }

func (m *MockSlipWriter) Write(w io.Writer, slip queries.PackingSlip) error {
	args := m.Called(w, slip)
	if body := args.String(0); body != "" {
		if _, err := io.WriteString(w, body); err != nil {
			return err
		}
	}
	return args.Error(1)
}

type MockSyncOrder struct{ mock.Mock }

func (m *MockSyncOrder) Handle(ctx context.Context, cmd commands.SyncOrderCommand) (commands.SyncedOrder, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(commands.SyncedOrder), args.Error(1)
}

type MockListOrders struct{ mock.Mock }

func (m *MockListOrders) Handle(ctx context.Context, query queries.ListOrdersQuery) ([]queries.OrderView, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]queries.OrderView), args.Error(1)
}

type MockGetOrder struct{ mock.Mock }

func (m *MockGetOrder) Handle(ctx context.Context, query queries.GetOrderQuery) (queries.OrderView, error) {
	args := m.Called(ctx, query)
	return args.Get(0).(queries.OrderView), args.Error(1)
}

type MockOrderLines struct{ mock.Mock }

func (m *MockOrderLines) Handle(ctx context.Context, query queries.GetOrderLinesQuery) ([]queries.OrderLineView, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]queries.OrderLineView), args.Error(1)
}

type MockPreviewOrder struct{ mock.Mock }

func (m *MockPreviewOrder) Handle(ctx context.Context, query queries.PreviewOrderQuery) (queries.OrderPreview, error) {
	args := m.Called(ctx, query)
	return args.Get(0).(queries.OrderPreview), args.Error(1)
}
