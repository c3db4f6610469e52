package commands_test

import (
	"context"

	"packing/internal/core/application/usecases/commands"
	"packing/internal/core/domain/model/carton"
	"packing/internal/core/domain/model/kernel"
	"packing/internal/core/domain/model/order"
	"packing/internal/core/domain/model/pack"
	"packing/internal/core/domain/model/pairguard"
	"packing/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetByNumber(ctx context.Context, number string) (*order.Order, error) {
	args := m.Called(ctx, number)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

type MockPackRepository struct{ mock.Mock }

func (m *MockPackRepository) Add(ctx context.Context, p *pack.Pack) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockPackRepository) Update(ctx context.Context, p *pack.Pack) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockPackRepository) AddBox(ctx context.Context, b *pack.Box) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

func (m *MockPackRepository) Get(ctx context.Context, id kernel.UUID) (*pack.Pack, error) {
	return m.packResult(m.Called(ctx, id))
}

func (m *MockPackRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*pack.Pack, error) {
	return m.packResult(m.Called(ctx, id))
}

func (m *MockPackRepository) GetForShare(ctx context.Context, id kernel.UUID) (*pack.Pack, error) {
	return m.packResult(m.Called(ctx, id))
}

func (m *MockPackRepository) FindInProgressByOrder(ctx context.Context, orderID kernel.UUID) (*pack.Pack, error) {
	return m.packResult(m.Called(ctx, orderID))
}

func (m *MockPackRepository) packResult(args mock.Arguments) (*pack.Pack, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*pack.Pack), args.Error(1)
}

type MockPairGuardRepository struct{ mock.Mock }

func (m *MockPairGuardRepository) GetByOrder(ctx context.Context, orderID kernel.UUID) (*pairguard.Index, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*pairguard.Index), args.Error(1)
}

func (m *MockPairGuardRepository) Save(ctx context.Context, idx *pairguard.Index) error {
	args := m.Called(ctx, idx)
	return args.Error(0)
}

type MockCartonTypeRepository struct{ mock.Mock }

func (m *MockCartonTypeRepository) Add(ctx context.Context, c *carton.CartonType) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCartonTypeRepository) Update(ctx context.Context, c *carton.CartonType) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCartonTypeRepository) Get(ctx context.Context, id kernel.UUID) (*carton.CartonType, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*carton.CartonType), args.Error(1)
}

func (m *MockCartonTypeRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*carton.CartonType, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*carton.CartonType), args.Error(1)
}

type MockOrderProvider struct{ mock.Mock }

func (m *MockOrderProvider) FetchOrder(ctx context.Context, orderNo string) (ports.ExternalOrder, error) {
	args := m.Called(ctx, orderNo)
	return args.Get(0).(ports.ExternalOrder), args.Error(1)
}

type MockPackUoW struct{ mock.Mock }

func (m *MockPackUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockPackUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockPackUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockPackUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockPackUoW) PackRepository() ports.PackRepository {
	args := m.Called()
	return args.Get(0).(ports.PackRepository)
}

func (m *MockPackUoW) PairGuardRepository() ports.PairGuardRepository {
	args := m.Called()
	return args.Get(0).(ports.PairGuardRepository)
}

func (m *MockPackUoW) CartonTypeRepository() ports.CartonTypeRepository {
	args := m.Called()
	return args.Get(0).(ports.CartonTypeRepository)
}

type MockPackUoWFactory struct{ mock.Mock }

func (m *MockPackUoWFactory) Create() commands.PackUoW {
	args := m.Called()
	return args.Get(0).(commands.PackUoW)
}

type MockCartonUoW struct{ mock.Mock }

func (m *MockCartonUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockCartonUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockCartonUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockCartonUoW) CartonTypeRepository() ports.CartonTypeRepository {
	args := m.Called()
	return args.Get(0).(ports.CartonTypeRepository)
}

type MockCartonUoWFactory struct{ mock.Mock }

func (m *MockCartonUoWFactory) Create() commands.CartonUoW {
	args := m.Called()
	return args.Get(0).(commands.CartonUoW)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockConflictRecorder struct{ mock.Mock }

func (m *MockConflictRecorder) RecordBoxNumberConflict() {
	m.Called()
}

// packRepos wires a MockPackUoW to fresh repository mocks.
type packRepos struct {
	uow     *MockPackUoW
	orders  *MockOrderRepository
	packs   *MockPackRepository
	pairs   *MockPairGuardRepository
	cartons *MockCartonTypeRepository
}

func newPackRepos() packRepos {
	r := packRepos{
		uow:     new(MockPackUoW),
		orders:  new(MockOrderRepository),
		packs:   new(MockPackRepository),
		pairs:   new(MockPairGuardRepository),
		cartons: new(MockCartonTypeRepository),
	}
	r.uow.On("OrderRepository").Return(r.orders).Maybe()
	r.uow.On("PackRepository").Return(r.packs).Maybe()
	r.uow.On("PairGuardRepository").Return(r.pairs).Maybe()
	r.uow.On("CartonTypeRepository").Return(r.cartons).Maybe()
	return r
}
