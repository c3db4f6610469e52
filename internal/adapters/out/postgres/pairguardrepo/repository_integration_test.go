package pairguardrepo_test

import (
	"context"
	"testing"

	"packing/internal/adapters/out/postgres/pairguardrepo"
	"packing/internal/adapters/out/postgres/pgtest"
	"packing/internal/core/domain/model/kernel"
	"packing/internal/core/domain/model/pairguard"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate any) {
	m.Called(id, aggregate)
}

type PairGuardRepositoryIntegrationTestSuite struct {
	suite.Suite
	pg         *pgtest.Database
	repository *pairguardrepo.GormPairGuardRepository
	tracker    *MockAggregateTracker
}

func (suite *PairGuardRepositoryIntegrationTestSuite) SetupSuite() {
	pg, err := pgtest.Start(context.Background())
	suite.Require().NoError(err)
	suite.pg = pg
}

func (suite *PairGuardRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.pg.Truncate())

	suite.tracker = new(MockAggregateTracker)
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything).Maybe()
	suite.repository = pairguardrepo.NewGormPairGuardRepository(suite.pg.DB, suite.tracker)
}

func (suite *PairGuardRepositoryIntegrationTestSuite) TearDownSuite() {
	suite.Require().NoError(suite.pg.Terminate(context.Background()))
}

func (suite *PairGuardRepositoryIntegrationTestSuite) TestGetByOrder_NoHistory_ReturnsEmptyIndex() {
	orderID := kernel.NewUUID()

	idx, err := suite.repository.GetByOrder(context.Background(), orderID)
	suite.Require().NoError(err)
	suite.Equal(orderID, idx.OrderID())
	suite.Equal(0, idx.Len())
}

func (suite *PairGuardRepositoryIntegrationTestSuite) TestSave_ThenGetByOrder() {
	ctx := context.Background()
	orderID, l1, l2, l3 := kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID()
	box1, box2 := kernel.NewUUID(), kernel.NewUUID()

	idx, err := suite.repository.GetByOrder(ctx, orderID)
	suite.Require().NoError(err)
	_, err = idx.Record(l2, l1, box1)
	suite.Require().NoError(err)
	_, err = idx.Record(l1, l3, box2)
	suite.Require().NoError(err)

	suite.Require().NoError(suite.repository.Save(ctx, idx))
	suite.Empty(idx.Pending())

	got, err := suite.repository.GetByOrder(ctx, orderID)
	suite.Require().NoError(err)
	suite.Equal(2, got.Len())

	anchor, ok := got.Anchor(l1, l2)
	suite.True(ok)
	suite.Equal(box1, anchor)
	anchor, ok = got.Anchor(l3, l1)
	suite.True(ok)
	suite.Equal(box2, anchor)
	_, ok = got.Anchor(l2, l3)
	suite.False(ok)

	other, err := suite.repository.GetByOrder(ctx, kernel.NewUUID())
	suite.Require().NoError(err)
	suite.Equal(0, other.Len())
}

func (suite *PairGuardRepositoryIntegrationTestSuite) TestSave_ConcurrentWriterKeepsFirstAnchor() {
	ctx := context.Background()
	orderID, l1, l2 := kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID()
	winnerBox, loserBox := kernel.NewUUID(), kernel.NewUUID()

	// Both writers loaded an empty history before either saved.
	winner, err := suite.repository.GetByOrder(ctx, orderID)
	suite.Require().NoError(err)
	loser, err := suite.repository.GetByOrder(ctx, orderID)
	suite.Require().NoError(err)

	_, err = winner.Record(l1, l2, winnerBox)
	suite.Require().NoError(err)
	_, err = loser.Record(l1, l2, loserBox)
	suite.Require().NoError(err)

	suite.Require().NoError(suite.repository.Save(ctx, winner))
	suite.Require().NoError(suite.repository.Save(ctx, loser))

	got, err := suite.repository.GetByOrder(ctx, orderID)
	suite.Require().NoError(err)
	anchor, ok := got.Anchor(l1, l2)
	suite.True(ok)
	suite.Equal(winnerBox, anchor)
}

func (suite *PairGuardRepositoryIntegrationTestSuite) TestSave_NothingPending_IsNoop() {
	idx, err := pairguard.NewIndex(kernel.NewUUID())
	suite.Require().NoError(err)

	suite.Require().NoError(suite.repository.Save(context.Background(), idx))
	suite.tracker.AssertNotCalled(suite.T(), "TrackAggregate", mock.Anything, mock.Anything)
}

func TestPairGuardRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(PairGuardRepositoryIntegrationTestSuite))
}
