package memory_test

import (
	"context"
	"testing"

	"parceltrack/internal/adapters/out/memory"
	"parceltrack/internal/core/domain/model/tracking"
	"parceltrack/internal/core/ports"
	"parceltrack/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
)

// HistoryStackTestSuite exercises the store-backed undo history:
// last-in-first-out ordering and snapshot ownership.
type HistoryStackTestSuite struct {
	suite.Suite
	store   *memory.Store
	factory ports.UnitOfWorkFactory
	uow     ports.UnitOfWork
}

// SetupTest gives every test a fresh store with one running transaction.
func (suite *HistoryStackTestSuite) SetupTest() {
	suite.store = memory.NewStore()
	suite.factory = memory.NewStoreUnitOfWorkFactory(suite.store)

	suite.uow = suite.factory.Create()
	err := suite.uow.Begin(context.Background())
	suite.Require().NoError(err)
}

// TearDownTest releases the transaction the test ran under.
func (suite *HistoryStackTestSuite) TearDownTest() {
	_ = suite.uow.Rollback(context.Background())
}

// TestHistoryStack_PopReturnsMostRecent verifies entries pop in reverse push
// order.
func (suite *HistoryStackTestSuite) TestHistoryStack_PopReturnsMostRecent() {
	ctx := context.Background()
	stack := suite.uow.HistoryStack()

	first := createTestParcel(suite.T(), 1)
	second := createTestParcel(suite.T(), 2)

	registered, err := tracking.NewRegisteredEntry(first)
	suite.Require().NoError(err)
	updated, err := tracking.NewUpdatedEntry(second)
	suite.Require().NoError(err)

	suite.Require().NoError(stack.Push(ctx, registered))
	suite.Require().NoError(stack.Push(ctx, updated))

	popped, err := stack.Pop(ctx)
	suite.Require().NoError(err)
	suite.Equal(tracking.Updated, popped.Kind())
	suite.Equal(second.ID(), popped.Parcel().ID())

	popped, err = stack.Pop(ctx)
	suite.Require().NoError(err)
	suite.Equal(tracking.Registered, popped.Kind())
	suite.Equal(first.ID(), popped.Parcel().ID())
}

// TestHistoryStack_PopEmpty verifies popping an empty stack fails.
func (suite *HistoryStackTestSuite) TestHistoryStack_PopEmpty() {
	ctx := context.Background()
	stack := suite.uow.HistoryStack()

	_, err := stack.Pop(ctx)
	suite.Require().ErrorIs(err, errs.ErrCollectionIsEmpty)
}

// TestHistoryStack_DrainsToEmpty verifies the stack reports empty again after
// its last entry pops.
func (suite *HistoryStackTestSuite) TestHistoryStack_DrainsToEmpty() {
	ctx := context.Background()
	stack := suite.uow.HistoryStack()

	entry, err := tracking.NewRemovedEntry(createTestParcel(suite.T(), 1))
	suite.Require().NoError(err)
	suite.Require().NoError(stack.Push(ctx, entry))

	_, err = stack.Pop(ctx)
	suite.Require().NoError(err)

	_, err = stack.Pop(ctx)
	suite.Require().ErrorIs(err, errs.ErrCollectionIsEmpty)
}

// TestHistoryStack_RejectsUnconstructedEntry verifies a zero-value entry never
// enters the history.
func (suite *HistoryStackTestSuite) TestHistoryStack_RejectsUnconstructedEntry() {
	ctx := context.Background()
	stack := suite.uow.HistoryStack()

	err := stack.Push(ctx, tracking.Entry{})
	suite.Require().ErrorIs(err, tracking.ErrEntryIsNotConstructed)

	_, err = stack.Pop(ctx)
	suite.Require().ErrorIs(err, errs.ErrCollectionIsEmpty, "Rejected entry should not have been recorded")
}

// TestHistoryStack_EntriesKeepTheirSnapshots verifies a recorded entry does not
// follow later changes to the parcel it captured.
func (suite *HistoryStackTestSuite) TestHistoryStack_EntriesKeepTheirSnapshots() {
	ctx := context.Background()
	stack := suite.uow.HistoryStack()

	testParcel := createTestParcel(suite.T(), 1)
	entry, err := tracking.NewUpdatedEntry(testParcel)
	suite.Require().NoError(err)
	suite.Require().NoError(stack.Push(ctx, entry))

	err = testParcel.ChangeWeight(9.9)
	suite.Require().NoError(err)

	popped, err := stack.Pop(ctx)
	suite.Require().NoError(err)
	suite.Equal(2.5, popped.Parcel().Weight(), "Recorded snapshot should keep its pre-change weight")
}

func TestHistoryStackTestSuite(t *testing.T) {
	suite.Run(t, new(HistoryStackTestSuite))
}
