package commands_test

import (
	"context"
	"errors"
	"testing"

	"parceltrack/internal/core/application/usecases/commands"
	"parceltrack/internal/core/domain/model/parcel"
	"parceltrack/internal/core/domain/model/tracking"
	"parceltrack/internal/core/ports"
	"parceltrack/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockUndoRegistry struct{ mock.Mock }

func (m *MockUndoRegistry) Add(ctx context.Context, aggregate *parcel.Parcel) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockUndoRegistry) Update(ctx context.Context, aggregate *parcel.Parcel) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockUndoRegistry) Get(ctx context.Context, id parcel.ID) (*parcel.Parcel, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*parcel.Parcel), args.Error(1)
}

func (m *MockUndoRegistry) Remove(ctx context.Context, id parcel.ID) (*parcel.Parcel, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*parcel.Parcel), args.Error(1)
}

func (m *MockUndoRegistry) ReInsert(ctx context.Context, aggregate *parcel.Parcel) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockUndoRegistry) GetAll(ctx context.Context) ([]*parcel.Parcel, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*parcel.Parcel), args.Error(1)
}

type MockUndoHistory struct{ mock.Mock }

func (m *MockUndoHistory) Push(ctx context.Context, entry tracking.Entry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockUndoHistory) Pop(ctx context.Context) (tracking.Entry, error) {
	args := m.Called(ctx)
	return args.Get(0).(tracking.Entry), args.Error(1)
}

type MockUndoUoW struct{ mock.Mock }

func (m *MockUndoUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUndoUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUndoUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUndoUoW) ParcelRegistry() ports.ParcelRegistry {
	args := m.Called()
	return args.Get(0).(ports.ParcelRegistry)
}

func (m *MockUndoUoW) HistoryStack() ports.HistoryStack {
	args := m.Called()
	return args.Get(0).(ports.HistoryStack)
}

type MockUndoUoWFactory struct{ mock.Mock }

func (m *MockUndoUoWFactory) Create() commands.TrackingUoW {
	args := m.Called()
	return args.Get(0).(commands.TrackingUoW)
}

func TestUndoCommandHandler_Handle_RevertsRegistration(t *testing.T) {
	ctx := t.Context()
	cmd := commands.NewUndoCommand()

	registeredParcel := buildActiveParcel(t, 7, 1.25, 2)
	entry, err := tracking.NewRegisteredEntry(registeredParcel)
	require.NoError(t, err)

	registry := new(MockUndoRegistry)
	history := new(MockUndoHistory)
	uow := new(MockUndoUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ParcelRegistry").Return(registry).Once(),
		uow.On("HistoryStack").Return(history).Once(),
		history.On("Pop", ctx).Return(entry, nil).Once(),
		registry.On("Remove", ctx, registeredParcel.ID()).Return(registeredParcel, nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUndoUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewUndoCommandHandler(factory)
	reverted, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, tracking.Registered, reverted.Kind())
	assert.True(t, reverted.Parcel().IsEqual(registeredParcel))

	registry.AssertExpectations(t)
	history.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestUndoCommandHandler_Handle_RegistrationTargetAlreadyGone(t *testing.T) {
	ctx := t.Context()
	cmd := commands.NewUndoCommand()

	registeredParcel := buildActiveParcel(t, 7, 1.25, 2)
	entry, err := tracking.NewRegisteredEntry(registeredParcel)
	require.NoError(t, err)

	registry := new(MockUndoRegistry)
	history := new(MockUndoHistory)
	uow := new(MockUndoUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ParcelRegistry").Return(registry).Once(),
		uow.On("HistoryStack").Return(history).Once(),
		history.On("Pop", ctx).Return(entry, nil).Once(),
		registry.On("Remove", ctx, registeredParcel.ID()).Return(nil, errs.ErrObjectNotFound).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUndoUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewUndoCommandHandler(factory)
	reverted, err := handler.Handle(ctx, cmd)

	// The entry is consumed even though its target vanished.
	require.NoError(t, err)
	assert.Equal(t, tracking.Registered, reverted.Kind())

	registry.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestUndoCommandHandler_Handle_RevertsWeightUpdate(t *testing.T) {
	ctx := t.Context()
	cmd := commands.NewUndoCommand()

	preUpdateParcel := buildActiveParcel(t, 7, 1.25, 2)
	entry, err := tracking.NewUpdatedEntry(preUpdateParcel)
	require.NoError(t, err)

	registry := new(MockUndoRegistry)
	history := new(MockUndoHistory)
	uow := new(MockUndoUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ParcelRegistry").Return(registry).Once(),
		uow.On("HistoryStack").Return(history).Once(),
		history.On("Pop", ctx).Return(entry, nil).Once(),
		registry.On("Update", ctx, mock.AnythingOfType("*parcel.Parcel")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUndoUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewUndoCommandHandler(factory)
	reverted, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, tracking.Updated, reverted.Kind())

	// The registry receives the pre-update snapshot wholesale.
	restoredParcel := registry.Calls[0].Arguments[1].(*parcel.Parcel)
	assert.True(t, restoredParcel.IsEqual(preUpdateParcel))
	assert.InDelta(t, 1.25, restoredParcel.Weight(), 0.0001)

	registry.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestUndoCommandHandler_Handle_WeightUpdateTargetAlreadyGone(t *testing.T) {
	ctx := t.Context()
	cmd := commands.NewUndoCommand()

	preUpdateParcel := buildActiveParcel(t, 7, 1.25, 2)
	entry, err := tracking.NewUpdatedEntry(preUpdateParcel)
	require.NoError(t, err)

	registry := new(MockUndoRegistry)
	history := new(MockUndoHistory)
	uow := new(MockUndoUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ParcelRegistry").Return(registry).Once(),
		uow.On("HistoryStack").Return(history).Once(),
		history.On("Pop", ctx).Return(entry, nil).Once(),
		registry.On("Update", ctx, mock.AnythingOfType("*parcel.Parcel")).
			Return(errs.ErrObjectNotFound).
			Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUndoUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewUndoCommandHandler(factory)
	_, err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	uow.AssertExpectations(t)
}

func TestUndoCommandHandler_Handle_RevertsRemoval(t *testing.T) {
	ctx := t.Context()
	cmd := commands.NewUndoCommand()

	removedParcel := buildActiveParcel(t, 7, 1.25, 2)
	entry, err := tracking.NewRemovedEntry(removedParcel)
	require.NoError(t, err)

	registry := new(MockUndoRegistry)
	history := new(MockUndoHistory)
	uow := new(MockUndoUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ParcelRegistry").Return(registry).Once(),
		uow.On("HistoryStack").Return(history).Once(),
		history.On("Pop", ctx).Return(entry, nil).Once(),
		registry.On("ReInsert", ctx, mock.AnythingOfType("*parcel.Parcel")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUndoUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewUndoCommandHandler(factory)
	reverted, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, tracking.Removed, reverted.Kind())

	reinsertedParcel := registry.Calls[0].Arguments[1].(*parcel.Parcel)
	assert.True(t, reinsertedParcel.IsEqual(removedParcel))

	registry.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestUndoCommandHandler_Handle_EmptyHistory(t *testing.T) {
	ctx := t.Context()
	cmd := commands.NewUndoCommand()

	registry := new(MockUndoRegistry)
	history := new(MockUndoHistory)
	uow := new(MockUndoUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ParcelRegistry").Return(registry).Once(),
		uow.On("HistoryStack").Return(history).Once(),
		history.On("Pop", ctx).Return(tracking.Entry{}, errs.ErrCollectionIsEmpty).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUndoUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewUndoCommandHandler(factory)
	_, err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrNothingToUndo)
	registry.AssertNotCalled(t, "Remove")
	registry.AssertNotCalled(t, "Update")
	registry.AssertNotCalled(t, "ReInsert")
	uow.AssertNotCalled(t, "Commit", ctx)
}

func TestUndoCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.UndoCommand{} // not constructed properly

	factory := new(MockUndoUoWFactory)
	handler := commands.NewUndoCommandHandler(factory)
	_, err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrUndoCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}

func TestUndoCommandHandler_Handle_BeginError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.NewUndoCommand()

	uow := new(MockUndoUoW)
	factory := new(MockUndoUoWFactory)

	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(errors.New("begin error")).Once(),
	)

	handler := commands.NewUndoCommandHandler(factory)
	_, err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.EqualError(t, err, "begin error")
}

func TestUndoCommandHandler_Handle_PopError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.NewUndoCommand()

	registry := new(MockUndoRegistry)
	history := new(MockUndoHistory)
	uow := new(MockUndoUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ParcelRegistry").Return(registry).Once(),
		uow.On("HistoryStack").Return(history).Once(),
		history.On("Pop", ctx).Return(tracking.Entry{}, errors.New("storage error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUndoUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewUndoCommandHandler(factory)
	_, err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.EqualError(t, err, "storage error")
}

func TestUndoCommandHandler_Handle_RevertError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.NewUndoCommand()

	registeredParcel := buildActiveParcel(t, 7, 1.25, 2)
	entry, err := tracking.NewRegisteredEntry(registeredParcel)
	require.NoError(t, err)

	registry := new(MockUndoRegistry)
	history := new(MockUndoHistory)
	uow := new(MockUndoUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ParcelRegistry").Return(registry).Once(),
		uow.On("HistoryStack").Return(history).Once(),
		history.On("Pop", ctx).Return(entry, nil).Once(),
		registry.On("Remove", ctx, registeredParcel.ID()).
			Return(nil, errors.New("storage error")).
			Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUndoUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewUndoCommandHandler(factory)
	_, err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.EqualError(t, err, "storage error")
	uow.AssertNotCalled(t, "Commit", ctx)
}

func TestUndoCommandHandler_Handle_CommitError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.NewUndoCommand()

	removedParcel := buildActiveParcel(t, 7, 1.25, 2)
	entry, err := tracking.NewRemovedEntry(removedParcel)
	require.NoError(t, err)

	registry := new(MockUndoRegistry)
	history := new(MockUndoHistory)
	uow := new(MockUndoUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ParcelRegistry").Return(registry).Once(),
		uow.On("HistoryStack").Return(history).Once(),
		history.On("Pop", ctx).Return(entry, nil).Once(),
		registry.On("ReInsert", ctx, mock.AnythingOfType("*parcel.Parcel")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(errors.New("commit error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUndoUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewUndoCommandHandler(factory)
	_, err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.EqualError(t, err, "commit error")
}
