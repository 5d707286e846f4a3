package commands_test

import (
	"context"
	"errors"
	"testing"

	"ordertrack/internal/core/application/usecases/commands"
	"ordertrack/internal/core/domain/model/kernel"
	"ordertrack/internal/core/domain/model/order"
	"ordertrack/internal/core/domain/model/retailer"
	"ordertrack/internal/core/domain/model/tracking"
	"ordertrack/internal/core/ports"
	"ordertrack/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockIntakeOrderRepository struct{ mock.Mock }

func (m *MockIntakeOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}
func (m *MockIntakeOrderRepository) Update(_ context.Context, _ *order.Order) error { return nil }
func (m *MockIntakeOrderRepository) Get(_ context.Context, _ kernel.UUID) (*order.Order, error) {
	return nil, errors.New("not implemented in mock")
}
func (m *MockIntakeOrderRepository) GetFirstInStatus(_ context.Context, _ order.Status) (*order.Order, error) {
	return nil, errors.New("not implemented in mock")
}

type MockIntakeTrackingRepository struct{ mock.Mock }

func (m *MockIntakeTrackingRepository) Add(ctx context.Context, entry *tracking.Entry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}
func (m *MockIntakeTrackingRepository) GetByOrder(_ context.Context, _ kernel.UUID) ([]*tracking.Entry, error) {
	return nil, errors.New("not implemented in mock")
}

type MockIntakeRetailerRepository struct{ mock.Mock }

func (m *MockIntakeRetailerRepository) Add(_ context.Context, _ *retailer.Retailer) error {
	return nil
}
func (m *MockIntakeRetailerRepository) Update(_ context.Context, _ *retailer.Retailer) error {
	return nil
}
func (m *MockIntakeRetailerRepository) Get(ctx context.Context, id kernel.UUID) (*retailer.Retailer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*retailer.Retailer), args.Error(1)
}

type MockIntakeUoW struct{ mock.Mock }

func (m *MockIntakeUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockIntakeUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockIntakeUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockIntakeUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}
func (m *MockIntakeUoW) TrackingRepository() ports.TrackingRepository {
	args := m.Called()
	return args.Get(0).(ports.TrackingRepository)
}
func (m *MockIntakeUoW) RetailerRepository() ports.RetailerRepository {
	args := m.Called()
	return args.Get(0).(ports.RetailerRepository)
}

type MockIntakeUoWFactory struct{ mock.Mock }

func (m *MockIntakeUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

func registeredRetailer(t *testing.T, id kernel.UUID) *retailer.Retailer {
	t.Helper()
	r, err := retailer.NewRetailer(id, "Corner Mart", "orders@cornermart.example")
	require.NoError(t, err)
	return r
}

func TestCreateOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := context.Background()
	orderID := kernel.NewUUID()
	retailerID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(orderID, retailerID, 48)
	require.NoError(t, err)

	orderRepo := new(MockIntakeOrderRepository)
	trackingRepo := new(MockIntakeTrackingRepository)
	retailerRepo := new(MockIntakeRetailerRepository)
	uow := new(MockIntakeUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("RetailerRepository").Return(retailerRepo).Once(),
		retailerRepo.On("Get", mock.Anything, retailerID).Return(registeredRetailer(t, retailerID), nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("TrackingRepository").Return(trackingRepo).Once(),
		trackingRepo.On("Add", mock.Anything, mock.AnythingOfType("*tracking.Entry")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockIntakeUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateOrderCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))

	addedOrder := orderRepo.Calls[0].Arguments.Get(1).(*order.Order)
	assert.True(t, addedOrder.ID().IsEqual(orderID))
	assert.Equal(t, order.Uploaded, addedOrder.Status())
	assert.Equal(t, 48, addedOrder.Units())

	firstEntry := trackingRepo.Calls[0].Arguments.Get(1).(*tracking.Entry)
	assert.True(t, firstEntry.OrderID().IsEqual(orderID))
	assert.Equal(t, order.Uploaded, firstEntry.Status())
	assert.Equal(t, "Order uploaded", firstEntry.Message())

	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_UnknownRetailer(t *testing.T) {
	ctx := context.Background()
	retailerID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), retailerID, 12)
	require.NoError(t, err)

	retailerRepo := new(MockIntakeRetailerRepository)
	uow := new(MockIntakeUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("RetailerRepository").Return(retailerRepo).Once(),
		retailerRepo.On("Get", mock.Anything, retailerID).
			Return(nil, errs.NewObjectNotFoundError("retailerID", retailerID)).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockIntakeUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateOrderCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	uow.AssertNotCalled(t, "OrderRepository")
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestCreateOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	factory := new(MockIntakeUoWFactory)

	h := commands.NewCreateOrderCommandHandler(factory)
	err := h.Handle(context.Background(), commands.CreateOrderCommand{})

	require.ErrorIs(t, err, commands.ErrCreateOrderCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}

func TestNewCreateOrderCommand_RejectsNonPositiveUnits(t *testing.T) {
	for _, units := range []int{0, -5} {
		_, err := commands.NewCreateOrderCommand(kernel.NewUUID(), kernel.NewUUID(), units)

		require.ErrorIs(t, err, commands.ErrUnitsAreInvalid, "units=%d", units)
	}
}

func TestNewCreateOrderCommand_RejectsInvalidIDs(t *testing.T) {
	var empty kernel.UUID

	_, err := commands.NewCreateOrderCommand(empty, kernel.NewUUID(), 10)
	require.Error(t, err)

	_, err = commands.NewCreateOrderCommand(kernel.NewUUID(), empty, 10)
	require.Error(t, err)
}
