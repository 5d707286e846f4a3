package commands_test

import (
	"context"
	"errors"
	"testing"

	"ordertrack/internal/core/application/usecases/commands"
	"ordertrack/internal/core/domain/model/kernel"
	"ordertrack/internal/core/domain/model/retailer"
	"ordertrack/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockRegistryRetailerRepository struct{ mock.Mock }

func (m *MockRegistryRetailerRepository) Add(ctx context.Context, r *retailer.Retailer) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}
func (m *MockRegistryRetailerRepository) Update(_ context.Context, _ *retailer.Retailer) error {
	return nil
}
func (m *MockRegistryRetailerRepository) Get(_ context.Context, _ kernel.UUID) (*retailer.Retailer, error) {
	return nil, errors.New("not implemented in mock")
}

type MockRegistryUoW struct{ mock.Mock }

func (m *MockRegistryUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockRegistryUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockRegistryUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockRegistryUoW) RetailerRepository() ports.RetailerRepository {
	args := m.Called()
	return args.Get(0).(ports.RetailerRepository)
}

type MockRegistryUoWFactory struct{ mock.Mock }

func (m *MockRegistryUoWFactory) Create() commands.RetailerUoW {
	args := m.Called()
	return args.Get(0).(commands.RetailerUoW)
}

func TestCreateRetailerCommandHandler_Handle_Success(t *testing.T) {
	ctx := context.Background()
	retailerID := kernel.NewUUID()
	cmd, err := commands.NewCreateRetailerCommand(retailerID, "Corner Mart", "orders@cornermart.example")
	require.NoError(t, err)

	retailerRepo := new(MockRegistryRetailerRepository)
	uow := new(MockRegistryUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("RetailerRepository").Return(retailerRepo).Once(),
		retailerRepo.On("Add", mock.Anything, mock.AnythingOfType("*retailer.Retailer")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockRegistryUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateRetailerCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))

	added := retailerRepo.Calls[0].Arguments.Get(1).(*retailer.Retailer)
	assert.True(t, added.ID().IsEqual(retailerID))
	assert.Equal(t, "Corner Mart", added.Name())
	assert.Equal(t, "orders@cornermart.example", added.Email())
	uow.AssertExpectations(t)
}

func TestCreateRetailerCommandHandler_Handle_InvalidEmailFromDomain(t *testing.T) {
	ctx := context.Background()
	cmd, err := commands.NewCreateRetailerCommand(kernel.NewUUID(), "Corner Mart", "not-an-address")
	require.NoError(t, err) // command only requires presence, the aggregate checks shape

	uow := new(MockRegistryUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockRegistryUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateRetailerCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, retailer.ErrEmailIsInvalid)
	uow.AssertNotCalled(t, "RetailerRepository")
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestCreateRetailerCommandHandler_Handle_ValidationError(t *testing.T) {
	factory := new(MockRegistryUoWFactory)

	h := commands.NewCreateRetailerCommandHandler(factory)
	err := h.Handle(context.Background(), commands.CreateRetailerCommand{})

	require.ErrorIs(t, err, commands.ErrCreateRetailerCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}

func TestNewCreateRetailerCommand_RequiresNameAndEmail(t *testing.T) {
	_, err := commands.NewCreateRetailerCommand(kernel.NewUUID(), "", "orders@cornermart.example")
	require.ErrorIs(t, err, commands.ErrRetailerNameIsRequired)

	_, err = commands.NewCreateRetailerCommand(kernel.NewUUID(), "Corner Mart", "")
	require.ErrorIs(t, err, commands.ErrRetailerEmailIsRequired)
}
