package commands_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"restaurant/internal/core/application/usecases/commands"
	"restaurant/internal/core/domain/model/customer"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/core/domain/model/table"
	"restaurant/internal/core/ports"
)

func testTime() time.Time {
	return time.Date(2025, 6, 14, 12, 0, 0, 0, time.UTC)
}

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, tenantID, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, tenantID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetAllKitchenVisible(ctx context.Context, tenantID kernel.UUID) ([]*order.Order, error) {
	args := m.Called(ctx, tenantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

type MockTableRepository struct{ mock.Mock }

func (m *MockTableRepository) Add(ctx context.Context, aggregate *table.Table) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockTableRepository) Update(ctx context.Context, aggregate *table.Table) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockTableRepository) Get(ctx context.Context, tenantID, id kernel.UUID) (*table.Table, error) {
	args := m.Called(ctx, tenantID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*table.Table), args.Error(1)
}

func (m *MockTableRepository) GetAll(ctx context.Context, tenantID kernel.UUID) ([]*table.Table, error) {
	args := m.Called(ctx, tenantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*table.Table), args.Error(1)
}

func (m *MockTableRepository) TryAttachOrder(ctx context.Context, tenantID, tableID, orderID kernel.UUID,
	status table.Status) (bool, error) {
	args := m.Called(ctx, tenantID, tableID, orderID, status)
	return args.Bool(0), args.Error(1)
}

type MockCustomerRepository struct{ mock.Mock }

func (m *MockCustomerRepository) Add(ctx context.Context, entity *customer.Customer) error {
	args := m.Called(ctx, entity)
	return args.Error(0)
}

func (m *MockCustomerRepository) Update(ctx context.Context, entity *customer.Customer) error {
	args := m.Called(ctx, entity)
	return args.Error(0)
}

func (m *MockCustomerRepository) Get(ctx context.Context, tenantID, id kernel.UUID) (*customer.Customer, error) {
	args := m.Called(ctx, tenantID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*customer.Customer), args.Error(1)
}

func (m *MockCustomerRepository) FindByContact(ctx context.Context, tenantID kernel.UUID,
	phone, email string) (*customer.Customer, error) {
	args := m.Called(ctx, tenantID, phone, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*customer.Customer), args.Error(1)
}

type MockTokenRepository struct{ mock.Mock }

func (m *MockTokenRepository) NextValue(ctx context.Context, tenantID kernel.UUID, channel, businessDay string) (int, error) {
	args := m.Called(ctx, tenantID, channel, businessDay)
	return args.Int(0), args.Error(1)
}

func (m *MockTokenRepository) DeleteBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	args := m.Called(ctx, cutoff)
	return args.Get(0).(int64), args.Error(1)
}

type MockDineInUoW struct{ mock.Mock }

func (m *MockDineInUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockDineInUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockDineInUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockDineInUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockDineInUoW) TableRepository() ports.TableRepository {
	args := m.Called()
	return args.Get(0).(ports.TableRepository)
}

type MockDineInUoWFactory struct{ mock.Mock }

func (m *MockDineInUoWFactory) Create() commands.DineInUoW {
	args := m.Called()
	return args.Get(0).(commands.DineInUoW)
}

type MockTakeawayUoW struct{ mock.Mock }

func (m *MockTakeawayUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockTakeawayUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockTakeawayUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockTakeawayUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockTakeawayUoW) TokenRepository() ports.TokenRepository {
	args := m.Called()
	return args.Get(0).(ports.TokenRepository)
}

type MockTakeawayUoWFactory struct{ mock.Mock }

func (m *MockTakeawayUoWFactory) Create() commands.TakeawayUoW {
	args := m.Called()
	return args.Get(0).(commands.TakeawayUoW)
}

type MockDeliveryUoW struct{ mock.Mock }

func (m *MockDeliveryUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockDeliveryUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockDeliveryUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockDeliveryUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockDeliveryUoW) CustomerRepository() ports.CustomerRepository {
	args := m.Called()
	return args.Get(0).(ports.CustomerRepository)
}

type MockDeliveryUoWFactory struct{ mock.Mock }

func (m *MockDeliveryUoWFactory) Create() commands.DeliveryUoW {
	args := m.Called()
	return args.Get(0).(commands.DeliveryUoW)
}

type MockTableUoW struct{ mock.Mock }

func (m *MockTableUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockTableUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockTableUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockTableUoW) TableRepository() ports.TableRepository {
	args := m.Called()
	return args.Get(0).(ports.TableRepository)
}

type MockTableUoWFactory struct{ mock.Mock }

func (m *MockTableUoWFactory) Create() commands.TableUoW {
	args := m.Called()
	return args.Get(0).(commands.TableUoW)
}

type MockTokenUoW struct{ mock.Mock }

func (m *MockTokenUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockTokenUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockTokenUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockTokenUoW) TokenRepository() ports.TokenRepository {
	args := m.Called()
	return args.Get(0).(ports.TokenRepository)
}

type MockTokenUoWFactory struct{ mock.Mock }

func (m *MockTokenUoWFactory) Create() commands.TokenUoW {
	args := m.Called()
	return args.Get(0).(commands.TokenUoW)
}

type MockKitchenNotifier struct{ mock.Mock }

func (m *MockKitchenNotifier) Register(tenantID kernel.UUID, role ports.TerminalRole, conn ports.KitchenConnection) {
	m.Called(tenantID, role, conn)
}

func (m *MockKitchenNotifier) Unregister(tenantID kernel.UUID, role ports.TerminalRole, conn ports.KitchenConnection) {
	m.Called(tenantID, role, conn)
}

func (m *MockKitchenNotifier) Publish(event ports.KitchenEvent) {
	m.Called(event)
}
