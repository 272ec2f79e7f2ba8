package commands_test

import (
	"context"

	"parcelhub/internal/core/domain/model/identity"
	"parcelhub/internal/core/domain/model/kernel"
	"parcelhub/internal/core/domain/model/order"
	"parcelhub/internal/core/domain/model/preference"
	"parcelhub/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

var _ ports.OrderStore = (*MockOrderStore)(nil)

type MockOrderStore struct{ mock.Mock }

func (m *MockOrderStore) SignIn(id string, role identity.Role) error {
	args := m.Called(id, role)
	return args.Error(0)
}

func (m *MockOrderStore) SignOut() {
	m.Called()
}

func (m *MockOrderStore) ActiveIdentity() (identity.Identity, bool) {
	args := m.Called()
	return args.Get(0).(identity.Identity), args.Bool(1)
}

func (m *MockOrderStore) CreateOrder(
	ownerID, submitterName, phoneNumber, itemDescription string,
	category order.Category,
) (order.Order, error) {
	args := m.Called(ownerID, submitterName, phoneNumber, itemDescription, category)
	return args.Get(0).(order.Order), args.Error(1)
}

func (m *MockOrderStore) UpdateStatus(token kernel.Token, status order.Status) error {
	args := m.Called(token, status)
	return args.Error(0)
}

func (m *MockOrderStore) Orders() []order.Order {
	args := m.Called()
	return args.Get(0).([]order.Order)
}

func (m *MockOrderStore) OrdersOwnedBy(ownerID string) []order.Order {
	args := m.Called(ownerID)
	return args.Get(0).([]order.Order)
}

func (m *MockOrderStore) VisibleOrders() ([]order.Order, error) {
	args := m.Called()
	return args.Get(0).([]order.Order), args.Error(1)
}

type MockStaffVerifier struct{ mock.Mock }

func (m *MockStaffVerifier) Verify(username, password string) error {
	args := m.Called(username, password)
	return args.Error(0)
}

type MockPreferenceRepository struct{ mock.Mock }

func (m *MockPreferenceRepository) Theme(ctx context.Context) (preference.Theme, error) {
	args := m.Called(ctx)
	return args.Get(0).(preference.Theme), args.Error(1)
}

func (m *MockPreferenceRepository) SaveTheme(ctx context.Context, theme preference.Theme) error {
	args := m.Called(ctx, theme)
	return args.Error(0)
}

func mustIdentity(id string, role identity.Role) identity.Identity {
	who, err := identity.NewIdentity(id, role)
	if err != nil {
		panic(err)
	}
	return who
}

func mustToken(s string) kernel.Token {
	token, err := kernel.TokenFromString(s)
	if err != nil {
		panic(err)
	}
	return token
}
