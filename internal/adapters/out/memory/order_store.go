// Package memory provides the in-process OrderStore holding the hub's orders and
// the signed-in identity for the lifetime of the process.
package memory

import (
	"fmt"
	"slices"
	"sync"
	"time"

	"parcelhub/internal/core/domain/model/identity"
	"parcelhub/internal/core/domain/model/kernel"
	"parcelhub/internal/core/domain/model/order"
	"parcelhub/internal/core/ports"
	"parcelhub/internal/pkg/errs"
)

var _ ports.OrderStore = (*OrderStore)(nil)

// OrderStore implements ports.OrderStore over a slice kept newest first and a
// token index. A RWMutex makes each operation atomic for concurrent readers.
type OrderStore struct {
	mu sync.RWMutex

	orders  []*order.Order
	byToken map[string]*order.Order

	active   identity.Identity
	signedIn bool

	tokens kernel.TokenGenerator
	now    func() time.Time
}

// Option configures an OrderStore.
type Option func(*OrderStore)

// WithClock sets the clock used for submission and pickup times.
func WithClock(now func() time.Time) Option {
	return func(s *OrderStore) {
		s.now = now
	}
}

// WithTokenGenerator sets the generator for new order tokens. Share it with
// whatever builds seed orders so their tokens cannot collide.
func WithTokenGenerator(tokens kernel.TokenGenerator) Option {
	return func(s *OrderStore) {
		s.tokens = tokens
	}
}

// NewOrderStore creates an empty store with nobody signed in.
func NewOrderStore(opts ...Option) *OrderStore {
	s := &OrderStore{
		byToken: make(map[string]*order.Order),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.tokens == nil {
		s.tokens = kernel.NewMonotonicTokenGenerator(s.now)
	}
	return s
}

// Seed appends existing orders, given newest first, behind the ones already held.
// Nothing is added if any order is invalid or repeats a token.
func (s *OrderStore) Seed(orders ...*order.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	seen := make(map[string]struct{}, len(orders))
	for _, o := range orders {
		if err := o.Validate(); err != nil {
			return err
		}
		key := o.Token().String()
		if _, dup := s.byToken[key]; dup {
			return duplicateTokenError(o.Token())
		}
		if _, dup := seen[key]; dup {
			return duplicateTokenError(o.Token())
		}
		seen[key] = struct{}{}
	}

	for _, o := range orders {
		s.orders = append(s.orders, o)
		s.byToken[o.Token().String()] = o
	}
	return nil
}

func (s *OrderStore) SignIn(id string, role identity.Role) error {
	who, err := identity.NewIdentity(id, role)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.active = who
	s.signedIn = true
	return nil
}

func (s *OrderStore) SignOut() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.active = identity.Identity{}
	s.signedIn = false
}

func (s *OrderStore) ActiveIdentity() (identity.Identity, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.active, s.signedIn
}

func (s *OrderStore) CreateOrder(
	ownerID, submitterName, phoneNumber, itemDescription string,
	category order.Category,
) (order.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.signedIn {
		return order.Order{}, ports.ErrNotSignedIn
	}

	token := s.tokens.Next()
	if _, dup := s.byToken[token.String()]; dup {
		return order.Order{}, duplicateTokenError(token)
	}

	o, err := order.NewOrder(token, ownerID, submitterName, phoneNumber, itemDescription, category, s.now())
	if err != nil {
		return order.Order{}, err
	}

	s.orders = slices.Insert(s.orders, 0, o)
	s.byToken[token.String()] = o
	return *o, nil
}

func (s *OrderStore) UpdateStatus(token kernel.Token, status order.Status) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.signedIn {
		return ports.ErrNotSignedIn
	}
	if err := status.Validate(); err != nil {
		return err
	}

	o, ok := s.byToken[token.String()]
	if !ok {
		return errs.NewObjectNotFoundError("token", token.String())
	}
	return o.ChangeStatus(status, s.now())
}

func (s *OrderStore) Orders() []order.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return snapshot(s.orders, nil)
}

func (s *OrderStore) OrdersOwnedBy(ownerID string) []order.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return snapshot(s.orders, func(o *order.Order) bool { return o.IsOwnedBy(ownerID) })
}

func (s *OrderStore) VisibleOrders() ([]order.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.signedIn {
		return nil, ports.ErrNotSignedIn
	}
	if s.active.IsStaff() {
		return snapshot(s.orders, nil), nil
	}
	ownerID := s.active.ID()
	return snapshot(s.orders, func(o *order.Order) bool { return o.IsOwnedBy(ownerID) }), nil
}

// snapshot copies the orders accepted by keep (all when keep is nil), preserving order.
func snapshot(orders []*order.Order, keep func(*order.Order) bool) []order.Order {
	out := make([]order.Order, 0, len(orders))
	for _, o := range orders {
		if keep == nil || keep(o) {
			out = append(out, *o)
		}
	}
	return out
}

func duplicateTokenError(token kernel.Token) error {
	return errs.NewValueIsInvalidErrorWithCause("token", fmt.Errorf("%s is already registered", token))
}
