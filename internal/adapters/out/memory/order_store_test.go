package memory_test

import (
	"sync"
	"testing"
	"time"

	"parcelhub/internal/adapters/out/memory"
	"parcelhub/internal/core/domain/model/identity"
	"parcelhub/internal/core/domain/model/kernel"
	"parcelhub/internal/core/domain/model/order"
	"parcelhub/internal/core/ports"
	"parcelhub/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

type OrderStoreTestSuite struct {
	suite.Suite
	clock *fakeClock
	store *memory.OrderStore
}

func TestOrderStoreTestSuite(t *testing.T) {
	suite.Run(t, new(OrderStoreTestSuite))
}

func (suite *OrderStoreTestSuite) SetupTest() {
	suite.clock = &fakeClock{now: time.Date(2025, time.May, 5, 10, 0, 0, 0, time.UTC)}
	suite.store = memory.NewOrderStore(memory.WithClock(suite.clock.Now))
}

func (suite *OrderStoreTestSuite) signIn(id string, role identity.Role) {
	suite.Require().NoError(suite.store.SignIn(id, role))
}

func (suite *OrderStoreTestSuite) createOrder(ownerID, item string) order.Order {
	o, err := suite.store.CreateOrder(ownerID, "Name "+ownerID, "555-0000", item, order.Courier)
	suite.Require().NoError(err)
	return o
}

func (suite *OrderStoreTestSuite) TestNewStore_IsEmptyAndSignedOut() {
	_, ok := suite.store.ActiveIdentity()

	suite.False(ok)
	suite.Empty(suite.store.Orders())
}

func (suite *OrderStoreTestSuite) TestSignIn_ReplacesActiveIdentity() {
	suite.signIn("S001", identity.Student)
	suite.signIn("admin", identity.Staff)

	who, ok := suite.store.ActiveIdentity()

	suite.True(ok)
	suite.Equal("admin", who.ID())
	suite.Equal(identity.Staff, who.Role())
}

func (suite *OrderStoreTestSuite) TestSignIn_RejectsEmptyID() {
	err := suite.store.SignIn("", identity.Student)

	suite.Require().ErrorIs(err, errs.ErrValueIsRequired)
	_, ok := suite.store.ActiveIdentity()
	suite.False(ok)
}

func (suite *OrderStoreTestSuite) TestSignOut_IsIdempotent() {
	suite.signIn("S001", identity.Student)

	suite.store.SignOut()
	suite.store.SignOut()

	_, ok := suite.store.ActiveIdentity()
	suite.False(ok)
}

func (suite *OrderStoreTestSuite) TestCreateOrder_RequiresSignIn() {
	_, err := suite.store.CreateOrder("S001", "Alice", "555", "Book", order.Shopping)

	suite.Require().ErrorIs(err, ports.ErrNotSignedIn)
	suite.Empty(suite.store.Orders())
}

func (suite *OrderStoreTestSuite) TestCreateOrder_SetsInitialState() {
	suite.signIn("S010", identity.Student)

	created, err := suite.store.CreateOrder("S010", "Carol", "555-9999", "Textbook", order.Shopping)

	suite.Require().NoError(err)
	suite.NoError(created.Token().Validate())
	suite.Equal("S010", created.OwnerID())
	suite.Equal("Carol", created.SubmitterName())
	suite.Equal("555-9999", created.PhoneNumber())
	suite.Equal("Textbook", created.ItemDescription())
	suite.Equal(order.Shopping, created.Category())
	suite.Equal(order.Pending, created.Status())
	suite.Equal(suite.clock.Now(), created.SubmittedAt())
	suite.Nil(created.PickedUpAt())
}

func (suite *OrderStoreTestSuite) TestCreateOrder_AcceptsEmptyFields() {
	suite.signIn("admin", identity.Staff)

	created, err := suite.store.CreateOrder("", "", "", "", order.Food)

	suite.Require().NoError(err)
	suite.Empty(created.OwnerID())
	suite.Len(suite.store.Orders(), 1)
}

func (suite *OrderStoreTestSuite) TestCreateOrder_TokensAreUniqueWithinOneClockTick() {
	suite.signIn("S001", identity.Student)

	seen := make(map[string]struct{})
	for range 200 {
		created := suite.createOrder("S001", "item")
		seen[created.Token().String()] = struct{}{}
	}

	suite.Len(seen, 200)
}

func (suite *OrderStoreTestSuite) TestCreateOrder_NewestFirst() {
	suite.signIn("S001", identity.Student)
	a := suite.createOrder("S001", "A")
	b := suite.createOrder("S001", "B")

	orders := suite.store.Orders()

	suite.Require().Len(orders, 2)
	suite.True(orders[0].Token().IsEqual(b.Token()))
	suite.True(orders[1].Token().IsEqual(a.Token()))
}

func (suite *OrderStoreTestSuite) TestUpdateStatus_PickedUpStampsTime() {
	suite.signIn("S010", identity.Student)
	created := suite.createOrder("S010", "Textbook")
	suite.clock.Advance(time.Hour)

	err := suite.store.UpdateStatus(created.Token(), order.PickedUp)

	suite.Require().NoError(err)
	got := suite.store.Orders()[0]
	suite.Equal(order.PickedUp, got.Status())
	suite.Require().NotNil(got.PickedUpAt())
	suite.Equal(suite.clock.Now(), *got.PickedUpAt())
	suite.False(got.PickedUpAt().Before(got.SubmittedAt()))
}

func (suite *OrderStoreTestSuite) TestUpdateStatus_RepeatedPickupRefreshesTime() {
	suite.signIn("admin", identity.Staff)
	created := suite.createOrder("S010", "Textbook")
	suite.Require().NoError(suite.store.UpdateStatus(created.Token(), order.PickedUp))
	suite.clock.Advance(30 * time.Minute)

	suite.Require().NoError(suite.store.UpdateStatus(created.Token(), order.PickedUp))

	suite.Equal(suite.clock.Now(), *suite.store.Orders()[0].PickedUpAt())
}

func (suite *OrderStoreTestSuite) TestUpdateStatus_MovingBackKeepsPickupTime() {
	suite.signIn("admin", identity.Staff)
	created := suite.createOrder("S010", "Textbook")
	suite.Require().NoError(suite.store.UpdateStatus(created.Token(), order.PickedUp))
	pickedAt := suite.clock.Now()
	suite.clock.Advance(time.Hour)

	suite.Require().NoError(suite.store.UpdateStatus(created.Token(), order.Pending))

	got := suite.store.Orders()[0]
	suite.Equal(order.Pending, got.Status())
	suite.Require().NotNil(got.PickedUpAt())
	suite.Equal(pickedAt, *got.PickedUpAt())
}

func (suite *OrderStoreTestSuite) TestUpdateStatus_UnknownTokenChangesNothing() {
	suite.signIn("admin", identity.Staff)
	suite.createOrder("S001", "A")
	suite.createOrder("S002", "B")
	before := suite.store.Orders()
	unknown, err := kernel.TokenFromString("nonexistent-token")
	suite.Require().NoError(err)

	err = suite.store.UpdateStatus(unknown, order.PickedUp)

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
	suite.Equal(before, suite.store.Orders())
}

func (suite *OrderStoreTestSuite) TestUpdateStatus_InvalidStatusChangesNothing() {
	suite.signIn("admin", identity.Staff)
	created := suite.createOrder("S001", "A")

	err := suite.store.UpdateStatus(created.Token(), order.Unknown)

	suite.Require().ErrorIs(err, errs.ErrValueIsInvalid)
	suite.Equal(order.Pending, suite.store.Orders()[0].Status())
}

func (suite *OrderStoreTestSuite) TestUpdateStatus_RequiresSignIn() {
	suite.signIn("admin", identity.Staff)
	created := suite.createOrder("S001", "A")
	suite.store.SignOut()

	err := suite.store.UpdateStatus(created.Token(), order.ReachedHub)

	suite.Require().ErrorIs(err, ports.ErrNotSignedIn)
	suite.Equal(order.Pending, suite.store.Orders()[0].Status())
}

func (suite *OrderStoreTestSuite) TestSnapshotsDoNotGoStale() {
	suite.signIn("admin", identity.Staff)
	created := suite.createOrder("S001", "A")
	snapshot := suite.store.Orders()

	suite.Require().NoError(suite.store.UpdateStatus(created.Token(), order.ReachedHub))

	suite.Equal(order.Pending, snapshot[0].Status(), "earlier snapshot is a copy")
	suite.Equal(order.ReachedHub, suite.store.Orders()[0].Status(), "new read sees the update")
}

func (suite *OrderStoreTestSuite) TestProjections_TwoStudents() {
	suite.signIn("S001", identity.Student)
	first := suite.createOrder("S001", "A")
	suite.signIn("S002", identity.Student)
	second := suite.createOrder("S002", "B")

	suite.signIn("admin", identity.Staff)
	staffView, err := suite.store.VisibleOrders()
	suite.Require().NoError(err)
	suite.Len(staffView, 2)

	suite.signIn("S001", identity.Student)
	s1View, err := suite.store.VisibleOrders()
	suite.Require().NoError(err)
	suite.Require().Len(s1View, 1)
	suite.True(s1View[0].Token().IsEqual(first.Token()))

	suite.signIn("S002", identity.Student)
	s2View, err := suite.store.VisibleOrders()
	suite.Require().NoError(err)
	suite.Require().Len(s2View, 1)
	suite.True(s2View[0].Token().IsEqual(second.Token()))
}

func (suite *OrderStoreTestSuite) TestProjections_StudentViewKeepsStoreOrder() {
	suite.signIn("S001", identity.Student)
	a := suite.createOrder("S001", "A")
	suite.createOrder("S002", "other")
	c := suite.createOrder("S001", "C")

	owned := suite.store.OrdersOwnedBy("S001")

	suite.Require().Len(owned, 2)
	suite.True(owned[0].Token().IsEqual(c.Token()))
	suite.True(owned[1].Token().IsEqual(a.Token()))
	suite.Empty(suite.store.OrdersOwnedBy("S999"))
}

func (suite *OrderStoreTestSuite) TestVisibleOrders_RequiresSignIn() {
	_, err := suite.store.VisibleOrders()

	suite.Require().ErrorIs(err, ports.ErrNotSignedIn)
}

func (suite *OrderStoreTestSuite) TestScenario_StudentRegistersAndStaffHandsOver() {
	suite.signIn("S010", identity.Student)
	created, err := suite.store.CreateOrder("S010", "Carol", "555-9999", "Textbook", order.Shopping)
	suite.Require().NoError(err)

	view, err := suite.store.VisibleOrders()
	suite.Require().NoError(err)
	suite.Require().NotEmpty(view)
	suite.True(view[0].Token().IsEqual(created.Token()))
	suite.Equal(order.Pending, view[0].Status())
	suite.Nil(view[0].PickedUpAt())

	suite.clock.Advance(2 * time.Hour)
	suite.signIn("admin", identity.Staff)
	suite.Require().NoError(suite.store.UpdateStatus(created.Token(), order.PickedUp))

	suite.signIn("S010", identity.Student)
	view, err = suite.store.VisibleOrders()
	suite.Require().NoError(err)
	suite.Equal(order.PickedUp, view[0].Status())
	suite.Require().NotNil(view[0].PickedUpAt())
	suite.False(view[0].PickedUpAt().Before(view[0].SubmittedAt()))
}

func (suite *OrderStoreTestSuite) TestSeed_AppendsBehindExistingOrders() {
	tokens := kernel.NewMonotonicTokenGenerator(suite.clock.Now)
	store := memory.NewOrderStore(memory.WithClock(suite.clock.Now), memory.WithTokenGenerator(tokens))
	demo, err := memory.DemoOrders(suite.clock.Now(), tokens)
	suite.Require().NoError(err)

	suite.Require().NoError(store.Seed(demo...))
	suite.Require().NoError(store.SignIn("S003", identity.Student))
	created, err := store.CreateOrder("S003", "Dan", "555-0103", "Charger", order.Courier)
	suite.Require().NoError(err)

	orders := store.Orders()
	suite.Require().Len(orders, 3)
	suite.True(orders[0].Token().IsEqual(created.Token()))
	suite.Equal("S002", orders[1].OwnerID())
	suite.Equal(order.Pending, orders[1].Status())
	suite.Equal("S001", orders[2].OwnerID())
	suite.Equal(order.ReachedHub, orders[2].Status())
}

func (suite *OrderStoreTestSuite) TestSeed_RejectsDuplicateTokens() {
	token, _ := kernel.TokenFromString("T1")
	at := suite.clock.Now()
	a, err := order.NewOrder(token, "S001", "A", "1", "x", order.Food, at)
	suite.Require().NoError(err)
	b, err := order.NewOrder(token, "S002", "B", "2", "y", order.Food, at)
	suite.Require().NoError(err)

	err = suite.store.Seed(a, b)

	suite.Require().ErrorIs(err, errs.ErrValueIsInvalid)
	suite.Empty(suite.store.Orders())
}

func (suite *OrderStoreTestSuite) TestSeed_RejectsUnconstructedOrders() {
	err := suite.store.Seed(&order.Order{})

	suite.Require().ErrorIs(err, order.ErrOrderIsNotConstructed)
}

type constantTokens struct{ token kernel.Token }

func (c constantTokens) Next() kernel.Token { return c.token }

func (suite *OrderStoreTestSuite) TestCreateOrder_RejectsTokenCollision() {
	token, _ := kernel.TokenFromString("T5")
	store := memory.NewOrderStore(memory.WithTokenGenerator(constantTokens{token: token}))
	suite.Require().NoError(store.SignIn("S001", identity.Student))
	_, err := store.CreateOrder("S001", "A", "1", "x", order.Food)
	suite.Require().NoError(err)

	_, err = store.CreateOrder("S001", "B", "2", "y", order.Food)

	suite.Require().ErrorIs(err, errs.ErrValueIsInvalid)
	suite.Len(store.Orders(), 1)
}

func (suite *OrderStoreTestSuite) TestConcurrentCreateAndUpdate() {
	suite.signIn("admin", identity.Staff)
	const writers, perWriter = 8, 50

	var wg sync.WaitGroup
	for range writers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range perWriter {
				created, err := suite.store.CreateOrder("S001", "A", "1", "x", order.Food)
				if !suite.NoError(err) {
					return
				}
				suite.NoError(suite.store.UpdateStatus(created.Token(), order.ReachedHub))
				_ = suite.store.Orders()
			}
		}()
	}
	wg.Wait()

	orders := suite.store.Orders()
	suite.Len(orders, writers*perWriter)
	seen := make(map[string]struct{}, len(orders))
	for _, o := range orders {
		seen[o.Token().String()] = struct{}{}
		suite.Equal(order.ReachedHub, o.Status())
	}
	suite.Len(seen, writers*perWriter)
}
