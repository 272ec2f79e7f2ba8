package memory

import (
	"time"

	"parcelhub/internal/core/domain/model/kernel"
	"parcelhub/internal/core/domain/model/order"
)

// DemoOrders builds the two sample parcels shown on a fresh hub, newest first:
// Bob's food order still pending and Alice's book already at the hub.
func DemoOrders(now time.Time, tokens kernel.TokenGenerator) ([]*order.Order, error) {
	alice, err := order.RestoreOrder(tokens.Next(), "S001", "Alice Johnson", "555-0101", "Amazon Book",
		order.Shopping, order.ReachedHub, now.Add(-24*time.Hour), nil)
	if err != nil {
		return nil, err
	}

	bob, err := order.RestoreOrder(tokens.Next(), "S002", "Bob Williams", "555-0102", "Pizza Hut",
		order.Food, order.Pending, now.Add(-time.Hour), nil)
	if err != nil {
		return nil, err
	}

	return []*order.Order{bob, alice}, nil
}
