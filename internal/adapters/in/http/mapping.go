package http

import (
	"parcelhub/internal/core/application/usecases/queries"
	"parcelhub/internal/core/domain/model/identity"
	"parcelhub/internal/core/domain/model/order"
	"parcelhub/internal/generated/servers"
)

func roleFromWire(r servers.Role) (identity.Role, error) {
	return identity.ParseRole(string(r))
}

func roleToWire(r identity.Role) servers.Role {
	return servers.Role(r.String())
}

func categoryFromWire(c servers.Category) (order.Category, error) {
	return order.ParseCategory(string(c))
}

func statusFromWire(s servers.OrderStatus) (order.Status, error) {
	return order.ParseStatus(string(s))
}

func orderToWire(o queries.GetVisibleOrdersQueryResponse) servers.Order {
	return servers.Order{
		Token:           o.Token,
		OwnerId:         o.OwnerID,
		SubmitterName:   o.SubmitterName,
		PhoneNumber:     o.PhoneNumber,
		ItemDescription: o.ItemDescription,
		Category:        servers.Category(o.Category.String()),
		Status:          servers.OrderStatus(o.Status.String()),
		StatusLabel:     o.Status.Label(),
		SubmittedAt:     o.SubmittedAt,
		PickedUpAt:      o.PickedUpAt,
	}
}

func domainOrderToWire(o *order.Order) servers.Order {
	return servers.Order{
		Token:           o.Token().String(),
		OwnerId:         o.OwnerID(),
		SubmitterName:   o.SubmitterName(),
		PhoneNumber:     o.PhoneNumber(),
		ItemDescription: o.ItemDescription(),
		Category:        servers.Category(o.Category().String()),
		Status:          servers.OrderStatus(o.Status().String()),
		StatusLabel:     o.Status().Label(),
		SubmittedAt:     o.SubmittedAt(),
		PickedUpAt:      o.PickedUpAt(),
	}
}
