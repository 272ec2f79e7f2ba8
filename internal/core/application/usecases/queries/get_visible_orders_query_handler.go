package queries

import (
	"context"

	"parcelhub/internal/core/domain/model/order"
)

type GetVisibleOrdersQueryHandler struct {
	orders VisibleOrdersReader
}

func NewGetVisibleOrdersQueryHandler(orders VisibleOrdersReader) GetVisibleOrdersQueryHandler {
	return GetVisibleOrdersQueryHandler{orders: orders}
}

// Handle returns ports.ErrNotSignedIn when nobody is signed in.
func (h GetVisibleOrdersQueryHandler) Handle(
	_ context.Context,
	query GetVisibleOrdersQuery,
) ([]GetVisibleOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	visible, err := h.orders.VisibleOrders()
	if err != nil {
		return nil, err
	}

	resp := make([]GetVisibleOrdersQueryResponse, 0, len(visible))
	for i := range visible {
		resp = append(resp, toVisibleOrder(&visible[i]))
	}
	return resp, nil
}

func toVisibleOrder(o *order.Order) GetVisibleOrdersQueryResponse {
	return GetVisibleOrdersQueryResponse{
		Token:           o.Token().String(),
		OwnerID:         o.OwnerID(),
		SubmitterName:   o.SubmitterName(),
		PhoneNumber:     o.PhoneNumber(),
		ItemDescription: o.ItemDescription(),
		Category:        o.Category(),
		Status:          o.Status(),
		SubmittedAt:     o.SubmittedAt(),
		PickedUpAt:      o.PickedUpAt(),
	}
}
