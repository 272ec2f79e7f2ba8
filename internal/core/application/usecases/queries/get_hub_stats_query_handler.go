package queries

import (
	"context"

	"parcelhub/internal/core/domain/model/order"
)

type GetHubStatsQueryHandler struct {
	orders AllOrdersReader
}

func NewGetHubStatsQueryHandler(orders AllOrdersReader) GetHubStatsQueryHandler {
	return GetHubStatsQueryHandler{orders: orders}
}

func (h GetHubStatsQueryHandler) Handle(_ context.Context, query GetHubStatsQuery) (GetHubStatsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetHubStatsQueryResponse{}, err
	}

	var stats GetHubStatsQueryResponse
	for _, o := range h.orders.Orders() {
		stats.Total++
		switch o.Status() {
		case order.Pending:
			stats.Pending++
		case order.ReachedHub:
			stats.ReachedHub++
		case order.PickedUp:
			stats.PickedUp++
		case order.Unknown:
		}
	}
	return stats, nil
}
