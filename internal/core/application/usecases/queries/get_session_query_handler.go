package queries

import (
	"context"

	"parcelhub/internal/core/ports"
)

type GetSessionQueryHandler struct {
	identities IdentityReader
}

func NewGetSessionQueryHandler(identities IdentityReader) GetSessionQueryHandler {
	return GetSessionQueryHandler{identities: identities}
}

// Handle returns ports.ErrNotSignedIn when nobody is signed in.
func (h GetSessionQueryHandler) Handle(_ context.Context, query GetSessionQuery) (GetSessionQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetSessionQueryResponse{}, err
	}

	who, ok := h.identities.ActiveIdentity()
	if !ok {
		return GetSessionQueryResponse{}, ports.ErrNotSignedIn
	}

	return GetSessionQueryResponse{
		ID:   who.ID(),
		Role: who.Role(),
	}, nil
}
