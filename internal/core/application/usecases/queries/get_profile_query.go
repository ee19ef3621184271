package queries

import (
	"context"
	"errors"

	"swiftgo/internal/core/domain/model/profile"
	"swiftgo/internal/pkg/guard"
)

var ErrGetProfileQueryIsNotConstructed = errors.New(
	"GetProfileQuery must be created via NewGetProfileQuery constructor",
)

type GetProfileQuery struct {
	guard guard.ConstructorGuard
}

func NewGetProfileQuery() GetProfileQuery {
	return GetProfileQuery{guard: guard.NewConstructorGuard()}
}

func (q GetProfileQuery) Validate() error {
	return q.guard.Validate(ErrGetProfileQueryIsNotConstructed)
}

type GetProfileQueryHandler struct {
	readers ProfileReaderFactory
}

func NewGetProfileQueryHandler(readers ProfileReaderFactory) GetProfileQueryHandler {
	return GetProfileQueryHandler{readers: readers}
}

func (h GetProfileQueryHandler) Handle(ctx context.Context, query GetProfileQuery) (profile.Profile, error) {
	if err := query.Validate(); err != nil {
		return profile.Profile{}, err
	}
	return h.readers.Create().ProfileRepository().Get(ctx)
}
