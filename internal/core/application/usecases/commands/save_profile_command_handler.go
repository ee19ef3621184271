package commands

import (
	"context"

	"swiftgo/internal/core/domain/model/profile"
)

type SaveProfileCommandHandler struct {
	uowFactory ProfileUoWFactory
}

func NewSaveProfileCommandHandler(uowFactory ProfileUoWFactory) SaveProfileCommandHandler {
	return SaveProfileCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h *SaveProfileCommandHandler) Handle(ctx context.Context, cmd SaveProfileCommand) (profile.Profile, error) {
	if err := cmd.Validate(); err != nil {
		return profile.Profile{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return profile.Profile{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.ProfileRepository().Save(ctx, cmd.Profile()); err != nil {
		return profile.Profile{}, err
	}

	if err := uow.Commit(ctx); err != nil {
		return profile.Profile{}, err
	}

	return cmd.Profile(), nil
}
