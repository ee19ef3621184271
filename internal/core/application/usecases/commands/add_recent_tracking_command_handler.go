package commands

import (
	"context"
)

// AddRecentTrackingCommandHandler puts a number at the front of the recent
// tracking list. Numbers already in the list leave it untouched.
type AddRecentTrackingCommandHandler struct {
	uowFactory TrackingUoWFactory
}

func NewAddRecentTrackingCommandHandler(uowFactory TrackingUoWFactory) AddRecentTrackingCommandHandler {
	return AddRecentTrackingCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle returns the list after the change, newest first.
func (h *AddRecentTrackingCommandHandler) Handle(ctx context.Context, cmd AddRecentTrackingCommand) ([]string, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.TrackingRepository()
	recent, err := repo.Get(ctx)
	if err != nil {
		return nil, err
	}

	changed, err := recent.Add(cmd.Number())
	if err != nil {
		return nil, err
	}
	if !changed {
		return recent.Numbers(), nil
	}

	if err = repo.Save(ctx, recent); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return recent.Numbers(), nil
}
