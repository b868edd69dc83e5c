package service

import (
	"context"
	"errors"

	"github.com/offboardhq/offboard-api/internal/core"
	"github.com/offboardhq/offboard-api/internal/data"
	"github.com/offboardhq/offboard-api/internal/domain/model"
)

// OffboardingServiceOptions groups dependencies for OffboardingService.
type OffboardingServiceOptions struct {
	Repo core.OffboardingRepository
}

// OffboardingService is the web-tier facade over the record store. It keeps
// the repository's ownership semantics intact and translates the not-found
// sentinel into a nil record, matching what the HTTP layer serializes as null.
type OffboardingService struct {
	repo core.OffboardingRepository
}

// NewOffboardingService constructs a new OffboardingService.
func NewOffboardingService(opts OffboardingServiceOptions) *OffboardingService {
	return &OffboardingService{repo: opts.Repo}
}

// List returns all offboardings visible to the caller, ordered by scheduled
// datetime ascending.
func (s *OffboardingService) List(
	ctx context.Context,
	id core.Identity,
) ([]*model.ScheduledOffboarding, error) {
	return s.repo.List(ctx, id)
}

// ListWithOptions returns offboardings with an optional status filter and paging.
func (s *OffboardingService) ListWithOptions(
	ctx context.Context,
	id core.Identity,
	opts model.OffboardingListOptions,
) ([]*model.ScheduledOffboarding, error) {
	return s.repo.ListWithOptions(ctx, id, opts)
}

// Get returns the record, or nil when it does not exist for this caller.
func (s *OffboardingService) Get(
	ctx context.Context,
	recordID string,
	id core.Identity,
) (*model.ScheduledOffboarding, error) {
	rec, err := s.repo.Get(ctx, recordID, id)
	if errors.Is(err, data.ErrOffboardingNotFound) {
		return nil, nil
	}
	return rec, err
}

// Create schedules a new offboarding and returns the normalized record.
func (s *OffboardingService) Create(
	ctx context.Context,
	req *model.CreateOffboardingRequest,
	id core.Identity,
) (*model.ScheduledOffboarding, error) {
	return s.repo.Create(ctx, req, id)
}

// Update mutates allow-listed fields; returns nil when the record does not
// exist for this caller.
func (s *OffboardingService) Update(
	ctx context.Context,
	recordID string,
	req model.UpdateOffboardingRequest,
	id core.Identity,
) (*model.ScheduledOffboarding, error) {
	rec, err := s.repo.Update(ctx, recordID, req, id)
	if errors.Is(err, data.ErrOffboardingNotFound) {
		return nil, nil
	}
	return rec, err
}

// Remove deletes the record; false means nothing visible matched.
func (s *OffboardingService) Remove(
	ctx context.Context,
	recordID string,
	id core.Identity,
) (bool, error) {
	return s.repo.Remove(ctx, recordID, id)
}

// Execute marks the record completed and stamps executed_at; returns nil when
// the record does not exist for this caller. Re-executing a completed record
// re-stamps executed_at.
func (s *OffboardingService) Execute(
	ctx context.Context,
	recordID string,
	id core.Identity,
) (*model.ScheduledOffboarding, error) {
	rec, err := s.repo.Execute(ctx, recordID, id)
	if errors.Is(err, data.ErrOffboardingNotFound) {
		return nil, nil
	}
	return rec, err
}
