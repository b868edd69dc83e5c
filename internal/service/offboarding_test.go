package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/offboardhq/offboard-api/internal/core"
	"github.com/offboardhq/offboard-api/internal/data"
	"github.com/offboardhq/offboard-api/internal/domain/model"
	"github.com/offboardhq/offboard-api/internal/mocks"
)

var testCaller = core.Identity{TenantID: "t1", SessionID: "s1"}

// newOffboardingService creates a mock repository and service for testing.
func newOffboardingService(t *testing.T) (*mocks.MockOffboardingRepository, *OffboardingService) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	repo := mocks.NewMockOffboardingRepository(ctrl)
	service := NewOffboardingService(OffboardingServiceOptions{Repo: repo})
	return repo, service
}

func sampleRecord(id string) *model.ScheduledOffboarding {
	return &model.ScheduledOffboarding{
		ID:                id,
		TenantID:          "t1",
		SessionID:         "s1",
		CreatedBy:         "s1",
		UserID:            "u-1",
		ScheduledDate:     "2024-06-01",
		ScheduledTime:     "09:00",
		ScheduledDateTime: "2024-06-01T09:00:00Z",
		Template:          "standard",
		Status:            model.OffboardingScheduled,
		NotifyManager:     true,
		NotifyUser:        true,
		CreatedAt:         time.Now(),
		UpdatedAt:         time.Now(),
	}
}

func TestOffboardingService_List_Delegates(t *testing.T) {
	t.Parallel()
	repo, service := newOffboardingService(t)

	ctx := context.Background()
	expected := []*model.ScheduledOffboarding{sampleRecord("ob-1"), sampleRecord("ob-2")}

	repo.EXPECT().
		List(ctx, testCaller).
		Return(expected, nil).
		Times(1)

	got, err := service.List(ctx, testCaller)
	require.NoError(t, err)
	assert.Equal(t, expected, got)
}

func TestOffboardingService_ListWithOptions_Delegates(t *testing.T) {
	t.Parallel()
	repo, service := newOffboardingService(t)

	ctx := context.Background()
	status := model.OffboardingScheduled
	opts := model.OffboardingListOptions{Status: &status, Limit: 10}
	expected := []*model.ScheduledOffboarding{sampleRecord("ob-1")}

	repo.EXPECT().
		ListWithOptions(ctx, testCaller, opts).
		Return(expected, nil).
		Times(1)

	got, err := service.ListWithOptions(ctx, testCaller, opts)
	require.NoError(t, err)
	assert.Equal(t, expected, got)
}

func TestOffboardingService_Get_NotFoundBecomesNil(t *testing.T) {
	t.Parallel()
	repo, service := newOffboardingService(t)

	ctx := context.Background()
	repo.EXPECT().
		Get(ctx, "missing", testCaller).
		Return(nil, data.ErrOffboardingNotFound).
		Times(1)

	got, err := service.Get(ctx, "missing", testCaller)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestOffboardingService_Get_PassesThroughOtherErrors(t *testing.T) {
	t.Parallel()
	repo, service := newOffboardingService(t)

	ctx := context.Background()
	boom := errors.New("connection refused")
	repo.EXPECT().
		Get(ctx, "ob-1", testCaller).
		Return(nil, boom).
		Times(1)

	_, err := service.Get(ctx, "ob-1", testCaller)
	require.ErrorIs(t, err, boom)
}

func TestOffboardingService_Create_Delegates(t *testing.T) {
	t.Parallel()
	repo, service := newOffboardingService(t)

	ctx := context.Background()
	req := &model.CreateOffboardingRequest{
		UserID:        "u-1",
		ScheduledDate: "2024-06-01",
		ScheduledTime: "09:00",
	}
	expected := sampleRecord("ob-1")

	repo.EXPECT().
		Create(ctx, req, testCaller).
		Return(expected, nil).
		Times(1)

	got, err := service.Create(ctx, req, testCaller)
	require.NoError(t, err)
	assert.Equal(t, expected, got)
}

func TestOffboardingService_Update_NotFoundBecomesNil(t *testing.T) {
	t.Parallel()
	repo, service := newOffboardingService(t)

	ctx := context.Background()
	msg := "bye"
	req := model.UpdateOffboardingRequest{CustomMessage: &msg}

	repo.EXPECT().
		Update(ctx, "missing", req, testCaller).
		Return(nil, data.ErrOffboardingNotFound).
		Times(1)

	got, err := service.Update(ctx, "missing", req, testCaller)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestOffboardingService_Remove_Delegates(t *testing.T) {
	t.Parallel()
	repo, service := newOffboardingService(t)

	ctx := context.Background()
	repo.EXPECT().
		Remove(ctx, "ob-1", testCaller).
		Return(true, nil).
		Times(1)

	deleted, err := service.Remove(ctx, "ob-1", testCaller)
	require.NoError(t, err)
	assert.True(t, deleted)
}

func TestOffboardingService_Execute_NotFoundBecomesNil(t *testing.T) {
	t.Parallel()
	repo, service := newOffboardingService(t)

	ctx := context.Background()
	repo.EXPECT().
		Execute(ctx, "missing", testCaller).
		Return(nil, data.ErrOffboardingNotFound).
		Times(1)

	got, err := service.Execute(ctx, "missing", testCaller)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestOffboardingService_Execute_ReturnsRecord(t *testing.T) {
	t.Parallel()
	repo, service := newOffboardingService(t)

	ctx := context.Background()
	now := time.Now()
	expected := sampleRecord("ob-1")
	expected.Status = model.OffboardingCompleted
	expected.ExecutedAt = &now

	repo.EXPECT().
		Execute(ctx, "ob-1", testCaller).
		Return(expected, nil).
		Times(1)

	got, err := service.Execute(ctx, "ob-1", testCaller)
	require.NoError(t, err)
	assert.Equal(t, expected, got)
}
