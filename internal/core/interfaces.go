package core

import (
	"context"
	"strings"

	"github.com/offboardhq/offboard-api/internal/domain/model"
	apperrors "github.com/offboardhq/offboard-api/internal/errors"
)

// This file contains repository interface definitions (ports in hexagonal architecture).
// These interfaces define the contracts between the service layer and data layer.
// Service implementations should depend on these interfaces, not concrete implementations.

// Identity is the caller's tenant/session pair as established by the web
// tier. This layer does not verify it; it only scopes every row operation
// with it. A forged identity is indistinguishable from "no matching rows".
type Identity struct {
	TenantID  string
	SessionID string
}

// Validate fails fast when either key is missing, before any query is issued.
func (id Identity) Validate() error {
	if strings.TrimSpace(id.TenantID) == "" {
		return apperrors.ValidationField("tenantId", "tenantId is required")
	}
	if strings.TrimSpace(id.SessionID) == "" {
		return apperrors.ValidationField("sessionId", "sessionId is required")
	}
	return nil
}

// OffboardingRepository defines the interface for scheduled offboarding data
// operations. Every method applies the ownership filter
// (tenant_id match) AND (session_id match OR created_by match).
type OffboardingRepository interface {
	List(ctx context.Context, id Identity) ([]*model.ScheduledOffboarding, error)
	ListWithOptions(ctx context.Context, id Identity, opts model.OffboardingListOptions) ([]*model.ScheduledOffboarding, error)
	Get(ctx context.Context, recordID string, id Identity) (*model.ScheduledOffboarding, error)
	Create(ctx context.Context, req *model.CreateOffboardingRequest, id Identity) (*model.ScheduledOffboarding, error)
	Update(ctx context.Context, recordID string, req model.UpdateOffboardingRequest, id Identity) (*model.ScheduledOffboarding, error)
	Remove(ctx context.Context, recordID string, id Identity) (bool, error)
	Execute(ctx context.Context, recordID string, id Identity) (*model.ScheduledOffboarding, error)
}

// SessionStore defines the interface for session persistence.
type SessionStore interface {
	Save(ctx context.Context, sess model.Session) error
	Get(ctx context.Context, sid string) (model.Session, error)
	Delete(ctx context.Context, sid string) error
}

// SessionPruner is implemented by stores that need periodic cleanup of
// expired sessions (the Postgres store; Redis expires keys itself).
type SessionPruner interface {
	Prune(ctx context.Context) (int64, error)
}
