//revive:disable-next-line:var-naming // legacy package name widely used across the project
package model

import (
	"errors"
	"strings"
	"time"
)

// OffboardingTemplateDefault is applied when no template is requested.
const OffboardingTemplateDefault = "standard"

// OffboardingStatus is the lifecycle state of a scheduled offboarding.
type OffboardingStatus string

const (
	// OffboardingScheduled is the initial state of every record.
	OffboardingScheduled OffboardingStatus = "scheduled"
	// OffboardingCompleted is reached only via Execute and is terminal.
	OffboardingCompleted OffboardingStatus = "completed"
)

// Valid reports whether the status is supported.
func (s OffboardingStatus) Valid() bool {
	switch s {
	case OffboardingScheduled, OffboardingCompleted:
		return true
	default:
		return false
	}
}

// ScheduledOffboarding represents a pending or completed employee
// offboarding record. Rows are scoped to a tenant and visible only to the
// session that created them (or a caller presenting that same session id).
type ScheduledOffboarding struct {
	ID              string `json:"id"              db:"id"`
	TenantID        string `json:"tenantId"        db:"tenant_id"`
	SessionID       string `json:"sessionId"       db:"session_id"`
	CreatedBy       string `json:"createdBy"       db:"created_by"`
	UserID          string `json:"userId"          db:"user_id"`
	UserDisplayName string `json:"userDisplayName" db:"user_display_name"`
	UserEmail       string `json:"userEmail"       db:"user_email"`
	ScheduledDate   string `json:"scheduledDate"   db:"scheduled_date"`
	ScheduledTime   string `json:"scheduledTime"   db:"scheduled_time"`
	// ScheduledDateTime is the naive concatenation of date and time with an
	// assumed UTC suffix; it is not timezone-normalized.
	ScheduledDateTime string            `json:"scheduledDateTime"     db:"scheduled_date_time"`
	Template          string            `json:"template"              db:"template"`
	Status            OffboardingStatus `json:"status"                db:"status"`
	ManagerEmail      *string           `json:"managerEmail,omitempty" db:"manager_email"`
	NotifyManager     bool              `json:"notifyManager"         db:"notify_manager"`
	NotifyUser        bool              `json:"notifyUser"            db:"notify_user"`
	CustomMessage     *string           `json:"customMessage,omitempty" db:"custom_message"`
	CreatedAt         time.Time         `json:"createdAt"             db:"created_at"`
	ExecutedAt        *time.Time        `json:"executedAt,omitempty"  db:"executed_at"`
	UpdatedAt         time.Time         `json:"updatedAt"             db:"updated_at"`
}

// SubjectUser is the optional nested user object accepted by the web tier.
// Field names mirror the directory payload it is copied from.
type SubjectUser struct {
	ID          string `json:"id"`
	DisplayName string `json:"displayName"`
	Mail        string `json:"mail"`
}

// CreateOffboardingRequest represents parameters to schedule an offboarding.
// The subject user may arrive as the nested User object, as flat fields, or
// both; flat fields win and User fills in the blanks.
type CreateOffboardingRequest struct {
	User              *SubjectUser `json:"user,omitempty"`
	UserID            string       `json:"userId,omitempty"`
	UserDisplayName   string       `json:"userDisplayName,omitempty"`
	UserEmail         string       `json:"userEmail,omitempty"`
	ScheduledDate     string       `json:"scheduledDate"`
	ScheduledTime     string       `json:"scheduledTime"`
	ScheduledDateTime string       `json:"scheduledDateTime,omitempty"`
	Template          string       `json:"template,omitempty"`
	ManagerEmail      *string      `json:"managerEmail,omitempty"`
	NotifyManager     *bool        `json:"notifyManager,omitempty"`
	NotifyUser        *bool        `json:"notifyUser,omitempty"`
	CustomMessage     *string      `json:"customMessage,omitempty"`
}

// UpdateOffboardingRequest represents parameters to update an offboarding.
// The field set is the full mutation allow-list: status, the subject user,
// and the ownership keys are deliberately absent and cannot be changed here.
type UpdateOffboardingRequest struct {
	ScheduledDate     *string `json:"scheduledDate,omitempty"`
	ScheduledTime     *string `json:"scheduledTime,omitempty"`
	ScheduledDateTime *string `json:"scheduledDateTime,omitempty"`
	Template          *string `json:"template,omitempty"`
	ManagerEmail      *string `json:"managerEmail,omitempty"`
	NotifyManager     *bool   `json:"notifyManager,omitempty"`
	NotifyUser        *bool   `json:"notifyUser,omitempty"`
	CustomMessage     *string `json:"customMessage,omitempty"`
}

// OffboardingListOptions controls filtering for listing offboardings.
// Notes:
// - Status matches exactly when set.
// - Limit/Offset page the result; zero values mean "no paging".
type OffboardingListOptions struct {
	Status *OffboardingStatus
	Limit  int
	Offset int
}

// Normalize resolves the subject user fields and derived datetime, and
// applies defaults. It is called by Validate and is safe to call repeatedly.
func (r *CreateOffboardingRequest) Normalize() {
	if r.User != nil {
		if r.UserID == "" {
			r.UserID = r.User.ID
		}
		if r.UserDisplayName == "" {
			r.UserDisplayName = r.User.DisplayName
		}
		if r.UserEmail == "" {
			r.UserEmail = r.User.Mail
		}
	}
	r.ScheduledDate = strings.TrimSpace(r.ScheduledDate)
	r.ScheduledTime = strings.TrimSpace(r.ScheduledTime)
	if r.ScheduledDateTime == "" {
		r.ScheduledDateTime = DeriveScheduledDateTime(r.ScheduledDate, r.ScheduledTime)
	}
	if strings.TrimSpace(r.Template) == "" {
		r.Template = OffboardingTemplateDefault
	}
}

// Validate validates CreateOffboardingRequest after normalizing it.
func (r *CreateOffboardingRequest) Validate() error {
	r.Normalize()
	if r.ScheduledDate == "" {
		return errors.New("scheduledDate is required")
	}
	if r.ScheduledTime == "" {
		return errors.New("scheduledTime is required")
	}
	return nil
}

// NotifyManagerOrDefault resolves the notify-manager preference, defaulting
// to true unless explicitly set false.
func (r *CreateOffboardingRequest) NotifyManagerOrDefault() bool {
	return r.NotifyManager == nil || *r.NotifyManager
}

// NotifyUserOrDefault resolves the notify-user preference, defaulting to
// true unless explicitly set false.
func (r *CreateOffboardingRequest) NotifyUserOrDefault() bool {
	return r.NotifyUser == nil || *r.NotifyUser
}

// HasUpdates reports whether any field is set in UpdateOffboardingRequest.
func (r *UpdateOffboardingRequest) HasUpdates() bool {
	return r.ScheduledDate != nil || r.ScheduledTime != nil || r.ScheduledDateTime != nil ||
		r.Template != nil ||
		r.ManagerEmail != nil ||
		r.NotifyManager != nil ||
		r.NotifyUser != nil ||
		r.CustomMessage != nil
}

// Validate ensures at least one allow-listed field is set.
func (r *UpdateOffboardingRequest) Validate() error {
	if !r.HasUpdates() {
		return errors.New("no updatable fields supplied")
	}
	return nil
}

// DeriveScheduledDateTime builds the composite datetime from its date and
// time parts by plain string concatenation with an assumed UTC suffix:
// ("2024-06-01", "09:00") → "2024-06-01T09:00:00Z". No timezone
// normalization is performed.
func DeriveScheduledDateTime(date, timeOfDay string) string {
	if date == "" || timeOfDay == "" {
		return ""
	}
	return date + "T" + timeOfDay + ":00Z"
}
