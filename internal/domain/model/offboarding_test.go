package model

import (
	"encoding/json"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool    { return &b }

func TestDeriveScheduledDateTime(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "2024-06-01T09:00:00Z", DeriveScheduledDateTime("2024-06-01", "09:00"))
	assert.Equal(t, "", DeriveScheduledDateTime("", "09:00"))
	assert.Equal(t, "", DeriveScheduledDateTime("2024-06-01", ""))

	// No normalization: garbage in, garbage out.
	assert.Equal(t, "not-a-dateTnoonish:00Z", DeriveScheduledDateTime("not-a-date", "noonish"))
}

func TestCreateOffboardingRequest_Normalize_UserFillsBlanks(t *testing.T) {
	t.Parallel()

	req := CreateOffboardingRequest{
		User: &SubjectUser{
			ID:          "u-1",
			DisplayName: "Jane Doe",
			Mail:        "jane@example.com",
		},
		ScheduledDate: "2024-06-01",
		ScheduledTime: "09:00",
	}
	req.Normalize()

	assert.Equal(t, "u-1", req.UserID)
	assert.Equal(t, "Jane Doe", req.UserDisplayName)
	assert.Equal(t, "jane@example.com", req.UserEmail)
	assert.Equal(t, "2024-06-01T09:00:00Z", req.ScheduledDateTime)
	assert.Equal(t, OffboardingTemplateDefault, req.Template)
}

func TestCreateOffboardingRequest_Normalize_FlatFieldsWin(t *testing.T) {
	t.Parallel()

	req := CreateOffboardingRequest{
		User: &SubjectUser{
			ID:          "nested-id",
			DisplayName: "Nested Name",
			Mail:        "nested@example.com",
		},
		UserID:          "flat-id",
		UserDisplayName: "Flat Name",
		UserEmail:       "flat@example.com",
		ScheduledDate:   "2024-06-01",
		ScheduledTime:   "09:00",
	}
	req.Normalize()

	assert.Equal(t, "flat-id", req.UserID)
	assert.Equal(t, "Flat Name", req.UserDisplayName)
	assert.Equal(t, "flat@example.com", req.UserEmail)
}

func TestCreateOffboardingRequest_Normalize_ExplicitDateTimeKept(t *testing.T) {
	t.Parallel()

	req := CreateOffboardingRequest{
		ScheduledDate:     "2024-06-01",
		ScheduledTime:     "09:00",
		ScheduledDateTime: "2024-06-02T10:30:00Z",
	}
	req.Normalize()

	assert.Equal(t, "2024-06-02T10:30:00Z", req.ScheduledDateTime)
}

func TestCreateOffboardingRequest_Normalize_Idempotent(t *testing.T) {
	t.Parallel()

	req := CreateOffboardingRequest{
		ScheduledDate: "  2024-06-01 ",
		ScheduledTime: " 09:00",
	}
	req.Normalize()
	first := req
	req.Normalize()
	assert.Equal(t, first, req)
	assert.Equal(t, "2024-06-01", req.ScheduledDate)
	assert.Equal(t, "09:00", req.ScheduledTime)
}

func TestCreateOffboardingRequest_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		req     CreateOffboardingRequest
		wantErr string
	}{
		{
			name: "valid",
			req:  CreateOffboardingRequest{ScheduledDate: "2024-06-01", ScheduledTime: "09:00"},
		},
		{
			name:    "missing date",
			req:     CreateOffboardingRequest{ScheduledTime: "09:00"},
			wantErr: "scheduledDate is required",
		},
		{
			name:    "missing time",
			req:     CreateOffboardingRequest{ScheduledDate: "2024-06-01"},
			wantErr: "scheduledTime is required",
		},
		{
			name:    "whitespace-only date",
			req:     CreateOffboardingRequest{ScheduledDate: "   ", ScheduledTime: "09:00"},
			wantErr: "scheduledDate is required",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			err := tc.req.Validate()
			if tc.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Equal(t, tc.wantErr, err.Error())
		})
	}
}

func TestCreateOffboardingRequest_NotifyDefaults(t *testing.T) {
	t.Parallel()

	req := CreateOffboardingRequest{}
	assert.True(t, req.NotifyManagerOrDefault())
	assert.True(t, req.NotifyUserOrDefault())

	req.NotifyManager = boolPtr(false)
	req.NotifyUser = boolPtr(false)
	assert.False(t, req.NotifyManagerOrDefault())
	assert.False(t, req.NotifyUserOrDefault())

	req.NotifyManager = boolPtr(true)
	req.NotifyUser = boolPtr(true)
	assert.True(t, req.NotifyManagerOrDefault())
	assert.True(t, req.NotifyUserOrDefault())
}

func TestUpdateOffboardingRequest_Validate(t *testing.T) {
	t.Parallel()

	empty := UpdateOffboardingRequest{}
	assert.False(t, empty.HasUpdates())
	require.Error(t, empty.Validate())

	single := UpdateOffboardingRequest{CustomMessage: strPtr("bye")}
	assert.True(t, single.HasUpdates())
	require.NoError(t, single.Validate())

	flagOnly := UpdateOffboardingRequest{NotifyUser: boolPtr(false)}
	assert.True(t, flagOnly.HasUpdates())
	require.NoError(t, flagOnly.Validate())
}

func TestOffboardingStatus_Valid(t *testing.T) {
	t.Parallel()

	assert.True(t, OffboardingScheduled.Valid())
	assert.True(t, OffboardingCompleted.Valid())
	assert.False(t, OffboardingStatus("cancelled").Valid())
	assert.False(t, OffboardingStatus("").Valid())
}

func TestScheduledOffboarding_JSONRoundTrip(t *testing.T) {
	t.Parallel()

	executed := time.Date(2024, 6, 1, 9, 5, 0, 0, time.UTC)
	record := ScheduledOffboarding{
		ID:                "1717232400000-deadbeef",
		TenantID:          "t1",
		SessionID:         "s1",
		CreatedBy:         "s1",
		UserID:            "u-1",
		UserDisplayName:   "Jane Doe",
		UserEmail:         "jane@example.com",
		ScheduledDate:     "2024-06-01",
		ScheduledTime:     "09:00",
		ScheduledDateTime: "2024-06-01T09:00:00Z",
		Template:          "executive",
		Status:            OffboardingCompleted,
		ManagerEmail:      strPtr("boss@example.com"),
		NotifyManager:     true,
		NotifyUser:        false,
		CustomMessage:     strPtr("farewell"),
		CreatedAt:         time.Date(2024, 5, 30, 12, 0, 0, 0, time.UTC),
		ExecutedAt:        &executed,
		UpdatedAt:         time.Date(2024, 6, 1, 9, 5, 0, 0, time.UTC),
	}

	raw, err := json.Marshal(record)
	require.NoError(t, err)

	// The wire format is camelCase; the column names never leak into JSON.
	for _, key := range []string{
		`"tenantId"`, `"sessionId"`, `"createdBy"`, `"userDisplayName"`,
		`"scheduledDateTime"`, `"notifyManager"`, `"notifyUser"`,
		`"managerEmail"`, `"customMessage"`, `"createdAt"`, `"executedAt"`, `"updatedAt"`,
	} {
		assert.Contains(t, string(raw), key)
	}
	for _, key := range []string{
		`"tenant_id"`, `"session_id"`, `"created_by"`, `"scheduled_date_time"`,
		`"notify_manager"`, `"executed_at"`,
	} {
		assert.NotContains(t, string(raw), key)
	}

	var got ScheduledOffboarding
	require.NoError(t, json.Unmarshal(raw, &got))
	assert.Equal(t, record, got)
}

func TestScheduledOffboarding_TagPairs(t *testing.T) {
	t.Parallel()

	// Pins every json/db tag pair so a rename on one side of the mapping
	// cannot slip through unnoticed.
	want := map[string]string{
		"id":                "id",
		"tenantId":          "tenant_id",
		"sessionId":         "session_id",
		"createdBy":         "created_by",
		"userId":            "user_id",
		"userDisplayName":   "user_display_name",
		"userEmail":         "user_email",
		"scheduledDate":     "scheduled_date",
		"scheduledTime":     "scheduled_time",
		"scheduledDateTime": "scheduled_date_time",
		"template":          "template",
		"status":            "status",
		"managerEmail":      "manager_email",
		"notifyManager":     "notify_manager",
		"notifyUser":        "notify_user",
		"customMessage":     "custom_message",
		"createdAt":         "created_at",
		"executedAt":        "executed_at",
		"updatedAt":         "updated_at",
	}

	typ := reflect.TypeOf(ScheduledOffboarding{})
	require.Equal(t, len(want), typ.NumField())

	for i := 0; i < typ.NumField(); i++ {
		field := typ.Field(i)
		jsonName := strings.Split(field.Tag.Get("json"), ",")[0]
		dbName, ok := want[jsonName]
		require.True(t, ok, "field %s has unexpected json tag %q", field.Name, jsonName)
		assert.Equal(t, dbName, field.Tag.Get("db"), "field %s", field.Name)
	}
}
