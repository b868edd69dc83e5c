package model

import (
	"encoding/json"
	"time"
)

// Session is a persisted web session. The payload is kept as raw JSON; this
// layer never interprets it, it only stores and expires it.
type Session struct {
	SID       string          `json:"sid"    db:"sid"`
	Data      json.RawMessage `json:"sess"   db:"sess"`
	ExpiresAt time.Time       `json:"expire" db:"expire"`
}

// Expired reports whether the session has passed its expiry at the given time.
func (s Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.After(now)
}
