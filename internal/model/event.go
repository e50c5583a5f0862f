// Copyright (c) 2026 Igor Kowalczyk
// SPDX-License-Identifier: MIT

package model

import (
	"database/sql"
	"time"
)

// Event levels.
const (
	EventLevelInfo    = "info"
	EventLevelWarning = "warning"
	EventLevelError   = "error"
)

// Event categories.
const (
	EventCategoryAuth      = "auth"
	EventCategoryContent   = "content"
	EventCategoryTranslate = "translate"
	EventCategorySystem    = "system"
)

// Event is an audit log entry persisted alongside application logs.
type Event struct {
	ID        int64         `json:"id"`
	Level     string        `json:"level"`
	Category  string        `json:"category"`
	Message   string        `json:"message"`
	UserID    sql.NullInt64 `json:"user_id,omitempty"`
	Metadata  string        `json:"metadata"`
	CreatedAt time.Time     `json:"created_at"`
}
