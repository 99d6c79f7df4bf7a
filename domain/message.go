// Package domain contains core concepts of the research assistant.
// This file defines the conversation Message and its rules.
// Messages are immutable once appended and the log is append-only.
package domain

import (
	"time"
)

// MessageID is assigned by the session engine in creation order.
// IDs are unique within a session and strictly increasing.
type MessageID int64

type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message represents one immutable entry of the conversation log.
// Content may be empty for attachment-only submissions.
type Message struct {
	ID          MessageID
	Role        Role
	Content     string
	Attachments []AttachmentRef
	CreatedAt   time.Time
}
