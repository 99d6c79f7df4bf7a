// Package projection builds the displayable view of a session snapshot.
// It only reads; it never emits commands or touches engine state.
package projection

import (
	"time"

	"biograph/domain"

	"github.com/samber/lo"
)

// DisplayModel is everything a front end needs for one render pass.
type DisplayModel struct {
	Entries []Entry
	// Working lists unresolved requests, keyed by request id, so the
	// view can show one indicator per in-flight call and drop it the
	// moment the result lands.
	Working      []WorkingIndicator
	InputLocked  bool
	MessageCount int
}

type Entry struct {
	ID          domain.MessageID
	Role        domain.Role
	Content     string
	Attachments []AttachmentView
	At          time.Time
}

type AttachmentView struct {
	Name string
	Mime string
}

type WorkingIndicator struct {
	RequestID domain.RequestID
	Since     time.Time
}

// Render projects a session snapshot into a DisplayModel.
func Render(state domain.SessionState) DisplayModel {
	entries := lo.Map(state.Messages, func(msg domain.Message, _ int) Entry {
		return Entry{
			ID:      msg.ID,
			Role:    msg.Role,
			Content: msg.Content,
			At:      msg.CreatedAt,
			Attachments: lo.Map(msg.Attachments, func(ref domain.AttachmentRef, _ int) AttachmentView {
				return AttachmentView{Name: ref.DisplayName, Mime: ref.MimeType}
			}),
		}
	})

	working := lo.Map(state.Pending, func(req domain.PendingRequest, _ int) WorkingIndicator {
		return WorkingIndicator{RequestID: req.ID, Since: req.StartedAt}
	})

	return DisplayModel{
		Entries:      entries,
		Working:      working,
		InputLocked:  state.InputLocked,
		MessageCount: state.MessageCount(),
	}
}
