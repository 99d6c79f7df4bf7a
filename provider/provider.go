//go:generate go run go.uber.org/mock/mockgen -source=provider.go -destination=../mocks/mock_provider.go -package=mocks

// Package provider is the boundary to the retrieval/knowledge-graph
// backend. The session engine only requires that every submitted query
// eventually resolves, exactly once, with a response or an error; it
// never learns how the backend ranks, retrieves or traverses.
package provider

import (
	"context"

	"biograph/domain"
)

// Query carries one question to the backend. Attachment content stays
// in the blob store; the backend receives only the opaque handles.
type Query struct {
	Text              string                 `json:"queryText"`
	AttachmentHandles []domain.ContentHandle `json:"attachmentHandles,omitempty"`
	Language          string                 `json:"language,omitempty"`
}

type Response struct {
	Text string `json:"text"`
}

// ResponseProvider resolves each Submit call exactly once. Concurrent
// calls may resolve in any order; display order is the engine's job.
type ResponseProvider interface {
	Submit(ctx context.Context, query Query) (Response, error)
}
