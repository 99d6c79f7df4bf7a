package provider

import (
	"context"
	"fmt"
	"time"
)

// Stub stands in for the real backend during local runs and demos. It
// resolves after a fixed latency with a templated answer, honoring
// context cancellation so deadlines behave like a real call.
type Stub struct {
	Latency time.Duration
}

func (s Stub) Submit(ctx context.Context, query Query) (Response, error) {
	if s.Latency > 0 {
		select {
		case <-ctx.Done():
			return Response{}, ctx.Err()
		case <-time.After(s.Latency):
		}
	}

	if query.Text == "" && len(query.AttachmentHandles) > 0 {
		return Response{Text: fmt.Sprintf(
			"I've processed your %d uploaded file(s). Document structure and key findings were extracted, "+
				"relevant molecular data identified, and cross-references with the knowledge graph completed.",
			len(query.AttachmentHandles),
		)}, nil
	}

	return Response{Text: fmt.Sprintf(
		"I've analyzed your query about %q. Based on the biomedical knowledge graph and recent literature, "+
			"the key insights cover molecular interactions and pathways, potential drug targets, "+
			"clinical trial considerations, and safety data.",
		query.Text,
	)}, nil
}
