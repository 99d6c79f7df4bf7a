package services

import (
	"context"
	"fmt"

	"biograph/auth"
	"biograph/domain"
	"biograph/errors"
	"biograph/ingest"
	"biograph/projection"
	"biograph/session"
)

// Authenticator is the boolean gate in front of the session engine.
// A token that verifies means authenticated; anything else means the
// caller must be redirected to login before the engine is touched.
type Authenticator interface {
	Verify(token string) (*auth.Claims, error)
}

type IAssistantService interface {
	SubmitText(ctx context.Context, token, text string) (domain.MessageID, error)
	SubmitAttachments(ctx context.Context, token string, files []domain.RawFile) (domain.MessageID, []ingest.Failure, error)
	View(ctx context.Context, token string) (projection.DisplayModel, error)
	Reset(ctx context.Context, token string) error
}

// AssistantService fronts the session engine. It enforces the gate and
// projects snapshots for display; the engine itself never sees tokens.
type AssistantService struct {
	gate   Authenticator
	engine *session.Engine
}

func NewAssistantService(gate Authenticator, engine *session.Engine) *AssistantService {
	return &AssistantService{gate: gate, engine: engine}
}

func (s *AssistantService) SubmitText(ctx context.Context, token, text string) (domain.MessageID, error) {
	if err := s.authenticate(token); err != nil {
		return 0, err
	}
	return s.engine.SubmitText(ctx, text)
}

func (s *AssistantService) SubmitAttachments(ctx context.Context, token string, files []domain.RawFile) (domain.MessageID, []ingest.Failure, error) {
	if err := s.authenticate(token); err != nil {
		return 0, nil, err
	}
	return s.engine.SubmitAttachments(ctx, files)
}

func (s *AssistantService) View(ctx context.Context, token string) (projection.DisplayModel, error) {
	if err := s.authenticate(token); err != nil {
		return projection.DisplayModel{}, err
	}
	state, err := s.engine.Snapshot(ctx)
	if err != nil {
		return projection.DisplayModel{}, err
	}
	return projection.Render(state), nil
}

func (s *AssistantService) Reset(ctx context.Context, token string) error {
	if err := s.authenticate(token); err != nil {
		return err
	}
	return s.engine.Reset(ctx)
}

func (s *AssistantService) authenticate(token string) error {
	if _, err := s.gate.Verify(token); err != nil {
		return fmt.Errorf("%w: %v", errors.ErrUnauthenticated, err)
	}
	return nil
}
