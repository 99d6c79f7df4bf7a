package services

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"biograph/domain"
	"biograph/errors"
	"biograph/provider"
	"biograph/session"

	"github.com/stretchr/testify/require"
)

func startTestAssistant(t *testing.T) (*AssistantService, string) {
	t.Helper()
	engine := session.NewEngine(slog.Default(), session.DefaultConfig(), provider.Stub{}, nil, nil)
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	go func() { _ = engine.Run(ctx) }()

	issuer := testIssuer()
	token, err := issuer.Generate("user-42", []string{"researcher"})
	require.NoError(t, err)
	return NewAssistantService(issuer, engine), token
}

func TestAssistantService_rejects_unverifiable_tokens(t *testing.T) {
	req := require.New(t)
	svc, _ := startTestAssistant(t)
	ctx := context.Background()

	_, err := svc.SubmitText(ctx, "garbage-token", "any question")
	req.ErrorIs(err, errors.ErrUnauthenticated)

	_, _, err = svc.SubmitAttachments(ctx, "", []domain.RawFile{{Name: "a.txt", Data: []byte("x")}})
	req.ErrorIs(err, errors.ErrUnauthenticated)

	_, err = svc.View(ctx, "garbage-token")
	req.ErrorIs(err, errors.ErrUnauthenticated)

	err = svc.Reset(ctx, "garbage-token")
	req.ErrorIs(err, errors.ErrUnauthenticated)
}

func TestAssistantService_passes_authenticated_calls_through(t *testing.T) {
	req := require.New(t)
	svc, token := startTestAssistant(t)
	ctx := context.Background()

	view, err := svc.View(ctx, token)
	req.NoError(err)
	req.Len(view.Entries, 1)
	req.Equal(session.DefaultGreeting, view.Entries[0].Content)
	req.Equal(0, view.MessageCount)

	id, err := svc.SubmitText(ctx, token, "What is the mechanism of statins?")
	req.NoError(err)
	req.Equal(domain.MessageID(1), id)

	req.Eventually(func() bool {
		view, err := svc.View(ctx, token)
		return err == nil && len(view.Entries) == 3 && len(view.Working) == 0
	}, 2*time.Second, 10*time.Millisecond)

	req.NoError(svc.Reset(ctx, token))
	view, err = svc.View(ctx, token)
	req.NoError(err)
	req.Len(view.Entries, 1)
}
