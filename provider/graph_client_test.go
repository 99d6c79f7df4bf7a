package provider

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"biograph/domain"

	"github.com/stretchr/testify/require"
)

func Test_Submit_posts_the_query_and_decodes_the_answer(t *testing.T) {
	req := require.New(t)

	var received Query
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		req.Equal(http.MethodPost, r.Method)
		req.Equal("/v1/query", r.URL.Path)
		req.Equal("application/json", r.Header.Get("Content-Type"))
		req.NoError(json.NewDecoder(r.Body).Decode(&received))
		_ = json.NewEncoder(w).Encode(Response{Text: "42 citations found"})
	}))
	defer server.Close()

	client := NewGraphClient(server.URL, server.Client(), slog.Default())
	response, err := client.Submit(context.Background(), Query{
		Text:              "aspirin mechanism",
		AttachmentHandles: []domain.ContentHandle{"blob:abc"},
		Language:          "eng",
	})
	req.NoError(err)
	req.Equal("42 citations found", response.Text)
	req.Equal("aspirin mechanism", received.Text)
	req.Equal([]domain.ContentHandle{"blob:abc"}, received.AttachmentHandles)
	req.Equal("eng", received.Language)
}

func Test_Submit_surfaces_backend_errors(t *testing.T) {
	req := require.New(t)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "graph shard offline"})
	}))
	defer server.Close()

	client := NewGraphClient(server.URL, server.Client(), slog.Default())
	_, err := client.Submit(context.Background(), Query{Text: "anything"})
	req.ErrorContains(err, "graph shard offline")
}

func Test_Submit_respects_context_cancellation(t *testing.T) {
	req := require.New(t)
	blocked := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-blocked
	}))
	defer server.Close()
	defer close(blocked)

	client := NewGraphClient(server.URL, server.Client(), slog.Default())
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := client.Submit(ctx, Query{Text: "slow question"})
	req.Error(err)
}

func Test_Stub_answers_depend_on_the_query_shape(t *testing.T) {
	req := require.New(t)
	stub := Stub{}

	text, err := stub.Submit(context.Background(), Query{Text: "aspirin"})
	req.NoError(err)
	req.Contains(text.Text, "aspirin")

	files, err := stub.Submit(context.Background(), Query{AttachmentHandles: []domain.ContentHandle{"blob:a", "blob:b"}})
	req.NoError(err)
	req.Contains(files.Text, "2 uploaded file(s)")
}

func Test_Stub_honors_cancellation_during_latency(t *testing.T) {
	req := require.New(t)
	stub := Stub{Latency: time.Minute}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := stub.Submit(ctx, Query{Text: "never answered"})
	req.ErrorIs(err, context.Canceled)
}
