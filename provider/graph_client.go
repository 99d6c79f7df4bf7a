package provider

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
)

const queryPath = "/v1/query"

// GraphClient talks to the retrieval/knowledge-graph backend over plain
// JSON request/response. One HTTP exchange per query keeps the
// exactly-one-resolution contract trivially true.
type GraphClient struct {
	baseURL string
	client  *http.Client
	log     *slog.Logger
}

func NewGraphClient(baseURL string, client *http.Client, log *slog.Logger) *GraphClient {
	if client == nil {
		client = http.DefaultClient
	}
	return &GraphClient{baseURL: baseURL, client: client, log: log}
}

type errorBody struct {
	Error string `json:"error"`
}

func (g *GraphClient) Submit(ctx context.Context, query Query) (Response, error) {
	body, err := json.Marshal(query)
	if err != nil {
		return Response{}, fmt.Errorf("encoding query: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+queryPath, bytes.NewReader(body))
	if err != nil {
		return Response{}, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return Response{}, fmt.Errorf("backend unreachable: %w", err)
	}
	defer func() {
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		var failure errorBody
		if err := json.NewDecoder(resp.Body).Decode(&failure); err == nil && failure.Error != "" {
			return Response{}, fmt.Errorf("backend refused query: %s", failure.Error)
		}
		return Response{}, fmt.Errorf("backend returned status %d", resp.StatusCode)
	}

	var out Response
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return Response{}, fmt.Errorf("decoding response: %w", err)
	}
	return out, nil
}
