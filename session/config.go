package session

import "time"

const DefaultGreeting = "Hello! I'm your Drug Discovery AI Assistant. I can help you with drug development " +
	"research, molecular analysis, clinical trial design, and more. You can send me text questions, " +
	"upload documents, or share molecular structure images."

type Config struct {
	// AllowConcurrentSubmissions keeps input open while requests are in
	// flight. Off by default: one pending request at a time, matching a
	// single-conversation UX.
	AllowConcurrentSubmissions bool
	// AnalyzeOnUpload fires a backend call for attachment submissions.
	AnalyzeOnUpload bool
	// ProviderTimeout bounds each backend call; expiry resolves through
	// the normal failure path. Zero means no deadline.
	ProviderTimeout time.Duration
	Greeting        string
	CommandBuffer   int
}

func DefaultConfig() Config {
	return Config{
		AnalyzeOnUpload: true,
		ProviderTimeout: 30 * time.Second,
		Greeting:        DefaultGreeting,
		CommandBuffer:   16,
	}
}

func (c Config) withDefaults() Config {
	if c.CommandBuffer <= 0 {
		c.CommandBuffer = 16
	}
	return c
}
