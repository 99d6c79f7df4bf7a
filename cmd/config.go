package main

import "time"

type Config struct {
	BadgerFilepath string `env:"BADGER_FILEPATH,required=true"`
	BlugeFilepath  string `env:"BLUGE_FILEPATH,required=true"`
	LogLevel       string `env:"LOG_LEVEL,default=info"`

	// Empty means the built-in stub backend.
	BackendURL      string        `env:"BACKEND_URL"`
	StubLatency     time.Duration `env:"STUB_LATENCY,default=2s"`
	ProviderTimeout time.Duration `env:"PROVIDER_TIMEOUT,default=30s"`

	AllowConcurrentSubmissions bool `env:"ALLOW_CONCURRENT_SUBMISSIONS,default=false"`
	AnalyzeOnUpload            bool `env:"ANALYZE_ON_UPLOAD,default=true"`

	MaxFileSizeBytes int64    `env:"MAX_FILE_SIZE_BYTES,default=10485760"`
	AllowedMimeTypes []string `env:"ALLOWED_MIME_TYPES,separator=;,default=application/pdf;image/png;image/jpeg;text/plain"`

	AuthSecret        string        `env:"AUTH_SECRET,required=true"`
	AuthTokenDuration time.Duration `env:"AUTH_TOKEN_DURATION,default=24h"`

	RestartInterval time.Duration `env:"RESTART_INTERVAL,default=5s"`
	GCInterval      time.Duration `env:"GC_INTERVAL,default=5m"`
	MetricInterval  time.Duration `env:"METRIC_INTERVAL,default=30s"`

	// 0 disables the inspector.
	DebugPort int `env:"DEBUG_PORT,default=0"`
}
