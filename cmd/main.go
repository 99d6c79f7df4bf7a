package main

import (
	"bufio"
	"context"
	_ "embed"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"biograph/auth"
	"biograph/domain"
	"biograph/ingest"
	"biograph/internal"
	"biograph/moderation"
	"biograph/projection"
	"biograph/provider"
	"biograph/repositories"
	"biograph/runtime/workers"
	"biograph/services"
	"biograph/session"

	"github.com/Netflix/go-env"
	"github.com/blugelabs/bluge"
	"github.com/dgraph-io/badger/v4"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"
)

//go:embed restricted_terms.txt
var restrictedTerms string

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}

// run wires every component and drives the interactive console until a
// signal arrives. Returning the error (instead of os.Exit in place)
// keeps the deferred database cleanup running on every exit path.
func run() error {
	_ = godotenv.Load()

	var config Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	log := logs.GetLoggerFromString(config.LogLevel)

	db, err := badger.Open(badger.DefaultOptions(config.BadgerFilepath).
		WithLoggingLevel(badger.WARNING))
	if err != nil {
		return fmt.Errorf("database opening failed: %w", err)
	}
	defer func() {
		log.Info("Closing BadgerDB...")
		_ = db.Close()
	}()

	writer, err := bluge.OpenWriter(bluge.DefaultConfig(config.BlugeFilepath))
	if err != nil {
		return fmt.Errorf("index opening failed: %w", err)
	}
	defer func() {
		log.Info("Closing Bluge index...")
		_ = writer.Close()
	}()

	terms, err := moderation.ParseTerms(strings.NewReader(restrictedTerms))
	if err != nil {
		return fmt.Errorf("restricted terms: %w", err)
	}
	redactor, err := moderation.NewRedactor(terms, '*')
	if err != nil {
		return fmt.Errorf("redactor setup failed: %w", err)
	}

	blobs := repositories.NewBlobRepository(db, log)
	findings := repositories.NewFindingRepository(db, writer, log)
	users := repositories.NewUserRepository(db)

	ingestor := ingest.NewIngestor(blobs, ingest.Policy{
		MaxFileSizeBytes: config.MaxFileSizeBytes,
		AllowedMimeTypes: config.AllowedMimeTypes,
	}, log)

	var backend provider.ResponseProvider
	if config.BackendURL != "" {
		backend = provider.NewGraphClient(config.BackendURL, http.DefaultClient, log)
	} else {
		log.Info("No backend configured, using the stub provider")
		backend = provider.Stub{Latency: config.StubLatency}
	}

	engine := session.NewEngine(log, session.Config{
		AllowConcurrentSubmissions: config.AllowConcurrentSubmissions,
		AnalyzeOnUpload:            config.AnalyzeOnUpload,
		ProviderTimeout:            config.ProviderTimeout,
	}, backend, ingestor, redactor)

	issuer := auth.NewTokenIssuer([]byte(config.AuthSecret), config.AuthTokenDuration)
	authService := services.NewAuthService(users, issuer)
	assistant := services.NewAssistantService(issuer, engine)
	findingsService := services.NewFindingsService(findings)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	sup := workers.NewSupervisor(log, config.RestartInterval)
	sup.Add(
		engine,
		workers.NewBadgerGCWorker(log, db, config.GCInterval),
		workers.NewTelemetryWorker(log, config.MetricInterval),
	)
	go sup.Run(ctx)

	if config.DebugPort > 0 {
		internal.StartDebugServer(db, config.DebugPort, func() map[string]any {
			state, err := engine.Snapshot(ctx)
			if err != nil {
				return map[string]any{"error": err.Error()}
			}
			return map[string]any{
				"messages": state.MessageCount(),
				"pending":  len(state.Pending),
				"locked":   state.InputLocked,
			}
		})
	}

	token, err := localToken(authService)
	if err != nil {
		return fmt.Errorf("local session auth failed: %w", err)
	}

	errChan := make(chan error, 1)
	go func() {
		errChan <- console(ctx, log, token, assistant, findingsService)
	}()

	go renderLoop(ctx, engine, assistant, token)

	select {
	case <-ctx.Done():
		log.Info("Shutting down gracefully...")
	case err := <-errChan:
		if err != nil {
			return err
		}
		stop()
	}

	sup.Stop()
	log.Info("Program stopped cleanly")
	return nil
}

// localToken logs the console operator in, registering the account on
// first run. Credentials come from the environment so the store never
// holds a default password.
func localToken(authService *services.AuthService) (string, error) {
	email := os.Getenv("OPERATOR_EMAIL")
	password := os.Getenv("OPERATOR_PASSWORD")
	if email == "" || password == "" {
		return "", fmt.Errorf("OPERATOR_EMAIL and OPERATOR_PASSWORD must be set")
	}
	token, err := authService.Login(email, password)
	if err == nil {
		return token, nil
	}
	return authService.Register(email, password)
}

// renderLoop re-renders after every engine state change, printing only
// entries it has not shown yet.
func renderLoop(ctx context.Context, engine *session.Engine, assistant services.IAssistantService, token string) {
	var lastShown domain.MessageID = -1
	for {
		select {
		case <-ctx.Done():
			return
		case <-engine.Updates():
		}
		view, err := assistant.View(ctx, token)
		if err != nil {
			continue
		}
		lastShown = printNew(view, lastShown)
	}
}

func printNew(view projection.DisplayModel, lastShown domain.MessageID) domain.MessageID {
	for _, entry := range view.Entries {
		if entry.ID <= lastShown {
			continue
		}
		fmt.Printf("\n[%s] %s\n", entry.Role, entry.Content)
		for _, ref := range entry.Attachments {
			fmt.Printf("  attached: %s (%s)\n", ref.Name, ref.Mime)
		}
		lastShown = entry.ID
	}
	if len(view.Working) > 0 {
		fmt.Printf("... %d request(s) in flight\n", len(view.Working))
	}
	return lastShown
}

// console reads operator input line by line. Plain lines become
// queries; slash commands drive uploads, findings and session control.
func console(ctx context.Context, log *slog.Logger, token string, assistant services.IAssistantService, findingsService *services.FindingsService) error {
	fmt.Println("Commands: /upload <paths...>, /finding <drug>|<mechanism>|<indication>|<phase>|<text>, /search <terms>, /reset, /quit")
	scanner := bufio.NewScanner(os.Stdin)
	scanner.Buffer(make([]byte, 0, domain.MB), domain.MB)
	for scanner.Scan() {
		if ctx.Err() != nil {
			return nil
		}
		line := strings.TrimSpace(scanner.Text())
		switch {
		case line == "/quit":
			return nil
		case line == "/reset":
			if err := assistant.Reset(ctx, token); err != nil {
				log.Warn("Reset failed", "error", err)
			}
		case strings.HasPrefix(line, "/upload "):
			files, err := readFiles(strings.Fields(strings.TrimPrefix(line, "/upload ")))
			if err != nil {
				log.Warn("Upload failed", "error", err)
				continue
			}
			_, failures, err := assistant.SubmitAttachments(ctx, token, files)
			for _, failure := range failures {
				log.Warn("File rejected", "file", failure.Name, "error", failure.Err)
			}
			if err != nil {
				log.Warn("Upload rejected", "error", err)
			}
		case strings.HasPrefix(line, "/finding "):
			id, err := submitFinding(findingsService, strings.TrimPrefix(line, "/finding "))
			if err != nil {
				log.Warn("Finding rejected", "error", err)
				continue
			}
			fmt.Printf("Finding stored: %s\n", id)
		case strings.HasPrefix(line, "/search "):
			results, err := findingsService.Search(ctx, strings.TrimPrefix(line, "/search "), 10)
			if err != nil {
				log.Warn("Search failed", "error", err)
				continue
			}
			for _, finding := range results {
				fmt.Printf("- %s (%s, %s): %s\n", finding.DrugName, finding.ClinicalPhase, finding.Indication, finding.Description)
			}
		default:
			if _, err := assistant.SubmitText(ctx, token, line); err != nil {
				log.Warn("Submission rejected", "error", err)
			}
		}
	}
	return scanner.Err()
}

func readFiles(paths []string) ([]domain.RawFile, error) {
	files := make([]domain.RawFile, 0, len(paths))
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		files = append(files, domain.RawFile{Name: filepath.Base(path), Data: data})
	}
	return files, nil
}

func submitFinding(findingsService *services.FindingsService, raw string) (string, error) {
	parts := strings.SplitN(raw, "|", 5)
	if len(parts) != 5 {
		return "", fmt.Errorf("expected drug|mechanism|indication|phase|text")
	}
	id, err := findingsService.Submit(domain.Finding{
		DrugName:      strings.TrimSpace(parts[0]),
		Mechanism:     strings.TrimSpace(parts[1]),
		Indication:    strings.TrimSpace(parts[2]),
		ClinicalPhase: strings.TrimSpace(parts[3]),
		Description:   strings.TrimSpace(parts[4]),
	})
	if err != nil {
		return "", err
	}
	return id.String(), nil
}
