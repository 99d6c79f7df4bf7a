// Package session owns the conversational state of one assistant
// session: the ordered message log, the set of in-flight backend
// requests, and the merge of asynchronous responses back into the
// timeline in completion order.
//
// All state lives on a single goroutine (the Run loop). Public methods
// pass commands over a channel and wait for the reply; provider
// completions arrive over an internal results channel. No lock ever
// guards the log because only the loop touches it.
package session

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"sync"
	"time"

	"biograph/domain"
	"biograph/errors"
	"biograph/ingest"
	"biograph/provider"

	"github.com/abadojack/whatlanggo"
	"github.com/google/uuid"
	"github.com/samber/lo"
)

// Ingestor is the slice of the attachment ingestor the engine needs.
type Ingestor interface {
	Ingest(ctx context.Context, files []domain.RawFile) ([]domain.AttachmentRef, []ingest.Failure)
	Release(handles ...domain.ContentHandle) error
}

// Redactor scrubs restricted terms from outbound query text.
type Redactor interface {
	Redact(text string) string
}

type Engine struct {
	log      *slog.Logger
	cfg      Config
	provider provider.ResponseProvider
	ingestor Ingestor
	redactor Redactor

	commands chan command
	results  chan completion
	updates  chan struct{}

	// closed belongs to the current Run. The supervisor restarts a
	// panicked loop, so each Run installs a fresh signal; callers read
	// it through closedSignal.
	mu     sync.RWMutex
	closed chan struct{}

	// Everything below is owned by the Run loop.
	messages []domain.Message
	pending  map[domain.RequestID]domain.PendingRequest
	nextID   domain.MessageID
	// epoch invalidates outstanding request ids on reset; a completion
	// carrying an older epoch is discarded, never appended.
	epoch uint64
}

func NewEngine(
	log *slog.Logger,
	cfg Config,
	responseProvider provider.ResponseProvider,
	ingestor Ingestor,
	redactor Redactor,
) *Engine {
	cfg = cfg.withDefaults()
	return &Engine{
		log:      log,
		cfg:      cfg,
		provider: responseProvider,
		ingestor: ingestor,
		redactor: redactor,
		commands: make(chan command, cfg.CommandBuffer),
		results:  make(chan completion, cfg.CommandBuffer),
		updates:  make(chan struct{}, 1),
		closed:   make(chan struct{}),
		pending:  make(map[domain.RequestID]domain.PendingRequest),
		nextID:   1,
	}
}

// Run executes the engine loop until the context is canceled. It
// implements contract.Worker and is meant to live under the supervisor.
func (e *Engine) Run(ctx context.Context) error {
	closed := e.arm()
	defer close(closed)
	e.seed()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case cmd := <-e.commands:
			e.handle(ctx, cmd)
		case res := <-e.results:
			e.onProviderResult(res)
		}
	}
}

// Updates signals after each state change, coalesced. A front end can
// range over it and re-render from Snapshot.
func (e *Engine) Updates() <-chan struct{} {
	return e.updates
}

// SubmitText accepts a freeform question. It returns once the user
// message is appended and the backend call is in flight, never waiting
// for the response itself.
func (e *Engine) SubmitText(ctx context.Context, text string) (domain.MessageID, error) {
	reply := make(chan submitReply, 1)
	if err := e.send(ctx, submitTextCmd{text: text, reply: reply}); err != nil {
		return 0, err
	}
	res, err := await(ctx, e.closedSignal(), reply)
	return res.id, firstErr(res.err, err)
}

// SubmitAttachments ingests the batch and appends one user message for
// the accepted subset. Rejected files come back as failures without
// blocking the rest; when every file is rejected no message is
// appended and ErrNoValidAttachments is returned alongside the list.
func (e *Engine) SubmitAttachments(ctx context.Context, files []domain.RawFile) (domain.MessageID, []ingest.Failure, error) {
	reply := make(chan submitFilesReply, 1)
	if err := e.send(ctx, submitFilesCmd{files: files, reply: reply}); err != nil {
		return 0, nil, err
	}
	res, err := await(ctx, e.closedSignal(), reply)
	return res.id, res.failures, firstErr(res.err, err)
}

// Snapshot returns a defensive copy of the session state for readers.
func (e *Engine) Snapshot(ctx context.Context) (domain.SessionState, error) {
	reply := make(chan domain.SessionState, 1)
	if err := e.send(ctx, snapshotCmd{reply: reply}); err != nil {
		return domain.SessionState{}, err
	}
	return await(ctx, e.closedSignal(), reply)
}

// Reset clears the conversation. Outstanding request ids are
// invalidated so a late arrival lands in no log, and attachment
// content held by discarded messages is released.
func (e *Engine) Reset(ctx context.Context) error {
	reply := make(chan error, 1)
	if err := e.send(ctx, resetCmd{reply: reply}); err != nil {
		return err
	}
	res, err := await(ctx, e.closedSignal(), reply)
	return firstErr(res, err)
}

// ---- loop side ----

type command interface{ name() string }

type submitReply struct {
	id  domain.MessageID
	err error
}

type submitFilesReply struct {
	id       domain.MessageID
	failures []ingest.Failure
	err      error
}

type submitTextCmd struct {
	text  string
	reply chan submitReply
}

type submitFilesCmd struct {
	files []domain.RawFile
	reply chan submitFilesReply
}

type snapshotCmd struct{ reply chan domain.SessionState }

type resetCmd struct{ reply chan error }

func (submitTextCmd) name() string  { return "submitText" }
func (submitFilesCmd) name() string { return "submitAttachments" }
func (snapshotCmd) name() string    { return "snapshot" }
func (resetCmd) name() string       { return "reset" }

// completion is the single resolution of one provider call.
type completion struct {
	epoch     uint64
	requestID domain.RequestID
	response  provider.Response
	err       error
}

func (e *Engine) handle(ctx context.Context, cmd command) {
	switch c := cmd.(type) {
	case submitTextCmd:
		c.reply <- e.handleSubmitText(ctx, c.text)
	case submitFilesCmd:
		c.reply <- e.handleSubmitFiles(ctx, c.files)
	case snapshotCmd:
		c.reply <- e.snapshot()
	case resetCmd:
		c.reply <- e.reset()
	default:
		e.log.Warn("unknown command", "command", cmd.name())
	}
}

func (e *Engine) handleSubmitText(ctx context.Context, text string) submitReply {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return submitReply{err: errors.ErrEmptySubmission}
	}
	if e.locked() {
		return submitReply{err: errors.ErrInputLocked}
	}

	msg := e.append(domain.RoleUser, text, nil)
	e.startRequest(ctx, msg.ID, e.outbound(trimmed), nil)
	e.notify()
	return submitReply{id: msg.ID}
}

func (e *Engine) handleSubmitFiles(ctx context.Context, files []domain.RawFile) submitFilesReply {
	if len(files) == 0 {
		return submitFilesReply{err: errors.ErrEmptySubmission}
	}
	if e.locked() {
		return submitFilesReply{err: errors.ErrInputLocked}
	}

	refs, failures := e.ingestor.Ingest(ctx, files)
	if len(refs) == 0 {
		return submitFilesReply{failures: failures, err: errors.ErrNoValidAttachments}
	}

	content := fmt.Sprintf("Uploaded %d file(s) for analysis", len(refs))
	msg := e.append(domain.RoleUser, content, refs)
	if e.cfg.AnalyzeOnUpload {
		handles := lo.Map(refs, func(ref domain.AttachmentRef, _ int) domain.ContentHandle {
			return ref.Handle
		})
		e.startRequest(ctx, msg.ID, "", handles)
	}
	e.notify()
	return submitFilesReply{id: msg.ID, failures: failures}
}

// onProviderResult merges one resolution back into the timeline. The
// assistant entry is appended at the current tail, not next to its
// originating message: completion order decides display order.
func (e *Engine) onProviderResult(res completion) {
	if _, ok := e.pending[res.requestID]; !ok || res.epoch != e.epoch {
		// Stale result from before a reset, or an id we never issued.
		// Discarding keeps a fresh session untouched.
		e.log.Debug("discarding stale provider result", "request_id", res.requestID)
		return
	}
	// Terminal either way: the request leaves the in-flight set and its
	// outcome lives on as the appended assistant entry.
	delete(e.pending, res.requestID)

	if res.err != nil {
		e.log.Warn("provider call failed", "request_id", res.requestID, "err", res.err)
		e.append(domain.RoleAssistant, failureNotice(res.err), nil)
	} else {
		e.append(domain.RoleAssistant, res.response.Text, nil)
	}
	e.notify()
}

func (e *Engine) startRequest(ctx context.Context, origin domain.MessageID, text string, handles []domain.ContentHandle) {
	req := domain.PendingRequest{
		ID:              uuid.New(),
		OriginMessageID: origin,
		Status:          domain.StatusInFlight,
		StartedAt:       time.Now().UTC(),
	}
	e.pending[req.ID] = req

	query := provider.Query{
		Text:              text,
		AttachmentHandles: handles,
	}
	if text != "" {
		query.Language = whatlanggo.LangToString(whatlanggo.Detect(text).Lang)
	}
	go e.call(ctx, e.epoch, req.ID, query)
}

// call runs off-loop. Resolution always funnels through e.results so
// failures, timeouts and successes share one path into the log.
func (e *Engine) call(ctx context.Context, epoch uint64, id domain.RequestID, query provider.Query) {
	callCtx := ctx
	if e.cfg.ProviderTimeout > 0 {
		var cancel context.CancelFunc
		callCtx, cancel = context.WithTimeout(ctx, e.cfg.ProviderTimeout)
		defer cancel()
	}
	response, err := e.provider.Submit(callCtx, query)
	select {
	case e.results <- completion{epoch: epoch, requestID: id, response: response, err: err}:
	case <-ctx.Done():
	}
}

func (e *Engine) snapshot() domain.SessionState {
	messages := make([]domain.Message, len(e.messages))
	for i, msg := range e.messages {
		msg.Attachments = append([]domain.AttachmentRef(nil), msg.Attachments...)
		messages[i] = msg
	}

	pending := lo.Values(e.pending)
	sort.Slice(pending, func(i, j int) bool {
		return pending[i].StartedAt.Before(pending[j].StartedAt)
	})

	return domain.SessionState{
		Messages:    messages,
		Pending:     pending,
		InputLocked: e.locked(),
	}
}

func (e *Engine) reset() error {
	var handles []domain.ContentHandle
	for _, msg := range e.messages {
		for _, ref := range msg.Attachments {
			handles = append(handles, ref.Handle)
		}
	}

	e.epoch++
	e.pending = make(map[domain.RequestID]domain.PendingRequest)
	e.messages = nil
	e.nextID = 1
	e.seed()
	e.notify()

	if len(handles) == 0 {
		return nil
	}
	return e.ingestor.Release(handles...)
}

// seed places the configured greeting at the head of a fresh log.
// The greeting carries ID 0 so it never counts as a conversation entry.
func (e *Engine) seed() {
	if e.cfg.Greeting == "" || len(e.messages) > 0 {
		return
	}
	e.messages = append(e.messages, domain.Message{
		ID:        0,
		Role:      domain.RoleAssistant,
		Content:   e.cfg.Greeting,
		CreatedAt: time.Now().UTC(),
	})
}

func (e *Engine) append(role domain.Role, content string, refs []domain.AttachmentRef) domain.Message {
	msg := domain.Message{
		ID:          e.nextID,
		Role:        role,
		Content:     content,
		Attachments: refs,
		CreatedAt:   time.Now().UTC(),
	}
	e.nextID++
	e.messages = append(e.messages, msg)
	return msg
}

func (e *Engine) locked() bool {
	return !e.cfg.AllowConcurrentSubmissions && len(e.pending) > 0
}

// outbound prepares query text for the wire: restricted terms are
// redacted before the backend ever sees them.
func (e *Engine) outbound(text string) string {
	if e.redactor == nil {
		return text
	}
	return e.redactor.Redact(text)
}

func (e *Engine) notify() {
	select {
	case e.updates <- struct{}{}:
	default:
	}
}

func failureNotice(err error) string {
	return fmt.Sprintf("I couldn't get an answer from the knowledge graph backend (%v). "+
		"Your question was not lost on our side; please submit it again.", err)
}

// ---- caller side plumbing ----

// arm installs a fresh closed signal for one Run. Without this a
// restarted loop would sit behind a signal its previous life already
// fired, rejecting every command as ErrSessionClosed.
func (e *Engine) arm() chan struct{} {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.closed = make(chan struct{})
	return e.closed
}

func (e *Engine) closedSignal() <-chan struct{} {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.closed
}

func (e *Engine) send(ctx context.Context, cmd command) error {
	select {
	case e.commands <- cmd:
		return nil
	case <-e.closedSignal():
		return errors.ErrSessionClosed
	case <-ctx.Done():
		return ctx.Err()
	}
}

func await[T any](ctx context.Context, closed <-chan struct{}, reply chan T) (T, error) {
	var zero T
	select {
	case res := <-reply:
		return res, nil
	case <-closed:
		return zero, errors.ErrSessionClosed
	case <-ctx.Done():
		return zero, ctx.Err()
	}
}

func firstErr(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
