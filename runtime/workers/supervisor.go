package workers

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"biograph/contract"
	"biograph/errors"
)

// Supervisor owns the lifecycle of the background workers: it runs each
// one in its own goroutine, recovers panics, restarts crashed workers
// after a pause, and drains everything when the parent context ends.
// A failure in one worker must not take down the others.
type Supervisor struct {
	// mu guards cancel: Run installs it, Stop may fire from another
	// goroutine at any point in the lifecycle.
	mu              sync.Mutex
	cancel          context.CancelFunc
	wg              *sync.WaitGroup
	log             *slog.Logger
	restartInterval time.Duration
	workers         []contract.Worker
}

func NewSupervisor(log *slog.Logger, restartInterval time.Duration) *Supervisor {
	return &Supervisor{
		wg:              &sync.WaitGroup{},
		log:             log,
		restartInterval: restartInterval,
	}
}

func (s *Supervisor) Add(worker ...contract.Worker) contract.ISupervisor {
	s.workers = append(s.workers, worker...)
	return s
}

// Run blocks until every supervised worker has finished. Cancelling the
// parent context stops the children; calling Stop only cancels ours.
func (s *Supervisor) Run(ctx context.Context) {
	supervisedCtx, cancel := context.WithCancel(ctx)
	s.mu.Lock()
	s.cancel = cancel
	s.mu.Unlock()
	defer cancel()

	for _, worker := range s.workers {
		s.Start(supervisedCtx, worker)
	}
	s.wg.Wait()
}

// Start runs one worker under supervision. A panic inside Run is
// recovered and counted as a crash; crashes trigger a restart after
// the configured pause, a clean return never does.
func (s *Supervisor) Start(ctx context.Context, worker contract.Worker) {
	s.wg.Add(1)
	workerName := contract.GetWorkerName(worker)

	go func() {
		defer s.wg.Done()

		for {
			if ctx.Err() != nil {
				s.log.Info(fmt.Sprintf("Stopping: %s", workerName))
				return
			}

			err := func() (err error) {
				defer func() {
					if r := recover(); r != nil {
						s.log.Error(fmt.Sprintf("Worker panicked: %s", workerName), "panic", r)
						err = errors.ErrWorkerPanic
					}
				}()
				return worker.Run(ctx)
			}()

			if err == nil {
				s.log.Info(fmt.Sprintf("Worker finished: %s", workerName))
				return
			}
			if ctx.Err() != nil {
				// The error is just the cancellation propagating out.
				s.log.Info(fmt.Sprintf("Stopping: %s", workerName))
				return
			}

			s.log.Warn(fmt.Sprintf("Worker crashed, restarting: %s", workerName), "err", err)
			select {
			case <-ctx.Done():
				return
			case <-time.After(s.restartInterval):
			}
		}
	}()
}

func (s *Supervisor) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cancel != nil {
		s.cancel()
	}
}
