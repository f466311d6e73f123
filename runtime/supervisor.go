package runtime

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"chat-notify/contract"
	"chat-notify/domain/event"
	"chat-notify/errors"
)

const waitTimeBeforeRestart = 200 * time.Millisecond

// Supervisor runs each worker in a goroutine, recovers panics and
// restarts crashed workers. A failure in one worker must not stop the
// supervisor itself. Shuts down properly when the parent context is
// canceled and waits for all goroutines to finish.
type Supervisor struct {
	Cancel   context.CancelFunc
	wg       *sync.WaitGroup
	log      *slog.Logger
	workers  []contract.Worker
	handlers []event.Handler
}

func NewSupervisor(log *slog.Logger, handlers ...event.Handler) *Supervisor {
	return &Supervisor{wg: &sync.WaitGroup{}, log: log, handlers: handlers}
}

func (s *Supervisor) Add(worker ...contract.Worker) *Supervisor {
	s.workers = append(s.workers, worker...)
	return s
}

// Run creates a local cancellation trigger tied to the parent ctx:
// if the parent cancels, the children cancel; if we call s.Cancel(),
// only our children cancel.
func (s *Supervisor) Run(ctx context.Context) {
	supervisedCtx, cancel := context.WithCancel(ctx)
	s.Cancel = cancel
	defer s.Cancel()

	for _, worker := range s.workers {
		s.Start(supervisedCtx, worker)
	}
	s.wg.Wait()
}

// Start runs a worker under supervision. If its Run method panics, the
// supervisor recovers and restarts the worker after a short delay.
func (s *Supervisor) Start(ctx context.Context, worker contract.Worker) {
	s.wg.Add(1)
	workerName := contract.GetWorkerName(worker)

	go func() {
		defer s.wg.Done()

		for {
			if ctx.Err() != nil {
				s.log.Info(fmt.Sprintf("Stopping : %s", workerName))
				return
			}

			err := func() (err error) {
				defer func() {
					if r := recover(); r != nil {
						err = errors.ErrWorkerPanic
					}
				}()
				return worker.Run(ctx)
			}()

			if err == nil {
				// Terminated properly, never restart !
				s.log.Info(fmt.Sprintf("Worker finished : %s", workerName))
				return
			}

			if ctx.Err() != nil {
				s.log.Info("Worker stopped (context canceled)", "name", workerName)
				return
			}

			s.log.Warn("Worker crashed, restarting", "name", workerName, "error", err)
			s.emitRestart(workerName)

			select {
			case <-ctx.Done():
				return
			case <-time.After(waitTimeBeforeRestart):
			}
		}
	}()
}

func (s *Supervisor) emitRestart(workerName string) {
	e := event.Event{
		Type:      event.RestartedAfterPanicType,
		CreatedAt: time.Now().UTC(),
		Payload:   event.WorkerRestartedAfterPanic{WorkerName: workerName},
	}
	for _, handler := range s.handlers {
		handler.Handle(e)
	}
}

// Stop cancels all supervised goroutines; Run then waits for them.
func (s *Supervisor) Stop() {
	if s.Cancel != nil {
		s.Cancel()
	}
}
