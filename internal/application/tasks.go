package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"

	"github.com/bnema/nova/internal/domain"
	"github.com/bnema/nova/internal/ports"
	"github.com/google/uuid"
)

var ErrTaskStoreStopped = errors.New("task store stopped")

type taskRequest struct {
	add   *domain.ScheduledTask
	due   bool
	reply chan []domain.ScheduledTask
}

// TaskStore owns the reminder list inside a single goroutine. Every read and
// write is a message to that goroutine, so the router and the poller never
// touch the slice directly.
type TaskStore struct {
	clock    ports.Clock
	logger   *slog.Logger
	requests chan taskRequest
	done     chan struct{}
}

func NewTaskStore(clock ports.Clock, logger *slog.Logger) *TaskStore {
	if clock == nil {
		clock = ports.SystemClock{}
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &TaskStore{
		clock:    clock,
		logger:   logger,
		requests: make(chan taskRequest),
		done:     make(chan struct{}),
	}
}

// Run serves requests until ctx is cancelled. Pending tasks are dropped on
// return; reminders do not outlive the process.
func (s *TaskStore) Run(ctx context.Context) error {
	defer close(s.done)

	var tasks []domain.ScheduledTask
	for {
		select {
		case <-ctx.Done():
			if len(tasks) > 0 {
				s.logger.Info("dropping pending reminders", "count", len(tasks))
			}
			return nil
		case req := <-s.requests:
			switch {
			case req.add != nil:
				tasks = append(tasks, *req.add)
				req.reply <- nil
			case req.due:
				var fired, kept []domain.ScheduledTask
				at := s.clock.Now()
				for _, task := range tasks {
					if task.Due(at) {
						fired = append(fired, task)
						continue
					}
					kept = append(kept, task)
				}
				tasks = kept
				req.reply <- fired
			default:
				req.reply <- append([]domain.ScheduledTask(nil), tasks...)
			}
		}
	}
}

// Schedule parses timeSpec, computes the next occurrence relative to the
// store clock and appends the reminder. Identical reminders are allowed.
func (s *TaskStore) Schedule(ctx context.Context, description, timeSpec string) (domain.ScheduledTask, error) {
	tod, err := domain.ParseTimeOfDay(timeSpec)
	if err != nil {
		return domain.ScheduledTask{}, err
	}

	now := s.clock.Now()
	task := domain.ScheduledTask{
		ID:          domain.TaskID(uuid.NewString()),
		Description: description,
		FireAt:      domain.NextOccurrence(tod, now),
		CreatedAt:   now,
	}

	if _, err := s.do(ctx, taskRequest{add: &task}); err != nil {
		return domain.ScheduledTask{}, fmt.Errorf("add reminder: %w", err)
	}

	s.logger.Info("scheduled reminder", "id", task.ID, "task", task.Description, "fire_at", task.FireAt)
	return task, nil
}

// TakeDue removes and returns every task due at the store clock's now.
func (s *TaskStore) TakeDue(ctx context.Context) ([]domain.ScheduledTask, error) {
	return s.do(ctx, taskRequest{due: true})
}

// Pending returns a snapshot ordered by fire time.
func (s *TaskStore) Pending(ctx context.Context) ([]domain.ScheduledTask, error) {
	tasks, err := s.do(ctx, taskRequest{})
	if err != nil {
		return nil, err
	}

	sort.SliceStable(tasks, func(i, j int) bool {
		return tasks[i].FireAt.Before(tasks[j].FireAt)
	})
	return tasks, nil
}

func (s *TaskStore) do(ctx context.Context, req taskRequest) ([]domain.ScheduledTask, error) {
	req.reply = make(chan []domain.ScheduledTask, 1)

	select {
	case s.requests <- req:
	case <-s.done:
		return nil, ErrTaskStoreStopped
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	select {
	case tasks := <-req.reply:
		return tasks, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}
