package application

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/bnema/nova/internal/domain"
	"github.com/bnema/nova/internal/ports"
)

const DefaultPollInterval = 10 * time.Second

type dueTaker interface {
	TakeDue(ctx context.Context) ([]domain.ScheduledTask, error)
}

// ReminderPoller announces due reminders. It keeps polling while the store is
// empty and only stops when its context is cancelled.
type ReminderPoller struct {
	tasks    dueTaker
	speaker  ports.Speaker
	clock    ports.Clock
	phrases  Phrasebook
	interval time.Duration
	logger   *slog.Logger
}

func NewReminderPoller(tasks dueTaker, speaker ports.Speaker, clock ports.Clock, phrases Phrasebook, interval time.Duration, logger *slog.Logger) *ReminderPoller {
	if clock == nil {
		clock = ports.SystemClock{}
	}
	if interval <= 0 {
		interval = DefaultPollInterval
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &ReminderPoller{
		tasks:    tasks,
		speaker:  speaker,
		clock:    clock,
		phrases:  phrases,
		interval: interval,
		logger:   logger,
	}
}

func (p *ReminderPoller) Run(ctx context.Context) error {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if _, err := p.PollOnce(ctx); err != nil {
				if errors.Is(err, context.Canceled) || errors.Is(err, ErrTaskStoreStopped) {
					return nil
				}
				p.logger.Error("poll reminders", "error", err)
			}
		}
	}
}

// PollOnce fires every due reminder exactly once and returns them.
func (p *ReminderPoller) PollOnce(ctx context.Context) ([]domain.ScheduledTask, error) {
	fired, err := p.tasks.TakeDue(ctx)
	if err != nil {
		return nil, err
	}

	for _, task := range fired {
		alert := p.phrases.Sayf("Alert: %s at %s, %s", task.Description, p.clock.Now().Format("15:04"))
		p.logger.Info("reminder fired", "id", task.ID, "task", task.Description, "fire_at", task.FireAt)
		if err := p.speaker.Speak(ctx, alert); err != nil {
			p.logger.Error("speak reminder", "id", task.ID, "error", err)
		}
	}

	return fired, nil
}
