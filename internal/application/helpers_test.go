package application

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock(now time.Time) *fakeClock {
	return &fakeClock{now: now}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

type recordingSpeaker struct {
	mu    sync.Mutex
	lines []string
	err   error
}

func (s *recordingSpeaker) Speak(_ context.Context, text string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lines = append(s.lines, text)
	return s.err
}

func (s *recordingSpeaker) Lines() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.lines...)
}

func (s *recordingSpeaker) Last() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.lines) == 0 {
		return ""
	}
	return s.lines[len(s.lines)-1]
}

var errScriptExhausted = errors.New("script exhausted")

// scriptedListener replays utterances, then reports end, or
// errScriptExhausted when end is nil.
type scriptedListener struct {
	mu      sync.Mutex
	replies []string
	end     error
}

func (l *scriptedListener) Listen(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	if len(l.replies) == 0 {
		if l.end != nil {
			return "", l.end
		}
		return "", errScriptExhausted
	}
	next := l.replies[0]
	l.replies = l.replies[1:]
	return next, nil
}

func firstPick(int) int { return 0 }

func testPhrases() Phrasebook {
	return Phrasebook{Name: "NOVA", Addressee: "sir", Pick: firstPick}
}

// startTaskStore runs store until the test ends.
func startTaskStore(t *testing.T, store *TaskStore) {
	t.Helper()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = store.Run(ctx)
	}()
	t.Cleanup(func() {
		cancel()
		<-done
	})
}

func mockAnyContext() interface{} {
	return mock.Anything
}
