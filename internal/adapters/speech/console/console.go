package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/bnema/nova/internal/ports"
	"github.com/charmbracelet/lipgloss"
)

const DefaultListenTimeout = 60 * time.Second

var ErrListenTimeout = errors.New("listen timed out")

type line struct {
	text string
	err  error
}

// Listener reads one utterance per input line. A single reader goroutine
// feeds a channel so Listen can give up on timeout or cancellation without
// losing the line that arrives later.
type Listener struct {
	in      io.Reader
	prompt  io.Writer
	timeout time.Duration
	style   lipgloss.Style

	once  sync.Once
	lines chan line
}

var _ ports.Listener = (*Listener)(nil)

// NewListener writes a prompt to prompt before each wait when prompt is not
// nil. A non-positive timeout disables the limit.
func NewListener(in io.Reader, prompt io.Writer, timeout time.Duration) *Listener {
	return &Listener{
		in:      in,
		prompt:  prompt,
		timeout: timeout,
		style:   lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		lines:   make(chan line),
	}
}

func (l *Listener) Listen(ctx context.Context) (string, error) {
	l.once.Do(func() { go l.read() })

	if l.prompt != nil {
		_, _ = fmt.Fprint(l.prompt, l.style.Render("> "))
	}

	var timeout <-chan time.Time
	if l.timeout > 0 {
		timer := time.NewTimer(l.timeout)
		defer timer.Stop()
		timeout = timer.C
	}

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case <-timeout:
		return "", ErrListenTimeout
	case next, ok := <-l.lines:
		if !ok {
			return "", io.EOF
		}
		return next.text, next.err
	}
}

func (l *Listener) read() {
	defer close(l.lines)

	scanner := bufio.NewScanner(l.in)
	for scanner.Scan() {
		l.lines <- line{text: scanner.Text()}
	}
	if err := scanner.Err(); err != nil {
		l.lines <- line{err: fmt.Errorf("read input: %w", err)}
	}
}

// Speaker prints replies with the assistant's name as a styled label. It is
// safe for concurrent use so the reminder poller can speak mid-conversation.
type Speaker struct {
	out   io.Writer
	name  string
	label lipgloss.Style
	text  lipgloss.Style
	mu    sync.Mutex
}

var _ ports.Speaker = (*Speaker)(nil)

func NewSpeaker(out io.Writer, name string) *Speaker {
	return &Speaker{
		out:   out,
		name:  name,
		label: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		text:  lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
	}
}

func (s *Speaker) Speak(ctx context.Context, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := fmt.Fprintf(s.out, "%s %s\n", s.label.Render(s.name+":"), s.text.Render(text)); err != nil {
		return fmt.Errorf("write reply: %w", err)
	}
	return nil
}

// Tee speaks through every speaker in order and joins their failures.
type Tee []ports.Speaker

func (t Tee) Speak(ctx context.Context, text string) error {
	var errs []error
	for _, speaker := range t {
		if err := speaker.Speak(ctx, text); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
