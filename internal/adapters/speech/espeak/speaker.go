package espeak

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/bnema/nova/internal/ports"
)

var ErrUnavailable = errors.New("espeak command unavailable")

type runFunc func(ctx context.Context, input string, args ...string) (stderr string, err error)

// Speaker voices replies through the espeak command, reading text on stdin.
type Speaker struct {
	voice string
	run   runFunc
}

var _ ports.Speaker = (*Speaker)(nil)

func NewSpeaker(voice string) *Speaker {
	return &Speaker{voice: voice, run: runEspeak}
}

func (s *Speaker) Speak(ctx context.Context, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	args := []string{"--stdin"}
	if s.voice != "" {
		args = append(args, "-v", s.voice)
	}

	stderr, err := s.run(ctx, text, args...)
	if err != nil {
		if stderr != "" {
			return fmt.Errorf("espeak: %w: %s", err, stderr)
		}
		return fmt.Errorf("espeak: %w", err)
	}
	return nil
}

func runEspeak(ctx context.Context, input string, args ...string) (string, error) {
	path, err := exec.LookPath("espeak")
	if err != nil {
		if errors.Is(err, exec.ErrNotFound) {
			return "", ErrUnavailable
		}
		return "", fmt.Errorf("locate espeak command: %w", err)
	}

	var stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, path, args...)
	cmd.Stdin = strings.NewReader(input)
	cmd.Stderr = &stderr

	err = cmd.Run()
	return strings.TrimSpace(stderr.String()), err
}
