package console

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestListenerReadsLinesThenEOF(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	var prompt bytes.Buffer
	listener := NewListener(strings.NewReader("hello nova\nwhat time is it\n"), &prompt, time.Second)

	first, err := listener.Listen(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "hello nova", first)

	second, err := listener.Listen(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "what time is it", second)

	_, err = listener.Listen(context.Background())
	assert.ErrorIs(t, err, io.EOF)
	assert.Contains(t, prompt.String(), ">")
}

func TestListenerTimesOutAndKeepsLateLine(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	reader, writer := io.Pipe()
	listener := NewListener(reader, nil, 20*time.Millisecond)

	_, err := listener.Listen(context.Background())
	require.ErrorIs(t, err, ErrListenTimeout)

	go func() {
		_, _ = io.WriteString(writer, "late reply\n")
		_ = writer.Close()
	}()

	listener.timeout = time.Second
	got, err := listener.Listen(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "late reply", got)

	_, err = listener.Listen(context.Background())
	assert.ErrorIs(t, err, io.EOF)
}

func TestListenerHonoursCancellation(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	reader, writer := io.Pipe()
	listener := NewListener(reader, nil, 0)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := listener.Listen(ctx)
	assert.ErrorIs(t, err, context.Canceled)

	_ = writer.Close()
	_, err = listener.Listen(context.Background())
	assert.ErrorIs(t, err, io.EOF)
}

func TestSpeakerPrefixesName(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	speaker := NewSpeaker(&out, "NOVA")

	require.NoError(t, speaker.Speak(context.Background(), "Today is 2026-03-01."))
	assert.Contains(t, out.String(), "NOVA:")
	assert.Contains(t, out.String(), "Today is 2026-03-01.")
	assert.True(t, strings.HasSuffix(out.String(), "\n"))
}

type failingSpeaker struct{ err error }

func (f failingSpeaker) Speak(context.Context, string) error { return f.err }

func TestTeeSpeaksEverywhereAndJoinsErrors(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	boom := errors.New("espeak missing")
	tee := Tee{failingSpeaker{err: boom}, NewSpeaker(&out, "NOVA")}

	err := tee.Speak(context.Background(), "hello")
	require.ErrorIs(t, err, boom)
	assert.Contains(t, out.String(), "hello")
}
