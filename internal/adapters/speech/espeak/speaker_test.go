package espeak

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpeakerPipesTextToEspeak(t *testing.T) {
	t.Parallel()

	speaker := &Speaker{voice: "en-us", run: func(ctx context.Context, input string, args ...string) (string, error) {
		assert.Equal(t, "Alert: call mom at 15:00, sir", input)
		assert.Equal(t, []string{"--stdin", "-v", "en-us"}, args)
		return "", nil
	}}

	require.NoError(t, speaker.Speak(context.Background(), "Alert: call mom at 15:00, sir"))
}

func TestSpeakerReportsStderr(t *testing.T) {
	t.Parallel()

	speaker := &Speaker{run: func(ctx context.Context, input string, args ...string) (string, error) {
		assert.Equal(t, []string{"--stdin"}, args)
		return "no audio device", errors.New("exit status 1")
	}}

	err := speaker.Speak(context.Background(), "hello")
	require.Error(t, err)
	assert.ErrorContains(t, err, "no audio device")
}

func TestSpeakerSkipsCancelledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	speaker := &Speaker{run: func(context.Context, string, ...string) (string, error) {
		t.Fatal("espeak must not run after cancellation")
		return "", nil
	}}

	assert.ErrorIs(t, speaker.Speak(ctx, "hello"), context.Canceled)
}
