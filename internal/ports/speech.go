package ports

import "context"

// Listener yields one transcribed utterance per call. Implementations bound
// the wait themselves; an error or timeout is reported, never panicked.
type Listener interface {
	Listen(ctx context.Context) (string, error)
}

type Speaker interface {
	Speak(ctx context.Context, text string) error
}
