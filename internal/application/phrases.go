package application

import (
	"fmt"
	"math/rand/v2"
)

type PhraseKind string

const (
	PhraseGreeting    PhraseKind = "greeting"
	PhraseSearch      PhraseKind = "search"
	PhraseImprove     PhraseKind = "improve"
	PhraseSuccess     PhraseKind = "success"
	PhraseFailure     PhraseKind = "failure"
	PhraseReminderSet PhraseKind = "reminder_set"
	PhraseDefault     PhraseKind = "default"
)

var phraseTemplates = map[PhraseKind][]string{
	PhraseGreeting: {
		"Hello, I'm %[2]s! How can I assist you today, %[1]s?",
		"Greetings, %[1]s! %[2]s at your service.",
		"Hey there, %[1]s! %[2]s's ready to help!",
	},
	PhraseSearch: {
		"Searching the vast knowledge net for you, %[1]s... Here's what I found:",
		"Let me dive into the web for you, %[1]s...",
	},
	PhraseImprove: {
		"A chance to evolve? Tell me what to add, %[1]s!",
		"Upgrading %[2]s. Give me a challenge, %[1]s!",
	},
	PhraseSuccess: {
		"Evolution complete, %[1]s! Restart me to use it.",
		"Success! %[2]s's smarter now, %[1]s!",
	},
	PhraseFailure: {
		"Oops, an error occurred, %[1]s. Check the logs.",
		"I stumbled, %[1]s. Let's try that again.",
	},
	PhraseReminderSet: {
		"Reminder noted, %[1]s. I'll alert you when it's time!",
		"Task logged in my circuits, %[1]s!",
	},
	PhraseDefault: {
		"I'm not sure about that, %[1]s. Can you clarify?",
	},
}

// Phrasebook renders the assistant's persona replies.
type Phrasebook struct {
	Name      string
	Addressee string
	// Pick returns an index in [0, n). Defaults to math/rand.
	Pick func(n int) int
}

func NewPhrasebook(name, addressee string) Phrasebook {
	return Phrasebook{Name: name, Addressee: addressee, Pick: rand.IntN}
}

func (p Phrasebook) Say(kind PhraseKind) string {
	templates := phraseTemplates[kind]
	if len(templates) == 0 {
		templates = phraseTemplates[PhraseDefault]
	}

	pick := p.Pick
	if pick == nil {
		pick = rand.IntN
	}

	return fmt.Sprintf(templates[pick(len(templates))], p.Addressee, p.Name)
}

// Sayf formats a one-off reply, appending the addressee argument last.
func (p Phrasebook) Sayf(format string, args ...any) string {
	return fmt.Sprintf(format, append(args, p.Addressee)...)
}
