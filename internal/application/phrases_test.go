package application

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPhrasebookSay(t *testing.T) {
	t.Parallel()

	phrases := testPhrases()

	assert.Equal(t, "Hello, I'm NOVA! How can I assist you today, sir?", phrases.Say(PhraseGreeting))
	assert.Equal(t, "Reminder noted, sir. I'll alert you when it's time!", phrases.Say(PhraseReminderSet))
	assert.Equal(t, "I'm not sure about that, sir. Can you clarify?", phrases.Say("unknown-kind"))
}

func TestPhrasebookPickIsBounded(t *testing.T) {
	t.Parallel()

	for kind, templates := range phraseTemplates {
		var seen []int
		phrases := Phrasebook{Name: "NOVA", Addressee: "sir", Pick: func(n int) int {
			seen = append(seen, n)
			return n - 1
		}}

		assert.NotEmpty(t, phrases.Say(kind))
		assert.Equal(t, []int{len(templates)}, seen, string(kind))
	}
}

func TestPhrasebookSayfAppendsAddressee(t *testing.T) {
	t.Parallel()

	phrases := Phrasebook{Name: "Friday", Addressee: "boss"}

	assert.Equal(t, "Opening youtube for you, boss!", phrases.Sayf("Opening %s for you, %s!", "youtube"))
	assert.Equal(t, "Shutting down, boss. Farewell!", phrases.Sayf("Shutting down, %s. Farewell!"))
}

func TestNewPhrasebookDefaultsToRandomPick(t *testing.T) {
	t.Parallel()

	phrases := NewPhrasebook("NOVA", "sir")
	assert.NotNil(t, phrases.Pick)
	assert.Contains(t, phraseTemplates[PhraseSearch], "Searching the vast knowledge net for you, %[1]s... Here's what I found:")
	assert.NotEmpty(t, phrases.Say(PhraseSearch))
}
