package application

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/bnema/nova/internal/domain"
	"github.com/bnema/nova/internal/ports"
)

const menuText = "Available commands: say 'hi' or 'hello' to start, 'time' for current time, " +
	"'date' for today's date, 'weather' or 'what about' then a city for weather, " +
	"'menu' for this list, 'improve' to enhance Nova with a new feature, " +
	"'code' then topic (e.g., 'code email') to generate code, " +
	"'open' then a site (e.g., 'open youtube') to open websites, " +
	"'search' then topic (e.g., 'search ai') for info, " +
	"'remind me' then task and time (e.g., 'remind me to call at 3pm') to set a reminder, or 'exit' to quit."

const shutdownSpeakTimeout = 5 * time.Second

// Outcome is the result of routing one utterance.
type Outcome struct {
	Intent   domain.Intent
	Continue bool
}

type reminderScheduler interface {
	Schedule(ctx context.Context, description, timeSpec string) (domain.ScheduledTask, error)
}

type featureImprover interface {
	Improve(ctx context.Context, request string) (domain.FeatureDescriptor, error)
	Available() []domain.FeatureName
	Installed() []domain.FeatureName
}

// Collaborators groups the outside-world ports the assistant talks to.
type Collaborators struct {
	Listener ports.Listener
	Speaker  ports.Speaker
	Weather  ports.WeatherProvider
	Search   ports.SearchProvider
	Sites    ports.SiteLauncher
}

// Assistant is the command router. It is driven by one goroutine: Handle and
// Run must not be called concurrently.
type Assistant struct {
	io       Collaborators
	tasks    reminderScheduler
	features featureImprover
	phrases  Phrasebook
	clock    ports.Clock
	logger   *slog.Logger
	memory   domain.MemoryRing

	// inputClosed is set once the listener reports io.EOF.
	inputClosed bool
}

func NewAssistant(io Collaborators, tasks reminderScheduler, features featureImprover, phrases Phrasebook, clock ports.Clock, logger *slog.Logger) *Assistant {
	if clock == nil {
		clock = ports.SystemClock{}
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &Assistant{
		io:       io,
		tasks:    tasks,
		features: features,
		phrases:  phrases,
		clock:    clock,
		logger:   logger,
	}
}

// Run greets, then routes utterances until an exit command, the end of
// input, or until ctx is cancelled, which is treated as an interrupt.
func (a *Assistant) Run(ctx context.Context) error {
	a.speak(ctx, a.phrases.Say(PhraseGreeting))

	for {
		utterance := a.listen(ctx)
		if ctx.Err() != nil {
			a.shutdown(ctx)
			return nil
		}
		if a.inputClosed && utterance == "" {
			a.logger.Info("input closed, leaving session")
			return nil
		}

		if out := a.Handle(ctx, utterance); !out.Continue || a.inputClosed {
			return nil
		}
	}
}

// Handle classifies utterance, records it in memory and performs its side
// effect. The contextual fallback is evaluated against the memory as it was
// before this utterance. Follow-up answers are remembered after it.
func (a *Assistant) Handle(ctx context.Context, utterance string) Outcome {
	utterance = domain.Normalize(utterance)
	intent := domain.Classify(utterance)
	previous, _ := a.memory.Latest()
	if intent == domain.IntentUnrecognized && utterance != "" && a.memory.RecentContains(utterance) {
		intent = domain.IntentContextualFallback
	}
	a.remember(utterance)

	a.logger.Debug("routing utterance", "intent", intent, "utterance", utterance)
	return a.dispatch(ctx, intent, utterance, previous)
}

// Memory returns the remembered commands oldest first.
func (a *Assistant) Memory() []domain.CommandRecord {
	return a.memory.Records()
}

func (a *Assistant) dispatch(ctx context.Context, intent domain.Intent, utterance string, previous domain.CommandRecord) Outcome {
	out := Outcome{Intent: intent, Continue: true}

	switch intent {
	case domain.IntentGreeting:
		a.speak(ctx, a.phrases.Say(PhraseGreeting))
	case domain.IntentTime:
		a.speak(ctx, fmt.Sprintf("The current time is %s.", a.clock.Now().Format("15:04")))
	case domain.IntentDate:
		a.speak(ctx, fmt.Sprintf("Today is %s.", a.clock.Now().Format("2006-01-02")))
	case domain.IntentWeather:
		a.weather(ctx)
	case domain.IntentMenu:
		a.speak(ctx, a.menu())
	case domain.IntentImprove:
		a.speak(ctx, a.phrases.Say(PhraseImprove))
		if request := a.followUp(ctx); request != "" {
			a.improve(ctx, request)
		}
	case domain.IntentCode:
		a.code(ctx)
	case domain.IntentOpenSite:
		a.openSite(ctx, utterance)
	case domain.IntentSearch:
		a.search(ctx, utterance)
	case domain.IntentRemindMe:
		a.remind(ctx, utterance)
	case domain.IntentExit:
		a.speak(ctx, a.phrases.Sayf("Shutting down, %s. Farewell!"))
		out.Continue = false
	case domain.IntentContextualFallback:
		a.speak(ctx, a.phrases.Sayf("Following up on %s. What next, %s?", previous.Utterance))
	default:
		if utterance != "" {
			a.speak(ctx, a.phrases.Say(PhraseDefault))
		}
	}

	return out
}

// menu appends the features callable now and those committed to the
// manifest since this process loaded it.
func (a *Assistant) menu() string {
	available := a.features.Available()
	loaded := make(map[domain.FeatureName]bool, len(available))
	for _, name := range available {
		loaded[name] = true
	}
	var pending []domain.FeatureName
	for _, name := range a.features.Installed() {
		if !loaded[name] {
			pending = append(pending, name)
		}
	}

	text := menuText
	if len(available) > 0 {
		text += " Installed features: " + joinNames(available) + "."
	}
	if len(pending) > 0 {
		text += " Available after restart: " + joinNames(pending) + "."
	}
	return text
}

func (a *Assistant) weather(ctx context.Context) {
	a.speak(ctx, a.phrases.Sayf("Please name a city, %s."))
	city := a.followUp(ctx)
	if city == "" {
		a.speak(ctx, a.phrases.Sayf("City not recognized. Try again, %s."))
		return
	}

	report, err := a.io.Weather.Weather(ctx, city)
	if err != nil {
		a.logger.Error("fetch weather", "city", city, "error", err)
		a.speak(ctx, "Unable to fetch weather data at the moment.")
		return
	}
	a.speak(ctx, report)
}

func (a *Assistant) code(ctx context.Context) {
	a.speak(ctx, a.phrases.Sayf("Specify a feature, %s (e.g., 'code email')."))
	topic := a.followUp(ctx)
	if topic == "" {
		return
	}
	if _, ok := domain.FeatureForTopic(topic); !ok {
		a.speak(ctx, a.phrases.Say(PhraseDefault))
		return
	}
	a.improve(ctx, topic)
}

func (a *Assistant) improve(ctx context.Context, request string) {
	feature, err := a.features.Improve(ctx, request)
	switch {
	case err == nil:
		a.speak(ctx, a.phrases.Say(PhraseSuccess)+a.phrases.Sayf(" New feature: %s. Restart me, %s!", feature.Name))
	case errors.Is(err, domain.ErrUnknownTopic):
		a.speak(ctx, a.phrases.Say(PhraseDefault)+a.phrases.Sayf(" Try %s, %s.", quotedList(domain.TopicExamples())))
	case errors.Is(err, domain.ErrDuplicateFeature):
		a.logger.Info("feature already installed", "request", request, "error", err)
		a.speak(ctx, a.phrases.Say(PhraseDefault))
	default:
		a.logger.Error("install feature", "request", request, "error", err)
		a.speak(ctx, a.phrases.Say(PhraseFailure))
	}
}

func (a *Assistant) openSite(ctx context.Context, utterance string) {
	site := firstWord(domain.TextAfter(utterance, "open"))
	if site == "" {
		a.speak(ctx, a.phrases.Sayf("Please specify a site, %s (e.g., 'open youtube')."))
		return
	}

	err := a.io.Sites.Open(ctx, site)
	switch {
	case err == nil:
		a.speak(ctx, a.phrases.Sayf("Opening %s for you, %s!", site))
	case errors.Is(err, domain.ErrUnknownSite):
		a.speak(ctx, a.phrases.Sayf("Site '%s' not recognized. Try another, %s!", site))
	default:
		a.logger.Error("open site", "site", site, "error", err)
		a.speak(ctx, a.phrases.Sayf("Sorry, I couldn't open %s. Check your setup, %s.", site))
	}
}

func (a *Assistant) search(ctx context.Context, utterance string) {
	topic := domain.TextAfter(utterance, "search")
	if topic == "" {
		a.speak(ctx, a.phrases.Sayf("What topic should I search, %s? (e.g., 'search ai')"))
		reply := a.followUp(ctx)
		topic = strings.TrimSpace(strings.TrimPrefix(reply, "search"))
	}
	if topic == "" {
		a.speak(ctx, a.phrases.Sayf("Please provide a topic, %s!"))
		return
	}

	result, err := a.io.Search.Search(ctx, topic)
	if err != nil {
		a.logger.Error("search web", "topic", topic, "error", err)
		a.speak(ctx, a.phrases.Sayf("Search failed: %v. Check your API setup, %s.", err))
		return
	}
	a.speak(ctx, a.phrases.Say(PhraseSearch)+" "+result)
}

func (a *Assistant) remind(ctx context.Context, utterance string) {
	reminder := domain.TextAfter(utterance, "remind me")
	if !domain.HasReminderSeparator(reminder) {
		a.speak(ctx, a.phrases.Sayf("State the task and time (e.g., 'to call at 3pm'), %s."))
		reminder = a.followUp(ctx)
	}
	if reminder == "" {
		return
	}

	description, timeSpec, err := domain.ParseReminder(reminder)
	if err != nil {
		a.speak(ctx, a.phrases.Sayf("Use format 'task at time', %s."))
		return
	}

	if _, err := a.tasks.Schedule(ctx, description, timeSpec); err != nil {
		a.logger.Error("schedule reminder", "task", description, "time", timeSpec, "error", err)
		a.speak(ctx, a.phrases.Say(PhraseFailure))
		return
	}
	a.speak(ctx, a.phrases.Say(PhraseReminderSet))
}

// listen returns the next normalized utterance, or "" on error or timeout.
func (a *Assistant) listen(ctx context.Context) string {
	text, err := a.io.Listener.Listen(ctx)
	if err != nil {
		if errors.Is(err, io.EOF) {
			a.inputClosed = true
			return ""
		}
		if ctx.Err() == nil {
			a.logger.Debug("listen", "error", err)
		}
		return ""
	}
	return domain.Normalize(text)
}

// followUp listens for the answer to a prompt and remembers it like a command.
func (a *Assistant) followUp(ctx context.Context) string {
	reply := a.listen(ctx)
	a.remember(reply)
	return reply
}

func (a *Assistant) remember(utterance string) {
	if utterance != "" {
		a.memory.Remember(utterance, a.clock.Now())
	}
}

func (a *Assistant) speak(ctx context.Context, text string) {
	if err := a.io.Speaker.Speak(ctx, text); err != nil {
		a.logger.Error("speak", "error", err)
	}
}

func (a *Assistant) shutdown(ctx context.Context) {
	speakCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownSpeakTimeout)
	defer cancel()

	a.speak(speakCtx, a.phrases.Sayf("Emergency shutdown initiated, %s!"))
}

func joinNames(names []domain.FeatureName) string {
	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, string(name))
	}
	return strings.Join(parts, ", ")
}

// quotedList renders "'a', 'b', or 'c'".
func quotedList(items []string) string {
	quoted := make([]string, 0, len(items))
	for _, item := range items {
		quoted = append(quoted, "'"+item+"'")
	}
	switch len(quoted) {
	case 0:
		return ""
	case 1:
		return quoted[0]
	case 2:
		return quoted[0] + " or " + quoted[1]
	}
	return strings.Join(quoted[:len(quoted)-1], ", ") + ", or " + quoted[len(quoted)-1]
}

func firstWord(text string) string {
	fields := strings.Fields(text)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}
