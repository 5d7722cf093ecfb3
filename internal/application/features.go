package application

import (
	"bytes"
	"context"
	"embed"
	"errors"
	"fmt"
	"go/format"
	"log/slog"
	"math/rand/v2"
	"sort"
	"sync"
	"text/template"

	"github.com/bnema/nova/internal/domain"
	"github.com/bnema/nova/internal/ports"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

var featureTemplates = template.Must(template.ParseFS(templateFS, "templates/*.tmpl"))

type templateData struct {
	Name  domain.FeatureName
	Topic string
}

// FeatureService synthesizes capability fragments and installs them into the
// feature manifest. Installed features are loaded once per process through
// LoadInstalled; an install never changes what the running session can call.
type FeatureService struct {
	repo    ports.FeatureRepository
	runtime ports.FeatureRuntime
	clock   ports.Clock
	logger  *slog.Logger
	// Pick chooses among built-in features for an empty improvement request.
	Pick func(n int) int

	installMu sync.Mutex

	mu        sync.RWMutex
	installed map[domain.FeatureName]struct{}
	loaded    map[domain.FeatureName]ports.FeatureFunc
}

func NewFeatureService(repo ports.FeatureRepository, runtime ports.FeatureRuntime, clock ports.Clock, logger *slog.Logger) *FeatureService {
	if clock == nil {
		clock = ports.SystemClock{}
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &FeatureService{
		repo:      repo,
		runtime:   runtime,
		clock:     clock,
		logger:    logger,
		Pick:      rand.IntN,
		installed: map[domain.FeatureName]struct{}{},
		loaded:    map[domain.FeatureName]ports.FeatureFunc{},
	}
}

// Synthesize maps a request topic to one catalog template and renders it.
func (s *FeatureService) Synthesize(topic string) (domain.FeatureDescriptor, error) {
	name, ok := domain.FeatureForTopic(topic)
	if !ok {
		return domain.FeatureDescriptor{}, fmt.Errorf("%w: %q", domain.ErrUnknownTopic, topic)
	}

	return s.render(name, topic)
}

// Install commits feature to the manifest. The name is checked before any
// validation work, and the manifest is written only after the fragment and
// the entry both validate.
func (s *FeatureService) Install(ctx context.Context, feature domain.FeatureDescriptor) (domain.FeatureDescriptor, error) {
	s.installMu.Lock()
	defer s.installMu.Unlock()

	_, err := s.repo.GetByName(ctx, feature.Name)
	if err == nil {
		return domain.FeatureDescriptor{}, fmt.Errorf("%w: %s", domain.ErrDuplicateFeature, feature.Name)
	}
	if !errors.Is(err, domain.ErrFeatureNotFound) {
		return domain.FeatureDescriptor{}, fmt.Errorf("look up feature %s: %w", feature.Name, err)
	}

	feature.Checksum = domain.SourceChecksum(feature.Source)
	if err := feature.Validate(); err != nil {
		return domain.FeatureDescriptor{}, fmt.Errorf("%w: %v", domain.ErrInvalidFeatureSource, err)
	}
	if err := s.runtime.Validate(ctx, feature.Source); err != nil {
		return domain.FeatureDescriptor{}, fmt.Errorf("validate feature %s: %w", feature.Name, err)
	}

	feature.InstalledAt = s.clock.Now().UTC()
	if err := s.repo.Add(ctx, feature); err != nil {
		return domain.FeatureDescriptor{}, fmt.Errorf("save feature %s: %w", feature.Name, err)
	}

	s.mu.Lock()
	s.installed[feature.Name] = struct{}{}
	s.mu.Unlock()

	s.logger.Info("feature installed", "name", feature.Name, "topic", feature.Topic, "checksum", feature.Checksum)
	return feature, nil
}

// Improve installs the feature named by request, or a random built-in one
// when request is empty.
func (s *FeatureService) Improve(ctx context.Context, request string) (domain.FeatureDescriptor, error) {
	var (
		feature domain.FeatureDescriptor
		err     error
	)
	if request == "" {
		pick := s.Pick
		if pick == nil {
			pick = rand.IntN
		}
		feature, err = s.render(domain.BuiltinFeatures[pick(len(domain.BuiltinFeatures))], "")
	} else {
		feature, err = s.Synthesize(request)
	}
	if err != nil {
		return domain.FeatureDescriptor{}, err
	}

	return s.Install(ctx, feature)
}

// Refresh reloads the installed-name cache from the manifest.
func (s *FeatureService) Refresh(ctx context.Context) error {
	features, err := s.repo.List(ctx)
	if err != nil {
		return fmt.Errorf("list features: %w", err)
	}

	installed := make(map[domain.FeatureName]struct{}, len(features))
	for _, feature := range features {
		installed[feature.Name] = struct{}{}
	}

	s.mu.Lock()
	s.installed = installed
	s.mu.Unlock()

	return nil
}

// LoadInstalled loads every manifest feature into the runtime. Features that
// fail to load are logged and skipped.
func (s *FeatureService) LoadInstalled(ctx context.Context) error {
	features, err := s.repo.List(ctx)
	if err != nil {
		return fmt.Errorf("list features: %w", err)
	}

	loaded := make(map[domain.FeatureName]ports.FeatureFunc, len(features))
	installed := make(map[domain.FeatureName]struct{}, len(features))
	for _, feature := range features {
		installed[feature.Name] = struct{}{}

		fn, err := s.runtime.Load(ctx, feature)
		if err != nil {
			s.logger.Warn("skip feature", "name", feature.Name, "error", err)
			continue
		}
		loaded[feature.Name] = fn
	}

	s.mu.Lock()
	s.loaded = loaded
	s.installed = installed
	s.mu.Unlock()

	return nil
}

// FeatureStatus pairs a manifest entry with whether this process could load it.
type FeatureStatus struct {
	Feature domain.FeatureDescriptor
	Loaded  bool
}

// Statuses lists the manifest in install order.
func (s *FeatureService) Statuses(ctx context.Context) ([]FeatureStatus, error) {
	features, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list features: %w", err)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	statuses := make([]FeatureStatus, 0, len(features))
	for _, feature := range features {
		_, loaded := s.loaded[feature.Name]
		statuses = append(statuses, FeatureStatus{Feature: feature, Loaded: loaded})
	}
	return statuses, nil
}

func (s *FeatureService) Installed() []domain.FeatureName {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return sortedNames(s.installed)
}

// Available lists the features callable in this process.
func (s *FeatureService) Available() []domain.FeatureName {
	s.mu.RLock()
	defer s.mu.RUnlock()

	names := make(map[domain.FeatureName]struct{}, len(s.loaded))
	for name := range s.loaded {
		names[name] = struct{}{}
	}
	return sortedNames(names)
}

func (s *FeatureService) Run(ctx context.Context, name domain.FeatureName, args []string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	s.mu.RLock()
	fn, ok := s.loaded[name]
	s.mu.RUnlock()
	if !ok {
		return "", fmt.Errorf("%w: %s", domain.ErrFeatureNotFound, name)
	}

	out, err := fn(args)
	if err != nil {
		return "", fmt.Errorf("run feature %s: %w", name, err)
	}
	return out, nil
}

func (s *FeatureService) render(name domain.FeatureName, topic string) (domain.FeatureDescriptor, error) {
	var buf bytes.Buffer
	if err := featureTemplates.ExecuteTemplate(&buf, string(name)+".tmpl", templateData{Name: name, Topic: topic}); err != nil {
		return domain.FeatureDescriptor{}, fmt.Errorf("render template %s: %w", name, err)
	}

	source, err := format.Source(buf.Bytes())
	if err != nil {
		return domain.FeatureDescriptor{}, fmt.Errorf("%w: format %s: %v", domain.ErrInvalidFeatureSource, name, err)
	}

	return domain.FeatureDescriptor{
		Name:     name,
		Topic:    topic,
		Source:   string(source),
		Checksum: domain.SourceChecksum(string(source)),
	}, nil
}

func sortedNames(set map[domain.FeatureName]struct{}) []domain.FeatureName {
	names := make([]domain.FeatureName, 0, len(set))
	for name := range set {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool { return names[i] < names[j] })
	return names
}
