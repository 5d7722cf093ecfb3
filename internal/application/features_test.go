package application

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tomlrepo "github.com/bnema/nova/internal/adapters/repo/toml"
	"github.com/bnema/nova/internal/adapters/runtime/yaegi"
	"github.com/bnema/nova/internal/domain"
	portmocks "github.com/bnema/nova/internal/ports/mocks"
	"github.com/google/go-cmp/cmp"
	"github.com/sebdah/goldie/v2"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var installTime = time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC)

// newManifestFeatureService wires the service to a real manifest in a temp
// directory and the interpreter runtime.
func newManifestFeatureService(t *testing.T) (*FeatureService, string) {
	t.Helper()

	manifestPath := filepath.Join(t.TempDir(), "features.toml")
	return newFeatureServiceAt(t, manifestPath), manifestPath
}

func newFeatureServiceAt(t *testing.T, manifestPath string) *FeatureService {
	t.Helper()

	cfg := viper.New()
	cfg.Set(tomlrepo.ManifestPathKey, manifestPath)

	repo, err := tomlrepo.NewManifestRepository(cfg)
	require.NoError(t, err)

	service := NewFeatureService(repo, yaegi.NewRuntime(), newFakeClock(installTime), nil)
	service.Pick = firstPick
	return service
}

func TestFeatureServiceSynthesizeRendersGoldenSource(t *testing.T) {
	t.Parallel()

	service := NewFeatureService(nil, nil, nil, nil)

	feature, err := service.Synthesize("email my boss")
	require.NoError(t, err)
	assert.Equal(t, domain.FeatureSendEmail, feature.Name)
	assert.Equal(t, "email my boss", feature.Topic)
	assert.Equal(t, domain.SourceChecksum(feature.Source), feature.Checksum)

	g := goldie.New(t, goldie.WithFixtureDir("testdata"))
	g.Assert(t, "send_email", []byte(feature.Source))
}

func TestFeatureServiceSynthesizeTopics(t *testing.T) {
	t.Parallel()

	tests := []struct {
		topic string
		want  domain.FeatureName
	}{
		{topic: "email", want: domain.FeatureSendEmail},
		{topic: "send a whatsapp to mom", want: domain.FeatureSendWhatsAppMessage},
		{topic: "device control", want: domain.FeatureControlDevice},
		{topic: "control the fan", want: domain.FeatureControlDevice},
		{topic: "email via whatsapp", want: domain.FeatureSendEmail},
	}

	service := NewFeatureService(nil, nil, nil, nil)
	for _, tt := range tests {
		t.Run(tt.topic, func(t *testing.T) {
			t.Parallel()

			feature, err := service.Synthesize(tt.topic)
			require.NoError(t, err)
			assert.Equal(t, tt.want, feature.Name)
		})
	}
}

func TestFeatureServiceSynthesizeUnknownTopic(t *testing.T) {
	t.Parallel()

	_, err := NewFeatureService(nil, nil, nil, nil).Synthesize("bake a cake")
	require.ErrorIs(t, err, domain.ErrUnknownTopic)
	assert.Contains(t, err.Error(), `"bake a cake"`)
}

func TestEveryCatalogTemplateValidatesAndRuns(t *testing.T) {
	t.Parallel()

	runtime := yaegi.NewRuntime()
	service := NewFeatureService(nil, runtime, nil, nil)

	args := map[domain.FeatureName][]string{
		domain.FeatureGetInsight:          nil,
		domain.FeatureGetTip:              nil,
		domain.FeatureSendEmail:           {"boss@example.com", "Status", "all", "green"},
		domain.FeatureSendWhatsAppMessage: {"+15550100", "on", "my", "way"},
		domain.FeatureControlDevice:       {"light", "on"},
	}
	want := map[domain.FeatureName]string{
		domain.FeatureSendEmail:           "Email to boss@example.com prepared",
		domain.FeatureSendWhatsAppMessage: "Message to +15550100 sent (simulated): on my way",
		domain.FeatureControlDevice:       "light on successfully",
		domain.FeatureGetInsight:          "Nova's insight: The universe is vast!",
	}

	for _, name := range domain.FeatureCatalog {
		t.Run(string(name), func(t *testing.T) {
			t.Parallel()

			feature, err := service.render(name, "catalog check")
			require.NoError(t, err)
			require.NoError(t, runtime.Validate(context.Background(), feature.Source))

			run, err := runtime.Load(context.Background(), feature)
			require.NoError(t, err)

			out, err := run(args[name])
			require.NoError(t, err)
			if prefix, ok := want[name]; ok {
				assert.True(t, strings.HasPrefix(out, prefix), "got %q", out)
			} else {
				assert.Contains(t, []string{"Learn Go!", "Explore space!"}, out)
			}
		})
	}
}

func TestFeatureServiceImproveInstallsAndPersists(t *testing.T) {
	t.Parallel()

	service, manifestPath := newManifestFeatureService(t)
	ctx := context.Background()

	feature, err := service.Improve(ctx, "email")
	require.NoError(t, err)
	assert.Equal(t, domain.FeatureSendEmail, feature.Name)
	assert.Equal(t, installTime, feature.InstalledAt)
	assert.Equal(t, []domain.FeatureName{domain.FeatureSendEmail}, service.Installed())

	// Installing does not make the fragment callable in this process.
	assert.Empty(t, service.Available())
	_, err = service.Run(ctx, domain.FeatureSendEmail, nil)
	require.ErrorIs(t, err, domain.ErrFeatureNotFound)

	data, err := os.ReadFile(manifestPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "send_email")
	assert.Contains(t, string(data), feature.Checksum)
}

func TestFeatureServiceDoubleInstallLeavesManifestUnchanged(t *testing.T) {
	t.Parallel()

	service, manifestPath := newManifestFeatureService(t)
	ctx := context.Background()

	_, err := service.Improve(ctx, "email")
	require.NoError(t, err)
	before, err := os.ReadFile(manifestPath)
	require.NoError(t, err)

	_, err = service.Improve(ctx, "email my accountant")
	require.ErrorIs(t, err, domain.ErrDuplicateFeature)

	after, err := os.ReadFile(manifestPath)
	require.NoError(t, err)
	if diff := cmp.Diff(string(before), string(after)); diff != "" {
		t.Fatalf("manifest changed (-before +after):\n%s", diff)
	}
}

func TestFeatureServiceBrokenFragmentLeavesManifestByteIdentical(t *testing.T) {
	t.Parallel()

	service, manifestPath := newManifestFeatureService(t)
	ctx := context.Background()

	_, err := service.Improve(ctx, "")
	require.NoError(t, err)
	before, err := os.ReadFile(manifestPath)
	require.NoError(t, err)

	broken := []domain.FeatureDescriptor{
		{Name: domain.FeatureSendEmail, Source: "package main\n\nfunc Run(args []string) (string, error) {\n"},
		{Name: domain.FeatureControlDevice, Source: "package main\n\nimport \"os\"\n\nfunc Run(args []string) (string, error) { os.Exit(1); return \"\", nil }\n"},
		{Name: domain.FeatureSendWhatsAppMessage, Source: "   "},
	}
	for _, feature := range broken {
		_, err := service.Install(ctx, feature)
		require.ErrorIs(t, err, domain.ErrInvalidFeatureSource, feature.Name)
	}

	after, err := os.ReadFile(manifestPath)
	require.NoError(t, err)
	assert.Equal(t, before, after)
	assert.Equal(t, []domain.FeatureName{domain.FeatureGetInsight}, service.Installed())
}

func TestFeatureServiceImproveEmptyPicksBuiltin(t *testing.T) {
	t.Parallel()

	service, _ := newManifestFeatureService(t)
	service.Pick = func(n int) int { return n - 1 }

	feature, err := service.Improve(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, domain.FeatureGetTip, feature.Name)
	assert.Empty(t, feature.Topic)
}

func TestFeatureServiceLoadInstalledAndRun(t *testing.T) {
	t.Parallel()

	service, _ := newManifestFeatureService(t)
	ctx := context.Background()

	_, err := service.Improve(ctx, "device control")
	require.NoError(t, err)
	_, err = service.Improve(ctx, "whatsapp")
	require.NoError(t, err)

	require.NoError(t, service.LoadInstalled(ctx))
	assert.Equal(t, []domain.FeatureName{domain.FeatureControlDevice, domain.FeatureSendWhatsAppMessage}, service.Available())

	out, err := service.Run(ctx, domain.FeatureControlDevice, []string{"fan", "off"})
	require.NoError(t, err)
	assert.Equal(t, "fan off successfully", out)

	_, err = service.Run(ctx, domain.FeatureControlDevice, []string{"fan"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "run feature control_device: usage: control_device <device> <on|off>")

	statuses, err := service.Statuses(ctx)
	require.NoError(t, err)
	require.Len(t, statuses, 2)
	assert.Equal(t, domain.FeatureControlDevice, statuses[0].Feature.Name)
	assert.True(t, statuses[0].Loaded)
	assert.True(t, statuses[1].Loaded)
}

func TestFeatureServiceLoadInstalledSkipsBrokenEntries(t *testing.T) {
	t.Parallel()

	good := domain.FeatureDescriptor{Name: domain.FeatureGetTip, Source: "package main\n"}
	bad := domain.FeatureDescriptor{Name: domain.FeatureGetInsight, Source: "package main\n"}

	repo := portmocks.NewMockFeatureRepository(t)
	runtime := portmocks.NewMockFeatureRuntime(t)
	repo.EXPECT().List(mockAnyContext()).Return([]domain.FeatureDescriptor{good, bad}, nil).Twice()
	runtime.EXPECT().Load(mockAnyContext(), good).Return(func([]string) (string, error) { return "tip", nil }, nil).Once()
	runtime.EXPECT().Load(mockAnyContext(), bad).Return(nil, domain.ErrInvalidFeatureSource).Once()

	service := NewFeatureService(repo, runtime, nil, nil)
	require.NoError(t, service.LoadInstalled(context.Background()))

	assert.Equal(t, []domain.FeatureName{domain.FeatureGetTip}, service.Available())
	assert.Equal(t, []domain.FeatureName{domain.FeatureGetInsight, domain.FeatureGetTip}, service.Installed())

	statuses, err := service.Statuses(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []FeatureStatus{{Feature: good, Loaded: true}, {Feature: bad, Loaded: false}}, statuses)
}

func TestFeatureServiceInstallRepositoryFailures(t *testing.T) {
	t.Parallel()

	storageErr := errors.New("disk full")

	tests := []struct {
		name    string
		setup   func(repo *portmocks.MockFeatureRepository, runtime *portmocks.MockFeatureRuntime)
		wantErr string
	}{
		{
			name: "lookup fails",
			setup: func(repo *portmocks.MockFeatureRepository, _ *portmocks.MockFeatureRuntime) {
				repo.EXPECT().GetByName(mockAnyContext(), domain.FeatureGetTip).Return(domain.FeatureDescriptor{}, storageErr).Once()
			},
			wantErr: "look up feature get_tip: disk full",
		},
		{
			name: "save fails",
			setup: func(repo *portmocks.MockFeatureRepository, runtime *portmocks.MockFeatureRuntime) {
				repo.EXPECT().GetByName(mockAnyContext(), domain.FeatureGetTip).Return(domain.FeatureDescriptor{}, domain.ErrFeatureNotFound).Once()
				runtime.EXPECT().Validate(mockAnyContext(), mock.Anything).Return(nil).Once()
				repo.EXPECT().Add(mockAnyContext(), mock.MatchedBy(func(f domain.FeatureDescriptor) bool {
					return f.Name == domain.FeatureGetTip && f.InstalledAt.Equal(installTime) && f.Checksum == domain.SourceChecksum(f.Source)
				})).Return(storageErr).Once()
			},
			wantErr: "save feature get_tip: disk full",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			repo := portmocks.NewMockFeatureRepository(t)
			runtime := portmocks.NewMockFeatureRuntime(t)
			tt.setup(repo, runtime)

			service := NewFeatureService(repo, runtime, newFakeClock(installTime), nil)
			_, err := service.Install(context.Background(), domain.FeatureDescriptor{
				Name:   domain.FeatureGetTip,
				Source: "package main\n\nfunc Run(args []string) (string, error) { return \"\", nil }\n",
			})
			require.Error(t, err)
			assert.ErrorIs(t, err, storageErr)
			assert.EqualError(t, err, tt.wantErr)
		})
	}
}

func TestFeatureServiceRefreshPicksUpExternalInstalls(t *testing.T) {
	t.Parallel()

	repo := portmocks.NewMockFeatureRepository(t)
	repo.EXPECT().List(mockAnyContext()).Return([]domain.FeatureDescriptor{{Name: domain.FeatureSendEmail}}, nil).Once()

	service := NewFeatureService(repo, nil, nil, nil)
	require.NoError(t, service.Refresh(context.Background()))

	assert.Equal(t, []domain.FeatureName{domain.FeatureSendEmail}, service.Installed())
	assert.Empty(t, service.Available())
}
