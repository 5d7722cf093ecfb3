package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"time"

	launcher "github.com/bnema/nova/internal/adapters/launcher/browser"
	featuresrender "github.com/bnema/nova/internal/adapters/render/features"
	tomlrepo "github.com/bnema/nova/internal/adapters/repo/toml"
	"github.com/bnema/nova/internal/adapters/runtime/yaegi"
	googlesearch "github.com/bnema/nova/internal/adapters/search/google"
	chainstore "github.com/bnema/nova/internal/adapters/secrets/chain"
	"github.com/bnema/nova/internal/adapters/speech/console"
	"github.com/bnema/nova/internal/adapters/speech/espeak"
	"github.com/bnema/nova/internal/adapters/weather/openweather"
	"github.com/bnema/nova/internal/application"
	"github.com/bnema/nova/internal/config"
	"github.com/bnema/nova/internal/domain"
	"github.com/bnema/nova/internal/logs"
	"github.com/bnema/nova/internal/ports"
	"github.com/spf13/viper"
)

const collaboratorTimeout = 15 * time.Second

type app struct {
	cfg            config.Config
	logger         *slog.Logger
	logCloser      io.Closer
	manifest       *tomlrepo.ManifestRepository
	features       *application.FeatureService
	secretStore    ports.SecretStore
	weather        ports.WeatherProvider
	search         ports.SearchProvider
	sites          ports.SiteLauncher
	phrases        application.Phrasebook
	statusRenderer func([]application.FeatureStatus, featuresrender.RenderOptions) (string, error)
	sourceRenderer func(domain.FeatureDescriptor, int) (string, error)
	now            func() time.Time
}

func wireApp() (*app, error) {
	v := viper.New()
	cfg, err := config.Load(v)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	logger, logCloser, err := logs.New(logs.Options{
		Level:        cfg.Log.Level,
		File:         cfg.Log.File,
		Console:      os.Stderr,
		ConsoleLevel: slog.LevelWarn,
	})
	if err != nil {
		return nil, fmt.Errorf("wire logger: %w", err)
	}

	manifest, err := tomlrepo.NewManifestRepository(v)
	if err != nil {
		_ = logCloser.Close()
		return nil, fmt.Errorf("wire feature manifest: %w", err)
	}

	secretStore, err := chainstore.NewDefault(cfg.Secrets.Dir)
	if err != nil {
		_ = logCloser.Close()
		return nil, fmt.Errorf("wire secret store chain: %w", err)
	}

	httpClient := &http.Client{Timeout: collaboratorTimeout}

	return &app{
		cfg:            cfg,
		logger:         logger,
		logCloser:      logCloser,
		manifest:       manifest,
		features:       application.NewFeatureService(manifest, yaegi.NewRuntime(), ports.SystemClock{}, logger),
		secretStore:    secretStore,
		weather:        openweather.NewClient(cfg.Weather.BaseURL, secretStore, httpClient),
		search:         googlesearch.NewClient(cfg.Search.BaseURL, cfg.Search.CX, secretStore, httpClient),
		sites:          launcher.NewLauncher(),
		phrases:        application.NewPhrasebook(cfg.Assistant.Name, cfg.Assistant.Addressee),
		statusRenderer: featuresrender.Render,
		sourceRenderer: featuresrender.RenderSource,
		now:            time.Now,
	}, nil
}

// collaborators binds the session I/O to the command's streams. Slow lookups
// show a spinner on errOut.
func (a *app) collaborators(in io.Reader, out, errOut io.Writer) application.Collaborators {
	var speaker ports.Speaker = console.NewSpeaker(out, a.cfg.Assistant.Name)
	if a.cfg.Speech.Espeak {
		speaker = console.Tee{speaker, espeak.NewSpeaker(a.cfg.Speech.Voice)}
	}

	return application.Collaborators{
		Listener: console.NewListener(in, errOut, a.cfg.Listen.Timeout),
		Speaker:  speaker,
		Weather:  spinningWeather{next: a.weather, out: errOut},
		Search:   spinningSearch{next: a.search, out: errOut},
		Sites:    a.sites,
	}
}

func (a *app) Close() error {
	return a.logCloser.Close()
}
