package toml

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/bnema/nova/internal/domain"
	"github.com/bnema/nova/internal/ports"
	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"
)

const (
	ManifestPathKey     = "features.manifest"
	manifestFileMode    = 0o600
	manifestDirMode     = 0o700
	manifestConfigDir   = ".config/nova"
	manifestConfigFile  = "features.toml"
	tempFilePattern     = ".features-*.toml.tmp"
	installedTimeLayout = time.RFC3339
)

// ManifestRepository persists installed features in a single TOML manifest.
// Every commit rewrites the whole file through a temp file and a rename, so a
// failed install leaves the previous manifest byte-identical.
type ManifestRepository struct {
	manifestPath string
	policy       *Policy
	mu           *sync.RWMutex
}

var (
	lockRegistryMu sync.Mutex
	pathLockMap    = map[string]*sync.RWMutex{}
)

var _ ports.FeatureRepository = (*ManifestRepository)(nil)

func NewManifestRepository(cfg *viper.Viper) (*ManifestRepository, error) {
	if cfg == nil {
		cfg = viper.New()
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("resolve home directory: %w", err)
	}
	cfg.SetDefault(ManifestPathKey, filepath.Join(homeDir, manifestConfigDir, manifestConfigFile))

	manifestPath := cfg.GetString(ManifestPathKey)
	if manifestPath == "" {
		return nil, errors.New("feature manifest path is empty")
	}
	manifestPath, err = normalizeManifestPath(manifestPath)
	if err != nil {
		return nil, err
	}

	policy, err := NewPolicy()
	if err != nil {
		return nil, err
	}

	return &ManifestRepository{manifestPath: manifestPath, policy: policy, mu: lockForPath(manifestPath)}, nil
}

// Path returns the absolute manifest location.
func (r *ManifestRepository) Path() string {
	return r.manifestPath
}

func (r *ManifestRepository) Add(ctx context.Context, feature domain.FeatureDescriptor) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	file, err := r.readSchema()
	if err != nil {
		return err
	}

	for _, entry := range file.Features {
		if entry.Name == string(feature.Name) {
			return fmt.Errorf("%w: %s", domain.ErrDuplicateFeature, feature.Name)
		}
	}

	file.Features = append(file.Features, toSchema(feature))
	file.Generation++

	if err := r.policy.Validate(file); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidFeatureSource, err)
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	return r.writeSchema(file)
}

func (r *ManifestRepository) GetByName(ctx context.Context, name domain.FeatureName) (domain.FeatureDescriptor, error) {
	if err := ctx.Err(); err != nil {
		return domain.FeatureDescriptor{}, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	file, err := r.readSchema()
	if err != nil {
		return domain.FeatureDescriptor{}, err
	}

	for _, entry := range file.Features {
		if entry.Name == string(name) {
			return fromSchema(entry), nil
		}
	}

	return domain.FeatureDescriptor{}, domain.ErrFeatureNotFound
}

func (r *ManifestRepository) List(ctx context.Context) ([]domain.FeatureDescriptor, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	file, err := r.readSchema()
	if err != nil {
		return nil, err
	}

	features := make([]domain.FeatureDescriptor, 0, len(file.Features))
	for _, entry := range file.Features {
		features = append(features, fromSchema(entry))
	}

	return features, nil
}

// Generation returns the commit counter of the manifest on disk.
func (r *ManifestRepository) Generation(ctx context.Context) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	file, err := r.readSchema()
	if err != nil {
		return 0, err
	}
	return file.Generation, nil
}

func (r *ManifestRepository) readSchema() (manifestSchema, error) {
	data, err := os.ReadFile(r.manifestPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			file := manifestSchema{}
			file.applyDefaults()
			return file, nil
		}
		return manifestSchema{}, fmt.Errorf("read feature manifest: %w", err)
	}

	var file manifestSchema
	if err := toml.Unmarshal(data, &file); err != nil {
		return manifestSchema{}, fmt.Errorf("decode feature manifest: %w", err)
	}
	if err := file.validateVersion(); err != nil {
		return manifestSchema{}, err
	}
	file.applyDefaults()

	return file, nil
}

func normalizeManifestPath(path string) (string, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolve feature manifest path: %w", err)
	}

	return filepath.Clean(absPath), nil
}

func lockForPath(path string) *sync.RWMutex {
	lockRegistryMu.Lock()
	defer lockRegistryMu.Unlock()

	if mu, ok := pathLockMap[path]; ok {
		return mu
	}

	mu := &sync.RWMutex{}
	pathLockMap[path] = mu
	return mu
}

func (r *ManifestRepository) writeSchema(file manifestSchema) error {
	file.applyDefaults()

	if err := os.MkdirAll(filepath.Dir(r.manifestPath), manifestDirMode); err != nil {
		return fmt.Errorf("create manifest directory: %w", err)
	}

	data, err := toml.Marshal(file)
	if err != nil {
		return fmt.Errorf("encode feature manifest: %w", err)
	}

	tempFile, err := os.CreateTemp(filepath.Dir(r.manifestPath), tempFilePattern)
	if err != nil {
		return fmt.Errorf("create temp manifest file: %w", err)
	}

	tempName := tempFile.Name()
	cleanup := true
	defer func() {
		if cleanup {
			_ = os.Remove(tempName)
		}
	}()

	if _, err := tempFile.Write(data); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("write temp manifest file: %w", err)
	}

	if err := tempFile.Chmod(manifestFileMode); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("chmod temp manifest file: %w", err)
	}

	if err := tempFile.Sync(); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("sync temp manifest file: %w", err)
	}

	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("close temp manifest file: %w", err)
	}

	if err := os.Rename(tempName, r.manifestPath); err != nil {
		return fmt.Errorf("replace feature manifest: %w", err)
	}

	cleanup = false
	return nil
}

func toSchema(feature domain.FeatureDescriptor) featureSchema {
	return featureSchema{
		Name:        string(feature.Name),
		Topic:       feature.Topic,
		Checksum:    feature.Checksum,
		InstalledAt: formatTime(feature.InstalledAt),
		Source:      feature.Source,
	}
}

func fromSchema(entry featureSchema) domain.FeatureDescriptor {
	return domain.FeatureDescriptor{
		Name:        domain.FeatureName(entry.Name),
		Topic:       entry.Topic,
		Source:      entry.Source,
		Checksum:    entry.Checksum,
		InstalledAt: parseTime(entry.InstalledAt),
	}
}

func parseTime(raw string) time.Time {
	if raw == "" {
		return time.Time{}
	}

	parsed, err := time.Parse(installedTimeLayout, raw)
	if err != nil {
		return time.Time{}
	}

	return parsed
}

func formatTime(value time.Time) string {
	if value.IsZero() {
		return ""
	}

	return value.UTC().Format(installedTimeLayout)
}
