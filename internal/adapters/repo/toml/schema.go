package toml

import "fmt"

const currentSchemaVersion = 1

// manifestSchema carries json tags as well because the CUE policy encodes it
// through its JSON field names.
type manifestSchema struct {
	Version    int             `toml:"version" json:"version"`
	Generation int64           `toml:"generation" json:"generation"`
	Features   []featureSchema `toml:"features" json:"features"`
}

func (s *manifestSchema) applyDefaults() {
	if s.Version == 0 {
		s.Version = currentSchemaVersion
	}
	if s.Features == nil {
		s.Features = []featureSchema{}
	}
}

func (s manifestSchema) validateVersion() error {
	if s.Version > currentSchemaVersion {
		return fmt.Errorf("unsupported feature manifest version %d (current %d)", s.Version, currentSchemaVersion)
	}

	return nil
}

type featureSchema struct {
	Name        string `toml:"name" json:"name"`
	Topic       string `toml:"topic" json:"topic"`
	Checksum    string `toml:"checksum" json:"checksum"`
	InstalledAt string `toml:"installed_at" json:"installed_at"`
	Source      string `toml:"source,multiline" json:"source"`
}
