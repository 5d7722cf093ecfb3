package ports

import "context"

// Secret-store keys for collaborator credentials.
const (
	SecretWeatherAPIKey = "nova/openweathermap/api_key"
	SecretSearchAPIKey  = "nova/google_cse/api_key"
)

// SecretStore holds collaborator credentials outside the config file.
type SecretStore interface {
	Get(ctx context.Context, key string) (string, error)
	Put(ctx context.Context, key string, value string) error
	Delete(ctx context.Context, key string) error
}
