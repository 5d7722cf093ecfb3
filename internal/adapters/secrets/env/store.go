package env

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/bnema/nova/internal/domain"
	"github.com/bnema/nova/internal/ports"
)

var ErrReadOnly = errors.New("environment secret store is read-only")

// Store resolves secrets from environment variables. A key such as
// "nova/openweathermap/api_key" maps to NOVA_OPENWEATHERMAP_API_KEY.
type Store struct {
	lookup func(string) (string, bool)
}

var _ ports.SecretStore = (*Store)(nil)

func NewStore() *Store {
	return &Store{lookup: os.LookupEnv}
}

// VariableName returns the environment variable consulted for key.
func VariableName(key string) string {
	replacer := strings.NewReplacer("/", "_", "-", "_", ".", "_")
	return strings.ToUpper(replacer.Replace(strings.Trim(key, "/")))
}

func (s *Store) Get(ctx context.Context, key string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	name := VariableName(key)
	value, ok := s.lookup(name)
	if !ok || value == "" {
		return "", fmt.Errorf("env %s: %w", name, domain.ErrSecretNotFound)
	}
	return value, nil
}

func (s *Store) Put(context.Context, string, string) error {
	return ErrReadOnly
}

func (s *Store) Delete(context.Context, string) error {
	return ErrReadOnly
}
