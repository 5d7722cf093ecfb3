package chain

import (
	"context"
	"errors"
	"fmt"

	envstore "github.com/bnema/nova/internal/adapters/secrets/env"
	filestore "github.com/bnema/nova/internal/adapters/secrets/file"
	passstore "github.com/bnema/nova/internal/adapters/secrets/pass"
	"github.com/bnema/nova/internal/domain"
	"github.com/bnema/nova/internal/ports"
)

// Store consults its backends in order. Reads return the first hit, writes
// land in the first backend that accepts them and deletes reach every
// backend so a key cannot survive in a lower layer.
type Store struct {
	backends []ports.SecretStore
}

var _ ports.SecretStore = (*Store)(nil)

var errNoBackends = errors.New("secret chain needs at least one backend")

func NewStore(backends ...ports.SecretStore) (*Store, error) {
	if len(backends) == 0 {
		return nil, errNoBackends
	}
	for i, backend := range backends {
		if backend == nil {
			return nil, fmt.Errorf("secret backend %d is nil", i)
		}
	}

	return &Store{backends: backends}, nil
}

// NewDefault layers environment variables over pass over plain files.
func NewDefault(fileRoot string) (*Store, error) {
	return NewStore(envstore.NewStore(), passstore.NewStore(), filestore.NewStore(fileRoot))
}

func (s *Store) Get(ctx context.Context, key string) (string, error) {
	var errs []error
	for _, backend := range s.backends {
		value, err := backend.Get(ctx, key)
		if err == nil {
			return value, nil
		}
		if shouldStop(err) {
			return "", err
		}
		errs = append(errs, err)
	}

	if allNotFound(errs) {
		return "", fmt.Errorf("secret %q: %w", key, domain.ErrSecretNotFound)
	}
	return "", fmt.Errorf("get secret %q: %w", key, errors.Join(errs...))
}

func (s *Store) Put(ctx context.Context, key string, value string) error {
	var errs []error
	for _, backend := range s.backends {
		err := backend.Put(ctx, key, value)
		if err == nil {
			return nil
		}
		// Every backend would reject the same value.
		if shouldStop(err) || errors.Is(err, domain.ErrInvalidSecret) {
			return err
		}
		errs = append(errs, err)
	}

	return fmt.Errorf("put secret %q: %w", key, errors.Join(errs...))
}

func (s *Store) Delete(ctx context.Context, key string) error {
	var errs []error
	deleted := false
	for _, backend := range s.backends {
		err := backend.Delete(ctx, key)
		if err == nil {
			deleted = true
			continue
		}
		if shouldStop(err) {
			return err
		}
		if errors.Is(err, envstore.ErrReadOnly) || errors.Is(err, domain.ErrSecretNotFound) {
			continue
		}
		errs = append(errs, err)
	}

	if deleted || len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("delete secret %q: %w", key, errors.Join(errs...))
}

func shouldStop(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}

func allNotFound(errs []error) bool {
	for _, err := range errs {
		if !errors.Is(err, domain.ErrSecretNotFound) {
			return false
		}
	}
	return true
}
