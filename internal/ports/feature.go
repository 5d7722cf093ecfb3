package ports

import (
	"context"

	"github.com/bnema/nova/internal/domain"
)

type FeatureRepository interface {
	GetByName(ctx context.Context, name domain.FeatureName) (domain.FeatureDescriptor, error)
	List(ctx context.Context) ([]domain.FeatureDescriptor, error)
	// Add commits a new feature. The manifest on disk is either fully
	// updated or left untouched.
	Add(ctx context.Context, feature domain.FeatureDescriptor) error
}

// FeatureFunc is the entry point every installed feature exposes.
type FeatureFunc func(args []string) (string, error)

type FeatureRuntime interface {
	Validate(ctx context.Context, source string) error
	Load(ctx context.Context, feature domain.FeatureDescriptor) (FeatureFunc, error)
}
