package ports

import "context"

type WeatherProvider interface {
	Weather(ctx context.Context, city string) (string, error)
}

type SearchProvider interface {
	Search(ctx context.Context, topic string) (string, error)
}

type SiteLauncher interface {
	Open(ctx context.Context, site string) error
}
