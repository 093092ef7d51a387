package exhibit

import (
	"context"
	"fmt"
	"time"

	"github.com/hbrook/galerie/internal/logging"
	"github.com/patrickmn/go-cache"
)

const (
	DefaultCacheTTL = 5 * time.Minute

	exhibitsKey = "exhibits"
)

// Service provides the exhibit list to the rest of the application, caching
// fetched listings for a fixed window so re-entering the home view doesn't
// re-fetch.
type Service struct {
	client *Client
	cache  *cache.Cache
	logger logging.Interface
}

type ServiceOptions struct {
	Client   *Client
	CacheTTL time.Duration
	Logger   logging.Interface
}

func NewService(opts ServiceOptions) *Service {
	ttl := opts.CacheTTL
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	logger := opts.Logger
	if logger == nil {
		logger = logging.Discard
	}
	return &Service{
		client: opts.Client,
		cache:  cache.New(ttl, 2*ttl),
		logger: logger,
	}
}

// Load returns the ordered exhibit list, fetching from the content API unless
// a cached copy is still fresh. A failed fetch caches nothing, so a retry
// re-runs the full fallback chain.
func (s *Service) Load(ctx context.Context) ([]*Exhibit, error) {
	if cached, ok := s.cache.Get(exhibitsKey); ok {
		return cached.([]*Exhibit), nil
	}
	exhibits, err := s.client.Exhibits(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading exhibits: %w", err)
	}
	s.cache.SetDefault(exhibitsKey, exhibits)
	s.logger.Debug("cached exhibit list", "total", len(exhibits))
	return exhibits, nil
}
