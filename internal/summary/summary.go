package summary

import (
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/josiah1121/BuckWatch/internal/sighting"
)

const cacheKey = "dashboard"

// Summary is the dashboard view of the store: sighting counts per animal
// type plus the overall total.
type Summary struct {
	Total        int            `json:"total"`
	ByAnimalType map[string]int `json:"byAnimalType"`
	GeneratedAt  time.Time      `json:"generatedAt"`
}

// Provider computes dashboard summaries from the record store and caches
// them so the dashboard read path stays cheap between refreshes.
type Provider struct {
	store sighting.Store
	cache *gocache.Cache
}

// New creates a Provider whose cached summaries expire after ttl.
func New(store sighting.Store, ttl time.Duration) *Provider {
	return &Provider{
		store: store,
		cache: gocache.New(ttl, 2*ttl),
	}
}

// Get returns the cached summary, computing a fresh one on a miss.
func (p *Provider) Get() (Summary, error) {
	if v, ok := p.cache.Get(cacheKey); ok {
		if s, ok := v.(Summary); ok {
			return s, nil
		}
	}
	return p.Refresh()
}

// Refresh recomputes the summary from the store and replaces the cache entry.
func (p *Provider) Refresh() (Summary, error) {
	counts, err := p.store.CountsByAnimalType()
	if err != nil {
		return Summary{}, err
	}

	total := 0
	for _, n := range counts {
		total += n
	}

	s := Summary{
		Total:        total,
		ByAnimalType: counts,
		GeneratedAt:  time.Now().UTC(),
	}
	p.cache.Set(cacheKey, s, gocache.DefaultExpiration)
	return s, nil
}
