package kwfilter

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/kailas-cloud/kwfilter/internal/db"
	dbRedis "github.com/kailas-cloud/kwfilter/internal/db/redis"
	dombatch "github.com/kailas-cloud/kwfilter/internal/domain/batch"
	"github.com/kailas-cloud/kwfilter/internal/domain/search/keyword"
	"github.com/kailas-cloud/kwfilter/internal/domain/search/result"
	resultrepo "github.com/kailas-cloud/kwfilter/internal/repository/result"
	cataloguc "github.com/kailas-cloud/kwfilter/internal/usecase/catalog"
	filteruc "github.com/kailas-cloud/kwfilter/internal/usecase/filter"
	healthuc "github.com/kailas-cloud/kwfilter/internal/usecase/health"
)

const (
	defaultReadinessTimeout = 10 * time.Second
	defaultKeyPrefix        = "kwfilter:"
)

// Internal interfaces, swapped for mocks in tests.
type filterUseCase interface {
	Parse(raw string) filteruc.Query
	Apply(ctx context.Context, filters []keyword.Filter, candidates []result.Result) filteruc.Outcome
	Search(ctx context.Context, raw string, limit int) (filteruc.Query, filteruc.Outcome, error)
	Toggle(f keyword.Filter) keyword.Filter
}

type catalogUseCase interface {
	Put(ctx context.Context, r *result.Result) (bool, error)
	PutBatch(ctx context.Context, items []result.Result) []dombatch.Result
	Get(ctx context.Context, id string) (result.Result, error)
	Delete(ctx context.Context, id string) error
}

// Client is the kwfilter SDK entry point.
type Client struct {
	store      db.Store
	filterSvc  filterUseCase
	catalogSvc catalogUseCase
	healthSvc  healthUseCase
	obs        *observer
}

// New creates a kwfilter Client and connects to Redis.
// The provided context is used for the initial readiness check.
func New(ctx context.Context, opts ...Option) (*Client, error) {
	cfg := &clientConfig{keyPrefix: defaultKeyPrefix}
	for _, o := range opts {
		o.apply(cfg)
	}

	if len(cfg.addrs) == 0 {
		return nil, errors.New("kwfilter: database address required (use WithRedis)")
	}

	store, err := dbRedis.NewStore(dbRedis.Config{
		Addrs:    cfg.addrs,
		Password: cfg.password,
	})
	if err != nil {
		return nil, fmt.Errorf("kwfilter: create redis store: %w", err)
	}

	if err := store.WaitForReady(ctx, defaultReadinessTimeout); err != nil {
		store.Close()
		return nil, fmt.Errorf("kwfilter: database not ready: %w", err)
	}

	obs, err := newObserver(cfg.logger, cfg.metricsReg)
	if err != nil {
		store.Close()
		return nil, err
	}
	return wireClient(store, cfg, obs), nil
}

func wireClient(store db.Store, cfg *clientConfig, obs *observer) *Client {
	repo := resultrepo.New(store, cfg.keyPrefix)

	var annotator filteruc.Annotator
	if cfg.detect {
		annotator = keyword.NewDetector(cfg.sources, cfg.extensions)
	}

	return &Client{
		store:      store,
		filterSvc:  filteruc.New(repo, annotator).WithLimits(cfg.defaultLimit, cfg.maxLimit),
		catalogSvc: cataloguc.New(repo).WithMaxBatchSize(cfg.maxBatchSize),
		healthSvc:  healthuc.New(store),
		obs:        obs,
	}
}

// Close releases all resources.
func (c *Client) Close() {
	if c.store != nil {
		c.store.Close()
	}
}

// Ping checks database connectivity.
func (c *Client) Ping(ctx context.Context) (err error) {
	start := time.Now()
	defer func() { c.obs.observe("ping", start, err) }()

	if err = c.store.Ping(ctx); err != nil {
		return fmt.Errorf("ping: %w", err)
	}
	return nil
}

// Filters returns the filter pipeline service.
func (c *Client) Filters() *FilterService {
	return &FilterService{svc: c.filterSvc, obs: c.obs}
}

// Results returns the stored result catalog.
func (c *Client) Results() *ResultService {
	return &ResultService{svc: c.catalogSvc, obs: c.obs}
}
