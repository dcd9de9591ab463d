package result

import (
	"context"
	"fmt"
	"slices"
	"sort"
	"strings"

	"github.com/kailas-cloud/kwfilter/internal/db"
	"github.com/kailas-cloud/kwfilter/internal/domain"
	domresult "github.com/kailas-cloud/kwfilter/internal/domain/search/result"
)

// store is the consumer interface for the result catalog (ISP).
type store interface {
	ReplaceHash(ctx context.Context, key string, fields map[string]string) (bool, error)
	ReplaceHashMulti(ctx context.Context, items []db.HashSetItem) ([]bool, error)
	HGetAll(ctx context.Context, key string) (map[string]string, error)
	HGetAllMulti(ctx context.Context, keys []string) ([]map[string]string, error)
	Del(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
	Scan(ctx context.Context, pattern string) ([]string, error)
}

// Repo stores candidate search results as Redis hashes.
type Repo struct {
	store  store
	prefix string
}

// New creates a result repository. Keys are "<prefix>result:<id>".
func New(s store, prefix string) *Repo {
	return &Repo{store: s, prefix: prefix + "result:"}
}

func (r *Repo) key(id string) string { return r.prefix + id }

// Save creates or replaces a result. Returns true if created.
// The old hash is dropped in the same transaction so cleared optional
// fields stay absent.
func (r *Repo) Save(ctx context.Context, res *domresult.Result) (bool, error) {
	key := r.key(res.ID())
	existed, err := r.store.ReplaceHash(ctx, key, buildHashFields(res))
	if err != nil {
		return false, fmt.Errorf("replace %s: %w", key, err)
	}
	return !existed, nil
}

// SaveBatch creates or replaces results in one pipelined write. The
// returned slice reports, per input, whether the result was created.
func (r *Repo) SaveBatch(ctx context.Context, results []domresult.Result) ([]bool, error) {
	items := make([]db.HashSetItem, len(results))
	for i := range results {
		items[i] = db.HashSetItem{Key: r.key(results[i].ID()), Fields: buildHashFields(&results[i])}
	}
	existed, err := r.store.ReplaceHashMulti(ctx, items)
	if err != nil {
		return nil, fmt.Errorf("replace batch: %w", err)
	}
	created := make([]bool, len(existed))
	for i, ok := range existed {
		created[i] = !ok
	}
	return created, nil
}

// Get returns a result by ID.
func (r *Repo) Get(ctx context.Context, id string) (domresult.Result, error) {
	key := r.key(id)
	m, err := r.store.HGetAll(ctx, key)
	if err != nil {
		return domresult.Result{}, fmt.Errorf("hgetall %s: %w", key, err)
	}
	if len(m) == 0 {
		return domresult.Result{}, fmt.Errorf("result %q: %w", id, domain.ErrNotFound)
	}
	return parseHashFields(id, m), nil
}

// Delete removes a result by ID.
func (r *Repo) Delete(ctx context.Context, id string) error {
	key := r.key(id)
	exists, err := r.store.Exists(ctx, key)
	if err != nil {
		return fmt.Errorf("check exists %s: %w", key, err)
	}
	if !exists {
		return fmt.Errorf("result %q: %w", id, domain.ErrNotFound)
	}
	if err := r.store.Del(ctx, key); err != nil {
		return fmt.Errorf("del %s: %w", key, err)
	}
	return nil
}

// List returns every stored result ordered by ID.
func (r *Repo) List(ctx context.Context) ([]domresult.Result, error) {
	keys, err := r.store.Scan(ctx, r.prefix+"*")
	if err != nil {
		return nil, fmt.Errorf("scan results: %w", err)
	}
	if len(keys) == 0 {
		return nil, nil
	}
	// SCAN may return a key more than once.
	sort.Strings(keys)
	keys = slices.Compact(keys)

	hashes, err := r.store.HGetAllMulti(ctx, keys)
	if err != nil {
		return nil, fmt.Errorf("load results: %w", err)
	}

	out := make([]domresult.Result, 0, len(keys))
	for i, m := range hashes {
		// Deleted between SCAN and HGETALL.
		if len(m) == 0 {
			continue
		}
		out = append(out, parseHashFields(strings.TrimPrefix(keys[i], r.prefix), m))
	}
	return out, nil
}
