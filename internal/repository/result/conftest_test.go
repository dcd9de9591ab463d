package result

import (
	"context"
	"strings"
	"testing"

	"github.com/kailas-cloud/kwfilter/internal/db"
	"github.com/kailas-cloud/kwfilter/internal/domain/license"
	domresult "github.com/kailas-cloud/kwfilter/internal/domain/search/result"
)

// memStore is an in-memory implementation of the consumer interface.
type memStore struct {
	hashes     map[string]map[string]string
	err        error
	writeErr   error // fails writes only
	scanDup    bool  // SCAN reports every key twice
	multiCalls int
}

func newMemStore() *memStore {
	return &memStore{hashes: make(map[string]map[string]string)}
}

func (m *memStore) ReplaceHash(_ context.Context, key string, fields map[string]string) (bool, error) {
	if m.err != nil {
		return false, m.err
	}
	if m.writeErr != nil {
		return false, m.writeErr
	}
	_, existed := m.hashes[key]
	h := make(map[string]string, len(fields))
	for k, v := range fields {
		h[k] = v
	}
	m.hashes[key] = h
	return existed, nil
}

func (m *memStore) ReplaceHashMulti(ctx context.Context, items []db.HashSetItem) ([]bool, error) {
	if m.err != nil {
		return nil, m.err
	}
	if m.writeErr != nil {
		return nil, m.writeErr
	}
	m.multiCalls++
	existed := make([]bool, len(items))
	for i, item := range items {
		ok, err := m.ReplaceHash(ctx, item.Key, item.Fields)
		if err != nil {
			return nil, err
		}
		existed[i] = ok
	}
	return existed, nil
}

func (m *memStore) HGetAll(_ context.Context, key string) (map[string]string, error) {
	if m.err != nil {
		return nil, m.err
	}
	out := make(map[string]string)
	for k, v := range m.hashes[key] {
		out[k] = v
	}
	return out, nil
}

func (m *memStore) HGetAllMulti(ctx context.Context, keys []string) ([]map[string]string, error) {
	out := make([]map[string]string, len(keys))
	for i, k := range keys {
		h, err := m.HGetAll(ctx, k)
		if err != nil {
			return nil, err
		}
		out[i] = h
	}
	return out, nil
}

func (m *memStore) Del(_ context.Context, key string) error {
	if m.err != nil {
		return m.err
	}
	delete(m.hashes, key)
	return nil
}

func (m *memStore) Exists(_ context.Context, key string) (bool, error) {
	if m.err != nil {
		return false, m.err
	}
	_, ok := m.hashes[key]
	return ok, nil
}

func (m *memStore) Scan(_ context.Context, pattern string) ([]string, error) {
	if m.err != nil {
		return nil, m.err
	}
	prefix := strings.TrimSuffix(pattern, "*")
	var keys []string
	for k := range m.hashes {
		if strings.HasPrefix(k, prefix) {
			keys = append(keys, k)
			if m.scanDup {
				keys = append(keys, k)
			}
		}
	}
	return keys, nil
}

func newTestRepo(t *testing.T) (*Repo, *memStore) {
	t.Helper()
	ms := newMemStore()
	return New(ms, "kwfilter:"), ms
}

func testResult(t *testing.T) domresult.Result {
	t.Helper()
	return domresult.New("timon",
		"Timon of Athens",
		"http://shakespeare.mit.edu/timon/timon.4.1.html",
		"http://example.com/timon.png",
		domresult.WithSource("MIT"),
		domresult.WithFilename("timon_of_athens.txt"),
		domresult.WithLicense(license.PublicDomainMark),
	)
}
