package redis

import (
	"context"
	"fmt"

	"github.com/redis/rueidis"

	"github.com/kailas-cloud/kwfilter/internal/db"
)

const (
	// scanBatch is the COUNT hint passed to SCAN.
	scanBatch = 100

	// replaceCmdCount is MULTI, EXISTS, DEL, HSET, EXEC.
	replaceCmdCount = 5
)

func (s *Store) hset(key string, fields map[string]string) rueidis.Completed {
	cmd := s.b().Hset().Key(key).FieldValue()
	for k, v := range fields {
		cmd = cmd.FieldValue(k, v)
	}
	return cmd.Build()
}

// replaceCmds queues EXISTS, DEL and HSET for one key inside MULTI/EXEC.
func (s *Store) replaceCmds(key string, fields map[string]string) []rueidis.Completed {
	return []rueidis.Completed{
		s.b().Multi().Build(),
		s.b().Exists().Key(key).Build(),
		s.b().Del().Key(key).Build(),
		s.hset(key, fields),
		s.b().Exec().Build(),
	}
}

// ReplaceHash atomically swaps the hash at key for fields. It reports
// whether the key existed before.
func (s *Store) ReplaceHash(ctx context.Context, key string, fields map[string]string) (bool, error) {
	existed, err := s.ReplaceHashMulti(ctx, []db.HashSetItem{{Key: key, Fields: fields}})
	if err != nil {
		return false, err
	}
	return existed[0], nil
}

// ReplaceHashMulti swaps several hashes in one DoMulti round-trip, one
// MULTI/EXEC transaction per key.
func (s *Store) ReplaceHashMulti(ctx context.Context, items []db.HashSetItem) ([]bool, error) {
	if len(items) == 0 {
		return nil, nil
	}

	cmds := make([]rueidis.Completed, 0, len(items)*replaceCmdCount)
	for _, item := range items {
		cmds = append(cmds, s.replaceCmds(item.Key, item.Fields)...)
	}

	results := s.client.DoMulti(ctx, cmds...)
	existed := make([]bool, len(items))
	for i, item := range items {
		tx := results[i*replaceCmdCount : (i+1)*replaceCmdCount]
		for _, res := range tx[:replaceCmdCount-1] {
			if err := res.Error(); err != nil {
				return nil, &db.Error{Op: db.OpReplace, Err: fmt.Errorf("key %s: %w", item.Key, err)}
			}
		}
		replies, err := tx[replaceCmdCount-1].ToArray()
		if err != nil {
			return nil, &db.Error{Op: db.OpReplace, Err: fmt.Errorf("key %s: %w", item.Key, err)}
		}
		if len(replies) == 0 {
			return nil, &db.Error{Op: db.OpReplace, Err: fmt.Errorf("key %s: empty EXEC reply", item.Key)}
		}
		n, err := replies[0].AsInt64()
		if err != nil {
			return nil, &db.Error{Op: db.OpReplace, Err: fmt.Errorf("key %s: %w", item.Key, err)}
		}
		existed[i] = n > 0
	}
	return existed, nil
}

// HGetAll returns all fields of a hash. A missing key yields an empty map.
func (s *Store) HGetAll(ctx context.Context, key string) (map[string]string, error) {
	cmd := s.b().Hgetall().Key(key).Build()
	m, err := s.do(ctx, cmd).AsStrMap()
	if err != nil {
		return nil, &db.Error{Op: db.OpHGetAll, Err: err}
	}
	return m, nil
}

// HGetAllMulti fetches all fields for multiple hashes in a single DoMulti round-trip.
func (s *Store) HGetAllMulti(ctx context.Context, keys []string) ([]map[string]string, error) {
	if len(keys) == 0 {
		return nil, nil
	}

	cmds := make([]rueidis.Completed, len(keys))
	for i, key := range keys {
		cmds[i] = s.b().Hgetall().Key(key).Build()
	}

	results := s.client.DoMulti(ctx, cmds...)
	out := make([]map[string]string, len(results))
	for i, res := range results {
		m, err := res.AsStrMap()
		if err != nil {
			return nil, &db.Error{Op: db.OpHGetAll, Err: fmt.Errorf("key %s: %w", keys[i], err)}
		}
		out[i] = m
	}
	return out, nil
}

// Del deletes a key.
func (s *Store) Del(ctx context.Context, key string) error {
	cmd := s.b().Del().Key(key).Build()
	if err := s.do(ctx, cmd).Error(); err != nil {
		return &db.Error{Op: db.OpDel, Err: err}
	}
	return nil
}

// Exists checks if a key exists.
func (s *Store) Exists(ctx context.Context, key string) (bool, error) {
	cmd := s.b().Exists().Key(key).Build()
	count, err := s.do(ctx, cmd).AsInt64()
	if err != nil {
		return false, &db.Error{Op: db.OpExists, Err: err}
	}
	return count > 0, nil
}

// Scan iterates keys matching a pattern.
func (s *Store) Scan(ctx context.Context, pattern string) ([]string, error) {
	var keys []string
	var cursor uint64

	for {
		cmd := s.b().Scan().Cursor(cursor).Match(pattern).Count(scanBatch).Build()
		res, err := s.do(ctx, cmd).AsScanEntry()
		if err != nil {
			return nil, &db.Error{Op: db.OpScan, Err: err}
		}
		keys = append(keys, res.Elements...)
		cursor = res.Cursor
		if cursor == 0 {
			break
		}
	}

	return keys, nil
}
