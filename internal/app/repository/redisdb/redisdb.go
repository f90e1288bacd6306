// Package redisdb stores translation records in Redis: one hash per record,
// a sorted set ordering ids by timestamp, and a counter issuing ids.
package redisdb

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"strconv"

	"github.com/redis/go-redis/v9"

	"voice-notes/internal/app/model"
)

// DefaultPrefix namespaces all keys.
const DefaultPrefix = "vnote"

const (
	fieldID        = "id"
	fieldTimestamp = "timestamp"
	fieldText      = "text"
	fieldAudio     = "audio_data"
	fieldMimeType  = "mime_type"
	fieldDuration  = "duration"
)

// RedisDAO is the Redis-backed TranslationDAO.
type RedisDAO struct {
	client *redis.Client
	prefix string
}

// NewRedisDAO uses client for all commands. Keys carry a {prefix} hash tag so
// every key of one store maps to the same cluster slot.
func NewRedisDAO(client *redis.Client, prefix string) *RedisDAO {
	if prefix == "" {
		prefix = DefaultPrefix
	}
	return &RedisDAO{client: client, prefix: "{" + prefix + "}"}
}

// Open parses a redis:// URL and returns a connected DAO.
func Open(ctx context.Context, url, prefix string) (*RedisDAO, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("invalid redis url: %w", err)
	}
	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}
	return NewRedisDAO(client, prefix), nil
}

func (r *RedisDAO) seqKey() string   { return r.prefix + ":seq" }
func (r *RedisDAO) indexKey() string { return r.prefix + ":by_timestamp" }

func (r *RedisDAO) recordKeyPrefix() string { return r.prefix + ":translation:" }

func (r *RedisDAO) recordKey(id int64) string {
	return r.recordKeyPrefix() + strconv.FormatInt(id, 10)
}

// Close closes the client.
func (r *RedisDAO) Close() error {
	return r.client.Close()
}

// Insert implements repository.TranslationDAO
func (r *RedisDAO) Insert(ctx context.Context, rec *model.TranslationRecord) (int64, error) {
	id, err := r.client.Incr(ctx, r.seqKey()).Result()
	if err != nil {
		return 0, fmt.Errorf("insert failed: %w", err)
	}

	_, err = r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HSet(ctx, r.recordKey(id), recordFields(id, rec)...)
		pipe.ZAdd(ctx, r.indexKey(), redis.Z{Score: score(rec.Timestamp), Member: strconv.FormatInt(id, 10)})
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("insert failed: %w", err)
	}
	return id, nil
}

// FindAll implements repository.TranslationDAO
func (r *RedisDAO) FindAll(ctx context.Context) ([]model.TranslationRecord, error) {
	ids, err := r.client.ZRange(ctx, r.indexKey(), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("query failed: %w", err)
	}

	records := make([]model.TranslationRecord, 0, len(ids))
	if len(ids) == 0 {
		return records, nil
	}

	cmds := make([]*redis.MapStringStringCmd, len(ids))
	_, err = r.client.Pipelined(ctx, func(pipe redis.Pipeliner) error {
		for i, id := range ids {
			cmds[i] = pipe.HGetAll(ctx, r.recordKeyPrefix()+id)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("query failed: %w", err)
	}

	for _, cmd := range cmds {
		fields := cmd.Val()
		if len(fields) == 0 {
			continue
		}
		rec, err := parseRecord(fields)
		if err != nil {
			return nil, err
		}
		records = append(records, *rec)
	}

	slices.SortFunc(records, func(a, b model.TranslationRecord) int {
		if c := cmp.Compare(score(b.Timestamp), score(a.Timestamp)); c != 0 {
			return c
		}
		return cmp.Compare(b.ID, a.ID)
	})
	return records, nil
}

// FindByID implements repository.TranslationDAO
func (r *RedisDAO) FindByID(ctx context.Context, id int64) (*model.TranslationRecord, error) {
	fields, err := r.client.HGetAll(ctx, r.recordKey(id)).Result()
	if err != nil {
		return nil, fmt.Errorf("query failed: %w", err)
	}
	if len(fields) == 0 {
		return nil, nil
	}
	return parseRecord(fields)
}

// updateTextScript rewrites text and timestamp only when the hash still exists,
// so a concurrent Delete can never leave a partial record behind.
const updateTextLua = `
	if redis.call('EXISTS', KEYS[1]) == 0 then
		return 0
	end
	redis.call('HSET', KEYS[1], 'text', ARGV[1], 'timestamp', ARGV[2])
	redis.call('ZADD', KEYS[2], ARGV[3], ARGV[4])
	return 1
`

var updateTextScript = redis.NewScript(updateTextLua)

// UpdateText implements repository.TranslationDAO
func (r *RedisDAO) UpdateText(ctx context.Context, id int64, text, timestamp string) (bool, error) {
	n, err := updateTextScript.Run(ctx, r.client,
		[]string{r.recordKey(id), r.indexKey()},
		text, timestamp, scoreArg(timestamp), strconv.FormatInt(id, 10),
	).Int64()
	if err != nil {
		return false, fmt.Errorf("update failed: %w", err)
	}
	return n == 1, nil
}

// Delete implements repository.TranslationDAO
func (r *RedisDAO) Delete(ctx context.Context, id int64) error {
	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, r.recordKey(id))
		pipe.ZRem(ctx, r.indexKey(), strconv.FormatInt(id, 10))
		return nil
	})
	if err != nil {
		return fmt.Errorf("delete failed: %w", err)
	}
	return nil
}

// deleteAllScript drops every indexed hash and the index in one step.
var deleteAllScript = redis.NewScript(`
	local ids = redis.call('ZRANGE', KEYS[1], 0, -1)
	for _, id in ipairs(ids) do
		redis.call('DEL', ARGV[1] .. id)
	end
	redis.call('DEL', KEYS[1])
	return #ids
`)

// DeleteAll implements repository.TranslationDAO. The id counter is kept so ids are never reused.
func (r *RedisDAO) DeleteAll(ctx context.Context) error {
	err := deleteAllScript.Run(ctx, r.client, []string{r.indexKey()}, r.recordKeyPrefix()).Err()
	if err != nil {
		return fmt.Errorf("delete failed: %w", err)
	}
	return nil
}

// Count implements repository.TranslationDAO
func (r *RedisDAO) Count(ctx context.Context) (int, error) {
	n, err := r.client.ZCard(ctx, r.indexKey()).Result()
	if err != nil {
		return 0, fmt.Errorf("query failed: %w", err)
	}
	return int(n), nil
}

func recordFields(id int64, rec *model.TranslationRecord) []any {
	return []any{
		fieldID, strconv.FormatInt(id, 10),
		fieldTimestamp, rec.Timestamp,
		fieldText, rec.Text,
		fieldAudio, string(rec.AudioData),
		fieldMimeType, rec.MimeType,
		fieldDuration, strconv.FormatFloat(rec.Duration, 'f', -1, 64),
	}
}

func parseRecord(fields map[string]string) (*model.TranslationRecord, error) {
	id, err := strconv.ParseInt(fields[fieldID], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("scan failed: bad id %q: %w", fields[fieldID], err)
	}
	rec := &model.TranslationRecord{
		ID:        id,
		Timestamp: fields[fieldTimestamp],
		Text:      fields[fieldText],
		MimeType:  fields[fieldMimeType],
	}
	if d := fields[fieldDuration]; d != "" {
		if rec.Duration, err = strconv.ParseFloat(d, 64); err != nil {
			return nil, fmt.Errorf("scan failed: bad duration %q: %w", d, err)
		}
	}
	if audio := fields[fieldAudio]; audio != "" {
		rec.AudioData = []byte(audio)
	}
	return rec, nil
}

func scoreArg(timestamp string) string {
	return strconv.FormatFloat(score(timestamp), 'f', -1, 64)
}

// score orders the index by time; unparsable timestamps sort first.
func score(timestamp string) float64 {
	t, err := model.ParseTimestamp(timestamp)
	if err != nil {
		return 0
	}
	return float64(t.UnixMilli())
}
