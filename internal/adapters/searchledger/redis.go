package searchledger

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"stapibridge/internal/core/result"
	"stapibridge/internal/core/stapi"
	perr "stapibridge/internal/platform/errors"
	"stapibridge/internal/platform/metrics"
	ptime "stapibridge/internal/platform/time"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

const (
	keyPrefix = "stapi:search:"
	keyIndex  = "stapi:searches"
)

// Options configures a Redis ledger
type Options struct {
	Addr    string
	TTL     time.Duration
	Metrics *metrics.Registry
	Clock   ptime.Clock
}

// Redis keeps one JSON entry per search plus a creation-ordered index
// Concurrent saves of the same id are last writer wins
type Redis struct {
	c       *redis.Client
	ttl     time.Duration
	metrics *metrics.Registry
	now     ptime.Clock
}

// NewRedis connects lazily; the first command dials
func NewRedis(o Options) *Redis {
	if o.TTL <= 0 {
		o.TTL = DefaultTTL
	}
	if o.Clock == nil {
		o.Clock = ptime.System()
	}
	return &Redis{
		c:       redis.NewClient(&redis.Options{Addr: o.Addr}),
		ttl:     o.TTL,
		metrics: o.Metrics,
		now:     o.Clock,
	}
}

// Ping checks the server is reachable
func (r *Redis) Ping(ctx context.Context) error {
	if err := r.c.Ping(ctx).Err(); err != nil {
		return perr.Wrap(errors.Wrap(err, "redis ping"), perr.ErrorCodeUnavailable, "search ledger unreachable")
	}
	return nil
}

// Close releases the connection pool
func (r *Redis) Close() error { return r.c.Close() }

func (r *Redis) Save(ctx context.Context, rec stapi.SearchRecord) (err error) {
	defer func() { r.metrics.ObserveLedger("save", err) }()

	now := r.now.Now()
	var prev *Entry
	e, ok, err := r.load(ctx, rec.ID)
	if err != nil {
		return err
	}
	if ok {
		prev = &e
	}
	entry := merge(prev, rec, now)

	b, err := json.Marshal(entry)
	if err != nil {
		return perr.Wrap(err, perr.ErrorCodeUnknown, "encode search entry")
	}
	pipe := r.c.TxPipeline()
	pipe.Set(ctx, keyPrefix+rec.ID, b, r.ttl)
	pipe.ZAddNX(ctx, keyIndex, redis.Z{Score: float64(entry.Created.UnixMilli()), Member: rec.ID})
	if _, err := pipe.Exec(ctx); err != nil {
		return unavailable(err, "redis save")
	}
	return nil
}

func (r *Redis) Get(ctx context.Context, id string) result.Lookup[Entry] {
	e, ok, err := r.load(ctx, id)
	r.metrics.ObserveLedger("get", err)
	if err != nil {
		return result.Failed[Entry](err)
	}
	if !ok {
		return result.Absent[Entry]()
	}
	return result.Found(e)
}

func (r *Redis) List(ctx context.Context) (out []Entry, err error) {
	defer func() { r.metrics.ObserveLedger("list", err) }()

	cutoff := r.now.Now().Add(-r.ttl).UnixMilli()
	if err := r.c.ZRemRangeByScore(ctx, keyIndex, "-inf", "("+strconv.FormatInt(cutoff, 10)).Err(); err != nil {
		return nil, unavailable(err, "redis trim index")
	}
	ids, err := r.c.ZRange(ctx, keyIndex, 0, -1).Result()
	if err != nil {
		return nil, unavailable(err, "redis index")
	}
	out = make([]Entry, 0, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = keyPrefix + id
	}
	vals, err := r.c.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, unavailable(err, "redis mget")
	}
	for i, v := range vals {
		s, ok := v.(string)
		if !ok {
			// entry expired before the index was trimmed
			continue
		}
		var e Entry
		if err := json.Unmarshal([]byte(s), &e); err != nil {
			return nil, perr.Wrapf(err, perr.ErrorCodeUnknown, "decode search entry %s", ids[i])
		}
		out = append(out, e)
	}
	return out, nil
}

func (r *Redis) load(ctx context.Context, id string) (Entry, bool, error) {
	b, err := r.c.Get(ctx, keyPrefix+id).Bytes()
	if err == redis.Nil {
		return Entry{}, false, nil
	}
	if err != nil {
		return Entry{}, false, unavailable(err, "redis get")
	}
	var e Entry
	if err := json.Unmarshal(b, &e); err != nil {
		return Entry{}, false, perr.Wrapf(err, perr.ErrorCodeUnknown, "decode search entry %s", id)
	}
	return e, true, nil
}

func unavailable(err error, msg string) error {
	return perr.Wrap(errors.Wrap(err, msg), perr.ErrorCodeUnavailable, "search ledger unavailable")
}
