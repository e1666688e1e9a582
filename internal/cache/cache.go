// Package cache stores computed distance reports in Redis, keyed by a digest
// of the graph and source that produced them.
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sort"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/katalvlaran/pathcost/core"
	"github.com/katalvlaran/pathcost/report"
)

const keyPrefix = "pathcost:dist:"

// ErrMiss is returned by Get when no entry exists for the key.
var ErrMiss = errors.New("cache: miss")

// Cache is a thin repository over a Redis client.
type Cache struct {
	client *redis.Client
	ttl    time.Duration
}

// New wraps an existing client. Entries expire after ttl.
func New(client *redis.Client, ttl time.Duration) *Cache {
	return &Cache{client: client, ttl: ttl}
}

// Dial connects to addr and verifies the connection with PING.
func Dial(ctx context.Context, addr string, ttl time.Duration) (*Cache, error) {
	client := redis.NewClient(&redis.Options{Addr: addr})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("cache: ping %s: %w", addr, err)
	}

	return New(client, ttl), nil
}

// Key digests everything that determines a result: source, directedness and
// the adjacency mapping (keys sorted, arcs in order).
func Key(source string, directed bool, adj map[string][]core.Arc) string {
	h := sha256.New()
	writeField(h, source)
	writeField(h, strconv.FormatBool(directed))

	ids := make([]string, 0, len(adj))
	for id := range adj {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	for _, id := range ids {
		writeField(h, id)
		writeField(h, strconv.Itoa(len(adj[id])))
		for _, a := range adj[id] {
			writeField(h, a.To)
			writeField(h, strconv.FormatFloat(a.Weight, 'g', -1, 64))
		}
	}

	return keyPrefix + hex.EncodeToString(h.Sum(nil))
}

// writeField writes a length-prefixed string so field boundaries are unambiguous.
func writeField(w io.Writer, s string) {
	_, _ = io.WriteString(w, strconv.Itoa(len(s)))
	_, _ = io.WriteString(w, ":")
	_, _ = io.WriteString(w, s)
}

// Get loads the report stored under key.
func (c *Cache) Get(ctx context.Context, key string) (report.DistanceReport, error) {
	var rep report.DistanceReport

	data, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return rep, ErrMiss
	}
	if err != nil {
		return rep, fmt.Errorf("cache: get %s: %w", key, err)
	}
	if err := json.Unmarshal(data, &rep); err != nil {
		return rep, fmt.Errorf("cache: decode %s: %w", key, err)
	}

	return rep, nil
}

// Put stores rep under key with the configured TTL.
func (c *Cache) Put(ctx context.Context, key string, rep report.DistanceReport) error {
	data, err := json.Marshal(rep)
	if err != nil {
		return fmt.Errorf("cache: encode %s: %w", key, err)
	}
	if err := c.client.Set(ctx, key, data, c.ttl).Err(); err != nil {
		return fmt.Errorf("cache: set %s: %w", key, err)
	}

	return nil
}

// Ping reports whether Redis is reachable.
func (c *Cache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

// Close releases the underlying client.
func (c *Cache) Close() error {
	return c.client.Close()
}
