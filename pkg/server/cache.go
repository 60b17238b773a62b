package server

import (
	"context"
	"sync"
	"time"

	"github.com/bytedance/sonic"
	"github.com/redis/go-redis/v9"
)

type localEntry struct {
	expires time.Time
	data    []byte
}

// Cache is a redis-backed cache with a short-lived local memory layer
// in front, so hot lookups skip the network entirely.
type Cache struct {
	client *redis.Client

	mu  sync.Mutex
	mem map[string]localEntry
}

const localTtl = time.Minute

func NewCache(addr, password string, db int) *Cache {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	return &Cache{client: rdb, mem: make(map[string]localEntry)}
}

func (c *Cache) Get(ctx context.Context, key string, out any) error {
	c.mu.Lock()
	local, found := c.mem[key]
	if found && time.Now().Before(local.expires) {
		c.mu.Unlock()
		return sonic.Unmarshal(local.data, out)
	}
	if found {
		delete(c.mem, key)
	}
	c.mu.Unlock()

	data, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		return err
	}
	c.mu.Lock()
	c.mem[key] = localEntry{expires: time.Now().Add(localTtl), data: data}
	c.mu.Unlock()
	return sonic.Unmarshal(data, out)
}

func (c *Cache) Set(ctx context.Context, key string, value any, expiration time.Duration) error {
	data, err := sonic.Marshal(value)
	if err != nil {
		return err
	}
	local := expiration
	if local > localTtl {
		local = localTtl
	}
	c.mu.Lock()
	c.mem[key] = localEntry{expires: time.Now().Add(local), data: data}
	c.mu.Unlock()
	return c.client.Set(ctx, key, data, expiration).Err()
}

func (c *Cache) Close() {
	c.client.Close()
}
