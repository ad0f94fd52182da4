package cache

import (
	"context"
	"encoding/json"
	"errors"
	"net/url"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// QueryCache keeps read results keyed by resource and filter params. Every
// resource has a generation counter that is part of its keys: a mutation
// bumps it, so results fetched before the mutation can never be read again.
// Keys are also tracked in a per-resource set so old generations are freed
// right away instead of waiting for the TTL.
type QueryCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewQueryCache(client *redis.Client, ttl time.Duration) *QueryCache {
	return &QueryCache{client: client, ttl: ttl}
}

// Slot is where one read goes. It pins the generation seen before the
// upstream call.
type Slot struct {
	Resource string
	Key      string
}

// Key is "query:<resource>:<generation>:<sorted query string>".
func Key(resource string, gen int64, params url.Values) string {
	encoded := params.Encode()
	if encoded == "" {
		encoded = "all"
	}
	return "query:" + resource + ":" + strconv.FormatInt(gen, 10) + ":" + encoded
}

func indexKey(resource string) string {
	return "query_keys:" + resource
}

func genKey(resource string) string {
	return "query_gen:" + resource
}

func (c *QueryCache) Slot(ctx context.Context, resource string, params url.Values) (Slot, error) {
	gen, err := c.client.Get(ctx, genKey(resource)).Int64()
	if err != nil && !errors.Is(err, redis.Nil) {
		return Slot{}, err
	}
	return Slot{Resource: resource, Key: Key(resource, gen, params)}, nil
}

// Get reports false on a miss.
func (c *QueryCache) Get(ctx context.Context, slot Slot, dest any) (bool, error) {
	val, err := c.client.Get(ctx, slot.Key).Bytes()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal(val, dest); err != nil {
		// битая запись, просто перечитаем
		c.client.Del(ctx, slot.Key)
		return false, nil
	}
	return true, nil
}

func (c *QueryCache) Set(ctx context.Context, slot Slot, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	_, err = c.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, slot.Key, data, c.ttl)
		pipe.SAdd(ctx, indexKey(slot.Resource), slot.Key)
		pipe.Expire(ctx, indexKey(slot.Resource), c.ttl)
		return nil
	})
	return err
}

// KEYS come in pairs: generation, index.
var invalidateScript = redis.NewScript(`
for i = 1, #KEYS, 2 do
	redis.call('INCR', KEYS[i])
	local keys = redis.call('SMEMBERS', KEYS[i + 1])
	for j = 1, #keys, 500 do
		redis.call('DEL', unpack(keys, j, math.min(j + 499, #keys)))
	end
	redis.call('DEL', KEYS[i + 1])
end
return 1
`)

// Invalidate drops every cached query of the given resources in one atomic step.
func (c *QueryCache) Invalidate(ctx context.Context, resources ...string) error {
	if len(resources) == 0 {
		return nil
	}
	keys := make([]string, 0, 2*len(resources))
	for _, resource := range resources {
		keys = append(keys, genKey(resource), indexKey(resource))
	}
	return invalidateScript.Run(ctx, c.client, keys).Err()
}
