package redis

import (
	"context"
	"errors"
	"go-redis-client/lib/utils"
	"sort"
	"strconv"
)

// HSet sets field in the hash at key, creating both if needed. It returns 1
// when the field is new and 0 when an existing value was overwritten.
func (c *Client) HSet(ctx context.Context, key, field, value string) (int64, error) {
	return c.intCmd(ctx, "HSET", key, field, value)
}

// HSetNx sets field only if it does not exist yet; it returns 0 instead of
// overwriting.
func (c *Client) HSetNx(ctx context.Context, key, field, value string) (int64, error) {
	return c.intCmd(ctx, "HSETNX", key, field, value)
}

// HMSet sets several fields at once.
func (c *Client) HMSet(ctx context.Context, key string, hash map[string]string) error {
	if len(hash) == 0 {
		return errors.New("redis: HMSET needs at least one field")
	}
	fields := make([]string, 0, len(hash))
	for field := range hash {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	args := make([]string, 0, 1+2*len(hash))
	args = append(args, key)
	for _, field := range fields {
		args = append(args, field, hash[field])
	}
	return c.okCmd(ctx, "HMSET", args...)
}

// HGet returns the value of field, nil when the field or the key is absent.
func (c *Client) HGet(ctx context.Context, key, field string) ([]byte, error) {
	return c.bulkCmd(ctx, "HGET", key, field)
}

// HMGet returns the values of fields in order, nil for absent ones.
func (c *Client) HMGet(ctx context.Context, key string, fields ...string) ([][]byte, error) {
	return c.bulksCmd(ctx, "HMGET", utils.Prepend(fields, key)...)
}

// HIncrBy adds delta to an integer field; a missing field counts as 0.
func (c *Client) HIncrBy(ctx context.Context, key, field string, delta int64) (int64, error) {
	return c.intCmd(ctx, "HINCRBY", key, field, strconv.FormatInt(delta, 10))
}

func (c *Client) HExists(ctx context.Context, key, field string) (bool, error) {
	return c.boolCmd(ctx, "HEXISTS", key, field)
}

func (c *Client) HLen(ctx context.Context, key string) (int64, error) {
	return c.intCmd(ctx, "HLEN", key)
}

// HDel removes fields and returns how many existed.
func (c *Client) HDel(ctx context.Context, key string, fields ...string) (int64, error) {
	return c.intCmd(ctx, "HDEL", utils.Prepend(fields, key)...)
}

// HKeys returns the field names; empty for an absent key.
func (c *Client) HKeys(ctx context.Context, key string) ([]string, error) {
	return c.stringsCmd(ctx, "HKEYS", key)
}

// HVals returns the values; empty for an absent key.
func (c *Client) HVals(ctx context.Context, key string) ([]string, error) {
	return c.stringsCmd(ctx, "HVALS", key)
}

// HGetAll returns the whole hash; empty (not nil) for an absent key.
func (c *Client) HGetAll(ctx context.Context, key string) (map[string]string, error) {
	return c.stringMapCmd(ctx, "HGETALL", key)
}
