package redis

import (
	"context"
	"errors"
	"strconv"
)

// Get returns the value of key, or nil when the key does not exist. A key
// holding another type fails with a WRONGTYPE *errs.RemoteCommandError.
func (c *Client) Get(ctx context.Context, key string) ([]byte, error) {
	return c.bulkCmd(ctx, "GET", key)
}

// Set stores value under key, overwriting whatever was there.
func (c *Client) Set(ctx context.Context, key, value string) error {
	return c.okCmd(ctx, "SET", key, value)
}

// SetNx stores value only if key is absent. It returns 1 when the value was
// stored and 0 when key already existed.
func (c *Client) SetNx(ctx context.Context, key, value string) (int64, error) {
	return c.intCmd(ctx, "SETNX", key, value)
}

// SetEx stores value with a time to live, atomically.
func (c *Client) SetEx(ctx context.Context, key string, seconds int, value string) error {
	return c.okCmd(ctx, "SETEX", key, strconv.Itoa(seconds), value)
}

// GetSet stores value and returns the previous one (nil if absent).
func (c *Client) GetSet(ctx context.Context, key, value string) ([]byte, error) {
	return c.bulkCmd(ctx, "GETSET", key, value)
}

// Append creates key if absent, otherwise concatenates. It returns the new length.
func (c *Client) Append(ctx context.Context, key, value string) (int64, error) {
	return c.intCmd(ctx, "APPEND", key, value)
}

func (c *Client) StrLen(ctx context.Context, key string) (int64, error) {
	return c.intCmd(ctx, "STRLEN", key)
}

// GetRange returns the bytes between start and end, both inclusive. Negative
// offsets count from the end. An absent key yields an empty slice.
func (c *Client) GetRange(ctx context.Context, key string, start, end int64) ([]byte, error) {
	return c.bulkCmd(ctx, "GETRANGE", key, strconv.FormatInt(start, 10), strconv.FormatInt(end, 10))
}

// SetRange overwrites part of the value starting at offset, zero-padding
// as needed, and returns the new length.
func (c *Client) SetRange(ctx context.Context, key string, offset int64, value string) (int64, error) {
	return c.intCmd(ctx, "SETRANGE", key, strconv.FormatInt(offset, 10), value)
}

// MGet returns the values of keys in order, nil for absent ones.
func (c *Client) MGet(ctx context.Context, keys ...string) ([][]byte, error) {
	return c.bulksCmd(ctx, "MGET", keys...)
}

// MSet stores key/value pairs given as key1, value1, key2, value2, ...
func (c *Client) MSet(ctx context.Context, keysAndValues ...string) error {
	if err := checkPairs(keysAndValues); err != nil {
		return err
	}
	return c.okCmd(ctx, "MSET", keysAndValues...)
}

// MSetNx stores all pairs only if none of the keys exists. It returns 1 on
// success and 0 when nothing was stored.
func (c *Client) MSetNx(ctx context.Context, keysAndValues ...string) (int64, error) {
	if err := checkPairs(keysAndValues); err != nil {
		return 0, err
	}
	return c.intCmd(ctx, "MSETNX", keysAndValues...)
}

// Incr adds one to the integer at key. A missing key counts as 0; a value
// that is not a base-10 integer fails with *errs.RemoteCommandError.
func (c *Client) Incr(ctx context.Context, key string) (int64, error) {
	return c.intCmd(ctx, "INCR", key)
}

func (c *Client) IncrBy(ctx context.Context, key string, delta int64) (int64, error) {
	return c.intCmd(ctx, "INCRBY", key, strconv.FormatInt(delta, 10))
}

func (c *Client) Decr(ctx context.Context, key string) (int64, error) {
	return c.intCmd(ctx, "DECR", key)
}

func (c *Client) DecrBy(ctx context.Context, key string, delta int64) (int64, error) {
	return c.intCmd(ctx, "DECRBY", key, strconv.FormatInt(delta, 10))
}

func checkPairs(args []string) error {
	if len(args) == 0 || len(args)%2 != 0 {
		return errors.New("redis: expected key/value pairs")
	}
	return nil
}
