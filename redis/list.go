package redis

import (
	"context"
	"go-redis-client/lib/utils"
	"strconv"
)

// Position tells LInsert on which side of the pivot to insert
type Position string

const (
	Before Position = "BEFORE"
	After  Position = "AFTER"
)

// LPush prepends values one by one, so the last value ends up at the head.
// It returns the length of the list afterwards.
func (c *Client) LPush(ctx context.Context, key string, values ...string) (int64, error) {
	return c.intCmd(ctx, "LPUSH", utils.Prepend(values, key)...)
}

// RPush appends values in the given order and returns the new length.
func (c *Client) RPush(ctx context.Context, key string, values ...string) (int64, error) {
	return c.intCmd(ctx, "RPUSH", utils.Prepend(values, key)...)
}

// LInsert inserts value next to the first occurrence of pivot. It returns the
// new length, -1 when pivot is not in the list and 0 when key does not exist.
func (c *Client) LInsert(ctx context.Context, key string, where Position, pivot, value string) (int64, error) {
	return c.intCmd(ctx, "LINSERT", key, string(where), pivot, value)
}

// LSet replaces the element at index. An out of range index is an error, the
// list is never extended.
func (c *Client) LSet(ctx context.Context, key string, index int64, value string) error {
	return c.okCmd(ctx, "LSET", key, strconv.FormatInt(index, 10), value)
}

// LRem removes occurrences of value: count > 0 scans from head to tail,
// count < 0 from tail to head, and 0 removes all. It returns the number removed.
func (c *Client) LRem(ctx context.Context, key string, count int64, value string) (int64, error) {
	return c.intCmd(ctx, "LREM", key, strconv.FormatInt(count, 10), value)
}

// LTrim keeps only the inclusive range [start, end].
func (c *Client) LTrim(ctx context.Context, key string, start, end int64) error {
	return c.okCmd(ctx, "LTRIM", key, strconv.FormatInt(start, 10), strconv.FormatInt(end, 10))
}

// LPop removes and returns the head, nil when the list is empty or absent.
func (c *Client) LPop(ctx context.Context, key string) ([]byte, error) {
	return c.bulkCmd(ctx, "LPOP", key)
}

// RPop removes and returns the tail, nil when the list is empty or absent.
func (c *Client) RPop(ctx context.Context, key string) ([]byte, error) {
	return c.bulkCmd(ctx, "RPOP", key)
}

// RPopLPush atomically moves the tail of src to the head of dst and returns
// the element, or nil when src is empty.
func (c *Client) RPopLPush(ctx context.Context, src, dst string) ([]byte, error) {
	return c.bulkCmd(ctx, "RPOPLPUSH", src, dst)
}

// LIndex returns the element at index, nil when out of range.
func (c *Client) LIndex(ctx context.Context, key string, index int64) ([]byte, error) {
	return c.bulkCmd(ctx, "LINDEX", key, strconv.FormatInt(index, 10))
}

func (c *Client) LLen(ctx context.Context, key string) (int64, error) {
	return c.intCmd(ctx, "LLEN", key)
}

// LRange returns the elements in the inclusive range [start, end]; negative
// indices count from the tail, so 0, -1 is the whole list.
func (c *Client) LRange(ctx context.Context, key string, start, end int64) ([]string, error) {
	return c.stringsCmd(ctx, "LRANGE", key, strconv.FormatInt(start, 10), strconv.FormatInt(end, 10))
}
