package redis

import (
	"context"
	"go-redis-client/lib/utils"
)

// SAdd adds members and returns how many were not already present.
func (c *Client) SAdd(ctx context.Context, key string, members ...string) (int64, error) {
	return c.intCmd(ctx, "SADD", utils.Prepend(members, key)...)
}

// SRem removes members and returns how many were actually present.
func (c *Client) SRem(ctx context.Context, key string, members ...string) (int64, error) {
	return c.intCmd(ctx, "SREM", utils.Prepend(members, key)...)
}

// SPop removes and returns a random member, nil for an empty set.
func (c *Client) SPop(ctx context.Context, key string) ([]byte, error) {
	return c.bulkCmd(ctx, "SPOP", key)
}

// SRandMember returns a random member without removing it, nil for an empty set.
func (c *Client) SRandMember(ctx context.Context, key string) ([]byte, error) {
	return c.bulkCmd(ctx, "SRANDMEMBER", key)
}

func (c *Client) SMembers(ctx context.Context, key string) ([]string, error) {
	return c.stringsCmd(ctx, "SMEMBERS", key)
}

func (c *Client) SCard(ctx context.Context, key string) (int64, error) {
	return c.intCmd(ctx, "SCARD", key)
}

func (c *Client) SIsMember(ctx context.Context, key, member string) (bool, error) {
	return c.boolCmd(ctx, "SISMEMBER", key, member)
}

// SDiff returns the members of the first set that are in none of the others.
func (c *Client) SDiff(ctx context.Context, keys ...string) ([]string, error) {
	return c.stringsCmd(ctx, "SDIFF", keys...)
}

// SDiffStore replaces dst with the result of SDiff and returns its size.
func (c *Client) SDiffStore(ctx context.Context, dst string, keys ...string) (int64, error) {
	return c.intCmd(ctx, "SDIFFSTORE", utils.Prepend(keys, dst)...)
}

func (c *Client) SInter(ctx context.Context, keys ...string) ([]string, error) {
	return c.stringsCmd(ctx, "SINTER", keys...)
}

// SInterStore replaces dst with the intersection and returns its size.
func (c *Client) SInterStore(ctx context.Context, dst string, keys ...string) (int64, error) {
	return c.intCmd(ctx, "SINTERSTORE", utils.Prepend(keys, dst)...)
}

func (c *Client) SUnion(ctx context.Context, keys ...string) ([]string, error) {
	return c.stringsCmd(ctx, "SUNION", keys...)
}

// SUnionStore replaces dst with the union and returns its size.
func (c *Client) SUnionStore(ctx context.Context, dst string, keys ...string) (int64, error) {
	return c.intCmd(ctx, "SUNIONSTORE", utils.Prepend(keys, dst)...)
}

// SMove moves member from src to dst. It returns 0 and leaves dst untouched
// when member is not in src.
func (c *Client) SMove(ctx context.Context, src, dst, member string) (int64, error) {
	return c.intCmd(ctx, "SMOVE", src, dst, member)
}
