package redis

import (
	"context"
	"go-redis-client/lib/utils"
	"strconv"
)

// Score bounds for the *Bound range queries, in the server's range syntax.
const (
	MinScore = "-inf"
	MaxScore = "+inf"
)

// Inclusive renders score as a closed range bound
func Inclusive(score float64) string {
	return utils.FormatFloat(score)
}

// Exclusive renders score as an open range bound, e.g. "(1.5"
func Exclusive(score float64) string {
	return "(" + utils.FormatFloat(score)
}

// ZAdd inserts member with score, or updates the score of an existing member.
// It returns 1 when the member is new.
func (c *Client) ZAdd(ctx context.Context, key string, score float64, member string) (int64, error) {
	return c.intCmd(ctx, "ZADD", key, utils.FormatFloat(score), member)
}

// ZRem removes members and returns how many existed.
func (c *Client) ZRem(ctx context.Context, key string, members ...string) (int64, error) {
	return c.intCmd(ctx, "ZREM", utils.Prepend(members, key)...)
}

// ZIncrBy adds delta to the score of member (0 for a new member) and returns
// the new score.
func (c *Client) ZIncrBy(ctx context.Context, key string, delta float64, member string) (float64, error) {
	return c.floatCmd(ctx, "ZINCRBY", key, utils.FormatFloat(delta), member)
}

// ZScore returns the score of member; ok is false when member or key is absent.
func (c *Client) ZScore(ctx context.Context, key, member string) (score float64, ok bool, err error) {
	return c.nullableFloatCmd(ctx, "ZSCORE", key, member)
}

// ZRank returns the 0-based position of member by ascending score; ok is
// false when member is absent. Equal scores are ordered by the server.
func (c *Client) ZRank(ctx context.Context, key, member string) (rank int64, ok bool, err error) {
	return c.nullableIntCmd(ctx, "ZRANK", key, member)
}

// ZRevRank is ZRank under descending score order.
func (c *Client) ZRevRank(ctx context.Context, key, member string) (rank int64, ok bool, err error) {
	return c.nullableIntCmd(ctx, "ZREVRANK", key, member)
}

func (c *Client) ZCard(ctx context.Context, key string) (int64, error) {
	return c.intCmd(ctx, "ZCARD", key)
}

// ZCount counts members with a score between min and max. Bounds use the
// range syntax: "(" for exclusive, "-inf"/"+inf" for unbounded.
func (c *Client) ZCount(ctx context.Context, key, min, max string) (int64, error) {
	return c.intCmd(ctx, "ZCOUNT", key, min, max)
}

// ZRange returns members by ascending score within the inclusive rank range.
func (c *Client) ZRange(ctx context.Context, key string, start, end int64) ([]string, error) {
	return c.stringsCmd(ctx, "ZRANGE", key, strconv.FormatInt(start, 10), strconv.FormatInt(end, 10))
}

// ZRevRange returns members by descending score. The server's tie-break
// order for equal scores is reversed too, so this is sent as ZREVRANGE
// rather than computed from ZRange.
func (c *Client) ZRevRange(ctx context.Context, key string, start, end int64) ([]string, error) {
	return c.stringsCmd(ctx, "ZREVRANGE", key, strconv.FormatInt(start, 10), strconv.FormatInt(end, 10))
}

// ZRangeByScore returns members with min <= score <= max in ascending order.
// Both bounds are always inclusive; use ZRangeByScoreBound for open intervals.
func (c *Client) ZRangeByScore(ctx context.Context, key string, min, max float64) ([]string, error) {
	return c.ZRangeByScoreBound(ctx, key, Inclusive(min), Inclusive(max))
}

// ZRangeByScoreBound is ZRangeByScore with bounds in the server's range syntax,
// see Exclusive, MinScore and MaxScore.
func (c *Client) ZRangeByScoreBound(ctx context.Context, key, min, max string) ([]string, error) {
	return c.stringsCmd(ctx, "ZRANGEBYSCORE", key, min, max)
}

// ZRevRangeByScore returns members with max >= score >= min in descending
// order. Note the argument order: max comes first.
func (c *Client) ZRevRangeByScore(ctx context.Context, key string, max, min float64) ([]string, error) {
	return c.ZRevRangeByScoreBound(ctx, key, Inclusive(max), Inclusive(min))
}

// ZRevRangeByScoreBound is ZRevRangeByScore with bounds in range syntax.
func (c *Client) ZRevRangeByScoreBound(ctx context.Context, key, max, min string) ([]string, error) {
	return c.stringsCmd(ctx, "ZREVRANGEBYSCORE", key, max, min)
}

// ZRemRangeByRank removes members within the inclusive rank range and
// returns how many were removed.
func (c *Client) ZRemRangeByRank(ctx context.Context, key string, start, end int64) (int64, error) {
	return c.intCmd(ctx, "ZREMRANGEBYRANK", key, strconv.FormatInt(start, 10), strconv.FormatInt(end, 10))
}

// ZRemRangeByScore removes members with min <= score <= max.
func (c *Client) ZRemRangeByScore(ctx context.Context, key string, min, max float64) (int64, error) {
	return c.intCmd(ctx, "ZREMRANGEBYSCORE", key, Inclusive(min), Inclusive(max))
}
