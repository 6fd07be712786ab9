package redis

import (
	"context"
	"go-redis-client/lib/errs"
	"strconv"
)

// KeyType is the data type held by a key
type KeyType int

const (
	TypeNone KeyType = iota
	TypeString
	TypeHash
	TypeList
	TypeSet
	TypeSortedSet
)

var keyTypeNames = map[KeyType]string{
	TypeNone:      "none",
	TypeString:    "string",
	TypeHash:      "hash",
	TypeList:      "list",
	TypeSet:       "set",
	TypeSortedSet: "sortedset",
}

// names reported by the TYPE command
var keyTypesByWire = map[string]KeyType{
	"none":   TypeNone,
	"string": TypeString,
	"hash":   TypeHash,
	"list":   TypeList,
	"set":    TypeSet,
	"zset":   TypeSortedSet,
}

func (t KeyType) String() string {
	if name, ok := keyTypeNames[t]; ok {
		return name
	}
	return "KeyType(" + strconv.Itoa(int(t)) + ")"
}

// Del removes keys and returns how many existed.
func (c *Client) Del(ctx context.Context, keys ...string) (int64, error) {
	return c.intCmd(ctx, "DEL", keys...)
}

func (c *Client) Exists(ctx context.Context, key string) (bool, error) {
	return c.boolCmd(ctx, "EXISTS", key)
}

// Expire sets a time to live in seconds. It returns false when key does not exist.
func (c *Client) Expire(ctx context.Context, key string, seconds int) (bool, error) {
	return c.boolCmd(ctx, "EXPIRE", key, strconv.Itoa(seconds))
}

// TTL returns the remaining time to live in seconds: -1 when the key has no
// expiry and -2 when it does not exist.
func (c *Client) TTL(ctx context.Context, key string) (int64, error) {
	return c.intCmd(ctx, "TTL", key)
}

// Keys returns the keys matching a glob pattern.
//
// Caution: the server scans the whole key space to answer, which blocks it
// for the duration on a large store. Do not use it on production traffic.
func (c *Client) Keys(ctx context.Context, pattern string) ([]string, error) {
	return c.stringsCmd(ctx, "KEYS", pattern)
}

// Type returns the type of the value at key, TypeNone when absent. Types
// outside the five supported families fail with *errs.ProtocolError.
func (c *Client) Type(ctx context.Context, key string) (KeyType, error) {
	name, err := c.statusCmd(ctx, "TYPE", key)
	if err != nil {
		return TypeNone, err
	}
	t, ok := keyTypesByWire[name]
	if !ok {
		return TypeNone, &errs.ProtocolError{Msg: "unsupported key type " + strconv.Quote(name)}
	}
	return t, nil
}

// FlushAll removes every key of the selected database.
func (c *Client) FlushAll(ctx context.Context) error {
	return c.okCmd(ctx, "FLUSHALL")
}
