package redis

import (
	"context"
	"errors"
	"go-redis-client/lib/errs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type user struct {
	name  string
	email string
}

func (u user) Fields() map[string]string {
	return map[string]string{"name": u.name, "email": u.email}
}

func TestHashSetGet(t *testing.T) {
	c, _ := newTestClient(t)
	ctx := context.Background()

	n, err := c.HSet(ctx, "h", "f", "v1")
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)
	n, err = c.HSet(ctx, "h", "f", "v2")
	require.NoError(t, err)
	assert.EqualValues(t, 0, n)

	v, err := c.HGet(ctx, "h", "f")
	require.NoError(t, err)
	assert.Equal(t, []byte("v2"), v)
	v, err = c.HGet(ctx, "h", "missing")
	require.NoError(t, err)
	assert.Nil(t, v)

	n, err = c.HSetNx(ctx, "h", "f", "v3")
	require.NoError(t, err)
	assert.EqualValues(t, 0, n)
	n, err = c.HSetNx(ctx, "h", "g", "v3")
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)

	ok, err := c.HExists(ctx, "h", "g")
	require.NoError(t, err)
	assert.True(t, ok)
	n, err = c.HLen(ctx, "h")
	require.NoError(t, err)
	assert.EqualValues(t, 2, n)

	values, err := c.HMGet(ctx, "h", "f", "nope", "g")
	require.NoError(t, err)
	assert.Equal(t, [][]byte{[]byte("v2"), nil, []byte("v3")}, values)

	n, err = c.HDel(ctx, "h", "f", "nope")
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)
}

func TestHashIncrBy(t *testing.T) {
	c, _ := newTestClient(t)
	ctx := context.Background()

	n, err := c.HIncrBy(ctx, "h", "count", 5)
	require.NoError(t, err)
	assert.EqualValues(t, 5, n)
	n, err = c.HIncrBy(ctx, "h", "count", -2)
	require.NoError(t, err)
	assert.EqualValues(t, 3, n)

	_, err = c.HSet(ctx, "h", "name", "bob")
	require.NoError(t, err)
	_, err = c.HIncrBy(ctx, "h", "name", 1)
	var remote *errs.RemoteCommandError
	assert.True(t, errors.As(err, &remote))
}

func TestHashBulkReads(t *testing.T) {
	c, _ := newTestClient(t)
	ctx := context.Background()

	all, err := c.HGetAll(ctx, "missing")
	require.NoError(t, err)
	assert.NotNil(t, all)
	assert.Empty(t, all)
	keys, err := c.HKeys(ctx, "missing")
	require.NoError(t, err)
	assert.NotNil(t, keys)
	assert.Empty(t, keys)
	vals, err := c.HVals(ctx, "missing")
	require.NoError(t, err)
	assert.NotNil(t, vals)
	assert.Empty(t, vals)

	require.NoError(t, c.HMSet(ctx, "h", map[string]string{"a": "1", "b": "2"}))
	all, err = c.HGetAll(ctx, "h")
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"a": "1", "b": "2"}, all)
	keys, err = c.HKeys(ctx, "h")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"a", "b"}, keys)
	vals, err = c.HVals(ctx, "h")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"1", "2"}, vals)

	assert.Error(t, c.HMSet(ctx, "h", nil))
}

func TestHSetFields(t *testing.T) {
	c, _ := newTestClient(t)
	ctx := context.Background()

	require.NoError(t, c.HSetFields(ctx, "user:1", user{name: "alice", email: "alice@example.com"}))
	all, err := c.HGetAll(ctx, "user:1")
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"name": "alice", "email": "alice@example.com"}, all)

	require.NoError(t, c.HSetFields(ctx, "user:1", FieldMapperFunc(func() map[string]string {
		return map[string]string{"name": "bob"}
	})))
	v, err := c.HGet(ctx, "user:1", "name")
	require.NoError(t, err)
	assert.Equal(t, []byte("bob"), v)
}
