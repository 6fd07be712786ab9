package redis

import (
	"context"
	"errors"
	"go-redis-client/lib/errs"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetSet(t *testing.T) {
	c, _ := newTestClient(t)
	ctx := context.Background()

	v, err := c.Get(ctx, "missing")
	require.NoError(t, err)
	assert.Nil(t, v)

	require.NoError(t, c.Set(ctx, "k", "hello"))
	v, err = c.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("hello"), v)

	require.NoError(t, c.Set(ctx, "k", "world"))
	v, err = c.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("world"), v)

	require.NoError(t, c.Set(ctx, "empty", ""))
	v, err = c.Get(ctx, "empty")
	require.NoError(t, err)
	assert.NotNil(t, v)
	assert.Len(t, v, 0)

	old, err := c.GetSet(ctx, "k", "again")
	require.NoError(t, err)
	assert.Equal(t, []byte("world"), old)
	old, err = c.GetSet(ctx, "fresh", "x")
	require.NoError(t, err)
	assert.Nil(t, old)
}

func TestGetWrongType(t *testing.T) {
	c, _ := newTestClient(t)
	ctx := context.Background()

	_, err := c.LPush(ctx, "list", "a")
	require.NoError(t, err)
	_, err = c.Get(ctx, "list")
	assert.True(t, errs.IsWrongType(err), "got %v", err)
}

func TestSetNx(t *testing.T) {
	c, _ := newTestClient(t)
	ctx := context.Background()

	n, err := c.SetNx(ctx, "k", "v1")
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)
	n, err = c.SetNx(ctx, "k", "v2")
	require.NoError(t, err)
	assert.EqualValues(t, 0, n)

	v, err := c.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("v1"), v)
}

func TestSetEx(t *testing.T) {
	c, s := newTestClient(t)
	ctx := context.Background()

	require.NoError(t, c.SetEx(ctx, "session", 10, "token"))
	assert.Equal(t, 10*time.Second, s.TTL("session"))
	s.FastForward(11 * time.Second)
	v, err := c.Get(ctx, "session")
	require.NoError(t, err)
	assert.Nil(t, v)
}

func TestIncrDecr(t *testing.T) {
	c, _ := newTestClient(t)
	ctx := context.Background()
	require.NoError(t, c.FlushAll(ctx))

	for i := int64(1); i <= 5; i++ {
		n, err := c.Incr(ctx, "counter")
		require.NoError(t, err)
		assert.Equal(t, i, n)
	}
	n, err := c.IncrBy(ctx, "counter", 10)
	require.NoError(t, err)
	assert.EqualValues(t, 15, n)
	n, err = c.Decr(ctx, "counter")
	require.NoError(t, err)
	assert.EqualValues(t, 14, n)
	n, err = c.DecrBy(ctx, "counter", 20)
	require.NoError(t, err)
	assert.EqualValues(t, -6, n)

	n, err = c.DecrBy(ctx, "other", 3)
	require.NoError(t, err)
	assert.EqualValues(t, -3, n)

	require.NoError(t, c.Set(ctx, "text", "abc"))
	_, err = c.Incr(ctx, "text")
	var remote *errs.RemoteCommandError
	require.True(t, errors.As(err, &remote))
	assert.Contains(t, remote.Msg, "not an integer")
}

func TestAppendAndRanges(t *testing.T) {
	c, _ := newTestClient(t)
	ctx := context.Background()

	n, err := c.Append(ctx, "s", "Hello")
	require.NoError(t, err)
	assert.EqualValues(t, 5, n)
	n, err = c.Append(ctx, "s", " World")
	require.NoError(t, err)
	assert.EqualValues(t, 11, n)

	n, err = c.StrLen(ctx, "s")
	require.NoError(t, err)
	assert.EqualValues(t, 11, n)

	v, err := c.GetRange(ctx, "s", 0, 4)
	require.NoError(t, err)
	assert.Equal(t, []byte("Hello"), v)
	v, err = c.GetRange(ctx, "s", -5, -1)
	require.NoError(t, err)
	assert.Equal(t, []byte("World"), v)
	v, err = c.GetRange(ctx, "missing", 0, -1)
	require.NoError(t, err)
	assert.Empty(t, v)

	n, err = c.SetRange(ctx, "s", 6, "Redis")
	require.NoError(t, err)
	assert.EqualValues(t, 11, n)
	v, err = c.Get(ctx, "s")
	require.NoError(t, err)
	assert.Equal(t, []byte("Hello Redis"), v)
}

func TestMultiKey(t *testing.T) {
	c, _ := newTestClient(t)
	ctx := context.Background()

	require.NoError(t, c.MSet(ctx, "a", "1", "b", "2"))
	values, err := c.MGet(ctx, "a", "missing", "b")
	require.NoError(t, err)
	assert.Equal(t, [][]byte{[]byte("1"), nil, []byte("2")}, values)

	n, err := c.MSetNx(ctx, "b", "x", "c", "3")
	require.NoError(t, err)
	assert.EqualValues(t, 0, n)
	exists, err := c.Exists(ctx, "c")
	require.NoError(t, err)
	assert.False(t, exists)

	n, err = c.MSetNx(ctx, "c", "3", "d", "4")
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)

	assert.Error(t, c.MSet(ctx, "odd"))
	_, err = c.MSetNx(ctx)
	assert.Error(t, err)
}
