package redis

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetMembership(t *testing.T) {
	c, _ := newTestClient(t)
	ctx := context.Background()

	n, err := c.SAdd(ctx, "s", "a", "b")
	require.NoError(t, err)
	assert.EqualValues(t, 2, n)
	n, err = c.SAdd(ctx, "s", "a", "b")
	require.NoError(t, err)
	assert.EqualValues(t, 0, n)

	ok, err := c.SIsMember(ctx, "s", "a")
	require.NoError(t, err)
	assert.True(t, ok)
	ok, err = c.SIsMember(ctx, "s", "z")
	require.NoError(t, err)
	assert.False(t, ok)

	n, err = c.SCard(ctx, "s")
	require.NoError(t, err)
	assert.EqualValues(t, 2, n)
	members, err := c.SMembers(ctx, "s")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"a", "b"}, members)

	n, err = c.SRem(ctx, "s", "a", "z")
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)

	v, err := c.SRandMember(ctx, "s")
	require.NoError(t, err)
	assert.Equal(t, []byte("b"), v)
	v, err = c.SPop(ctx, "s")
	require.NoError(t, err)
	assert.Equal(t, []byte("b"), v)
	v, err = c.SPop(ctx, "s")
	require.NoError(t, err)
	assert.Nil(t, v)

	members, err = c.SMembers(ctx, "missing")
	require.NoError(t, err)
	assert.NotNil(t, members)
	assert.Empty(t, members)
}

func TestSetAlgebra(t *testing.T) {
	c, _ := newTestClient(t)
	ctx := context.Background()

	_, err := c.SAdd(ctx, "s1", "a", "b", "c")
	require.NoError(t, err)
	_, err = c.SAdd(ctx, "s2", "b", "c", "d")
	require.NoError(t, err)

	diff, err := c.SDiff(ctx, "s1", "s2")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"a"}, diff)
	inter, err := c.SInter(ctx, "s1", "s2")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"b", "c"}, inter)
	union, err := c.SUnion(ctx, "s1", "s2")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"a", "b", "c", "d"}, union)

	inter, err = c.SInter(ctx, "s1", "missing")
	require.NoError(t, err)
	assert.Empty(t, inter)

	n, err := c.SDiffStore(ctx, "d", "s1", "s2")
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)
	n, err = c.SInterStore(ctx, "i", "s1", "s2")
	require.NoError(t, err)
	assert.EqualValues(t, 2, n)
	n, err = c.SUnionStore(ctx, "u", "s1", "s2")
	require.NoError(t, err)
	assert.EqualValues(t, 4, n)
	members, err := c.SMembers(ctx, "u")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"a", "b", "c", "d"}, members)
}

func TestSMove(t *testing.T) {
	c, _ := newTestClient(t)
	ctx := context.Background()

	_, err := c.SAdd(ctx, "src", "a")
	require.NoError(t, err)

	n, err := c.SMove(ctx, "src", "dst", "a")
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)
	ok, err := c.SIsMember(ctx, "dst", "a")
	require.NoError(t, err)
	assert.True(t, ok)

	n, err = c.SMove(ctx, "src", "dst", "a")
	require.NoError(t, err)
	assert.EqualValues(t, 0, n)
}
