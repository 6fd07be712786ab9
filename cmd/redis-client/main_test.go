package main

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"go-redis-client/interface/resp"
	"go-redis-client/resp/reply"
)

func TestFormat(t *testing.T) {
	cases := []struct {
		r    resp.Reply
		want string
	}{
		{reply.MakeOkReply(), "OK"},
		{reply.MakeIntReply(3), "(integer) 3"},
		{reply.MakeBulkReply([]byte("v")), `"v"`},
		{reply.MakeNullBulkReply(), "(nil)"},
		{reply.MakeMultiBulkReply(nil), "(empty array)"},
		{reply.MakeMultiBulkReply([][]byte{[]byte("a"), nil}), "1) \"a\"\n2) (nil)"},
		{reply.MakeMultiRawReply([]resp.Reply{
			reply.MakeIntReply(1),
			reply.MakeMultiBulkReply([][]byte{[]byte("x"), []byte("y")}),
		}), "1) (integer) 1\n2) 1) \"x\"\n   2) \"y\""},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, format(tc.r, ""))
	}
}
