package handler

import (
	"bufio"
	"go-redis-client/interface/resp"
	"go-redis-client/lib/utils"
	"go-redis-client/resp/parser"
	"go-redis-client/resp/reply"
	"io"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func roundTrip(t *testing.T, conn net.Conn, r *bufio.Reader, args ...string) resp.Reply {
	t.Helper()
	_, err := conn.Write(reply.MakeMultiBulkReply(utils.ToCmdLine(args...)).ToBytes())
	require.NoError(t, err)
	result, err := parser.ReadReply(r)
	require.NoError(t, err)
	return result
}

func TestScriptedReplies(t *testing.T) {
	s, err := Serve(map[string]ExecFunc{
		"PING": Pong,
		"set":  Ok,
		"echo": func(args [][]byte) resp.Reply { return reply.MakeBulkReply(args[1]) },
		"quit": func(args [][]byte) resp.Reply { return nil },
	})
	require.NoError(t, err)
	defer s.Close()

	conn, err := net.DialTimeout("tcp", s.Addr(), time.Second)
	require.NoError(t, err)
	defer conn.Close()
	r := bufio.NewReader(conn)

	assert.Equal(t, reply.MakeStatusReply("PONG"), roundTrip(t, conn, r, "ping"))
	assert.True(t, reply.IsOKReply(roundTrip(t, conn, r, "SET", "k", "v")))
	assert.Equal(t, reply.MakeBulkReply([]byte("hi")), roundTrip(t, conn, r, "echo", "hi"))
	assert.True(t, reply.IsErrReply(roundTrip(t, conn, r, "flushall")))

	_, err = conn.Write(reply.MakeMultiBulkReply(utils.ToCmdLine("QUIT")).ToBytes())
	require.NoError(t, err)
	_, err = parser.ReadReply(r)
	assert.ErrorIs(t, err, io.EOF)

	assert.Eventually(t, func() bool { return s.Served() == 4 }, time.Second, 10*time.Millisecond)
}

func TestCloseDropsConnections(t *testing.T) {
	s, err := Serve(map[string]ExecFunc{"ping": Pong})
	require.NoError(t, err)

	conn, err := net.DialTimeout("tcp", s.Addr(), time.Second)
	require.NoError(t, err)
	defer conn.Close()
	r := bufio.NewReader(conn)
	roundTrip(t, conn, r, "PING")

	s.Close()
	s.Close()
	_, err = parser.ReadReply(r)
	assert.Error(t, err)

	_, err = net.DialTimeout("tcp", s.Addr(), 200*time.Millisecond)
	assert.Error(t, err)
}

func TestArityAndWrongType(t *testing.T) {
	s, err := Serve(map[string]ExecFunc{
		"get":  Arity(2, WrongType),
		"echo": Arity(2, func(args [][]byte) resp.Reply { return reply.MakeBulkReply(args[1]) }),
	})
	require.NoError(t, err)
	defer s.Close()

	conn, err := net.DialTimeout("tcp", s.Addr(), time.Second)
	require.NoError(t, err)
	defer conn.Close()
	r := bufio.NewReader(conn)

	assert.Equal(t, reply.MakeArgNumErrReply("echo").ToBytes(), roundTrip(t, conn, r, "ECHO").ToBytes())
	assert.Equal(t, reply.MakeBulkReply([]byte("x")), roundTrip(t, conn, r, "echo", "x"))
	assert.Equal(t, reply.MakeArgNumErrReply("get").ToBytes(), roundTrip(t, conn, r, "get", "a", "b").ToBytes())

	got := roundTrip(t, conn, r, "get", "k")
	require.True(t, reply.IsErrReply(got))
	assert.Equal(t, reply.MakeWrongTypeErrReply().ToBytes(), got.ToBytes())
}
