// Package handler is a minimal RESP server whose answers are scripted per
// command. It stands in for a redis server where a test needs replies a real
// one would never send: hangs, garbage bytes, dropped sockets.
package handler

import (
	"context"
	"errors"
	"go-redis-client/interface/resp"
	"go-redis-client/lib/logger"
	"go-redis-client/resp/connection"
	"go-redis-client/resp/parser"
	"go-redis-client/resp/reply"
	"io"
	"net"
	"strings"
	"sync"

	"go.uber.org/atomic"
	"go.uber.org/multierr"
)

// ExecFunc answers one command; args[0] is the command name. Returning nil
// closes the connection without replying.
type ExecFunc func(args [][]byte) resp.Reply

// Raw is written to the wire verbatim
type Raw []byte

func (r Raw) ToBytes() []byte {
	return r
}

// Pong answers PING
func Pong(args [][]byte) resp.Reply {
	return reply.MakeStatusReply("PONG")
}

// Ok answers +OK to anything
func Ok(args [][]byte) resp.Reply {
	return reply.MakeOkReply()
}

// WrongType rejects the command as if the key held another data type
func WrongType(args [][]byte) resp.Reply {
	return reply.MakeWrongTypeErrReply()
}

// Arity wraps fn so that calls with other than n arguments, the command name
// included, get a wrong-number-of-arguments error.
func Arity(n int, fn ExecFunc) ExecFunc {
	return func(args [][]byte) resp.Reply {
		if len(args) != n {
			return reply.MakeArgNumErrReply(strings.ToLower(string(args[0])))
		}
		return fn(args)
	}
}

type RespHandler struct {
	activeConn sync.Map
	routes     map[string]ExecFunc
	closing    atomic.Bool
	served     atomic.Int64
}

// MakeHandler creates a handler answering the given commands (case-insensitive)
func MakeHandler(routes map[string]ExecFunc) *RespHandler {
	h := &RespHandler{routes: make(map[string]ExecFunc, len(routes))}
	for name, fn := range routes {
		h.routes[strings.ToLower(name)] = fn
	}
	return h
}

func (h *RespHandler) Handle(ctx context.Context, netConn net.Conn) {
	if h.closing.Load() {
		_ = netConn.Close()
		return
	}
	conn := connection.NewConn(netConn)
	h.activeConn.Store(conn, struct{}{})
	ch := parser.ParseStream(conn)
	defer h.closeClient(conn, ch)
	for payload := range ch {
		if payload.Err != nil {
			if !errors.Is(payload.Err, io.EOF) && !errors.Is(payload.Err, net.ErrClosed) {
				logger.Debug("handler: " + payload.Err.Error())
				_, _ = conn.Write(reply.MakeStandardErrReply("ERR " + payload.Err.Error()).ToBytes())
			}
			return
		}
		cmd, ok := payload.Data.(*reply.MultiBulkReply)
		if !ok || len(cmd.Args) == 0 {
			_, _ = conn.Write(reply.MakeStandardErrReply("ERR expected a command array").ToBytes())
			continue
		}
		result := h.exec(cmd.Args)
		if result == nil {
			return
		}
		if _, err := conn.Write(result.ToBytes()); err != nil {
			return
		}
	}
}

func (h *RespHandler) exec(args [][]byte) resp.Reply {
	name := strings.ToLower(string(args[0]))
	fn, ok := h.routes[name]
	if !ok {
		return reply.MakeUnknownCommandErrReply(name)
	}
	return fn(args)
}

func (h *RespHandler) closeClient(conn *connection.Connection, ch <-chan *parser.Payload) {
	h.activeConn.Delete(conn)
	h.served.Add(conn.Served())
	logger.Debugf("handler: client %s disconnected after %d replies", conn.Name(), conn.Served())
	_ = conn.Close()
	// let the parser goroutine deliver its final error and exit
	go func() {
		for range ch {
		}
	}()
}

// Served returns how many replies were written on connections that have since closed
func (h *RespHandler) Served() int64 {
	return h.served.Load()
}

// Close drops every active connection and refuses new ones
func (h *RespHandler) Close() error {
	h.closing.Store(true)
	var err error
	h.activeConn.Range(func(key, value interface{}) bool {
		err = multierr.Append(err, key.(*connection.Connection).Close())
		return true
	})
	return err
}
