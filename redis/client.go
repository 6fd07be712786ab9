// Package redis is a typed client for a remote redis server.
//
// Every operation borrows one pooled connection, runs exactly one command on
// it and gives the connection back, whatever the outcome:
//
//	c, err := redis.NewFromProperties(props)
//	if err != nil {
//		return err
//	}
//	defer c.Close()
//
//	if err := c.Set(ctx, "user:1", "alice"); err != nil {
//		return err
//	}
//	name, err := c.Get(ctx, "user:1") // nil when the key is absent
//
// Failed calls return one of the kinds in package errs. Commands are never
// retried on another connection, since a destructive command such as LPOP
// may already have run on the server.
package redis

import (
	"context"
	"go-redis-client/config"
	"go-redis-client/interface/resp"
	"go-redis-client/lib/errs"
	"go-redis-client/lib/utils"
	"go-redis-client/pool"
	"go-redis-client/resp/reply"
	"strings"
)

// Client is safe for concurrent use. Concurrent calls run on different
// connections and are not ordered relative to each other.
type Client struct {
	pool *pool.Pool
}

// New wraps an existing pool. Close on the returned client closes the pool.
func New(p *pool.Pool) *Client {
	return &Client{pool: p}
}

// NewFromProperties builds the pool described by props
func NewFromProperties(props *config.ClientProperties) (*Client, error) {
	p, err := pool.New(pool.Config{
		Addr:         props.Addr(),
		Password:     props.Password,
		DB:           props.Database,
		MaxTotal:     props.MaxTotal,
		MaxIdle:      props.MaxIdle,
		MaxWait:      props.MaxWait(),
		DialTimeout:  props.DialTimeout(),
		ReadTimeout:  props.ReadTimeout(),
		WriteTimeout: props.WriteTimeout(),
		CloseTimeout: props.CloseTimeout(),
	})
	if err != nil {
		return nil, err
	}
	return New(p), nil
}

// Close shuts down the underlying pool; later calls fail with errs.ErrPoolClosed.
func (c *Client) Close() error {
	return c.pool.Close()
}

// Stats reports the occupancy of the underlying pool
func (c *Client) Stats() pool.Stats {
	return c.pool.Stats()
}

// Execute runs one command and returns its raw reply. An error reply from the
// server is returned as *errs.RemoteCommandError.
func (c *Client) Execute(ctx context.Context, cmd string, args ...string) (r resp.Reply, err error) {
	conn, err := c.pool.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer func() {
		if p := recover(); p != nil {
			// the stream position is unknown, never recycle this connection
			_ = conn.Close()
			c.pool.Release(conn, err)
			panic(p)
		}
		c.pool.Release(conn, err)
	}()

	r, err = conn.Send(utils.ToCmdLine2(cmd, args...))
	if err != nil {
		return nil, err
	}
	if errReply, ok := r.(reply.ErrorReply); ok {
		return nil, &errs.RemoteCommandError{Cmd: strings.ToUpper(cmd), Msg: errReply.Error()}
	}
	return r, nil
}

// Ping checks the server is reachable
func (c *Client) Ping(ctx context.Context) error {
	r, err := c.Execute(ctx, "PING")
	if err != nil {
		return err
	}
	_, err = asStatus("PING", r)
	return err
}
