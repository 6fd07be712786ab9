package client

import (
	"bufio"
	"context"
	"errors"
	"go-redis-client/interface/resp"
	"go-redis-client/lib/errs"
	"go-redis-client/lib/logger"
	"go-redis-client/lib/utils"
	"go-redis-client/resp/parser"
	"go-redis-client/resp/reply"
	"net"
	"strconv"
	"sync"
	"time"

	"go.uber.org/atomic"
)

const (
	created = iota
	running
	closed
)

var errClientClosed = errors.New("connection closed")

// Options are the per-connection settings applied at open time
type Options struct {
	Password     string
	DB           int
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// Client is one connection to a redis server. It carries at most one command
// at a time: Send holds the connection until the full reply has been read.
type Client struct {
	conn   net.Conn
	reader *bufio.Reader
	addr   string
	opts   Options
	status atomic.Int32

	// serializes request/response exchanges
	mu sync.Mutex
}

// MakeClient dials addr, then authenticates and selects the database when
// configured. Any failure closes the socket and is reported as *errs.ConnectionError.
func MakeClient(ctx context.Context, addr string, opts Options) (*Client, error) {
	dialer := &net.Dialer{Timeout: opts.DialTimeout}
	conn, err := dialer.DialContext(ctx, "tcp", addr)
	if err != nil {
		return nil, &errs.ConnectionError{Addr: addr, Err: err}
	}
	client := &Client{
		addr:   addr,
		conn:   conn,
		reader: bufio.NewReader(conn),
		opts:   opts,
	}
	client.status.Store(running)
	if err := client.handshake(); err != nil {
		_ = client.Close()
		return nil, &errs.ConnectionError{Addr: addr, Err: err}
	}
	logger.Debug("connection opened: " + client.Name())
	return client, nil
}

func (client *Client) handshake() error {
	if client.opts.Password != "" {
		if err := client.expectOK(utils.ToCmdLine("AUTH", client.opts.Password)); err != nil {
			return err
		}
	}
	if client.opts.DB != 0 {
		if err := client.expectOK(utils.ToCmdLine("SELECT", strconv.Itoa(client.opts.DB))); err != nil {
			return err
		}
	}
	return nil
}

func (client *Client) expectOK(cmdLine [][]byte) error {
	r, err := client.Send(cmdLine)
	if err != nil {
		return err
	}
	if errReply, ok := r.(reply.ErrorReply); ok {
		return &errs.RemoteCommandError{Cmd: string(cmdLine[0]), Msg: errReply.Error()}
	}
	if !reply.IsOKReply(r) {
		return &errs.ProtocolError{Msg: "unexpected reply to " + string(cmdLine[0]) + ": " + string(r.ToBytes())}
	}
	return nil
}

// Send writes one command and blocks until its reply arrives. A server error
// reply is returned as a reply.ErrorReply with a nil error. Transport and
// protocol failures close the connection.
func (client *Client) Send(args [][]byte) (resp.Reply, error) {
	if len(args) == 0 {
		return nil, errors.New("empty command")
	}
	client.mu.Lock()
	defer client.mu.Unlock()
	if client.status.Load() != running {
		return nil, &errs.TransportError{Addr: client.addr, Err: errClientClosed}
	}

	if err := client.setDeadline(client.conn.SetWriteDeadline, client.opts.WriteTimeout); err != nil {
		return nil, client.fail(err)
	}
	if _, err := client.conn.Write(reply.MakeMultiBulkReply(args).ToBytes()); err != nil {
		return nil, client.fail(err)
	}

	if err := client.setDeadline(client.conn.SetReadDeadline, client.opts.ReadTimeout); err != nil {
		return nil, client.fail(err)
	}
	r, err := parser.ReadReply(client.reader)
	if err != nil {
		return nil, client.fail(err)
	}
	return r, nil
}

func (client *Client) setDeadline(set func(time.Time) error, timeout time.Duration) error {
	if timeout <= 0 {
		return set(time.Time{})
	}
	return set(time.Now().Add(timeout))
}

// fail closes a connection whose stream can no longer be trusted
func (client *Client) fail(err error) error {
	_ = client.Close()
	var pe *errs.ProtocolError
	if errors.As(err, &pe) {
		logger.Warn("discarding connection " + client.addr + ": " + err.Error())
		return err
	}
	logger.Warn("connection " + client.addr + " broken: " + err.Error())
	return &errs.TransportError{Addr: client.addr, Err: err}
}

// Ping checks that the server answers on this connection
func (client *Client) Ping() error {
	r, err := client.Send(utils.ToCmdLine("PING"))
	if err != nil {
		return err
	}
	if s, ok := r.(*reply.StatusReply); !ok || s.Status != "PONG" {
		return &errs.ProtocolError{Msg: "unexpected reply to PING: " + string(r.ToBytes())}
	}
	return nil
}

// Usable reports whether the connection may still carry commands
func (client *Client) Usable() bool {
	return client.status.Load() == running
}

// Close closes the socket. It is safe to call more than once.
func (client *Client) Close() error {
	if !client.status.CompareAndSwap(running, closed) {
		return nil
	}
	logger.Debug("connection closed: " + client.addr)
	return client.conn.Close()
}

// Addr returns the server address this client dialed
func (client *Client) Addr() string {
	return client.addr
}

// Name identifies the connection by its local and remote endpoints
func (client *Client) Name() string {
	return client.conn.LocalAddr().String() + "->" + client.conn.RemoteAddr().String()
}
