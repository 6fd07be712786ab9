package connection

import (
	"net"
	"time"

	"go-redis-client/lib/sync/wait"

	"go.uber.org/atomic"
)

// Connection is the server side of one client socket of the scripted server
type Connection struct {
	conn net.Conn

	// wait until finish sending data, used for graceful shutdown
	sendingData wait.Wait

	// commands answered so far
	served atomic.Int64
	closed atomic.Bool
}

// NewConn wraps an accepted socket
func NewConn(conn net.Conn) *Connection {
	return &Connection{conn: conn}
}

// Name identifies the client by its remote address
func (c *Connection) Name() string {
	if c.conn != nil {
		return c.conn.RemoteAddr().String()
	}
	return ""
}

// Read reads request bytes from the client
func (c *Connection) Read(b []byte) (int, error) {
	return c.conn.Read(b)
}

// Write sends a reply to the client
func (c *Connection) Write(b []byte) (int, error) {
	if len(b) == 0 {
		return 0, nil
	}
	c.sendingData.Add(1)
	defer c.sendingData.Done()
	n, err := c.conn.Write(b)
	if err == nil {
		c.served.Inc()
	}
	return n, err
}

// Served returns how many replies were written
func (c *Connection) Served() int64 {
	return c.served.Load()
}

// Close waits for an in-flight reply, then disconnects. Calling it again is a no-op.
func (c *Connection) Close() error {
	if !c.closed.CompareAndSwap(false, true) {
		return nil
	}
	c.sendingData.WaitWithTimeout(time.Second)
	return c.conn.Close()
}
