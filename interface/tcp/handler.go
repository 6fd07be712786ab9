package tcp

import (
	"context"
	"net"
)

// Handler serves the connections accepted by a tcp listener
type Handler interface {
	Handle(ctx context.Context, conn net.Conn)
	Close() error
}
