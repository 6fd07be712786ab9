package handler

import (
	"context"
	"go-redis-client/interface/tcp"
	"go-redis-client/lib/logger"
	"net"
	"sync"
)

// ListenAndServe accepts connections until closeChan fires or Accept fails,
// then closes the handler and waits for the connection goroutines.
func ListenAndServe(listener net.Listener, handler tcp.Handler, closeChan <-chan struct{}) {
	errCh := make(chan error, 1)
	defer close(errCh)
	go func() {
		select {
		case <-closeChan:
			logger.Debug("handler: get exit signal")
		case er := <-errCh:
			logger.Debug("handler: accept error: " + er.Error())
		}
		_ = listener.Close()
		_ = handler.Close()
	}()

	ctx := context.Background()
	var waitDone sync.WaitGroup
	for {
		conn, err := listener.Accept()
		if err != nil {
			errCh <- err
			break
		}
		waitDone.Add(1)
		go func() {
			defer waitDone.Done()
			handler.Handle(ctx, conn)
		}()
	}
	waitDone.Wait()
}

// Server is a running scripted RESP server on a loopback port
type Server struct {
	listener  net.Listener
	handler   *RespHandler
	closeChan chan struct{}
	done      chan struct{}
	once      sync.Once
}

// Serve starts a server on a random loopback port
func Serve(routes map[string]ExecFunc) (*Server, error) {
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		return nil, err
	}
	s := &Server{
		listener:  listener,
		handler:   MakeHandler(routes),
		closeChan: make(chan struct{}),
		done:      make(chan struct{}),
	}
	go func() {
		defer close(s.done)
		ListenAndServe(listener, s.handler, s.closeChan)
	}()
	return s, nil
}

func (s *Server) Addr() string {
	return s.listener.Addr().String()
}

// Served returns how many replies were written on connections closed so far
func (s *Server) Served() int64 {
	return s.handler.Served()
}

// Close stops accepting, drops all connections and waits for them to finish
func (s *Server) Close() {
	s.once.Do(func() {
		close(s.closeChan)
	})
	<-s.done
}
