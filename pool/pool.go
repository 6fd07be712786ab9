// Package pool keeps a bounded set of connections to one redis server.
//
// Acquire hands out a connection for the exclusive use of one caller and
// Release takes it back. Idle connections are checked with PING before they
// are handed out again, broken ones are destroyed on release, and Acquire
// waits at most Config.MaxWait for a free slot.
package pool

import (
	"context"
	"errors"
	"fmt"
	"go-redis-client/lib/errs"
	"go-redis-client/lib/logger"
	"go-redis-client/lib/sync/wait"
	"go-redis-client/resp/client"
	"sync"
	"time"

	commonspool "github.com/jolestar/go-commons-pool"
	"go.uber.org/multierr"
)

// Config describes the server and the pool limits
type Config struct {
	Addr     string
	Password string
	DB       int

	MaxTotal int
	MaxIdle  int
	MaxWait  time.Duration

	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration

	// how long Close waits for borrowed connections before closing them
	CloseTimeout time.Duration
}

func (cfg *Config) validate() error {
	switch {
	case cfg.Addr == "":
		return errors.New("pool: empty server address")
	case cfg.MaxTotal <= 0:
		return fmt.Errorf("pool: max total must be positive, got %d", cfg.MaxTotal)
	case cfg.MaxIdle < 0 || cfg.MaxIdle > cfg.MaxTotal:
		return fmt.Errorf("pool: max idle must be within [0, %d], got %d", cfg.MaxTotal, cfg.MaxIdle)
	case cfg.MaxWait <= 0:
		return fmt.Errorf("pool: max wait must be positive, got %s", cfg.MaxWait)
	}
	return nil
}

// Stats is a snapshot of the pool occupancy
type Stats struct {
	Active int
	Idle   int
}

// Pool hands out connections to one server, at most MaxTotal at a time
type Pool struct {
	cfg     Config
	objects *commonspool.ObjectPool

	mu       sync.Mutex
	closed   bool
	borrowed map[*client.Client]struct{}
	// counts borrowed connections so Close can wait for them
	working wait.Wait
}

// New creates the pool. Connections are opened lazily by Acquire.
func New(cfg Config) (*Pool, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	factory := &connectionFactory{
		addr: cfg.Addr,
		opts: client.Options{
			Password:     cfg.Password,
			DB:           cfg.DB,
			DialTimeout:  cfg.DialTimeout,
			ReadTimeout:  cfg.ReadTimeout,
			WriteTimeout: cfg.WriteTimeout,
		},
	}
	poolCfg := commonspool.NewDefaultPoolConfig()
	poolCfg.MaxTotal = cfg.MaxTotal
	poolCfg.MaxIdle = cfg.MaxIdle
	poolCfg.MinIdle = 0
	poolCfg.BlockWhenExhausted = true
	poolCfg.TestOnBorrow = true
	p := &Pool{
		cfg:      cfg,
		objects:  commonspool.NewObjectPool(context.Background(), factory, poolCfg),
		borrowed: make(map[*client.Client]struct{}),
	}
	logger.Infof("redis pool created: addr=%s maxTotal=%d maxIdle=%d maxWait=%s",
		cfg.Addr, cfg.MaxTotal, cfg.MaxIdle, cfg.MaxWait)
	return p, nil
}

// Acquire borrows a connection. It blocks while the pool is saturated and
// fails with errs.ErrPoolExhausted once MaxWait elapses. If ctx is done
// first, ctx.Err() is returned.
func (p *Pool) Acquire(ctx context.Context) (*client.Client, error) {
	if p.isClosed() {
		return nil, errs.ErrPoolClosed
	}
	waitCtx, cancel := context.WithTimeout(ctx, p.cfg.MaxWait)
	defer cancel()
	obj, err := p.objects.BorrowObject(waitCtx)
	if err != nil {
		return nil, p.borrowError(ctx, waitCtx, err)
	}
	c, ok := obj.(*client.Client)
	if !ok {
		_ = p.objects.InvalidateObject(context.Background(), obj)
		return nil, errors.New("pool: type mismatch")
	}

	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		_ = p.objects.InvalidateObject(context.Background(), c)
		return nil, errs.ErrPoolClosed
	}
	p.borrowed[c] = struct{}{}
	p.working.Add(1)
	p.mu.Unlock()
	return c, nil
}

func (p *Pool) borrowError(ctx, waitCtx context.Context, err error) error {
	var connErr *errs.ConnectionError
	switch {
	case p.isClosed():
		return errs.ErrPoolClosed
	case ctx.Err() != nil:
		return ctx.Err()
	case errors.As(err, &connErr):
		return err
	case waitCtx.Err() != nil:
		return errs.ErrPoolExhausted
	default:
		// a freshly opened connection failed validation
		return &errs.ConnectionError{Addr: p.cfg.Addr, Err: err}
	}
}

// Release gives back a connection obtained from Acquire. cmdErr is the error
// of the command run on it, if any: transport and protocol failures destroy
// the connection instead of recycling it. Releasing a connection twice is a
// logged no-op.
func (p *Pool) Release(c *client.Client, cmdErr error) {
	p.mu.Lock()
	if _, ok := p.borrowed[c]; !ok {
		p.mu.Unlock()
		logger.Warn("release of a connection not borrowed from this pool")
		return
	}
	delete(p.borrowed, c)
	p.mu.Unlock()
	defer p.working.Done()

	ctx := context.Background()
	if errs.ShouldDiscard(cmdErr) || !c.Usable() {
		if err := p.objects.InvalidateObject(ctx, c); err != nil {
			logger.Warn("invalidate connection: " + err.Error())
			_ = c.Close()
		}
		return
	}
	if err := p.objects.ReturnObject(ctx, c); err != nil {
		logger.Warn("return connection: " + err.Error())
		_ = c.Close()
	}
}

// Close shuts the pool down. Idle connections are closed at once; borrowed
// ones are closed when released, or forcibly after CloseTimeout.
func (p *Pool) Close() error {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return nil
	}
	p.closed = true
	p.mu.Unlock()

	p.objects.Close(context.Background())
	var err error
	if p.working.WaitWithTimeout(p.cfg.CloseTimeout) {
		p.mu.Lock()
		logger.Warnf("closing %d connections still in use", len(p.borrowed))
		for c := range p.borrowed {
			err = multierr.Append(err, c.Close())
		}
		p.mu.Unlock()
	}
	logger.Info("redis pool closed: " + p.cfg.Addr)
	return err
}

func (p *Pool) isClosed() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.closed
}

// Stats returns the current number of borrowed and idle connections
func (p *Pool) Stats() Stats {
	return Stats{
		Active: p.objects.GetNumActive(),
		Idle:   p.objects.GetNumIdle(),
	}
}

// Addr returns the server address
func (p *Pool) Addr() string {
	return p.cfg.Addr
}
