package pool

import (
	"context"
	"errors"
	"go-redis-client/lib/logger"
	"go-redis-client/resp/client"

	commonspool "github.com/jolestar/go-commons-pool"
)

// connectionFactory creates, checks and destroys the pooled connections
type connectionFactory struct {
	addr string
	opts client.Options
}

func (f *connectionFactory) MakeObject(ctx context.Context) (*commonspool.PooledObject, error) {
	c, err := client.MakeClient(ctx, f.addr, f.opts)
	if err != nil {
		logger.Warn("open connection failed: " + err.Error())
		return nil, err
	}
	return commonspool.NewPooledObject(c), nil
}

func (f *connectionFactory) DestroyObject(ctx context.Context, object *commonspool.PooledObject) error {
	c, ok := object.Object.(*client.Client)
	if !ok {
		return errors.New("type mismatch")
	}
	return c.Close()
}

// ValidateObject runs on borrow: an idle connection must still answer PING
func (f *connectionFactory) ValidateObject(ctx context.Context, object *commonspool.PooledObject) bool {
	c, ok := object.Object.(*client.Client)
	if !ok || !c.Usable() {
		return false
	}
	if err := c.Ping(); err != nil {
		logger.Warn("stale connection " + c.Addr() + ": " + err.Error())
		return false
	}
	return true
}

func (f *connectionFactory) ActivateObject(ctx context.Context, object *commonspool.PooledObject) error {
	return nil
}

// PassivateObject runs on return; a broken connection is destroyed instead of kept idle
func (f *connectionFactory) PassivateObject(ctx context.Context, object *commonspool.PooledObject) error {
	c, ok := object.Object.(*client.Client)
	if !ok {
		return errors.New("type mismatch")
	}
	if !c.Usable() {
		return errors.New("connection closed")
	}
	return nil
}
