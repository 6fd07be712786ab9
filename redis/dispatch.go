package redis

import (
	"context"
	"go-redis-client/interface/resp"
	"go-redis-client/lib/errs"
	"go-redis-client/resp/reply"
	"strconv"
)

func unexpected(cmd string, r resp.Reply) error {
	return &errs.ProtocolError{Msg: "unexpected reply to " + cmd + ": " + strconv.Quote(string(r.ToBytes()))}
}

func asStatus(cmd string, r resp.Reply) (string, error) {
	if s, ok := r.(*reply.StatusReply); ok {
		return s.Status, nil
	}
	return "", unexpected(cmd, r)
}

func asInt(cmd string, r resp.Reply) (int64, error) {
	if i, ok := r.(*reply.IntReply); ok {
		return i.Code, nil
	}
	return 0, unexpected(cmd, r)
}

// asNullableInt decodes an integer reply that may be null, e.g. ZRANK of a missing member
func asNullableInt(cmd string, r resp.Reply) (int64, bool, error) {
	switch v := r.(type) {
	case *reply.IntReply:
		return v.Code, true, nil
	case *reply.NullBulkReply:
		return 0, false, nil
	}
	return 0, false, unexpected(cmd, r)
}

// asBulk returns nil for a null bulk and a non-nil slice otherwise
func asBulk(cmd string, r resp.Reply) ([]byte, error) {
	switch v := r.(type) {
	case *reply.BulkReply:
		if v.Arg == nil {
			return []byte{}, nil
		}
		return v.Arg, nil
	case *reply.NullBulkReply:
		return nil, nil
	}
	return nil, unexpected(cmd, r)
}

// asNullableFloat decodes a score, sent by the server as a bulk string
func asNullableFloat(cmd string, r resp.Reply) (float64, bool, error) {
	switch v := r.(type) {
	case *reply.DoubleReply:
		return v.Value, true, nil
	case *reply.NullBulkReply:
		return 0, false, nil
	case *reply.BulkReply:
		f, err := strconv.ParseFloat(string(v.Arg), 64)
		if err != nil {
			return 0, false, &errs.ProtocolError{Msg: "invalid score in reply to " + cmd + ": " + string(v.Arg)}
		}
		return f, true, nil
	}
	return 0, false, unexpected(cmd, r)
}

// asBulks decodes a flat array, keeping nil for null entries
func asBulks(cmd string, r resp.Reply) ([][]byte, error) {
	switch v := r.(type) {
	case *reply.MultiBulkReply:
		return v.Args, nil
	case *reply.NullMultiBulkReply:
		return [][]byte{}, nil
	}
	return nil, unexpected(cmd, r)
}

// asStrings decodes a flat array; an absent key yields an empty, non-nil slice
func asStrings(cmd string, r resp.Reply) ([]string, error) {
	args, err := asBulks(cmd, r)
	if err != nil {
		return nil, err
	}
	result := make([]string, len(args))
	for i, arg := range args {
		result[i] = string(arg)
	}
	return result, nil
}

// asStringMap decodes a flat field/value array
func asStringMap(cmd string, r resp.Reply) (map[string]string, error) {
	args, err := asBulks(cmd, r)
	if err != nil {
		return nil, err
	}
	if len(args)%2 != 0 {
		return nil, &errs.ProtocolError{Msg: "odd number of elements in reply to " + cmd}
	}
	result := make(map[string]string, len(args)/2)
	for i := 0; i < len(args); i += 2 {
		result[string(args[i])] = string(args[i+1])
	}
	return result, nil
}

// The helpers below run one command and decode its reply.

func (c *Client) statusCmd(ctx context.Context, cmd string, args ...string) (string, error) {
	r, err := c.Execute(ctx, cmd, args...)
	if err != nil {
		return "", err
	}
	return asStatus(cmd, r)
}

func (c *Client) okCmd(ctx context.Context, cmd string, args ...string) error {
	r, err := c.Execute(ctx, cmd, args...)
	if err != nil {
		return err
	}
	if !reply.IsOKReply(r) {
		return unexpected(cmd, r)
	}
	return nil
}

func (c *Client) intCmd(ctx context.Context, cmd string, args ...string) (int64, error) {
	r, err := c.Execute(ctx, cmd, args...)
	if err != nil {
		return 0, err
	}
	return asInt(cmd, r)
}

func (c *Client) boolCmd(ctx context.Context, cmd string, args ...string) (bool, error) {
	n, err := c.intCmd(ctx, cmd, args...)
	return n == 1, err
}

func (c *Client) nullableIntCmd(ctx context.Context, cmd string, args ...string) (int64, bool, error) {
	r, err := c.Execute(ctx, cmd, args...)
	if err != nil {
		return 0, false, err
	}
	return asNullableInt(cmd, r)
}

func (c *Client) bulkCmd(ctx context.Context, cmd string, args ...string) ([]byte, error) {
	r, err := c.Execute(ctx, cmd, args...)
	if err != nil {
		return nil, err
	}
	return asBulk(cmd, r)
}

func (c *Client) bulksCmd(ctx context.Context, cmd string, args ...string) ([][]byte, error) {
	r, err := c.Execute(ctx, cmd, args...)
	if err != nil {
		return nil, err
	}
	return asBulks(cmd, r)
}

func (c *Client) floatCmd(ctx context.Context, cmd string, args ...string) (float64, error) {
	r, err := c.Execute(ctx, cmd, args...)
	if err != nil {
		return 0, err
	}
	f, ok, err := asNullableFloat(cmd, r)
	if err == nil && !ok {
		err = unexpected(cmd, r)
	}
	return f, err
}

func (c *Client) nullableFloatCmd(ctx context.Context, cmd string, args ...string) (float64, bool, error) {
	r, err := c.Execute(ctx, cmd, args...)
	if err != nil {
		return 0, false, err
	}
	return asNullableFloat(cmd, r)
}

func (c *Client) stringsCmd(ctx context.Context, cmd string, args ...string) ([]string, error) {
	r, err := c.Execute(ctx, cmd, args...)
	if err != nil {
		return nil, err
	}
	return asStrings(cmd, r)
}

func (c *Client) stringMapCmd(ctx context.Context, cmd string, args ...string) (map[string]string, error) {
	r, err := c.Execute(ctx, cmd, args...)
	if err != nil {
		return nil, err
	}
	return asStringMap(cmd, r)
}
