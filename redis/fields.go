package redis

import "context"

// FieldMapper is implemented by values that can be stored as a hash. Fields
// lists the hash fields explicitly, one entry per stored attribute.
type FieldMapper interface {
	Fields() map[string]string
}

// FieldMapperFunc adapts a plain function to FieldMapper
type FieldMapperFunc func() map[string]string

func (f FieldMapperFunc) Fields() map[string]string {
	return f()
}

// HSetFields stores the fields of v in the hash at key.
func (c *Client) HSetFields(ctx context.Context, key string, v FieldMapper) error {
	return c.HMSet(ctx, key, v.Fields())
}
