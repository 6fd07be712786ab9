// Package errs holds the error kinds reported by the pool, the connection and
// the typed facade. Every failed call returns exactly one of them (or the
// caller's own context error when the caller cancelled the wait).
package errs

import (
	"errors"
	"strings"
)

var (
	// ErrPoolExhausted means no connection became available within the
	// configured maximum wait. Callers may retry with backoff.
	ErrPoolExhausted = errors.New("redis pool exhausted: timed out waiting for a connection")
	// ErrPoolClosed is returned by every call made after the pool shut down.
	ErrPoolClosed = errors.New("redis pool closed")
)

// ConnectionError reports a failure to open or authenticate a connection.
type ConnectionError struct {
	Addr string
	Err  error
}

func (e *ConnectionError) Error() string {
	return "redis connect " + e.Addr + ": " + e.Err.Error()
}

func (e *ConnectionError) Unwrap() error {
	return e.Err
}

// TransportError reports an established connection failing mid-command.
// The connection is never reused after it.
type TransportError struct {
	Addr string
	Err  error
}

func (e *TransportError) Error() string {
	return "redis transport " + e.Addr + ": " + e.Err.Error()
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// ProtocolError reports bytes that could not be decoded as a reply.
type ProtocolError struct {
	Msg string
}

func (e *ProtocolError) Error() string {
	return "redis protocol error: " + e.Msg
}

// RemoteCommandError is an error reply sent by the server, e.g. a WRONGTYPE
// rejection. The exchange itself completed, so the connection stays usable.
type RemoteCommandError struct {
	Cmd string
	Msg string
}

func (e *RemoteCommandError) Error() string {
	return "redis " + e.Cmd + ": " + e.Msg
}

// Prefix returns the leading error code of the server message, e.g. "ERR" or "WRONGTYPE".
func (e *RemoteCommandError) Prefix() string {
	if i := strings.IndexByte(e.Msg, ' '); i > 0 {
		return e.Msg[:i]
	}
	return e.Msg
}

// IsWrongType reports whether err is a server rejection of an operation
// against a key holding another data type.
func IsWrongType(err error) bool {
	var re *RemoteCommandError
	return errors.As(err, &re) && re.Prefix() == "WRONGTYPE"
}

// ShouldDiscard reports whether the connection that produced err must be
// destroyed rather than returned to the pool.
func ShouldDiscard(err error) bool {
	if err == nil {
		return false
	}
	var te *TransportError
	var pe *ProtocolError
	return errors.As(err, &te) || errors.As(err, &pe)
}
