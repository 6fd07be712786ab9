package parser

import (
	"bufio"
	"go-redis-client/interface/resp"
	"go-redis-client/lib/errs"
	"go-redis-client/lib/logger"
	"go-redis-client/resp/reply"
	"io"
	"runtime/debug"
	"strconv"
)

// maxBulkLen mirrors the server's proto-max-bulk-len default
const maxBulkLen = 512 << 20

const (
	// longest array header accepted
	maxArrayLen = 1<<31 - 1
	// element slots allocated up front, the rest grow as elements arrive
	arrayPrealloc = 1024
)

// Payload is one parsed reply or the error that ended the stream
type Payload struct {
	Data resp.Reply
	Err  error
}

// ParseStream decodes replies from reader on its own goroutine until the
// reader fails. The last payload carries the error, then the channel closes.
func ParseStream(reader io.Reader) <-chan *Payload {
	ch := make(chan *Payload)
	go parse0(reader, ch)
	return ch
}

func parse0(rawReader io.Reader, ch chan<- *Payload) {
	defer func() {
		if err := recover(); err != nil {
			logger.Error(err, string(debug.Stack()))
		}
	}()
	defer close(ch)
	reader := bufio.NewReader(rawReader)
	for {
		r, err := ReadReply(reader)
		if err != nil {
			ch <- &Payload{Err: err}
			return
		}
		ch <- &Payload{Data: r}
	}
}

// ReadReply reads exactly one reply from reader. Malformed input yields an
// *errs.ProtocolError; failures of the reader itself are returned as is.
func ReadReply(reader *bufio.Reader) (resp.Reply, error) {
	line, err := readLine(reader)
	if err != nil {
		return nil, err
	}
	switch line[0] {
	case '+':
		return reply.MakeStatusReply(string(line[1:])), nil
	case '-':
		return reply.MakeStandardErrReply(string(line[1:])), nil
	case ':':
		value, err := strconv.ParseInt(string(line[1:]), 10, 64)
		if err != nil {
			return nil, protocolError("illegal number " + string(line[1:]))
		}
		return reply.MakeIntReply(value), nil
	case ',':
		value, err := strconv.ParseFloat(string(line[1:]), 64)
		if err != nil {
			return nil, protocolError("illegal double " + string(line[1:]))
		}
		return reply.MakeDoubleReply(value), nil
	case '$':
		return parseBulk(line, reader)
	case '*':
		return parseArray(line, reader)
	default:
		return nil, protocolError("unexpected reply type " + strconv.Quote(string(line)))
	}
}

// readLine returns the next line without its CRLF terminator
func readLine(reader *bufio.Reader) ([]byte, error) {
	line, err := reader.ReadBytes('\n')
	if err != nil {
		return nil, err
	}
	length := len(line)
	if length <= 2 || line[length-2] != '\r' {
		return nil, protocolError("illegal line " + strconv.Quote(string(line)))
	}
	return line[:length-2], nil
}

func parseBulk(header []byte, reader *bufio.Reader) (resp.Reply, error) {
	strLen, err := strconv.ParseInt(string(header[1:]), 10, 64)
	if err != nil || strLen < -1 || strLen > maxBulkLen {
		return nil, protocolError("illegal bulk string header: " + string(header))
	}
	if strLen == -1 {
		return reply.MakeNullBulkReply(), nil
	}
	body := make([]byte, strLen+2)
	if _, err = io.ReadFull(reader, body); err != nil {
		return nil, err
	}
	if body[strLen] != '\r' || body[strLen+1] != '\n' {
		return nil, protocolError("bulk string not terminated by CRLF")
	}
	return reply.MakeBulkReply(body[:strLen]), nil
}

// parseArray returns a MultiBulkReply when every element is a (possibly
// null) bulk string, a MultiRawReply otherwise.
func parseArray(header []byte, reader *bufio.Reader) (resp.Reply, error) {
	arrLen, err := strconv.Atoi(string(header[1:]))
	if err != nil || arrLen < -1 || arrLen > maxArrayLen {
		return nil, protocolError("illegal array header: " + string(header))
	}
	if arrLen == -1 {
		return reply.MakeNullMultiBulkReply(), nil
	}
	size := arrLen
	if size > arrayPrealloc {
		size = arrayPrealloc
	}
	replies := make([]resp.Reply, 0, size)
	flat := true
	for i := 0; i < arrLen; i++ {
		r, err := ReadReply(reader)
		if err != nil {
			return nil, err
		}
		switch r.(type) {
		case *reply.BulkReply, *reply.NullBulkReply:
		default:
			flat = false
		}
		replies = append(replies, r)
	}
	if !flat {
		return reply.MakeMultiRawReply(replies), nil
	}
	args := make([][]byte, len(replies))
	for i, r := range replies {
		if bulk, ok := r.(*reply.BulkReply); ok {
			args[i] = bulk.Arg
		}
	}
	return reply.MakeMultiBulkReply(args), nil
}

func protocolError(msg string) error {
	return &errs.ProtocolError{Msg: msg}
}
