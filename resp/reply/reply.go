package reply

import (
	"bytes"
	"go-redis-client/interface/resp"
	"strconv"
)

var (
	nullBulkBytes      = []byte("$-1\r\n")
	nullMultiBulkBytes = []byte("*-1\r\n")
	CRLF               = "\r\n"
)

// BulkReply stores a binary-safe string. A nil Arg is encoded as a null bulk.
type BulkReply struct {
	Arg []byte
}

func (b *BulkReply) ToBytes() []byte {
	if b.Arg == nil {
		return nullBulkBytes
	}
	return []byte("$" + strconv.Itoa(len(b.Arg)) + CRLF + string(b.Arg) + CRLF)
}

func MakeBulkReply(arg []byte) *BulkReply {
	return &BulkReply{Arg: arg}
}

// NullBulkReply is the reply for an absent key or field
type NullBulkReply struct{}

func (n *NullBulkReply) ToBytes() []byte {
	return nullBulkBytes
}

func MakeNullBulkReply() *NullBulkReply {
	return &NullBulkReply{}
}

// MultiBulkReply is an array of byte strings; nil entries are null bulks.
// Commands are sent to the server in this shape.
type MultiBulkReply struct {
	Args [][]byte
}

func (m *MultiBulkReply) ToBytes() []byte {
	argLen := len(m.Args)
	var buf bytes.Buffer
	buf.WriteString("*" + strconv.Itoa(argLen) + CRLF)
	for _, arg := range m.Args {
		if arg == nil {
			buf.Write(nullBulkBytes)
		} else {
			buf.WriteString("$" + strconv.Itoa(len(arg)) + CRLF + string(arg) + CRLF)
		}
	}
	return buf.Bytes()
}

func MakeMultiBulkReply(args [][]byte) *MultiBulkReply {
	return &MultiBulkReply{
		Args: args,
	}
}

// MultiRawReply is an array holding replies of any kind, e.g. nested arrays
type MultiRawReply struct {
	Replies []resp.Reply
}

func (m *MultiRawReply) ToBytes() []byte {
	var buf bytes.Buffer
	buf.WriteString("*" + strconv.Itoa(len(m.Replies)) + CRLF)
	for _, r := range m.Replies {
		buf.Write(r.ToBytes())
	}
	return buf.Bytes()
}

func MakeMultiRawReply(replies []resp.Reply) *MultiRawReply {
	return &MultiRawReply{
		Replies: replies,
	}
}

// NullMultiBulkReply is a null array
type NullMultiBulkReply struct{}

func (n *NullMultiBulkReply) ToBytes() []byte {
	return nullMultiBulkBytes
}

func MakeNullMultiBulkReply() *NullMultiBulkReply {
	return &NullMultiBulkReply{}
}

type StatusReply struct {
	Status string
}

func (s *StatusReply) ToBytes() []byte {
	return []byte("+" + s.Status + CRLF)
}

func MakeStatusReply(status string) *StatusReply {
	return &StatusReply{
		Status: status,
	}
}

var theOkReply = &StatusReply{Status: "OK"}

func MakeOkReply() *StatusReply {
	return theOkReply
}

// IsOKReply reports whether r is the +OK status
func IsOKReply(r resp.Reply) bool {
	s, ok := r.(*StatusReply)
	return ok && s.Status == "OK"
}

type IntReply struct {
	Code int64
}

func (s *IntReply) ToBytes() []byte {
	return []byte(":" + strconv.FormatInt(s.Code, 10) + CRLF)
}

func MakeIntReply(code int64) *IntReply {
	return &IntReply{
		Code: code,
	}
}

// DoubleReply carries a floating point value (RESP3 ',' type)
type DoubleReply struct {
	Value float64
}

func (d *DoubleReply) ToBytes() []byte {
	return []byte("," + strconv.FormatFloat(d.Value, 'g', -1, 64) + CRLF)
}

func MakeDoubleReply(v float64) *DoubleReply {
	return &DoubleReply{Value: v}
}

type StandardErrReply struct {
	Status string
}

func (s *StandardErrReply) Error() string {
	return s.Status
}

func (s *StandardErrReply) ToBytes() []byte {
	return []byte("-" + s.Status + CRLF)
}

func MakeStandardErrReply(status string) *StandardErrReply {
	return &StandardErrReply{
		Status: status,
	}
}

func IsErrReply(r resp.Reply) bool {
	_, ok := r.(ErrorReply)
	return ok
}
