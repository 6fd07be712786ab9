package reply

// ErrorReply is a server-side error reply
type ErrorReply interface {
	Error() string
	ToBytes() []byte
}

func getFormatStr(str string) string {
	return "-" + str + CRLF
}

type UnknownCommandErrReply struct {
	Cmd string
}

func (u *UnknownCommandErrReply) Error() string {
	return "ERR unknown command '" + u.Cmd + "'"
}

func (u *UnknownCommandErrReply) ToBytes() []byte {
	return []byte(getFormatStr(u.Error()))
}

func MakeUnknownCommandErrReply(cmd string) *UnknownCommandErrReply {
	return &UnknownCommandErrReply{Cmd: cmd}
}

type ArgNumErrReply struct {
	Cmd string
}

var argNumStr = "ERR wrong number of arguments for "

func (a *ArgNumErrReply) Error() string {
	return argNumStr + "'" + a.Cmd + "' command"
}

func (a *ArgNumErrReply) ToBytes() []byte {
	return []byte(getFormatStr(a.Error()))
}

func MakeArgNumErrReply(cmd string) *ArgNumErrReply {
	return &ArgNumErrReply{
		Cmd: cmd,
	}
}

type WrongTypeErrReply struct {
}

var wrongTypeErr = "WRONGTYPE Operation against a key holding the wrong kind of value"
var wrongTypeErrBytes = []byte(getFormatStr(wrongTypeErr))
var theWrongTypeErrReply = &WrongTypeErrReply{}

func MakeWrongTypeErrReply() *WrongTypeErrReply {
	return theWrongTypeErrReply
}

func (r *WrongTypeErrReply) ToBytes() []byte {
	return wrongTypeErrBytes
}

func (r *WrongTypeErrReply) Error() string {
	return wrongTypeErr
}
