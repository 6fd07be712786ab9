package resp

// Reply is one decoded RESP value. ToBytes re-encodes it in wire format.
type Reply interface {
	ToBytes() []byte
}

// CmdLine is a command name followed by its arguments
type CmdLine = [][]byte
