package wire

import (
	"encoding/json"

	"google.golang.org/grpc/encoding"
)

// CodecName is the gRPC content-subtype the gateway speaks. Clients must
// request it explicitly (see NewConn); the server resolves it from the
// registered codec below.
const CodecName = "json"

// jsonCodec marshals wire messages with encoding/json. The gateway's
// messages are plain structs rather than protoc output, so the default
// proto codec cannot serve them.
type jsonCodec struct{}

func (jsonCodec) Marshal(v any) ([]byte, error) {
	return json.Marshal(v)
}

func (jsonCodec) Unmarshal(data []byte, v any) error {
	return json.Unmarshal(data, v)
}

func (jsonCodec) Name() string {
	return CodecName
}

func init() {
	encoding.RegisterCodec(jsonCodec{})
}
