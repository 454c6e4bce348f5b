package grpc

import (
	"encoding/json"

	"google.golang.org/grpc/encoding"
)

// The service has no generated protobuf types; requests and responses are
// plain structs carried over gRPC with this codec. Clients must select it
// with grpc.CallContentSubtype("json").

func init() {
	encoding.RegisterCodec(jsonCodec{})
}

type jsonCodec struct{}

func (jsonCodec) Marshal(v interface{}) ([]byte, error) {
	return json.Marshal(v)
}

func (jsonCodec) Unmarshal(data []byte, v interface{}) error {
	return json.Unmarshal(data, v)
}

func (jsonCodec) Name() string {
	return "json"
}
