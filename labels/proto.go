package labels

import (
	"encoding/json"
	"fmt"

	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"
)

// EncodeProto encodes s as a protobuf google.protobuf.Struct carrying the
// same document that Serialize writes.
func EncodeProto(s *Set) ([]byte, error) {
	doc, err := json.Marshal(toDoc(s))
	if err != nil {
		return nil, fmt.Errorf("encoding label set: %w", err)
	}

	var fields map[string]any
	if err := json.Unmarshal(doc, &fields); err != nil {
		return nil, fmt.Errorf("encoding label set: %w", err)
	}

	st, err := structpb.NewStruct(fields)
	if err != nil {
		return nil, fmt.Errorf("building struct: %w", err)
	}

	data, err := proto.Marshal(st)
	if err != nil {
		return nil, fmt.Errorf("marshaling protobuf: %w", err)
	}
	return data, nil
}

// DecodeProto decodes data produced by EncodeProto. It applies the same
// validation as Load.
func DecodeProto(data []byte) (*Set, error) {
	var st structpb.Struct
	if err := proto.Unmarshal(data, &st); err != nil {
		return nil, fmt.Errorf("%w: parsing protobuf: %w", ErrInputLoad, err)
	}

	doc, err := json.Marshal(st.AsMap())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedInput, err)
	}
	return parse(doc)
}
