// Copyright 2025 the original author or authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package pb implements the OSMPBF wire messages by hand, using
// protowire directly rather than generated code. There is no protoc
// toolchain available in this tree, so every message below encodes and
// decodes itself against the raw protobuf wire format described in
// fileformat.proto and osmformat.proto.
package pb

import (
	"fmt"

	"google.golang.org/protobuf/encoding/protowire"
)

// errTruncated is returned when a varint, tag, or length-delimited
// value runs past the end of the buffer.
var errTruncated = fmt.Errorf("pb: truncated message")

func appendPackedVarint(b []byte, num protowire.Number, vs []uint64) []byte {
	if len(vs) == 0 {
		return b
	}
	var inner []byte
	for _, v := range vs {
		inner = protowire.AppendVarint(inner, v)
	}
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendBytes(b, inner)
}

func appendPackedSVarint(b []byte, num protowire.Number, vs []int64) []byte {
	if len(vs) == 0 {
		return b
	}
	var inner []byte
	for _, v := range vs {
		inner = protowire.AppendVarint(inner, protowire.EncodeZigZag(v))
	}
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendBytes(b, inner)
}

func appendPackedSVarint32(b []byte, num protowire.Number, vs []int32) []byte {
	if len(vs) == 0 {
		return b
	}
	var inner []byte
	for _, v := range vs {
		inner = protowire.AppendVarint(inner, protowire.EncodeZigZag(int64(v)))
	}
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendBytes(b, inner)
}

func appendPackedBool(b []byte, num protowire.Number, vs []bool) []byte {
	if len(vs) == 0 {
		return b
	}
	var inner []byte
	for _, v := range vs {
		n := uint64(0)
		if v {
			n = 1
		}
		inner = protowire.AppendVarint(inner, n)
	}
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendBytes(b, inner)
}

// consumePackedVarint decodes the payload of a packed (length-delimited)
// repeated varint field. Repeated fields sent unpacked, as individual
// varint fields, are not handled.
func consumePackedVarint(v []byte) ([]uint64, error) {
	var out []uint64
	for len(v) > 0 {
		u, n := protowire.ConsumeVarint(v)
		if n < 0 {
			return nil, errTruncated
		}
		out = append(out, u)
		v = v[n:]
	}
	return out, nil
}

func consumePackedSVarint(v []byte) ([]int64, error) {
	raw, err := consumePackedVarint(v)
	if err != nil {
		return nil, err
	}
	out := make([]int64, len(raw))
	for i, u := range raw {
		out[i] = protowire.DecodeZigZag(u)
	}
	return out, nil
}

func consumePackedSVarint32(v []byte) ([]int32, error) {
	raw, err := consumePackedVarint(v)
	if err != nil {
		return nil, err
	}
	out := make([]int32, len(raw))
	for i, u := range raw {
		out[i] = int32(protowire.DecodeZigZag(u))
	}
	return out, nil
}

func consumePackedUint32(v []byte) ([]uint32, error) {
	raw, err := consumePackedVarint(v)
	if err != nil {
		return nil, err
	}
	out := make([]uint32, len(raw))
	for i, u := range raw {
		out[i] = uint32(u)
	}
	return out, nil
}

func consumePackedInt32(v []byte) ([]int32, error) {
	raw, err := consumePackedVarint(v)
	if err != nil {
		return nil, err
	}
	out := make([]int32, len(raw))
	for i, u := range raw {
		out[i] = int32(u)
	}
	return out, nil
}

func consumePackedBool(v []byte) ([]bool, error) {
	raw, err := consumePackedVarint(v)
	if err != nil {
		return nil, err
	}
	out := make([]bool, len(raw))
	for i, u := range raw {
		out[i] = u != 0
	}
	return out, nil
}
