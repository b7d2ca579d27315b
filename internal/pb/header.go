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

package pb

import (
	"google.golang.org/protobuf/encoding/protowire"
)

type HeaderBBox struct {
	Left, Right, Top, Bottom int64
}

func (h *HeaderBBox) GetLeft() int64 {
	if h == nil {
		return 0
	}
	return h.Left
}

func (h *HeaderBBox) GetRight() int64 {
	if h == nil {
		return 0
	}
	return h.Right
}

func (h *HeaderBBox) GetTop() int64 {
	if h == nil {
		return 0
	}
	return h.Top
}

func (h *HeaderBBox) GetBottom() int64 {
	if h == nil {
		return 0
	}
	return h.Bottom
}

func (h *HeaderBBox) marshalInto(b []byte) []byte {
	b = protowire.AppendTag(b, 1, protowire.VarintType)
	b = protowire.AppendVarint(b, protowire.EncodeZigZag(h.Left))
	b = protowire.AppendTag(b, 2, protowire.VarintType)
	b = protowire.AppendVarint(b, protowire.EncodeZigZag(h.Right))
	b = protowire.AppendTag(b, 3, protowire.VarintType)
	b = protowire.AppendVarint(b, protowire.EncodeZigZag(h.Top))
	b = protowire.AppendTag(b, 4, protowire.VarintType)
	b = protowire.AppendVarint(b, protowire.EncodeZigZag(h.Bottom))
	return b
}

func (h *HeaderBBox) unmarshal(buf []byte) error {
	for len(buf) > 0 {
		num, typ, n := protowire.ConsumeTag(buf)
		if n < 0 {
			return errTruncated
		}
		buf = buf[n:]
		switch num {
		case 1, 2, 3, 4:
			v, n := protowire.ConsumeVarint(buf)
			if n < 0 {
				return errTruncated
			}
			sv := protowire.DecodeZigZag(v)
			switch num {
			case 1:
				h.Left = sv
			case 2:
				h.Right = sv
			case 3:
				h.Top = sv
			case 4:
				h.Bottom = sv
			}
			buf = buf[n:]
		default:
			n := protowire.ConsumeFieldValue(num, typ, buf)
			if n < 0 {
				return errTruncated
			}
			buf = buf[n:]
		}
	}
	return nil
}

// HeaderBlock is the first block of a PBF file: the bounding box and
// file-level metadata.
type HeaderBlock struct {
	Bbox                             *HeaderBBox
	RequiredFeatures                 []string
	OptionalFeatures                 []string
	Writingprogram                   string
	Source                           string
	OsmosisReplicationTimestamp      int64
	OsmosisReplicationSequenceNumber int64
	OsmosisReplicationBaseUrl        string
}

func (h *HeaderBlock) GetBbox() *HeaderBBox {
	if h == nil {
		return nil
	}
	return h.Bbox
}

func (h *HeaderBlock) GetRequiredFeatures() []string {
	if h == nil {
		return nil
	}
	return h.RequiredFeatures
}

func (h *HeaderBlock) GetOptionalFeatures() []string {
	if h == nil {
		return nil
	}
	return h.OptionalFeatures
}

func (h *HeaderBlock) GetWritingprogram() string {
	if h == nil {
		return ""
	}
	return h.Writingprogram
}

func (h *HeaderBlock) GetSource() string {
	if h == nil {
		return ""
	}
	return h.Source
}

func (h *HeaderBlock) GetOsmosisReplicationTimestamp() int64 {
	if h == nil {
		return 0
	}
	return h.OsmosisReplicationTimestamp
}

func (h *HeaderBlock) GetOsmosisReplicationSequenceNumber() int64 {
	if h == nil {
		return 0
	}
	return h.OsmosisReplicationSequenceNumber
}

func (h *HeaderBlock) GetOsmosisReplicationBaseUrl() string {
	if h == nil {
		return ""
	}
	return h.OsmosisReplicationBaseUrl
}

func (h *HeaderBlock) Marshal() ([]byte, error) {
	var b []byte
	if h.Bbox != nil {
		var inner []byte
		inner = h.Bbox.marshalInto(inner)
		b = protowire.AppendTag(b, 1, protowire.BytesType)
		b = protowire.AppendBytes(b, inner)
	}
	for _, f := range h.RequiredFeatures {
		b = protowire.AppendTag(b, 4, protowire.BytesType)
		b = protowire.AppendString(b, f)
	}
	for _, f := range h.OptionalFeatures {
		b = protowire.AppendTag(b, 5, protowire.BytesType)
		b = protowire.AppendString(b, f)
	}
	if h.Writingprogram != "" {
		b = protowire.AppendTag(b, 16, protowire.BytesType)
		b = protowire.AppendString(b, h.Writingprogram)
	}
	if h.Source != "" {
		b = protowire.AppendTag(b, 17, protowire.BytesType)
		b = protowire.AppendString(b, h.Source)
	}
	if h.OsmosisReplicationTimestamp != 0 {
		b = protowire.AppendTag(b, 32, protowire.VarintType)
		b = protowire.AppendVarint(b, uint64(h.OsmosisReplicationTimestamp))
	}
	if h.OsmosisReplicationSequenceNumber != 0 {
		b = protowire.AppendTag(b, 33, protowire.VarintType)
		b = protowire.AppendVarint(b, uint64(h.OsmosisReplicationSequenceNumber))
	}
	if h.OsmosisReplicationBaseUrl != "" {
		b = protowire.AppendTag(b, 34, protowire.BytesType)
		b = protowire.AppendString(b, h.OsmosisReplicationBaseUrl)
	}
	return b, nil
}

func (h *HeaderBlock) Unmarshal(buf []byte) error {
	for len(buf) > 0 {
		num, typ, n := protowire.ConsumeTag(buf)
		if n < 0 {
			return errTruncated
		}
		buf = buf[n:]
		switch num {
		case 1:
			v, n := protowire.ConsumeBytes(buf)
			if n < 0 {
				return errTruncated
			}
			bbox := &HeaderBBox{}
			if err := bbox.unmarshal(v); err != nil {
				return err
			}
			h.Bbox = bbox
			buf = buf[n:]
		case 4:
			v, n := protowire.ConsumeBytes(buf)
			if n < 0 {
				return errTruncated
			}
			h.RequiredFeatures = append(h.RequiredFeatures, string(v))
			buf = buf[n:]
		case 5:
			v, n := protowire.ConsumeBytes(buf)
			if n < 0 {
				return errTruncated
			}
			h.OptionalFeatures = append(h.OptionalFeatures, string(v))
			buf = buf[n:]
		case 16:
			v, n := protowire.ConsumeBytes(buf)
			if n < 0 {
				return errTruncated
			}
			h.Writingprogram = string(v)
			buf = buf[n:]
		case 17:
			v, n := protowire.ConsumeBytes(buf)
			if n < 0 {
				return errTruncated
			}
			h.Source = string(v)
			buf = buf[n:]
		case 32:
			v, n := protowire.ConsumeVarint(buf)
			if n < 0 {
				return errTruncated
			}
			h.OsmosisReplicationTimestamp = int64(v)
			buf = buf[n:]
		case 33:
			v, n := protowire.ConsumeVarint(buf)
			if n < 0 {
				return errTruncated
			}
			h.OsmosisReplicationSequenceNumber = int64(v)
			buf = buf[n:]
		case 34:
			v, n := protowire.ConsumeBytes(buf)
			if n < 0 {
				return errTruncated
			}
			h.OsmosisReplicationBaseUrl = string(v)
			buf = buf[n:]
		default:
			n := protowire.ConsumeFieldValue(num, typ, buf)
			if n < 0 {
				return errTruncated
			}
			buf = buf[n:]
		}
	}
	return nil
}
