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

// BlobHeader precedes every Blob on the wire: a type tag, an optional
// index, and the size of the Blob that follows.
type BlobHeader struct {
	Type      string
	Indexdata []byte
	Datasize  int32
}

func (h *BlobHeader) GetType() string {
	if h == nil {
		return ""
	}
	return h.Type
}

func (h *BlobHeader) GetDatasize() int32 {
	if h == nil {
		return 0
	}
	return h.Datasize
}

func (h *BlobHeader) Marshal() ([]byte, error) {
	var b []byte
	b = protowire.AppendTag(b, 1, protowire.BytesType)
	b = protowire.AppendString(b, h.Type)
	if h.Indexdata != nil {
		b = protowire.AppendTag(b, 2, protowire.BytesType)
		b = protowire.AppendBytes(b, h.Indexdata)
	}
	b = protowire.AppendTag(b, 3, protowire.VarintType)
	b = protowire.AppendVarint(b, uint64(uint32(h.Datasize)))
	return b, nil
}

func (h *BlobHeader) Unmarshal(buf []byte) error {
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
			h.Type = string(v)
			buf = buf[n:]
		case 2:
			v, n := protowire.ConsumeBytes(buf)
			if n < 0 {
				return errTruncated
			}
			h.Indexdata = append([]byte(nil), v...)
			buf = buf[n:]
		case 3:
			v, n := protowire.ConsumeVarint(buf)
			if n < 0 {
				return errTruncated
			}
			h.Datasize = int32(v)
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

// Blob carries the (possibly compressed) payload named by the
// preceding BlobHeader. Exactly one of the Data fields is set.
type Blob struct {
	RawSize int32
	Data    isBlob_Data
}

type isBlob_Data interface {
	isBlob_Data()
}

type Blob_Raw struct{ Raw []byte }
type Blob_ZlibData struct{ ZlibData []byte }
type Blob_LzmaData struct{ LzmaData []byte }
type Blob_Lz4Data struct{ Lz4Data []byte }
type Blob_ZstdData struct{ ZstdData []byte }

func (*Blob_Raw) isBlob_Data()      {}
func (*Blob_ZlibData) isBlob_Data() {}
func (*Blob_LzmaData) isBlob_Data() {}
func (*Blob_Lz4Data) isBlob_Data()  {}
func (*Blob_ZstdData) isBlob_Data() {}

func (b *Blob) GetRawSize() int32 {
	if b == nil {
		return 0
	}
	return b.RawSize
}

func (b *Blob) GetRaw() []byte {
	if v, ok := b.Data.(*Blob_Raw); ok {
		return v.Raw
	}
	return nil
}

func (b *Blob) Marshal() ([]byte, error) {
	var out []byte
	switch d := b.Data.(type) {
	case *Blob_Raw:
		out = protowire.AppendTag(out, 1, protowire.BytesType)
		out = protowire.AppendBytes(out, d.Raw)
	case *Blob_ZlibData:
		out = protowire.AppendTag(out, 3, protowire.BytesType)
		out = protowire.AppendBytes(out, d.ZlibData)
	case *Blob_LzmaData:
		out = protowire.AppendTag(out, 4, protowire.BytesType)
		out = protowire.AppendBytes(out, d.LzmaData)
	case *Blob_Lz4Data:
		out = protowire.AppendTag(out, 6, protowire.BytesType)
		out = protowire.AppendBytes(out, d.Lz4Data)
	case *Blob_ZstdData:
		out = protowire.AppendTag(out, 7, protowire.BytesType)
		out = protowire.AppendBytes(out, d.ZstdData)
	}
	out = protowire.AppendTag(out, 2, protowire.VarintType)
	out = protowire.AppendVarint(out, uint64(uint32(b.RawSize)))
	return out, nil
}

func (b *Blob) Unmarshal(buf []byte) error {
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
			b.Data = &Blob_Raw{Raw: append([]byte(nil), v...)}
			buf = buf[n:]
		case 2:
			v, n := protowire.ConsumeVarint(buf)
			if n < 0 {
				return errTruncated
			}
			b.RawSize = int32(v)
			buf = buf[n:]
		case 3:
			v, n := protowire.ConsumeBytes(buf)
			if n < 0 {
				return errTruncated
			}
			b.Data = &Blob_ZlibData{ZlibData: append([]byte(nil), v...)}
			buf = buf[n:]
		case 4:
			v, n := protowire.ConsumeBytes(buf)
			if n < 0 {
				return errTruncated
			}
			b.Data = &Blob_LzmaData{LzmaData: append([]byte(nil), v...)}
			buf = buf[n:]
		case 6:
			v, n := protowire.ConsumeBytes(buf)
			if n < 0 {
				return errTruncated
			}
			b.Data = &Blob_Lz4Data{Lz4Data: append([]byte(nil), v...)}
			buf = buf[n:]
		case 7:
			v, n := protowire.ConsumeBytes(buf)
			if n < 0 {
				return errTruncated
			}
			b.Data = &Blob_ZstdData{ZstdData: append([]byte(nil), v...)}
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
