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

package decoder

import (
	"bytes"
	"compress/zlib"
	"fmt"
	"io"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4"
	"github.com/ulikunitz/xz/lzma"

	"github.com/brindlewood/osmpbf/internal/core"
	"github.com/brindlewood/osmpbf/internal/pb"
)

// unpack uncompresses blob's payload.
//
// This is not "buried" within readBlob so that decompression of
// independent blobs can be performed concurrently.
func unpack(buf *core.PooledBuffer, blob *pb.Blob) ([]byte, error) {
	var factory func(blob *pb.Blob) (io.Reader, error)

	switch blob.Data.(type) {
	case *pb.Blob_Raw:
		return blob.GetRaw(), nil
	case *pb.Blob_ZlibData:
		factory = func(b *pb.Blob) (io.Reader, error) {
			d := b.Data.(*pb.Blob_ZlibData)
			return zlib.NewReader(bytes.NewReader(d.ZlibData))
		}
	case *pb.Blob_LzmaData:
		factory = func(b *pb.Blob) (io.Reader, error) {
			d := b.Data.(*pb.Blob_LzmaData)
			return lzma.NewReader(bytes.NewReader(d.LzmaData))
		}
	case *pb.Blob_Lz4Data:
		factory = func(b *pb.Blob) (io.Reader, error) {
			d := b.Data.(*pb.Blob_Lz4Data)
			return lz4.NewReader(bytes.NewReader(d.Lz4Data)), nil
		}
	case *pb.Blob_ZstdData:
		factory = func(b *pb.Blob) (io.Reader, error) {
			d := b.Data.(*pb.Blob_ZstdData)
			return zstd.NewReader(bytes.NewReader(d.ZstdData))
		}
	default:
		return nil, fmt.Errorf("%w: %T", core.ErrUnsupportedCompression, blob.Data)
	}

	rawBufferSize := int(blob.GetRawSize()) + bytes.MinRead
	if rawBufferSize > buf.Cap() {
		buf.Grow(rawBufferSize)
	}

	rdr, err := factory(blob)
	if err != nil {
		return nil, fmt.Errorf("%w: opening decompressor: %v", core.ErrDecompress, err)
	}

	if n, err := buf.ReadFrom(rdr); err != nil {
		return nil, fmt.Errorf("%w: %v", core.ErrDecompress, err)
	} else if n != int64(blob.GetRawSize()) {
		return nil, fmt.Errorf("%w: raw blob data size %d but expected %d", core.ErrDecompress, n, blob.GetRawSize())
	}

	return buf.Bytes(), nil
}
