// Copyright 2017-25 the original author or authors.
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
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/brindlewood/osmpbf/internal/core"
	"github.com/brindlewood/osmpbf/internal/pb"
)

const (
	// maxBlobHeaderSize bounds a BlobHeader at 64 KiB.
	maxBlobHeaderSize = 64 * 1024

	// maxBlobSize bounds a Blob's compressed payload at 32 MiB.
	maxBlobSize = 32 * 1024 * 1024
)

// BlobPair is a BlobHeader paired with the Blob it precedes.
type BlobPair struct {
	Header *pb.BlobHeader
	Blob   *pb.Blob
}

// GenerateBlobReader creates an iterator that returns the raw
// (BlobHeader, Blob) pairs read off of reader, in file order, until
// EOF, ctx is cancelled, or the first read error.
func GenerateBlobReader(ctx context.Context, reader io.Reader) func(yield func(*BlobPair, error) bool) {
	return func(yield func(*BlobPair, error) bool) {
		buffer := core.NewPooledBuffer()
		defer buffer.Close()

		for {
			select {
			case <-ctx.Done():
				return
			default:
			}

			header, err := readBlobHeader(buffer, reader)
			if err != nil {
				if !errors.Is(err, io.EOF) {
					slog.Error("unable to read blob header", "error", err)
					yield(nil, err)
				}
				return
			}

			buffer.Reset()

			blb, err := readBlob(buffer, reader, header)
			if err != nil {
				slog.Error("unable to read blob", "error", err)
				yield(nil, err)
				return
			}

			if !yield(&BlobPair{Header: header, Blob: blb}, nil) {
				return
			}

			buffer.Reset()
		}
	}
}

// readBlobHeader unmarshals a BlobHeader length-prefixed by a 4-byte
// big-endian size.
func readBlobHeader(buf *core.PooledBuffer, rdr io.Reader) (*pb.BlobHeader, error) {
	var size uint32
	if err := binary.Read(rdr, binary.BigEndian, &size); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, io.EOF
		}
		return nil, fmt.Errorf("error reading blob header size: %w", err)
	}

	if size > maxBlobHeaderSize {
		return nil, fmt.Errorf("%w: blob header size %d exceeds %d bytes", core.ErrMalformed, size, maxBlobHeaderSize)
	}

	if n, err := io.CopyN(buf, rdr, int64(size)); err != nil {
		return nil, fmt.Errorf("%w: reading blob header: %v", core.ErrMalformed, err)
	} else if n != int64(size) {
		return nil, fmt.Errorf("%w: blob header truncated: expected %d bytes, got %d", core.ErrMalformed, size, n)
	}

	header := &pb.BlobHeader{}
	if err := header.Unmarshal(buf.Bytes()); err != nil {
		return nil, fmt.Errorf("%w: unmarshaling blob header: %v", core.ErrMalformed, err)
	}

	if header.GetDatasize() > maxBlobSize {
		return nil, fmt.Errorf("%w: blob size %d exceeds %d bytes", core.ErrMalformed, header.GetDatasize(), maxBlobSize)
	}

	return header, nil
}

// readBlob unmarshals the Blob named by header.
func readBlob(buf *core.PooledBuffer, rdr io.Reader, header *pb.BlobHeader) (*pb.Blob, error) {
	buf.Reset()

	size := int64(header.GetDatasize())
	if n, err := io.CopyN(buf, rdr, size); err != nil {
		return nil, fmt.Errorf("%w: reading blob: %v", core.ErrMalformed, err)
	} else if n != size {
		return nil, fmt.Errorf("%w: blob truncated: expected %d bytes, got %d", core.ErrMalformed, size, n)
	}

	blb := &pb.Blob{}
	if err := blb.Unmarshal(buf.Bytes()); err != nil {
		return nil, fmt.Errorf("%w: unmarshaling blob: %v", core.ErrMalformed, err)
	}

	return blb, nil
}
