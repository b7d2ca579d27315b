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

package encoder

// BlobCompression selects the codec used to compress each blob's
// payload.
type BlobCompression int

const (
	// RAW stores blob payloads uncompressed.
	RAW BlobCompression = iota

	// ZLIB compresses blob payloads with DEFLATE.
	ZLIB

	// LZMA compresses blob payloads with LZMA.
	LZMA

	// LZ4 compresses blob payloads with LZ4.
	LZ4

	// ZSTD compresses blob payloads with Zstandard.
	ZSTD
)

func (c BlobCompression) String() string {
	switch c {
	case RAW:
		return "RAW"
	case ZLIB:
		return "ZLIB"
	case LZMA:
		return "LZMA"
	case LZ4:
		return "LZ4"
	case ZSTD:
		return "ZSTD"
	default:
		return "UNKNOWN"
	}
}
