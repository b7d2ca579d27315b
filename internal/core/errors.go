// Copyright 2017-24 the original author or authors.
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

package core

import "errors"

// Sentinel errors shared between the root pbf package and its
// internal decoder/encoder packages. They live here, in a leaf
// package with no other internal dependencies, so both internal/decoder
// and internal/encoder can return them without creating an import cycle
// with the root package that re-exports them.
var (
	// ErrMalformed is returned when the blob framing itself (length
	// prefixes, BlobHeader/Blob protobuf envelopes) cannot be parsed,
	// or exceeds the 64 KiB header / 32 MiB blob size limits.
	ErrMalformed = errors.New("pbf: malformed blob framing")

	// ErrDecompress is returned when a blob's compressed payload fails
	// to decompress, or decompresses to a size other than RawSize.
	ErrDecompress = errors.New("pbf: decompression failed")

	// ErrUnsupportedCompression is returned when a Blob names a
	// compression codec this module does not implement.
	ErrUnsupportedCompression = errors.New("pbf: unsupported compression codec")

	// ErrUnknownBlockType is returned when a BlobHeader names a type
	// other than "OSMHeader" or "OSMData".
	ErrUnknownBlockType = errors.New("pbf: unknown block type")

	// ErrMissingHeader is returned when the first block of a stream is
	// not an "OSMHeader" block.
	ErrMissingHeader = errors.New("pbf: missing OSMHeader block")

	// ErrUnsupportedRequiredFeature is returned when a HeaderBlock
	// names a required_features entry this module does not implement.
	ErrUnsupportedRequiredFeature = errors.New("pbf: unsupported required feature")

	// ErrUnsupportedChangesetGroup is returned when a PrimitiveGroup
	// carries a changesets group; no production extract emits one and
	// this module does not attempt to decode it.
	ErrUnsupportedChangesetGroup = errors.New("pbf: unsupported changesets group")

	// ErrMalformedDenseTags is returned when a DenseNodes.KeysVals
	// array is truncated: a key index with no matching value index, or
	// a missing terminating zero.
	ErrMalformedDenseTags = errors.New("pbf: malformed dense tags")

	// ErrUnknownMemberType is returned when a Relation.Types entry is
	// not NODE, WAY, or RELATION.
	ErrUnknownMemberType = errors.New("pbf: unknown relation member type")

	// ErrStringTableIndex is returned when a key/value/role index
	// references a slot outside the block's string table.
	ErrStringTableIndex = errors.New("pbf: string table index out of range")

	// ErrHeaderAlreadyWritten is returned by WriteHeader when it is
	// called more than once on the same Encoder.
	ErrHeaderAlreadyWritten = errors.New("pbf: header already written")

	// ErrHeaderRequiredFirst is returned by Encode/EncodeBatch when
	// called before WriteHeader.
	ErrHeaderRequiredFirst = errors.New("pbf: header must be written before encoding elements")

	// ErrCreateTempFile is returned by NewEncoder when its staging
	// file (used to defer the header write until the bounding box is
	// known) cannot be created.
	ErrCreateTempFile = errors.New("pbf: could not create temp store")
)
