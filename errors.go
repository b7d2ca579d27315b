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

package pbf

import "github.com/brindlewood/osmpbf/internal/core"

// Errors returned by Decoder and Encoder. Use errors.Is to test for
// these; they are the stable, documented failure modes of this
// package, as distinct from wrapped I/O errors bubbling up from the
// underlying reader or writer.
var (
	// ErrMalformed is returned when blob framing (length prefixes, the
	// BlobHeader/Blob envelopes themselves) cannot be parsed, or
	// exceeds the 64 KiB header / 32 MiB blob size limits.
	ErrMalformed = core.ErrMalformed

	// ErrDecompress is returned when a blob's compressed payload fails
	// to decompress, or decompresses to a size other than its declared
	// raw size.
	ErrDecompress = core.ErrDecompress

	// ErrUnsupportedCompression is returned when a Blob names a
	// compression codec this module does not implement.
	ErrUnsupportedCompression = core.ErrUnsupportedCompression

	// ErrUnknownBlockType is returned when a BlobHeader names a type
	// other than "OSMHeader" or "OSMData".
	ErrUnknownBlockType = core.ErrUnknownBlockType

	// ErrMissingHeader is returned when the first block of a stream is
	// not an "OSMHeader" block.
	ErrMissingHeader = core.ErrMissingHeader

	// ErrUnsupportedRequiredFeature is returned when the header names
	// a required_features entry this module does not implement.
	ErrUnsupportedRequiredFeature = core.ErrUnsupportedRequiredFeature

	// ErrUnsupportedChangesetGroup is returned when a data block
	// carries a changesets group.
	ErrUnsupportedChangesetGroup = core.ErrUnsupportedChangesetGroup

	// ErrMalformedDenseTags is returned when a DenseNodes key/value
	// index run is truncated or missing its terminating zero.
	ErrMalformedDenseTags = core.ErrMalformedDenseTags

	// ErrUnknownMemberType is returned when a relation member's type
	// is not NODE, WAY, or RELATION.
	ErrUnknownMemberType = core.ErrUnknownMemberType

	// ErrStringTableIndex is returned when a key/value/role index
	// references a slot outside the block's string table.
	ErrStringTableIndex = core.ErrStringTableIndex

	// ErrHeaderAlreadyWritten is returned by Encoder.WriteHeader when
	// called more than once.
	ErrHeaderAlreadyWritten = core.ErrHeaderAlreadyWritten

	// ErrHeaderRequiredFirst is returned by Encoder.Encode/EncodeBatch
	// when called before WriteHeader.
	ErrHeaderRequiredFirst = core.ErrHeaderRequiredFirst

	// ErrCreateTempFile is returned by NewEncoder when its staging
	// file cannot be created.
	ErrCreateTempFile = core.ErrCreateTempFile
)
