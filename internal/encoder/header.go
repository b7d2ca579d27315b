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

import (
	"fmt"
	"io"

	"github.com/brindlewood/osmpbf/internal/pb"
	"github.com/brindlewood/osmpbf/model"
)

func SaveHeader(wrtr io.Writer, hdr model.Header, compression BlobCompression) error {
	bbox := hdr.BoundingBox
	hb := &pb.HeaderBlock{
		Bbox: &pb.HeaderBBox{
			Top:    bbox.Top.Coordinate(),
			Left:   bbox.Left.Coordinate(),
			Bottom: bbox.Bottom.Coordinate(),
			Right:  bbox.Right.Coordinate(),
		},
		RequiredFeatures:                 hdr.RequiredFeatures,
		OptionalFeatures:                 hdr.OptionalFeatures,
		Writingprogram:                   hdr.WritingProgram,
		Source:                           hdr.Source,
		OsmosisReplicationTimestamp:      fromTimestamp(DateGranularityMs, hdr.OsmosisReplicationTimestamp),
		OsmosisReplicationSequenceNumber: hdr.OsmosisReplicationSequenceNumber,
		OsmosisReplicationBaseUrl:        hdr.OsmosisReplicationBaseURL,
	}

	if err := writeBlob(wrtr, hb, compression); err != nil {
		return fmt.Errorf("could not write header: %w", err)
	}

	return nil
}
