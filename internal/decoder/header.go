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
	"fmt"
	"io"
	"time"

	"github.com/brindlewood/osmpbf/internal/core"
	"github.com/brindlewood/osmpbf/internal/pb"
	"github.com/brindlewood/osmpbf/model"
)

// implementedFeatures lists the required_features values this module
// knows how to decode. A HeaderBlock naming anything else in its
// required_features is rejected, per the PBF convention that required
// (unlike optional) features name wire-format changes a reader MUST
// understand to parse the file correctly.
var implementedFeatures = map[string]bool{
	"OsmSchema-V0.6":        true,
	"DenseNodes":            true,
	"HistoricalInformation": true,
}

// LoadHeader reads the first block of reader, which must be an
// "OSMHeader" block, and decodes it into a model.Header.
func LoadHeader(reader io.Reader) (model.Header, error) {
	buf := core.NewPooledBuffer()
	defer buf.Close()

	header, err := readBlobHeader(buf, reader)
	if err != nil {
		return model.Header{}, err
	}

	if header.GetType() != "OSMHeader" {
		return model.Header{}, fmt.Errorf("%w: first block has type %q", core.ErrMissingHeader, header.GetType())
	}

	blb, err := readBlob(buf, reader, header)
	if err != nil {
		return model.Header{}, err
	}

	data, err := unpack(buf, blb)
	if err != nil {
		return model.Header{}, err
	}

	hb := &pb.HeaderBlock{}
	if err := hb.Unmarshal(data); err != nil {
		return model.Header{}, fmt.Errorf("%w: unmarshaling header block: %v", core.ErrMalformed, err)
	}

	for _, feature := range hb.GetRequiredFeatures() {
		if !implementedFeatures[feature] {
			return model.Header{}, fmt.Errorf("%w: %s", core.ErrUnsupportedRequiredFeature, feature)
		}
	}

	return toModelHeader(hb), nil
}

func toModelHeader(hb *pb.HeaderBlock) model.Header {
	h := model.Header{
		RequiredFeatures:                 hb.GetRequiredFeatures(),
		OptionalFeatures:                 hb.GetOptionalFeatures(),
		WritingProgram:                   hb.GetWritingprogram(),
		Source:                           hb.GetSource(),
		OsmosisReplicationSequenceNumber: hb.GetOsmosisReplicationSequenceNumber(),
		OsmosisReplicationBaseURL:        hb.GetOsmosisReplicationBaseUrl(),
	}

	if ts := hb.GetOsmosisReplicationTimestamp(); ts != 0 {
		h.OsmosisReplicationTimestamp = time.Unix(ts, 0).UTC()
	}

	if bbox := hb.GetBbox(); bbox != nil {
		h.BoundingBox = &model.BoundingBox{
			Top:    model.ToDegrees(0, 1, bbox.GetTop()),
			Left:   model.ToDegrees(0, 1, bbox.GetLeft()),
			Bottom: model.ToDegrees(0, 1, bbox.GetBottom()),
			Right:  model.ToDegrees(0, 1, bbox.GetRight()),
		}
	}

	return h
}
