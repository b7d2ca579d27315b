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
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/brindlewood/osmpbf/internal/pb"
	"github.com/brindlewood/osmpbf/model"
)

func TestToModelHeader_NoBoundingBox(t *testing.T) {
	hb := &pb.HeaderBlock{
		RequiredFeatures: []string{"OsmSchema-V0.6", "DenseNodes"},
		Writingprogram:   "osmium/1.14.0",
	}

	h := toModelHeader(hb)

	assert.Nil(t, h.BoundingBox)
}

func TestToModelHeader_WithBoundingBox(t *testing.T) {
	hb := &pb.HeaderBlock{
		Bbox: &pb.HeaderBBox{Top: 1, Left: 2, Bottom: 3, Right: 4},
	}

	h := toModelHeader(hb)

	want := &model.BoundingBox{
		Top:    model.ToDegrees(0, 1, 1),
		Left:   model.ToDegrees(0, 1, 2),
		Bottom: model.ToDegrees(0, 1, 3),
		Right:  model.ToDegrees(0, 1, 4),
	}
	assert.Equal(t, want, h.BoundingBox)
}
