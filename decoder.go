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

package pbf

import (
	"context"
	"io"

	"github.com/destel/rill"

	"github.com/brindlewood/osmpbf/internal/decoder"
	"github.com/brindlewood/osmpbf/model"
)

// Decoder reads and decodes OpenStreetMap PBF data from an input
// stream. Blobs are unpacked and parsed concurrently across the
// configured number of workers (DefaultNCpu unless WithNCpus is given),
// while Decode delivers entities back in file order.
type Decoder struct {
	Header model.Header

	entities <-chan rill.Try[model.Entity]
	cancel   context.CancelFunc
}

// NewDecoder returns a new decoder, configured with opts, that reads
// from reader. The decoder consumes the leading OSMHeader block
// immediately, so Header is populated by the time NewDecoder returns.
func NewDecoder(ctx context.Context, reader io.Reader, opts ...DecoderOption) (*Decoder, error) {
	cfg := defaultDecoderConfig

	for _, opt := range opts {
		opt(&cfg)
	}

	header, err := decoder.LoadHeader(reader)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithCancel(ctx)

	blobs := make(chan rill.Try[*decoder.BlobPair])
	go generateDataBlobs(ctx, reader, blobs)

	batches := rill.Batch(blobs, cfg.protoBatchSize, -1)
	decoded := rill.OrderedFlatMap(batches, int(cfg.nCPU), func(batch []*decoder.BlobPair) <-chan rill.Try[[]model.Entity] {
		return decoder.DecodeBatch(batch)
	})

	d := &Decoder{
		Header:   header,
		entities: rill.Unbatch(decoded),
		cancel:   cancel,
	}

	return d, nil
}

// Decode reads the next OSM entity and returns it, or the error
// encountered reading or parsing it. The end of the input stream is
// reported by an io.EOF error.
func (d *Decoder) Decode() (model.Entity, error) {
	e, more := <-d.entities
	if !more {
		return nil, io.EOF
	}

	return e.Value, e.Error
}

// Close cancels the background decoding pipeline.
func (d *Decoder) Close() {
	d.cancel()
}

// generateDataBlobs reads the blobs remaining in reader, after the
// header has already been consumed, and sends them down ch paired
// with their BlobHeader: DecodeBatch classifies each one and rejects
// anything that isn't declared as an OSMData block.
func generateDataBlobs(ctx context.Context, reader io.Reader, ch chan<- rill.Try[*decoder.BlobPair]) {
	defer close(ch)

	for pair, err := range decoder.GenerateBlobReader(ctx, reader) {
		if err != nil {
			if err != io.EOF {
				ch <- rill.Try[*decoder.BlobPair]{Error: err}
			}
			return
		}

		select {
		case <-ctx.Done():
			return
		case ch <- rill.Try[*decoder.BlobPair]{Value: pair}:
		}
	}
}
