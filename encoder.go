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
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"
	"sync/atomic"

	"github.com/destel/rill"

	"github.com/brindlewood/osmpbf/internal/core"
	"github.com/brindlewood/osmpbf/internal/encoder"
	"github.com/brindlewood/osmpbf/model"
)

const (
	numConsumers = 2

	singleCPU = 5
)

// Encoder writes OpenStreetMap PBF data to an output stream. Entities
// are streamed in through the Encoder's own pipeline rather than
// written directly, so that blob compression and block packing can
// run concurrently with the caller feeding in new entities.
type Encoder struct {
	Header   model.Header
	Entities chan<- []model.Entity

	cfg  *encoderOptions
	wrtr io.Writer

	headerWritten atomic.Bool

	err   error
	close sync.Once

	completed sync.WaitGroup
	closed    sync.WaitGroup
}

// NewEncoder returns a new encoder, configured with options, that writes to
// wrtr. WriteHeader must be called once before Encode or EncodeBatch.
func NewEncoder(wrtr io.Writer, opts ...EncoderOption) (*Encoder, error) {
	cfg := defaultEncoderConfig

	for _, opt := range opts {
		opt(&cfg)
	}

	if err := initializeTempStore(&cfg); err != nil {
		return nil, err
	}

	e := &Encoder{
		Header: model.Header{
			BoundingBox:                      model.InitialBoundingBox(),
			RequiredFeatures:                 cfg.requiredFeatures,
			OptionalFeatures:                 cfg.optionalFeatures,
			WritingProgram:                   cfg.writingProgram,
			Source:                           cfg.source,
			OsmosisReplicationTimestamp:      cfg.osmosisReplicationTimestamp,
			OsmosisReplicationSequenceNumber: cfg.osmosisReplicationSequenceNumber,
			OsmosisReplicationBaseURL:        cfg.osmosisReplicationBaseURL,
		},

		cfg:  &cfg,
		wrtr: wrtr,
	}

	entities := make(chan []model.Entity)

	e.Entities = entities

	coalesced := encoder.Coalesce(entities, encoder.EntityLimit)
	inspected, bboxes := encoder.ExtractBoundingBoxes(coalesced)
	encoded := rill.OrderedMap(inspected, singleCPU, encoder.EncodeBatch)
	packed := rill.OrderedMap(encoded, singleCPU, encoder.GenerateBatchPacker(cfg.compression))
	statuses := encoder.SavePacked(cfg.wrtr, packed)

	// writeHeaderAndBody() will wait for these two consumers to complete
	e.completed.Add(numConsumers)
	go e.consumeBBoxes(bboxes)
	go e.consumeStatuses(statuses)

	// Close() will wait for the header and body to be written
	e.closed.Add(1)
	go e.writeHeaderAndBody()

	return e, nil
}

// WriteHeader commits the encoder to writing, gating Encode and
// EncodeBatch until it has been called. The header's actual bytes are
// written lazily at Close, once the bounding box of every written
// entity is known, but the call-ordering contract is enforced here.
func (e *Encoder) WriteHeader() error {
	if !e.headerWritten.CompareAndSwap(false, true) {
		return core.ErrHeaderAlreadyWritten
	}

	return nil
}

// Encode writes an entity into a PBF Blob.
func (e *Encoder) Encode(entity model.Entity) error {
	return e.EncodeBatch([]model.Entity{entity})
}

// EncodeBatch writes an array of entities into a PBF Blob.
func (e *Encoder) EncodeBatch(entities []model.Entity) error {
	if !e.headerWritten.Load() {
		return core.ErrHeaderRequiredFirst
	}

	e.Entities <- entities

	return nil
}

// Close flushes the background encoding pipeline, writes the header
// and the accumulated body to the underlying writer, and returns the
// first error encountered by either, if any.
func (e *Encoder) Close() error {
	e.doClose(io.EOF)
	e.closed.Wait()

	if e.err != nil && e.err != io.EOF {
		return e.err
	}

	return nil
}

func (e *Encoder) doClose(err error) {
	e.close.Do(func() {
		e.err = err
		close(e.Entities)
	})
}

func (e *Encoder) consumeBBoxes(bboxes <-chan rill.Try[*model.BoundingBox]) {
	defer e.completed.Done()

	for bbox := range bboxes {
		e.Header.BoundingBox.ExpandWithBoundingBox(bbox.Value)
	}
}

func (e *Encoder) consumeStatuses(statuses <-chan rill.Try[struct{}]) {
	defer e.completed.Done()

	for status := range statuses {
		if status.Error != nil {
			slog.Error("error packing block", "error", status.Error)
			e.doClose(status.Error)
		}
	}
}

func (e *Encoder) writeHeaderAndBody() {
	defer e.closed.Done()
	defer func() {
		if err := os.RemoveAll(e.cfg.store); err != nil {
			slog.Error("error removing temp store", "error", err)
		}
	}()

	e.completed.Wait()

	if e.err != nil && e.err != io.EOF {
		return
	}

	if err := e.cfg.wrtr.Sync(); err != nil {
		e.err = fmt.Errorf("cannot sync batch: %w", err)
		return
	}

	if offset, err := e.cfg.wrtr.Seek(0, io.SeekStart); err != nil {
		e.err = fmt.Errorf("cannot seek to beginning of file: %w", err)
		return
	} else if offset != 0 {
		e.err = fmt.Errorf("cannot seek to beginning of file")
		return
	}

	if err := encoder.SaveHeader(e.wrtr, e.Header, e.cfg.compression); err != nil {
		e.err = fmt.Errorf("error writing header: %w", err)
		return
	}

	if _, err := io.Copy(e.wrtr, e.cfg.wrtr); err != nil {
		e.err = fmt.Errorf("error copying entities file: %w", err)
		return
	}
}
