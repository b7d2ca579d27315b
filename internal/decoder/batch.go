package decoder

import (
	"fmt"
	"log/slog"

	"github.com/destel/rill"

	"github.com/brindlewood/osmpbf/internal/core"
	"github.com/brindlewood/osmpbf/model"
)

// DecodeBatch unpacks a batch of data blobs and parses them into
// primitive blocks which are subsequently sent down the out channel.
// Every pair must be declared as an "OSMData" block; anything else
// fails with core.ErrUnknownBlockType, matching the classification
// LoadHeader already enforces on the first blob of the stream.
func DecodeBatch(array []*BlobPair) (out <-chan rill.Try[[]model.Entity]) {
	ch := make(chan rill.Try[[]model.Entity])
	out = ch

	buf := core.NewPooledBuffer()

	go func() {
		defer close(ch)
		defer buf.Close()

		for _, pair := range array {
			if pair.Header.GetType() != "OSMData" {
				err := fmt.Errorf("%w: %q", core.ErrUnknownBlockType, pair.Header.GetType())
				slog.Error("unexpected block type", "error", err)
				ch <- rill.Try[[]model.Entity]{Error: err}

				return
			}

			buf.Reset()

			unpacked, err := unpack(buf, pair.Blob)
			if err != nil {
				slog.Error("unable to unpack blob", "error", err)
				ch <- rill.Try[[]model.Entity]{Error: err}

				return
			}

			entities, err := parsePrimitiveBlock(unpacked)
			if err != nil {
				slog.Error("unable to parse block", "error", err)
				ch <- rill.Try[[]model.Entity]{Error: err}

				return
			}

			ch <- rill.Try[[]model.Entity]{Value: entities}
		}
	}()

	return out
}
