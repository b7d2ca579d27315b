package encoder

import (
	"io"

	"github.com/destel/rill"

	"github.com/brindlewood/osmpbf/internal/pb"
	"github.com/brindlewood/osmpbf/model"
)

// Coalesce groups entities read off in into per-kind batches of at
// most size elements, one PrimitiveGroup's worth at a time: nodes,
// ways, and relations flow through separate batchers so that a batch
// never mixes kinds. A model.Sentinel forces an immediate flush of
// whichever batches are non-empty, without itself becoming part of
// any of them — a source that groups entities some other way (a
// table-oriented database dump, say) uses it to keep its own grouping
// boundaries intact regardless of size.
func Coalesce(in <-chan []model.Entity, size int) <-chan rill.Try[[]model.Entity] {
	nch := make(chan rill.Try[model.Entity])
	rch := make(chan rill.Try[model.Entity])
	wch := make(chan rill.Try[model.Entity])

	go func() {
		defer close(nch)
		defer close(rch)
		defer close(wch)

		for entities := range in {
			for _, e := range entities {
				o := rill.Try[model.Entity]{Value: e}
				nch <- o
				rch <- o
				wch <- o
			}
		}
	}()

	bn := batchEntities[*model.Node](nch, size)
	br := batchEntities[*model.Relation](rch, size)
	bw := batchEntities[*model.Way](wch, size)

	return rill.Merge(bn, br, bw)
}

func ExtractBoundingBoxes(
	in <-chan rill.Try[[]model.Entity],
) (
	<-chan rill.Try[[]model.Entity],
	<-chan rill.Try[*model.BoundingBox],
) {
	ech := make(chan rill.Try[[]model.Entity])
	bch := make(chan rill.Try[*model.BoundingBox])

	go func() {
		defer close(ech)
		defer close(bch)

		for entities := range in {
			ech <- entities

			bbox := model.InitialBoundingBox()

			for _, e := range entities.Value {
				if n, ok := e.(*model.Node); ok {
					bbox.ExpandWithLatLng(n.Lat, n.Lon)
				}
			}

			bch <- rill.Wrap(bbox, nil)
		}
	}()

	return ech, bch
}

// batchEntities groups the entities of kind T into batches of at most
// size, flushing early whenever a model.Sentinel passes through.
func batchEntities[T model.Entity](in <-chan rill.Try[model.Entity], size int) <-chan rill.Try[[]model.Entity] {
	out := make(chan rill.Try[[]model.Entity])

	go func() {
		defer close(out)

		batch := make([]model.Entity, 0, size)

		for item := range in {
			if item.Error != nil {
				out <- rill.Try[[]model.Entity]{Error: item.Error}
				return
			}

			if _, ok := item.Value.(model.Sentinel); ok {
				if len(batch) > 0 {
					out <- rill.Try[[]model.Entity]{Value: batch}
					batch = make([]model.Entity, 0, size)
				}
				continue
			}

			if _, ok := item.Value.(T); !ok {
				continue
			}

			batch = append(batch, item.Value)
			if len(batch) == size {
				out <- rill.Try[[]model.Entity]{Value: batch}
				batch = make([]model.Entity, 0, size)
			}
		}

		if len(batch) > 0 {
			out <- rill.Try[[]model.Entity]{Value: batch}
		}
	}()

	return out
}

func EncodeBatch(batch []model.Entity) (*pb.PrimitiveBlock, error) {
	return newBlockContext(batch).extractPrimitiveBlock()
}

func SavePacked(w io.Writer, ch <-chan rill.Try[[]byte]) <-chan rill.Try[struct{}] {
	out := make(chan rill.Try[struct{}])

	go func() {
		defer close(out)

		for buf := range ch {
			out <- rill.Wrap(struct{}{}, SaveBlock(w, buf))
		}
	}()

	return out
}

func GenerateBatchPacker(c BlobCompression) func(block *pb.PrimitiveBlock) ([]byte, error) {
	return func(block *pb.PrimitiveBlock) ([]byte, error) {
		return Pack(block, c)
	}
}
