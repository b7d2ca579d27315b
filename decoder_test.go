package pbf

import (
	"bytes"
	"context"
	"encoding/binary"
	"errors"
	"testing"

	"github.com/brindlewood/osmpbf/internal/pb"
)

func TestNewDecoderFailsWhenFirstBlockIsNotHeader(t *testing.T) {
	bh := &pb.BlobHeader{Type: "Junk", Datasize: 0}
	bb, err := bh.Marshal()
	if err != nil {
		t.Fatalf("marshaling blob header: %v", err)
	}

	var buf bytes.Buffer
	if err := binary.Write(&buf, binary.BigEndian, uint32(len(bb))); err != nil {
		t.Fatalf("writing length prefix: %v", err)
	}
	buf.Write(bb)

	d, err := NewDecoder(context.Background(), &buf)
	if err == nil {
		t.Fatal("expected NewDecoder to fail on a non-header first block")
	}
	if d != nil {
		t.Fatal("expected nil decoder when header loading fails")
	}
	if !errors.Is(err, ErrMissingHeader) {
		t.Fatalf("expected ErrMissingHeader, got: %v", err)
	}
}
