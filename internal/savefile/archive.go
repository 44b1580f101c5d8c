package savefile

import (
	"fmt"
	"io"

	"github.com/klauspost/compress/zstd"
)

// WriteArchive writes the record zstd-compressed.
func WriteArchive(w io.Writer, r *Record) error {
	enc, err := zstd.NewWriter(w, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		return fmt.Errorf("savefile: zstd writer: %w", err)
	}
	if err := r.Encode(enc); err != nil {
		enc.Close()
		return err
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("savefile: zstd close: %w", err)
	}
	return nil
}

// ReadArchive reads a record written by WriteArchive.
func ReadArchive(rd io.Reader) (*Record, error) {
	dec, err := zstd.NewReader(rd)
	if err != nil {
		return nil, fmt.Errorf("savefile: zstd reader: %w", err)
	}
	defer dec.Close()

	return Decode(dec)
}
