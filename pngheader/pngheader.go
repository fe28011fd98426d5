package pngheader

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"
)

// PrefixLength covers the 8 byte png signature, the 8 byte iHDR chunk
// header and the width and height fields that follow it.
const PrefixLength = 24

var Signature = []byte("\x89PNG\r\n\x1a\n")

type Dimensions struct {
	Width  uint32
	Height uint32
}

func (d *Dimensions) String() string {
	if d == nil {
		return "None"
	}
	return fmt.Sprintf("(%d, %d)", d.Width, d.Height)
}

// Decode returns nil if buf is too short or does not start with the png
// signature.
func Decode(buf []byte) *Dimensions {
	if len(buf) < PrefixLength {
		return nil
	}

	if !bytes.Equal(Signature, buf[0:8]) {
		return nil
	}

	return &Dimensions{
		Width:  binary.BigEndian.Uint32(buf[16:20]),
		Height: binary.BigEndian.Uint32(buf[20:24]),
	}
}

func ReadFrom(r io.Reader) (*Dimensions, error) {
	buf := make([]byte, PrefixLength)
	n, err := io.ReadFull(r, buf)
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
		return nil, fmt.Errorf("could not read png header: %w", err)
	}

	return Decode(buf[:n]), nil
}

type Reader struct {
	// Progress, if set, receives a copy of every byte read from the file.
	Progress io.Writer
}

func (r *Reader) Read(path string) (*Dimensions, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer file.Close()

	var src io.Reader = file
	if r.Progress != nil {
		src = io.TeeReader(file, r.Progress)
	}

	return ReadFrom(src)
}

func Read(path string) (*Dimensions, error) {
	return (&Reader{}).Read(path)
}
