package gx

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"math"

	"golang.org/x/text/encoding/charmap"
)

// header is the fixed part of a GX file, written little-endian with no
// padding.
type header struct {
	Signature       [12]byte
	Reserved        int32
	ThumbnailOffset int32
	GcodeOffset     int32
	GcodeOffset2    int32
	PrintTimeSec    int32
	FilamentRight   int32
	FilamentLeft    int32
	MultiExtruder   int16
	LayerHeight     int16
	Unknown0        int16
	Shells          int16
	PrintSpeed      int16
	BedTemperature  int16
	NozzleRight     int16
	NozzleLeft      int16
	Unknown1        int16
}

func newHeader(p *Params, thumbnailSize int) (*header, error) {
	h := &header{
		ThumbnailOffset: HeaderSize,
		GcodeOffset:     int32(HeaderSize + thumbnailSize),
		GcodeOffset2:    int32(HeaderSize + thumbnailSize),
		Shells:          2,
		Unknown1:        1,
	}
	copy(h.Signature[:], Signature)

	longs := []struct {
		name  string
		value int
		dst   *int32
	}{
		{"print time", max(p.PrintTimeSec, 1), &h.PrintTimeSec},
		{"filament used", p.FilamentUsed[0], &h.FilamentRight},
		{"second filament used", p.FilamentUsed[1], &h.FilamentLeft},
	}
	for _, l := range longs {
		if l.value > math.MaxInt32 || l.value < math.MinInt32 {
			return nil, fmt.Errorf("%s %d: %w", l.name, l.value, ErrIntegerRange)
		}
		*l.dst = int32(l.value)
	}
	if p.Extruders == ExtrudersDual {
		h.MultiExtruder = 1
	}

	shorts := []struct {
		name  string
		value int
		dst   *int16
	}{
		{"layer height", p.LayerHeight, &h.LayerHeight},
		{"print speed", p.PrintSpeed, &h.PrintSpeed},
		{"bed temperature", p.BedTemperature, &h.BedTemperature},
		{"nozzle temperature", p.NozzleTemperatures[0], &h.NozzleRight},
		{"second nozzle temperature", p.NozzleTemperatures[1], &h.NozzleLeft},
	}
	for _, s := range shorts {
		if s.value > math.MaxInt16 || s.value < math.MinInt16 {
			return nil, fmt.Errorf("%s %d: %w", s.name, s.value, ErrIntegerRange)
		}
		*s.dst = int16(s.value)
	}
	return h, nil
}

// WriteGX writes the GX header, the thumbnail bitmap and the G-code body
// to w. Body characters above U+00FF have no single byte form and are
// dropped.
func WriteGX(w io.Writer, doc *Document, p *Params, thumbnail []byte) error {
	if doc == nil || p == nil || len(thumbnail) == 0 {
		return ErrMissingInput
	}

	h, err := newHeader(p, len(thumbnail))
	if err != nil {
		return err
	}

	bw := bufio.NewWriterSize(w, 64*1024)
	if err := binary.Write(bw, binary.LittleEndian, h); err != nil {
		return err
	}
	if _, err := bw.Write(thumbnail); err != nil {
		return err
	}
	writeLatin1(bw, doc.Lines)
	// bufio.Writer keeps the first write error for Flush
	return bw.Flush()
}

func writeLatin1(w *bufio.Writer, lines []string) {
	enc := charmap.ISO8859_1
	for _, line := range lines {
		for _, r := range line {
			if r < 0x80 {
				w.WriteByte(byte(r))
				continue
			}
			if b, ok := enc.EncodeRune(r); ok {
				w.WriteByte(b)
			}
		}
	}
}
