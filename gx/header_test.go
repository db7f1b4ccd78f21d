package gx

import (
	"bytes"
	"encoding/binary"
	"errors"
	"math"
	"testing"
)

func TestWriteGXLayout(t *testing.T) {
	doc := ParseDocument([]byte("T0\nG28\nG1 X10 Y10\n"))
	p := &Params{
		Extruders:          2,
		PrintTimeSec:       7738,
		FilamentUsed:       [2]int{1234, 678},
		LayerHeight:        200,
		PrintSpeed:         500,
		BedTemperature:     60,
		NozzleTemperatures: [2]int{220, 210},
	}
	thumb := BlankThumbnail()

	var buf bytes.Buffer
	if err := WriteGX(&buf, doc, p, thumb); err != nil {
		t.Fatal(err)
	}
	out := buf.Bytes()

	if want := HeaderSize + len(thumb) + doc.Len(); len(out) != want {
		t.Fatalf("len = %d, want %d", len(out), want)
	}
	if string(out[:12]) != "xgcode 1.0\n\x00" {
		t.Errorf("signature = %q", out[:12])
	}

	le := binary.LittleEndian
	ints := []struct {
		off  int
		want int32
	}{
		{12, 0}, {16, 58}, {20, 14512}, {24, 14512},
		{28, 7738}, {32, 1234}, {36, 678},
	}
	for _, i := range ints {
		if got := int32(le.Uint32(out[i.off:])); got != i.want {
			t.Errorf("int32 at %d = %d, want %d", i.off, got, i.want)
		}
	}
	shorts := []int16{1, 200, 0, 2, 500, 60, 220, 210, 1}
	for i, want := range shorts {
		off := 40 + 2*i
		if got := int16(le.Uint16(out[off:])); got != want {
			t.Errorf("int16 at %d = %d, want %d", off, got, want)
		}
	}

	if !bytes.Equal(out[HeaderSize:HeaderSize+len(thumb)], thumb) {
		t.Error("thumbnail not copied verbatim")
	}
	if got := string(out[14512:]); got != doc.String() {
		t.Errorf("body = %q, want %q", got, doc.String())
	}
}

func TestWriteGXSingleFlagAndMinimumTime(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteGX(&buf, ParseDocument(nil), NewParams(ExtrudersSingle), BlankThumbnail()); err != nil {
		t.Fatal(err)
	}
	out := buf.Bytes()
	if len(out) != 14512 {
		t.Fatalf("len = %d, want 14512", len(out))
	}
	if got := binary.LittleEndian.Uint32(out[28:]); got != 1 {
		t.Errorf("print time = %d, want 1", got)
	}
	if got := binary.LittleEndian.Uint16(out[40:]); got != 0 {
		t.Errorf("extruder flag = %d, want 0", got)
	}
	if got := binary.LittleEndian.Uint16(out[48:]); got != 60 {
		t.Errorf("print speed = %d, want 60", got)
	}
}

func TestWriteGXLatin1(t *testing.T) {
	doc := &Document{Lines: []string{"; é ü 中 ©\n"}}
	var buf bytes.Buffer
	if err := WriteGX(&buf, doc, NewParams(ExtrudersSingle), BlankThumbnail()); err != nil {
		t.Fatal(err)
	}
	want := []byte{';', ' ', 0xe9, ' ', 0xfc, ' ', ' ', 0xa9, '\n'}
	if got := buf.Bytes()[14512:]; !bytes.Equal(got, want) {
		t.Errorf("body = % x, want % x", got, want)
	}
}

func TestWriteGXErrors(t *testing.T) {
	doc := ParseDocument([]byte("G28\n"))
	p := NewParams(ExtrudersSingle)
	thumb := BlankThumbnail()

	var buf bytes.Buffer
	if err := WriteGX(&buf, nil, p, thumb); !errors.Is(err, ErrMissingInput) {
		t.Errorf("nil document: err = %v", err)
	}
	if err := WriteGX(&buf, doc, p, nil); !errors.Is(err, ErrMissingInput) {
		t.Errorf("nil thumbnail: err = %v", err)
	}
	if buf.Len() != 0 {
		t.Errorf("wrote %d bytes on error", buf.Len())
	}

	p.LayerHeight = 40000
	if err := WriteGX(&buf, doc, p, thumb); !errors.Is(err, ErrIntegerRange) {
		t.Errorf("layer height out of range: err = %v", err)
	}
}

func TestWriteGXPrintTimeRange(t *testing.T) {
	doc := ParseDocument([]byte("G28\n"))
	thumb := BlankThumbnail()

	tests := []struct {
		sec  int
		want int32
		err  error
	}{
		{-5, 1, nil},
		{0, 1, nil},
		{math.MaxInt32, math.MaxInt32, nil},
		{math.MaxInt32 + 1, 0, ErrIntegerRange},
		{24856 * 86400, 0, ErrIntegerRange},
	}
	for _, tt := range tests {
		p := NewParams(ExtrudersSingle)
		p.PrintTimeSec = tt.sec
		var buf bytes.Buffer
		err := WriteGX(&buf, doc, p, thumb)
		if !errors.Is(err, tt.err) {
			t.Errorf("print time %d: err = %v, want %v", tt.sec, err, tt.err)
			continue
		}
		if err != nil {
			if buf.Len() != 0 {
				t.Errorf("print time %d: wrote %d bytes on error", tt.sec, buf.Len())
			}
			continue
		}
		if got := int32(binary.LittleEndian.Uint32(buf.Bytes()[28:])); got != tt.want {
			t.Errorf("print time %d encoded as %d, want %d", tt.sec, got, tt.want)
		}
	}
}

func TestHeaderSize(t *testing.T) {
	if n := binary.Size(header{}); n != HeaderSize {
		t.Errorf("binary.Size(header) = %d, want %d", n, HeaderSize)
	}
	if n := len(BlankThumbnail()); HeaderSize+n != 14512 {
		t.Errorf("G-code offset = %d, want 14512", HeaderSize+n)
	}
}
