// Package gx converts slicer G-code into the GX container read by FlashForge
// printers: a small binary header, an 80x60 BMP preview and the G-code text.
package gx

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/hashicorp/go-hclog"
)

type Options struct {
	// Extruders selects the single (1) or dual (2) extruder layout.
	Extruders int
	Logger    hclog.Logger
}

type Encoder struct {
	extruders int
	log       hclog.Logger
}

func New(opts Options) (*Encoder, error) {
	if opts.Extruders != ExtrudersSingle && opts.Extruders != ExtrudersDual {
		return nil, fmt.Errorf("%w: %d", ErrExtruders, opts.Extruders)
	}
	if opts.Logger == nil {
		opts.Logger = hclog.NewNullLogger()
	}
	return &Encoder{extruders: opts.Extruders, log: opts.Logger}, nil
}

// job is everything WriteGX needs for one conversion.
type job struct {
	doc       *Document
	params    *Params
	thumbnail []byte
}

// ConvertFile replaces the G-code file at path with its GX version. An
// unreadable file is converted as an empty document.
func (e *Encoder) ConvertFile(path string) error {
	log := e.log.With("path", path)

	data, err := os.ReadFile(path)
	if err != nil {
		log.Warn("cannot read G-code, continuing with an empty document", "error", err)
		data = nil
	}

	j, err := e.prepare(data)
	if err != nil {
		return err
	}
	if err := ReplaceFile(path, j.write); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	log.Info("converted to GX", "lines", len(j.doc.Lines), "print_time", j.params.PrintTimeSec)
	return nil
}

// Convert returns the GX encoding of the G-code in src.
func (e *Encoder) Convert(src []byte) ([]byte, error) {
	j, err := e.prepare(src)
	if err != nil {
		return nil, err
	}
	buf := bytes.NewBuffer(make([]byte, 0, HeaderSize+len(j.thumbnail)+len(src)+64))
	if err := j.write(buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (e *Encoder) prepare(data []byte) (*job, error) {
	if IsGX(data) {
		return nil, ErrAlreadyConverted
	}

	doc := ParseDocument(data)
	if n := doc.NormalizeToolHeader(e.extruders); n > 0 {
		e.log.Debug("inserted tool selection", "lines", n)
	} else if e.extruders == ExtrudersDual {
		e.log.Debug("no executable start marker, tool selection left as is")
	}

	params, err := ParseParams(doc.Lines, e.extruders)
	if err != nil {
		return nil, err
	}

	thumbnail, err := ExtractThumbnail(doc.Lines)
	if err != nil {
		if errors.Is(err, ErrNoThumbnail) {
			e.log.Debug("no thumbnail, using a blank one")
		} else {
			e.log.Warn("cannot convert thumbnail, using a blank one", "error", err)
		}
		thumbnail = BlankThumbnail()
	}

	return &job{doc: doc, params: params, thumbnail: thumbnail}, nil
}

func (j *job) write(w io.Writer) error {
	return WriteGX(w, j.doc, j.params, j.thumbnail)
}

// IsGX reports whether data starts with the GX signature.
func IsGX(data []byte) bool {
	return bytes.HasPrefix(data, []byte(Signature))
}
