package gx

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"strings"

	"github.com/nfnt/resize"
	"golang.org/x/image/bmp"
)

// ExtractThumbnail decodes the first embedded PNG thumbnail and returns it
// as an 80x60 24-bit BMP.
func ExtractThumbnail(lines []string) ([]byte, error) {
	data := thumbnailData(lines)
	if data == "" {
		return nil, ErrNoThumbnail
	}

	raw, err := base64.StdEncoding.DecodeString(data)
	if err != nil {
		return nil, fmt.Errorf("thumbnail base64: %w", err)
	}
	img, err := png.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("thumbnail png: %w", err)
	}
	return encodeBitmap(resize.Resize(ThumbnailWidth, ThumbnailHeight, dropAlpha(img), resize.Bicubic))
}

// dropAlpha keeps the straight RGB values of every pixel and makes it
// opaque. Transparent pixels keep whatever color the PNG stored for them.
func dropAlpha(img image.Image) *image.RGBA {
	b := img.Bounds()
	rgb := image.NewRGBA(b)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
			rgb.SetRGBA(x, y, color.RGBA{c.R, c.G, c.B, 0xff})
		}
	}
	return rgb
}

// BlankThumbnail returns a white 80x60 BMP.
func BlankThumbnail() []byte {
	img := image.NewRGBA(image.Rect(0, 0, ThumbnailWidth, ThumbnailHeight))
	draw.Draw(img, img.Bounds(), &image.Uniform{color.White}, image.Point{}, draw.Src)
	b, err := encodeBitmap(img)
	if err != nil {
		// encoding an in-memory RGBA image does not fail
		panic(err)
	}
	return b
}

// thumbnailData concatenates the base64 payload between the first begin and
// end markers.
func thumbnailData(lines []string) string {
	var (
		sb     strings.Builder
		inside bool
	)
	for _, line := range lines {
		if strings.Contains(line, MarkThumbnailBegin) {
			inside = true
		} else if strings.Contains(line, MarkThumbnailEnd) {
			break
		} else if inside {
			sb.WriteString(strings.TrimLeft(strings.TrimSpace(line), "; "))
		}
	}
	return sb.String()
}

// encodeBitmap encodes an 80x60 image as a 24-bit BMP. Any remaining
// transparency is flattened onto white.
func encodeBitmap(img image.Image) ([]byte, error) {
	rect := image.Rect(0, 0, ThumbnailWidth, ThumbnailHeight)
	rgb := image.NewRGBA(rect)
	draw.Draw(rgb, rect, &image.Uniform{color.White}, image.Point{}, draw.Src)
	draw.Draw(rgb, rect, img, img.Bounds().Min, draw.Over)

	buf := bytes.NewBuffer(make([]byte, 0, bitmapSize))
	if err := bmp.Encode(buf, rgb); err != nil {
		return nil, fmt.Errorf("thumbnail bmp: %w", err)
	}
	return buf.Bytes(), nil
}
