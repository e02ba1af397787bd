// Package branding prepares the shop logo for storage: uploaded or
// generated images arrive as data URIs and are shrunk and re-encoded as
// WebP before they are saved.
package branding

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"strings"

	"github.com/chai2010/webp"
	"github.com/rs/zerolog"
	"golang.org/x/image/draw"

	"github.com/BruksfildServices01/barberpro/internal/logging"
)

var (
	ErrInvalidDataURI = errors.New("invalid data uri")
	ErrNotImage       = errors.New("data uri is not an image")
)

const webpQuality = 80

// ParseDataURI splits "data:<mime>;base64,<payload>" and decodes the payload.
func ParseDataURI(uri string) (string, []byte, error) {
	rest, ok := strings.CutPrefix(uri, "data:")
	if !ok {
		return "", nil, ErrInvalidDataURI
	}
	meta, payload, ok := strings.Cut(rest, ",")
	if !ok {
		return "", nil, ErrInvalidDataURI
	}
	mime, ok := strings.CutSuffix(meta, ";base64")
	if !ok {
		return "", nil, ErrInvalidDataURI
	}
	if !strings.HasPrefix(mime, "image/") {
		return "", nil, ErrNotImage
	}

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", nil, fmt.Errorf("%w: %v", ErrInvalidDataURI, err)
	}
	return mime, data, nil
}

func DataURI(mime string, data []byte) string {
	return "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(data)
}

type Optimizer struct {
	maxSize int
	log     zerolog.Logger
}

// NewOptimizer bounds the longest side of the logo to maxSize pixels.
func NewOptimizer(maxSize int) *Optimizer {
	return &Optimizer{
		maxSize: maxSize,
		log:     logging.Component(logging.ComponentBrand),
	}
}

// Optimize decodes a PNG, JPEG or WebP logo, scales it down to fit and
// re-encodes it as WebP.
func (o *Optimizer) Optimize(uri string) (string, error) {
	_, data, err := ParseDataURI(uri)
	if err != nil {
		return "", err
	}

	src, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("decode logo: %w", err)
	}

	img := o.fit(src)

	var buf bytes.Buffer
	if err := webp.Encode(&buf, img, &webp.Options{Quality: webpQuality}); err != nil {
		return "", fmt.Errorf("encode logo: %w", err)
	}
	return DataURI("image/webp", buf.Bytes()), nil
}

// OptimizeOrKeep falls back to the original URI when processing fails.
func (o *Optimizer) OptimizeOrKeep(uri string) string {
	out, err := o.Optimize(uri)
	if err != nil {
		o.log.Warn().Err(err).Int("bytes", len(uri)).Msg("logo optimization failed, keeping original")
		return uri
	}
	o.log.Debug().Int("before", len(uri)).Int("after", len(out)).Msg("logo optimized")
	return out
}

func (o *Optimizer) fit(src image.Image) image.Image {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	if o.maxSize <= 0 || (w <= o.maxSize && h <= o.maxSize) {
		return src
	}

	nw, nh := o.maxSize, o.maxSize
	if w > h {
		nh = max(1, h*o.maxSize/w)
	} else {
		nw = max(1, w*o.maxSize/h)
	}

	dst := image.NewRGBA(image.Rect(0, 0, nw, nh))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, b, draw.Over, nil)
	return dst
}
