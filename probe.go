package deepfake

import (
	"bytes"
	"context"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"log/slog"
	"os"

	"github.com/corona10/goimagehash"
	_ "golang.org/x/image/webp"
)

// ImageProbe is the outcome of decoding one image file: native dimensions,
// a best-effort transparency flag, and supplemental provenance data.
type ImageProbe struct {
	Width           int
	Height          int
	AspectRatio     float64 // width / height
	HasTransparency bool

	// Metadata is the extracted provenance block, nil when none was found.
	Metadata *ImageMetadata

	// Fingerprint is the hex difference-hash of the decoded pixels. Empty
	// when the pixel pass was degraded or hashing failed.
	Fingerprint string

	// Degraded records why the pixel-level pass could not run (wraps
	// ErrProbeUnavailable). Transparency then defaults to false. Nil when
	// the probe completed fully.
	Degraded error
}

// ProbeImage decodes raw image bytes and derives the probe fields.
//
// A header decode failure is terminal and wraps ErrDecodeFailure. A pixel
// decode failure after a successful header read is not: the probe degrades,
// records ErrProbeUnavailable in Degraded, and still returns usable
// dimensions with transparency defaulting to false.
func ProbeImage(ctx context.Context, data []byte) (*ImageProbe, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	imgCfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecodeFailure, err)
	}

	probe := &ImageProbe{
		Width:  imgCfg.Width,
		Height: imgCfg.Height,
	}
	if imgCfg.Height > 0 {
		probe.AspectRatio = float64(imgCfg.Width) / float64(imgCfg.Height)
	}

	// Provenance is independent of the pixel pass.
	probe.Metadata = ExtractImageMetadata(data)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		// Header was readable but pixels are not. Degrade rather than fail.
		slog.Debug("deepfake: pixel probe degraded", "format", format, "error", err.Error())
		probe.Degraded = fmt.Errorf("%w: %v", ErrProbeUnavailable, err)
		return probe, nil
	}

	probe.HasTransparency = hasTransparency(img)
	probe.Fingerprint = fingerprint(img)

	return probe, nil
}

// ProbeImageFile opens and probes the image at path. The file handle is
// released exactly once on every exit path. Reads are capped at
// cfg.ProbeMaxBytes.
func (cfg *Config) ProbeImageFile(ctx context.Context, path string) (*ImageProbe, error) {
	cfg.defaults()

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open image: %w", err)
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, cfg.ProbeMaxBytes))
	if err != nil {
		return nil, fmt.Errorf("read image: %w", err)
	}

	return ProbeImage(ctx, data)
}

// hasTransparency reports whether any decoded pixel carries an alpha value
// below maximum. Fully-opaque formats (JPEG) answer through Opaque without a
// pixel walk.
func hasTransparency(img image.Image) bool {
	if op, ok := img.(interface{ Opaque() bool }); ok {
		return !op.Opaque()
	}

	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if _, _, _, a := img.At(x, y).RGBA(); a < 0xffff {
				return true
			}
		}
	}
	return false
}

// fingerprint computes a hex difference-hash of the image. Returns "" if
// hashing fails (graceful degradation — the fingerprint is informational).
func fingerprint(img image.Image) string {
	hash, err := goimagehash.DifferenceHash(img)
	if err != nil {
		return ""
	}
	return fmt.Sprintf("%016x", hash.GetHash())
}
