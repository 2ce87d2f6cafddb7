package deepfake

import "errors"

// Sentinel errors returned by the scorer and the probes. Callers should test
// with errors.Is — all analysis failures may arrive wrapped with context.
var (
	// ErrInvalidInput means the descriptor cannot be scored at all: zero byte
	// size, or zero width/height for an image. No check list is produced.
	ErrInvalidInput = errors.New("deepfake: invalid input")

	// ErrDecodeFailure means the image could not be decoded even far enough
	// to read its dimensions.
	ErrDecodeFailure = errors.New("deepfake: image decode failed")

	// ErrProbeUnavailable means the pixel-level part of the probe could not
	// run. It is a degradation, not a terminal failure: the probe records it
	// and continues with partial metadata.
	ErrProbeUnavailable = errors.New("deepfake: pixel probe unavailable")

	// ErrUnsupportedMedia means the file is not an image, video, or audio
	// file as far as its declared MIME type, magic bytes, and extension show.
	ErrUnsupportedMedia = errors.New("deepfake: unsupported media type")
)
