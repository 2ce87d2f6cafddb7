// Package deepfake scores media files for authenticity using cheap
// container-level heuristics: dimensions, byte size, aspect ratio, filename
// pattern, and declared MIME type. There is no forensic model and no stream
// inspection — every check is a weighted pass/fail rule over metadata the
// file already exposes.
package deepfake

// MediaType tags a descriptor with the media category it was observed as.
type MediaType int

const (
	MediaImage MediaType = iota
	MediaVideo
	MediaAudio
)

func (t MediaType) String() string {
	switch t {
	case MediaImage:
		return "image"
	case MediaVideo:
		return "video"
	case MediaAudio:
		return "audio"
	default:
		return "unknown"
	}
}

// ParseMediaType maps a media category name ("image", "video", "audio") to a
// MediaType. Returns ErrUnsupportedMedia for anything else.
func ParseMediaType(s string) (MediaType, error) {
	switch s {
	case "image":
		return MediaImage, nil
	case "video":
		return MediaVideo, nil
	case "audio":
		return MediaAudio, nil
	default:
		return 0, ErrUnsupportedMedia
	}
}

// DeepfakeThreshold is the confidence percentage below which a file is
// labeled a potential deepfake.
const DeepfakeThreshold = 70

// DefaultProbeMaxBytes caps how much of an image file the probe reads.
const DefaultProbeMaxBytes = 64 * 1024 * 1024 // 64MB

// Config holds optional dependencies injected by the consumer.
// The zero value is fully usable.
type Config struct {
	ProbeMaxBytes int64 // max bytes read by the image probe (default: 64MB)

	// Optional callbacks for metrics/logging.
	OnAnalysis func(AnalysisEvent) // audit hook for every completed analysis
	OnPanic    func(tag string, r any)
}

// AnalysisEvent describes one completed analysis for the OnAnalysis callback.
type AnalysisEvent struct {
	Filename   string
	MediaType  MediaType
	Confidence int
	IsDeepfake bool
}

// defaults fills zero-value fields with sensible defaults.
func (c *Config) defaults() {
	if c.ProbeMaxBytes <= 0 {
		c.ProbeMaxBytes = DefaultProbeMaxBytes
	}
}
