package deepfake

import (
	"path/filepath"
	"strings"

	"github.com/h2non/filetype"
)

// imageSniffExtensions maps extensions accepted as images when no MIME type
// is declared and magic-byte sniffing is inconclusive. Wider than the clean
// filename pattern on purpose: detection is not the heuristic.
var (
	imageSniffExtensions = []string{".jpg", ".jpeg", ".png", ".webp", ".gif", ".bmp", ".tiff"}
	videoSniffExtensions = []string{".mp4", ".webm", ".mov", ".avi", ".mkv", ".m4v"}
	audioSniffExtensions = []string{".mp3", ".wav", ".ogg", ".flac", ".m4a", ".aac"}
)

// DetectMediaType resolves the media category for a file from its declared
// MIME type, falling back to the filename extension. Returns
// ErrUnsupportedMedia when neither identifies a known category.
func DetectMediaType(filename, declaredMIME string) (MediaType, error) {
	if declaredMIME != "" {
		category := declaredMIME
		if idx := strings.IndexByte(category, '/'); idx >= 0 {
			category = category[:idx]
		}
		switch strings.ToLower(strings.TrimSpace(category)) {
		case "image":
			return MediaImage, nil
		case "video":
			return MediaVideo, nil
		case "audio":
			return MediaAudio, nil
		}
	}

	ext := strings.ToLower(filepath.Ext(filename))
	switch {
	case extIn(ext, imageSniffExtensions):
		return MediaImage, nil
	case extIn(ext, videoSniffExtensions):
		return MediaVideo, nil
	case extIn(ext, audioSniffExtensions):
		return MediaAudio, nil
	}

	return 0, ErrUnsupportedMedia
}

// SniffMediaType detects the media category from magic bytes. Used on the
// CLI path where no browser-declared MIME type exists.
func SniffMediaType(data []byte) (MediaType, string, error) {
	kind, err := filetype.Match(data)
	if err != nil || kind == filetype.Unknown {
		return 0, "", ErrUnsupportedMedia
	}

	mime := kind.MIME.Value
	switch kind.MIME.Type {
	case "image":
		return MediaImage, mime, nil
	case "video":
		return MediaVideo, mime, nil
	case "audio":
		return MediaAudio, mime, nil
	}

	return 0, "", ErrUnsupportedMedia
}

func extIn(ext string, list []string) bool {
	for _, e := range list {
		if ext == e {
			return true
		}
	}
	return false
}
