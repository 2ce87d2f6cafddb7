package deepfake

import (
	"regexp"
	"strings"
)

// cleanImageNameRe matches filenames considered "clean": a single simple stem
// (letters, digits, hyphen, underscore) plus a common photo extension. Names
// with spaces, extra dots, or exotic extensions fail the pattern check.
var cleanImageNameRe = regexp.MustCompile(`(?i)^[a-z0-9-_]+\.(jpg|jpeg|png|webp)$`)

// videoExtensions are the container extensions the video format check accepts.
var videoExtensions = []string{".mp4", ".webm", ".mov"}

// audioExtensions are the container extensions the audio format check accepts.
var audioExtensions = []string{".mp3", ".wav", ".ogg"}

// IsCleanImageFilename reports whether name matches the clean image
// filename pattern. Purely a heuristic signal, not validation.
func IsCleanImageFilename(name string) bool {
	return cleanImageNameRe.MatchString(name)
}

// HasVideoExtension reports whether name ends in an accepted video container
// extension (case-insensitive).
func HasVideoExtension(name string) bool {
	return hasAnySuffix(name, videoExtensions)
}

// HasAudioExtension reports whether name ends in an accepted audio container
// extension (case-insensitive).
func HasAudioExtension(name string) bool {
	return hasAnySuffix(name, audioExtensions)
}

func hasAnySuffix(name string, suffixes []string) bool {
	lower := strings.ToLower(name)
	for _, s := range suffixes {
		if strings.HasSuffix(lower, s) {
			return true
		}
	}
	return false
}
