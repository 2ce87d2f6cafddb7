package deepfake

import (
	"bytes"
	"strings"

	"github.com/bep/imagemeta"
)

// ImageMetadata holds tool and authorship fields extracted from image binary
// data. Used for generator/editor fingerprinting; never part of the score.
type ImageMetadata struct {
	EXIFSoftware   string `json:"exifSoftware,omitempty"`
	EXIFArtist     string `json:"exifArtist,omitempty"`
	EXIFCopyright  string `json:"exifCopyright,omitempty"`
	XMPCreatorTool string `json:"xmpCreatorTool,omitempty"`
	XMPCreator     string `json:"xmpCreator,omitempty"`
	XMPRights      string `json:"xmpRights,omitempty"`
}

// generatorKeywords are substrings that indicate a known image generator or
// heavy editing tool when found (case-insensitive) in any metadata field.
var generatorKeywords = []string{
	"stable diffusion",
	"midjourney",
	"dall-e",
	"dall·e",
	"dalle",
	"firefly",
	"leonardo.ai",
	"runway",
	"deepfacelab",
	"faceswap",
	"faceapp",
	"facetune",
	"photoshop",
	"gimp",
}

// IsGeneratorTagged reports whether the image metadata names a known
// generator or editing tool (case-insensitive substring match).
func IsGeneratorTagged(meta *ImageMetadata) bool {
	if meta == nil {
		return false
	}
	fields := []string{
		meta.EXIFSoftware,
		meta.EXIFArtist,
		meta.EXIFCopyright,
		meta.XMPCreatorTool,
		meta.XMPCreator,
		meta.XMPRights,
	}
	for _, f := range fields {
		if f == "" {
			continue
		}
		lower := strings.ToLower(f)
		for _, kw := range generatorKeywords {
			if strings.Contains(lower, kw) {
				return true
			}
		}
	}
	return false
}

// GeneratorDetail returns the first non-empty tool field for context when a
// generator tag was detected.
func GeneratorDetail(meta *ImageMetadata) string {
	if meta == nil {
		return ""
	}
	for _, f := range []string{
		meta.EXIFSoftware,
		meta.XMPCreatorTool,
		meta.EXIFArtist,
		meta.XMPCreator,
	} {
		if f != "" {
			return f
		}
	}
	return ""
}

// wantedTags maps (source, tag-name) → true for every tag we care about.
var wantedTags = map[imagemeta.Source]map[string]bool{
	imagemeta.EXIF: {
		"Software":  true,
		"Artist":    true,
		"Copyright": true,
	},
	imagemeta.XMP: {
		"CreatorTool": true,
		"Creator":     true,
		"Rights":      true,
	},
}

// ExtractImageMetadata parses EXIF/XMP provenance fields from raw image
// bytes. Returns nil if the data is nil, empty, or cannot be parsed.
// Graceful degradation: never returns an error.
func ExtractImageMetadata(data []byte) *ImageMetadata {
	if len(data) == 0 {
		return nil
	}

	meta := &ImageMetadata{}
	found := false

	_, err := imagemeta.Decode(imagemeta.Options{
		R:       bytes.NewReader(data),
		Sources: imagemeta.EXIF | imagemeta.XMP,
		ShouldHandleTag: func(ti imagemeta.TagInfo) bool {
			if tags, ok := wantedTags[ti.Source]; ok {
				return tags[ti.Tag]
			}
			return false
		},
		HandleTag: func(ti imagemeta.TagInfo) error {
			switch ti.Source {
			case imagemeta.EXIF:
				handleEXIFTag(meta, ti, &found)
			case imagemeta.XMP:
				handleXMPTag(meta, ti, &found)
			}
			return nil
		},
	})

	if err != nil || !found {
		return nil
	}

	return meta
}

// handleEXIFTag sets the appropriate ImageMetadata field for an EXIF tag.
func handleEXIFTag(meta *ImageMetadata, ti imagemeta.TagInfo, found *bool) {
	s := tagValueString(ti.Value)
	if s == "" {
		return
	}

	switch ti.Tag {
	case "Software":
		meta.EXIFSoftware = s
	case "Artist":
		meta.EXIFArtist = s
	case "Copyright":
		meta.EXIFCopyright = s
	default:
		return
	}

	*found = true
}

// handleXMPTag sets the appropriate ImageMetadata field for an XMP tag.
func handleXMPTag(meta *ImageMetadata, ti imagemeta.TagInfo, found *bool) {
	s := tagValueString(ti.Value)
	if s == "" {
		return
	}

	switch ti.Tag {
	case "CreatorTool":
		meta.XMPCreatorTool = s
	case "Creator":
		meta.XMPCreator = s
	case "Rights":
		meta.XMPRights = s
	default:
		return
	}

	*found = true
}

// tagValueString extracts a string from a tag value.
// XMP values may be string or []string (from altList/seqList).
func tagValueString(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case []string:
		if len(val) > 0 {
			return val[0]
		}
		return ""
	case []any:
		if len(val) > 0 {
			if s, ok := val[0].(string); ok {
				return s
			}
		}
		return ""
	default:
		return ""
	}
}
