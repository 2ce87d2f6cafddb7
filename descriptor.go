package deepfake

// bytesPerMB converts byte counts to the MB figures the check tables use.
const bytesPerMB = 1 << 20

// ImageDescriptor holds the observed attributes of an image file, as reported
// by the metadata probe.
type ImageDescriptor struct {
	Width           int
	Height          int
	FileSizeMB      float64
	AspectRatio     float64 // width / height
	HasTransparency bool
	Filename        string
}

// VideoDescriptor holds the observed attributes of a video file. No decode
// probe runs for video — size, filename, and declared MIME type are all the
// scorer sees.
type VideoDescriptor struct {
	FileSizeMB float64
	Filename   string
	MIMEType   string // declared by the caller, e.g. "video/mp4"
}

// AudioDescriptor holds the observed attributes of an audio file. Like video,
// only superficial attributes are available.
type AudioDescriptor struct {
	FileSizeMB float64
	Filename   string
	MIMEType   string
}

// MediaDescriptor is the tagged union fed to the scorer. Exactly one of the
// typed fields matching Type is set. Descriptors are built once per file and
// never mutated.
type MediaDescriptor struct {
	Type  MediaType
	Image *ImageDescriptor
	Video *VideoDescriptor
	Audio *AudioDescriptor
}

// NewImageDescriptor builds an image descriptor from probe output. The aspect
// ratio is derived here so probe callers cannot supply an inconsistent one.
func NewImageDescriptor(width, height int, sizeBytes int64, hasTransparency bool, filename string) MediaDescriptor {
	ratio := 0.0
	if height > 0 {
		ratio = float64(width) / float64(height)
	}
	return MediaDescriptor{
		Type: MediaImage,
		Image: &ImageDescriptor{
			Width:           width,
			Height:          height,
			FileSizeMB:      float64(sizeBytes) / bytesPerMB,
			AspectRatio:     ratio,
			HasTransparency: hasTransparency,
			Filename:        filename,
		},
	}
}

// NewVideoDescriptor builds a video descriptor.
func NewVideoDescriptor(sizeBytes int64, filename, mimeType string) MediaDescriptor {
	return MediaDescriptor{
		Type: MediaVideo,
		Video: &VideoDescriptor{
			FileSizeMB: float64(sizeBytes) / bytesPerMB,
			Filename:   filename,
			MIMEType:   mimeType,
		},
	}
}

// NewAudioDescriptor builds an audio descriptor.
func NewAudioDescriptor(sizeBytes int64, filename, mimeType string) MediaDescriptor {
	return MediaDescriptor{
		Type: MediaAudio,
		Audio: &AudioDescriptor{
			FileSizeMB: float64(sizeBytes) / bytesPerMB,
			Filename:   filename,
			MIMEType:   mimeType,
		},
	}
}

// validate rejects descriptors that cannot be scored: missing payload, zero
// byte size, or (for images) zero dimensions.
func (d MediaDescriptor) validate() error {
	switch d.Type {
	case MediaImage:
		if d.Image == nil || d.Image.FileSizeMB <= 0 || d.Image.Width <= 0 || d.Image.Height <= 0 {
			return ErrInvalidInput
		}
	case MediaVideo:
		if d.Video == nil || d.Video.FileSizeMB <= 0 {
			return ErrInvalidInput
		}
	case MediaAudio:
		if d.Audio == nil || d.Audio.FileSizeMB <= 0 {
			return ErrInvalidInput
		}
	default:
		return ErrUnsupportedMedia
	}
	return nil
}

// Filename returns the filename carried by whichever typed descriptor is set.
func (d MediaDescriptor) Filename() string {
	switch d.Type {
	case MediaImage:
		if d.Image != nil {
			return d.Image.Filename
		}
	case MediaVideo:
		if d.Video != nil {
			return d.Video.Filename
		}
	case MediaAudio:
		if d.Audio != nil {
			return d.Audio.Filename
		}
	}
	return ""
}
