package deepfake

import "testing"

func TestIsGeneratorTagged(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		meta *ImageMetadata
		want bool
	}{
		{"nil metadata", nil, false},
		{"empty metadata", &ImageMetadata{}, false},
		{"photoshop in software", &ImageMetadata{EXIFSoftware: "Adobe Photoshop 25.3 (Windows)"}, true},
		{"midjourney in creator tool", &ImageMetadata{XMPCreatorTool: "Midjourney v6"}, true},
		{"stable diffusion in copyright", &ImageMetadata{EXIFCopyright: "made with Stable Diffusion"}, true},
		{"case insensitive", &ImageMetadata{EXIFSoftware: "GIMP 2.10"}, true},
		{"camera firmware is clean", &ImageMetadata{EXIFSoftware: "NIKON Z 6_2 Ver.1.62"}, false},
		{"ordinary author is clean", &ImageMetadata{EXIFArtist: "Jane Smith", XMPRights: "All rights reserved"}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := IsGeneratorTagged(tc.meta); got != tc.want {
				t.Errorf("IsGeneratorTagged() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestGeneratorDetail(t *testing.T) {
	t.Parallel()

	if got := GeneratorDetail(nil); got != "" {
		t.Errorf("GeneratorDetail(nil) = %q, want empty", got)
	}

	meta := &ImageMetadata{
		XMPCreatorTool: "Midjourney v6",
		EXIFArtist:     "someone",
	}
	if got := GeneratorDetail(meta); got != "Midjourney v6" {
		t.Errorf("GeneratorDetail() = %q, want first non-empty tool field", got)
	}
}

func TestExtractImageMetadata_GracefulDegradation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		data []byte
	}{
		{"nil data", nil},
		{"empty data", []byte{}},
		{"garbage data", []byte("definitely not an image")},
		{"plain png without metadata", encodePNG(t, 8, 8, 255)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			// Must never panic or error; nil means "nothing found".
			if got := ExtractImageMetadata(tc.data); got != nil && *got == (ImageMetadata{}) {
				t.Errorf("ExtractImageMetadata() = empty non-nil %+v, want nil", got)
			}
		})
	}
}
