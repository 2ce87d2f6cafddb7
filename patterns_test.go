package deepfake

import "testing"

func TestIsCleanImageFilename(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		want bool
	}{
		{"photo.jpg", true},
		{"photo.jpeg", true},
		{"IMG_2041.PNG", true},
		{"vacation-2024.webp", true},
		{"snapshot_01.JPG", true},
		{"my photo.jpg", false},       // space in stem
		{"photo.final.jpg", false},    // extra dot
		{"photo.gif", false},          // extension outside the pattern
		{"clip.mp4", false},           // not an image extension
		{"photo", false},              // no extension
		{".jpg", false},               // empty stem
		{"фото.jpg", false},           // non-ascii stem
		{"shot (copy).png", false},    // parentheses
		{"pic%20name.jpg", false},     // encoded space
		{"", false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := IsCleanImageFilename(tc.name); got != tc.want {
				t.Errorf("IsCleanImageFilename(%q) = %v, want %v", tc.name, got, tc.want)
			}
		})
	}
}

func TestContainerExtensions(t *testing.T) {
	t.Parallel()

	videoTests := map[string]bool{
		"clip.mp4":   true,
		"clip.webm":  true,
		"clip.MOV":   true,
		"clip.avi":   false,
		"clip.mkv":   false,
		"clip.mp4.x": false,
		"":           false,
	}
	for name, want := range videoTests {
		if got := HasVideoExtension(name); got != want {
			t.Errorf("HasVideoExtension(%q) = %v, want %v", name, got, want)
		}
	}

	audioTests := map[string]bool{
		"song.mp3":  true,
		"song.WAV":  true,
		"song.ogg":  true,
		"song.flac": false,
		"song.aac":  false,
		"":          false,
	}
	for name, want := range audioTests {
		if got := HasAudioExtension(name); got != want {
			t.Errorf("HasAudioExtension(%q) = %v, want %v", name, got, want)
		}
	}
}
