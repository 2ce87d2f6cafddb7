package deepfake

import "testing"

func TestNearCommonAspectRatio(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		ratio float64
		want  bool
	}{
		{"square", 1.0, true},
		{"4:3", 1.33, true},
		{"3:2", 1.5, true},
		{"16:9 exact pixels", 1920.0 / 1080.0, true},
		{"inside tolerance", 1.82, true},
		// 1.83 - 1.78 rounds up past the tolerance in float64 arithmetic.
		{"literal boundary misses in float64", 1.83, false},
		{"just outside tolerance", 1.84, false},
		{"portrait", 0.5625, false},
		{"panorama", 3.2, false},
		{"zero", 0, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := nearCommonAspectRatio(tc.ratio); got != tc.want {
				t.Errorf("nearCommonAspectRatio(%v) = %v, want %v", tc.ratio, got, tc.want)
			}
		})
	}
}

func TestImageChecks_TableOrderIsFixed(t *testing.T) {
	t.Parallel()

	wantOrder := []string{
		"Aspect Ratio Analysis",
		"File Size Verification",
		"Image Dimensions Check",
		"Compression Analysis",
		"Transparency Check",
		"Filename Pattern Analysis",
	}

	checks := imageChecks(&ImageDescriptor{Width: 1920, Height: 1080, FileSizeMB: 2, AspectRatio: 1.78, Filename: "photo.jpg"})
	if len(checks) != len(wantOrder) {
		t.Fatalf("imageChecks produced %d checks, want %d", len(checks), len(wantOrder))
	}
	for i, name := range wantOrder {
		if checks[i].Name != name {
			t.Errorf("check[%d] = %q, want %q", i, checks[i].Name, name)
		}
	}
}

func TestVideoChecks_Conditions(t *testing.T) {
	t.Parallel()

	// Exactly 2MB: Temporal Coherence requires strictly more.
	checks := videoChecks(&VideoDescriptor{FileSizeMB: 2, Filename: "clip.mp4", MIMEType: "video/mp4"})
	byName := checksByName(checks)

	if !byName["File Size Analysis"].Passed {
		t.Error("File Size Analysis should pass at 2MB")
	}
	if byName["Temporal Coherence"].Passed {
		t.Error("Temporal Coherence should fail at exactly 2MB")
	}
	if byName["Bitrate Analysis"].Passed {
		t.Error("Bitrate Analysis should fail at 2MB (0.27 Mbps assumed, bar is 0.5)")
	}

	// 4MB clears the 0.5 Mbps bar (0.53 assumed).
	checks = videoChecks(&VideoDescriptor{FileSizeMB: 4, Filename: "clip.mp4", MIMEType: "video/mp4"})
	if !checksByName(checks)["Bitrate Analysis"].Passed {
		t.Error("Bitrate Analysis should pass at 4MB")
	}
}

func TestAudioChecks_MIMEFold(t *testing.T) {
	t.Parallel()

	checks := audioChecks(&AudioDescriptor{FileSizeMB: 2, Filename: "song.mp3", MIMEType: "AUDIO/MPEG"})
	if !checksByName(checks)["Format Consistency"].Passed {
		t.Error("Format Consistency should match MIME case-insensitively")
	}
}

func checksByName(checks []Check) map[string]Check {
	m := make(map[string]Check, len(checks))
	for _, c := range checks {
		m[c.Name] = c
	}
	return m
}
