package deepfake

import "math"

// Check is one named, weighted, boolean heuristic test. Checks are built
// fresh on every scoring run and never mutated afterwards.
type Check struct {
	Name   string `json:"name"`
	Passed bool   `json:"passed"`
	Weight int    `json:"weight"` // 0-100; per-type weights always sum to 100
}

// aspectRatioTolerance is how far an image ratio may sit from a common
// photo/display ratio and still pass the aspect check.
const aspectRatioTolerance = 0.05

// commonAspectRatios are the ratios the aspect check accepts: square, 4:3,
// 3:2, and 16:9.
var commonAspectRatios = []float64{1.0, 1.33, 1.5, 1.78}

// Image dimension bounds for the dimensions check.
const (
	minImageDimension = 400
	maxImageDimension = 8000
)

// Bytes-per-pixel bounds for the compression check. Below the floor the file
// is implausibly small for its pixel count; above the ceiling implausibly
// large.
const (
	minBytesPerPixel = 0.1
	maxBytesPerPixel = 2.0
)

// imageChecks builds the fixed image check table. Weights: 15+20+15+25+10+15.
func imageChecks(d *ImageDescriptor) []Check {
	pixels := float64(d.Width) * float64(d.Height)
	bytesPerPixel := d.FileSizeMB * bytesPerMB / pixels

	return []Check{
		{
			Name:   "Aspect Ratio Analysis",
			Passed: nearCommonAspectRatio(d.AspectRatio),
			Weight: 15,
		},
		{
			Name:   "File Size Verification",
			Passed: d.FileSizeMB >= 0.1*(pixels/bytesPerMB),
			Weight: 20,
		},
		{
			Name: "Image Dimensions Check",
			Passed: d.Width >= minImageDimension && d.Width <= maxImageDimension &&
				d.Height >= minImageDimension && d.Height <= maxImageDimension,
			Weight: 15,
		},
		{
			Name:   "Compression Analysis",
			Passed: bytesPerPixel > minBytesPerPixel && bytesPerPixel < maxBytesPerPixel,
			Weight: 25,
		},
		{
			Name:   "Transparency Check",
			Passed: !d.HasTransparency,
			Weight: 10,
		},
		{
			Name:   "Filename Pattern Analysis",
			Passed: IsCleanImageFilename(d.Filename),
			Weight: 15,
		},
	}
}

// videoChecks builds the fixed video check table. Despite what some labels
// imply, every condition is a size/filename/MIME heuristic — no stream is
// ever opened. Weights: 20+15+25+20+20.
func videoChecks(d *VideoDescriptor) []Check {
	// Rough bitrate in Mbps assuming a one-minute clip. A crude stand-in:
	// the real duration is never read.
	assumedBitrate := d.FileSizeMB * 8 / 60

	return []Check{
		{
			Name:   "File Size Analysis",
			Passed: d.FileSizeMB >= 1,
			Weight: 20,
		},
		{
			Name:   "Format Verification",
			Passed: HasVideoExtension(d.Filename),
			Weight: 15,
		},
		{
			Name:   "Bitrate Analysis",
			Passed: assumedBitrate > 0.5,
			Weight: 25,
		},
		{
			Name:   "Temporal Coherence",
			Passed: d.FileSizeMB > 2,
			Weight: 20,
		},
		{
			Name:   "Audio Stream Presence",
			Passed: containsFold(d.MIMEType, "video"),
			Weight: 20,
		},
	}
}

// audioChecks builds the fixed audio check table. Weights: 25+25+25+25.
func audioChecks(d *AudioDescriptor) []Check {
	return []Check{
		{
			Name:   "File Size",
			Passed: d.FileSizeMB >= 0.5,
			Weight: 25,
		},
		{
			Name:   "Format",
			Passed: HasAudioExtension(d.Filename),
			Weight: 25,
		},
		{
			Name:   "Bitrate Check",
			Passed: d.FileSizeMB > 1,
			Weight: 25,
		},
		{
			Name:   "Format Consistency",
			Passed: containsFold(d.MIMEType, "audio"),
			Weight: 25,
		},
	}
}

// nearCommonAspectRatio reports whether ratio sits within the tolerance of
// any common photo/display ratio.
func nearCommonAspectRatio(ratio float64) bool {
	for _, r := range commonAspectRatios {
		if math.Abs(ratio-r) <= aspectRatioTolerance {
			return true
		}
	}
	return false
}
