package deepfake

import (
	"fmt"
	"math"
)

// TechnicalDetails carries the raw scoring data behind an AnalysisResult:
// the unrounded score, the full check list, and any supplemental probe
// output. Supplemental fields never influence the score.
type TechnicalDetails struct {
	Score  float64 `json:"score"`
	Checks []Check `json:"checks"`

	// Fingerprint is the hex difference-hash of the decoded image, when the
	// pixel probe ran. Empty for video/audio and on probe degradation.
	Fingerprint string `json:"fingerprint,omitempty"`

	// Provenance holds tool/authorship metadata extracted from the image
	// bytes, when any was present.
	Provenance *ImageMetadata `json:"provenance,omitempty"`

	// GeneratorTagged is true when Provenance names a known image
	// generator or editor. Informational only.
	GeneratorTagged bool `json:"generatorTagged,omitempty"`
}

// AnalysisResult is the scorer's output: an aggregate confidence percentage,
// the derived verdict, and human-readable detail lines. Results are rebuilt
// wholesale on every run, never patched.
type AnalysisResult struct {
	Confidence int              `json:"confidence"` // 0-100
	IsDeepfake bool             `json:"isDeepfake"`
	Details    []string         `json:"details"`
	Technical  TechnicalDetails `json:"technicalDetails"`
}

// Verdict returns the human-readable label for the binary verdict.
func (r *AnalysisResult) Verdict() string {
	if r.IsDeepfake {
		return "potential deepfake"
	}
	return "authentic"
}

// Score runs the fixed check table for the descriptor's media type and
// aggregates it into an AnalysisResult.
//
// Confidence = round(100 × Σ passed weights / Σ all weights); per-type
// weights always sum to 100. The verdict flips to deepfake below
// DeepfakeThreshold.
//
// Fails with ErrInvalidInput when the descriptor has zero byte size or (for
// images) zero dimensions, and ErrUnsupportedMedia for an unknown type. No
// checks are produced on failure.
func Score(desc MediaDescriptor) (*AnalysisResult, error) {
	if err := desc.validate(); err != nil {
		return nil, fmt.Errorf("score %s %q: %w", desc.Type, desc.Filename(), err)
	}

	var checks []Check
	switch desc.Type {
	case MediaImage:
		checks = imageChecks(desc.Image)
	case MediaVideo:
		checks = videoChecks(desc.Video)
	case MediaAudio:
		checks = audioChecks(desc.Audio)
	}

	totalWeight, passedWeight, passedCount := 0, 0, 0
	for _, c := range checks {
		totalWeight += c.Weight
		if c.Passed {
			passedWeight += c.Weight
			passedCount++
		}
	}

	score := 100 * float64(passedWeight) / float64(totalWeight)
	confidence := int(math.Round(score))

	result := &AnalysisResult{
		Confidence: confidence,
		IsDeepfake: confidence < DeepfakeThreshold,
		Technical: TechnicalDetails{
			Score:  score,
			Checks: checks,
		},
	}

	details := make([]string, 0, len(checks)+2)
	details = append(details,
		fmt.Sprintf("Overall authenticity score: %d%%", confidence),
		fmt.Sprintf("%d of %d checks passed", passedCount, len(checks)),
	)
	for _, c := range checks {
		status := "FAIL"
		if c.Passed {
			status = "PASS"
		}
		details = append(details, fmt.Sprintf("%s: %s (weight %d)", status, c.Name, c.Weight))
	}
	result.Details = details

	return result, nil
}
