package deepfake

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"mime"
	"os"
	"path/filepath"
)

// AnalyzeOpts configures a single file analysis.
// Zero values mean "use defaults": empty DeclaredMIME = sniff magic bytes.
type AnalyzeOpts struct {
	// DeclaredMIME is the MIME type (or bare category, e.g. "video") the
	// caller already knows for the file. When set it takes precedence over
	// magic-byte sniffing.
	DeclaredMIME string
}

// AnalyzeFile reads the file at path, resolves its media category, probes it
// (images only), and scores it.
//
// The probe is the single suspension point: ctx cancellation is honored
// before and during it. The file handle is released on every exit path.
// Every failure — including panics from decoder internals — surfaces as one
// error with no partial result.
func (cfg *Config) AnalyzeFile(ctx context.Context, path string, opts AnalyzeOpts) (result *AnalysisResult, err error) {
	cfg.defaults()

	defer func() {
		if r := recover(); r != nil {
			if cfg.OnPanic != nil {
				cfg.OnPanic("analyze", r)
			}
			result = nil
			err = fmt.Errorf("deepfake: unexpected failure analyzing %q: %v", path, r)
		}
	}()

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open media file: %w", err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("stat media file: %w", err)
	}
	if info.Size() == 0 {
		return nil, fmt.Errorf("analyze %q: %w", path, ErrInvalidInput)
	}

	name := filepath.Base(path)
	mediaType, mimeType, err := resolveMediaType(f, name, opts.DeclaredMIME)
	if err != nil {
		return nil, fmt.Errorf("analyze %q: %w", name, err)
	}

	var desc MediaDescriptor
	var probe *ImageProbe

	switch mediaType {
	case MediaImage:
		data, err := io.ReadAll(io.LimitReader(f, cfg.ProbeMaxBytes))
		if err != nil {
			return nil, fmt.Errorf("read media file: %w", err)
		}
		probe, err = ProbeImage(ctx, data)
		if err != nil {
			return nil, fmt.Errorf("analyze %q: %w", name, err)
		}
		if probe.Degraded != nil {
			slog.Debug("deepfake: probe degraded", "file", truncate(name, 80), "error", probe.Degraded.Error())
		}
		desc = NewImageDescriptor(probe.Width, probe.Height, info.Size(), probe.HasTransparency, name)
	case MediaVideo:
		desc = NewVideoDescriptor(info.Size(), name, mimeType)
	case MediaAudio:
		desc = NewAudioDescriptor(info.Size(), name, mimeType)
	}

	result, err = Score(desc)
	if err != nil {
		return nil, err
	}

	if probe != nil {
		result.Technical.Fingerprint = probe.Fingerprint
		result.Technical.Provenance = probe.Metadata
		result.Technical.GeneratorTagged = IsGeneratorTagged(probe.Metadata)
	}

	if cfg.OnAnalysis != nil {
		cfg.OnAnalysis(AnalysisEvent{
			Filename:   name,
			MediaType:  mediaType,
			Confidence: result.Confidence,
			IsDeepfake: result.IsDeepfake,
		})
	}

	return result, nil
}

// sniffHeadBytes is how much of the file magic-byte sniffing reads.
const sniffHeadBytes = 512

// resolveMediaType determines the media category for an open file: declared
// MIME first, then magic bytes, then filename extension. The file offset is
// rewound before returning. The second return value is the MIME string the
// descriptor will carry.
func resolveMediaType(f *os.File, name, declaredMIME string) (MediaType, string, error) {
	if declaredMIME != "" {
		t, err := DetectMediaType(name, declaredMIME)
		if err != nil {
			return 0, "", err
		}
		return t, declaredMIME, nil
	}

	head := make([]byte, sniffHeadBytes)
	n, _ := io.ReadFull(f, head)
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return 0, "", fmt.Errorf("rewind media file: %w", err)
	}

	if t, mimeType, err := SniffMediaType(head[:n]); err == nil {
		return t, mimeType, nil
	}

	t, err := DetectMediaType(name, "")
	if err != nil {
		return 0, "", err
	}
	return t, mime.TypeByExtension(filepath.Ext(name)), nil
}
