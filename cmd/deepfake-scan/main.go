// deepfake-scan scores media files for authenticity from the command line.
// It is presentation plumbing around the deepfake package: pick files,
// analyze, render the verdict.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	deepfake "github.com/Roopanandareddy352/deepfakedetection"
)

var (
	jsonOutput bool
	mediaType  string
	verbose    bool
)

var (
	authenticColor = color.New(color.FgGreen, color.Bold)
	deepfakeColor  = color.New(color.FgRed, color.Bold)
	warnColor      = color.New(color.FgYellow)
)

// fileReport pairs a file path with its analysis for JSON output.
type fileReport struct {
	File   string                   `json:"file"`
	Result *deepfake.AnalysisResult `json:"result,omitempty"`
	Error  string                   `json:"error,omitempty"`
}

var rootCmd = &cobra.Command{
	Use:   "deepfake-scan [file...]",
	Short: "Score media files for authenticity using superficial file heuristics",
	Long: `deepfake-scan inspects images, videos, and audio files and produces a
heuristic authenticity score from container-level properties: dimensions,
byte size, aspect ratio, filename pattern, and MIME type. It performs no
forensic or pixel-level deepfake detection.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if verbose {
			slog.SetLogLoggerLevel(slog.LevelDebug)
		}

		opts := deepfake.AnalyzeOpts{}
		if mediaType != "" {
			if _, err := deepfake.ParseMediaType(mediaType); err != nil {
				return fmt.Errorf("invalid --type %q (want image, video, or audio)", mediaType)
			}
			opts.DeclaredMIME = mediaType
		}

		cfg := &deepfake.Config{}
		ctx := context.Background()

		reports := make([]fileReport, 0, len(args))
		failed := false
		for _, path := range args {
			result, err := cfg.AnalyzeFile(ctx, path, opts)
			if err != nil {
				failed = true
				reports = append(reports, fileReport{File: path, Error: err.Error()})
				continue
			}
			reports = append(reports, fileReport{File: path, Result: result})
		}

		if jsonOutput {
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			if err := enc.Encode(reports); err != nil {
				return err
			}
		} else {
			for _, r := range reports {
				printReport(cmd, r)
			}
		}

		if failed {
			return fmt.Errorf("one or more files could not be analyzed")
		}
		return nil
	},
	SilenceUsage: true,
}

func printReport(cmd *cobra.Command, r fileReport) {
	out := cmd.OutOrStdout()

	if r.Error != "" {
		fmt.Fprintf(out, "%s: %s\n", r.File, deepfakeColor.Sprintf("error: %s", r.Error))
		return
	}

	verdict := authenticColor.Sprint(r.Result.Verdict())
	if r.Result.IsDeepfake {
		verdict = deepfakeColor.Sprint(r.Result.Verdict())
	}
	fmt.Fprintf(out, "%s: %s (%d%%)\n", r.File, verdict, r.Result.Confidence)

	for _, line := range r.Result.Details {
		fmt.Fprintf(out, "  %s\n", line)
	}
	if r.Result.Technical.GeneratorTagged {
		fmt.Fprintf(out, "  %s\n", warnColor.Sprint("note: metadata names a known image generator/editor"))
	}
	if r.Result.Technical.Fingerprint != "" && verbose {
		fmt.Fprintf(out, "  fingerprint: %s\n", r.Result.Technical.Fingerprint)
	}
}

func init() {
	rootCmd.Flags().BoolVar(&jsonOutput, "json", false, "Output results as JSON")
	rootCmd.Flags().StringVar(&mediaType, "type", "", "Force media type: image, video, or audio (default: detect)")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging and extra detail")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
