// Package media shells out to ffmpeg and ffprobe.
package media

import (
	"bytes"
	"context"
	"os/exec"
	"strconv"
	"strings"
	"time"

	"adcopy/config"
	domainerrors "adcopy/internal/domain/errors"
	"adcopy/internal/domain/service"

	"github.com/pkg/errors"
)

const maxStderr = 2048

// FFmpeg implements service.AudioExtractor.
type FFmpeg struct {
	ffmpegBinary  string
	ffprobeBinary string
}

// NewFFmpeg creates the extractor from the media config section.
func NewFFmpeg(cfg *config.Config) service.AudioExtractor {
	return &FFmpeg{
		ffmpegBinary:  cfg.Media.FFmpegBinary,
		ffprobeBinary: cfg.Media.FFprobeBinary,
	}
}

// ExtractAudio drops the video stream and writes 16kHz mono 16-bit PCM WAV.
func (f *FFmpeg) ExtractAudio(ctx context.Context, src, dest string) error {
	args := []string{
		"-hide_banner", "-loglevel", "error",
		"-y",
		"-i", src,
		"-vn",
		"-acodec", "pcm_s16le",
		"-ar", "16000",
		"-ac", "1",
		dest,
	}

	if _, err := f.run(ctx, "extract_audio", f.ffmpegBinary, args...); err != nil {
		return err
	}

	return nil
}

// ProbeDuration reads the container duration.
func (f *FFmpeg) ProbeDuration(ctx context.Context, path string) (time.Duration, error) {
	out, err := f.run(ctx, "probe_duration", f.ffprobeBinary,
		"-v", "error",
		"-show_entries", "format=duration",
		"-of", "default=noprint_wrappers=1:nokey=1",
		path,
	)
	if err != nil {
		return 0, err
	}

	return parseDuration(out)
}

func (f *FFmpeg) run(ctx context.Context, stage, binary string, args ...string) (string, error) {
	var stdout, stderr bytes.Buffer

	cmd := exec.CommandContext(ctx, binary, args...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		msg := strings.TrimSpace(stderr.String())
		if len(msg) > maxStderr {
			msg = msg[len(msg)-maxStderr:]
		}
		exitCode := 0
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			exitCode = exitErr.ExitCode()
		}

		return "", domainerrors.NewUpstreamError(binary, stage, exitCode, msg, err)
	}

	return stdout.String(), nil
}

// parseDuration converts ffprobe's seconds output. "N/A" and empty output
// are reported as zero, which callers treat as a file without audio.
func parseDuration(out string) (time.Duration, error) {
	value := strings.TrimSpace(out)
	if value == "" || value == "N/A" {
		return 0, nil
	}

	seconds, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, errors.Wrapf(err, "unexpected ffprobe duration %q", value)
	}

	return time.Duration(seconds * float64(time.Second)), nil
}
