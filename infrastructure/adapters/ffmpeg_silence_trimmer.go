package adapters

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"regexp"
	"strconv"
	"strings"

	"github.com/ammar-bay/remotion-othman-backend/application/ports/outbound"
	"github.com/google/uuid"
)

const (
	silenceThresholdDb  = -40
	minSilenceDuration  = 0.1
	trailingSilenceSlop = 0.1
)

type silenceInterval struct {
	start float64
	end   float64
}

type ffmpegSilenceTrimmer struct {
	logger     outbound.LoggerPort
	ffmpegPath string
	startRe    *regexp.Regexp
	endRe      *regexp.Regexp
	durationRe *regexp.Regexp
}

// NewFFMPEGSilenceTrimmer detects leading and trailing silence with a
// silencedetect pass and cuts the edges off. It never fails the caller: any
// detection or encoding problem returns the original buffer untouched.
func NewFFMPEGSilenceTrimmer(logger outbound.LoggerPort) outbound.SilenceTrimmerPort {
	return &ffmpegSilenceTrimmer{
		logger:     logger,
		ffmpegPath: "ffmpeg",
		startRe:    regexp.MustCompile(`silence_start:\s*(-?[\d.]+)`),
		endRe:      regexp.MustCompile(`silence_end:\s*(-?[\d.]+)`),
		durationRe: regexp.MustCompile(`Duration:\s*(\d+):(\d+):(\d+(?:\.\d+)?)`),
	}
}

func (t *ffmpegSilenceTrimmer) Trim(ctx context.Context, audio []byte) []byte {
	inputFile := "/tmp/" + uuid.NewString() + ".mp3"
	if err := os.WriteFile(inputFile, audio, 0o600); err != nil {
		t.logger.Error(err, "Failed to write audio to temp file, skipping trim")
		return audio
	}
	defer func() {
		if err := os.Remove(inputFile); err != nil {
			t.logger.Error(err, "Failed to remove trimmer input file")
		}
	}()

	intervals, duration, err := t.detectSilences(ctx, inputFile)
	if err != nil {
		t.logger.Error(err, "Silence detection failed, returning untrimmed audio")
		return audio
	}
	if len(intervals) == 0 {
		return audio
	}

	trimStart, trimEnd, ok := computeTrimRange(intervals, duration)
	if !ok {
		return audio
	}

	trimmed, err := t.cut(ctx, inputFile, trimStart, trimEnd)
	if err != nil {
		t.logger.Error(err, "Trim encoding failed, returning untrimmed audio")
		return audio
	}

	return trimmed
}

// computeTrimRange turns detected silent intervals into a [start, end) keep
// range. The zero-change and degenerate cases report ok=false so the caller
// keeps the original buffer.
func computeTrimRange(intervals []silenceInterval, duration float64) (float64, float64, bool) {
	trimStart := 0.0
	trimEnd := duration

	if intervals[0].start <= 0 {
		trimStart = intervals[0].end
	}
	last := intervals[len(intervals)-1]
	if last.end >= duration-trailingSilenceSlop {
		trimEnd = last.start
	}

	if trimStart == 0 && trimEnd == duration {
		return 0, 0, false
	}
	if trimStart >= trimEnd {
		return 0, 0, false
	}

	return trimStart, trimEnd, true
}

func (t *ffmpegSilenceTrimmer) detectSilences(ctx context.Context, inputFile string) ([]silenceInterval, float64, error) {
	filter := fmt.Sprintf("silencedetect=noise=%ddB:d=%g", silenceThresholdDb, minSilenceDuration)
	cmd := exec.CommandContext(ctx, t.ffmpegPath,
		"-i", inputFile,
		"-af", filter,
		"-f", "null",
		"-hide_banner",
		"-")

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	// silencedetect and duration info both land on stderr; ffmpeg exits
	// non-zero for null output, so the run error alone is not conclusive.
	runErr := cmd.Run()

	output := stderr.String()
	duration, err := t.parseDuration(output)
	if err != nil {
		if runErr != nil {
			return nil, 0, runErr
		}
		return nil, 0, err
	}

	return t.parseSilences(output), duration, nil
}

func (t *ffmpegSilenceTrimmer) parseSilences(output string) []silenceInterval {
	var intervals []silenceInterval

	var currentStart float64
	hasStart := false
	for _, line := range strings.Split(output, "\n") {
		if match := t.startRe.FindStringSubmatch(line); len(match) > 1 {
			val, err := strconv.ParseFloat(match[1], 64)
			if err != nil {
				continue
			}
			currentStart = val
			hasStart = true
			continue
		}
		if match := t.endRe.FindStringSubmatch(line); len(match) > 1 && hasStart {
			val, err := strconv.ParseFloat(match[1], 64)
			if err != nil {
				continue
			}
			intervals = append(intervals, silenceInterval{start: currentStart, end: val})
			hasStart = false
		}
	}

	return intervals
}

func (t *ffmpegSilenceTrimmer) parseDuration(output string) (float64, error) {
	match := t.durationRe.FindStringSubmatch(output)
	if len(match) < 4 {
		return 0, fmt.Errorf("could not parse duration from ffmpeg output")
	}

	hours, _ := strconv.ParseFloat(match[1], 64)
	minutes, _ := strconv.ParseFloat(match[2], 64)
	seconds, _ := strconv.ParseFloat(match[3], 64)

	return hours*3600 + minutes*60 + seconds, nil
}

func (t *ffmpegSilenceTrimmer) cut(ctx context.Context, inputFile string, trimStart, trimEnd float64) ([]byte, error) {
	outputFile := "/tmp/" + uuid.NewString() + ".mp3"
	defer func() {
		if err := os.Remove(outputFile); err != nil && !os.IsNotExist(err) {
			t.logger.Error(err, "Failed to remove trimmer output file")
		}
	}()

	cmd := exec.CommandContext(ctx, t.ffmpegPath,
		"-ss", strconv.FormatFloat(trimStart, 'f', 3, 64),
		"-to", strconv.FormatFloat(trimEnd, 'f', 3, 64),
		"-i", inputFile,
		"-c", "copy",
		"-hide_banner",
		outputFile)
	if err := cmd.Run(); err != nil {
		return nil, err
	}

	return os.ReadFile(outputFile)
}
