package adapters

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeTrimRange(t *testing.T) {
	cases := map[string]struct {
		intervals []silenceInterval
		duration  float64
		wantStart float64
		wantEnd   float64
		wantOk    bool
	}{
		"interior silence only leaves audio untouched": {
			intervals: []silenceInterval{{start: 2, end: 3}},
			duration:  10,
			wantOk:    false,
		},
		"leading silence trims the start": {
			intervals: []silenceInterval{{start: 0, end: 1.5}},
			duration:  10,
			wantStart: 1.5,
			wantEnd:   10,
			wantOk:    true,
		},
		"trailing silence trims the end": {
			intervals: []silenceInterval{{start: 8.2, end: 9.95}},
			duration:  10,
			wantStart: 0,
			wantEnd:   8.2,
			wantOk:    true,
		},
		"leading and trailing silence trim both edges": {
			intervals: []silenceInterval{{start: 0, end: 1}, {start: 4, end: 5}, {start: 9, end: 10}},
			duration:  10,
			wantStart: 1,
			wantEnd:   9,
			wantOk:    true,
		},
		"degenerate range keeps the original": {
			// the whole buffer is one silent run: start end crosses trim end
			intervals: []silenceInterval{{start: 0, end: 10}},
			duration:  10,
			wantOk:    false,
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			start, end, ok := computeTrimRange(tc.intervals, tc.duration)
			require.Equal(t, tc.wantOk, ok)
			if tc.wantOk {
				assert.InDelta(t, tc.wantStart, start, 1e-9)
				assert.InDelta(t, tc.wantEnd, end, 1e-9)
				assert.Less(t, start, end)
			}
		})
	}
}

func TestParseSilences(t *testing.T) {
	trimmer := NewFFMPEGSilenceTrimmer(NewZerologWrapper()).(*ffmpegSilenceTrimmer)

	output := `Input #0, mp3, from '/tmp/in.mp3':
  Duration: 00:00:12.48, start: 0.023021, bitrate: 128 kb/s
[silencedetect @ 0x55d] silence_start: 0
[silencedetect @ 0x55d] silence_end: 0.61 | silence_duration: 0.61
[silencedetect @ 0x55d] silence_start: 11.9
[silencedetect @ 0x55d] silence_end: 12.48 | silence_duration: 0.58
`

	intervals := trimmer.parseSilences(output)
	require.Len(t, intervals, 2)
	assert.Equal(t, silenceInterval{start: 0, end: 0.61}, intervals[0])
	assert.Equal(t, silenceInterval{start: 11.9, end: 12.48}, intervals[1])

	duration, err := trimmer.parseDuration(output)
	require.NoError(t, err)
	assert.InDelta(t, 12.48, duration, 1e-9)
}

func TestParseSilences_UnpairedStartIsIgnored(t *testing.T) {
	trimmer := NewFFMPEGSilenceTrimmer(NewZerologWrapper()).(*ffmpegSilenceTrimmer)

	intervals := trimmer.parseSilences("[silencedetect @ 0x55d] silence_start: 3.2\n")
	assert.Empty(t, intervals)
}

func TestTrim_DetectionFailureReturnsOriginalBytes(t *testing.T) {
	trimmer := NewFFMPEGSilenceTrimmer(NewZerologWrapper()).(*ffmpegSilenceTrimmer)
	trimmer.ffmpegPath = "/nonexistent/ffmpeg"

	original := []byte("not really an mp3")
	trimmed := trimmer.Trim(context.Background(), original)

	assert.Equal(t, original, trimmed)
}
