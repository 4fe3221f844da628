package playback

import (
	"errors"
	"fmt"
	"math"
	"os"
	"sync"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/effects"
	"github.com/faiface/beep/mp3"
	"github.com/faiface/beep/speaker"
	"go.uber.org/zap"
)

// Output format
const (
	DefaultSampleRate = beep.SampleRate(44100)
	SpeakerBuffer     = 100 * time.Millisecond
	ResampleQuality   = 4
)

var errNotLoaded = errors.New("backend has no track loaded")

// BeepBackend plays mp3 files through the process-wide beep speaker
type BeepBackend struct {
	sampleRate beep.SampleRate
	logger     *zap.Logger

	mu       sync.Mutex
	streamer beep.StreamSeekCloser
	format   beep.Format
	ctrl     *beep.Ctrl
	volume   *effects.Volume
	level    float64
}

// NewBeepBackend initialises the speaker. It must be created only once per process.
func NewBeepBackend(sampleRate beep.SampleRate, logger *zap.Logger) (*BeepBackend, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if err := speaker.Init(sampleRate, sampleRate.N(SpeakerBuffer)); err != nil {
		return nil, fmt.Errorf("failed to initialise audio output: %w", err)
	}
	return &BeepBackend{
		sampleRate: sampleRate,
		logger:     logger.Named("beep"),
		level:      1,
	}, nil
}

// Load decodes path as mp3 and replaces the current track
func (b *BeepBackend) Load(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open audio file: %w", err)
	}

	streamer, format, err := mp3.Decode(f)
	if err != nil {
		f.Close()
		return fmt.Errorf("failed to decode mp3: %w", err)
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	speaker.Clear()
	if b.streamer != nil {
		if err := b.streamer.Close(); err != nil {
			b.logger.Warn("Failed to close previous track", zap.Error(err))
		}
	}

	b.streamer = streamer
	b.format = format
	b.ctrl = nil
	b.volume = nil

	b.logger.Debug("Track decoded",
		zap.String("path", path),
		zap.Int("sample_rate", int(format.SampleRate)),
		zap.Int("channels", format.NumChannels),
		zap.Duration("duration", format.SampleRate.D(streamer.Len())))
	return nil
}

// Play restarts the loaded track from the beginning without looping
func (b *BeepBackend) Play() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.streamer == nil {
		return errNotLoaded
	}

	speaker.Clear()
	if err := b.streamer.Seek(0); err != nil {
		return fmt.Errorf("failed to rewind track: %w", err)
	}

	var s beep.Streamer = b.streamer
	if b.format.SampleRate != b.sampleRate {
		s = beep.Resample(ResampleQuality, b.format.SampleRate, b.sampleRate, s)
	}

	b.volume = &effects.Volume{Streamer: s, Base: 2}
	applyLevel(b.volume, b.level)
	b.ctrl = &beep.Ctrl{Streamer: b.volume}

	speaker.Play(b.ctrl)
	return nil
}

// Pause holds the current position
func (b *BeepBackend) Pause() {
	b.setPaused(true)
}

// Resume continues from the held position
func (b *BeepBackend) Resume() {
	b.setPaused(false)
}

func (b *BeepBackend) setPaused(paused bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.ctrl == nil {
		return
	}
	speaker.Lock()
	b.ctrl.Paused = paused
	speaker.Unlock()
}

// SetVolume sets a linear gain in range [0,1]
func (b *BeepBackend) SetVolume(level float64) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.level = level
	if b.volume == nil {
		return
	}
	speaker.Lock()
	applyLevel(b.volume, level)
	speaker.Unlock()
}

// Volume returns the linear gain last set
func (b *BeepBackend) Volume() float64 {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.level
}

// Close stops output and releases the current track
func (b *BeepBackend) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	speaker.Clear()
	if b.streamer == nil {
		return nil
	}
	err := b.streamer.Close()
	b.streamer = nil
	b.ctrl = nil
	b.volume = nil
	return err
}

// applyLevel maps a linear level onto effects.Volume with base 2,
// so the resulting gain equals level exactly.
func applyLevel(v *effects.Volume, level float64) {
	exp, silent := gainExponent(level)
	v.Volume = exp
	v.Silent = silent
}

func gainExponent(level float64) (exp float64, silent bool) {
	if level <= 0 {
		return 0, true
	}
	return math.Log2(level), false
}
