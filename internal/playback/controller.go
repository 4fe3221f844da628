package playback

import (
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/ytget/mp3-player/internal/model"
)

// ErrNoTrack is returned when a command needs a loaded track and there is none
var ErrNoTrack = errors.New("no track loaded")

// Controller handles playback state on top of a Backend
type Controller struct {
	backend Backend
	logger  *zap.Logger

	mu      sync.Mutex
	state   model.PlaybackState
	current string
}

// NewController creates a controller in the Idle state and applies the initial volume
func NewController(backend Backend, initialVolume float64, logger *zap.Logger) *Controller {
	if logger == nil {
		logger = zap.NewNop()
	}
	c := &Controller{
		backend: backend,
		logger:  logger.Named("playback"),
		state:   model.StateIdle,
	}
	c.SetVolume(initialVolume)
	return c
}

// LoadAndPlay loads path and starts it from the beginning. Whatever was
// playing before is superseded. On failure the previous track and state are kept.
func (c *Controller) LoadAndPlay(path string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.backend.Load(path); err != nil {
		c.logger.Error("Failed to load track", zap.String("path", path), zap.Error(err))
		return fmt.Errorf("failed to load %s: %w", path, err)
	}
	c.current = path

	if err := c.backend.Play(); err != nil {
		c.state = model.StateIdle
		c.logger.Error("Failed to start track", zap.String("path", path), zap.Error(err))
		return fmt.Errorf("failed to play %s: %w", path, err)
	}

	c.state = model.StatePlaying
	c.logger.Info("Playing track", zap.String("path", path))
	return nil
}

// Play starts or resumes playback. It is a no-op when already playing.
func (c *Controller) Play() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	switch c.state {
	case model.StatePlaying:
		return nil
	case model.StatePaused:
		c.backend.Resume()
	default:
		if c.current == "" {
			return ErrNoTrack
		}
		if err := c.backend.Play(); err != nil {
			return fmt.Errorf("failed to play %s: %w", c.current, err)
		}
	}

	c.state = model.StatePlaying
	c.logger.Debug("Playback started", zap.String("path", c.current))
	return nil
}

// PauseOrResume pauses when playing, resumes when paused and starts a
// loaded track that is not running yet
func (c *Controller) PauseOrResume() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.current == "" {
		return ErrNoTrack
	}

	switch c.state {
	case model.StatePlaying:
		c.backend.Pause()
		c.state = model.StatePaused
	case model.StatePaused:
		c.backend.Resume()
		c.state = model.StatePlaying
	default:
		// Loaded but never started
		if err := c.backend.Play(); err != nil {
			return fmt.Errorf("failed to play %s: %w", c.current, err)
		}
		c.state = model.StatePlaying
	}

	c.logger.Debug("Playback toggled", zap.Stringer("state", c.state))
	return nil
}

// SetVolume clamps level to [0,1] and forwards it to the backend
func (c *Controller) SetVolume(level float64) {
	if level < 0 {
		level = 0
	}
	if level > 1 {
		level = 1
	}
	c.backend.SetVolume(level)
}

// Volume returns the backend volume
func (c *Controller) Volume() float64 {
	return c.backend.Volume()
}

// State returns the current playback state
func (c *Controller) State() model.PlaybackState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Current returns the path of the loaded track, or "" if none
func (c *Controller) Current() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.current
}
