// Package playbacktest provides an in-memory playback.Backend for tests.
package playbacktest

import (
	"fmt"
	"sync"
)

// Backend records every command instead of producing sound
type Backend struct {
	mu sync.Mutex

	// LoadErr, when set for a path, makes Load fail for it
	LoadErr map[string]error
	// PlayErr, when set, makes Play fail
	PlayErr error

	Loaded  string
	Playing bool
	Paused  bool
	Level   float64

	Loads   []string
	Plays   int
	Pauses  int
	Resumes int
	Closed  bool
}

// NewBackend creates a fake backend at full volume
func NewBackend() *Backend {
	return &Backend{
		LoadErr: make(map[string]error),
		Level:   1,
	}
}

// FailLoad makes future loads of path fail with err
func (b *Backend) FailLoad(path string, err error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.LoadErr[path] = err
}

// Load implements playback.Backend
func (b *Backend) Load(path string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if err := b.LoadErr[path]; err != nil {
		return err
	}
	b.Loads = append(b.Loads, path)
	b.Loaded = path
	b.Playing = false
	b.Paused = false
	return nil
}

// Play implements playback.Backend
func (b *Backend) Play() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.Loaded == "" {
		return fmt.Errorf("nothing loaded")
	}
	if b.PlayErr != nil {
		return b.PlayErr
	}
	b.Plays++
	b.Playing = true
	b.Paused = false
	return nil
}

// Pause implements playback.Backend
func (b *Backend) Pause() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.Pauses++
	b.Paused = true
}

// Resume implements playback.Backend
func (b *Backend) Resume() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.Resumes++
	b.Paused = false
}

// SetVolume implements playback.Backend
func (b *Backend) SetVolume(level float64) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.Level = level
}

// Volume implements playback.Backend
func (b *Backend) Volume() float64 {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.Level
}

// Close implements playback.Backend
func (b *Backend) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.Closed = true
	b.Playing = false
	return nil
}
