package playback

import "github.com/ytget/mp3-player/internal/model"

// Backend is the audio output capability set used by the controller.
// At most one track is loaded at a time; loading replaces the previous one.
type Backend interface {
	// Load decodes path and makes it the current track. On error the
	// previously loaded track is left untouched.
	Load(path string) error

	// Play starts the loaded track from the beginning, once.
	Play() error

	Pause()
	Resume()

	// SetVolume sets a linear gain in range [0,1]
	SetVolume(level float64)
	Volume() float64

	Close() error
}

// Player defines the interface the UI drives.
type Player interface {
	LoadAndPlay(path string) error
	Play() error
	PauseOrResume() error
	SetVolume(level float64)
	Volume() float64
	State() model.PlaybackState
	Current() string
}
