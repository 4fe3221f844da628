package model

// PlaybackState represents the state of the playback controller
type PlaybackState string

const (
	// StateIdle means nothing has been started yet
	StateIdle PlaybackState = "Idle"

	// StatePlaying means the loaded track is audible
	StatePlaying PlaybackState = "Playing"

	// StatePaused means the loaded track is held at its current position
	StatePaused PlaybackState = "Paused"
)

// String returns the string representation of PlaybackState
func (ps PlaybackState) String() string {
	return string(ps)
}

// IsPlaying returns true if the track is audible
func (ps PlaybackState) IsPlaying() bool {
	return ps == StatePlaying
}

// IsPaused returns true if the track is held
func (ps PlaybackState) IsPaused() bool {
	return ps == StatePaused
}
