package playback

// Package playback owns the audio output. Controller tracks the
// Idle/Playing/Paused state and forwards commands to an injected Backend;
// BeepBackend is the real implementation on top of the beep speaker.
