package ui

// Package ui contains the Fyne-based desktop user interface for the player.
// It wires the track list, the Play/Pause buttons and the volume slider to
// the playback controller and renders the now-playing panel. All UI strings
// are localized via Localization.
