package model

// Package model defines domain data structures used across the app: scanned
// tracks, the library they form, playback state and the now-playing view.
// Structures are designed for direct binding in the UI and explicit state
// transitions.
