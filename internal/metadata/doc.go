package metadata

// Package metadata derives what the window shows for a selected track:
// artist and title from the filename convention "Artist - Title.ext", and
// the embedded cover picture downscaled for display.
