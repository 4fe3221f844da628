package model

import (
	"image"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// Track is a single file found by the library scan
type Track struct {
	ID        string `json:"id"`
	Name      string `json:"name"`     // bare filename, shown in the selection list
	Path      string `json:"path"`     // absolute path
	RelPath   string `json:"rel_path"` // path relative to the scanned root
	Ext       string `json:"ext"`      // lowercase extension with leading dot
	Supported bool   `json:"supported"`
}

// NewTrack creates a track entry for a scanned file
func NewTrack(absPath, relPath string) *Track {
	return &Track{
		ID:      uuid.NewString(),
		Name:    filepath.Base(absPath),
		Path:    absPath,
		RelPath: filepath.ToSlash(relPath),
		Ext:     strings.ToLower(filepath.Ext(absPath)),
	}
}

// GetDisplayName returns the name shown in the selection list
func (t *Track) GetDisplayName() string {
	return t.Name
}

// NowPlaying is what the window shows for the selected track.
// A nil Artwork means the art display is cleared.
type NowPlaying struct {
	Title   string
	Artist  string
	Artwork image.Image
}

// HasArtwork reports whether cover art is available for display
func (np NowPlaying) HasArtwork() bool {
	return np.Artwork != nil
}
