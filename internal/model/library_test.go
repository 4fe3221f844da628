package model

import (
	"image"
	"testing"
)

func newTestTrack(abs, rel string, supported bool) *Track {
	track := NewTrack(abs, rel)
	track.Supported = supported
	return track
}

func TestNewTrack(t *testing.T) {
	track := NewTrack("/music/Rock/Artist - Title.MP3", "Rock/Artist - Title.MP3")

	if track.ID == "" {
		t.Error("Expected track ID to be set")
	}
	if track.Name != "Artist - Title.MP3" {
		t.Errorf("Expected name 'Artist - Title.MP3', got '%s'", track.Name)
	}
	if track.Ext != ".mp3" {
		t.Errorf("Expected lowercase ext '.mp3', got '%s'", track.Ext)
	}
	if track.GetDisplayName() != track.Name {
		t.Errorf("Display name should equal filename, got '%s'", track.GetDisplayName())
	}

	other := NewTrack("/music/Rock/Artist - Title.MP3", "Rock/Artist - Title.MP3")
	if other.ID == track.ID {
		t.Error("Expected unique track IDs")
	}
}

func TestLibrary_AddTrack(t *testing.T) {
	lib := NewLibrary("/music")

	a := newTestTrack("/music/a.mp3", "a.mp3", true)
	cover := newTestTrack("/music/cover.jpg", "cover.jpg", false)
	b := newTestTrack("/music/sub/b.mp3", "sub/b.mp3", true)

	lib.AddTrack(a)
	lib.AddTrack(cover)
	lib.AddTrack(b)

	if len(lib.Files()) != 3 {
		t.Errorf("Expected 3 files, got %d", len(lib.Files()))
	}
	if lib.Len() != 2 {
		t.Errorf("Expected 2 playable tracks, got %d", lib.Len())
	}
	if len(lib.Unsupported()) != 1 || lib.Unsupported()[0] != cover {
		t.Errorf("Expected cover.jpg to be unsupported, got %v", lib.Unsupported())
	}

	first, ok := lib.TrackAt(0)
	if !ok || first != a {
		t.Error("Expected first track to be a.mp3")
	}
	second, ok := lib.TrackAt(1)
	if !ok || second != b {
		t.Error("Expected second track to be sub/b.mp3")
	}
	if _, ok := lib.TrackAt(2); ok {
		t.Error("Expected out of range index to fail")
	}
	if _, ok := lib.TrackAt(-1); ok {
		t.Error("Expected negative index to fail")
	}

	if got, ok := lib.Get(b.ID); !ok || got != b {
		t.Error("Expected lookup by ID to find b.mp3")
	}
	if _, ok := lib.Get("missing"); ok {
		t.Error("Expected lookup of unknown ID to fail")
	}
}

func TestLibrary_Collisions(t *testing.T) {
	lib := NewLibrary("/music")

	first := newTestTrack("/music/one/song.mp3", "one/song.mp3", true)
	second := newTestTrack("/music/two/song.mp3", "two/song.mp3", true)
	lib.AddTrack(first)
	lib.AddTrack(second)
	lib.AddTrack(newTestTrack("/music/other.mp3", "other.mp3", true))

	// Both stay selectable
	if lib.Len() != 3 {
		t.Errorf("Expected 3 tracks, got %d", lib.Len())
	}

	// Name lookup keeps last-write-wins
	path, ok := lib.PathFor("song.mp3")
	if !ok || path != second.Path {
		t.Errorf("Expected PathFor to return later file %s, got %s", second.Path, path)
	}

	if !lib.HasCollisions() {
		t.Fatal("Expected collisions to be detected")
	}
	collisions := lib.Collisions()
	if len(collisions) != 1 {
		t.Fatalf("Expected 1 collision, got %d", len(collisions))
	}
	paths := collisions["song.mp3"]
	if len(paths) != 2 || paths[0] != "one/song.mp3" || paths[1] != "two/song.mp3" {
		t.Errorf("Unexpected collision paths: %v", paths)
	}
}

func TestLibrary_Empty(t *testing.T) {
	lib := NewLibrary("/missing")

	if lib.Len() != 0 || len(lib.Files()) != 0 {
		t.Error("Expected empty library")
	}
	if lib.HasCollisions() {
		t.Error("Empty library should not report collisions")
	}
	if _, ok := lib.PathFor("anything.mp3"); ok {
		t.Error("Expected PathFor to fail on empty library")
	}
}

func TestNowPlaying_HasArtwork(t *testing.T) {
	np := NowPlaying{Title: "Title", Artist: "Artist"}
	if np.HasArtwork() {
		t.Error("Expected no artwork")
	}

	np.Artwork = image.NewRGBA(image.Rect(0, 0, 1, 1))
	if !np.HasArtwork() {
		t.Error("Expected artwork to be present")
	}
}
