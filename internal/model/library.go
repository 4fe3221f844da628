package model

// Library is the insertion-ordered result of a library scan
type Library struct {
	Root string `json:"root"` // absolute path of the scanned directory

	files       []*Track
	tracks      []*Track
	unsupported []*Track
	byID        map[string]*Track
	byName      map[string]*Track
	names       map[string][]string // display name -> relative paths, scan order
}

// NewLibrary creates an empty library for the given root
func NewLibrary(root string) *Library {
	return &Library{
		Root:   root,
		byID:   make(map[string]*Track),
		byName: make(map[string]*Track),
		names:  make(map[string][]string),
	}
}

// AddTrack appends a scanned file. A later file with the same display name
// replaces the earlier one in the name lookup; both stay listed.
func (l *Library) AddTrack(track *Track) {
	l.files = append(l.files, track)
	if track.Supported {
		l.tracks = append(l.tracks, track)
	} else {
		l.unsupported = append(l.unsupported, track)
	}
	l.byID[track.ID] = track
	l.byName[track.Name] = track
	l.names[track.Name] = append(l.names[track.Name], track.RelPath)
}

// Files returns every scanned file in scan order
func (l *Library) Files() []*Track {
	return l.files
}

// Tracks returns the playable files in scan order
func (l *Library) Tracks() []*Track {
	return l.tracks
}

// Unsupported returns files with a non-playable extension
func (l *Library) Unsupported() []*Track {
	return l.unsupported
}

// Len returns the number of playable tracks
func (l *Library) Len() int {
	return len(l.tracks)
}

// TrackAt returns the playable track at index i
func (l *Library) TrackAt(i int) (*Track, bool) {
	if i < 0 || i >= len(l.tracks) {
		return nil, false
	}
	return l.tracks[i], true
}

// Get returns a track by ID
func (l *Library) Get(id string) (*Track, bool) {
	track, exists := l.byID[id]
	return track, exists
}

// PathFor resolves a display name to an absolute path (last scanned wins)
func (l *Library) PathFor(name string) (string, bool) {
	track, exists := l.byName[name]
	if !exists {
		return "", false
	}
	return track.Path, true
}

// Collisions returns display names shared by more than one file
func (l *Library) Collisions() map[string][]string {
	collisions := make(map[string][]string)
	for name, paths := range l.names {
		if len(paths) > 1 {
			collisions[name] = append([]string(nil), paths...)
		}
	}
	return collisions
}

// HasCollisions checks if any display name is ambiguous
func (l *Library) HasCollisions() bool {
	for _, paths := range l.names {
		if len(paths) > 1 {
			return true
		}
	}
	return false
}
