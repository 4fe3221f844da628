package ui

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/ytget/mp3-player/internal/config"
	"github.com/ytget/mp3-player/internal/metadata"
	"github.com/ytget/mp3-player/internal/model"
	"github.com/ytget/mp3-player/internal/playback"
	"github.com/ytget/mp3-player/internal/playback/playbacktest"
)

type fixture struct {
	ui      *RootUI
	backend *playbacktest.Backend
	player  *playback.Controller
	library *model.Library
}

func newTestLibrary(root string, rels ...string) *model.Library {
	lib := model.NewLibrary(root)
	for _, rel := range rels {
		track := model.NewTrack(filepath.Join(root, rel), rel)
		track.Supported = track.Ext == ".mp3"
		lib.AddTrack(track)
	}
	return lib
}

func newFixture(t *testing.T, lib *model.Library) *fixture {
	t.Helper()

	a := test.NewApp()
	t.Cleanup(a.Quit)

	logger := zaptest.NewLogger(t)
	backend := playbacktest.NewBackend()
	player := playback.NewController(backend, 0.5, logger)
	window := test.NewWindow(nil)
	t.Cleanup(window.Close)

	ui := NewRootUI(window, lib, player, metadata.NewPresenter(metadata.DefaultArtworkSize, logger), config.NewSettings(), logger)
	return &fixture{ui: ui, backend: backend, player: player, library: lib}
}

func TestRootUI_InitialState(t *testing.T) {
	root := t.TempDir()
	f := newFixture(t, newTestLibrary(root, "Artist - Title.mp3", "justname.mp3"))

	assert.Equal(t, "Music Player", f.ui.window.Title())
	assert.Equal(t, "Song Name: ", f.ui.songLabel.Text)
	assert.Equal(t, "Artist: ", f.ui.artistLabel.Text)
	assert.Equal(t, "Play", f.ui.playBtn.Text)
	assert.Equal(t, "Pause", f.ui.pauseBtn.Text)
	assert.InDelta(t, 0.5, f.ui.volumeSlider.Value, 1e-9)
	assert.False(t, f.ui.notificationContainer.Visible())
	assert.Equal(t, model.StateIdle, f.player.State())
}

func TestRootUI_EmptyLibraryShowsNotification(t *testing.T) {
	root := t.TempDir()
	f := newFixture(t, newTestLibrary(root))

	assert.True(t, f.ui.notificationContainer.Visible())
	assert.Equal(t, "No audio files found in "+root, f.ui.notificationLabel.Text)
}

func TestRootUI_SelectTrackShowsMetadata(t *testing.T) {
	root := t.TempDir()
	f := newFixture(t, newTestLibrary(root, "Artist - Title.mp3", "justname.mp3"))

	f.ui.onTrackSelected(0)

	assert.Equal(t, []string{filepath.Join(root, "Artist - Title.mp3")}, f.backend.Loads)
	assert.True(t, f.backend.Playing)
	assert.Equal(t, model.StatePlaying, f.player.State())
	assert.Equal(t, "Song Name: Title", f.ui.songLabel.Text)
	assert.Equal(t, "Artist: Artist", f.ui.artistLabel.Text)
	assert.Nil(t, f.ui.artImage.Image)

	f.ui.onTrackSelected(1)

	assert.Equal(t, "Song Name: justname", f.ui.songLabel.Text)
	assert.Equal(t, "Artist: Unknown", f.ui.artistLabel.Text)
	assert.Equal(t, filepath.Join(root, "justname.mp3"), f.player.Current())
}

func TestRootUI_LoadFailureKeepsDisplay(t *testing.T) {
	root := t.TempDir()
	lib := newTestLibrary(root, "Artist - Title.mp3", "Broken - Track.mp3")
	f := newFixture(t, lib)

	broken, ok := lib.TrackAt(1)
	require.True(t, ok)
	f.backend.FailLoad(broken.Path, errors.New("bad frame header"))

	f.ui.onTrackSelected(0)
	f.ui.onTrackSelected(1)

	assert.Equal(t, "Song Name: Title", f.ui.songLabel.Text)
	assert.Equal(t, "Artist: Artist", f.ui.artistLabel.Text)
	assert.Equal(t, filepath.Join(root, "Artist - Title.mp3"), f.player.Current())
	assert.Equal(t, model.StatePlaying, f.player.State())

	assert.True(t, f.ui.notificationContainer.Visible())
	assert.True(t, strings.HasPrefix(f.ui.notificationLabel.Text, "Could not play track"))
	assert.Contains(t, f.ui.notificationLabel.Text, "Broken - Track.mp3")

	// A later successful selection clears the notification
	f.ui.onTrackSelected(0)
	assert.False(t, f.ui.notificationContainer.Visible())
}

func TestRootUI_ReselectingTrackRestartsIt(t *testing.T) {
	root := t.TempDir()
	f := newFixture(t, newTestLibrary(root, "Artist - Title.mp3", "justname.mp3"))

	f.ui.trackList.Select(0)
	require.Equal(t, model.StatePlaying, f.player.State())

	test.Tap(f.ui.pauseBtn)
	require.Equal(t, model.StatePaused, f.player.State())

	// Clicking the row that is already playing loads it again
	f.ui.trackList.Select(0)
	assert.Equal(t, model.StatePlaying, f.player.State())
	assert.Equal(t, "Pause", f.ui.pauseBtn.Text)
	assert.Len(t, f.backend.Loads, 2)
	assert.Equal(t, 2, f.backend.Plays)
}

func TestRootUI_FailedRowCanBeRetried(t *testing.T) {
	root := t.TempDir()
	lib := newTestLibrary(root, "Artist - Title.mp3", "Broken - Track.mp3")
	f := newFixture(t, lib)

	broken, ok := lib.TrackAt(1)
	require.True(t, ok)
	f.backend.FailLoad(broken.Path, errors.New("bad frame header"))

	f.ui.trackList.Select(0)
	f.ui.trackList.Select(1)
	require.Equal(t, filepath.Join(root, "Artist - Title.mp3"), f.player.Current())

	f.backend.FailLoad(broken.Path, nil)
	f.ui.trackList.Select(1)

	assert.Equal(t, broken.Path, f.player.Current())
	assert.Equal(t, "Song Name: Track", f.ui.songLabel.Text)
	assert.False(t, f.ui.notificationContainer.Visible())
}

func TestRootUI_PlayingTrackIsTrackedByID(t *testing.T) {
	root := t.TempDir()
	lib := newTestLibrary(root, "a/song.mp3", "b/song.mp3")
	f := newFixture(t, lib)

	_, ok := f.ui.playingTrack()
	assert.False(t, ok)

	f.ui.onTrackSelected(0)
	first, _ := lib.TrackAt(0)
	playing, ok := f.ui.playingTrack()
	require.True(t, ok)
	assert.Equal(t, first.ID, playing.ID)

	// Same display name, different file
	f.ui.onTrackSelected(1)
	second, _ := lib.TrackAt(1)
	playing, ok = f.ui.playingTrack()
	require.True(t, ok)
	assert.Equal(t, second.ID, playing.ID)
	assert.Equal(t, "b/song.mp3", playing.RelPath)
}

func TestRootUI_PauseButtonTogglesLabel(t *testing.T) {
	root := t.TempDir()
	f := newFixture(t, newTestLibrary(root, "Artist - Title.mp3"))

	f.ui.onTrackSelected(0)

	test.Tap(f.ui.pauseBtn)
	assert.Equal(t, model.StatePaused, f.player.State())
	assert.Equal(t, "Resume", f.ui.pauseBtn.Text)
	assert.True(t, f.backend.Paused)

	test.Tap(f.ui.pauseBtn)
	assert.Equal(t, model.StatePlaying, f.player.State())
	assert.Equal(t, "Pause", f.ui.pauseBtn.Text)
	assert.False(t, f.backend.Paused)

	test.Tap(f.ui.pauseBtn)
	test.Tap(f.ui.playBtn)
	assert.Equal(t, model.StatePlaying, f.player.State())
	assert.Equal(t, "Pause", f.ui.pauseBtn.Text)
	assert.Equal(t, 2, f.backend.Resumes)
}

func TestRootUI_ControlsWithoutTrack(t *testing.T) {
	root := t.TempDir()
	f := newFixture(t, newTestLibrary(root, "Artist - Title.mp3"))

	test.Tap(f.ui.playBtn)
	assert.Equal(t, "Select a track first", f.ui.notificationLabel.Text)
	assert.True(t, f.ui.notificationContainer.Visible())

	test.Tap(f.ui.pauseBtn)
	assert.Equal(t, model.StateIdle, f.player.State())
	assert.Equal(t, "Pause", f.ui.pauseBtn.Text)
	assert.Empty(t, f.backend.Loads)
}

func TestRootUI_VolumeSlider(t *testing.T) {
	root := t.TempDir()
	f := newFixture(t, newTestLibrary(root, "Artist - Title.mp3"))

	f.ui.onVolumeChanged(0.25)
	assert.InDelta(t, 0.25, f.player.Volume(), 1e-9)
	assert.InDelta(t, 0.25, f.backend.Level, 1e-9)

	f.ui.onVolumeChanged(0)
	assert.InDelta(t, 0, f.backend.Level, 1e-9)
}

func TestRootUI_LanguageChange(t *testing.T) {
	root := t.TempDir()
	f := newFixture(t, newTestLibrary(root, "Artist - Title.mp3"))

	f.ui.onTrackSelected(0)
	test.Tap(f.ui.pauseBtn)

	f.ui.onLanguageChange("pt")

	assert.Equal(t, "pt", f.ui.settings.GetLanguage())
	assert.Equal(t, "Reprodutor de Música", f.ui.window.Title())
	assert.Equal(t, "Tocar", f.ui.playBtn.Text)
	assert.Equal(t, "Continuar", f.ui.pauseBtn.Text)
	assert.Equal(t, "Música: Title", f.ui.songLabel.Text)
	assert.Equal(t, "Artista: Artist", f.ui.artistLabel.Text)
}

func TestRootUI_LanguageChangeTranslatesNotification(t *testing.T) {
	root := t.TempDir()
	f := newFixture(t, newTestLibrary(root))

	require.Equal(t, "No audio files found in "+root, f.ui.notificationLabel.Text)

	f.ui.onLanguageChange("ru")
	assert.Equal(t, "Аудиофайлы не найдены в "+root, f.ui.notificationLabel.Text)
	assert.True(t, f.ui.notificationContainer.Visible())
}

func TestRootUI_LanguageMenuOrderIsStable(t *testing.T) {
	root := t.TempDir()
	f := newFixture(t, newTestLibrary(root, "Artist - Title.mp3"))

	labels := func() []string {
		menu := f.ui.window.MainMenu()
		require.NotNil(t, menu)
		require.Len(t, menu.Items, 2)
		var out []string
		for _, item := range menu.Items[1].Items {
			out = append(out, item.Label)
		}
		return out
	}

	expected := []string{"English", "Português", "Русский"}
	for i := 0; i < 5; i++ {
		assert.Equal(t, expected, labels())
		f.ui.onLanguageChange([]string{"ru", "pt", "en"}[i%3])
	}
}

func TestRootUI_RevealWithoutTrack(t *testing.T) {
	root := t.TempDir()
	f := newFixture(t, newTestLibrary(root, "Artist - Title.mp3"))

	f.ui.onRevealCurrent()
	assert.Equal(t, "Select a track first", f.ui.notificationLabel.Text)
}

func TestLibraryDialog_Report(t *testing.T) {
	root := t.TempDir()
	lib := newTestLibrary(root, "a/song.mp3", "b/song.mp3", "cover.jpg", "Artist - Title.mp3")

	report := NewLibraryDialog(lib, nil, NewLocalization()).Report()

	assert.Contains(t, report, "Tracks: 3")
	assert.Contains(t, report, root)
	assert.Contains(t, report, "Unsupported files (1)")
	assert.Contains(t, report, ListBullet+"cover.jpg")
	assert.Contains(t, report, "Duplicate file names (1)")
	assert.Contains(t, report, ListBullet+"song.mp3")
	assert.Contains(t, report, "a/song.mp3")
	assert.Contains(t, report, "b/song.mp3")
	assert.NotContains(t, report, "uniquely named")
}

func TestLibraryDialog_ReportClean(t *testing.T) {
	root := t.TempDir()
	lib := newTestLibrary(root, "one.mp3", "two.mp3")

	report := NewLibraryDialog(lib, nil, NewLocalization()).Report()

	assert.Contains(t, report, "Tracks: 2")
	assert.Contains(t, report, "All files are playable and uniquely named.")
}

func TestLocalization_Fallbacks(t *testing.T) {
	l := NewLocalization()

	l.SetLanguage("system")
	assert.Equal(t, "en", l.GetCurrentLanguage())

	l.SetLanguage("ru")
	assert.Equal(t, "Пауза", l.GetText(KeyPause))

	l.SetLanguage("xx")
	assert.Equal(t, "ru", l.GetCurrentLanguage())

	assert.Equal(t, "missing_key", l.GetText("missing_key"))
}
