package ui

import (
	"errors"
	"fmt"
	"sort"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"go.uber.org/zap"

	"github.com/ytget/mp3-player/internal/config"
	"github.com/ytget/mp3-player/internal/metadata"
	"github.com/ytget/mp3-player/internal/model"
	"github.com/ytget/mp3-player/internal/platform"
	"github.com/ytget/mp3-player/internal/playback"
)

// RootUI represents the main player window
type RootUI struct {
	window       fyne.Window
	library      *model.Library
	player       playback.Player
	presenter    *metadata.Presenter
	settings     *config.Settings
	localization *Localization
	logger       *zap.Logger

	artImage     *canvas.Image
	songLabel    *widget.Label
	artistLabel  *widget.Label
	trackList    *widget.List
	playBtn      *widget.Button
	pauseBtn     *widget.Button
	volumeLabel  *widget.Label
	volumeSlider *widget.Slider

	// Notification panel
	notificationContainer *fyne.Container
	notificationLabel     *widget.Label
	notification          func() string // renders the shown message in the current language

	playingID  string // ID of the track last loaded successfully
	nowPlaying model.NowPlaying
}

// NewRootUI creates and initializes the main UI
func NewRootUI(
	window fyne.Window,
	library *model.Library,
	player playback.Player,
	presenter *metadata.Presenter,
	settings *config.Settings,
	logger *zap.Logger,
) *RootUI {
	if logger == nil {
		logger = zap.NewNop()
	}

	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	ui := &RootUI{
		window:       window,
		library:      library,
		player:       player,
		presenter:    presenter,
		settings:     settings,
		localization: localization,
		logger:       logger.Named("ui"),
	}

	window.SetTitle(localization.GetText(KeyAppTitle))

	ui.setupUI()

	ui.logger.Info("UI setup completed", zap.Int("tracks", library.Len()))
	return ui
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	ui.createMenu()

	// Album art
	ui.artImage = canvas.NewImageFromImage(nil)
	ui.artImage.FillMode = canvas.ImageFillContain
	ui.artImage.SetMinSize(fyne.NewSize(ArtworkMinSize, ArtworkMinSize))

	// Song and artist details
	ui.songLabel = widget.NewLabel("")
	ui.songLabel.Alignment = fyne.TextAlignCenter
	ui.artistLabel = widget.NewLabel("")
	ui.artistLabel.Alignment = fyne.TextAlignCenter
	ui.showNowPlaying(model.NowPlaying{})

	// Notification panel under the details (hidden by default)
	ui.notificationLabel = widget.NewLabel("")
	ui.notificationLabel.Wrapping = fyne.TextWrapWord
	ui.notificationContainer = container.NewPadded(ui.notificationLabel)
	ui.notificationContainer.Hide()

	details := container.NewVBox(
		container.NewCenter(ui.artImage),
		ui.songLabel,
		ui.artistLabel,
		ui.notificationContainer,
	)

	// Track list
	ui.trackList = widget.NewList(
		func() int {
			return ui.library.Len()
		},
		func() fyne.CanvasObject {
			return widget.NewLabel("placeholder")
		},
		ui.updateTrackItem,
	)
	ui.trackList.OnSelected = ui.onTrackSelected

	// Buttons
	ui.playBtn = widget.NewButton(ui.localization.GetText(KeyPlay), ui.onPlay)
	ui.playBtn.Importance = widget.HighImportance
	ui.pauseBtn = widget.NewButton(ui.localization.GetText(KeyPause), ui.onPauseResume)

	// Volume control
	ui.volumeLabel = widget.NewLabel(ui.localization.GetText(KeyVolume))
	ui.volumeSlider = widget.NewSlider(VolumeMin, VolumeMax)
	ui.volumeSlider.Step = VolumeStep
	ui.volumeSlider.SetValue(ui.player.Volume())
	ui.volumeSlider.OnChanged = ui.onVolumeChanged

	controls := container.NewHBox(
		container.NewGridWrap(fyne.NewSize(ButtonWidth, ControlsHeight), ui.playBtn),
		container.NewGridWrap(fyne.NewSize(ButtonWidth, ControlsHeight), ui.pauseBtn),
		ui.volumeLabel,
		container.NewGridWrap(fyne.NewSize(SliderWidth, ControlsHeight), ui.volumeSlider),
	)

	content := container.NewBorder(
		details,                           // top
		container.NewCenter(controls),     // bottom
		nil,                               // left
		nil,                               // right
		container.NewPadded(ui.trackList), // center
	)

	ui.window.SetContent(content)

	if ui.library.Len() == 0 {
		root := ui.library.Root
		ui.showNotification(func() string {
			return ui.localization.GetText(KeyNoTracksFound) + " " + root
		})
	}
	ui.refreshControls()
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	reportItem := fyne.NewMenuItem(ui.localization.GetText(KeyLibraryReport), ui.onShowLibraryReport)
	revealItem := fyne.NewMenuItem(ui.localization.GetText(KeyShowInFolder), ui.onRevealCurrent)

	languages := ui.localization.GetAvailableLanguages()
	codes := make([]string, 0, len(languages))
	for code := range languages {
		codes = append(codes, code)
	}
	sort.Strings(codes)

	languageMenu := fyne.NewMenu(ui.localization.GetText(KeyLanguage))
	for _, code := range codes {
		langCode := code // Capture for closure
		langItem := fyne.NewMenuItem(languages[code], func() {
			ui.onLanguageChange(langCode)
		})
		if ui.localization.GetCurrentLanguage() == code {
			langItem.Checked = true
		}
		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	mainMenu := fyne.NewMainMenu(
		fyne.NewMenu(ui.localization.GetText(KeyFile), reportItem, revealItem),
		languageMenu,
	)

	ui.window.SetMainMenu(mainMenu)
}

// updateTrackItem renders one row of the track list
func (ui *RootUI) updateTrackItem(id widget.ListItemID, item fyne.CanvasObject) {
	track, ok := ui.library.TrackAt(id)
	if !ok {
		return
	}
	if label, ok := item.(*widget.Label); ok {
		label.TextStyle = fyne.TextStyle{Bold: track.ID == ui.playingID}
		label.SetText(track.GetDisplayName())
	}
}

// onTrackSelected loads and plays the selected track, then shows its metadata.
// A track that fails to load leaves the previous display and playback untouched.
// The list selection is always cleared so that clicking the same row again
// reloads it; the playing row is marked bold instead.
func (ui *RootUI) onTrackSelected(id widget.ListItemID) {
	defer ui.trackList.UnselectAll()

	track, ok := ui.library.TrackAt(id)
	if !ok {
		return
	}

	if err := ui.player.LoadAndPlay(track.Path); err != nil {
		ui.logger.Warn("Track selection failed", zap.String("track", track.RelPath), zap.Error(err))
		name := track.Name
		ui.showNotification(func() string {
			return ui.localization.GetText(KeyErrorLoadingTrack) + LabelSeparator + name
		})
		ui.refreshControls()
		return
	}

	ui.hideNotification()
	ui.playingID = track.ID
	ui.trackList.Refresh()
	ui.showNowPlaying(ui.presenter.Present(track.Path))
	ui.refreshControls()
}

// playingTrack returns the track last loaded successfully
func (ui *RootUI) playingTrack() (*model.Track, bool) {
	if ui.playingID == "" {
		return nil, false
	}
	return ui.library.Get(ui.playingID)
}

// onPlay handles the Play button
func (ui *RootUI) onPlay() {
	if err := ui.player.Play(); err != nil {
		ui.reportPlaybackError(err)
	}
	ui.refreshControls()
}

// onPauseResume handles the Pause button, which resumes when already paused
func (ui *RootUI) onPauseResume() {
	if err := ui.player.PauseOrResume(); err != nil {
		ui.reportPlaybackError(err)
	}
	ui.refreshControls()
}

// onVolumeChanged forwards slider moves to the player
func (ui *RootUI) onVolumeChanged(value float64) {
	ui.player.SetVolume(value)
}

func (ui *RootUI) reportPlaybackError(err error) {
	if errors.Is(err, playback.ErrNoTrack) {
		ui.showNotification(ui.textFor(KeySelectTrackFirst))
		return
	}
	ui.logger.Warn("Playback command failed", zap.Error(err))
	ui.showNotification(func() string {
		return fmt.Sprintf("%s%s%v", ui.localization.GetText(KeyErrorLoadingTrack), LabelSeparator, err)
	})
}

// showNowPlaying updates labels and artwork; a nil artwork clears the image
func (ui *RootUI) showNowPlaying(np model.NowPlaying) {
	ui.nowPlaying = np

	title, artist := np.Title, np.Artist
	ui.songLabel.SetText(ui.localization.GetText(KeySongName) + LabelSeparator + title)
	ui.artistLabel.SetText(ui.localization.GetText(KeyArtist) + LabelSeparator + artist)

	if ui.artImage == nil {
		return
	}
	ui.artImage.Image = np.Artwork
	ui.artImage.Resource = nil
	ui.artImage.File = ""
	ui.artImage.Refresh()
}

// refreshControls makes the pause button label follow the playback state
func (ui *RootUI) refreshControls() {
	key := KeyPause
	if ui.player.State().IsPaused() {
		key = KeyResume
	}
	ui.pauseBtn.SetText(ui.localization.GetText(key))
}

// textFor renders a localized text lazily
func (ui *RootUI) textFor(key string) func() string {
	return func() string {
		return ui.localization.GetText(key)
	}
}

// showNotification displays a message in the notification panel.
// render is called again when the language changes.
func (ui *RootUI) showNotification(render func() string) {
	if ui.notificationLabel == nil || ui.notificationContainer == nil {
		return
	}
	ui.notification = render
	ui.notificationLabel.SetText(render())
	ui.notificationContainer.Show()
	ui.notificationContainer.Refresh()
}

// hideNotification hides the notification panel
func (ui *RootUI) hideNotification() {
	ui.notification = nil
	if ui.notificationContainer == nil {
		return
	}
	ui.notificationContainer.Hide()
}

// onShowLibraryReport shows unsupported files and duplicate names
func (ui *RootUI) onShowLibraryReport() {
	NewLibraryDialog(ui.library, ui.window, ui.localization).Show()
}

// onRevealCurrent opens the folder of the current track in the file manager
func (ui *RootUI) onRevealCurrent() {
	track, ok := ui.playingTrack()
	if !ok {
		ui.showNotification(ui.textFor(KeySelectTrackFirst))
		return
	}

	if err := platform.OpenFileInManager(track.Path); err != nil {
		ui.logger.Warn("Failed to reveal file", zap.String("path", track.Path), zap.Error(err))
		ui.showNotification(func() string {
			return ui.localization.GetText(KeyErrorOpeningFile) + LabelSeparator + err.Error()
		})
	}
}

// onLanguageChange handles language change
func (ui *RootUI) onLanguageChange(langCode string) {
	ui.localization.SetLanguage(langCode)
	ui.settings.SetLanguage(langCode)

	ui.refreshUITexts()

	// Recreate menu to update checkmarks
	ui.createMenu()
}

// refreshUITexts updates all UI texts with current language
func (ui *RootUI) refreshUITexts() {
	ui.window.SetTitle(ui.localization.GetText(KeyAppTitle))
	ui.playBtn.SetText(ui.localization.GetText(KeyPlay))
	ui.volumeLabel.SetText(ui.localization.GetText(KeyVolume))
	ui.showNowPlaying(ui.nowPlaying)
	ui.refreshControls()
	if ui.notification != nil {
		ui.notificationLabel.SetText(ui.notification())
	}
}
