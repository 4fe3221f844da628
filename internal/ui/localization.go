package ui

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle          = "app_title"
	KeyPlay              = "play"
	KeyPause             = "pause"
	KeyResume            = "resume"
	KeySongName          = "song_name"
	KeyArtist            = "artist"
	KeyVolume            = "volume"
	KeyFile              = "file"
	KeyLanguage          = "language"
	KeyLibraryReport     = "library_report"
	KeyShowInFolder      = "show_in_folder"
	KeyClose             = "close"
	KeyErrorLoadingTrack = "error_loading_track"
	KeyErrorOpeningFile  = "error_opening_file"
	KeySelectTrackFirst  = "select_track_first"
	KeyNoTracksFound     = "no_tracks_found"
	KeyTracksFound       = "tracks_found"
	KeyUnsupportedFiles  = "unsupported_files"
	KeyDuplicateNames    = "duplicate_names"
	KeyNothingToReport   = "nothing_to_report"
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: "en",
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language
func (l *Localization) SetLanguage(lang string) {
	if lang == "system" {
		// Use system locale - simplified to English for now
		lang = "en"
	}

	if _, exists := l.texts[lang]; exists {
		l.currentLanguage = lang
	}
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Fallback to English
	if texts, exists := l.texts["en"]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Final fallback - return key itself
	return key
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// GetAvailableLanguages returns map of available languages with their display names
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		"en": "English",
		"ru": "Русский",
		"pt": "Português",
	}
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	l.texts["en"] = map[string]string{
		KeyAppTitle:          "Music Player",
		KeyPlay:              "Play",
		KeyPause:             "Pause",
		KeyResume:            "Resume",
		KeySongName:          "Song Name",
		KeyArtist:            "Artist",
		KeyVolume:            "Volume",
		KeyFile:              "File",
		KeyLanguage:          "Language",
		KeyLibraryReport:     "Library Report",
		KeyShowInFolder:      "Show in Folder",
		KeyClose:             "Close",
		KeyErrorLoadingTrack: "Could not play track",
		KeyErrorOpeningFile:  "Error opening file",
		KeySelectTrackFirst:  "Select a track first",
		KeyNoTracksFound:     "No audio files found in",
		KeyTracksFound:       "Tracks",
		KeyUnsupportedFiles:  "Unsupported files",
		KeyDuplicateNames:    "Duplicate file names",
		KeyNothingToReport:   "All files are playable and uniquely named.",
	}

	l.texts["ru"] = map[string]string{
		KeyAppTitle:          "Музыкальный плеер",
		KeyPlay:              "Играть",
		KeyPause:             "Пауза",
		KeyResume:            "Продолжить",
		KeySongName:          "Песня",
		KeyArtist:            "Исполнитель",
		KeyVolume:            "Громкость",
		KeyFile:              "Файл",
		KeyLanguage:          "Язык",
		KeyLibraryReport:     "Отчёт библиотеки",
		KeyShowInFolder:      "Показать в папке",
		KeyClose:             "Закрыть",
		KeyErrorLoadingTrack: "Не удалось воспроизвести трек",
		KeyErrorOpeningFile:  "Ошибка открытия файла",
		KeySelectTrackFirst:  "Сначала выберите трек",
		KeyNoTracksFound:     "Аудиофайлы не найдены в",
		KeyTracksFound:       "Треки",
		KeyUnsupportedFiles:  "Неподдерживаемые файлы",
		KeyDuplicateNames:    "Повторяющиеся имена файлов",
		KeyNothingToReport:   "Все файлы воспроизводимы и имеют уникальные имена.",
	}

	l.texts["pt"] = map[string]string{
		KeyAppTitle:          "Reprodutor de Música",
		KeyPlay:              "Tocar",
		KeyPause:             "Pausar",
		KeyResume:            "Continuar",
		KeySongName:          "Música",
		KeyArtist:            "Artista",
		KeyVolume:            "Volume",
		KeyFile:              "Arquivo",
		KeyLanguage:          "Idioma",
		KeyLibraryReport:     "Relatório da Biblioteca",
		KeyShowInFolder:      "Mostrar na Pasta",
		KeyClose:             "Fechar",
		KeyErrorLoadingTrack: "Não foi possível tocar a faixa",
		KeyErrorOpeningFile:  "Erro ao abrir arquivo",
		KeySelectTrackFirst:  "Selecione uma faixa primeiro",
		KeyNoTracksFound:     "Nenhum arquivo de áudio encontrado em",
		KeyTracksFound:       "Faixas",
		KeyUnsupportedFiles:  "Arquivos não suportados",
		KeyDuplicateNames:    "Nomes de arquivo duplicados",
		KeyNothingToReport:   "Todos os arquivos são reproduzíveis e têm nomes únicos.",
	}
}
