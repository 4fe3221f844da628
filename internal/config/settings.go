package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// AppName is used for the config directory and the environment prefix
const AppName = "mp3player"

// EnvPrefix is the prefix for environment overrides, e.g. MP3PLAYER_LIBRARY_DIR
const EnvPrefix = "MP3PLAYER"

// Settings keys
const (
	KeyLibraryDir        = "library.dir"
	KeyLibraryExtensions = "library.extensions"
	KeyVolume            = "playback.volume"
	KeyArtworkSize       = "artwork.size"
	KeyWindowWidth       = "window.width"
	KeyWindowHeight      = "window.height"
	KeyLanguage          = "ui.language"
	KeyLogLevel          = "log.level"
	KeyLogDevelopment    = "log.development"
)

// Default values
const (
	DefaultLibraryDir     = "audio"
	DefaultVolume         = 0.5
	DefaultArtworkSize    = 200
	DefaultWindowWidth    = 1024
	DefaultWindowHeight   = 768
	DefaultLanguage       = "system"
	DefaultLogLevel       = "info"
	DefaultLogDevelopment = false
)

// Artwork size bounds in pixels
const (
	MinArtworkSize = 16
	MaxArtworkSize = 2048
)

// DefaultExtensions lists the playable file extensions
var DefaultExtensions = []string{".mp3"}

// ErrInvalidConfig is returned by Load when a config file exists but cannot be parsed.
// The returned Settings are still usable and fall back to defaults.
var ErrInvalidConfig = errors.New("invalid config file")

// Settings manages application configuration
type Settings struct {
	v *viper.Viper
}

// NewSettings creates a settings manager populated with defaults only
func NewSettings() *Settings {
	v := viper.New()
	v.SetDefault(KeyLibraryDir, DefaultLibraryDir)
	v.SetDefault(KeyLibraryExtensions, DefaultExtensions)
	v.SetDefault(KeyVolume, DefaultVolume)
	v.SetDefault(KeyArtworkSize, DefaultArtworkSize)
	v.SetDefault(KeyWindowWidth, DefaultWindowWidth)
	v.SetDefault(KeyWindowHeight, DefaultWindowHeight)
	v.SetDefault(KeyLanguage, DefaultLanguage)
	v.SetDefault(KeyLogLevel, DefaultLogLevel)
	v.SetDefault(KeyLogDevelopment, DefaultLogDevelopment)
	return &Settings{v: v}
}

// Load builds settings from command-line args, environment and an optional
// config.yaml. Precedence: flags, env, config file, defaults.
func Load(args []string) (*Settings, error) {
	s := NewSettings()

	fs := pflag.NewFlagSet(AppName, pflag.ContinueOnError)
	configPath := fs.String("config", "", "path to a config file")
	fs.String("dir", DefaultLibraryDir, "directory to scan for audio files")
	fs.Float64("volume", DefaultVolume, "initial volume in range [0,1]")
	fs.String("log-level", DefaultLogLevel, "log level (debug, info, warn, error)")
	fs.Bool("dev", DefaultLogDevelopment, "human-readable development logging")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if err := s.BindFlags(fs); err != nil {
		return nil, err
	}

	s.v.SetEnvPrefix(EnvPrefix)
	s.v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	s.v.AutomaticEnv()

	if *configPath != "" {
		s.v.SetConfigFile(*configPath)
	} else {
		s.v.SetConfigName("config")
		s.v.SetConfigType("yaml")
		if dir := configDir(); dir != "" {
			s.v.AddConfigPath(dir)
		}
		s.v.AddConfigPath(".")
	}

	if err := s.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return s, nil
		}
		// An explicit --config that does not exist is reported as well
		return s, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	return s, nil
}

// BindFlags maps the known command-line flags onto settings keys
func (s *Settings) BindFlags(fs *pflag.FlagSet) error {
	bindings := map[string]string{
		"dir":       KeyLibraryDir,
		"volume":    KeyVolume,
		"log-level": KeyLogLevel,
		"dev":       KeyLogDevelopment,
	}
	for name, key := range bindings {
		flag := fs.Lookup(name)
		if flag == nil {
			continue
		}
		if err := s.v.BindPFlag(key, flag); err != nil {
			return fmt.Errorf("failed to bind flag %s: %w", name, err)
		}
	}
	return nil
}

// configDir returns $XDG_CONFIG_HOME/mp3player, falling back to ~/.config/mp3player
func configDir() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(homeDir, ".config")
	}
	return filepath.Join(configHome, AppName)
}

// ConfigFileUsed returns the config file that was read, if any
func (s *Settings) ConfigFileUsed() string {
	return s.v.ConfigFileUsed()
}

// GetLibraryDirectory returns the directory scanned for audio files
func (s *Settings) GetLibraryDirectory() string {
	dir := strings.TrimSpace(s.v.GetString(KeyLibraryDir))
	if dir == "" {
		return DefaultLibraryDir
	}
	return dir
}

// GetPlayableExtensions returns lowercase extensions with a leading dot
func (s *Settings) GetPlayableExtensions() []string {
	raw := s.v.GetStringSlice(KeyLibraryExtensions)
	exts := make([]string, 0, len(raw))
	for _, ext := range raw {
		ext = strings.ToLower(strings.TrimSpace(ext))
		if ext == "" {
			continue
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		exts = append(exts, ext)
	}
	if len(exts) == 0 {
		return append([]string(nil), DefaultExtensions...)
	}
	return exts
}

// GetDefaultVolume returns the startup volume in range [0,1]
func (s *Settings) GetDefaultVolume() float64 {
	return clampVolume(s.v.GetFloat64(KeyVolume))
}

func clampVolume(volume float64) float64 {
	if volume < 0 {
		return 0
	}
	if volume > 1 {
		return 1
	}
	return volume
}

// GetArtworkSize returns the bounding box side used to downscale cover art
func (s *Settings) GetArtworkSize() int {
	size := s.v.GetInt(KeyArtworkSize)
	if size <= 0 {
		return DefaultArtworkSize
	}
	if size < MinArtworkSize {
		return MinArtworkSize
	}
	if size > MaxArtworkSize {
		return MaxArtworkSize
	}
	return size
}

// GetWindowSize returns the initial window size
func (s *Settings) GetWindowSize() (width, height float32) {
	w := s.v.GetInt(KeyWindowWidth)
	if w <= 0 {
		w = DefaultWindowWidth
	}
	h := s.v.GetInt(KeyWindowHeight)
	if h <= 0 {
		h = DefaultWindowHeight
	}
	return float32(w), float32(h)
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.v.GetString(KeyLanguage)
	if lang == "" {
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.v.Set(KeyLanguage, lang)
}

// GetLogLevel returns the configured log level name
func (s *Settings) GetLogLevel() string {
	return s.v.GetString(KeyLogLevel)
}

// IsDevelopment reports whether development logging is enabled
func (s *Settings) IsDevelopment() bool {
	return s.v.GetBool(KeyLogDevelopment)
}
