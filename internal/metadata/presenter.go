package metadata

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/gif"  // GIF cover support
	_ "image/jpeg" // JPEG cover support
	_ "image/png"  // PNG cover support
	"os"
	"path/filepath"
	"strings"

	"github.com/dhowden/tag"
	"github.com/disintegration/imaging"
	"go.uber.org/zap"
	_ "golang.org/x/image/webp" // WebP cover support

	"github.com/ytget/mp3-player/internal/model"
)

// Filename convention
const (
	ArtistTitleSeparator = " - "
	UnknownArtist        = "Unknown"
)

// DefaultArtworkSize is the bounding box side for downscaled covers
const DefaultArtworkSize = 200

// ErrNoArtwork is returned when a file carries no embedded picture
var ErrNoArtwork = errors.New("no embedded artwork")

// ParseFilename derives (artist, title) from a path's basename.
// The extension is stripped and the stem is split on the first " - ".
func ParseFilename(path string) (artist, title string) {
	base := filepath.Base(path)
	stem := strings.TrimSuffix(base, filepath.Ext(base))

	if a, t, found := strings.Cut(stem, ArtistTitleSeparator); found {
		return a, t
	}
	return UnknownArtist, stem
}

// Presenter builds the now-playing view for a track
type Presenter struct {
	maxSize int
	logger  *zap.Logger
}

// NewPresenter creates a presenter downscaling covers into maxSize x maxSize
func NewPresenter(maxSize int, logger *zap.Logger) *Presenter {
	if maxSize <= 0 {
		maxSize = DefaultArtworkSize
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Presenter{
		maxSize: maxSize,
		logger:  logger.Named("metadata"),
	}
}

// Present returns title, artist and artwork for path. It never fails:
// artwork problems are logged and leave Artwork nil.
func (p *Presenter) Present(path string) model.NowPlaying {
	artist, title := ParseFilename(path)
	np := model.NowPlaying{
		Title:  title,
		Artist: artist,
	}

	img, err := p.safeArtwork(path)
	if err != nil {
		if errors.Is(err, ErrNoArtwork) {
			p.logger.Debug("No artwork", zap.String("path", path))
		} else {
			p.logger.Warn("Error processing the MP3 file", zap.String("path", path), zap.Error(err))
		}
		return np
	}

	np.Artwork = img
	return np
}

// safeArtwork converts a decoder panic into an error
func (p *Presenter) safeArtwork(path string) (img image.Image, err error) {
	defer func() {
		if r := recover(); r != nil {
			img = nil
			err = fmt.Errorf("artwork extraction panicked: %v", r)
		}
	}()
	return p.Artwork(path)
}

// Artwork reads the embedded picture of path and downscales it to fit the
// presenter's box, preserving aspect ratio. Smaller images are not enlarged.
func (p *Presenter) Artwork(path string) (image.Image, error) {
	data, err := ReadPicture(path)
	if err != nil {
		return nil, err
	}
	return p.Thumbnail(data)
}

// Thumbnail decodes raw image bytes and fits them into the presenter's box
func (p *Presenter) Thumbnail(data []byte) (image.Image, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	bounds := img.Bounds()
	if bounds.Dx() == 0 || bounds.Dy() == 0 {
		return nil, fmt.Errorf("invalid image dimensions: %dx%d", bounds.Dx(), bounds.Dy())
	}

	return imaging.Fit(img, p.maxSize, p.maxSize, imaging.Lanczos), nil
}

// ReadPicture returns the raw bytes of the embedded picture (ID3 APIC)
func ReadPicture(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer f.Close()

	m, err := tag.ReadFrom(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read tags: %w", err)
	}

	pic := m.Picture()
	if pic == nil || len(pic.Data) == 0 {
		return nil, ErrNoArtwork
	}
	return pic.Data, nil
}
