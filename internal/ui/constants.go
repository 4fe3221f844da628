package ui

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Text fragments
const (
	LabelSeparator = ": "
	ListBullet     = "• "
)

// Layout sizing
const (
	ArtworkMinSize     float32 = 200
	ButtonWidth        float32 = 120
	SliderWidth        float32 = 220
	ControlsHeight     float32 = 40
	ReportDialogWidth  float32 = 520
	ReportDialogHeight float32 = 420
)

// Volume slider range
const (
	VolumeMin  = 0.0
	VolumeMax  = 1.0
	VolumeStep = 0.01
)
