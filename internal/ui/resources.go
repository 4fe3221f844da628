package ui

import (
	"fyne.io/fyne/v2"
)

const (
	AppIcon = "mp3player.png"
)

// LoadAppIcon loads the window icon from the working directory
func LoadAppIcon() (fyne.Resource, error) {
	return fyne.LoadResourceFromPath(AppIcon)
}
