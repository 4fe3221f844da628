package ui

import (
	"fmt"
	"sort"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/mp3-player/internal/model"
)

// LibraryDialog shows what the startup scan found besides playable tracks:
// files with unsupported extensions and file names shared by several files.
type LibraryDialog struct {
	library      *model.Library
	window       fyne.Window
	localization *Localization
}

// NewLibraryDialog creates a new library report dialog
func NewLibraryDialog(library *model.Library, window fyne.Window, localization *Localization) *LibraryDialog {
	return &LibraryDialog{
		library:      library,
		window:       window,
		localization: localization,
	}
}

// Show displays the report
func (ld *LibraryDialog) Show() {
	report := widget.NewLabel(ld.Report())
	report.Wrapping = fyne.TextWrapWord

	d := dialog.NewCustom(
		ld.localization.GetText(KeyLibraryReport),
		ld.localization.GetText(KeyClose),
		container.NewVScroll(report),
		ld.window,
	)
	d.Resize(fyne.NewSize(ReportDialogWidth, ReportDialogHeight))
	d.Show()
}

// Report renders the scan summary as plain text
func (ld *LibraryDialog) Report() string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("%s%s%d\n", ld.localization.GetText(KeyTracksFound), LabelSeparator, ld.library.Len()))
	b.WriteString(ld.library.Root)
	b.WriteString("\n")

	unsupported := ld.library.Unsupported()
	collisions := ld.library.Collisions()

	if len(unsupported) == 0 && len(collisions) == 0 {
		b.WriteString("\n")
		b.WriteString(ld.localization.GetText(KeyNothingToReport))
		return b.String()
	}

	if len(unsupported) > 0 {
		b.WriteString(fmt.Sprintf("\n%s (%d)\n", ld.localization.GetText(KeyUnsupportedFiles), len(unsupported)))
		for _, track := range unsupported {
			b.WriteString(ListBullet + track.RelPath + "\n")
		}
	}

	if len(collisions) > 0 {
		names := make([]string, 0, len(collisions))
		for name := range collisions {
			names = append(names, name)
		}
		sort.Strings(names)

		b.WriteString(fmt.Sprintf("\n%s (%d)\n", ld.localization.GetText(KeyDuplicateNames), len(names)))
		for _, name := range names {
			b.WriteString(ListBullet + name + "\n")
			for _, rel := range collisions[name] {
				b.WriteString("    " + rel + "\n")
			}
		}
	}

	return b.String()
}
