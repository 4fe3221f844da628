package platform

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
)

// Operating system constants
const (
	OSDarwin  = "darwin"
	OSWindows = "windows"
	OSLinux   = "linux"
)

// Command constants
const (
	OpenCommand     = "open"
	ExplorerCommand = "explorer"
	XDGOpenCommand  = "xdg-open"
)

// Command parameters
const (
	MacOSSelectFlag    = "-R"
	WindowsSelectParam = "/select,"
)

// File manager names
var (
	LinuxFileManagers = []string{"nautilus", "dolphin", "thunar", "nemo", "pcmanfm"}
)

// ErrUnsupportedOS is returned on systems without a known file manager
var ErrUnsupportedOS = errors.New("unsupported operating system")

// OpenFileInManager opens the file in the system file manager and highlights it
func OpenFileInManager(filePath string) error {
	if filePath == "" {
		return fmt.Errorf("file path is empty")
	}

	absPath, err := filepath.Abs(filePath)
	if err != nil {
		return fmt.Errorf("failed to get absolute path: %w", err)
	}

	if _, err := os.Stat(absPath); err != nil {
		return fmt.Errorf("file does not exist: %w", err)
	}

	name, args, err := revealCommand(runtime.GOOS, absPath)
	if err != nil {
		return err
	}

	err = exec.Command(name, args...).Run()
	if err == nil {
		return nil
	}
	if runtime.GOOS == OSLinux {
		return openDirLinuxFallback(filepath.Dir(absPath))
	}
	return fmt.Errorf("%s failed: %w", name, err)
}

// revealCommand returns the command that shows absPath in the file manager.
// Linux has no standard way to select a file, so the parent directory is opened.
func revealCommand(goos, absPath string) (string, []string, error) {
	switch goos {
	case OSDarwin:
		return OpenCommand, []string{MacOSSelectFlag, absPath}, nil
	case OSWindows:
		return ExplorerCommand, []string{WindowsSelectParam, absPath}, nil
	case OSLinux:
		return XDGOpenCommand, []string{filepath.Dir(absPath)}, nil
	default:
		return "", nil, fmt.Errorf("%w: %s", ErrUnsupportedOS, goos)
	}
}

// openDirLinuxFallback tries common file managers when xdg-open is missing
func openDirLinuxFallback(dir string) error {
	for _, fm := range LinuxFileManagers {
		if _, err := exec.LookPath(fm); err == nil {
			return exec.Command(fm, dir).Run()
		}
	}
	return fmt.Errorf("no suitable file manager found")
}
