package platform

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
)

// Operating system constants
const (
	OSDarwin  = "darwin"
	OSWindows = "windows"
	OSLinux   = "linux"
	OSAndroid = "android"
)

// File permissions
const (
	DefaultDirPermissions = 0755
)

// ResourceDirName is the bundled resource directory next to the executable.
const ResourceDirName = "assets"

// Command constants
const (
	OpenCommand     = "open"
	ExplorerCommand = "explorer"
	XDGOpenCommand  = "xdg-open"
)

// File manager names
var (
	LinuxFileManagers = []string{"nautilus", "dolphin", "thunar", "nemo", "pcmanfm"}
)

// ThumbnailExtensions are the sidecar image formats tried, in order.
var ThumbnailExtensions = []string{".png", ".jpg", ".jpeg", ".webp", ".bmp"}

// ErrNotDirectory is returned when a resource path is not a directory.
var ErrNotDirectory = errors.New("not a directory")

// GetResourceDir returns the bundled resource directory: "assets" next to the
// executable when it exists, otherwise "assets" under the working directory.
func GetResourceDir() string {
	if exe, err := os.Executable(); err == nil {
		candidate := filepath.Join(filepath.Dir(exe), ResourceDirName)
		if info, err := os.Stat(candidate); err == nil && info.IsDir() {
			return candidate
		}
	}
	if wd, err := os.Getwd(); err == nil {
		return filepath.Join(wd, ResourceDirName)
	}
	return ResourceDirName
}

// HasExtension reports whether filename ends with ext, ignoring case.
// ext may be given with or without the leading dot.
func HasExtension(filename, ext string) bool {
	ext = NormalizeExtension(ext)
	if ext == "" || len(filename) <= len(ext) {
		return false
	}
	return strings.EqualFold(filename[len(filename)-len(ext):], ext)
}

// TrimExtension strips ext (case-insensitive) from filename.
func TrimExtension(filename, ext string) string {
	if !HasExtension(filename, ext) {
		return filename
	}
	return filename[:len(filename)-len(NormalizeExtension(ext))]
}

// NormalizeExtension lowercases ext and ensures a leading dot.
func NormalizeExtension(ext string) string {
	ext = strings.ToLower(strings.TrimSpace(ext))
	if ext == "" {
		return ""
	}
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return ext
}

// ListFilesWithExtension returns the names of regular files in dir whose
// extension matches ext, in directory listing order.
func ListFilesWithExtension(dir, ext string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read resource dir: %w", err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if HasExtension(entry.Name(), ext) {
			names = append(names, entry.Name())
		}
	}
	return names, nil
}

// FindSidecar looks for a regular file named base+ext in dir for each ext in
// order, returning the first match.
func FindSidecar(dir, base string, exts []string) (string, bool) {
	for _, ext := range exts {
		for _, candidate := range []string{base + ext, base + strings.ToUpper(ext)} {
			path := filepath.Join(dir, candidate)
			if info, err := os.Stat(path); err == nil && info.Mode().IsRegular() {
				return path, true
			}
		}
	}
	return "", false
}

// CreateDirectoryIfNotExists creates directory if it doesn't exist
func CreateDirectoryIfNotExists(dirPath string) error {
	if _, err := os.Stat(dirPath); os.IsNotExist(err) {
		return os.MkdirAll(dirPath, DefaultDirPermissions)
	}
	return nil
}

// OpenDirectoryInManager opens dirPath in the system file manager
func OpenDirectoryInManager(dirPath string) error {
	info, err := os.Stat(dirPath)
	if err != nil {
		return fmt.Errorf("directory does not exist: %v", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%s: %w", dirPath, ErrNotDirectory)
	}

	absPath, err := filepath.Abs(dirPath)
	if err != nil {
		return fmt.Errorf("failed to get absolute path: %w", err)
	}

	switch runtime.GOOS {
	case OSDarwin:
		return exec.Command(OpenCommand, absPath).Run()
	case OSWindows:
		return exec.Command(ExplorerCommand, absPath).Run()
	case OSLinux:
		return openDirectoryLinux(absPath)
	case OSAndroid:
		return exec.Command("am", "start", "-a", "android.intent.action.VIEW", "-d", "file://"+absPath).Run()
	default:
		return fmt.Errorf("unsupported operating system: %s", runtime.GOOS)
	}
}

// openDirectoryLinux tries xdg-open, then the common file managers
func openDirectoryLinux(dir string) error {
	cmd := exec.Command(XDGOpenCommand, dir)
	if err := cmd.Run(); err == nil {
		return nil
	}

	for _, fm := range LinuxFileManagers {
		if _, err := exec.LookPath(fm); err == nil {
			return exec.Command(fm, dir).Run()
		}
	}

	return fmt.Errorf("no suitable file manager found")
}
