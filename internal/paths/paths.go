package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

const (

	// Default permission mode for directories.
	DefaultDirMode os.FileMode = 0755

	// Default permission mode for files.
	DefaultFileMode os.FileMode = 0644
)

// Path to the directory Android Studio installs SDKs under.
//
//	Linux:   ~/.local/share/Android/sdk
//	macOS:   ~/Library/Application Support/Android/sdk
//	Windows: %LOCALAPPDATA%\Android\sdk
func AndroidSDK() string {
	return filepath.Join(xdg.DataHome, "Android", "sdk")
}

// Path to the directory Android Studio installs NDK versions under.
//
// Each installed NDK version gets its own child directory, named by its
// version string (e.g., "23.1.7779620").
func NDKInstallDir() string {
	return filepath.Join(AndroidSDK(), "ndk")
}
