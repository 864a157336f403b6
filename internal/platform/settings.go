package platform

import (
	"fmt"
	"os/exec"
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
	OpenCommand    = "open"
	XDGOpenCommand = "xdg-open"
	CmdCommand     = "cmd"
	WindowsCmdFlag = "/c"
	StartCommand   = "start"
)

// Settings deep-link targets per OS
const (
	MacOSPrivacySettingsURL = "x-apple.systempreferences:com.apple.preference.security?Privacy_Photos"
	WindowsPrivacySettings  = "ms-settings:privacy"
	GnomeControlCenter      = "gnome-control-center"
)

// OpenSystemSettings deep-links to the OS settings surface where the user can
// change what the app is allowed to read. Used when access is denied.
func OpenSystemSettings() error {
	switch runtime.GOOS {
	case OSDarwin:
		return exec.Command(OpenCommand, MacOSPrivacySettingsURL).Run()
	case OSWindows:
		return exec.Command(CmdCommand, WindowsCmdFlag, StartCommand, WindowsPrivacySettings).Run()
	case OSLinux:
		return openSettingsLinux()
	default:
		return fmt.Errorf("unsupported operating system: %s", runtime.GOOS)
	}
}

// openSettingsLinux tries the desktop control center first, then falls back
// to xdg-open of the settings scheme where available.
func openSettingsLinux() error {
	if _, err := exec.LookPath(GnomeControlCenter); err == nil {
		return exec.Command(GnomeControlCenter, "privacy").Run()
	}
	return exec.Command(XDGOpenCommand, "settings://privacy").Run()
}
