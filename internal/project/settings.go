package project

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// SettingsFileName is the optional per-project settings file under .phpup/.
const SettingsFileName = "tui.toml"

// Settings are environment-level knobs read once at startup. Field values
// (host, port, …) are deliberately not part of this file; persisting those is
// the launcher's job.
type Settings struct {
	// Launcher overrides where the phpup binary is looked up.
	Launcher string `toml:"launcher"`

	// Mouse enables or disables mouse support. Defaults to enabled when not
	// specified.
	Mouse *bool `toml:"mouse"`
}

// MouseEnabled returns whether mouse support should be turned on.
// Defaults to true when not explicitly configured.
func (s *Settings) MouseEnabled() bool {
	if s.Mouse == nil {
		return true
	}
	return *s.Mouse
}

// LoadSettings reads .phpup/tui.toml under dir. A missing file yields zero
// settings; a malformed file is an error.
func LoadSettings(dir string) (*Settings, error) {
	path := filepath.Join(dir, ".phpup", SettingsFileName)

	var s Settings
	if _, err := toml.DecodeFile(path, &s); err != nil {
		if os.IsNotExist(err) {
			return &s, nil
		}
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return &s, nil
}
