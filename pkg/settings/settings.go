// Package settings loads and stores user preferences.
//
// Preferences live in a TOML file under the user config directory:
//
//	[align]
//	min_gap_mm = 5.0
//	unit = "mm"
//
// The gap is always stored in millimetres. Callers convert it into the
// scene's length unit with [Convert] before handing it to the engine.
package settings

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/viewalign/pkg/errors"
)

// FileName is the settings file name inside the config directory.
const FileName = "settings.toml"

// Settings is the full preferences file.
type Settings struct {
	Align Align `toml:"align"`
}

// Align holds the alignment preferences.
type Align struct {
	// MinGapMM is the minimum gap between neighbours, in millimetres.
	MinGapMM float64 `toml:"min_gap_mm"`
	// Unit is the default length unit of scenes that do not declare one.
	Unit Unit `toml:"unit"`
}

// Default returns the settings used when no file exists.
func Default() Settings {
	return Settings{Align: Align{MinGapMM: 0, Unit: UnitMM}}
}

// Validate checks the gap and unit.
func (s Settings) Validate() error {
	if err := errors.ValidateGap(s.Align.MinGapMM); err != nil {
		return err
	}
	if _, err := ParseUnit(string(s.Align.Unit)); err != nil {
		return err
	}
	return nil
}

// DefaultPath returns $XDG_CONFIG_HOME/viewalign/settings.toml, falling back
// to the user config directory.
func DefaultPath() (string, error) {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "viewalign", FileName), nil
	}
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("locate config dir: %w", err)
	}
	return filepath.Join(base, "viewalign", FileName), nil
}

// Load reads settings from path. A missing file yields Default.
// Unknown keys are rejected so typos do not pass silently.
func Load(path string) (Settings, error) {
	s := Default()
	md, err := toml.DecodeFile(path, &s)
	if os.IsNotExist(err) {
		return Default(), nil
	}
	if err != nil {
		return Settings{}, errors.Wrap(errors.ErrCodeInvalidFormat, err, "read settings %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Settings{}, errors.New(errors.ErrCodeInvalidFormat, "unknown settings keys: %s", strings.Join(keys, ", "))
	}
	if s.Align.Unit == "" {
		s.Align.Unit = UnitMM
	}
	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// Save validates s and writes it to path, creating parent directories.
func Save(path string, s Settings) error {
	if err := s.Validate(); err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create %s: %w", filepath.Dir(path), err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	if err := toml.NewEncoder(f).Encode(s); err != nil {
		return fmt.Errorf("encode settings: %w", err)
	}
	return nil
}

// legacyFile is the JSON layout written by the desktop add-in.
type legacyFile struct {
	Data *struct {
		MinGap *float64 `json:"minGap"`
	} `json:"Data"`
}

// ImportLegacy reads a desktop add-in settings file ({"Data":{"minGap":5}},
// millimetres) and returns Default with the gap taken from it.
func ImportLegacy(path string) (Settings, error) {
	raw, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Settings{}, errors.Wrap(errors.ErrCodeFileNotFound, err, "legacy settings %s", path)
	}
	if err != nil {
		return Settings{}, fmt.Errorf("read %s: %w", path, err)
	}
	var lf legacyFile
	if err := json.Unmarshal(raw, &lf); err != nil {
		return Settings{}, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode legacy settings")
	}
	s := Default()
	if lf.Data != nil && lf.Data.MinGap != nil {
		s.Align.MinGapMM = *lf.Data.MinGap
	}
	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}
