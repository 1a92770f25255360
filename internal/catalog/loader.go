package catalog

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Loader reads the static game tables from a hierarchy of catalog
// directories. Files found earlier in the hierarchy win; any table with no
// file anywhere falls back to the builtin copy.
type Loader struct {
	catalogDirs []string
}

// NewLoader initializes a Loader with the given directory fallback hierarchy.
func NewLoader(catalogDirs []string) *Loader {
	return &Loader{
		catalogDirs: catalogDirs,
	}
}

// Load assembles the full catalog from upgrades.yaml, achievements.yaml and
// themes.yaml, filling gaps from the builtin tables, and validates the result.
func (l *Loader) Load() (*Catalog, error) {
	cat := Builtin()

	var upgrades []UpgradeDef
	if ok, err := l.load("upgrades.yaml", &upgrades); err != nil {
		return nil, err
	} else if ok {
		cat.Upgrades = upgrades
	}

	var achievements []AchievementDef
	if ok, err := l.load("achievements.yaml", &achievements); err != nil {
		return nil, err
	} else if ok {
		cat.Achievements = achievements
	}

	var themes []ThemeDef
	if ok, err := l.load("themes.yaml", &themes); err != nil {
		return nil, err
	} else if ok {
		cat.Themes = themes
	}

	if err := Validate(cat); err != nil {
		return nil, err
	}
	return cat, nil
}

// load searches the directories in order for the named table file. The bool
// result reports whether any file was found at all.
func (l *Loader) load(name string, target interface{}) (bool, error) {
	for _, dir := range l.catalogDirs {
		path := filepath.Join(dir, name)
		f, err := os.Open(path)
		if err != nil {
			continue
		}
		defer f.Close()
		decoder := yaml.NewDecoder(f)
		if err := decoder.Decode(target); err != nil {
			return false, fmt.Errorf("failed to decode catalog table %s: %w", path, err)
		}
		return true, nil
	}
	return false, nil
}

// Validate checks the structural rules the engine relies on: unique ids,
// sane cost curves, and the presence of the default theme. A missing default
// theme is repaired in place rather than rejected.
func Validate(cat *Catalog) error {
	seen := map[string]bool{}
	for _, u := range cat.Upgrades {
		if u.ID == "" {
			return fmt.Errorf("upgrade with empty id")
		}
		if seen[u.ID] {
			return fmt.Errorf("duplicate upgrade id %q", u.ID)
		}
		seen[u.ID] = true
		if u.BaseCost <= 0 {
			return fmt.Errorf("upgrade %q: base cost must be positive", u.ID)
		}
		if u.Growth < 1 {
			return fmt.Errorf("upgrade %q: growth must be at least 1", u.ID)
		}
		if u.CPS < 0 || u.CPC < 0 {
			return fmt.Errorf("upgrade %q: yields must not be negative", u.ID)
		}
	}

	seen = map[string]bool{}
	for _, a := range cat.Achievements {
		if a.ID == "" {
			return fmt.Errorf("achievement with empty id")
		}
		if seen[a.ID] {
			return fmt.Errorf("duplicate achievement id %q", a.ID)
		}
		seen[a.ID] = true
		if a.Theme != "" && cat.Theme(a.Theme) == nil {
			return fmt.Errorf("achievement %q: unknown theme %q", a.ID, a.Theme)
		}
	}

	seen = map[string]bool{}
	hasDefault := false
	for _, t := range cat.Themes {
		if t.ID == "" {
			return fmt.Errorf("theme with empty id")
		}
		if seen[t.ID] {
			return fmt.Errorf("duplicate theme id %q", t.ID)
		}
		seen[t.ID] = true
		if t.Price < 0 || t.UnlockAt < 0 {
			return fmt.Errorf("theme %q: price and unlock threshold must not be negative", t.ID)
		}
		if t.ID == DefaultThemeID {
			hasDefault = true
		}
	}
	if !hasDefault {
		cat.Themes = append([]ThemeDef{{ID: DefaultThemeID, Name: "Classic"}}, cat.Themes...)
	}
	return nil
}
