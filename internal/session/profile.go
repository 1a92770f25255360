package session

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

// ProfileManager bridges configuration settings with local file
// organization. It handles directory creation and path resolution for save
// profiles, independent of the storage mechanism.
type ProfileManager struct {
	SavesDir string
}

// NewProfileManager returns a manager localized to the configured saves
// directory.
func NewProfileManager(savesDir string) *ProfileManager {
	return &ProfileManager{SavesDir: savesDir}
}

// Path produces the directory a profile's saves live in.
func (p *ProfileManager) Path(profile string) string {
	return filepath.Join(p.SavesDir, profile)
}

// Create makes the profile directory. Creating an existing profile is
// harmless.
func (p *ProfileManager) Create(profile string) (string, error) {
	path := p.Path(profile)
	if err := os.MkdirAll(path, 0755); err != nil {
		return "", fmt.Errorf("failed to create profile directory %s: %w", path, err)
	}
	return path, nil
}

// Exists reports whether the profile directory is present.
func (p *ProfileManager) Exists(profile string) bool {
	stat, err := os.Stat(p.Path(profile))
	return err == nil && stat.IsDir()
}

// List returns the profile names in sorted order. A missing saves directory
// means no profiles.
func (p *ProfileManager) List() ([]string, error) {
	entries, err := os.ReadDir(p.SavesDir)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list profiles: %w", err)
	}

	var profiles []string
	for _, e := range entries {
		if e.IsDir() {
			profiles = append(profiles, e.Name())
		}
	}
	sort.Strings(profiles)
	return profiles, nil
}

// Remove deletes a profile directory and everything in it.
func (p *ProfileManager) Remove(profile string) error {
	if !p.Exists(profile) {
		return fmt.Errorf("no profile called %q", profile)
	}
	if err := os.RemoveAll(p.Path(profile)); err != nil {
		return fmt.Errorf("failed to remove profile %s: %w", profile, err)
	}
	return nil
}
