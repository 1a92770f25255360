package persistence

import (
	"encoding/json"
	"fmt"
)

// SnapshotVersion is the current save schema version. Decode rejects
// anything newer so an old build never mangles a newer save.
const SnapshotVersion = 1

// Snapshot is the full serialized game state as written under SaveKey.
type Snapshot struct {
	Version  int            `json:"version"`
	State    StateSnapshot  `json:"state"`
	Upgrades []UpgradeCount `json:"upgrades"`
	Themes   ThemeSnapshot  `json:"themes"`
}

// StateSnapshot mirrors the core progression counters.
type StateSnapshot struct {
	Cookies      float64 `json:"cookies"`
	TotalCookies float64 `json:"totalCookies"`
	ManualClicks int     `json:"manualClicks"`
	LastSavedAt  int64   `json:"lastSavedAt"`
}

// UpgradeCount records how many of one upgrade the player owns. Upgrades
// are saved by id so catalog reordering between versions is harmless.
type UpgradeCount struct {
	ID    string `json:"id"`
	Count int    `json:"count"`
}

// ThemeSnapshot records the cosmetic state.
type ThemeSnapshot struct {
	Unlocked []string `json:"unlocked"`
	Owned    []string `json:"owned"`
	Current  string   `json:"current"`
}

// Encode marshals a snapshot, stamping the current schema version.
func Encode(s *Snapshot) (string, error) {
	s.Version = SnapshotVersion
	data, err := json.Marshal(s)
	if err != nil {
		return "", fmt.Errorf("failed to encode snapshot: %w", err)
	}
	return string(data), nil
}

// Decode parses a raw snapshot and checks its schema version.
func Decode(raw string) (*Snapshot, error) {
	var s Snapshot
	if err := json.Unmarshal([]byte(raw), &s); err != nil {
		return nil, fmt.Errorf("failed to decode snapshot: %w", err)
	}
	if s.Version > SnapshotVersion {
		return nil, fmt.Errorf("snapshot version %d is newer than supported version %d", s.Version, SnapshotVersion)
	}
	return &s, nil
}
