package engine

import (
	"github.com/doughbyte/crumb/internal/catalog"
	"github.com/doughbyte/crumb/internal/persistence"
)

// Wallet is the spending authority a theme purchase draws on. Only the
// engine implements it; the theme manager never touches the balance
// directly.
type Wallet interface {
	CanAfford(cost float64) bool
	Spend(cost float64) bool
}

// ThemeManager tracks which cosmetic themes are unlocked (visible in the
// shop), owned (paid for) and currently applied. The default theme is
// always unlocked and owned and can never be removed.
type ThemeManager struct {
	defs     []catalog.ThemeDef
	unlocked map[string]bool
	owned    map[string]bool
	current  string
}

// NewThemeManager starts with only the default theme available and applied.
func NewThemeManager(defs []catalog.ThemeDef) *ThemeManager {
	m := &ThemeManager{defs: defs}
	m.Reset()
	return m
}

// Reset returns the manager to its initial state: default unlocked, owned
// and applied, everything else locked.
func (m *ThemeManager) Reset() {
	m.unlocked = map[string]bool{catalog.DefaultThemeID: true}
	m.owned = map[string]bool{catalog.DefaultThemeID: true}
	m.current = catalog.DefaultThemeID
}

// CheckUnlocks reveals every theme whose lifetime-cookie threshold the
// player has crossed and reports whether anything new appeared. Unlocking
// never grants ownership.
func (m *ThemeManager) CheckUnlocks(totalCookies float64) bool {
	changed := false
	for _, def := range m.defs {
		if m.unlocked[def.ID] {
			continue
		}
		if totalCookies >= def.UnlockAt {
			m.unlocked[def.ID] = true
			changed = true
		}
	}
	return changed
}

// Unlock reveals a theme directly, as an achievement reward does. Unknown
// ids and already-unlocked themes report false.
func (m *ThemeManager) Unlock(id string) bool {
	if m.find(id) == nil || m.unlocked[id] {
		return false
	}
	m.unlocked[id] = true
	return true
}

// Purchase buys an unlocked theme through the wallet. It fails for unknown,
// locked or already-owned themes and when the wallet declines the price.
// The freshly owned theme is not applied automatically.
func (m *ThemeManager) Purchase(id string, wallet Wallet) bool {
	def := m.find(id)
	if def == nil || !m.unlocked[id] || m.owned[id] {
		return false
	}
	if !wallet.Spend(def.Price) {
		return false
	}
	m.owned[id] = true
	return true
}

// Apply switches the current theme to an owned one.
func (m *ThemeManager) Apply(id string) bool {
	if !m.owned[id] {
		return false
	}
	m.current = id
	return true
}

// Current returns the id of the applied theme.
func (m *ThemeManager) Current() string {
	return m.current
}

// IsUnlocked reports whether the theme is visible in the shop.
func (m *ThemeManager) IsUnlocked(id string) bool {
	return m.unlocked[id]
}

// IsOwned reports whether the theme has been paid for.
func (m *ThemeManager) IsOwned(id string) bool {
	return m.owned[id]
}

// All returns every theme definition in catalog order.
func (m *ThemeManager) All() []catalog.ThemeDef {
	return m.defs
}

// snapshot captures the cosmetic state for persistence, listing ids in
// catalog order.
func (m *ThemeManager) snapshot() persistence.ThemeSnapshot {
	snap := persistence.ThemeSnapshot{Current: m.current}
	for _, def := range m.defs {
		if m.unlocked[def.ID] {
			snap.Unlocked = append(snap.Unlocked, def.ID)
		}
		if m.owned[def.ID] {
			snap.Owned = append(snap.Owned, def.ID)
		}
	}
	return snap
}

// restore applies a saved cosmetic state. Ids that no longer exist in the
// catalog are dropped, the default theme's guarantees are re-asserted, and
// an unowned or unknown current theme falls back to the default.
func (m *ThemeManager) restore(snap persistence.ThemeSnapshot) {
	m.Reset()
	for _, id := range snap.Unlocked {
		if m.find(id) != nil {
			m.unlocked[id] = true
		}
	}
	for _, id := range snap.Owned {
		if m.find(id) != nil {
			m.unlocked[id] = true
			m.owned[id] = true
		}
	}
	if snap.Current != "" && m.owned[snap.Current] {
		m.current = snap.Current
	}
}

func (m *ThemeManager) find(id string) *catalog.ThemeDef {
	for i := range m.defs {
		if m.defs[i].ID == id {
			return &m.defs[i]
		}
	}
	return nil
}
