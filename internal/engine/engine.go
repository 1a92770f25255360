package engine

import (
	"fmt"
	"math"
	"time"

	"github.com/doughbyte/crumb/internal/catalog"
	"github.com/doughbyte/crumb/internal/persistence"
	"github.com/doughbyte/crumb/internal/rules"
)

// baseClickYield is what a click earns before any upgrade bonuses.
const baseClickYield = 1.0

// Engine owns the whole game: the progression counters, the upgrade
// roster, the achievement tracker and the theme manager. It is the only
// component allowed to move cookies in or out of the balance; everything
// else asks it. It is not safe for concurrent use, hosts drive it from a
// single goroutine.
type Engine struct {
	state    *ProgressState
	upgrades []*Upgrade
	tracker  *Tracker
	themes   *ThemeManager
	store    persistence.Store
	now      func() time.Time
	running  bool
}

// Option adjusts engine construction.
type Option func(*Engine)

// WithClock replaces the wall clock, used by tests to pin save timestamps.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		e.now = now
	}
}

// New builds an engine from a validated catalog. Achievement conditions are
// compiled here, so a catalog with a broken condition never produces a
// half-working engine.
func New(cat *catalog.Catalog, store persistence.Store, opts ...Option) (*Engine, error) {
	registry, err := rules.NewRegistry()
	if err != nil {
		return nil, fmt.Errorf("failed to build rule environment: %w", err)
	}
	tracker, err := NewTracker(cat.Achievements, registry)
	if err != nil {
		return nil, err
	}

	e := &Engine{
		state:   NewProgressState(),
		tracker: tracker,
		themes:  NewThemeManager(cat.Themes),
		store:   store,
		now:     time.Now,
	}
	for _, def := range cat.Upgrades {
		e.upgrades = append(e.upgrades, newUpgrade(def))
	}
	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

// Start moves the engine into the running state. Calling it again is a
// no-op.
func (e *Engine) Start() {
	e.running = true
}

// Stop halts the game loop's effect: a stopped engine ignores ticks.
func (e *Engine) Stop() {
	e.running = false
}

// Running reports whether the engine accepts ticks.
func (e *Engine) Running() bool {
	return e.running
}

// Click credits one manual click and returns any achievements it unlocked.
func (e *Engine) Click() []catalog.AchievementDef {
	e.state.ManualClicks++
	e.state.earn(e.CookiesPerClick())
	return e.evaluate()
}

// Tick advances passive production by dt seconds. Negative deltas are
// treated as zero; clamping suspiciously large deltas is the host's job,
// since only it knows what a reasonable frame is. A stopped engine does
// nothing.
func (e *Engine) Tick(dt float64) []catalog.AchievementDef {
	if !e.running {
		return nil
	}
	if dt < 0 {
		dt = 0
	}
	e.state.earn(e.CookiesPerSecond() * dt)
	return e.evaluate()
}

// AddCookies grants cookies outside the normal earn paths, e.g. from a
// simulated run. Negative amounts are ignored.
func (e *Engine) AddCookies(amount float64) []catalog.AchievementDef {
	e.state.earn(amount)
	return e.evaluate()
}

// CanAfford reports whether the floored balance covers the cost. Flooring
// keeps display and affordability consistent: a price the shop shows as
// reachable is reachable.
func (e *Engine) CanAfford(cost float64) bool {
	return math.Floor(e.state.Cookies) >= cost
}

// Spend withdraws cost from the balance if affordable. It is the single
// spending authority; TotalCookies is untouched.
func (e *Engine) Spend(cost float64) bool {
	if !e.CanAfford(cost) {
		return false
	}
	e.state.Cookies -= cost
	return true
}

// BuyUpgrade purchases one copy of the upgrade at its current price. On
// success the new state is saved best-effort; a failed save is recovered by
// the next autosave.
func (e *Engine) BuyUpgrade(id string) bool {
	u := e.Upgrade(id)
	if u == nil {
		return false
	}
	if !e.Spend(u.Cost()) {
		return false
	}
	u.Count++
	_ = e.Save()
	return true
}

// BuyTheme purchases an unlocked theme through the engine's wallet.
func (e *Engine) BuyTheme(id string) bool {
	if !e.themes.Purchase(id, e) {
		return false
	}
	_ = e.Save()
	return true
}

// ApplyTheme switches to an owned theme and persists the choice.
func (e *Engine) ApplyTheme(id string) bool {
	if !e.themes.Apply(id) {
		return false
	}
	_ = e.Save()
	return true
}

// CookiesPerSecond is the current passive production rate.
func (e *Engine) CookiesPerSecond() float64 {
	var cps float64
	for _, u := range e.upgrades {
		cps += u.TotalCPS()
	}
	return cps
}

// CookiesPerClick is what one manual click currently earns.
func (e *Engine) CookiesPerClick() float64 {
	cpc := baseClickYield
	for _, u := range e.upgrades {
		cpc += u.TotalCPC()
	}
	return cpc
}

// Cookies is the spendable balance.
func (e *Engine) Cookies() float64 {
	return e.state.Cookies
}

// TotalCookies is the lifetime earn counter.
func (e *Engine) TotalCookies() float64 {
	return e.state.TotalCookies
}

// ManualClicks is the lifetime manual click counter.
func (e *Engine) ManualClicks() int {
	return e.state.ManualClicks
}

// LastSavedAt is the unix-millisecond timestamp of the last successful
// save, or zero if the game has never been saved.
func (e *Engine) LastSavedAt() int64 {
	return e.state.LastSavedAt
}

// Upgrades returns the upgrade roster in catalog order.
func (e *Engine) Upgrades() []*Upgrade {
	return e.upgrades
}

// Upgrade returns the upgrade with the given id, or nil if unknown.
func (e *Engine) Upgrade(id string) *Upgrade {
	for _, u := range e.upgrades {
		if u.ID == id {
			return u
		}
	}
	return nil
}

// Themes exposes the theme manager.
func (e *Engine) Themes() *ThemeManager {
	return e.themes
}

// Achievements exposes the tracker.
func (e *Engine) Achievements() *Tracker {
	return e.tracker
}

// Save writes the full snapshot to the store. The save timestamp is only
// kept when the write succeeds, so LastSavedAt never claims a save that
// never landed.
func (e *Engine) Save() error {
	prev := e.state.LastSavedAt
	e.state.LastSavedAt = e.now().UnixMilli()

	snap := &persistence.Snapshot{
		State: persistence.StateSnapshot{
			Cookies:      e.state.Cookies,
			TotalCookies: e.state.TotalCookies,
			ManualClicks: e.state.ManualClicks,
			LastSavedAt:  e.state.LastSavedAt,
		},
		Upgrades: []persistence.UpgradeCount{},
		Themes:   e.themes.snapshot(),
	}
	for _, u := range e.upgrades {
		if u.Count > 0 {
			snap.Upgrades = append(snap.Upgrades, persistence.UpgradeCount{ID: u.ID, Count: u.Count})
		}
	}

	raw, err := persistence.Encode(snap)
	if err != nil {
		e.state.LastSavedAt = prev
		return err
	}
	if err := e.store.Set(persistence.SaveKey, raw); err != nil {
		e.state.LastSavedAt = prev
		return err
	}
	return nil
}

// Load restores a previous snapshot from the store. A missing save leaves
// the fresh state in place. A corrupt or too-new save is reported as an
// error and likewise leaves the fresh state untouched, so the caller can
// warn and keep playing. Achievement and theme unlocks are re-derived from
// the restored counters.
func (e *Engine) Load() error {
	raw, ok, err := e.store.Get(persistence.SaveKey)
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}
	snap, err := persistence.Decode(raw)
	if err != nil {
		return err
	}

	e.state.Cookies = snap.State.Cookies
	e.state.TotalCookies = snap.State.TotalCookies
	e.state.ManualClicks = snap.State.ManualClicks
	e.state.LastSavedAt = snap.State.LastSavedAt
	for _, u := range e.upgrades {
		u.Count = 0
	}
	for _, uc := range snap.Upgrades {
		if u := e.Upgrade(uc.ID); u != nil && uc.Count > 0 {
			u.Count = uc.Count
		}
	}
	e.themes.restore(snap.Themes)
	e.evaluate()
	return nil
}

// Reset wipes all progress back to a fresh game and persists the wipe.
func (e *Engine) Reset() error {
	e.state = NewProgressState()
	for _, u := range e.upgrades {
		u.Count = 0
	}
	e.tracker.reset()
	e.themes.Reset()
	return e.Save()
}

// evaluate runs the achievement tracker and theme threshold checks after
// any earn. Achievements that name a reward theme reveal it.
func (e *Engine) evaluate() []catalog.AchievementDef {
	newly := e.tracker.Check(e.state)
	for _, def := range newly {
		if def.Theme != "" {
			e.themes.Unlock(def.Theme)
		}
	}
	e.themes.CheckUnlocks(e.state.TotalCookies)
	return newly
}
