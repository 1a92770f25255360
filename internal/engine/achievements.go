package engine

import (
	"fmt"

	"github.com/doughbyte/crumb/internal/catalog"
	"github.com/doughbyte/crumb/internal/rules"
)

// Tracker evaluates achievement conditions against the progression counters
// and remembers which achievements have unlocked this session. Unlocks are
// not persisted: the set is rebuilt from the counters on every load, so the
// tracker only ever needs to move forward.
type Tracker struct {
	defs     []catalog.AchievementDef
	programs map[string]*rules.Program
	unlocked map[string]bool
}

// NewTracker compiles every achievement condition up front so a bad
// expression fails at startup instead of mid-game.
func NewTracker(defs []catalog.AchievementDef, registry *rules.Registry) (*Tracker, error) {
	t := &Tracker{
		defs:     defs,
		programs: make(map[string]*rules.Program, len(defs)),
		unlocked: make(map[string]bool),
	}
	for _, def := range defs {
		expr := def.Condition
		if expr == "" {
			expr = rules.DefaultCondition(def.Target)
		}
		prog, err := registry.Compile(expr)
		if err != nil {
			return nil, fmt.Errorf("achievement %s: %w", def.ID, err)
		}
		t.programs[def.ID] = prog
	}
	return t, nil
}

// Check evaluates all locked achievements and returns the ones that just
// unlocked, in catalog order. Already-unlocked achievements are skipped, so
// calling it repeatedly with the same counters returns nothing new. A
// condition that fails to evaluate counts as not met.
func (t *Tracker) Check(state *ProgressState) []catalog.AchievementDef {
	var newly []catalog.AchievementDef
	for _, def := range t.defs {
		if t.unlocked[def.ID] {
			continue
		}
		met, err := t.programs[def.ID].Eval(state.TotalCookies, state.Cookies, state.ManualClicks)
		if err != nil || !met {
			continue
		}
		t.unlocked[def.ID] = true
		newly = append(newly, def)
	}
	return newly
}

// IsUnlocked reports whether the achievement has unlocked this session.
func (t *Tracker) IsUnlocked(id string) bool {
	return t.unlocked[id]
}

// Unlocked returns the unlocked achievements in catalog order.
func (t *Tracker) Unlocked() []catalog.AchievementDef {
	var out []catalog.AchievementDef
	for _, def := range t.defs {
		if t.unlocked[def.ID] {
			out = append(out, def)
		}
	}
	return out
}

// All returns every achievement definition in catalog order.
func (t *Tracker) All() []catalog.AchievementDef {
	return t.defs
}

// reset forgets all unlocks.
func (t *Tracker) reset() {
	t.unlocked = make(map[string]bool)
}
