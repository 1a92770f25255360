package session

import (
	"fmt"
	"strings"
	"time"

	"github.com/alecthomas/participle/v2"

	"github.com/doughbyte/crumb/internal/catalog"
	"github.com/doughbyte/crumb/internal/command"
	"github.com/doughbyte/crumb/internal/engine"
	"github.com/doughbyte/crumb/internal/parser"
	"github.com/doughbyte/crumb/internal/persistence"
)

// maxFrameSeconds caps how much game time a single Advance can credit.
// After a suspend or debugger pause the wall clock may have jumped by
// minutes; the player gets at most one second of production for it.
const maxFrameSeconds = 1.0

// DefaultAutosaveEvery is used when the host configures no interval.
const DefaultAutosaveEvery = 30 * time.Second

// Session manages the cohesive loop of taking commands, executing them
// against the engine, and keeping the save file fresh. Hosts (the REPL, the
// TUI, the simulator) drive it from a single goroutine.
type Session struct {
	eng           *engine.Engine
	langParser    *participle.Parser[parser.Command]
	now           func() time.Time
	lastTick      time.Time
	autosaveEvery time.Duration
	sinceSave     time.Duration
	loadWarning   error
}

// Options tunes session construction.
type Options struct {
	// AutosaveEvery is how much play time may pass between automatic
	// saves. Zero means DefaultAutosaveEvery.
	AutosaveEvery time.Duration
	// Clock replaces the wall clock in tests.
	Clock func() time.Time
}

// New bootstraps a session: it builds the engine from the catalog, restores
// the previous save and starts the game. A corrupt save is downgraded to a
// warning and the game starts fresh; only construction problems are errors.
func New(cat *catalog.Catalog, store persistence.Store, opts Options) (*Session, error) {
	if opts.Clock == nil {
		opts.Clock = time.Now
	}
	if opts.AutosaveEvery <= 0 {
		opts.AutosaveEvery = DefaultAutosaveEvery
	}

	eng, err := engine.New(cat, store, engine.WithClock(opts.Clock))
	if err != nil {
		return nil, fmt.Errorf("failed to build engine: %w", err)
	}

	s := &Session{
		eng:           eng,
		langParser:    parser.Build(),
		now:           opts.Clock,
		autosaveEvery: opts.AutosaveEvery,
	}
	if err := eng.Load(); err != nil {
		s.loadWarning = fmt.Errorf("save could not be restored, starting fresh: %w", err)
	}
	eng.Start()
	s.lastTick = s.now()
	return s, nil
}

// LoadWarning reports a save that failed to restore, or nil. The session is
// playable either way.
func (s *Session) LoadWarning() error {
	return s.loadWarning
}

// Engine exposes the underlying engine for hosts that render state directly.
func (s *Session) Engine() *engine.Engine {
	return s.eng
}

// Advance moves game time forward to now: passive production accrues for
// the elapsed wall time (clamped to one second) and an autosave fires when
// enough play time has accumulated. It returns any achievements the tick
// unlocked so the host can announce them.
func (s *Session) Advance() []catalog.AchievementDef {
	now := s.now()
	elapsed := now.Sub(s.lastTick)
	s.lastTick = now
	if elapsed < 0 {
		elapsed = 0
	}

	dt := elapsed.Seconds()
	if dt > maxFrameSeconds {
		dt = maxFrameSeconds
	}
	newly := s.eng.Tick(dt)

	s.sinceSave += elapsed
	if s.sinceSave >= s.autosaveEvery {
		s.sinceSave = 0
		// autosave is best effort, a failure is recovered by the next one
		_ = s.eng.Save()
	}
	return newly
}

// Execute takes a raw command string from a UI client, parses it and runs
// it against the engine, returning the printable reply.
func (s *Session) Execute(input string) (string, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return "", nil
	}

	astCmd, err := s.langParser.ParseString("", input)
	if err != nil {
		return "", parser.MapError(input, err)
	}
	return command.Execute(astCmd, s.eng)
}

// Close stops the game and writes a final save.
func (s *Session) Close() error {
	s.eng.Stop()
	return s.eng.Save()
}
