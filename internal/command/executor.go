package command

import (
	"fmt"

	"github.com/doughbyte/crumb/internal/engine"
	"github.com/doughbyte/crumb/internal/parser"
)

// Execute dispatches a parsed command against the engine and renders the
// player-facing reply. All game mutation goes through the engine; this
// layer only sequences calls and formats output.
func Execute(cmd *parser.Command, eng *engine.Engine) (string, error) {
	switch {
	case cmd.Click != nil:
		return executeClick(cmd.Click, eng)
	case cmd.Buy != nil:
		return executeBuy(cmd.Buy, eng)
	case cmd.Shop != nil:
		return executeShop(eng)
	case cmd.Theme != nil:
		return executeTheme(cmd.Theme, eng)
	case cmd.Stats != nil:
		return executeStats(eng)
	case cmd.Save != nil:
		return executeSave(eng)
	case cmd.Reset != nil:
		return executeReset(cmd.Reset, eng)
	case cmd.Help != nil:
		return executeHelp(cmd.Help)
	}
	return "", fmt.Errorf("unrecognized command")
}
