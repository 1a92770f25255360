package command

import (
	"fmt"
	"strings"

	"github.com/doughbyte/crumb/internal/catalog"
	"github.com/doughbyte/crumb/internal/engine"
	"github.com/doughbyte/crumb/internal/parser"
)

// maxClickBatch caps "click times: N" so one command can't loop for minutes.
const maxClickBatch = 10000

func executeClick(cmd *parser.ClickCmd, eng *engine.Engine) (string, error) {
	repeat := cmd.Repeat()
	if repeat > maxClickBatch {
		return "", fmt.Errorf("that's too many clicks at once, the limit is %d", maxClickBatch)
	}

	before := eng.TotalCookies()
	var unlocked []catalog.AchievementDef
	for i := 0; i < repeat; i++ {
		unlocked = append(unlocked, eng.Click()...)
	}
	earned := eng.TotalCookies() - before

	var b strings.Builder
	if repeat == 1 {
		fmt.Fprintf(&b, "Click! +%s cookies (balance: %s)", engine.FormatNumber(earned), engine.FormatNumber(eng.Cookies()))
	} else {
		fmt.Fprintf(&b, "Clicked %d times for %s cookies (balance: %s)", repeat, engine.FormatNumber(earned), engine.FormatNumber(eng.Cookies()))
	}
	writeUnlocks(&b, unlocked)
	return b.String(), nil
}

// writeUnlocks appends one announcement line per freshly unlocked achievement.
func writeUnlocks(b *strings.Builder, unlocked []catalog.AchievementDef) {
	for _, def := range unlocked {
		fmt.Fprintf(b, "\nAchievement unlocked: %s! %s", def.Name, def.Description)
		if def.Theme != "" {
			fmt.Fprintf(b, " (new theme available: %s)", def.Theme)
		}
	}
}
