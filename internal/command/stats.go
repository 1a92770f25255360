package command

import (
	"fmt"
	"strings"
	"time"

	"github.com/doughbyte/crumb/internal/engine"
	"github.com/doughbyte/crumb/internal/parser"
)

func executeStats(eng *engine.Engine) (string, error) {
	var b strings.Builder
	fmt.Fprintf(&b, "Cookies:        %s", engine.FormatNumber(eng.Cookies()))
	fmt.Fprintf(&b, "\nBaked all time: %s", engine.FormatNumber(eng.TotalCookies()))
	fmt.Fprintf(&b, "\nPer second:     %s", engine.FormatNumber(eng.CookiesPerSecond()))
	fmt.Fprintf(&b, "\nPer click:      %s", engine.FormatNumber(eng.CookiesPerClick()))
	fmt.Fprintf(&b, "\nManual clicks:  %d", eng.ManualClicks())
	fmt.Fprintf(&b, "\nTheme:          %s", eng.Themes().Current())

	tracker := eng.Achievements()
	unlocked := tracker.Unlocked()
	fmt.Fprintf(&b, "\nAchievements:   %d/%d", len(unlocked), len(tracker.All()))
	for _, def := range unlocked {
		fmt.Fprintf(&b, "\n  - %s", def.Name)
	}

	if ts := eng.LastSavedAt(); ts > 0 {
		fmt.Fprintf(&b, "\nLast saved:     %s", time.UnixMilli(ts).Format(time.RFC1123))
	} else {
		b.WriteString("\nLast saved:     never")
	}
	return b.String(), nil
}

func executeSave(eng *engine.Engine) (string, error) {
	if err := eng.Save(); err != nil {
		return "", fmt.Errorf("save failed: %w", err)
	}
	return "Game saved.", nil
}

func executeReset(cmd *parser.ResetCmd, eng *engine.Engine) (string, error) {
	if !cmd.Confirm {
		return "This wipes ALL progress. Type 'reset confirm' if you mean it.", nil
	}
	if err := eng.Reset(); err != nil {
		return "", fmt.Errorf("reset failed: %w", err)
	}
	return "All progress wiped. Enjoy the fresh dough.", nil
}
