package command

import (
	"fmt"
	"strings"

	"github.com/doughbyte/crumb/internal/engine"
	"github.com/doughbyte/crumb/internal/parser"
)

func executeTheme(cmd *parser.ThemeCmd, eng *engine.Engine) (string, error) {
	switch cmd.Action {
	case "list":
		return themeList(eng), nil
	case "buy":
		return themeBuy(cmd.ID, eng)
	case "apply":
		return themeApply(cmd.ID, eng)
	}
	return "", fmt.Errorf("theme actions are list, buy and apply")
}

func themeList(eng *engine.Engine) string {
	themes := eng.Themes()
	var b strings.Builder
	b.WriteString("Themes:")
	for _, def := range themes.All() {
		status := "locked"
		switch {
		case themes.Current() == def.ID:
			status = "current"
		case themes.IsOwned(def.ID):
			status = "owned"
		case themes.IsUnlocked(def.ID):
			status = fmt.Sprintf("%s cookies", engine.FormatNumber(def.Price))
		}
		fmt.Fprintf(&b, "\n  %-12s %-20s [%s]", def.ID, def.Name, status)
	}
	return b.String()
}

func themeBuy(id string, eng *engine.Engine) (string, error) {
	if id == "" {
		return "", fmt.Errorf("which theme? try 'theme buy <id>'")
	}
	themes := eng.Themes()
	switch {
	case themes.IsOwned(id):
		return "", fmt.Errorf("you already own the %s theme", id)
	case !themes.IsUnlocked(id):
		return "", fmt.Errorf("that theme is still locked, keep baking")
	}
	if !eng.BuyTheme(id) {
		return "", fmt.Errorf("you can't afford that theme yet")
	}
	return fmt.Sprintf("Bought the %s theme. Apply it with 'theme apply %s'.", id, id), nil
}

func themeApply(id string, eng *engine.Engine) (string, error) {
	if id == "" {
		return "", fmt.Errorf("which theme? try 'theme apply <id>'")
	}
	if !eng.ApplyTheme(id) {
		return "", fmt.Errorf("you don't own a theme called %q", id)
	}
	return fmt.Sprintf("Theme switched to %s.", id), nil
}
