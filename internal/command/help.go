package command

import (
	"fmt"
	"sort"
	"strings"

	"github.com/doughbyte/crumb/internal/parser"
)

type commandHelp struct {
	Usage   string
	Summary string
}

var commandRegistry = map[string]commandHelp{
	"click": {
		Usage:   "click [times: N]",
		Summary: "Clicks the big cookie, optionally N times in one go.",
	},
	"buy": {
		Usage:   "buy <upgrade-id>",
		Summary: "Buys one copy of an upgrade at its current price.",
	},
	"shop": {
		Usage:   "shop",
		Summary: "Lists upgrades with prices; affordable ones are starred.",
	},
	"theme": {
		Usage:   "theme <list|buy|apply> [theme-id]",
		Summary: "Lists, buys or applies cosmetic themes.",
	},
	"stats": {
		Usage:   "stats",
		Summary: "Shows the progression counters and achievements.",
	},
	"save": {
		Usage:   "save",
		Summary: "Saves the game immediately.",
	},
	"reset": {
		Usage:   "reset confirm",
		Summary: "Wipes all progress. Requires the confirm word.",
	},
	"help": {
		Usage:   "help [command]",
		Summary: "Shows this text, or details for one command.",
	},
}

func executeHelp(cmd *parser.HelpCmd) (string, error) {
	if cmd.Command != "" {
		entry, ok := commandRegistry[strings.ToLower(cmd.Command)]
		if !ok {
			return "", fmt.Errorf("no command called %q, try plain 'help'", cmd.Command)
		}
		return fmt.Sprintf("%s\n  %s", entry.Usage, entry.Summary), nil
	}

	names := make([]string, 0, len(commandRegistry))
	for name := range commandRegistry {
		names = append(names, name)
	}
	sort.Strings(names)

	var b strings.Builder
	b.WriteString("Commands:")
	for _, name := range names {
		entry := commandRegistry[name]
		fmt.Fprintf(&b, "\n  %-32s %s", entry.Usage, entry.Summary)
	}
	return b.String(), nil
}
