package command

import (
	"fmt"
	"strings"

	"github.com/doughbyte/crumb/internal/engine"
	"github.com/doughbyte/crumb/internal/parser"
)

func executeBuy(cmd *parser.BuyCmd, eng *engine.Engine) (string, error) {
	u := eng.Upgrade(cmd.ID)
	if u == nil {
		return "", fmt.Errorf("there is no upgrade called %q, try 'shop'", cmd.ID)
	}
	cost := u.Cost()
	if !eng.BuyUpgrade(cmd.ID) {
		missing := cost - eng.Cookies()
		return "", fmt.Errorf("%s costs %s cookies, you need %s more", u.Name, engine.FormatNumber(cost), engine.FormatNumber(missing))
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Bought %s for %s cookies (owned: %d, next costs %s)",
		u.Name, engine.FormatNumber(cost), u.Count, engine.FormatNumber(u.Cost()))
	fmt.Fprintf(&b, "\nNow producing %s/s and %s per click.",
		engine.FormatNumber(eng.CookiesPerSecond()), engine.FormatNumber(eng.CookiesPerClick()))
	return b.String(), nil
}

func executeShop(eng *engine.Engine) (string, error) {
	var b strings.Builder
	b.WriteString("Upgrades for sale:")
	for _, u := range eng.Upgrades() {
		marker := " "
		if eng.CanAfford(u.Cost()) {
			marker = "*"
		}
		fmt.Fprintf(&b, "\n%s %-20s %8s cookies  (owned: %d)  %s",
			marker, u.ID, engine.FormatNumber(u.Cost()), u.Count, yieldSummary(u))
	}
	fmt.Fprintf(&b, "\nBalance: %s cookies. Buy with 'buy <id>'.", engine.FormatNumber(eng.Cookies()))
	return b.String(), nil
}

func yieldSummary(u *engine.Upgrade) string {
	var parts []string
	if u.CPS > 0 {
		parts = append(parts, fmt.Sprintf("+%s/s", engine.FormatNumber(u.CPS)))
	}
	if u.CPC > 0 {
		parts = append(parts, fmt.Sprintf("+%s/click", engine.FormatNumber(u.CPC)))
	}
	return strings.Join(parts, " ")
}
