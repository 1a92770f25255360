package parser

// Command represents a top-level action typed into the game prompt
type Command struct {
	Click *ClickCmd `parser:"( @@"`
	Buy   *BuyCmd   `parser:"| @@"`
	Shop  *ShopCmd  `parser:"| @@"`
	Theme *ThemeCmd `parser:"| @@"`
	Stats *StatsCmd `parser:"| @@"`
	Save  *SaveCmd  `parser:"| @@"`
	Reset *ResetCmd `parser:"| @@"`
	Help  *HelpCmd  `parser:"| @@ )"`
}

// ClickCmd clicks the big cookie, optionally several times in one go
type ClickCmd struct {
	Keyword string     `parser:"@(\"click\"|\"Click\"|\"CLICK\")"`
	Times   *TimesExpr `parser:"@@?"`
}

// TimesExpr maps parsing the optional "times: N" block
type TimesExpr struct {
	Keyword string `parser:"\"times\" \":\""`
	Count   int    `parser:"@Int"`
}

// Repeat is how many clicks the command asks for, never less than one.
func (c *ClickCmd) Repeat() int {
	if c.Times == nil || c.Times.Count < 1 {
		return 1
	}
	return c.Times.Count
}

// BuyCmd purchases one copy of an upgrade by id
type BuyCmd struct {
	Keyword string `parser:"@(\"buy\"|\"Buy\"|\"BUY\")"`
	ID      string `parser:"@Ident"`
}

// ShopCmd lists the upgrade roster with current prices
type ShopCmd struct {
	Keyword string `parser:"@(\"shop\"|\"Shop\"|\"SHOP\")"`
}

// ThemeCmd lists, purchases or applies cosmetic themes
type ThemeCmd struct {
	Keyword string `parser:"@(\"theme\"|\"Theme\"|\"THEME\")"`
	Action  string `parser:"@(\"list\"|\"buy\"|\"apply\")"`
	ID      string `parser:"@Ident?"`
}

// StatsCmd prints the progression counters and unlocked achievements
type StatsCmd struct {
	Keyword string `parser:"@(\"stats\"|\"Stats\"|\"STATS\")"`
}

// SaveCmd forces an immediate save
type SaveCmd struct {
	Keyword string `parser:"@(\"save\"|\"Save\"|\"SAVE\")"`
}

// ResetCmd wipes all progress; it only takes effect with the confirm word
type ResetCmd struct {
	Keyword string `parser:"@(\"reset\"|\"Reset\"|\"RESET\")"`
	Confirm bool   `parser:"@\"confirm\"?"`
}

// HelpCmd provides usage guidance, optionally for a single command
type HelpCmd struct {
	Keyword string `parser:"@(\"help\"|\"Help\"|\"HELP\")"`
	Command string `parser:"(@Keyword|@Ident)?"`
}
