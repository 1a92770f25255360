package catalog

// Builtin returns the compiled-in catalog. It is the fallback when no
// catalog directory is configured or a table file is missing, so the game
// is playable from a bare binary.
func Builtin() *Catalog {
	return &Catalog{
		Upgrades:     builtinUpgrades(),
		Achievements: builtinAchievements(),
		Themes:       builtinThemes(),
	}
}

func builtinUpgrades() []UpgradeDef {
	return []UpgradeDef{
		{
			ID:          "cursor",
			Name:        "Cursor",
			Description: "Clicks the big cookie for you, slowly.",
			BaseCost:    15,
			Growth:      1.15,
			CPS:         0.1,
		},
		{
			ID:          "reinforced-finger",
			Name:        "Reinforced Finger",
			Description: "Each of your own clicks hits harder.",
			BaseCost:    100,
			Growth:      1.3,
			CPC:         1,
		},
		{
			ID:          "grandma",
			Name:        "Grandma",
			Description: "A nice grandma to bake more cookies.",
			BaseCost:    100,
			Growth:      1.15,
			CPS:         1,
		},
		{
			ID:          "farm",
			Name:        "Cookie Farm",
			Description: "Grows cookie plants from cookie seeds.",
			BaseCost:    1100,
			Growth:      1.15,
			CPS:         8,
		},
		{
			ID:          "mine",
			Name:        "Cookie Mine",
			Description: "Mines out cookie dough and chocolate chips.",
			BaseCost:    12000,
			Growth:      1.15,
			CPS:         47,
		},
		{
			ID:          "factory",
			Name:        "Factory",
			Description: "Mass-produces cookies on an industrial scale.",
			BaseCost:    130000,
			Growth:      1.15,
			CPS:         260,
		},
		{
			ID:          "bank",
			Name:        "Cookie Bank",
			Description: "Generates cookies from compound interest.",
			BaseCost:    1400000,
			Growth:      1.15,
			CPS:         1400,
		},
		{
			ID:          "temple",
			Name:        "Temple",
			Description: "Full of ancient, forbidden chocolate.",
			BaseCost:    20000000,
			Growth:      1.15,
			CPS:         7800,
		},
	}
}

func builtinAchievements() []AchievementDef {
	return []AchievementDef{
		{
			ID:          "first-batch",
			Name:        "First Batch",
			Description: "Bake 100 cookies in total.",
			Target:      100,
		},
		{
			ID:          "cottage-bakery",
			Name:        "Cottage Bakery",
			Description: "Bake 1,000 cookies in total.",
			Target:      1000,
		},
		{
			ID:          "night-shift",
			Name:        "Night Shift",
			Description: "Bake 10,000 cookies in total.",
			Target:      10000,
			Theme:       "midnight",
		},
		{
			ID:          "cookie-mogul",
			Name:        "Cookie Mogul",
			Description: "Bake 100,000 cookies in total.",
			Target:      100000,
			Theme:       "golden",
		},
		{
			ID:          "cookie-empire",
			Name:        "Cookie Empire",
			Description: "Bake 1,000,000 cookies in total.",
			Target:      1000000,
			Theme:       "orchard",
		},
		{
			ID:          "busy-fingers",
			Name:        "Busy Fingers",
			Description: "Click the cookie 100 times yourself.",
			Target:      100,
			Condition:   "clicks >= 100",
		},
		{
			ID:          "carpal-tunnel",
			Name:        "Carpal Tunnel",
			Description: "Click the cookie 1,000 times yourself.",
			Target:      1000,
			Condition:   "clicks >= 1000",
		},
		{
			ID:          "hoarder",
			Name:        "Hoarder",
			Description: "Hold 50,000 unspent cookies at once.",
			Target:      50000,
			Condition:   "cookies >= 50000.0",
		},
	}
}

func builtinThemes() []ThemeDef {
	return []ThemeDef{
		{
			ID:   DefaultThemeID,
			Name: "Classic",
		},
		{
			ID:       "midnight",
			Name:     "Midnight",
			UnlockAt: 10000,
			Price:    5000,
		},
		{
			ID:       "golden",
			Name:     "Golden",
			UnlockAt: 100000,
			Price:    50000,
		},
		{
			ID:       "orchard",
			Name:     "Orchard",
			UnlockAt: 1000000,
			Price:    250000,
		},
	}
}
