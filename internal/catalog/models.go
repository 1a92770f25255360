package catalog

// DefaultThemeID is always unlocked, always owned, and costs nothing.
const DefaultThemeID = "default"

// UpgradeDef describes one purchasable production unit as loaded from YAML.
// Owned counts are runtime state and live in the engine, not here.
type UpgradeDef struct {
	ID          string  `json:"id" yaml:"id"`
	Name        string  `json:"name" yaml:"name"`
	Description string  `json:"description" yaml:"description"`
	BaseCost    float64 `json:"base_cost" yaml:"base_cost"`
	Growth      float64 `json:"growth" yaml:"growth"`
	CPS         float64 `json:"cps" yaml:"cps"`
	CPC         float64 `json:"cpc" yaml:"cpc"`
}

// AchievementDef is a static milestone entry. Condition is a CEL expression
// over the variables total, cookies, and clicks; when empty, the tracker
// falls back to "total >= target". Theme optionally names a theme that is
// revealed (not granted) when the achievement unlocks.
type AchievementDef struct {
	ID          string  `json:"id" yaml:"id"`
	Name        string  `json:"name" yaml:"name"`
	Description string  `json:"description" yaml:"description"`
	Target      float64 `json:"target" yaml:"target"`
	Condition   string  `json:"condition" yaml:"condition"`
	Theme       string  `json:"theme" yaml:"theme"`
}

// ThemeDef is a static cosmetic theme entry. UnlockAt is the lifetime-cookie
// threshold that reveals the theme for purchase; Price is what owning it costs.
type ThemeDef struct {
	ID       string  `json:"id" yaml:"id"`
	Name     string  `json:"name" yaml:"name"`
	UnlockAt float64 `json:"unlock_at" yaml:"unlock_at"`
	Price    float64 `json:"price" yaml:"price"`
}

// Catalog bundles the three static tables the engine is built from.
type Catalog struct {
	Upgrades     []UpgradeDef     `yaml:"upgrades"`
	Achievements []AchievementDef `yaml:"achievements"`
	Themes       []ThemeDef       `yaml:"themes"`
}

// Theme returns the definition for the given id, or nil if unknown.
func (c *Catalog) Theme(id string) *ThemeDef {
	for i := range c.Themes {
		if c.Themes[i].ID == id {
			return &c.Themes[i]
		}
	}
	return nil
}

// Upgrade returns the definition for the given id, or nil if unknown.
func (c *Catalog) Upgrade(id string) *UpgradeDef {
	for i := range c.Upgrades {
		if c.Upgrades[i].ID == id {
			return &c.Upgrades[i]
		}
	}
	return nil
}
