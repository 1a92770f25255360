package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/doughbyte/crumb/internal/catalog"
	"github.com/doughbyte/crumb/internal/persistence"
)

// testCatalog creates a small catalog covering every progression mechanic.
func testCatalog() *catalog.Catalog {
	return &catalog.Catalog{
		Upgrades: []catalog.UpgradeDef{
			{ID: "cursor", Name: "Cursor", BaseCost: 15, Growth: 1.15, CPS: 0.1},
			{ID: "finger", Name: "Finger", BaseCost: 50, Growth: 1.3, CPC: 1},
			{ID: "grandma", Name: "Grandma", BaseCost: 100, Growth: 1.15, CPS: 1},
		},
		Achievements: []catalog.AchievementDef{
			{ID: "hundred", Name: "Hundred", Target: 100},
			{ID: "ten-k", Name: "Ten K", Target: 10000, Theme: "midnight"},
			{ID: "clicker", Name: "Clicker", Target: 5, Condition: "clicks >= 5"},
		},
		Themes: []catalog.ThemeDef{
			{ID: catalog.DefaultThemeID, Name: "Classic"},
			{ID: "midnight", Name: "Midnight", UnlockAt: 10000, Price: 5000},
			{ID: "golden", Name: "Golden", UnlockAt: 100000, Price: 50000},
		},
	}
}

func testEngine(t *testing.T) (*Engine, *persistence.MemStore) {
	t.Helper()
	store := persistence.NewMemStore()
	eng, err := New(testCatalog(), store, WithClock(func() time.Time {
		return time.UnixMilli(1700000000000)
	}))
	require.NoError(t, err)
	eng.Start()
	return eng, store
}

func TestClickEarnsCurrentYield(t *testing.T) {
	eng, _ := testEngine(t)

	eng.Click()
	assert.Equal(t, 1.0, eng.Cookies())
	assert.Equal(t, 1.0, eng.TotalCookies())
	assert.Equal(t, 1, eng.ManualClicks())

	// A CPC upgrade raises the click yield.
	eng.AddCookies(100)
	require.True(t, eng.BuyUpgrade("finger"))
	assert.Equal(t, 2.0, eng.CookiesPerClick())
	before := eng.Cookies()
	eng.Click()
	assert.Equal(t, before+2, eng.Cookies())
}

func TestTickAccruesPassiveProduction(t *testing.T) {
	eng, _ := testEngine(t)

	eng.AddCookies(200)
	require.True(t, eng.BuyUpgrade("grandma"))
	assert.Equal(t, 1.0, eng.CookiesPerSecond())

	before := eng.Cookies()
	eng.Tick(2.5)
	assert.InDelta(t, before+2.5, eng.Cookies(), 1e-9)
}

func TestTickIgnoresNegativeDelta(t *testing.T) {
	eng, _ := testEngine(t)
	eng.AddCookies(200)
	require.True(t, eng.BuyUpgrade("grandma"))

	before := eng.Cookies()
	eng.Tick(-5)
	assert.Equal(t, before, eng.Cookies())
}

func TestStoppedEngineIgnoresTicks(t *testing.T) {
	eng, _ := testEngine(t)
	eng.AddCookies(200)
	require.True(t, eng.BuyUpgrade("grandma"))
	eng.Stop()

	before := eng.Cookies()
	eng.Tick(10)
	assert.Equal(t, before, eng.Cookies())
}

func TestUpgradeCostCurve(t *testing.T) {
	eng, _ := testEngine(t)
	cursor := eng.Upgrade("cursor")
	require.NotNil(t, cursor)

	assert.Equal(t, 15.0, cursor.Cost())
	cursor.Count = 1
	assert.Equal(t, 17.0, cursor.Cost()) // floor(15 * 1.15)
	cursor.Count = 10
	assert.Equal(t, 60.0, cursor.Cost()) // floor(15 * 1.15^10)
}

func TestCanAffordFloorsBalance(t *testing.T) {
	eng, _ := testEngine(t)

	eng.AddCookies(14.9)
	assert.False(t, eng.CanAfford(15)) // floor(14.9) = 14

	eng.AddCookies(0.2)
	assert.True(t, eng.CanAfford(15))
}

func TestSpendIsSoleAuthority(t *testing.T) {
	eng, _ := testEngine(t)
	eng.AddCookies(100)

	assert.False(t, eng.Spend(101))
	assert.Equal(t, 100.0, eng.Cookies())

	assert.True(t, eng.Spend(30))
	assert.Equal(t, 70.0, eng.Cookies())
	// lifetime counter is untouched by spending
	assert.Equal(t, 100.0, eng.TotalCookies())
}

func TestBuyUpgradeDeclinesWhenPoor(t *testing.T) {
	eng, _ := testEngine(t)
	eng.AddCookies(10)

	assert.False(t, eng.BuyUpgrade("cursor"))
	assert.Equal(t, 10.0, eng.Cookies())
	assert.Equal(t, 0, eng.Upgrade("cursor").Count)

	assert.False(t, eng.BuyUpgrade("no-such-upgrade"))
}

func TestBuyUpgradeChargesCurrentPrice(t *testing.T) {
	eng, _ := testEngine(t)
	eng.AddCookies(100)

	require.True(t, eng.BuyUpgrade("cursor"))
	assert.Equal(t, 85.0, eng.Cookies())
	assert.Equal(t, 1, eng.Upgrade("cursor").Count)

	// second copy costs more
	require.True(t, eng.BuyUpgrade("cursor"))
	assert.Equal(t, 68.0, eng.Cookies())
}

func TestAchievementUnlocksOnceAndRevealsTheme(t *testing.T) {
	eng, _ := testEngine(t)

	newly := eng.AddCookies(10000)
	ids := make([]string, 0, len(newly))
	for _, def := range newly {
		ids = append(ids, def.ID)
	}
	assert.Equal(t, []string{"hundred", "ten-k"}, ids)

	// reward theme is revealed but not owned
	assert.True(t, eng.Themes().IsUnlocked("midnight"))
	assert.False(t, eng.Themes().IsOwned("midnight"))

	// re-checking with the same counters unlocks nothing new
	assert.Empty(t, eng.AddCookies(1))
}

func TestClickConditionAchievement(t *testing.T) {
	eng, _ := testEngine(t)

	for i := 0; i < 4; i++ {
		assert.Empty(t, eng.Click())
	}
	newly := eng.Click()
	require.Len(t, newly, 1)
	assert.Equal(t, "clicker", newly[0].ID)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	eng, store := testEngine(t)

	eng.AddCookies(12000)
	require.True(t, eng.BuyUpgrade("cursor"))
	require.True(t, eng.BuyUpgrade("grandma"))
	require.True(t, eng.BuyTheme("midnight"))
	require.True(t, eng.ApplyTheme("midnight"))
	for i := 0; i < 3; i++ {
		eng.Click()
	}
	require.NoError(t, eng.Save())
	assert.Equal(t, int64(1700000000000), eng.LastSavedAt())

	restored, err := New(testCatalog(), store)
	require.NoError(t, err)
	require.NoError(t, restored.Load())

	assert.Equal(t, eng.Cookies(), restored.Cookies())
	assert.Equal(t, eng.TotalCookies(), restored.TotalCookies())
	assert.Equal(t, 3, restored.ManualClicks())
	assert.Equal(t, 1, restored.Upgrade("cursor").Count)
	assert.Equal(t, 1, restored.Upgrade("grandma").Count)
	assert.Equal(t, "midnight", restored.Themes().Current())
	assert.True(t, restored.Themes().IsOwned("midnight"))

	// unlocks are re-derived from the restored counters
	assert.True(t, restored.Achievements().IsUnlocked("ten-k"))
	assert.False(t, restored.Achievements().IsUnlocked("clicker"))
}

func TestEarnBuyTickScenario(t *testing.T) {
	eng, _ := testEngine(t)

	for i := 0; i < 50; i++ {
		eng.Click()
	}
	assert.Equal(t, 50.0, eng.Cookies())
	assert.Equal(t, 50.0, eng.TotalCookies())
	assert.Equal(t, 50, eng.ManualClicks())

	// cheapest upgrade in reach
	require.True(t, eng.BuyUpgrade("cursor"))
	assert.Equal(t, 35.0, eng.Cookies())
	assert.Equal(t, 1, eng.Upgrade("cursor").Count)

	eng.Tick(1.0)
	assert.InDelta(t, 35.1, eng.Cookies(), 1e-9)
	assert.InDelta(t, 50.1, eng.TotalCookies(), 1e-9)
}

func TestLoadMissingSaveStaysFresh(t *testing.T) {
	eng, _ := testEngine(t)
	require.NoError(t, eng.Load())
	assert.Equal(t, 0.0, eng.Cookies())
}

func TestLoadCorruptSaveKeepsFreshState(t *testing.T) {
	eng, store := testEngine(t)
	require.NoError(t, store.Set(persistence.SaveKey, "{not json"))

	assert.Error(t, eng.Load())
	assert.Equal(t, 0.0, eng.Cookies())
	assert.Equal(t, 0, eng.ManualClicks())
}

func TestLoadRejectsNewerSnapshot(t *testing.T) {
	eng, store := testEngine(t)
	require.NoError(t, store.Set(persistence.SaveKey, `{"version":99,"state":{}}`))
	assert.Error(t, eng.Load())
}

func TestLoadDropsUnknownUpgradeIDs(t *testing.T) {
	eng, store := testEngine(t)
	raw := `{"version":1,"state":{"cookies":5,"totalCookies":5,"manualClicks":0,"lastSavedAt":0},` +
		`"upgrades":[{"id":"retired-upgrade","count":3},{"id":"cursor","count":2}],` +
		`"themes":{"unlocked":["default"],"owned":["default"],"current":"default"}}`
	require.NoError(t, store.Set(persistence.SaveKey, raw))

	require.NoError(t, eng.Load())
	assert.Equal(t, 2, eng.Upgrade("cursor").Count)
}

func TestFailedSaveDoesNotStampTimestamp(t *testing.T) {
	store := persistence.NewMemStore()
	eng, err := New(testCatalog(), &failingStore{store}, WithClock(func() time.Time {
		return time.UnixMilli(1700000000000)
	}))
	require.NoError(t, err)

	assert.Error(t, eng.Save())
	assert.Equal(t, int64(0), eng.LastSavedAt())
}

func TestResetWipesEverythingAndPersists(t *testing.T) {
	eng, store := testEngine(t)

	eng.AddCookies(20000)
	require.True(t, eng.BuyUpgrade("cursor"))
	require.True(t, eng.BuyTheme("midnight"))
	require.NoError(t, eng.Save())

	require.NoError(t, eng.Reset())
	assert.Equal(t, 0.0, eng.Cookies())
	assert.Equal(t, 0.0, eng.TotalCookies())
	assert.Equal(t, 0, eng.Upgrade("cursor").Count)
	assert.False(t, eng.Themes().IsOwned("midnight"))
	assert.Equal(t, catalog.DefaultThemeID, eng.Themes().Current())

	// the wipe itself is on disk
	restored, err := New(testCatalog(), store)
	require.NoError(t, err)
	require.NoError(t, restored.Load())
	assert.Equal(t, 0.0, restored.TotalCookies())
}

// failingStore wraps a store whose writes always fail.
type failingStore struct {
	persistence.Store
}

func (s *failingStore) Set(key, value string) error {
	return assert.AnError
}
