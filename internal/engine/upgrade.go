package engine

import (
	"math"

	"github.com/doughbyte/crumb/internal/catalog"
)

// Upgrade is a purchasable production unit plus how many of it the player
// owns. The static fields come from the catalog; Count is the only mutable
// part.
type Upgrade struct {
	ID          string
	Name        string
	Description string
	BaseCost    float64
	Growth      float64
	CPS         float64
	CPC         float64
	Count       int
}

func newUpgrade(def catalog.UpgradeDef) *Upgrade {
	return &Upgrade{
		ID:          def.ID,
		Name:        def.Name,
		Description: def.Description,
		BaseCost:    def.BaseCost,
		Growth:      def.Growth,
		CPS:         def.CPS,
		CPC:         def.CPC,
	}
}

// Cost is the price of the next copy: baseCost scaled by growth once per
// copy already owned, floored to a whole cookie. It never decreases as
// Count grows.
func (u *Upgrade) Cost() float64 {
	return math.Floor(u.BaseCost * math.Pow(u.Growth, float64(u.Count)))
}

// TotalCPS is this upgrade's passive contribution across all owned copies.
func (u *Upgrade) TotalCPS() float64 {
	return u.CPS * float64(u.Count)
}

// TotalCPC is this upgrade's per-click contribution across all owned copies.
func (u *Upgrade) TotalCPC() float64 {
	return u.CPC * float64(u.Count)
}
