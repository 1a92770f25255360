package engine

// ProgressState holds the core progression counters. Cookies is the
// spendable balance; TotalCookies counts every cookie ever earned and never
// decreases, so achievement and theme thresholds cannot be lost by
// spending. ManualClicks counts player clicks only.
type ProgressState struct {
	Cookies      float64
	TotalCookies float64
	ManualClicks int
	LastSavedAt  int64
}

// NewProgressState creates an empty clean slate.
func NewProgressState() *ProgressState {
	return &ProgressState{}
}

// earn credits an amount to both the balance and the lifetime counter.
// Negative amounts are ignored; nothing in the game ever earns backwards.
func (s *ProgressState) earn(amount float64) {
	if amount <= 0 {
		return
	}
	s.Cookies += amount
	s.TotalCookies += amount
}
