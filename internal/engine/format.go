package engine

import (
	"fmt"
	"strconv"
)

// units are thousand-step suffixes up to decillion.
var units = []string{"", "K", "M", "B", "T", "Qa", "Qi", "Sx", "Sp", "Oc", "No", "Dc"}

// FormatNumber renders a cookie amount for display. Values under a thousand
// print as-is; larger values are scaled to the biggest fitting suffix and
// shown with two, one or zero decimals depending on how many digits remain
// before the point. Beyond the last suffix the value stays scaled to it.
func FormatNumber(v float64) string {
	if v < 1000 {
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	idx := 0
	for v >= 1000 && idx < len(units)-1 {
		v /= 1000
		idx++
	}
	switch {
	case v >= 100:
		return fmt.Sprintf("%.0f%s", v, units[idx])
	case v >= 10:
		return fmt.Sprintf("%.1f%s", v, units[idx])
	default:
		return fmt.Sprintf("%.2f%s", v, units[idx])
	}
}
