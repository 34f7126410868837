package monitor

import "strings"

// ContentChanged reports whether two extracted texts differ after trimming
// surrounding whitespace. Trimming keeps trailing-newline churn from
// triggering alerts.
func ContentChanged(previous, current string) bool {
	return strings.TrimSpace(previous) != strings.TrimSpace(current)
}
