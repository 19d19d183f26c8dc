package keys

import (
	"strconv"
	"strings"
	"unicode"
)

// GameKey produces the canonical key for a game name.
// Behavior: trims, lower-cases, and collapses runs of spaces, dashes and
// underscores into a single underscore. "Luksong Baka", "luksong-baka" and
// "LUKSONG_BAKA" all map to "luksong_baka".
func GameKey(name string) string {
	var b strings.Builder
	pendingSep := false
	for _, r := range strings.TrimSpace(name) {
		if r == ' ' || r == '-' || r == '_' {
			pendingSep = b.Len() > 0
			continue
		}
		if pendingSep {
			b.WriteByte('_')
			pendingSep = false
		}
		b.WriteRune(unicode.ToLower(r))
	}
	return b.String()
}

// LeaderboardKey identifies a leaderboard query for request deduplication.
func LeaderboardKey(game string, limit int) string {
	return "leaderboard:" + GameKey(game) + ":" + strconv.Itoa(limit)
}
