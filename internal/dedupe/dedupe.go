package dedupe

// Package dedupe provides shared singleflight groups so that concurrent
// identical reads hit the database once while other callers wait for the
// result.

import "golang.org/x/sync/singleflight"

// LeaderboardGroup deduplicates leaderboard queries keyed by
// keys.LeaderboardKey (e.g. "leaderboard:jolen:10").
var LeaderboardGroup singleflight.Group

// StatsGroup deduplicates player stats queries keyed by "stats:<uid>".
var StatsGroup singleflight.Group
