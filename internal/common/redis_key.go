package common

import "fmt"

// RedisKeyLeaderboard is the sorted set of users scored by the number of
// collected prizes.
func RedisKeyLeaderboard() string {
	return "leaderboard:collection"
}

// RedisKeyLeaderboardStaging is filled by a rebuild before being renamed over
// RedisKeyLeaderboard.
func RedisKeyLeaderboardStaging(suffix string) string {
	return fmt.Sprintf("leaderboard:collection:%s", suffix)
}
