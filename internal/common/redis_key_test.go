package common

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRedisKeyLeaderboardStaging(t *testing.T) {
	require.Equal(t, "leaderboard:collection:abc", RedisKeyLeaderboardStaging("abc"))
	require.NotEqual(t, RedisKeyLeaderboard(), RedisKeyLeaderboardStaging(""))
}
