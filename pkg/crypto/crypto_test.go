package crypto_test

import (
	"testing"

	"github.com/questx-lab/scratchcard/pkg/crypto"
	"github.com/stretchr/testify/require"
)

func TestRandIntn(t *testing.T) {
	seen := map[int]bool{}
	for i := 0; i < 1000; i++ {
		v := crypto.RandIntn(5)
		require.GreaterOrEqual(t, v, 0)
		require.Less(t, v, 5)
		seen[v] = true
	}

	require.Len(t, seen, 5)
}

func TestRandIntnPanicsOnNonPositive(t *testing.T) {
	require.Panics(t, func() { crypto.RandIntn(0) })
}

func TestGenerateRandomString(t *testing.T) {
	a, err := crypto.GenerateRandomString()
	require.NoError(t, err)
	b, err := crypto.GenerateRandomString()
	require.NoError(t, err)
	require.NotEqual(t, a, b)
}
