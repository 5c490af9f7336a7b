package errorx

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestError(t *testing.T) {
	err := New(ScratchCooldown, "Next scratch in %d minutes", 5)
	require.Equal(t, "Next scratch in 5 minutes", err.Error())

	wrapped := fmt.Errorf("scratch: %w", err)
	require.True(t, errors.Is(wrapped, Error{Code: ScratchCooldown}))
	require.False(t, errors.Is(wrapped, Error{Code: AllocationFailed}))

	var errx Error
	require.True(t, errors.As(wrapped, &errx))
	require.Equal(t, ScratchCooldown, errx.Code)
}
