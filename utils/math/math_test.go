package math

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestZero(t *testing.T) {
	require.Equal(t, 0, Zero[int]())
	require.Equal(t, uint8(0), Zero[uint8]())
	require.Equal(t, 0.0, Zero[float64]())
	require.Equal(t, complex64(0), Zero[complex64]())
}

func TestIsZero(t *testing.T) {
	require.Equal(t, true, IsZero(0))
	require.Equal(t, false, IsZero(-1))
	require.Equal(t, true, IsZero(0.0))
	require.Equal(t, false, IsZero(1e-300))
	require.Equal(t, true, IsZero(complex(0, 0)))
	require.Equal(t, false, IsZero(complex(0, 1)))
}
