package kernel_test

import (
	"testing"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewZone(t *testing.T) {
	t.Run("accepts zones 0..3", func(t *testing.T) {
		for n := range kernel.ZoneCount {
			z, err := kernel.NewZone(n)
			require.NoError(t, err)
			assert.True(t, z.IsValid())
			assert.Equal(t, n, z.Int())
		}
	})

	t.Run("rejects out of range zones", func(t *testing.T) {
		for _, n := range []int{-1, 4, 42} {
			z, err := kernel.NewZone(n)
			require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
			assert.Equal(t, kernel.ZoneNone, z)
		}
	})
}

func TestZone_String(t *testing.T) {
	assert.Equal(t, "2", kernel.Zone(2).String())
	assert.Equal(t, "none", kernel.ZoneNone.String())
	assert.False(t, kernel.ZoneNone.IsValid())
}

func TestAllZones(t *testing.T) {
	assert.Equal(t, []kernel.Zone{0, 1, 2, 3}, kernel.AllZones())
}
