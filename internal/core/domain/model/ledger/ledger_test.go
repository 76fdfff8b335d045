package ledger_test

import (
	"testing"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/ledger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLedger_Settle(t *testing.T) {
	t.Run("should retain cost minus driver pay", func(t *testing.T) {
		// Given
		l := ledger.New()

		// When
		pay, err := l.Settle(1500, 1000)

		// Then
		require.NoError(t, err)
		assert.Equal(t, kernel.Money(150), pay)
		assert.Equal(t, kernel.Money(1350), l.Revenue())
		assert.Equal(t, kernel.Money(150), l.Payouts())
		assert.Equal(t, 1, l.Completed())
	})

	t.Run("should accumulate over services", func(t *testing.T) {
		l := ledger.New()
		_, err := l.Settle(1500, 1000)
		require.NoError(t, err)

		_, err = l.Settle(1200, 1000)
		require.NoError(t, err)

		assert.Equal(t, kernel.Money(1350+1080), l.Revenue())
		assert.Equal(t, 2, l.Completed())
	})

	t.Run("should reject negative costs", func(t *testing.T) {
		l := ledger.New()

		_, err := l.Settle(-1, 1000)

		require.ErrorIs(t, err, ledger.ErrCostIsInvalid)
		assert.Zero(t, l.Revenue())
		assert.Zero(t, l.Completed())
	})
}

func TestRestore(t *testing.T) {
	l, err := ledger.Restore(1350, 150, 1)
	require.NoError(t, err)
	assert.Equal(t, kernel.Money(1350), l.Revenue())

	_, err = ledger.Restore(0, -1, 0)
	require.Error(t, err)
}
