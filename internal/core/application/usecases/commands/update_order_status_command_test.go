package commands_test

import (
	"testing"

	"parcelhub/internal/core/application/usecases/commands"
	"parcelhub/internal/core/domain/model/kernel"
	"parcelhub/internal/core/domain/model/order"
	"parcelhub/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUpdateOrderStatusCommand(t *testing.T) {
	t.Run("should accept any valid status", func(t *testing.T) {
		for _, status := range order.Statuses() {
			cmd, err := commands.NewUpdateOrderStatusCommand(mustToken("T1"), status)

			require.NoError(t, err)
			assert.Equal(t, status, cmd.Status())
			assert.Equal(t, "T1", cmd.Token().String())
		}
	})

	t.Run("should reject zero token", func(t *testing.T) {
		_, err := commands.NewUpdateOrderStatusCommand(kernel.Token{}, order.PickedUp)

		require.ErrorIs(t, err, kernel.ErrTokenIsNotConstructed)
	})

	t.Run("should reject unknown status", func(t *testing.T) {
		_, err := commands.NewUpdateOrderStatusCommand(mustToken("T1"), order.Unknown)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}
