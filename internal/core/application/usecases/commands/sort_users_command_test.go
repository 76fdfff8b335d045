package commands_test

import (
	"testing"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/user"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSortUsersCommandHandler_Handle(t *testing.T) {
	users := func(t *testing.T) []*user.User {
		return []*user.User{
			mustUser(t, "9000", "Carol", 300),
			mustUser(t, "9001", "Alice", 100),
			mustUser(t, "9002", "Bob", 300),
			mustUser(t, "9003", "Alice", 50),
		}
	}

	tests := []struct {
		name string
		key  commands.UserSortKey
		want []kernel.ID
	}{
		{name: "by name keeps ties in order", key: commands.SortUsersByName, want: []kernel.ID{"9001", "9003", "9002", "9000"}},
		{name: "by wallet ascending", key: "WALLET", want: []kernel.ID{"9003", "9001", "9000", "9002"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := t.Context()
			f := newFixture()
			f.users.On("GetAll", ctx).Return(users(t), nil).Once()
			f.users.On("Reorder", ctx, tt.want).Return(nil).Once()
			f.expectCommit()

			cmd, err := commands.NewSortUsersCommand(tt.key)
			require.NoError(t, err)

			handler := commands.NewSortUsersCommandHandler(f.factory)
			require.NoError(t, handler.Handle(ctx, cmd))
			f.assertExpectations(t)
		})
	}

	t.Run("unknown key", func(t *testing.T) {
		_, err := commands.NewSortUsersCommand("age")

		require.ErrorIs(t, err, commands.ErrUserSortKeyIsInvalid)
		assert.Contains(t, err.Error(), "sort key")
	})
}
