package commands_test

import (
	"testing"

	"parceltrack/internal/core/application/usecases/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDispatchParcelCommand_Success(t *testing.T) {
	// Act
	cmd := commands.NewDispatchParcelCommand()

	// Assert
	assert.NotZero(t, cmd)
	require.NoError(t, cmd.Validate())
}

func TestDispatchParcelCommand_Validate_ZeroValue(t *testing.T) {
	// Arrange
	var cmd commands.DispatchParcelCommand // zero value, not constructed via constructor

	// Act
	err := cmd.Validate()

	// Assert
	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrDispatchParcelCommandIsNotConstructed)
}
